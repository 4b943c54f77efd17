package input

import (
	"fmt"
	"sort"

	"github.com/memmaker/prototype/engine/util"
)

type activeContext struct {
	context  *MappingContext
	priority int
	order    int
}

type actionState struct {
	triggered bool
	value     Value
}

// Subsystem is the per player input state. Keys are fed in by a front-end, Tick
// maps them through the active contexts and dispatches the resulting events to
// the pushed components.
type Subsystem struct {
	contexts   []activeContext
	addCounter int
	keys       map[Key]Value
	prevKeys   map[Key]Value
	axes       map[Key]Value
	actions    map[*Action]*actionState
	components []*Component
}

func NewSubsystem() *Subsystem {
	return &Subsystem{
		keys:     make(map[Key]Value),
		prevKeys: make(map[Key]Value),
		axes:     make(map[Key]Value),
		actions:  make(map[*Action]*actionState),
	}
}

// AddMappingContext activates context. Adding an active context again only updates its priority.
func (s *Subsystem) AddMappingContext(context *MappingContext, priority int) {
	if context == nil {
		return
	}
	for i, active := range s.contexts {
		if active.context == context {
			s.contexts[i].priority = priority
			s.sortContexts()
			return
		}
	}
	s.addCounter++
	s.contexts = append(s.contexts, activeContext{context: context, priority: priority, order: s.addCounter})
	s.sortContexts()
	util.LogInputDebug(fmt.Sprintf("[Input] added mapping context %s with priority %d", context, priority))
}

func (s *Subsystem) RemoveMappingContext(context *MappingContext) bool {
	for i, active := range s.contexts {
		if active.context == context {
			s.contexts = append(s.contexts[:i], s.contexts[i+1:]...)
			util.LogInputDebug(fmt.Sprintf("[Input] removed mapping context %s", context))
			return true
		}
	}
	return false
}

func (s *Subsystem) HasMappingContext(context *MappingContext) bool {
	for _, active := range s.contexts {
		if active.context == context {
			return true
		}
	}
	return false
}

func (s *Subsystem) ClearMappings() {
	s.contexts = nil
}

func (s *Subsystem) sortContexts() {
	sort.SliceStable(s.contexts, func(i, j int) bool {
		if s.contexts[i].priority != s.contexts[j].priority {
			return s.contexts[i].priority > s.contexts[j].priority
		}
		return s.contexts[i].order < s.contexts[j].order
	})
}

// PushInputComponent puts component on top of the input stack.
func (s *Subsystem) PushInputComponent(component *Component) {
	for _, c := range s.components {
		if c == component {
			return
		}
	}
	s.components = append(s.components, component)
}

func (s *Subsystem) PopInputComponent(component *Component) {
	for i, c := range s.components {
		if c == component {
			s.components = append(s.components[:i], s.components[i+1:]...)
			return
		}
	}
}

func (s *Subsystem) KeyDown(key Key) {
	s.keys[key] = Value{1, 0}
}

func (s *Subsystem) KeyUp(key Key) {
	delete(s.keys, key)
}

func (s *Subsystem) IsKeyDown(key Key) bool {
	return s.keys[key].Get()
}

// Axis adds a 2D delta for key that is consumed by the next Tick.
func (s *Subsystem) Axis(key Key, x, y float32) {
	current := s.axes[key]
	s.axes[key] = Value{current[0] + x, current[1] + y}
}

func (s *Subsystem) keyValue(key Key) Value {
	if v, ok := s.axes[key]; ok {
		return v
	}
	return s.keys[key]
}

// effectiveMappings returns the mappings of all active contexts. A key mapped by a
// higher priority context hides the mappings of that key in lower priority contexts.
func (s *Subsystem) effectiveMappings() []Mapping {
	claimedBy := make(map[Key]*MappingContext)
	var result []Mapping
	for _, active := range s.contexts {
		for _, m := range active.context.mappings {
			if owner, claimed := claimedBy[m.Key]; claimed && owner != active.context {
				continue
			}
			claimedBy[m.Key] = active.context
			result = append(result, m)
		}
	}
	return result
}

func (s *Subsystem) Tick(deltaTime float64) {
	type evaluation struct {
		triggered bool
		value     Value
	}
	evaluated := make(map[*Action]*evaluation)
	var order []*Action
	for _, m := range s.effectiveMappings() {
		e, ok := evaluated[m.Action]
		if !ok {
			e = &evaluation{}
			evaluated[m.Action] = e
			order = append(order, m.Action)
		}
		value := s.keyValue(m.Key)
		if !value.Get() {
			continue
		}
		if m.Trigger == TriggerPressed && s.prevKeys[m.Key].Get() {
			continue
		}
		mapped := m.Modifiers.apply(value)
		e.value = Value{e.value[0] + mapped[0], e.value[1] + mapped[1]}
		e.triggered = true
	}

	for action := range s.actions {
		if _, stillMapped := evaluated[action]; !stillMapped {
			delete(s.actions, action)
		}
	}

	for _, action := range order {
		e := evaluated[action]
		state, ok := s.actions[action]
		if !ok {
			state = &actionState{}
			s.actions[action] = state
		}
		wasTriggered := state.triggered
		state.triggered = e.triggered
		state.value = e.value
		switch {
		case e.triggered && !wasTriggered:
			s.dispatch(action, Started, e.value)
			s.dispatch(action, Triggered, e.value)
		case e.triggered:
			s.dispatch(action, Triggered, e.value)
		case wasTriggered:
			s.dispatch(action, Completed, Value{})
		}
	}

	s.prevKeys = make(map[Key]Value, len(s.keys))
	for key, value := range s.keys {
		s.prevKeys[key] = value
	}
	s.axes = make(map[Key]Value)
}

// ActionValue is the value of action as of the last Tick.
func (s *Subsystem) ActionValue(action *Action) Value {
	if state, ok := s.actions[action]; ok {
		return state.value
	}
	return Value{}
}

func (s *Subsystem) dispatch(action *Action, event TriggerEvent, value Value) {
	components := make([]*Component, len(s.components))
	copy(components, s.components)
	handled := 0
	for i := len(components) - 1; i >= 0; i-- {
		handled += components[i].dispatch(action, event, value)
	}
	if handled > 0 {
		util.LogInputDebug(fmt.Sprintf("[Input] %s %s -> %d handler(s)", action, event, handled))
	}
}
