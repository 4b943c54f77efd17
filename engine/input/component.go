package input

type BindingHandle uint32

type binding struct {
	handle  BindingHandle
	action  *Action
	event   TriggerEvent
	handler func(Value)
}

// Component holds action bindings. Bindings only receive events while the
// component is pushed onto a Subsystem.
type Component struct {
	name       string
	bindings   []binding
	nextHandle BindingHandle
}

func NewComponent(name string) *Component {
	return &Component{name: name}
}

func (c *Component) BindAction(action *Action, event TriggerEvent, handler func(Value)) BindingHandle {
	c.nextHandle++
	c.bindings = append(c.bindings, binding{
		handle:  c.nextHandle,
		action:  action,
		event:   event,
		handler: handler,
	})
	return c.nextHandle
}

func (c *Component) RemoveBinding(handle BindingHandle) bool {
	for i, b := range c.bindings {
		if b.handle == handle {
			c.bindings = append(c.bindings[:i], c.bindings[i+1:]...)
			return true
		}
	}
	return false
}

func (c *Component) ClearBindings() {
	c.bindings = nil
}

func (c *Component) BindingCount() int {
	return len(c.bindings)
}

func (c *Component) dispatch(action *Action, event TriggerEvent, value Value) int {
	matching := make([]func(Value), 0, 2)
	for _, b := range c.bindings {
		if b.action == action && b.event == event {
			matching = append(matching, b.handler)
		}
	}
	for _, handler := range matching {
		handler(value)
	}
	return len(matching)
}
