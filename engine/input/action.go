package input

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

type ValueType int

const (
	Digital ValueType = iota
	Axis2D
)

// Value carries the state of an action. Digital actions use X only.
type Value mgl32.Vec2

func (v Value) Get() bool {
	return v[0] != 0 || v[1] != 0
}

func (v Value) Axis2D() mgl32.Vec2 {
	return mgl32.Vec2(v)
}

func (v Value) IsZero() bool {
	return !v.Get()
}

type Action struct {
	Name      string
	ValueType ValueType
}

func NewAction(name string, valueType ValueType) *Action {
	return &Action{Name: name, ValueType: valueType}
}

func (a *Action) String() string {
	return a.Name
}

type TriggerEvent int

const (
	Started TriggerEvent = iota
	Triggered
	Completed
)

func (e TriggerEvent) String() string {
	switch e {
	case Started:
		return "Started"
	case Triggered:
		return "Triggered"
	case Completed:
		return "Completed"
	}
	return fmt.Sprintf("TriggerEvent(%d)", int(e))
}

// Trigger decides when a mapped key actuates its action.
type Trigger int

const (
	// TriggerDown fires every frame the key is actuated.
	TriggerDown Trigger = iota
	// TriggerPressed fires once, on the frame the key becomes actuated.
	TriggerPressed
)

type Modifier int

const (
	ModifierNegate Modifier = 1 << iota
	ModifierSwizzle
)

func (m Modifier) apply(v Value) Value {
	if m&ModifierSwizzle != 0 {
		v = Value{v[1], v[0]}
	}
	if m&ModifierNegate != 0 {
		v = Value{-v[0], -v[1]}
	}
	return v
}
