package input

type Key string

const (
	KeyLeftMouseButton  Key = "LeftMouseButton"
	KeyRightMouseButton Key = "RightMouseButton"
	KeyMouse2D          Key = "Mouse2D"
	KeyTouch1           Key = "Touch1"
	KeySpaceBar         Key = "SpaceBar"
	KeyEscape           Key = "Escape"
	KeyW                Key = "W"
	KeyA                Key = "A"
	KeyS                Key = "S"
	KeyD                Key = "D"
	KeyE                Key = "E"
	KeyF                Key = "F"
)

type Mapping struct {
	Action    *Action
	Key       Key
	Trigger   Trigger
	Modifiers Modifier
}

// MappingContext is a named set of key to action mappings. It only has an effect
// while it is added to a Subsystem.
type MappingContext struct {
	Name     string
	mappings []Mapping
}

func NewMappingContext(name string) *MappingContext {
	return &MappingContext{Name: name}
}

func (c *MappingContext) Map(action *Action, key Key, trigger Trigger, modifiers Modifier) *MappingContext {
	c.mappings = append(c.mappings, Mapping{Action: action, Key: key, Trigger: trigger, Modifiers: modifiers})
	return c
}

func (c *MappingContext) Mappings() []Mapping {
	return c.mappings
}

func (c *MappingContext) String() string {
	return c.Name
}
