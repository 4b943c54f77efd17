package actor

import (
	"github.com/google/uuid"
)

type Component interface {
	ID() uuid.UUID
	GetName() string
}

type ComponentTicker interface {
	TickComponent(deltaTime float64)
}

type BaseComponent struct {
	id   uuid.UUID
	name string
}

func NewBaseComponent(name string) BaseComponent {
	return BaseComponent{id: uuid.New(), name: name}
}

func (c *BaseComponent) ID() uuid.UUID {
	return c.id
}

func (c *BaseComponent) GetName() string {
	return c.name
}
