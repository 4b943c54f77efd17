package actor

import (
	"sort"

	"github.com/pkg/errors"
)

var ErrNoClass = errors.New("no such class")

type Factory func() Actor

// Class is a named actor factory, the unit the world spawns.
type Class struct {
	Name string
	New  Factory
}

func (c *Class) String() string {
	return c.Name
}

type Registry struct {
	classes map[string]*Class
}

func NewRegistry() *Registry {
	return &Registry{classes: make(map[string]*Class)}
}

func (r *Registry) Register(name string, factory Factory) *Class {
	class := &Class{Name: name, New: factory}
	r.classes[name] = class
	return class
}

// Get returns nil for an empty name. Unknown names wrap ErrNoClass.
func (r *Registry) Get(name string) (*Class, error) {
	if name == "" {
		return nil, nil
	}
	class, ok := r.classes[name]
	if !ok {
		return nil, errors.Wrapf(ErrNoClass, "class '%s'", name)
	}
	return class, nil
}

func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.classes))
	for name := range r.classes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
