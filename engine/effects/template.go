package effects

import (
	"sort"

	"github.com/pkg/errors"
)

// Template describes a particle effect. A Lifetime of zero makes the effect loop
// until it is destroyed explicitly.
type Template struct {
	Name       string
	Lifetime   float32
	BurstCount int
	Particles  ParticleProperties
}

func (t *Template) String() string {
	return t.Name
}

func (t *Template) IsLooping() bool {
	return t.Lifetime <= 0
}

type Library struct {
	templates map[string]*Template
}

func NewLibrary() *Library {
	return &Library{templates: make(map[string]*Template)}
}

func (l *Library) Register(template *Template) {
	l.templates[template.Name] = template
}

// Get returns nil for an empty name and an error for an unknown one.
func (l *Library) Get(name string) (*Template, error) {
	if name == "" {
		return nil, nil
	}
	template, ok := l.templates[name]
	if !ok {
		return nil, errors.Errorf("unknown effect template '%s'", name)
	}
	return template, nil
}

func (l *Library) Names() []string {
	names := make([]string, 0, len(l.templates))
	for name := range l.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
