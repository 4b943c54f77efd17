package anim

import (
	"fmt"
	"sort"

	"github.com/memmaker/prototype/engine/util"
	"github.com/pkg/errors"
)

// Montage is a one-shot animation played on top of the base pose.
type Montage struct {
	Name     string
	Duration float32
}

func (m *Montage) String() string {
	return m.Name
}

type playing struct {
	montage  *Montage
	rate     float32
	position float32
}

// Instance plays montages on one skeletal mesh. Only one montage plays at a time;
// starting another one interrupts it.
type Instance struct {
	owner   string
	current *playing
	started int
	OnEnded func(montage *Montage, interrupted bool)
}

func NewInstance(owner string) *Instance {
	return &Instance{owner: owner}
}

// MontagePlay starts montage and returns its length at the given rate, or 0 if
// nothing was started.
func (a *Instance) MontagePlay(montage *Montage, rate float32) float32 {
	if montage == nil || rate <= 0 {
		return 0
	}
	if a.current != nil {
		a.end(true)
	}
	a.current = &playing{montage: montage, rate: rate}
	a.started++
	util.LogAnimationDebug(fmt.Sprintf("[Anim] %s plays %s at rate %0.2f", a.owner, montage, rate))
	return montage.Duration / rate
}

func (a *Instance) IsPlaying(montage *Montage) bool {
	return a.current != nil && a.current.montage == montage
}

func (a *Instance) CurrentMontage() *Montage {
	if a.current == nil {
		return nil
	}
	return a.current.montage
}

func (a *Instance) PlayCount() int {
	return a.started
}

func (a *Instance) MontageStop() {
	if a.current != nil {
		a.end(true)
	}
}

func (a *Instance) Tick(deltaTime float64) {
	if a.current == nil {
		return
	}
	a.current.position += float32(deltaTime) * a.current.rate
	if a.current.position >= a.current.montage.Duration {
		a.end(false)
	}
}

func (a *Instance) end(interrupted bool) {
	montage := a.current.montage
	a.current = nil
	if a.OnEnded != nil {
		a.OnEnded(montage, interrupted)
	}
}

type Library struct {
	montages map[string]*Montage
}

func NewLibrary() *Library {
	return &Library{montages: make(map[string]*Montage)}
}

func (l *Library) Register(montage *Montage) {
	l.montages[montage.Name] = montage
}

// Get returns nil for an empty name and an error for an unknown one.
func (l *Library) Get(name string) (*Montage, error) {
	if name == "" {
		return nil, nil
	}
	montage, ok := l.montages[name]
	if !ok {
		return nil, errors.Errorf("unknown montage '%s'", name)
	}
	return montage, nil
}

func (l *Library) Names() []string {
	names := make([]string, 0, len(l.montages))
	for name := range l.montages {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
