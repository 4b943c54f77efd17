package effects

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
	"github.com/memmaker/prototype/engine/util"
)

const defaultParticleCapacity = 2048

type Manager struct {
	components []*Component
	particles  *ParticleSystem
	spawned    int
	OnSpawn    func(*Component)
}

func NewManager(particleCapacity int) *Manager {
	if particleCapacity <= 0 {
		particleCapacity = defaultParticleCapacity
	}
	return &Manager{
		particles: NewParticleSystem(particleCapacity, 1),
	}
}

// SpawnSystemAtLocation places a new instance of template. A nil template spawns nothing.
func (m *Manager) SpawnSystemAtLocation(template *Template, location mgl32.Vec3, rotation util.Rotator, scale mgl32.Vec3) *Component {
	if template == nil {
		return nil
	}
	component := &Component{
		id:       uuid.New(),
		template: template,
		location: location,
		rotation: rotation,
		scale:    scale,
		active:   true,
	}
	m.components = append(m.components, component)
	m.spawned++
	m.emit(component, template.BurstCount)
	util.LogEffectsDebug(fmt.Sprintf("[Effects] spawned %s at %v (%s) scale %v", template, location, rotation, scale))
	if m.OnSpawn != nil {
		m.OnSpawn(component)
	}
	return component
}

func (m *Manager) emit(component *Component, count int) {
	orientation := component.rotation.Mat3()
	for i := 0; i < count; i++ {
		m.particles.Emit(component.location, orientation, component.scale, component.template.Particles)
	}
}

// Tick ages all components, destroys finished one-shot effects and keeps looping
// effects emitting at their current pose.
func (m *Manager) Tick(deltaTime float64) {
	alive := m.components[:0]
	for _, component := range m.components {
		if !component.active {
			continue
		}
		component.age += float32(deltaTime)
		if !component.template.IsLooping() && component.age >= component.template.Lifetime {
			component.active = false
			util.LogEffectsDebug(fmt.Sprintf("[Effects] %s finished after %0.2fs", component.template, component.age))
			continue
		}
		if component.template.IsLooping() {
			m.emit(component, 1)
		}
		alive = append(alive, component)
	}
	for i := len(alive); i < len(m.components); i++ {
		m.components[i] = nil
	}
	m.components = alive
	m.particles.Update(deltaTime)
}

func (m *Manager) ActiveComponents() []*Component {
	result := make([]*Component, 0, len(m.components))
	for _, component := range m.components {
		if component.active {
			result = append(result, component)
		}
	}
	return result
}

// SpawnCount is the total number of components spawned so far.
func (m *Manager) SpawnCount() int {
	return m.spawned
}

func (m *Manager) Particles() *ParticleSystem {
	return m.particles
}

func (m *Manager) Clear() {
	for _, component := range m.components {
		component.active = false
	}
	m.components = nil
}
