package effects

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/prototype/engine/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boomTemplate() *Template {
	return &Template{
		Name:       "NS_Boom",
		Lifetime:   1,
		BurstCount: 16,
		Particles: ParticleProperties{
			Velocity:          mgl32.Vec3{0, 0, 200},
			VelocityVariation: mgl32.Vec3{100, 100, 50},
			ColorBegin:        mgl32.Vec4{1, 0.6, 0.1, 1},
			ColorEnd:          mgl32.Vec4{0.2, 0.2, 0.2, 0},
			SizeBegin:         8,
			SizeEnd:           1,
			Lifetime:          0.5,
		},
	}
}

func TestSpawnSystemAtLocationWithNilTemplate(t *testing.T) {
	m := NewManager(16)

	assert.Nil(t, m.SpawnSystemAtLocation(nil, mgl32.Vec3{}, util.Rotator{}, mgl32.Vec3{1, 1, 1}))
	assert.Equal(t, 0, m.SpawnCount())
}

func TestOneShotEffectExpires(t *testing.T) {
	m := NewManager(64)
	c := m.SpawnSystemAtLocation(boomTemplate(), mgl32.Vec3{100, 0, 0}, util.Rotator{Pitch: -90}, mgl32.Vec3{2, 2, 2})
	require.NotNil(t, c)
	assert.Equal(t, 16, m.Particles().ActiveCount())

	m.Tick(0.5)
	assert.True(t, c.IsActive())
	m.Tick(0.6)

	assert.False(t, c.IsActive())
	assert.Empty(t, m.ActiveComponents())
}

func TestLoopingEffectStaysUntilDestroyed(t *testing.T) {
	m := NewManager(64)
	aim := &Template{Name: "NS_Aim", Particles: ParticleProperties{Lifetime: 0.1, SizeBegin: 2}}
	c := m.SpawnSystemAtLocation(aim, mgl32.Vec3{}, util.Rotator{}, mgl32.Vec3{1, 1, 1})

	for i := 0; i < 100; i++ {
		m.Tick(0.1)
	}
	require.True(t, c.IsActive())
	c.SetWorldLocation(mgl32.Vec3{10, 0, 0})
	assert.Equal(t, 1, c.MoveCount())

	c.Destroy()
	m.Tick(0.1)
	assert.Empty(t, m.ActiveComponents())
}

func TestLibraryGet(t *testing.T) {
	l := NewLibrary()
	l.Register(boomTemplate())

	boom, err := l.Get("NS_Boom")
	require.NoError(t, err)
	assert.Equal(t, "NS_Boom", boom.Name)

	none, err := l.Get("")
	assert.NoError(t, err)
	assert.Nil(t, none)

	_, err = l.Get("NS_Missing")
	assert.Error(t, err)
}
