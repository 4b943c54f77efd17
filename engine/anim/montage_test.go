package anim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMontagePlayRunsToCompletion(t *testing.T) {
	fire := &Montage{Name: "FP_Rifle_Shoot_Montage", Duration: 0.5}
	a := NewInstance("Mesh1P")
	var ended []bool
	a.OnEnded = func(m *Montage, interrupted bool) {
		ended = append(ended, interrupted)
	}

	assert.InDelta(t, 0.25, a.MontagePlay(fire, 2), 1e-6)
	assert.True(t, a.IsPlaying(fire))
	a.Tick(0.2)
	assert.True(t, a.IsPlaying(fire))
	a.Tick(0.1)

	assert.False(t, a.IsPlaying(fire))
	assert.Equal(t, []bool{false}, ended)
}

func TestMontagePlayInterruptsCurrent(t *testing.T) {
	fire := &Montage{Name: "Fire", Duration: 1}
	reload := &Montage{Name: "Reload", Duration: 2}
	a := NewInstance("Mesh1P")
	var interrupted []string
	a.OnEnded = func(m *Montage, wasInterrupted bool) {
		if wasInterrupted {
			interrupted = append(interrupted, m.Name)
		}
	}

	a.MontagePlay(fire, 1)
	a.MontagePlay(reload, 1)

	assert.Same(t, reload, a.CurrentMontage())
	assert.Equal(t, []string{"Fire"}, interrupted)
	assert.Equal(t, 2, a.PlayCount())
}

func TestMontagePlayIgnoresNil(t *testing.T) {
	a := NewInstance("Mesh1P")

	assert.Equal(t, float32(0), a.MontagePlay(nil, 1))
	assert.Nil(t, a.CurrentMontage())
	assert.Equal(t, 0, a.PlayCount())
}
