package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/memmaker/prototype/engine/util"
	"github.com/pkg/errors"
)

const defaultSampleRate = beep.SampleRate(44100)

type Settings struct {
	SampleRate        int
	MasterVolume      float64
	AttenuationRadius float32
}

// Manager plays cues through a beep mixer. Until Initialize is called the cues are
// only counted, which keeps headless runs and tests away from the sound device.
type Manager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	rate        beep.SampleRate
	master      float64
	radius      float32
	listener    mgl32.Vec3
	initialized bool
	played      int
}

func NewManager(settings Settings) *Manager {
	rate := beep.SampleRate(settings.SampleRate)
	if rate <= 0 {
		rate = defaultSampleRate
	}
	radius := settings.AttenuationRadius
	if radius <= 0 {
		radius = 4000
	}
	return &Manager{
		mixer:  &beep.Mixer{},
		rate:   rate,
		master: settings.MasterVolume,
		radius: radius,
	}
}

func (m *Manager) Initialize() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}
	if err := speaker.Init(m.rate, m.rate.N(time.Millisecond*100)); err != nil {
		return errors.Wrap(err, "could not open audio device")
	}
	speaker.Play(m.mixer)
	m.initialized = true
	util.LogAudioDebug(fmt.Sprintf("[Audio] speaker running at %d Hz", m.rate))
	return nil
}

func (m *Manager) Cleanup() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	m.mixer.Clear()
	m.initialized = false
}

func (m *Manager) SetListener(location mgl32.Vec3) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listener = location
}

// Attenuation is the linear falloff of a sound at location, as heard by the listener.
func (m *Manager) Attenuation(location mgl32.Vec3) float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.attenuation(location)
}

func (m *Manager) attenuation(location mgl32.Vec3) float64 {
	distance := location.Sub(m.listener).Len()
	return util.Clamp(1-float64(distance/m.radius), 0, 1)
}

// PlaySoundAtLocation starts cue at location. It returns false for a nil cue.
func (m *Manager) PlaySoundAtLocation(cue *Cue, location mgl32.Vec3) bool {
	if cue == nil {
		return false
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	volume := m.master * m.attenuation(location)
	m.played++
	util.LogAudioDebug(fmt.Sprintf("[Audio] %s at %v (volume %0.2f)", cue, location, volume))
	if !m.initialized {
		return true
	}
	speaker.Lock()
	m.mixer.Add(cue.Streamer(m.rate, volume))
	speaker.Unlock()
	return true
}

func (m *Manager) PlayCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.played
}
