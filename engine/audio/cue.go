package audio

import (
	"math"
	"math/rand"
	"sort"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/pkg/errors"
)

type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// ParseWaveType accepts sine, square, saw and noise.
func ParseWaveType(name string) (WaveType, error) {
	switch name {
	case "sine", "":
		return WaveSine, nil
	case "square":
		return WaveSquare, nil
	case "saw":
		return WaveSaw, nil
	case "noise":
		return WaveNoise, nil
	}
	return WaveSine, errors.Errorf("unknown wave type '%s'", name)
}

// Cue is a synthesized sound.
type Cue struct {
	Name      string
	Frequency float64
	Duration  time.Duration
	Attack    time.Duration
	Release   time.Duration
	Wave      WaveType
	Volume    float64
}

func (c *Cue) String() string {
	return c.Name
}

// Streamer renders the cue at the given rate and volume.
func (c *Cue) Streamer(rate beep.SampleRate, volume float64) beep.Streamer {
	osc := newOscillator(c.Frequency, c.Duration, c.Wave, rate)
	shaped := newEnvelope(osc, c.Duration, c.Attack, c.Release, rate)
	return newVolume(shaped, volume*c.Volume)
}

type Library struct {
	cues map[string]*Cue
}

func NewLibrary() *Library {
	return &Library{cues: make(map[string]*Cue)}
}

func (l *Library) Register(cue *Cue) {
	l.cues[cue.Name] = cue
}

// Get returns nil for an empty name and an error for an unknown one.
func (l *Library) Get(name string) (*Cue, error) {
	if name == "" {
		return nil, nil
	}
	cue, ok := l.cues[name]
	if !ok {
		return nil, errors.Errorf("unknown sound cue '%s'", name)
	}
	return cue, nil
}

func (l *Library) Names() []string {
	names := make([]string, 0, len(l.cues))
	for name := range l.cues {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

func newOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope fades the stream in over attack and out over release.
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

func newEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	releaseStart := e.totalSamples - e.releaseSamples
	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}
		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.releaseSamples > 0 && e.position >= releaseStart {
			vol = math.Max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// math.Log2(0) is -Inf, zero volume is made silent instead
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
