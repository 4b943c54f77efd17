package util

import (
	"fmt"
	"math"
	"strings"
	"time"
)

type PhaseStats struct {
	name           string
	lastDuration   float64
	totalDuration  float64
	executionCount int64
	minDuration    float64
	maxDuration    float64
}

func (s *PhaseStats) Average() float64 {
	if s.executionCount == 0 {
		return 0
	}
	return s.totalDuration / float64(s.executionCount)
}

func (s *PhaseStats) Count() int64 {
	return s.executionCount
}

func (s *PhaseStats) String() string {
	return fmt.Sprintf("%s last: %.2fms, avg: %.2fms, min: %.2fms, max: %.2fms", s.name, s.lastDuration, s.Average(), s.minDuration, s.maxDuration)
}

// FrameTimer measures named phases of a frame, in milliseconds.
type FrameTimer struct {
	phases map[string]*PhaseStats
	order  []string
}

func NewFrameTimer() *FrameTimer {
	return &FrameTimer{
		phases: make(map[string]*PhaseStats),
	}
}

func (t *FrameTimer) Phase(name string) *PhaseStats {
	return t.phases[name]
}

func (t *FrameTimer) Reset() {
	for _, s := range t.phases {
		*s = PhaseStats{name: s.name, minDuration: math.MaxFloat64}
	}
}

func (t *FrameTimer) String() string {
	lines := make([]string, 0, len(t.order))
	for _, name := range t.order {
		lines = append(lines, t.phases[name].String())
	}
	return strings.Join(lines, "\n")
}

// Start begins measuring phase name. Call the returned function when the phase is done.
func (t *FrameTimer) Start(name string) func() float64 {
	s, ok := t.phases[name]
	if !ok {
		t.order = append(t.order, name)
		s = &PhaseStats{name: name, minDuration: math.MaxFloat64}
		t.phases[name] = s
	}
	start := time.Now()
	return func() float64 {
		ms := float64(time.Since(start).Microseconds()) / 1000.0
		s.lastDuration = ms
		s.totalDuration += ms
		s.executionCount++
		s.minDuration = math.Min(s.minDuration, ms)
		s.maxDuration = math.Max(s.maxDuration, ms)
		return ms
	}
}
