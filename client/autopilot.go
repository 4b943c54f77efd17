package client

import (
	"fmt"
	"math"

	"github.com/memmaker/prototype/engine/input"
	"github.com/memmaker/prototype/engine/util"
)

// Autopilot plays a session without a player: it walks forward until the pawn
// carries a weapon, then fires and casts booms at fixed intervals.
type Autopilot struct {
	session    *Session
	frame      int
	FireEvery  int
	BoomEvery  int
	fired      int
	boomsTried int
}

func NewAutopilot(session *Session) *Autopilot {
	return &Autopilot{session: session, FireEvery: 20, BoomEvery: 90}
}

func pulse(subsystem *input.Subsystem, key input.Key, down bool) {
	if down {
		subsystem.KeyDown(key)
	} else {
		subsystem.KeyUp(key)
	}
}

func (a *Autopilot) Step(deltaTime float64) {
	subsystem := a.session.Input()
	pawn := a.session.Pawn()
	a.frame++
	armed := pawn != nil && pawn.Weapon != nil
	pulse(subsystem, input.KeyW, !armed)
	if armed {
		fire := a.frame%a.FireEvery == 0
		boom := a.frame%a.BoomEvery == 0
		pulse(subsystem, input.KeyLeftMouseButton, fire)
		pulse(subsystem, input.KeyE, boom)
		if fire {
			a.fired++
		}
		if boom {
			a.boomsTried++
		}
		subsystem.Axis(input.KeyMouse2D, 3, 0)
	}
	a.session.Tick(deltaTime)
}

// Run plays frames frames at a fixed step and logs the session status every second.
func (a *Autopilot) Run(frames int, deltaTime float64) {
	perSecond := max(1, int(math.Round(1/deltaTime)))
	for i := 0; i < frames; i++ {
		a.Step(deltaTime)
		if i%perSecond == 0 {
			util.LogGameInfo(fmt.Sprintf("[Autopilot] frame %d: %s", i, a.session.Status()))
		}
	}
	util.LogGameInfo(fmt.Sprintf("[Autopilot] %d shots, %d booms tried: %s", a.fired, a.boomsTried, a.session.Status()))
}
