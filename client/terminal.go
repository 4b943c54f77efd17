package client

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/memmaker/prototype/engine/input"
	"github.com/memmaker/prototype/engine/util"
	"github.com/pkg/errors"
	"golang.org/x/term"
)

const (
	terminalFrame = time.Second / 60
	// terminals only report presses, keys count as held for this many frames
	holdFrames = 8
	lookStep   = 40
)

type terminalEvent struct {
	key  input.Key
	look [2]float32
	quit bool
}

var terminalKeys = map[byte]input.Key{
	'w': input.KeyW,
	'a': input.KeyA,
	's': input.KeyS,
	'd': input.KeyD,
	'e': input.KeyE,
	'f': input.KeyLeftMouseButton,
	' ': input.KeySpaceBar,
}

// translateTerminalInput turns raw terminal bytes into key presses. Arrow keys look around.
func translateTerminalInput(buf []byte) []terminalEvent {
	var events []terminalEvent
	for i := 0; i < len(buf); i++ {
		b := buf[i]
		switch {
		case b == 'q' || b == 3:
			events = append(events, terminalEvent{quit: true})
		case b == 0x1b && i+2 < len(buf) && buf[i+1] == '[':
			switch buf[i+2] {
			case 'A':
				events = append(events, terminalEvent{key: input.KeyMouse2D, look: [2]float32{0, -lookStep}})
			case 'B':
				events = append(events, terminalEvent{key: input.KeyMouse2D, look: [2]float32{0, lookStep}})
			case 'C':
				events = append(events, terminalEvent{key: input.KeyMouse2D, look: [2]float32{lookStep, 0}})
			case 'D':
				events = append(events, terminalEvent{key: input.KeyMouse2D, look: [2]float32{-lookStep, 0}})
			}
			i += 2
		case b == 0x1b:
			events = append(events, terminalEvent{quit: true})
		default:
			if b >= 'A' && b <= 'Z' {
				b += 'a' - 'A'
			}
			if key, ok := terminalKeys[b]; ok {
				events = append(events, terminalEvent{key: key})
			}
		}
	}
	return events
}

// heldKeys releases keys that have not been pressed again for holdFrames frames.
type heldKeys struct {
	framesLeft map[input.Key]int
}

func newHeldKeys() *heldKeys {
	return &heldKeys{framesLeft: make(map[input.Key]int)}
}

func (h *heldKeys) press(subsystem *input.Subsystem, key input.Key) {
	if _, held := h.framesLeft[key]; !held {
		subsystem.KeyDown(key)
	}
	h.framesLeft[key] = holdFrames
}

func (h *heldKeys) advance(subsystem *input.Subsystem) {
	for key, left := range h.framesLeft {
		if left <= 1 {
			subsystem.KeyUp(key)
			delete(h.framesLeft, key)
			continue
		}
		h.framesLeft[key] = left - 1
	}
}

// readChunks forwards what r delivers until r fails or done is closed. A reader
// blocked in Read notices done once that read returns. The channel is closed on exit.
func readChunks(r io.Reader, done <-chan struct{}) <-chan []byte {
	chunks := make(chan []byte, 16)
	go func() {
		defer close(chunks)
		buf := make([]byte, 64)
		for {
			n, err := r.Read(buf)
			if err != nil {
				return
			}
			select {
			case <-done:
				return
			default:
			}
			chunk := make([]byte, n)
			copy(chunk, buf[:n])
			select {
			case chunks <- chunk:
			case <-done:
				return
			}
		}
	}()
	return chunks
}

// RunTerminal plays session in a raw mode terminal until q, Escape or Ctrl-C is pressed.
func RunTerminal(session *Session) error {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return errors.New("stdin is not a terminal")
	}
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return errors.Wrap(err, "could not enter raw mode")
	}
	defer term.Restore(fd, oldState)

	done := make(chan struct{})
	defer close(done)
	reads := readChunks(os.Stdin, done)

	fmt.Print("wasd move, arrows look, space jump, f fire, e boom, q quit\r\n")
	held := newHeldKeys()
	ticker := time.NewTicker(terminalFrame)
	defer ticker.Stop()
	subsystem := session.Input()
	frames := 0
	for {
		select {
		case chunk, ok := <-reads:
			if !ok {
				return nil
			}
			for _, event := range translateTerminalInput(chunk) {
				switch {
				case event.quit:
					fmt.Print("\r\n")
					util.LogGameInfo("[Terminal] quit")
					return nil
				case event.key == input.KeyMouse2D:
					subsystem.Axis(input.KeyMouse2D, event.look[0], event.look[1])
				default:
					held.press(subsystem, event.key)
				}
			}
		case <-ticker.C:
			session.Tick(terminalFrame.Seconds())
			held.advance(subsystem)
			frames++
			if frames%10 == 0 {
				fmt.Printf("\r\x1b[K%s", session.Status())
			}
		}
	}
}
