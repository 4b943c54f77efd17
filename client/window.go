package client

import (
	"fmt"
	"math"

	"github.com/faiface/mainthread"
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/memmaker/prototype/engine/effects"
	"github.com/memmaker/prototype/engine/input"
	"github.com/memmaker/prototype/engine/util"
	"github.com/pkg/errors"
)

var glfwKeys = map[glfw.Key]input.Key{
	glfw.KeyW:      input.KeyW,
	glfw.KeyA:      input.KeyA,
	glfw.KeyS:      input.KeyS,
	glfw.KeyD:      input.KeyD,
	glfw.KeyE:      input.KeyE,
	glfw.KeyF:      input.KeyF,
	glfw.KeySpace:  input.KeySpaceBar,
	glfw.KeyEscape: input.KeyEscape,
}

var glfwButtons = map[glfw.MouseButton]input.Key{
	glfw.MouseButtonLeft:  input.KeyLeftMouseButton,
	glfw.MouseButtonRight: input.KeyRightMouseButton,
}

// WindowApp shows a session in a glfw window. Nothing is drawn except the clear
// color, which flashes when a boom goes off.
type WindowApp struct {
	Window        *glfw.Window
	session       *Session
	WindowWidth   int
	WindowHeight  int
	lastMouseX    float64
	lastMouseY    float64
	mouseCaptured bool
	flash         float32
	ticks         uint64

	FramesPerSecond float64
	FPSRunningAvg   float64
	FPSMin          float64
	FPSMax          float64
}

func initOpenGL(title string, width, height int) (*glfw.Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, errors.Wrap(err, "glfw init failed")
	}
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	window, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, errors.Wrap(err, "could not create window")
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // enable (1) vsync

	if err = gl.Init(); err != nil {
		glfw.Terminate()
		return nil, errors.Wrap(err, "could not load OpenGL")
	}
	util.LogWindowInfo(fmt.Sprintf("OpenGL version %s", gl.GoStr(gl.GetString(gl.VERSION))))
	return window, nil
}

// RunWindow opens the window on the main thread and plays session until the window closes.
// It must be called from within mainthread.Run.
func RunWindow(session *Session) error {
	settings := session.Settings.Window
	app := &WindowApp{
		session:      session,
		WindowWidth:  settings.Width,
		WindowHeight: settings.Height,
		FPSMin:       math.MaxFloat64,
	}
	err := mainthread.CallErr(func() error {
		window, err := initOpenGL(settings.Title, settings.Width, settings.Height)
		if err != nil {
			return err
		}
		app.Window = window
		window.SetKeyCallback(app.KeyCallback)
		window.SetCursorPosCallback(app.MousePosCallback)
		window.SetMouseButtonCallback(app.MouseButtonCallback)
		app.captureMouse(true)
		return nil
	})
	if err != nil {
		return err
	}
	session.World.Effects.OnSpawn = app.onEffectSpawned
	app.Run()
	return nil
}

func (a *WindowApp) onEffectSpawned(component *effects.Component) {
	if component.Template() == a.session.Assets.Weapon.BoomEffect {
		a.flash = 1
	}
}

func (a *WindowApp) captureMouse(capture bool) {
	a.mouseCaptured = capture
	if capture {
		a.Window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
		a.lastMouseX, a.lastMouseY = a.Window.GetCursorPos()
	} else {
		a.Window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	}
}

func (a *WindowApp) KeyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if key == glfw.KeyEscape && action == glfw.Press {
		if a.mouseCaptured {
			a.captureMouse(false)
		} else {
			w.SetShouldClose(true)
		}
		return
	}
	mapped, ok := glfwKeys[key]
	if !ok {
		return
	}
	switch action {
	case glfw.Press:
		a.session.Input().KeyDown(mapped)
	case glfw.Release:
		a.session.Input().KeyUp(mapped)
	}
}

func (a *WindowApp) MousePosCallback(w *glfw.Window, xpos float64, ypos float64) {
	dx, dy := xpos-a.lastMouseX, ypos-a.lastMouseY
	a.lastMouseX, a.lastMouseY = xpos, ypos
	if !a.mouseCaptured || (dx == 0 && dy == 0) {
		return
	}
	a.session.Input().Axis(input.KeyMouse2D, float32(dx), float32(dy))
}

func (a *WindowApp) MouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	if !a.mouseCaptured {
		if button == glfw.MouseButtonLeft && action == glfw.Press {
			a.captureMouse(true)
		}
		return
	}
	mapped, ok := glfwButtons[button]
	if !ok {
		return
	}
	switch action {
	case glfw.Press:
		a.session.Input().KeyDown(mapped)
	case glfw.Release:
		a.session.Input().KeyUp(mapped)
	}
}

func (a *WindowApp) Run() {
	defer mainthread.Call(glfw.Terminate)
	var previousTime float64
	mainthread.Call(func() { previousTime = glfw.GetTime() })
	shouldQuit := false
	for !shouldQuit {
		mainthread.Call(func() {
			shouldQuit = a.Window.ShouldClose()
			now := glfw.GetTime()
			elapsed := now - previousTime
			previousTime = now

			a.session.Tick(elapsed)
			a.draw(elapsed)
			a.updateStats(elapsed)

			a.Window.SwapBuffers()
			glfw.PollEvents()
		})
		a.ticks++
	}
}

func (a *WindowApp) draw(elapsed float64) {
	a.flash = util.Clamp32(a.flash-float32(elapsed)*2, 0, 1)
	gl.ClearColor(0.1+a.flash*0.9, 0.1+a.flash*0.5, 0.12, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func (a *WindowApp) updateStats(elapsed float64) {
	if elapsed <= 0 {
		return
	}
	a.FramesPerSecond = 1.0 / elapsed
	if a.ticks%60 == 0 {
		sixtyTicksAverage := a.FPSRunningAvg
		a.Window.SetTitle(fmt.Sprintf("%s | FPS: %.0f (Avg: %.0f, Min: %.0f, Max: %.0f) | %s", a.session.Settings.Window.Title, a.FramesPerSecond, sixtyTicksAverage, a.FPSMin, a.FPSMax, a.session.Status()))
		a.FPSRunningAvg = a.FramesPerSecond * (1.0 / 60.0)
		a.FPSMin = math.MaxFloat64
		a.FPSMax = 0
		return
	}
	a.FPSRunningAvg += a.FramesPerSecond * (1.0 / 60.0)
	a.FPSMin = math.Min(a.FPSMin, a.FramesPerSecond)
	a.FPSMax = math.Max(a.FPSMax, a.FramesPerSecond)
}
