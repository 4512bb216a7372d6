// Package app wires the window, input, camera, scene and the globe
// session into the main frame loop.
package app

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/voyagersim/globeflight/internal/config"
	"github.com/voyagersim/globeflight/internal/engine/camera"
	"github.com/voyagersim/globeflight/internal/engine/input"
	"github.com/voyagersim/globeflight/internal/engine/scene"
	"github.com/voyagersim/globeflight/internal/engine/texture"
	"github.com/voyagersim/globeflight/internal/engine/window"
	"github.com/voyagersim/globeflight/internal/globe"
	"github.com/voyagersim/globeflight/internal/logger"
)

// App is the running application.
type App struct {
	cfg     *config.Config
	running bool

	width  int
	height int

	window  *window.Window
	input   *input.Input
	camera  *camera.Orbit
	scene   *scene.Scene
	session *globe.Session

	// surface delivers at most one replacement globe texture; nil once
	// drained or exhausted.
	surface <-chan texture.Result

	lastTitle string
}

// New creates the application.
func New(cfg *config.Config) (*App, error) {
	a := &App{
		cfg:    cfg,
		width:  cfg.Graphics.Width,
		height: cfg.Graphics.Height,
	}

	var err error
	a.window, err = window.New("GlobeFlight",
		cfg.Graphics.Width, cfg.Graphics.Height,
		cfg.Graphics.Fullscreen, cfg.Graphics.VSync)
	if err != nil {
		return nil, fmt.Errorf("creating window: %w", err)
	}

	// Scene needs the GL context the window created.
	a.scene, err = scene.New(cfg.Graphics.Width, cfg.Graphics.Height, cfg.Globe.Radius)
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("creating scene: %w", err)
	}

	a.input = input.New()
	a.camera = camera.NewOrbit(cfg.Globe.Radius)
	a.session = globe.NewSession(globe.Params{
		Radius:        cfg.Globe.Radius,
		ArcSegments:   cfg.Globe.ArcSegments,
		ArcBaseOffset: cfg.Globe.ArcBaseOffset,
		ArcHeight:     cfg.Globe.ArcHeight,
		FlightSpeed:   cfg.Globe.FlightSpeed,
		SpinStep:      cfg.Globe.SpinStep,
		PinOffset:     cfg.Globe.PinOffset,
	}, logger.Log)

	// Surface loading runs beside the simulation and never blocks it.
	a.surface = texture.StartLoader(cfg.Surface.Sources, texture.DefaultFetcher)

	return a, nil
}

// Run drives the frame loop until quit.
func (a *App) Run() error {
	a.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting frame loop")

	for a.running {
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		if a.input.Update() {
			break
		}
		a.handleEvents()

		// One simulation tick per displayed frame.
		a.session.Tick()

		a.pollSurface()
		a.render()
		a.window.SwapBuffers()
		a.updateTitle()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps",
				zap.Int("count", frameCount),
				zap.Float64("dt_ms", dt*1000),
			)
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// Close releases all resources.
func (a *App) Close() {
	if a.scene != nil {
		a.scene.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}

func (a *App) handleEvents() {
	for _, event := range a.input.Events() {
		switch event.Type {
		case input.EventQuit:
			a.running = false

		case input.EventWindowResize:
			a.width = event.Width
			a.height = event.Height
			a.scene.Resize(event.Width, event.Height)

		case input.EventKeyDown:
			switch event.Key {
			case sdl.SCANCODE_ESCAPE:
				a.running = false
			case sdl.SCANCODE_C:
				a.session.Clear()
				logger.Info("route cleared")
			case sdl.SCANCODE_R:
				spinning := a.session.ToggleSpin()
				logger.Info("rotation toggled", zap.Bool("spinning", spinning))
			}

		case input.EventMouseDown:
			if event.Button == sdl.BUTTON_LEFT {
				invVP := a.camera.ViewProjection(a.aspect()).Inverse()
				a.session.Pick(float32(event.MouseX), float32(event.MouseY), a.width, a.height, invVP)
			}

		case input.EventMouseMove:
			if event.Buttons&sdl.ButtonRMask() != 0 {
				a.camera.HandleDrag(float32(event.RelX), float32(event.RelY))
			}

		case input.EventWheel:
			a.camera.HandleZoom(float32(event.WheelY))
		}
	}
}

// pollSurface swaps in a fetched globe texture when one is ready.
func (a *App) pollSurface() {
	if a.surface == nil {
		return
	}
	select {
	case res, ok := <-a.surface:
		a.surface = nil
		if ok {
			a.scene.SetSurface(res.Pixels)
		}
	default:
	}
}

func (a *App) render() {
	craft, hasCraft := a.session.CraftPose()

	a.scene.Render(a.camera.View(), a.camera.Projection(a.aspect()), scene.FrameState{
		Rotation:  a.session.RotationAngle(),
		Pins:      a.session.Pins(),
		PinOffset: a.session.Params().PinOffset,
		Arc:       a.session.Arc(),
		Craft:     craft,
		HasCraft:  hasCraft,
	})
}

// updateTitle mirrors the session counters in the window title.
func (a *App) updateTitle() {
	title := fmt.Sprintf("GlobeFlight — pins %d/%d · flight %s · spin %s",
		a.session.PinCount(), globe.MaxPins,
		onOff(a.session.FlightActive()), onOff(a.session.Spinning()))
	if title != a.lastTitle {
		a.window.SetTitle(title)
		a.lastTitle = title
	}
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func (a *App) aspect() float32 {
	if a.height == 0 {
		return 1
	}
	return float32(a.width) / float32(a.height)
}
