// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/devblok/trigl/gfx"
	"github.com/devblok/trigl/gfx/glr"
	"github.com/devblok/trigl/model"
)

// NewApp creates an application over a window whose
// OpenGL entry points were already resolved into fns.
func NewApp(surface Surface, fns gfx.Functions, cfg Configuration) *App {
	return &App{
		surface: surface,
		gl:      glr.New(fns),
		cfg:     cfg,
		time:    NewTime(cfg.Time),
		state:   ContextReady,
	}
}

// App uploads one mesh, links one program and draws the mesh
// every frame until the window is asked to close.
type App struct {
	surface Surface
	gl      *glr.Gl
	cfg     Configuration
	time    *Time
	state   State

	vao     *glr.VertexArray
	vbo     *glr.Buffer
	program *glr.Program
	count   int32
}

// State gets the current lifecycle stage
func (a *App) State() State {
	return a.state
}

// Time gets the frame statistics
func (a *App) Time() *Time {
	return a.time
}

// Setup uploads mesh into a new vertex buffer and builds the program
// from shaders. A failure terminates the application.
func (a *App) Setup(mesh model.Mesh, shaders []glr.ShaderOpts) error {
	if a.state != ContextReady {
		return fmt.Errorf("setup: application is %s", a.state)
	}
	if err := a.upload(mesh); err != nil {
		a.state = Terminated
		return fmt.Errorf("setup: %w", err)
	}
	a.state = BuffersUploaded

	program, err := glr.NewProgram(a.gl, shaders...)
	if err != nil {
		a.state = Terminated
		return fmt.Errorf("setup: %w", err)
	}
	a.program = program
	log.WithField("program", program.ID()).WithField("stages", len(shaders)).Info("Program linked")

	if err := a.surface.SetSwapInterval(a.cfg.Window.SwapInterval); err != nil {
		a.state = Terminated
		return fmt.Errorf("setup: %w", err)
	}
	a.state = ProgramLinked
	return nil
}

func (a *App) upload(mesh model.Mesh) error {
	c := a.cfg.Renderer.ClearColor
	a.gl.ClearColor(c.X(), c.Y(), c.Z(), c.W())

	vao, err := glr.NewVertexArray(a.gl)
	if err != nil {
		return err
	}
	a.vao = vao
	vao.Bind()

	vbo, err := glr.NewBuffer(a.gl)
	if err != nil {
		return err
	}
	a.vbo = vbo
	vbo.Bind(gfx.ArrayBuffer)
	if err := vbo.BufferData(mesh.Bytes(), gfx.StaticDraw); err != nil {
		return err
	}

	a.gl.VertexAttribPointer(model.PositionLocation, model.PositionComponents, gfx.Float, false, model.Stride, model.PositionOffset)
	a.gl.EnableVertexAttribArray(model.PositionLocation)
	a.count = mesh.Count()

	log.WithField("vertices", a.count).WithField("bytes", len(mesh.Bytes())).Debug("Mesh uploaded")
	return nil
}

// Run draws frames until a quit event arrives
func (a *App) Run() error {
	if a.state != ProgramLinked {
		return fmt.Errorf("run: application is %s", a.state)
	}
	a.state = Running

MainLoop:
	for {
		for event, _ := a.surface.PollEvent(); event != nil; event, _ = a.surface.PollEvent() {
			if quits(event) {
				break MainLoop
			}
		}

		a.gl.Clear()
		a.gl.DrawArrays(0, a.count)
		a.surface.SwapWindow()
		a.time.Frame()
	}

	a.state = Terminated
	log.WithField("frames", a.time.Frames()).
		WithField("elapsed", a.time.Elapsed()).
		Info("Main loop exited")
	return nil
}

// Release deletes the program and the buffers. It is safe to call
// at any stage, objects that were never created are skipped.
func (a *App) Release() {
	if a.program != nil {
		a.program.Release()
	}
	if a.vbo != nil {
		a.vbo.Release()
	}
	if a.vao != nil {
		a.vao.Release()
	}
}

// quits reports whether event asks the loop to stop. Only quit
// events do, every other kind is ignored.
func quits(event sdl.Event) bool {
	_, ok := event.(*sdl.QuitEvent)
	return ok
}
