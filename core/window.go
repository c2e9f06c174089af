// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import (
	"fmt"
	"runtime"
	"unsafe"

	log "github.com/sirupsen/logrus"
	"github.com/veandco/go-sdl2/sdl"
)

// Requested OpenGL context version
const (
	ContextMajorVersion = 3
	ContextMinorVersion = 3
)

// SwapInterval controls how buffer swaps wait for the display
type SwapInterval int

// Swap intervals as understood by SDL
const (
	Immediate     SwapInterval = 0
	Vsync         SwapInterval = 1
	AdaptiveVsync SwapInterval = -1
)

func (s SwapInterval) String() string {
	switch s {
	case Immediate:
		return "immediate"
	case Vsync:
		return "vsync"
	case AdaptiveVsync:
		return "adaptive"
	default:
		return fmt.Sprintf("SwapInterval(%d)", int(s))
	}
}

// ParseSwapInterval parses the names returned by SwapInterval.String
func ParseSwapInterval(name string) (SwapInterval, error) {
	for _, s := range []SwapInterval{Immediate, Vsync, AdaptiveVsync} {
		if s.String() == name {
			return s, nil
		}
	}
	return Immediate, fmt.Errorf("unknown swap interval %q", name)
}

// windowFlags are fixed: high-DPI aware, decorated, not resizable.
func windowFlags() uint32 {
	return sdl.WINDOW_OPENGL | sdl.WINDOW_ALLOW_HIGHDPI | sdl.WINDOW_SHOWN
}

func contextFlags(goos string, debug bool) int {
	flags := 0
	if debug {
		flags |= sdl.GL_CONTEXT_DEBUG_FLAG
	}
	if goos == "darwin" {
		flags |= sdl.GL_CONTEXT_FORWARD_COMPATIBLE_FLAG
	}
	return flags
}

// NewWindow initialises SDL and opens a window with a current
// OpenGL core profile context.
func NewWindow(cfg WindowConfiguration) (*Window, error) {
	if err := sdl.Init(sdl.INIT_EVERYTHING); err != nil {
		return nil, fmt.Errorf("sdl.Init(): %w", err)
	}

	attributes := []struct {
		attr  sdl.GLattr
		value int
	}{
		{sdl.GL_CONTEXT_MAJOR_VERSION, ContextMajorVersion},
		{sdl.GL_CONTEXT_MINOR_VERSION, ContextMinorVersion},
		{sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE},
		{sdl.GL_CONTEXT_FLAGS, contextFlags(runtime.GOOS, debugContext)},
		{sdl.GL_DOUBLEBUFFER, 1},
	}
	for _, a := range attributes {
		if err := sdl.GLSetAttribute(a.attr, a.value); err != nil {
			sdl.Quit()
			return nil, fmt.Errorf("sdl.GLSetAttribute(): %w", err)
		}
	}

	window, err := sdl.CreateWindow(cfg.Title,
		sdl.WINDOWPOS_UNDEFINED,
		sdl.WINDOWPOS_UNDEFINED,
		cfg.Width,
		cfg.Height,
		windowFlags())
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("sdl.CreateWindow(): %w", err)
	}

	context, err := window.GLCreateContext()
	if err != nil {
		window.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("sdl.GLCreateContext(): %w", err)
	}

	log.WithField("title", cfg.Title).
		WithField("width", cfg.Width).
		WithField("height", cfg.Height).
		WithField("debug", debugContext).
		Info("Window created")

	return &Window{
		window:  window,
		context: context,
	}, nil
}

// Window is an SDL window owning the OpenGL context
type Window struct {
	window  *sdl.Window
	context sdl.GLContext
}

// PollEvent implements Surface
func (w *Window) PollEvent() (sdl.Event, uint32) {
	event := sdl.PollEvent()
	if event == nil {
		return nil, 0
	}
	return event, event.GetTimestamp()
}

// SetSwapInterval implements Surface
func (w *Window) SetSwapInterval(interval SwapInterval) error {
	if err := sdl.GLSetSwapInterval(int(interval)); err != nil {
		return fmt.Errorf("set swap interval %s: %w", interval, err)
	}
	return nil
}

// SwapWindow implements Surface
func (w *Window) SwapWindow() {
	w.window.GLSwap()
}

// ProcAddress resolves an OpenGL entry point of the current context
func (w *Window) ProcAddress(name string) unsafe.Pointer {
	return sdl.GLGetProcAddress(name)
}

// Destroy deletes the context and the window, then shuts SDL down
func (w *Window) Destroy() {
	sdl.GLDeleteContext(w.context)
	if err := w.window.Destroy(); err != nil {
		log.WithError(err).Warn("Window destroy failed")
	}
	sdl.Quit()
}
