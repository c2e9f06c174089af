// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import (
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/veandco/go-sdl2/sdl"
)

func TestWindowFlags(t *testing.T) {
	c := qt.New(t)
	flags := windowFlags()
	c.Assert(flags&sdl.WINDOW_OPENGL, qt.Not(qt.Equals), uint32(0))
	c.Assert(flags&sdl.WINDOW_ALLOW_HIGHDPI, qt.Not(qt.Equals), uint32(0))
	c.Assert(flags&sdl.WINDOW_RESIZABLE, qt.Equals, uint32(0))
	c.Assert(flags&sdl.WINDOW_BORDERLESS, qt.Equals, uint32(0))
}

func TestContextFlags(t *testing.T) {
	c := qt.New(t)
	c.Assert(contextFlags("linux", false), qt.Equals, 0)
	c.Assert(contextFlags("linux", true), qt.Equals, sdl.GL_CONTEXT_DEBUG_FLAG)
	c.Assert(contextFlags("darwin", false), qt.Equals, sdl.GL_CONTEXT_FORWARD_COMPATIBLE_FLAG)
	c.Assert(contextFlags("darwin", true), qt.Equals,
		sdl.GL_CONTEXT_DEBUG_FLAG|sdl.GL_CONTEXT_FORWARD_COMPATIBLE_FLAG)
}

func TestParseSwapInterval(t *testing.T) {
	c := qt.New(t)
	for _, s := range []SwapInterval{Immediate, Vsync, AdaptiveVsync} {
		got, err := ParseSwapInterval(s.String())
		c.Assert(err, qt.IsNil)
		c.Assert(got, qt.Equals, s)
	}

	_, err := ParseSwapInterval("sometimes")
	c.Assert(err, qt.ErrorMatches, `unknown swap interval "sometimes"`)
	c.Assert(SwapInterval(7).String(), qt.Equals, "SwapInterval(7)")
}

func TestStateString(t *testing.T) {
	c := qt.New(t)
	c.Assert(Uninitialized.String(), qt.Equals, "Uninitialized")
	c.Assert(ProgramLinked.String(), qt.Equals, "ProgramLinked")
	c.Assert(Terminated.String(), qt.Equals, "Terminated")
	c.Assert(State(99).String(), qt.Equals, "Unknown")
}
