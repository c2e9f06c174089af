// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import (
	"github.com/veandco/go-sdl2/sdl"
)

// Surface is the part of a window the application loop drives.
// Window implements it.
type Surface interface {
	// PollEvent returns the next pending event without blocking,
	// nil when the queue is empty. The second value is the event timestamp.
	PollEvent() (sdl.Event, uint32)

	// SetSwapInterval sets how buffer swaps are synchronised
	// with the display refresh
	SetSwapInterval(SwapInterval) error

	// SwapWindow presents the back buffer
	SwapWindow()
}

// State is a lifecycle stage of the application
type State int

// Application lifecycle, stages only ever advance
const (
	Uninitialized State = iota
	WindowReady
	ContextReady
	BuffersUploaded
	ProgramLinked
	Running
	Terminated
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "Uninitialized"
	case WindowReady:
		return "WindowReady"
	case ContextReady:
		return "ContextReady"
	case BuffersUploaded:
		return "BuffersUploaded"
	case ProgramLinked:
		return "ProgramLinked"
	case Running:
		return "Running"
	case Terminated:
		return "Terminated"
	default:
		return "Unknown"
	}
}
