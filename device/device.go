// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package device loads the OpenGL entry points for a window's context.
package device

import (
	"unsafe"

	"github.com/devblok/trigl/gfx"
)

// Resolver looks up a rendering API entry point by its symbol name.
// It must be called while the owning context is current.
type Resolver func(name string) unsafe.Pointer

// Info describes the driver behind a loaded context
type Info struct {
	Vendor   string
	Renderer string
	Version  string
	GLSL     string
}

// Device describes a loaded rendering device
type Device interface {
	gfx.Functions

	// Info returns the driver identification strings
	Info() Info
}
