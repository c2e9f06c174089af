// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package glr

import (
	"fmt"

	"github.com/devblok/trigl/gfx"
)

// NewVertexArray creates a new vertex array object.
// Unless Release is called it lives until the context is destroyed.
func NewVertexArray(gl *Gl) (*VertexArray, error) {
	vao, err := gl.genVertexArray()
	if err != nil {
		return nil, err
	}
	return &VertexArray{gl: gl, id: vao}, nil
}

// VertexArray wraps a vertex array object.
type VertexArray struct {
	gl *Gl
	id uint32
}

// ID returns the driver handle.
func (v *VertexArray) ID() uint32 {
	return v.id
}

// Bind makes this the current vertex array object.
func (v *VertexArray) Bind() {
	v.gl.bindVertexArray(v.id)
}

// ClearBinding clears the current vertex array object binding.
func (v *VertexArray) ClearBinding() {
	v.gl.bindVertexArray(0)
}

// Release deletes the vertex array object.
func (v *VertexArray) Release() {
	if v.id == 0 {
		return
	}
	v.gl.DeleteVertexArray(v.id)
	v.id = 0
}

// NewBuffer creates a new buffer object. It has no target
// until Bind is called.
// Unless Release is called it lives until the context is destroyed.
func NewBuffer(gl *Gl) (*Buffer, error) {
	vbo, err := gl.genBuffer()
	if err != nil {
		return nil, err
	}
	return &Buffer{gl: gl, id: vbo}, nil
}

// Buffer wraps a buffer object and remembers the target
// it was last bound to.
type Buffer struct {
	gl     *Gl
	id     uint32
	target gfx.BufferType
	bound  bool
}

// ID returns the driver handle.
func (b *Buffer) ID() uint32 {
	return b.id
}

// Target returns the target the buffer was last bound to.
func (b *Buffer) Target() (gfx.BufferType, bool) {
	return b.target, b.bound
}

// Bind binds the buffer to target and records it.
// A released buffer cannot be bound again.
func (b *Buffer) Bind(target gfx.BufferType) {
	if b.id == 0 {
		return
	}
	b.target, b.bound = target, true
	b.gl.bindBuffer(target, b.id)
}

// ClearBinding unbinds whatever is bound to this buffer's target.
func (b *Buffer) ClearBinding() error {
	if !b.bound {
		return fmt.Errorf("could not clear buffer binding: %w", ErrBufferTypeNotFound)
	}
	b.gl.bindBuffer(b.target, 0)
	return nil
}

// BufferData uploads data to the buffer through its recorded target.
func (b *Buffer) BufferData(data []byte, usage gfx.Usage) error {
	if !b.bound {
		return fmt.Errorf("could not set buffer data: %w", ErrBufferTypeNotFound)
	}
	b.gl.bufferData(b.target, data, usage)
	return nil
}

// Release deletes the buffer object.
func (b *Buffer) Release() {
	if b.id == 0 {
		return
	}
	b.gl.DeleteBuffer(b.id)
	b.id, b.bound = 0, false
}
