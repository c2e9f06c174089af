// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package glr implements the OpenGL resource wrappers: the context
// handle, buffers, vertex arrays, shader stages and programs.
package glr

import (
	"errors"
	"fmt"

	"github.com/devblok/trigl/gfx"
)

// InfoLogSize is the size of the buffer compile and link logs are read into.
const InfoLogSize = 1024

// ErrBufferTypeNotFound is returned by buffer operations that need
// a bound target when the buffer was never bound.
var ErrBufferTypeNotFound = errors.New("buffer type not found")

// LogError carries the driver's log for a failed compile or link.
type LogError struct {
	Subject string
	Log     string
}

func (e *LogError) Error() string {
	return e.Subject + ": " + e.Log
}

// Gl is the context handle. It owns the table of entry points
// resolved for one window and forwards calls to it.
type Gl struct {
	fns gfx.Functions
}

// New wraps a loaded table of entry points.
func New(fns gfx.Functions) *Gl {
	return &Gl{fns: fns}
}

// ClearColor sets the color used by Clear.
func (g *Gl) ClearColor(r, gr, b, a float32) {
	g.fns.ClearColor(r, gr, b, a)
}

// Clear clears the color buffer.
func (g *Gl) Clear() {
	g.fns.Clear()
}

func (g *Gl) genVertexArray() (uint32, error) {
	if vao := g.fns.GenVertexArray(); vao != 0 {
		return vao, nil
	}
	return 0, errors.New("could not create vertex array")
}

func (g *Gl) bindVertexArray(vao uint32) {
	g.fns.BindVertexArray(vao)
}

func (g *Gl) genBuffer() (uint32, error) {
	if vbo := g.fns.GenBuffer(); vbo != 0 {
		return vbo, nil
	}
	return 0, errors.New("could not create buffer object")
}

func (g *Gl) bindBuffer(target gfx.BufferType, vbo uint32) {
	g.fns.BindBuffer(target, vbo)
}

func (g *Gl) bufferData(target gfx.BufferType, data []byte, usage gfx.Usage) {
	g.fns.BufferData(target, data, usage)
}

// VertexAttribPointer describes the layout of one vertex attribute
// in the currently bound array buffer.
func (g *Gl) VertexAttribPointer(index uint32, size int32, xtype gfx.DataType, normalized bool, stride int32, offset uintptr) {
	g.fns.VertexAttribPointer(index, size, xtype, normalized, stride, offset)
}

// EnableVertexAttribArray enables the attribute at index.
func (g *Gl) EnableVertexAttribArray(index uint32) {
	g.fns.EnableVertexAttribArray(index)
}

// CreateProgram creates an empty program object.
func (g *Gl) CreateProgram() (uint32, error) {
	if p := g.fns.CreateProgram(); p != 0 {
		return p, nil
	}
	return 0, errors.New("could not create program")
}

// CreateShader creates an empty shader object of the given kind.
func (g *Gl) CreateShader(kind gfx.ShaderType) (uint32, error) {
	if s := g.fns.CreateShader(kind); s != 0 {
		return s, nil
	}
	return 0, fmt.Errorf("could not create %s shader", kind)
}

// ShaderSource replaces the source text of shader.
func (g *Gl) ShaderSource(shader uint32, source string) {
	g.fns.ShaderSource(shader, source)
}

// CompileShader compiles shader. Check the result with ShaderStatus.
func (g *Gl) CompileShader(shader uint32) {
	g.fns.CompileShader(shader)
}

// LinkProgram links program. Check the result with ProgramStatus.
func (g *Gl) LinkProgram(program uint32) {
	g.fns.LinkProgram(program)
}

// ShaderStatus returns a *LogError with the compile log
// when shader did not compile.
func (g *Gl) ShaderStatus(shader uint32) error {
	if g.fns.ShaderCompiled(shader) {
		return nil
	}
	return &LogError{
		Subject: fmt.Sprintf("shader %d compile error", shader),
		Log:     clamp(g.fns.ShaderInfoLog(shader, InfoLogSize)),
	}
}

// ProgramStatus returns a *LogError with the link log
// when program did not link.
func (g *Gl) ProgramStatus(program uint32) error {
	if g.fns.ProgramLinked(program) {
		return nil
	}
	return &LogError{
		Subject: "program link error",
		Log:     clamp(g.fns.ProgramInfoLog(program, InfoLogSize)),
	}
}

// AttachShader attaches shader to program.
func (g *Gl) AttachShader(program, shader uint32) {
	g.fns.AttachShader(program, shader)
}

// DeleteShader deletes shader.
func (g *Gl) DeleteShader(shader uint32) {
	g.fns.DeleteShader(shader)
}

// DeleteProgram deletes program.
func (g *Gl) DeleteProgram(program uint32) {
	g.fns.DeleteProgram(program)
}

// DeleteBuffer deletes a buffer object.
func (g *Gl) DeleteBuffer(vbo uint32) {
	g.fns.DeleteBuffer(vbo)
}

// DeleteVertexArray deletes a vertex array object.
func (g *Gl) DeleteVertexArray(vao uint32) {
	g.fns.DeleteVertexArray(vao)
}

// UseProgram makes program current.
func (g *Gl) UseProgram(program uint32) {
	g.fns.UseProgram(program)
}

// DrawArrays draws count vertices as triangles, starting at first.
func (g *Gl) DrawArrays(first, count int32) {
	g.fns.DrawArrays(gfx.Triangles, first, count)
}

func clamp(log string) string {
	if len(log) > InfoLogSize {
		return log[:InfoLogSize]
	}
	return log
}
