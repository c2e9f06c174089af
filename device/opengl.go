// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package device

import (
	"errors"

	"github.com/go-gl/gl/v3.3-core/gl"
	log "github.com/sirupsen/logrus"

	"github.com/devblok/trigl/gfx"
)

// Load resolves every OpenGL 3.3 core entry point through resolve.
// The bindings keep the resolved pointers for the rest of the process,
// so the returned OpenGL is only valid for the context that was current
// when Load was called.
func Load(resolve Resolver) (*OpenGL, error) {
	if resolve == nil {
		return nil, errors.New("device.Load(): no resolver")
	}
	if err := gl.InitWithProcAddrFunc(resolve); err != nil {
		return nil, errors.New("gl.InitWithProcAddrFunc(): " + err.Error())
	}
	return &OpenGL{}, nil
}

// MustLoad is like Load, but a failure to resolve the entry points
// is treated as an unrecoverable environment error and panics.
func MustLoad(resolve Resolver) *OpenGL {
	o, err := Load(resolve)
	if err != nil {
		log.WithError(err).Panic("could not load OpenGL entry points")
	}
	return o
}

var _ Device = OpenGL{}

// OpenGL forwards gfx.Functions to the loaded OpenGL driver.
type OpenGL struct{}

// Info implements interface
func (OpenGL) Info() Info {
	return Info{
		Vendor:   gl.GoStr(gl.GetString(gl.VENDOR)),
		Renderer: gl.GoStr(gl.GetString(gl.RENDERER)),
		Version:  gl.GoStr(gl.GetString(gl.VERSION)),
		GLSL:     gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION)),
	}
}

// ClearColor implements interface
func (OpenGL) ClearColor(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
}

// Clear implements interface
func (OpenGL) Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// GenVertexArray implements interface
func (OpenGL) GenVertexArray() uint32 {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	return vao
}

// BindVertexArray implements interface
func (OpenGL) BindVertexArray(vao uint32) {
	gl.BindVertexArray(vao)
}

// DeleteVertexArray implements interface
func (OpenGL) DeleteVertexArray(vao uint32) {
	gl.DeleteVertexArrays(1, &vao)
}

// GenBuffer implements interface
func (OpenGL) GenBuffer() uint32 {
	var vbo uint32
	gl.GenBuffers(1, &vbo)
	return vbo
}

// BindBuffer implements interface
func (OpenGL) BindBuffer(target gfx.BufferType, buffer uint32) {
	gl.BindBuffer(uint32(target), buffer)
}

// BufferData implements interface
func (OpenGL) BufferData(target gfx.BufferType, data []byte, usage gfx.Usage) {
	if len(data) == 0 {
		gl.BufferData(uint32(target), 0, nil, uint32(usage))
		return
	}
	gl.BufferData(uint32(target), len(data), gl.Ptr(data), uint32(usage))
}

// DeleteBuffer implements interface
func (OpenGL) DeleteBuffer(buffer uint32) {
	gl.DeleteBuffers(1, &buffer)
}

// VertexAttribPointer implements interface
func (OpenGL) VertexAttribPointer(index uint32, size int32, xtype gfx.DataType, normalized bool, stride int32, offset uintptr) {
	gl.VertexAttribPointerWithOffset(index, size, uint32(xtype), normalized, stride, offset)
}

// EnableVertexAttribArray implements interface
func (OpenGL) EnableVertexAttribArray(index uint32) {
	gl.EnableVertexAttribArray(index)
}

// CreateProgram implements interface
func (OpenGL) CreateProgram() uint32 {
	return gl.CreateProgram()
}

// CreateShader implements interface
func (OpenGL) CreateShader(xtype gfx.ShaderType) uint32 {
	return gl.CreateShader(uint32(xtype))
}

// ShaderSource implements interface
func (OpenGL) ShaderSource(shader uint32, source string) {
	csource, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csource, nil)
	free()
}

// CompileShader implements interface
func (OpenGL) CompileShader(shader uint32) {
	gl.CompileShader(shader)
}

// AttachShader implements interface
func (OpenGL) AttachShader(program, shader uint32) {
	gl.AttachShader(program, shader)
}

// DeleteShader implements interface
func (OpenGL) DeleteShader(shader uint32) {
	gl.DeleteShader(shader)
}

// LinkProgram implements interface
func (OpenGL) LinkProgram(program uint32) {
	gl.LinkProgram(program)
}

// UseProgram implements interface
func (OpenGL) UseProgram(program uint32) {
	gl.UseProgram(program)
}

// DeleteProgram implements interface
func (OpenGL) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

// ShaderCompiled implements interface
func (OpenGL) ShaderCompiled(shader uint32) bool {
	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	return status != gl.FALSE
}

// ShaderInfoLog implements interface
func (OpenGL) ShaderInfoLog(shader uint32, bufSize int32) string {
	if bufSize <= 0 {
		return ""
	}
	var length int32
	buf := make([]uint8, bufSize)
	gl.GetShaderInfoLog(shader, bufSize, &length, &buf[0])
	return string(buf[:length])
}

// ProgramLinked implements interface
func (OpenGL) ProgramLinked(program uint32) bool {
	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	return status != gl.FALSE
}

// ProgramInfoLog implements interface
func (OpenGL) ProgramInfoLog(program uint32, bufSize int32) string {
	if bufSize <= 0 {
		return ""
	}
	var length int32
	buf := make([]uint8, bufSize)
	gl.GetProgramInfoLog(program, bufSize, &length, &buf[0])
	return string(buf[:length])
}

// DrawArrays implements interface
func (OpenGL) DrawArrays(mode gfx.Primitive, first, count int32) {
	gl.DrawArrays(uint32(mode), first, count)
}
