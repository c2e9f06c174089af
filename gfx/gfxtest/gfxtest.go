// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package gfxtest provides an in-memory gfx.Functions for tests.
package gfxtest

import (
	"fmt"
	"strings"

	"github.com/devblok/trigl/gfx"
)

// BrokenSource is the marker that makes a shader fail to compile.
const BrokenSource = "#error"

// Call is a single recorded driver call.
type Call struct {
	Name string
	Args []interface{}
}

func (c Call) String() string {
	return fmt.Sprintf("%s%v", c.Name, c.Args)
}

type shader struct {
	kind     gfx.ShaderType
	source   string
	compiled bool
	log      string
}

type program struct {
	attached []uint32
	linked   bool
	log      string
}

// Functions records every call made through it and emulates the
// small part of driver state the wrappers depend on. Any source
// containing BrokenSource fails to compile with CompileLog as the log.
type Functions struct {
	// FailAlloc makes every Gen/Create call return the zero handle.
	FailAlloc bool
	// CompileLog is reported for sources containing BrokenSource.
	CompileLog string

	Calls []Call

	// Buffers maps a buffer handle to its uploaded contents.
	Buffers map[uint32][]byte
	// Bound maps a target to the buffer currently bound to it.
	Bound map[gfx.BufferType]uint32

	BoundVertexArray uint32
	CurrentProgram   uint32

	next     uint32
	shaders  map[uint32]*shader
	programs map[uint32]*program
	deleted  map[uint32]bool
}

// New creates a healthy fake driver.
func New() *Functions {
	return &Functions{
		CompileLog: "0:1(1): error: syntax error, unexpected '#'",
		Buffers:    make(map[uint32][]byte),
		Bound:      make(map[gfx.BufferType]uint32),
		shaders:    make(map[uint32]*shader),
		programs:   make(map[uint32]*program),
		deleted:    make(map[uint32]bool),
	}
}

func (f *Functions) record(name string, args ...interface{}) {
	f.Calls = append(f.Calls, Call{Name: name, Args: args})
}

func (f *Functions) alloc() uint32 {
	if f.FailAlloc {
		return 0
	}
	f.next++
	return f.next
}

// Names returns the names of the recorded calls in order.
func (f *Functions) Names() []string {
	names := make([]string, len(f.Calls))
	for i, c := range f.Calls {
		names[i] = c.Name
	}
	return names
}

// Find returns every recorded call with the given name.
func (f *Functions) Find(name string) []Call {
	var calls []Call
	for _, c := range f.Calls {
		if c.Name == name {
			calls = append(calls, c)
		}
	}
	return calls
}

// Deleted reports whether the object with the given handle was deleted.
func (f *Functions) Deleted(id uint32) bool {
	return f.deleted[id]
}

// Attached returns the shaders attached to program.
func (f *Functions) Attached(prog uint32) []uint32 {
	if p, ok := f.programs[prog]; ok {
		return p.attached
	}
	return nil
}

// ClearColor implements interface
func (f *Functions) ClearColor(r, g, b, a float32) {
	f.record("ClearColor", r, g, b, a)
}

// Clear implements interface
func (f *Functions) Clear() {
	f.record("Clear")
}

// GenVertexArray implements interface
func (f *Functions) GenVertexArray() uint32 {
	id := f.alloc()
	f.record("GenVertexArray", id)
	return id
}

// BindVertexArray implements interface
func (f *Functions) BindVertexArray(vao uint32) {
	f.record("BindVertexArray", vao)
	f.BoundVertexArray = vao
}

// DeleteVertexArray implements interface
func (f *Functions) DeleteVertexArray(vao uint32) {
	f.record("DeleteVertexArray", vao)
	f.deleted[vao] = true
}

// GenBuffer implements interface
func (f *Functions) GenBuffer() uint32 {
	id := f.alloc()
	f.record("GenBuffer", id)
	return id
}

// BindBuffer implements interface
func (f *Functions) BindBuffer(target gfx.BufferType, buffer uint32) {
	f.record("BindBuffer", target, buffer)
	f.Bound[target] = buffer
}

// BufferData implements interface
func (f *Functions) BufferData(target gfx.BufferType, data []byte, usage gfx.Usage) {
	f.record("BufferData", target, len(data), usage)
	if id := f.Bound[target]; id != 0 {
		f.Buffers[id] = append([]byte(nil), data...)
	}
}

// DeleteBuffer implements interface
func (f *Functions) DeleteBuffer(buffer uint32) {
	f.record("DeleteBuffer", buffer)
	f.deleted[buffer] = true
}

// VertexAttribPointer implements interface
func (f *Functions) VertexAttribPointer(index uint32, size int32, xtype gfx.DataType, normalized bool, stride int32, offset uintptr) {
	f.record("VertexAttribPointer", index, size, xtype, normalized, stride, offset)
}

// EnableVertexAttribArray implements interface
func (f *Functions) EnableVertexAttribArray(index uint32) {
	f.record("EnableVertexAttribArray", index)
}

// CreateProgram implements interface
func (f *Functions) CreateProgram() uint32 {
	id := f.alloc()
	f.record("CreateProgram", id)
	if id != 0 {
		f.programs[id] = &program{}
	}
	return id
}

// CreateShader implements interface
func (f *Functions) CreateShader(xtype gfx.ShaderType) uint32 {
	id := f.alloc()
	f.record("CreateShader", xtype, id)
	if id != 0 {
		f.shaders[id] = &shader{kind: xtype}
	}
	return id
}

// ShaderSource implements interface
func (f *Functions) ShaderSource(id uint32, source string) {
	f.record("ShaderSource", id, source)
	if s, ok := f.shaders[id]; ok {
		s.source = source
	}
}

// CompileShader implements interface
func (f *Functions) CompileShader(id uint32) {
	f.record("CompileShader", id)
	s, ok := f.shaders[id]
	if !ok {
		return
	}
	if strings.Contains(s.source, BrokenSource) || strings.TrimSpace(s.source) == "" {
		s.compiled = false
		s.log = f.CompileLog
		return
	}
	s.compiled = true
	s.log = ""
}

// AttachShader implements interface
func (f *Functions) AttachShader(prog, id uint32) {
	f.record("AttachShader", prog, id)
	if p, ok := f.programs[prog]; ok {
		p.attached = append(p.attached, id)
	}
}

// DeleteShader implements interface
func (f *Functions) DeleteShader(id uint32) {
	f.record("DeleteShader", id)
	f.deleted[id] = true
}

// LinkProgram implements interface
func (f *Functions) LinkProgram(prog uint32) {
	f.record("LinkProgram", prog)
	p, ok := f.programs[prog]
	if !ok {
		return
	}
	p.linked, p.log = false, ""
	var vertex, fragment bool
	for _, id := range p.attached {
		s := f.shaders[id]
		if s == nil || !s.compiled {
			p.log = fmt.Sprintf("error: shader %d is not compiled", id)
			return
		}
		switch s.kind {
		case gfx.VertexShaderType:
			vertex = true
		case gfx.FragmentShaderType:
			fragment = true
		}
	}
	switch {
	case len(p.attached) == 0:
		p.log = "error: no shaders attached to the program"
	case !vertex:
		p.log = "error: program lacks a vertex shader"
	case !fragment:
		p.log = "error: program lacks a fragment shader"
	default:
		p.linked = true
	}
}

// UseProgram implements interface
func (f *Functions) UseProgram(prog uint32) {
	f.record("UseProgram", prog)
	f.CurrentProgram = prog
}

// DeleteProgram implements interface
func (f *Functions) DeleteProgram(prog uint32) {
	f.record("DeleteProgram", prog)
	f.deleted[prog] = true
}

// ShaderCompiled implements interface
func (f *Functions) ShaderCompiled(id uint32) bool {
	s, ok := f.shaders[id]
	return ok && s.compiled
}

// ShaderInfoLog implements interface
func (f *Functions) ShaderInfoLog(id uint32, bufSize int32) string {
	if s, ok := f.shaders[id]; ok {
		return truncate(s.log, bufSize)
	}
	return ""
}

// ProgramLinked implements interface
func (f *Functions) ProgramLinked(prog uint32) bool {
	p, ok := f.programs[prog]
	return ok && p.linked
}

// ProgramInfoLog implements interface
func (f *Functions) ProgramInfoLog(prog uint32, bufSize int32) string {
	if p, ok := f.programs[prog]; ok {
		return truncate(p.log, bufSize)
	}
	return ""
}

// DrawArrays implements interface
func (f *Functions) DrawArrays(mode gfx.Primitive, first, count int32) {
	f.record("DrawArrays", mode, first, count)
}

// truncate mirrors the driver writing at most bufSize-1 bytes plus a terminator.
func truncate(s string, bufSize int32) string {
	if bufSize <= 0 {
		return ""
	}
	if max := int(bufSize) - 1; len(s) > max {
		return s[:max]
	}
	return s
}
