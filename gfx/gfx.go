// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package gfx defines the rendering API surface that drivers must implement,
// along with the enumerations shared by the wrappers built on top of it.
package gfx

// Releasable defines any driver-side object that can be freed.
type Releasable interface {

	// Release releases the driver object held by the implementing structure.
	Release()
}

// BufferType is the target a buffer object is bound to.
type BufferType uint32

// Buffer targets, values match the OpenGL enums.
const (
	// ArrayBuffer holds arrays of vertex data for drawing.
	ArrayBuffer BufferType = 0x8892
	// ElementArrayBuffer holds indexes of which vertices to use for drawing.
	ElementArrayBuffer BufferType = 0x8893
)

func (t BufferType) String() string {
	switch t {
	case ArrayBuffer:
		return "array buffer"
	case ElementArrayBuffer:
		return "element array buffer"
	default:
		return "unknown buffer"
	}
}

// ShaderType represents the type of shader stage
type ShaderType uint32

// Identifies shader objects with their types
const (
	VertexShaderType   ShaderType = 0x8b31
	FragmentShaderType ShaderType = 0x8b30
)

func (t ShaderType) String() string {
	switch t {
	case VertexShaderType:
		return "Vertex"
	case FragmentShaderType:
		return "Fragment"
	default:
		return "Unknown"
	}
}

// Usage is the expected access pattern of buffer data.
type Usage uint32

// Usage hints
const (
	StaticDraw  Usage = 0x88e4
	StreamDraw  Usage = 0x88e0
	DynamicDraw Usage = 0x88e8
)

// DataType is the component type of a vertex attribute.
type DataType uint32

// Attribute component types
const (
	Float        DataType = 0x1406
	UnsignedByte DataType = 0x1401
)

// Primitive is the kind of primitive assembled by a draw call.
type Primitive uint32

// Primitives
const (
	Triangles     Primitive = 0x4
	TriangleStrip Primitive = 0x5
)

// Functions is the table of rendering API entry points. Implementations
// forward straight to the driver. Calls the driver does not report failure
// for have no error result; object creation returns the raw handle and
// zero means the driver could not create it.
type Functions interface {
	ClearColor(r, g, b, a float32)
	// Clear clears the color buffer.
	Clear()

	GenVertexArray() uint32
	BindVertexArray(vao uint32)
	DeleteVertexArray(vao uint32)

	GenBuffer() uint32
	BindBuffer(target BufferType, buffer uint32)
	BufferData(target BufferType, data []byte, usage Usage)
	DeleteBuffer(buffer uint32)

	VertexAttribPointer(index uint32, size int32, xtype DataType, normalized bool, stride int32, offset uintptr)
	EnableVertexAttribArray(index uint32)

	CreateProgram() uint32
	CreateShader(xtype ShaderType) uint32
	ShaderSource(shader uint32, source string)
	CompileShader(shader uint32)
	AttachShader(program, shader uint32)
	DeleteShader(shader uint32)
	LinkProgram(program uint32)
	UseProgram(program uint32)
	DeleteProgram(program uint32)

	// ShaderCompiled reports the compile status of shader.
	ShaderCompiled(shader uint32) bool
	// ShaderInfoLog reads at most bufSize-1 bytes of the shader log.
	ShaderInfoLog(shader uint32, bufSize int32) string
	// ProgramLinked reports the link status of program.
	ProgramLinked(program uint32) bool
	// ProgramInfoLog reads at most bufSize-1 bytes of the program log.
	ProgramInfoLog(program uint32, bufSize int32) string

	DrawArrays(mode Primitive, first, count int32)
}
