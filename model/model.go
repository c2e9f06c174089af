// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package model holds the vertex data that gets uploaded for drawing.
package model

import (
	"unsafe"

	glm "github.com/go-gl/mathgl/mgl32"
)

// Vertex is a model vertex
type Vertex struct {
	Pos glm.Vec3
}

// Layout of Vertex as seen by the vertex shader
const (
	PositionLocation   = 0
	PositionComponents = 3
)

// Stride is the distance in bytes between two consecutive vertices.
var Stride = int32(unsafe.Sizeof(Vertex{}))

// PositionOffset is the offset of the position inside a Vertex.
var PositionOffset = unsafe.Offsetof(Vertex{}.Pos)

// Mesh is a list of vertices drawn as independent triangles.
type Mesh []Vertex

// Count returns the number of vertices, as passed to a draw call.
func (m Mesh) Count() int32 {
	return int32(len(m))
}

// Bytes reslices the vertices into their raw in-memory bytes,
// ready to be uploaded into a buffer object.
func (m Mesh) Bytes() []byte {
	if len(m) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&m[0])), len(m)*int(Stride))
}

// Triangle returns the single triangle mesh.
func Triangle() Mesh {
	return Mesh{
		{Pos: glm.Vec3{-0.5, -0.5, 0.0}},
		{Pos: glm.Vec3{0.5, -0.5, 0.0}},
		{Pos: glm.Vec3{0.0, 0.5, 0.0}},
	}
}

// Quad returns two triangles side by side.
func Quad() Mesh {
	return Mesh{
		// left
		{Pos: glm.Vec3{-0.9, -0.5, 0.0}},
		{Pos: glm.Vec3{-0.1, -0.5, 0.0}},
		{Pos: glm.Vec3{-0.5, 0.5, 0.0}},
		// right
		{Pos: glm.Vec3{0.1, -0.5, 0.0}},
		{Pos: glm.Vec3{0.9, -0.5, 0.0}},
		{Pos: glm.Vec3{0.5, 0.5, 0.0}},
	}
}

// Scenes maps scene names to their meshes
var Scenes = map[string]func() Mesh{
	"triangle": Triangle,
	"quad":     Quad,
}
