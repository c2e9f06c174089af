// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package model

import (
	"errors"
	"fmt"

	glm "github.com/go-gl/mathgl/mgl32"

	"github.com/devblok/trigl/util/collada"
)

// ImportCollada reads the first geometry of a COLLADA document
// and flattens its triangles into a Mesh of positions.
func ImportCollada(fileContents []byte) (Mesh, error) {
	doc, err := collada.Decode(fileContents)
	if err != nil {
		return nil, err
	}

	mesh := doc.Geometries[0].Mesh
	vertexInput, ok := mesh.Triangles.Input(collada.SemanticVertex)
	if !ok {
		return nil, errors.New("triangles have no VERTEX input")
	}
	positionInput, ok := mesh.Vertices.Input(collada.SemanticPosition)
	if !ok {
		return nil, errors.New("vertices have no POSITION input")
	}
	source, ok := mesh.Source(positionInput.Source)
	if !ok {
		return nil, fmt.Errorf("position source %s not found", positionInput.Source)
	}
	positions := source.Floats.Data

	if mesh.Triangles.Count <= 0 {
		return nil, fmt.Errorf("invalid triangle count %d", mesh.Triangles.Count)
	}

	stride := mesh.Triangles.Stride()
	corners := mesh.Triangles.Count * 3
	if stride == 0 || len(mesh.Triangles.Index) < corners*stride {
		return nil, fmt.Errorf("index list too short for %d triangles", mesh.Triangles.Count)
	}

	vertices := make(Mesh, 0, corners)
	for corner := 0; corner < corners; corner++ {
		idx := mesh.Triangles.Index[corner*stride+int(vertexInput.Offset)]
		if idx < 0 || (idx+1)*3 > len(positions) {
			return nil, fmt.Errorf("position index %d out of range", idx)
		}
		p := positions[idx*3 : idx*3+3]
		vertices = append(vertices, Vertex{Pos: glm.Vec3{p[0], p[1], p[2]}})
	}
	return vertices, nil
}
