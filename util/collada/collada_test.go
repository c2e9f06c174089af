// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package collada_test

import (
	"encoding/xml"
	"testing"

	"github.com/devblok/trigl/util/collada"
)

func TestTrianglesDecode(t *testing.T) {
	data := `
		<triangles material="Material-material" count="12">
		<input semantic="VERTEX" source="#Cube-mesh-vertices" offset="0"/>
		<input semantic="NORMAL" source="#Cube-mesh-normals" offset="1"/>
		<p>0 0 2 0 3 0 7 1 5 1 4 1 4 2 1 2 0 2 5 3 2 3 1 3 2 4 7 4 3 4 0 5 7 5 4 5 0 6 1 6 2 6 7 7 6 7 5 7 4 8 5 8 1 8 5 9 6 9 2 9 2 10 6 10 7 10 0 11 3 11 7 11</p>
		</triangles>
	`
	var triangles collada.Triangles
	if err := xml.Unmarshal([]byte(data), &triangles); err != nil {
		t.Fatal(err)
	}

	if triangles.Material != "Material-material" {
		t.Fatalf("incorrect material: %s", triangles.Material)
	}

	if triangles.Count != 12 {
		t.Fatalf("incorrect count: %d", triangles.Count)
	}

	if len(triangles.Inputs) != 2 {
		t.Fatalf("number of inputs incorrect: %d", len(triangles.Inputs))
	}

	if triangles.Stride() != 2 {
		t.Fatalf("incorrect stride: %d", triangles.Stride())
	}

	if len(triangles.Index) != 12*3*triangles.Stride() {
		t.Fatalf("number of index elements incorrect: %d", len(triangles.Index))
	}

	if in, ok := triangles.Input(collada.SemanticVertex); !ok || in.Offset != 0 {
		t.Fatalf("vertex input not found: %+v", in)
	}
}

func TestInputDecode(t *testing.T) {
	data := `
	<object>
		<input semantic="VERTEX" source="#Cube-mesh-vertices" offset="0" />
		<input semantic="NORMAL" source="#Cube-mesh-normals" offset="1" />
		<input semantic="TEXCOORD" source="#Cube-mesh-textures" offset="2" />
	</object>
	`

	type Object struct {
		XMLName xml.Name        `xml:"object"`
		Inputs  []collada.Input `xml:"input"`
	}

	var obj Object
	if err := xml.Unmarshal([]byte(data), &obj); err != nil {
		t.Fatal(err)
	}

	expected := []collada.Input{
		{Semantic: "VERTEX", Source: "#Cube-mesh-vertices", Offset: 0},
		{Semantic: "NORMAL", Source: "#Cube-mesh-normals", Offset: 1},
		{Semantic: "TEXCOORD", Source: "#Cube-mesh-textures", Offset: 2},
	}
	if len(obj.Inputs) != len(expected) {
		t.Fatalf("number of inputs incorrect: %d", len(obj.Inputs))
	}
	for i, want := range expected {
		if obj.Inputs[i] != want {
			t.Errorf("input %d: expected %+v, got %+v", i, want, obj.Inputs[i])
		}
	}
}

func TestFloatsDecode(t *testing.T) {
	data := `<float_array id="Cube-mesh-normals-array" count="36">0 0 -1 0 0 1 1 0 -2.38419e-7 0 -1 -4.76837e-7 -1 2.38419e-7 -1.49012e-7 2.68221e-7 1 2.38419e-7 0 0 -1 0 0 1 1 -5.96046e-7 3.27825e-7 -4.76837e-7 -1 0 -1 2.38419e-7 -1.19209e-7 2.08616e-7 1 0</float_array>`

	var floats collada.Floats
	if err := xml.Unmarshal([]byte(data), &floats); err != nil {
		t.Fatal(err)
	}

	if len(floats.Data) != 36 {
		t.Fatalf("bad number of floats, got: %d", len(floats.Data))
	}

	if floats.ID != "Cube-mesh-normals-array" {
		t.Fatalf("bad id, got: %s", floats.ID)
	}
}

func TestFloatsDecodeWhitespace(t *testing.T) {
	data := "<float_array id=\"a\">\n  1 2\t3\n  4  </float_array>"

	var floats collada.Floats
	if err := xml.Unmarshal([]byte(data), &floats); err != nil {
		t.Fatal(err)
	}
	if len(floats.Data) != 4 || floats.Data[3] != 4 {
		t.Fatalf("bad floats: %v", floats.Data)
	}
}

func TestDecodeNoGeometry(t *testing.T) {
	if _, err := collada.Decode([]byte(`<COLLADA></COLLADA>`)); err != collada.ErrNoGeometry {
		t.Fatalf("expected ErrNoGeometry, got: %v", err)
	}
}

func TestMeshSource(t *testing.T) {
	mesh := collada.Mesh{
		Sources: []collada.Source{{ID: "a"}, {ID: "b"}},
	}
	if s, ok := mesh.Source("#b"); !ok || s.ID != "b" {
		t.Fatalf("source b not found")
	}
	if _, ok := mesh.Source("#c"); ok {
		t.Fatalf("source c should not be found")
	}
}
