// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package collada decodes the geometry part of COLLADA (.dae) documents.
package collada

import (
	"encoding/xml"
	"errors"
	"strconv"
	"strings"
)

// Semantics of inputs used by the importer
const (
	SemanticVertex   = "VERTEX"
	SemanticPosition = "POSITION"
	SemanticNormal   = "NORMAL"
)

// ErrNoGeometry is returned when a document has no geometry to import
var ErrNoGeometry = errors.New("collada: no geometry in document")

// Decode parses a COLLADA document
func Decode(data []byte) (*Collada, error) {
	var c Collada
	if err := xml.Unmarshal(data, &c); err != nil {
		return nil, err
	}
	if len(c.Geometries) == 0 {
		return nil, ErrNoGeometry
	}
	return &c, nil
}

// Collada is the top-level Collada object
type Collada struct {
	Geometries []Geometry `xml:"library_geometries>geometry"`
}

// Geometry represents Collada's geometry
type Geometry struct {
	Mesh Mesh   `xml:"mesh"`
	ID   string `xml:"id,attr"`
	Name string `xml:"name,attr"`
}

// Mesh contains all the primitive data
type Mesh struct {
	Sources   []Source  `xml:"source"`
	Vertices  Vertices  `xml:"vertices"`
	Triangles Triangles `xml:"triangles"`
}

// Source finds a source by a reference of the form "#id"
func (m *Mesh) Source(ref string) (*Source, bool) {
	id := strings.TrimPrefix(ref, "#")
	for i := range m.Sources {
		if m.Sources[i].ID == id {
			return &m.Sources[i], true
		}
	}
	return nil, false
}

// Source holds one array of data
type Source struct {
	ID     string `xml:"id,attr"`
	Floats Floats `xml:"float_array"`
}

// Floats is the array of floats
type Floats struct {
	ID   string
	Data []float32
}

// UnmarshalXML unmarshals the array of floats
func (f *Floats) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for _, attr := range start.Attr {
		if attr.Name.Local == "id" {
			f.ID = attr.Value
		}
	}
	var raw string
	if err := d.DecodeElement(&raw, &start); err != nil {
		return err
	}
	for _, field := range strings.Fields(raw) {
		num, err := strconv.ParseFloat(field, 32)
		if err != nil {
			return err
		}
		f.Data = append(f.Data, float32(num))
	}
	return nil
}

// Vertices binds the mesh vertex attributes to sources
type Vertices struct {
	ID     string  `xml:"id,attr"`
	Inputs []Input `xml:"input"`
}

// Input finds an input by semantic
func (v *Vertices) Input(semantic string) (Input, bool) {
	return findInput(v.Inputs, semantic)
}

// Triangles contain the list of triangles
type Triangles struct {
	Count    int     `xml:"count,attr"`
	Material string  `xml:"material,attr"`
	Inputs   []Input `xml:"input"`
	Index    []int
}

// Input finds an input by semantic
func (t *Triangles) Input(semantic string) (Input, bool) {
	return findInput(t.Inputs, semantic)
}

// Stride is the number of indices that make up one triangle corner
func (t *Triangles) Stride() int {
	stride := 0
	for _, in := range t.Inputs {
		if int(in.Offset)+1 > stride {
			stride = int(in.Offset) + 1
		}
	}
	return stride
}

// UnmarshalXML parses the inputs and the index list
func (t *Triangles) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for _, attr := range start.Attr {
		switch attr.Name.Local {
		case "count":
			num, err := strconv.Atoi(attr.Value)
			if err != nil {
				return err
			}
			t.Count = num
		case "material":
			t.Material = attr.Value
		}
	}

	for {
		token, err := d.Token()
		if err != nil {
			return err
		}

		switch el := token.(type) {
		case xml.StartElement:
			switch el.Name.Local {
			case "input":
				var input Input
				if err := d.DecodeElement(&input, &el); err != nil {
					return err
				}
				t.Inputs = append(t.Inputs, input)
			case "p":
				var raw string
				if err := d.DecodeElement(&raw, &el); err != nil {
					return err
				}
				fields := strings.Fields(raw)
				t.Index = make([]int, 0, len(fields))
				for _, field := range fields {
					num, err := strconv.Atoi(field)
					if err != nil {
						return err
					}
					t.Index = append(t.Index, num)
				}
			default:
				if err := d.Skip(); err != nil {
					return err
				}
			}
		case xml.EndElement:
			if el == start.End() {
				return nil
			}
		}
	}
}

// Input is Collada'a input type
type Input struct {
	Semantic string `xml:"semantic,attr"`
	Source   string `xml:"source,attr"`
	Offset   uint   `xml:"offset,attr"`
}

func findInput(inputs []Input, semantic string) (Input, bool) {
	for _, in := range inputs {
		if in.Semantic == semantic {
			return in, true
		}
	}
	return Input{}, false
}
