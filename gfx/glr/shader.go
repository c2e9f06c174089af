// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package glr

import (
	"fmt"

	"github.com/devblok/trigl/gfx"
)

// ShaderOpts describes one stage of a program.
type ShaderOpts struct {
	Kind   gfx.ShaderType
	Source string
}

// NewShader creates a shader object of the given kind and uploads source.
func NewShader(gl *Gl, kind gfx.ShaderType, source string) (*Shader, error) {
	id, err := gl.CreateShader(kind)
	if err != nil {
		return nil, err
	}
	gl.ShaderSource(id, source)
	return &Shader{gl: gl, id: id, kind: kind}, nil
}

// Shader is a single shader stage.
type Shader struct {
	gl   *Gl
	id   uint32
	kind gfx.ShaderType
}

// ID returns the driver handle.
func (s *Shader) ID() uint32 {
	return s.id
}

// Kind returns the stage kind.
func (s *Shader) Kind() gfx.ShaderType {
	return s.kind
}

// Compile compiles the uploaded source, the result is read with Status.
func (s *Shader) Compile() {
	s.gl.CompileShader(s.id)
}

// Status returns the compile log as a *LogError if compilation failed.
func (s *Shader) Status() error {
	if err := s.gl.ShaderStatus(s.id); err != nil {
		if le, ok := err.(*LogError); ok {
			le.Subject = s.kind.String() + " compile error"
		}
		return err
	}
	return nil
}

// Attach attaches the stage to program.
func (s *Shader) Attach(program uint32) {
	s.gl.AttachShader(program, s.id)
}

// Release deletes the shader object. Only call it once the programs
// it is attached to are linked, or when abandoning it.
func (s *Shader) Release() {
	if s.id == 0 {
		return
	}
	s.gl.DeleteShader(s.id)
	s.id = 0
}

// NewProgram builds, links and activates a program from opts.
// Stages are created, compiled and attached in order, deleted once the
// program links, and the program is made current last. Any failure
// releases everything created so far.
func NewProgram(gl *Gl, opts ...ShaderOpts) (*Program, error) {
	id, err := gl.CreateProgram()
	if err != nil {
		return nil, err
	}
	p := &Program{gl: gl, id: id}

	shaders := make([]*Shader, 0, len(opts))
	abandon := func() {
		for _, s := range shaders {
			s.Release()
		}
		p.Release()
	}

	for _, opt := range opts {
		s, err := NewShader(gl, opt.Kind, opt.Source)
		if err != nil {
			abandon()
			return nil, err
		}
		shaders = append(shaders, s)

		s.Compile()
		if err := s.Status(); err != nil {
			abandon()
			return nil, err
		}
		s.Attach(p.id)
	}

	gl.LinkProgram(p.id)
	if err := gl.ProgramStatus(p.id); err != nil {
		abandon()
		return nil, err
	}

	for _, s := range shaders {
		s.Release()
	}
	p.Use()
	return p, nil
}

// Program is a linked shader program.
type Program struct {
	gl *Gl
	id uint32
}

// ID returns the driver handle.
func (p *Program) ID() uint32 {
	return p.id
}

// Use makes the program current.
func (p *Program) Use() {
	p.gl.UseProgram(p.id)
}

// Release deletes the program.
func (p *Program) Release() {
	if p.id == 0 {
		return
	}
	p.gl.DeleteProgram(p.id)
	p.id = 0
}

func (p *Program) String() string {
	return fmt.Sprintf("program %d", p.id)
}
