// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package glr_test

import (
	"errors"
	"strings"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/devblok/trigl/gfx"
	"github.com/devblok/trigl/gfx/gfxtest"
	"github.com/devblok/trigl/gfx/glr"
)

const (
	vertSource = `#version 330 core
layout (location = 0) in vec3 pos;
void main() {
    gl_Position = vec4(pos.x, pos.y, pos.z, 1.0);
}
`
	fragSource = `#version 330 core
out vec4 final_color;
void main() {
    final_color = vec4(1.0, 0.5, 0.2, 1.0);
}
`
)

var stages = []glr.ShaderOpts{
	{Kind: gfx.VertexShaderType, Source: vertSource},
	{Kind: gfx.FragmentShaderType, Source: fragSource},
}

func TestNewProgramOrder(t *testing.T) {
	c := qt.New(t)
	fns := gfxtest.New()

	p, err := glr.NewProgram(glr.New(fns), stages...)
	c.Assert(err, qt.IsNil)
	c.Assert(p.ID(), qt.Not(qt.Equals), uint32(0))
	c.Assert(fns.Names(), qt.DeepEquals, []string{
		"CreateProgram",
		"CreateShader", "ShaderSource", "CompileShader", "AttachShader",
		"CreateShader", "ShaderSource", "CompileShader", "AttachShader",
		"LinkProgram",
		"DeleteShader", "DeleteShader",
		"UseProgram",
	})
	c.Assert(fns.CurrentProgram, qt.Equals, p.ID())
	c.Assert(fns.Deleted(p.ID()), qt.IsFalse)
	for _, id := range fns.Attached(p.ID()) {
		c.Assert(fns.Deleted(id), qt.IsTrue)
	}
}

func TestShaderCompileError(t *testing.T) {
	c := qt.New(t)
	fns := gfxtest.New()
	fns.CompileLog = strings.Repeat("0:1(1): error: unexpected token\n", 200)
	gl := glr.New(fns)

	s, err := glr.NewShader(gl, gfx.FragmentShaderType, "#error not glsl")
	c.Assert(err, qt.IsNil)
	s.Compile()
	err = s.Status()
	c.Assert(err, qt.Not(qt.IsNil))

	var le *glr.LogError
	c.Assert(errors.As(err, &le), qt.IsTrue)
	c.Assert(le.Log, qt.Not(qt.Equals), "")
	c.Assert(len(le.Log) <= glr.InfoLogSize, qt.IsTrue)
	c.Assert(strings.HasPrefix(fns.CompileLog, le.Log), qt.IsTrue)
	c.Assert(err, qt.ErrorMatches, "(?s)Fragment compile error: 0:1.*")
}

func TestShaderCompiles(t *testing.T) {
	c := qt.New(t)
	s, err := glr.NewShader(glr.New(gfxtest.New()), gfx.VertexShaderType, vertSource)
	c.Assert(err, qt.IsNil)
	s.Compile()
	c.Assert(s.Status(), qt.IsNil)
	c.Assert(s.Kind(), qt.Equals, gfx.VertexShaderType)
}

func TestCreateShaderFailureNamesKind(t *testing.T) {
	c := qt.New(t)
	fns := gfxtest.New()
	fns.FailAlloc = true

	_, err := glr.NewShader(glr.New(fns), gfx.VertexShaderType, vertSource)
	c.Assert(err, qt.ErrorMatches, "could not create Vertex shader")

	_, err = glr.NewProgram(glr.New(fns), stages...)
	c.Assert(err, qt.ErrorMatches, "could not create program")
}

func TestLinkWithoutStages(t *testing.T) {
	c := qt.New(t)
	fns := gfxtest.New()

	p, err := glr.NewProgram(glr.New(fns))
	c.Assert(p, qt.IsNil)

	var le *glr.LogError
	c.Assert(errors.As(err, &le), qt.IsTrue)
	c.Assert(le.Log, qt.Equals, "error: no shaders attached to the program")
	c.Assert(fns.Deleted(1), qt.IsTrue)
	c.Assert(fns.Find("UseProgram"), qt.HasLen, 0)
}

func TestLinkWithFailedStage(t *testing.T) {
	c := qt.New(t)
	fns := gfxtest.New()
	gl := glr.New(fns)

	prog, err := gl.CreateProgram()
	c.Assert(err, qt.IsNil)

	vert, err := glr.NewShader(gl, gfx.VertexShaderType, vertSource)
	c.Assert(err, qt.IsNil)
	frag, err := glr.NewShader(gl, gfx.FragmentShaderType, "#error")
	c.Assert(err, qt.IsNil)
	for _, s := range []*glr.Shader{vert, frag} {
		s.Compile()
		s.Attach(prog)
	}
	c.Assert(frag.Status(), qt.Not(qt.IsNil))

	gl.LinkProgram(prog)
	err = gl.ProgramStatus(prog)

	var le *glr.LogError
	c.Assert(errors.As(err, &le), qt.IsTrue)
	c.Assert(le.Subject, qt.Equals, "program link error")
	c.Assert(le.Log, qt.Matches, "error: shader [0-9]+ is not compiled")
}

func TestNewProgramCompileFailureReleases(t *testing.T) {
	c := qt.New(t)
	fns := gfxtest.New()

	_, err := glr.NewProgram(glr.New(fns),
		glr.ShaderOpts{Kind: gfx.VertexShaderType, Source: vertSource},
		glr.ShaderOpts{Kind: gfx.FragmentShaderType, Source: "#error"},
	)
	c.Assert(err, qt.ErrorMatches, "Fragment compile error: .*")
	c.Assert(fns.Find("LinkProgram"), qt.HasLen, 0)
	c.Assert(fns.Find("DeleteShader"), qt.HasLen, 2)
	c.Assert(fns.Find("DeleteProgram"), qt.HasLen, 1)
	c.Assert(fns.Find("UseProgram"), qt.HasLen, 0)
}

func TestProgramRelease(t *testing.T) {
	c := qt.New(t)
	fns := gfxtest.New()

	p, err := glr.NewProgram(glr.New(fns), stages...)
	c.Assert(err, qt.IsNil)
	id := p.ID()
	p.Release()
	p.Release()
	c.Assert(fns.Deleted(id), qt.IsTrue)
	c.Assert(fns.Find("DeleteProgram"), qt.HasLen, 1)
}
