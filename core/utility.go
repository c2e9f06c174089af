// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import (
	"fmt"
	"path"
	"strconv"
	"strings"

	"github.com/devblok/trigl/gfx"
	"github.com/devblok/trigl/gfx/glr"
)

// WindowHeightToken is replaced with the window height in shader sources.
const WindowHeightToken = "{WINDOW_HEIGHT}"

// Assets finds asset files by name. Both packr boxes
// and kar archives can serve them.
type Assets interface {
	FindString(name string) (string, error)
}

// ExpandShader substitutes the window height into a shader template.
func ExpandShader(source string, windowHeight int32) string {
	return strings.ReplaceAll(source, WindowHeightToken, strconv.Itoa(int(windowHeight)))
}

// shaderTypeOf derives the stage from the file extension,
// only .vert and .frag files are shaders.
func shaderTypeOf(name string) (gfx.ShaderType, bool) {
	switch path.Ext(name) {
	case ".vert":
		return gfx.VertexShaderType, true
	case ".frag":
		return gfx.FragmentShaderType, true
	default:
		return 0, false
	}
}

// LoadShaders reads the named shader templates from assets and
// expands them for a window of the given height.
func LoadShaders(assets Assets, windowHeight int32, names ...string) ([]glr.ShaderOpts, error) {
	opts := make([]glr.ShaderOpts, 0, len(names))
	for _, name := range names {
		kind, ok := shaderTypeOf(name)
		if !ok {
			return nil, fmt.Errorf("%s: not a .vert or .frag shader", name)
		}
		source, err := assets.FindString(name)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		opts = append(opts, glr.ShaderOpts{
			Kind:   kind,
			Source: ExpandShader(source, windowHeight),
		})
	}
	return opts, nil
}
