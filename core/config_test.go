// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import (
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/gobuffalo/envy"
)

var defaults = Configuration{
	Window: WindowConfiguration{
		Title:  "trigl",
		Width:  800,
		Height: 600,
	},
}

func TestWithEnvironment(t *testing.T) {
	c := qt.New(t)
	envy.Temp(func() {
		envy.Set(EnvTitle, "overridden")
		envy.Set(EnvHeight, "720")
		envy.Set(EnvAssets, "assets.kar")

		cfg := defaults.WithEnvironment()
		c.Assert(cfg.Window.Title, qt.Equals, "overridden")
		c.Assert(cfg.Window.Width, qt.Equals, int32(800))
		c.Assert(cfg.Window.Height, qt.Equals, int32(720))
		c.Assert(cfg.Renderer.Assets, qt.Equals, "assets.kar")
	})
	c.Assert(defaults.Window.Height, qt.Equals, int32(600))
}

func TestWithEnvironmentInvalidDimension(t *testing.T) {
	c := qt.New(t)
	envy.Temp(func() {
		envy.Set(EnvWidth, "wide")
		envy.Set(EnvHeight, "-5")

		cfg := defaults.WithEnvironment()
		c.Assert(cfg.Window.Width, qt.Equals, int32(800))
		c.Assert(cfg.Window.Height, qt.Equals, int32(600))
	})
}
