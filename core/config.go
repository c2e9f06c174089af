// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import (
	"strconv"
	"time"

	"github.com/gobuffalo/envy"
	glm "github.com/go-gl/mathgl/mgl32"
	log "github.com/sirupsen/logrus"
)

// Environment variables that override the configuration.
// Values are also read from a .env file in the working directory.
const (
	EnvTitle  = "TRIGL_TITLE"
	EnvWidth  = "TRIGL_WIDTH"
	EnvHeight = "TRIGL_HEIGHT"
	EnvAssets = "TRIGL_ASSETS"
)

// Configuration defines a global program configuration setting
type Configuration struct {
	Time     TimeConfiguration
	Window   WindowConfiguration
	Renderer RendererConfiguration
}

// TimeConfiguration is used to configure time services
type TimeConfiguration struct {
	// StatsInterval is how often frame statistics are logged.
	// To disable, set to 0
	StatsInterval time.Duration
}

// WindowConfiguration is used to configure the window
type WindowConfiguration struct {
	Title        string
	Width        int32
	Height       int32
	SwapInterval SwapInterval
}

// RendererConfiguration is used to configure the renderer
type RendererConfiguration struct {
	ClearColor glm.Vec4

	// Assets is the path of a kar archive to load shaders from.
	// When empty the bundled shader directory is used.
	Assets string

	VertexShader   string
	FragmentShader string
}

// WithEnvironment returns a copy of cfg with the values
// found in the environment applied on top.
func (cfg Configuration) WithEnvironment() Configuration {
	cfg.Window.Title = envy.Get(EnvTitle, cfg.Window.Title)
	cfg.Window.Width = envInt32(EnvWidth, cfg.Window.Width)
	cfg.Window.Height = envInt32(EnvHeight, cfg.Window.Height)
	cfg.Renderer.Assets = envy.Get(EnvAssets, cfg.Renderer.Assets)
	return cfg
}

func envInt32(key string, fallback int32) int32 {
	raw := envy.Get(key, "")
	if raw == "" {
		return fallback
	}
	num, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || num <= 0 {
		log.WithField("variable", key).WithField("value", raw).Warn("Ignoring invalid dimension")
		return fallback
	}
	return int32(num)
}
