// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
	"time"

	glm "github.com/go-gl/mathgl/mgl32"
	"github.com/gobuffalo/packr"
	log "github.com/sirupsen/logrus"
	"golang.org/x/exp/mmap"

	"github.com/devblok/trigl/core"
	"github.com/devblok/trigl/device"
	"github.com/devblok/trigl/model"
	"github.com/devblok/trigl/utility/kar"
)

func init() {
	runtime.LockOSThread()
}

var (
	scene     = flag.String("scene", "triangle", "Built-in mesh to draw: triangle or quad")
	meshFile  = flag.String("mesh", "", "Draw the first geometry of a COLLADA (.dae) file instead")
	assetsKar = flag.String("assets", "", "Load shaders from a kar archive")
	vsync     = flag.String("vsync", core.Vsync.String(), "Swap interval: immediate, vsync or adaptive")
	verbose   = flag.Bool("v", false, "Log frame statistics and other debug output")
)

// Profiling
var (
	cpuProfile   = flag.String("cpuprof", "", "Profile CPU usage to file")
	memProfile   = flag.String("memprof", "", "Profile memory usage into a file")
	traceProfile = flag.String("trace", "", "Trace output for profiling")
)

var configuration = core.Configuration{
	Time: core.TimeConfiguration{
		StatsInterval: time.Second,
	},
	Window: core.WindowConfiguration{
		Title:        "trigl",
		Width:        800,
		Height:       600,
		SwapInterval: core.Vsync,
	},
	Renderer: core.RendererConfiguration{
		ClearColor:     glm.Vec4{0.2, 0.3, 0.3, 1.0},
		VertexShader:   "shader.vert",
		FragmentShader: "shader.frag",
	},
}

func main() {
	flag.Parse()
	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	if *cpuProfile != "" {
		f, err := os.Create(*cpuProfile)
		if err != nil {
			log.WithError(err).Fatal("Could not create CPU profile")
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			log.WithError(err).Fatal("Could not start CPU profile")
		}
		defer pprof.StopCPUProfile()
	}

	if *traceProfile != "" {
		f, err := os.Create(*traceProfile)
		if err != nil {
			log.WithError(err).Fatal("Could not create trace file")
		}
		if err := trace.Start(f); err != nil {
			log.WithError(err).Fatal("Could not start trace")
		}
		defer trace.Stop()
	}

	if err := run(); err != nil {
		log.WithError(err).Error("Exiting")
		pprof.StopCPUProfile()
		trace.Stop()
		os.Exit(1)
	}

	if *memProfile != "" {
		f, err := os.Create(*memProfile)
		if err != nil {
			log.WithError(err).Fatal("Could not create memory profile")
		}
		defer f.Close()
		runtime.GC()
		if err := pprof.WriteHeapProfile(f); err != nil {
			log.WithError(err).Fatal("Could not write memory profile")
		}
	}
}

func run() error {
	cfg := configuration.WithEnvironment()
	if *assetsKar != "" {
		cfg.Renderer.Assets = *assetsKar
	}
	interval, err := core.ParseSwapInterval(*vsync)
	if err != nil {
		return err
	}
	cfg.Window.SwapInterval = interval

	mesh, err := loadMesh()
	if err != nil {
		return err
	}

	assets, closeAssets, err := openAssets(cfg.Renderer.Assets)
	if err != nil {
		return err
	}
	defer closeAssets()

	shaders, err := core.LoadShaders(assets, cfg.Window.Height,
		cfg.Renderer.VertexShader, cfg.Renderer.FragmentShader)
	if err != nil {
		return err
	}

	window, err := core.NewWindow(cfg.Window)
	if err != nil {
		return err
	}
	defer window.Destroy()

	dev := device.MustLoad(window.ProcAddress)
	info := dev.Info()
	log.WithField("vendor", info.Vendor).
		WithField("renderer", info.Renderer).
		WithField("version", info.Version).
		WithField("glsl", info.GLSL).
		Info("OpenGL context ready")

	app := core.NewApp(window, dev, cfg)
	defer app.Release()

	if err := app.Setup(mesh, shaders); err != nil {
		return err
	}
	return app.Run()
}

func loadMesh() (model.Mesh, error) {
	if *meshFile != "" {
		data, err := os.ReadFile(*meshFile)
		if err != nil {
			return nil, err
		}
		mesh, err := model.ImportCollada(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", *meshFile, err)
		}
		log.WithField("file", *meshFile).WithField("vertices", len(mesh)).Info("Mesh imported")
		return mesh, nil
	}

	build, ok := model.Scenes[*scene]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q", *scene)
	}
	return build(), nil
}

// openAssets picks the kar archive when one is configured,
// otherwise the shaders bundled with the binary.
func openAssets(path string) (core.Assets, func(), error) {
	if path == "" {
		return packr.NewBox("../../shaders"), func() {}, nil
	}

	ra, err := mmap.Open(path)
	if err != nil {
		return nil, nil, err
	}
	archive, err := kar.Open(ra)
	if err != nil {
		ra.Close()
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	log.WithField("file", path).WithField("entries", len(archive.Names())).Info("Assets archive opened")
	return archive, func() { ra.Close() }, nil
}
