package main

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/hollowmoss/briar/engine/assets"
	"github.com/hollowmoss/briar/engine/colors"
	"github.com/hollowmoss/briar/engine/config"
	"github.com/hollowmoss/briar/engine/core"
	glbackend "github.com/hollowmoss/briar/engine/gfx/gl"
	"github.com/hollowmoss/briar/engine/gfx/renderer3d"
	"github.com/hollowmoss/briar/engine/platform"
	"github.com/hollowmoss/briar/engine/profiler"
	"github.com/hollowmoss/briar/engine/scene"
	"github.com/hollowmoss/briar/engine/scratch"
)

type App struct {
	cfg   config.File
	r3d   *renderer3d.Engine
	start time.Time

	sceneLayer *LayerScene
	debugLayer *LayerDebug
}

func (a *App) OnStart(e *core.Engine) {
	profiler.Init(1 << 16)
	scratch.Init(1 << 10)
	a.start = time.Now()

	// Shader files next to the binary win; otherwise the built-ins.
	vs, err := assets.LoadShader("mesh.vert")
	if err != nil {
		vs = glbackend.DefaultVertexSource
	}
	fs, err := assets.LoadShader("mesh.frag")
	if err != nil {
		fs = glbackend.DefaultFragmentSource
	}

	pipe, err := e.Device.CreatePipeline(core.PipelineDesc{
		VertexSource:   vs,
		FragmentSource: fs,
		Layout:         assets.MeshVertexLayout(),
		DepthTest:      true,
		CullBackFaces:  true,
	})
	if err != nil {
		// Per the error model: rendering proceeds, nothing gets drawn.
		logrus.WithError(err).Error("mesh pipeline compile failed")
	}

	w, h := e.Window.FramebufferSize()
	cam := scene.NewCamera(60, float32(w)/float32(h), 0.1, 1000)

	settings := renderer3d.Settings{
		FrustumCulling:    a.cfg.Renderer.FrustumCulling,
		LODEnabled:        a.cfg.Renderer.LOD,
		MaxRenderDistance: a.cfg.Renderer.MaxRenderDistance,
		TargetFPS:         a.cfg.Renderer.TargetFPS,
		Wireframe:         a.cfg.Renderer.Wireframe,
		ClearColor:        colors.Color(a.cfg.Renderer.ClearColor),
		SampleCount:       a.cfg.Renderer.SampleCount,
	}
	a.r3d, err = renderer3d.New(e.Device, settings, cam)
	if err != nil {
		panic(err)
	}

	a.sceneLayer = &LayerScene{r3d: a.r3d, pipe: pipe}
	if err := a.sceneLayer.Build(e); err != nil {
		panic(err)
	}
	e.Layers.Push(a.sceneLayer)

	a.debugLayer = &LayerDebug{r3d: a.r3d}
	e.Layers.Push(a.debugLayer)
}

func (a *App) OnUpdate(e *core.Engine, dt float64) {}

func (a *App) OnRender(e *core.Engine, alpha float64) {
	now := time.Since(a.start).Seconds()
	a.r3d.RenderFrame(glbackend.DefaultTarget{}, now)
}

func (a *App) OnEvent(e *core.Engine, ev core.Event) {
	switch v := ev.(type) {
	case core.EventResize:
		if v.W > 0 && v.H > 0 {
			a.r3d.Camera().SetAspect(float32(v.W) / float32(v.H))
		}
	}
}

func (a *App) OnShutdown(e *core.Engine) {
	if path, err := profiler.Dump(); err == nil {
		logrus.WithField("path", path).Info("profile written")
	}
}

func main() {
	cfg := config.Load(config.Path)

	app := &App{cfg: cfg}
	err := core.Run(app, core.Config{
		Title:       cfg.Window.Title,
		Width:       cfg.Window.Width,
		Height:      cfg.Window.Height,
		VSync:       cfg.Window.VSync,
		SampleCount: cfg.Renderer.SampleCount,
		ClearColor:  cfg.Renderer.ClearColor,
	}, func(c core.Config) (core.Window, error) {
		return platform.NewGLFWWindow(c)
	}, func(w core.Window, c core.Config) (core.Device, error) {
		return glbackend.NewDevice(w, c)
	})
	if err != nil {
		logrus.Fatal(err)
	}
}
