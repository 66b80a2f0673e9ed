package config

import (
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Path of the engine settings file, relative to the process working
// directory.
const Path = "config/engine.yaml"

// File holds the engine settings persisted across runs. In-game save data
// is separate and handled elsewhere.
type File struct {
	Window struct {
		Title  string `yaml:"title"`
		Width  int    `yaml:"width"`
		Height int    `yaml:"height"`
		VSync  bool   `yaml:"vsync"`
	} `yaml:"window"`
	Renderer struct {
		TargetFPS         int        `yaml:"target_fps"`
		MaxRenderDistance float32    `yaml:"max_render_distance"`
		FrustumCulling    bool       `yaml:"frustum_culling"`
		LOD               bool       `yaml:"lod"`
		Wireframe         bool       `yaml:"wireframe"`
		ClearColor        [4]float32 `yaml:"clear_color"`
		SampleCount       int        `yaml:"sample_count"`
	} `yaml:"renderer"`
}

// Default returns the settings used when no file is present.
func Default() File {
	var f File
	f.Window.Title = "briar"
	f.Window.Width = 1280
	f.Window.Height = 720
	f.Window.VSync = true
	f.Renderer.TargetFPS = 60
	f.Renderer.MaxRenderDistance = 500
	f.Renderer.FrustumCulling = true
	f.Renderer.LOD = true
	f.Renderer.ClearColor = [4]float32{0.05, 0.07, 0.12, 1}
	f.Renderer.SampleCount = 1
	return f
}

// Load reads settings from the given path. A missing or invalid file falls
// back to Default; no file is created.
func Load(path string) File {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default()
	}
	f := Default()
	if err := yaml.Unmarshal(data, &f); err != nil {
		logrus.WithError(err).WithField("path", path).Warn("config: invalid file, using defaults")
		return Default()
	}
	return f
}
