// Package config holds the glyph3d runtime settings and their YAML form.
package config

import (
	"fmt"

	"go.uber.org/multierr"
)

// Config holds all viewer settings.
type Config struct {
	Display  DisplayConfig  `yaml:"display"`
	Camera   CameraConfig   `yaml:"camera"`
	Lighting LightingConfig `yaml:"lighting"`
	Loader   LoaderConfig   `yaml:"loader"`
	Scene    SceneConfig    `yaml:"scene"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// Vec is a YAML-friendly 3-vector written as [x, y, z].
type Vec [3]float64

// DisplayConfig holds terminal output settings.
type DisplayConfig struct {
	FPS        int     `yaml:"fps"`
	CellAspect float64 `yaml:"cell_aspect"` // glyph height / width
	Background string  `yaml:"background"`  // palette color name
	Wireframe  bool    `yaml:"wireframe"`
	DepthSort  bool    `yaml:"depth_sort"`
	ShowHUD    bool    `yaml:"show_hud"`
}

// CameraConfig holds the initial camera and its controls. Angles are in
// degrees.
type CameraConfig struct {
	Position  Vec     `yaml:"position"`
	Rotation  Vec     `yaml:"rotation"`
	FOVDeg    float64 `yaml:"fov_deg"`
	Near      float64 `yaml:"near"`
	Far       float64 `yaml:"far"`
	MoveSpeed float64 `yaml:"move_speed"` // units per key press
	TurnSpeed float64 `yaml:"turn_speed"` // degrees per key press
}

// LightingConfig holds the directional light and palette.
type LightingConfig struct {
	Direction Vec     `yaml:"direction"`
	Ambient   float64 `yaml:"ambient"`
	Color     string  `yaml:"color"`
	Shades    string  `yaml:"shades"` // darkest to brightest
}

// LoaderConfig holds model loading options.
type LoaderConfig struct {
	ReverseWinding bool `yaml:"reverse_winding"`
	Strict         bool `yaml:"strict"`

	// Fit rescales each loaded mesh so its largest extent equals Fit.
	// Zero keeps the file's units.
	Fit float64 `yaml:"fit"`
}

// SceneConfig lists the instances to place at startup.
type SceneConfig struct {
	Instances []InstanceConfig `yaml:"instances"`
}

// InstanceConfig places one model in the scene. Rotation is in degrees and
// Spin in degrees per second.
type InstanceConfig struct {
	Model    string `yaml:"model"`
	Position Vec    `yaml:"position"`
	Rotation Vec    `yaml:"rotation"`
	Spin     Vec    `yaml:"spin"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Display: DisplayConfig{
			FPS:        30,
			CellAspect: 2,
			Background: "black",
			ShowHUD:    true,
		},
		Camera: CameraConfig{
			Position:  Vec{0, 0, -5},
			FOVDeg:    60,
			Near:      0.1,
			Far:       100,
			MoveSpeed: 0.25,
			TurnSpeed: 4,
		},
		Lighting: LightingConfig{
			Direction: Vec{0, 0, 1},
			Ambient:   0.2,
			Color:     "blue",
			Shades:    "&%$#@",
		},
		Loader: LoaderConfig{
			Fit: 2,
		},
		Logging: LoggingConfig{
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 7,
		},
	}
}

// Validate reports every setting the renderer cannot use.
func (c *Config) Validate() error {
	var err error

	if c.Display.FPS < 1 {
		err = multierr.Append(err, fmt.Errorf("display.fps must be at least 1, got %d", c.Display.FPS))
	}
	if c.Display.CellAspect <= 0 {
		err = multierr.Append(err, fmt.Errorf("display.cell_aspect must be positive, got %g", c.Display.CellAspect))
	}
	if c.Camera.FOVDeg <= 0 || c.Camera.FOVDeg >= 180 {
		err = multierr.Append(err, fmt.Errorf("camera.fov_deg must be in (0, 180), got %g", c.Camera.FOVDeg))
	}
	if c.Camera.Near <= 0 || c.Camera.Near >= c.Camera.Far {
		err = multierr.Append(err, fmt.Errorf("camera.near must satisfy 0 < near < far, got near=%g far=%g", c.Camera.Near, c.Camera.Far))
	}
	if c.Lighting.Direction == (Vec{}) {
		err = multierr.Append(err, fmt.Errorf("lighting.direction must be non-zero"))
	}
	if c.Lighting.Shades == "" {
		err = multierr.Append(err, fmt.Errorf("lighting.shades must not be empty"))
	}
	if c.Loader.Fit < 0 {
		err = multierr.Append(err, fmt.Errorf("loader.fit must not be negative, got %g", c.Loader.Fit))
	}
	for i, inst := range c.Scene.Instances {
		if inst.Model == "" {
			err = multierr.Append(err, fmt.Errorf("scene.instances[%d].model is empty", i))
		}
	}

	return err
}
