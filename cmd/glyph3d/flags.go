package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taigrr/glyph3d/internal/config"
)

func addGlobalFlags(cmd *cobra.Command) {
	f := cmd.PersistentFlags()
	f.String("config", "", "path to config file (default ./glyph3d.yaml or the user config dir)")
	f.Int("fps", 0, "target frames per second")
	f.Float64("fov", 0, "vertical field of view in degrees")
	f.Float64("cell-aspect", 0, "terminal cell height/width ratio")
	f.Bool("wireframe", false, "draw triangle edges only")
	f.Bool("depth-sort", false, "draw triangles far to near")
	f.Bool("reverse-winding", false, "swap triangle winding when loading (needed for counter-clockwise OBJ exports)")
	f.Bool("strict", false, "fail on malformed model lines")
	f.Float64("fit", 0, "scale models so their largest extent is this size (0 keeps file units)")
	f.String("color", "", "base color of the models")
	f.String("log-level", "", "log level: debug, info, warn or error")
	f.String("log-file", "", "write logs to this file")
}

// loadConfig loads the config file and applies the flags that were set on
// the command line, which take priority.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, _, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	if err := applyFlags(cmd, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	f := cmd.Flags()

	var err error
	set := func(name string, apply func() error) {
		if err == nil && f.Changed(name) {
			err = apply()
		}
	}

	set("fps", func() (e error) { cfg.Display.FPS, e = f.GetInt("fps"); return })
	set("fov", func() (e error) { cfg.Camera.FOVDeg, e = f.GetFloat64("fov"); return })
	set("cell-aspect", func() (e error) { cfg.Display.CellAspect, e = f.GetFloat64("cell-aspect"); return })
	set("wireframe", func() (e error) { cfg.Display.Wireframe, e = f.GetBool("wireframe"); return })
	set("depth-sort", func() (e error) { cfg.Display.DepthSort, e = f.GetBool("depth-sort"); return })
	set("reverse-winding", func() (e error) { cfg.Loader.ReverseWinding, e = f.GetBool("reverse-winding"); return })
	set("strict", func() (e error) { cfg.Loader.Strict, e = f.GetBool("strict"); return })
	set("fit", func() (e error) { cfg.Loader.Fit, e = f.GetFloat64("fit"); return })
	set("color", func() (e error) { cfg.Lighting.Color, e = f.GetString("color"); return })
	set("log-level", func() (e error) { cfg.Logging.Level, e = f.GetString("log-level"); return })
	set("log-file", func() (e error) { cfg.Logging.File, e = f.GetString("log-file"); return })

	return err
}
