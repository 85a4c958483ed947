// glyph3d - render 3D meshes as shaded characters in the terminal.
//
// Usage:
//
//	glyph3d view model.obj [more.glb ...]
//	glyph3d info model.obj
//	glyph3d snapshot model.obj --width 80 --height 24
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/taigrr/glyph3d/internal/config"
	"github.com/taigrr/glyph3d/internal/host"
	"github.com/taigrr/glyph3d/internal/logger"
	"github.com/taigrr/glyph3d/pkg/models"
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := fang.Execute(ctx, newRootCmd(), fang.WithVersion(version)); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "glyph3d",
		Short:        "Render 3D meshes as shaded characters in the terminal",
		SilenceUsage: true,
	}
	addGlobalFlags(root)

	root.AddCommand(newViewCmd(), newInfoCmd(), newSnapshotCmd())
	return root
}

func newViewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view [model...]",
		Short: "Show models interactively",
		Long:  "Show OBJ and GLB models interactively. With no arguments the scene\nfrom the config file is shown.\n\nControls:\n" + host.Help,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			// The terminal belongs to the renderer, so only log to a file.
			log := logger.Init(cfg.Logging.Level, fileConfig(cfg), nil)
			defer logger.Sync()

			scene, err := host.BuildScene(cfg, args, log)
			if err != nil {
				return err
			}
			defer scene.Free()

			v, err := host.NewViewer(cfg, scene, log)
			if err != nil {
				return err
			}
			return host.Run(cmd.Context(), v)
		},
	}
}

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <model...>",
		Short: "Print mesh statistics and load warnings",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			log := logger.Init(cfg.Logging.Level, fileConfig(cfg), os.Stderr)
			defer logger.Sync()

			out := cmd.OutOrStdout()
			for _, path := range args {
				mesh, err := models.Load(path, models.Options{
					ReverseWinding: cfg.Loader.ReverseWinding,
					Strict:         cfg.Loader.Strict,
					Logger:         log,
				})
				if err != nil {
					return err
				}

				lo, hi := mesh.Bounds()
				fmt.Fprintf(out, "%s\n", path)
				fmt.Fprintf(out, "  vertices:  %d\n", mesh.VertexCount())
				fmt.Fprintf(out, "  indices:   %d\n", mesh.IndexCount())
				fmt.Fprintf(out, "  triangles: %d\n", mesh.TriangleCount())
				fmt.Fprintf(out, "  bounds:    (%g, %g, %g) - (%g, %g, %g)\n", lo.X, lo.Y, lo.Z, hi.X, hi.Y, hi.Z)
				fmt.Fprintf(out, "  warnings:  %d\n", len(mesh.Warnings))
				for _, w := range mesh.Warnings {
					fmt.Fprintf(out, "    %v\n", w)
				}
				mesh.Free()
			}
			return nil
		},
	}
}

func newSnapshotCmd() *cobra.Command {
	var width, height int
	var stats bool

	cmd := &cobra.Command{
		Use:   "snapshot <model...>",
		Short: "Render one frame as plain text",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			log := logger.Init(cfg.Logging.Level, fileConfig(cfg), os.Stderr)
			defer logger.Sync()

			scene, err := host.BuildScene(cfg, args, log)
			if err != nil {
				return err
			}
			defer scene.Free()

			text, st, err := host.Snapshot(cfg, scene, width, height, log)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), text)

			if stats {
				fmt.Fprintf(cmd.ErrOrStderr(), "instances: %d tested, %d culled, %d drawn\n",
					st.InstancesTested, st.InstancesCulled, st.InstancesDrawn)
				fmt.Fprintf(cmd.ErrOrStderr(), "triangles: %d drawn, %d backface, %d clipped, %d degenerate, %d invalid\n",
					st.TrianglesDrawn, st.TrianglesBackface, st.TrianglesClipped, st.TrianglesDegenerate, st.TrianglesInvalid)
			}
			log.Debug("snapshot", zap.Int("width", width), zap.Int("height", height), zap.Int("drawn", st.TrianglesDrawn))
			return nil
		},
	}

	cmd.Flags().IntVar(&width, "width", 80, "output width in columns")
	cmd.Flags().IntVar(&height, "height", 24, "output height in rows")
	cmd.Flags().BoolVar(&stats, "stats", false, "print frame statistics to stderr")
	return cmd
}

func fileConfig(cfg *config.Config) logger.FileConfig {
	if cfg.Logging.File == "" {
		return logger.FileConfig{}
	}
	fc := logger.DefaultFileConfig(cfg.Logging.File)
	fc.MaxSizeMB = cfg.Logging.MaxSizeMB
	fc.MaxBackups = cfg.Logging.MaxBackups
	fc.MaxAgeDays = cfg.Logging.MaxAgeDays
	return fc
}
