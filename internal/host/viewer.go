package host

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strings"

	"go.uber.org/zap"

	"github.com/taigrr/glyph3d/internal/config"
	"github.com/taigrr/glyph3d/pkg/render"
	"github.com/taigrr/glyph3d/pkg/term"
)

// Viewer owns everything one frame needs: camera, renderer, scene and the
// cell buffer the renderer draws into. Frame is the whole per-frame step;
// Run wraps it in a terminal loop and Snapshot calls it once.
type Viewer struct {
	Config     *config.Config
	Scene      *Scene
	Camera     *render.Camera
	Renderer   *render.Renderer
	Buffer     *term.CellBuffer
	Controller *Controller

	ShowHUD bool

	hud hud
	log *zap.Logger
}

// NewViewer builds a viewer for scene from cfg.
func NewViewer(cfg *config.Config, scene *Scene, log *zap.Logger) (*Viewer, error) {
	if log == nil {
		log = zap.NewNop()
	}

	shader, err := shaderFor(cfg)
	if err != nil {
		return nil, err
	}

	cam := render.NewCamera()
	cam.SetPosition(vec(cfg.Camera.Position))
	cam.SetRotation(radians(cfg.Camera.Rotation))
	cam.SetFOV(cfg.Camera.FOVDeg * math.Pi / 180)
	cam.SetClipPlanes(cfg.Camera.Near, cfg.Camera.Far)

	buf := term.NewCellBuffer(0, 0)
	buf.Blank.Bg = shader.Background

	r := render.NewRenderer(cam, buf)
	r.Viewport = render.NewViewport(cfg.Display.CellAspect)
	r.Shader = shader
	r.Wireframe = cfg.Display.Wireframe
	r.DepthSort = cfg.Display.DepthSort
	r.SetLogger(log.Named("render"))

	return &Viewer{
		Config:     cfg,
		Scene:      scene,
		Camera:     cam,
		Renderer:   r,
		Buffer:     buf,
		Controller: NewController(cam, cfg.Camera, cfg.Display.FPS),
		ShowHUD:    cfg.Display.ShowHUD,
		log:        log,
	}, nil
}

func shaderFor(cfg *config.Config) (render.Shader, error) {
	s := render.DefaultShader()

	base, ok := render.ParseColor(strings.ToLower(cfg.Lighting.Color))
	if !ok {
		return s, fmt.Errorf("lighting.color: unknown color %q", cfg.Lighting.Color)
	}
	bg, ok := render.ParseColor(strings.ToLower(cfg.Display.Background))
	if !ok {
		return s, fmt.Errorf("display.background: unknown color %q", cfg.Display.Background)
	}

	s.Base = base
	s.Background = bg
	s.LightDir = vec(cfg.Lighting.Direction)
	s.Ambient = cfg.Lighting.Ambient
	if cfg.Lighting.Shades != "" {
		s.Shades = []rune(cfg.Lighting.Shades)
	}
	return s, nil
}

// Apply runs a command. It returns false when the command asks to quit.
func (v *Viewer) Apply(cmd Command) bool {
	if v.Controller.Apply(cmd) {
		if cmd == CmdReset {
			for _, a := range v.Scene.Actors {
				a.Reset(v.Config.Display.FPS)
			}
		}
		return true
	}

	switch cmd {
	case CmdQuit:
		return false
	case CmdSpin:
		for _, a := range v.Scene.Actors {
			a.Kick(randomKick(), randomKick(), randomKick())
		}
	case CmdToggleWireframe:
		v.Renderer.Wireframe = !v.Renderer.Wireframe
	case CmdToggleDepthSort:
		v.Renderer.DepthSort = !v.Renderer.DepthSort
	case CmdToggleHUD:
		v.ShowHUD = !v.ShowHUD
	}
	v.log.Debug("command", zap.Stringer("cmd", cmd))
	return true
}

func randomKick() float64 {
	return (rand.Float64() - 0.5) * 0.3
}

// Frame advances the animation by dt seconds and renders one frame of the
// given size into Buffer.
func (v *Viewer) Frame(width, height int, dt float64) {
	v.Buffer.Resize(width, height)

	v.Controller.Update()
	v.Scene.Update(dt)

	r := v.Renderer
	r.BeginFrame(width, height)
	r.DrawScene(v.Scene.Instances())
	r.EndFrame()

	v.hud.tick(dt)
	if v.ShowHUD {
		v.drawHUD()
	}
}

// hud tracks the frame rate over roughly one second windows.
type hud struct {
	fps     float64
	frames  int
	elapsed float64
}

func (h *hud) tick(dt float64) {
	h.frames++
	h.elapsed += dt
	if h.elapsed >= 1 {
		h.fps = float64(h.frames) / h.elapsed
		h.frames = 0
		h.elapsed = 0
	}
}

func (v *Viewer) drawHUD() {
	b := v.Buffer
	if b.Height < 2 {
		return
	}
	fg, bg := render.BrightWhite, render.Black
	st := v.Renderer.Stats

	// Top row: frame rate, model names, triangle count.
	b.DrawText(0, 0, fmt.Sprintf(" %.0f FPS ", v.hud.fps), render.LightGreen, bg)

	names := make([]string, 0, len(v.Scene.Actors))
	for _, a := range v.Scene.Actors {
		names = append(names, a.Name)
	}
	title := " " + strings.Join(names, ", ") + " "
	b.DrawText(max((b.Width-len(title))/2, 0), 0, title, fg, bg)

	tris := fmt.Sprintf(" %d tris ", v.Scene.TriangleCount())
	b.DrawText(max(b.Width-len(tris), 0), 0, tris, render.LightAqua, bg)

	// Bottom row: what the renderer did this frame and the mode toggles.
	stats := fmt.Sprintf(" drawn %d  back %d  clip %d  culled %d/%d ",
		st.TrianglesDrawn, st.TrianglesBackface, st.TrianglesClipped,
		st.InstancesCulled, st.InstancesTested)
	b.DrawText(0, b.Height-1, stats, fg, bg)

	modes := fmt.Sprintf(" %s wire  %s sort ", check(v.Renderer.Wireframe), check(v.Renderer.DepthSort))
	b.DrawText(max(b.Width-len(modes), 0), b.Height-1, modes, render.LightYellow, bg)
}

func check(on bool) string {
	if on {
		return "[x]"
	}
	return "[ ]"
}

// Snapshot renders a single frame of the scene without a terminal and
// returns it as plain text together with the frame statistics.
func Snapshot(cfg *config.Config, scene *Scene, width, height int, log *zap.Logger) (string, render.Stats, error) {
	v, err := NewViewer(cfg, scene, log)
	if err != nil {
		return "", render.Stats{}, err
	}
	v.ShowHUD = false
	v.Frame(width, height, 0)
	return v.Buffer.String(), v.Renderer.Stats, nil
}
