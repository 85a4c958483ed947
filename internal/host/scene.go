// Package host runs the renderer against a terminal: it builds the scene
// from config, steps the camera and animations each frame and draws into a
// character buffer that is flushed to the screen.
package host

import (
	"errors"
	"fmt"
	"math"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/taigrr/glyph3d/internal/config"
	"github.com/taigrr/glyph3d/pkg/math3d"
	"github.com/taigrr/glyph3d/pkg/models"
	"github.com/taigrr/glyph3d/pkg/render"
)

// ErrEmptyScene is returned when neither arguments nor config name a model.
var ErrEmptyScene = errors.New("no models to show")

// DefaultSpinDeg is the yaw rate given to models named on the command line.
const DefaultSpinDeg = 30.0

// layoutSpacing separates models named on the command line along X.
const layoutSpacing = 3.0

// Actor is a mesh instance plus its animation: a constant spin and a
// spring-damped kick on each axis.
type Actor struct {
	Name     string
	Instance *render.MeshInstance
	Spin     math3d.Vec3 // radians per second

	base  math3d.Vec3
	angle math3d.Vec3
	kick  [3]RotationAxis
}

func newActor(name string, mesh *models.Mesh, pos, rot, spin math3d.Vec3, fps int) *Actor {
	inst := render.NewMeshInstance(mesh)
	inst.Position = pos
	inst.Rotation = rot
	return &Actor{
		Name:     name,
		Instance: inst,
		Spin:     spin,
		base:     rot,
		kick:     [3]RotationAxis{NewRotationAxis(fps), NewRotationAxis(fps), NewRotationAxis(fps)},
	}
}

// Update advances the animation by dt seconds.
func (a *Actor) Update(dt float64) {
	a.angle = a.angle.Add(a.Spin.Scale(dt))
	for i := range a.kick {
		a.kick[i].Update()
	}
	a.Instance.Rotation = a.base.Add(a.angle).Add(math3d.V3(
		a.kick[0].Position,
		a.kick[1].Position,
		a.kick[2].Position,
	))
}

// Kick adds angular velocity (radians per frame) about each axis.
func (a *Actor) Kick(x, y, z float64) {
	a.kick[0].Velocity += x
	a.kick[1].Velocity += y
	a.kick[2].Velocity += z
}

// Reset returns the actor to its initial orientation.
func (a *Actor) Reset(fps int) {
	a.angle = math3d.Zero3()
	for i := range a.kick {
		a.kick[i] = NewRotationAxis(fps)
	}
	a.Instance.Rotation = a.base
}

// Scene is the set of loaded meshes and the actors that place them. Meshes
// are loaded once per path and shared by every actor that names them.
type Scene struct {
	Actors []*Actor
	Meshes []*models.Mesh

	instances []*render.MeshInstance
}

// Instances returns the mesh instances in draw order.
func (s *Scene) Instances() []*render.MeshInstance {
	return s.instances
}

// TriangleCount sums the triangles of every actor's mesh.
func (s *Scene) TriangleCount() int {
	n := 0
	for _, a := range s.Actors {
		n += a.Instance.Mesh.TriangleCount()
	}
	return n
}

// Update advances every actor by dt seconds.
func (s *Scene) Update(dt float64) {
	for _, a := range s.Actors {
		a.Update(dt)
	}
}

// Free retires the actors and releases the meshes. It is safe to call more
// than once.
func (s *Scene) Free() {
	s.Actors = nil
	s.instances = nil
	for _, m := range s.Meshes {
		m.Free()
	}
	s.Meshes = nil
}

// Layout places the given model paths side by side along X, each spinning
// about Y. It is used when models are named on the command line.
func Layout(paths []string) []config.InstanceConfig {
	out := make([]config.InstanceConfig, len(paths))
	mid := float64(len(paths)-1) / 2
	for i, p := range paths {
		out[i] = config.InstanceConfig{
			Model:    p,
			Position: config.Vec{(float64(i) - mid) * layoutSpacing, 0, 0},
			Spin:     config.Vec{0, DefaultSpinDeg, 0},
		}
	}
	return out
}

// BuildScene loads the models named by paths, or by cfg.Scene when paths is
// empty, and creates one actor per entry.
func BuildScene(cfg *config.Config, paths []string, log *zap.Logger) (*Scene, error) {
	if log == nil {
		log = zap.NewNop()
	}

	specs := cfg.Scene.Instances
	if len(paths) > 0 {
		specs = Layout(paths)
	}
	if len(specs) == 0 {
		return nil, ErrEmptyScene
	}

	opts := models.Options{
		ReverseWinding: cfg.Loader.ReverseWinding,
		Strict:         cfg.Loader.Strict,
		Logger:         log,
	}

	scene := &Scene{}
	loaded := make(map[string]*models.Mesh)

	for _, spec := range specs {
		mesh, ok := loaded[spec.Model]
		if !ok {
			var err error
			mesh, err = models.Load(spec.Model, opts)
			if err != nil {
				scene.Free()
				return nil, fmt.Errorf("load %s: %w", spec.Model, err)
			}
			if cfg.Loader.Fit > 0 {
				mesh.Fit(cfg.Loader.Fit)
			}
			loaded[spec.Model] = mesh
			scene.Meshes = append(scene.Meshes, mesh)

			log.Info("model loaded",
				zap.String("path", spec.Model),
				zap.Int("vertices", mesh.VertexCount()),
				zap.Int("triangles", mesh.TriangleCount()),
				zap.Int("warnings", len(mesh.Warnings)),
			)
		}

		actor := newActor(
			filepath.Base(spec.Model),
			mesh,
			vec(spec.Position),
			radians(spec.Rotation),
			radians(spec.Spin),
			cfg.Display.FPS,
		)
		scene.Actors = append(scene.Actors, actor)
		scene.instances = append(scene.instances, actor.Instance)
	}

	return scene, nil
}

func vec(v config.Vec) math3d.Vec3 {
	return math3d.V3(v[0], v[1], v[2])
}

func radians(deg config.Vec) math3d.Vec3 {
	return vec(deg).Scale(math.Pi / 180)
}
