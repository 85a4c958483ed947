package render

import (
	"sort"

	"go.uber.org/zap"

	"github.com/taigrr/glyph3d/pkg/math3d"
)

// Stats counts what happened during a frame.
type Stats struct {
	InstancesTested int // Instances tested for culling
	InstancesCulled int // Instances rejected by the frustum
	InstancesDrawn  int // Instances that passed culling

	TrianglesDrawn      int // Triangles sent to the canvas
	TrianglesBackface   int // Triangles facing away from the camera
	TrianglesClipped    int // Triangles with a vertex in front of the near plane
	TrianglesDegenerate int // Zero-area triangles (world or screen space)
	TrianglesInvalid    int // Triangles referencing vertices that do not exist
}

// Renderer runs the per-instance pipeline: model and view transform, frustum
// culling, backface culling, flat shading and emission to a Canvas.
type Renderer struct {
	Camera   *Camera
	Viewport *Viewport
	Shader   Shader
	Canvas   Canvas

	// Wireframe draws triangle edges instead of filled triangles.
	Wireframe bool

	// DepthSort defers triangles until EndFrame and draws them far to near.
	DepthSort bool

	Stats Stats

	queue []ScreenTriangle
	log   *zap.Logger
}

// NewRenderer creates a renderer drawing through camera onto canvas.
func NewRenderer(camera *Camera, canvas Canvas) *Renderer {
	return &Renderer{
		Camera:   camera,
		Viewport: NewViewport(DefaultCellAspect),
		Shader:   DefaultShader(),
		Canvas:   canvas,
		log:      zap.NewNop(),
	}
}

// SetLogger sets the logger used for per-frame diagnostics.
func (r *Renderer) SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	r.log = l
}

// BeginFrame prepares the viewport for a screen of the given size and resets
// the frame statistics. It must be called before drawing each frame.
func (r *Renderer) BeginFrame(width, height int) {
	r.Viewport.Prepare(width, height, r.Camera)
	r.ResetStats()
	r.queue = r.queue[:0]
}

// EndFrame flushes depth-sorted triangles, if any, to the canvas.
func (r *Renderer) EndFrame() {
	if len(r.queue) == 0 {
		return
	}
	sort.SliceStable(r.queue, func(i, j int) bool {
		return r.queue[i].Depth > r.queue[j].Depth
	})
	for _, t := range r.queue {
		t.Draw(r.Canvas, r.Wireframe)
	}
	r.queue = r.queue[:0]
}

// ResetStats clears the frame statistics.
func (r *Renderer) ResetStats() {
	r.Stats = Stats{}
}

// DrawScene draws every instance in order.
func (r *Renderer) DrawScene(instances []*MeshInstance) {
	for _, inst := range instances {
		r.DrawMeshInstance(inst)
	}
}

// DrawMeshInstance culls the instance against the frustum and, if any of it
// may be visible, emits its front-facing triangles. Nil instances and
// instances without a mesh are ignored.
func (r *Renderer) DrawMeshInstance(inst *MeshInstance) {
	if inst == nil || inst.Mesh == nil {
		return
	}

	if r.Viewport.Stale(r.Camera) {
		r.log.Debug("frustum rebuilt outside BeginFrame",
			zap.Float64("fov", r.Camera.FOV),
			zap.Float64("near", r.Camera.Near),
			zap.Float64("far", r.Camera.Far),
		)
		r.Viewport.UpdateFrustum(r.Camera)
	}

	model := inst.ModelMatrix()
	view := r.Camera.ViewMatrix()
	modelView := view.Mul(model)

	r.Stats.InstancesTested++
	if r.Viewport.Frustum.CullAABB(inst.LocalBounds().Transform(modelView)) {
		r.Stats.InstancesCulled++
		return
	}
	r.Stats.InstancesDrawn++

	mesh := inst.Mesh
	vertexCount := mesh.VertexCount()

	for i := range mesh.TriangleCount() {
		face := mesh.Face(i)
		if !validFace(face, vertexCount) {
			r.Stats.TrianglesInvalid++
			continue
		}

		var world, cam, proj [3]math3d.Vec3
		for k := range 3 {
			world[k] = model.MulVec3(mesh.Vertex(face[k]))
			cam[k] = view.MulVec3(world[k])
		}

		// Triangles crossing behind the camera would project mirrored.
		if cam[0].Z < r.Camera.Near || cam[1].Z < r.Camera.Near || cam[2].Z < r.Camera.Near {
			r.Stats.TrianglesClipped++
			continue
		}

		// Lighting is computed in world coordinates.
		normal, ok := math3d.TriangleNormal(world[0], world[1], world[2])
		if !ok {
			r.Stats.TrianglesDegenerate++
			continue
		}

		for k := range 3 {
			proj[k] = r.Viewport.Project(r.Camera, cam[k])
		}

		screenNormal, ok := math3d.TriangleNormal(proj[0], proj[1], proj[2])
		if !ok {
			r.Stats.TrianglesDegenerate++
			continue
		}
		if screenNormal.Z <= 0 {
			r.Stats.TrianglesBackface++
			continue
		}

		tri := ScreenTriangle{
			Fill:  r.Shader.Shade(normal),
			Depth: (cam[0].Z + cam[1].Z + cam[2].Z) / 3,
		}
		for k := range 3 {
			tri.P[k].X, tri.P[k].Y = r.Viewport.NormToScreen(proj[k])
		}

		r.Stats.TrianglesDrawn++
		if r.DepthSort {
			r.queue = append(r.queue, tri)
			continue
		}
		tri.Draw(r.Canvas, r.Wireframe)
	}
}

// IsVisible reports whether any part of the instance may be inside the
// frustum.
func (r *Renderer) IsVisible(inst *MeshInstance) bool {
	if inst == nil || inst.Mesh == nil {
		return false
	}
	modelView := r.Camera.ViewMatrix().Mul(inst.ModelMatrix())
	return !r.Viewport.Frustum.CullAABB(inst.LocalBounds().Transform(modelView))
}

func validFace(f [3]int, vertexCount int) bool {
	for _, idx := range f {
		if idx < 0 || idx >= vertexCount {
			return false
		}
	}
	return true
}
