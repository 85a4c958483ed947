package render

import (
	"math"

	"github.com/taigrr/glyph3d/pkg/math3d"
)

// maxBrightness keeps quantized indices inside their tables.
const maxBrightness = 0.99

// DefaultShades is the character ramp from darkest to brightest.
const DefaultShades = "&%$#@"

// Fill is what a drawing primitive paints into each covered cell.
type Fill struct {
	Char rune
	Fg   Color
	Bg   Color
}

// Shader computes flat Lambertian shading for a single directional light.
type Shader struct {
	LightDir   math3d.Vec3 // Direction the light travels
	Ambient    float64
	Base       Color
	Background Color
	Shades     []rune
}

// DefaultShader returns a shader lit along +Z (from behind the viewer into the
// scene) with a blue base color.
func DefaultShader() Shader {
	return Shader{
		LightDir:   math3d.V3(0, 0, 1),
		Ambient:    0.2,
		Base:       Blue,
		Background: Black,
		Shades:     []rune(DefaultShades),
	}
}

// Brightness returns ambient + diffuse for a world-space face normal,
// clamped to [0, 0.99].
//
// Face normals follow the triangle winding; in this left-handed camera frame
// a front-facing triangle's normal points away from the viewer, so it lines
// up with a light travelling into the scene.
func (s Shader) Brightness(normal math3d.Vec3) float64 {
	diffuse := normal.Dot(s.LightDir.Normalize())
	return clamp(s.Ambient+diffuse, 0, maxBrightness)
}

// Shade returns the fill for a face with the given world-space normal.
func (s Shader) Shade(normal math3d.Vec3) Fill {
	b := s.Brightness(normal)

	shades := s.Shades
	if len(shades) == 0 {
		shades = []rune(DefaultShades)
	}

	return Fill{
		Char: shades[int(math.Floor(b*float64(len(shades))))],
		Fg:   Brighten(s.Base, b),
		Bg:   s.Background,
	}
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Min(math.Max(v, lo), hi)
}
