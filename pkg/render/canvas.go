package render

// Canvas is the character-grid drawing surface supplied by the host.
// Coordinates are cell positions already clamped to [0, width] x [0, height].
type Canvas interface {
	DrawTriangle(x1, y1, x2, y2, x3, y3 int, fill Fill)
	DrawLine(x1, y1, x2, y2 int, fill Fill)
}

// Point is a cell coordinate.
type Point struct {
	X, Y int
}

// ScreenTriangle is a shaded triangle ready for a Canvas. Depth is the mean
// camera-space Z of its vertices and is only used for ordering.
type ScreenTriangle struct {
	P     [3]Point
	Fill  Fill
	Depth float64
}

// Draw issues the triangle to c, as a filled triangle or as three edges.
func (t ScreenTriangle) Draw(c Canvas, wireframe bool) {
	if wireframe {
		c.DrawLine(t.P[0].X, t.P[0].Y, t.P[1].X, t.P[1].Y, t.Fill)
		c.DrawLine(t.P[1].X, t.P[1].Y, t.P[2].X, t.P[2].Y, t.Fill)
		c.DrawLine(t.P[2].X, t.P[2].Y, t.P[0].X, t.P[0].Y, t.Fill)
		return
	}
	c.DrawTriangle(t.P[0].X, t.P[0].Y, t.P[1].X, t.P[1].Y, t.P[2].X, t.P[2].Y, t.Fill)
}
