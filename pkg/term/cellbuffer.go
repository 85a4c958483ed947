// Package term provides the character-cell canvas the renderer draws into and
// the glue that puts it on a terminal screen.
package term

import (
	"math"
	"strings"

	"github.com/taigrr/glyph3d/pkg/render"
)

// Cell is a single character cell.
type Cell struct {
	Char rune
	Fg   render.Color
	Bg   render.Color
}

// CellBuffer is a 2D array of character cells that can be drawn to the
// terminal. It implements render.Canvas.
type CellBuffer struct {
	Width  int    // Width in columns
	Height int    // Height in rows
	Cells  []Cell // Row-major cell data

	// Blank is written by Clear.
	Blank Cell
}

// NewCellBuffer creates a new buffer with the given dimensions.
func NewCellBuffer(width, height int) *CellBuffer {
	b := &CellBuffer{Blank: Cell{Char: ' ', Fg: render.White, Bg: render.Black}}
	b.Resize(width, height)
	return b
}

// Resize reallocates the buffer if the dimensions changed and clears it.
func (b *CellBuffer) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	if width != b.Width || height != b.Height || len(b.Cells) != width*height {
		b.Width = width
		b.Height = height
		b.Cells = make([]Cell, width*height)
	}
	b.Clear()
}

// Clear fills the buffer with the blank cell.
func (b *CellBuffer) Clear() {
	for i := range b.Cells {
		b.Cells[i] = b.Blank
	}
}

// Set writes fill at (x, y). Out-of-bounds writes are ignored.
func (b *CellBuffer) Set(x, y int, fill render.Fill) {
	if x < 0 || x >= b.Width || y < 0 || y >= b.Height {
		return
	}
	b.Cells[y*b.Width+x] = Cell(fill)
}

// At returns the cell at (x, y), or the blank cell if out of bounds.
func (b *CellBuffer) At(x, y int) Cell {
	if x < 0 || x >= b.Width || y < 0 || y >= b.Height {
		return b.Blank
	}
	return b.Cells[y*b.Width+x]
}

// DrawLine draws a line from (x0, y0) to (x1, y1) using Bresenham's algorithm.
// A line covers the same cells whichever end it starts from.
func (b *CellBuffer) DrawLine(x0, y0, x1, y1 int, fill render.Fill) {
	if x0 > x1 || (x0 == x1 && y0 > y1) {
		x0, y0, x1, y1 = x1, y1, x0, y0
	}

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		b.Set(x0, y0, fill)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// DrawTriangle fills the cells whose centers fall inside the triangle, in
// either winding, and then traces its edges so that slivers thinner than a
// cell still show up.
func (b *CellBuffer) DrawTriangle(x1, y1, x2, y2, x3, y3 int, fill render.Fill) {
	fx0, fy0 := float64(x1), float64(y1)
	fx1, fy1 := float64(x2), float64(y2)
	fx2, fy2 := float64(x3), float64(y3)

	area := edgeFunc(fx0, fy0, fx1, fy1, fx2, fy2)
	if area != 0 {
		minX := max(0, int(math.Floor(min(fx0, fx1, fx2))))
		maxX := min(b.Width-1, int(math.Ceil(max(fx0, fx1, fx2))))
		minY := max(0, int(math.Floor(min(fy0, fy1, fy2))))
		maxY := min(b.Height-1, int(math.Ceil(max(fy0, fy1, fy2))))

		for y := minY; y <= maxY; y++ {
			py := float64(y) + 0.5
			for x := minX; x <= maxX; x++ {
				px := float64(x) + 0.5

				w0 := edgeFunc(fx1, fy1, fx2, fy2, px, py)
				w1 := edgeFunc(fx2, fy2, fx0, fy0, px, py)
				w2 := edgeFunc(fx0, fy0, fx1, fy1, px, py)

				if area < 0 {
					w0, w1, w2 = -w0, -w1, -w2
				}
				if w0 < 0 || w1 < 0 || w2 < 0 {
					continue
				}
				b.Set(x, y, fill)
			}
		}
	}

	b.DrawLine(x1, y1, x2, y2, fill)
	b.DrawLine(x2, y2, x3, y3, fill)
	b.DrawLine(x3, y3, x1, y1, fill)
}

// DrawText writes s starting at (x, y). Text running off the right edge is
// dropped.
func (b *CellBuffer) DrawText(x, y int, s string, fg, bg render.Color) {
	for _, r := range s {
		b.Set(x, y, render.Fill{Char: r, Fg: fg, Bg: bg})
		x++
	}
}

// String returns the characters of the buffer, one line per row, without
// colors.
func (b *CellBuffer) String() string {
	var sb strings.Builder
	sb.Grow((b.Width + 1) * b.Height)
	for y := range b.Height {
		for x := range b.Width {
			ch := b.Cells[y*b.Width+x].Char
			if ch == 0 {
				ch = ' '
			}
			sb.WriteRune(ch)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// edgeFunc is twice the signed area of (a, b, p).
func edgeFunc(ax, ay, bx, by, px, py float64) float64 {
	return (bx-ax)*(py-ay) - (by-ay)*(px-ax)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
