package term

import (
	"image/color"

	uv "github.com/charmbracelet/ultraviolet"

	"github.com/taigrr/glyph3d/pkg/render"
)

// Draw copies the buffer onto the screen inside area. Cells outside the
// buffer are left untouched.
func (b *CellBuffer) Draw(scr uv.Screen, area uv.Rectangle) {
	for row := area.Min.Y; row < area.Max.Y && row-area.Min.Y < b.Height; row++ {
		y := row - area.Min.Y
		for col := area.Min.X; col < area.Max.X && col-area.Min.X < b.Width; col++ {
			c := b.Cells[y*b.Width+col-area.Min.X]

			content := " "
			if c.Char != 0 {
				content = string(c.Char)
			}

			scr.SetCell(col, row, &uv.Cell{
				Content: content,
				Width:   1,
				Style: uv.Style{
					Fg: paletteColor(c.Fg),
					Bg: paletteColor(c.Bg),
				},
			})
		}
	}
}

// paletteColor converts a palette entry to a terminal color.
func paletteColor(c render.Color) color.Color {
	return c.ToRGBA()
}
