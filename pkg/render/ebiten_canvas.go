package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// EbitenCanvas 在 ebiten.Image 上绘制
type EbitenCanvas struct {
	dst *ebiten.Image
}

// NewEbitenCanvas 包装 ebiten 屏幕或离屏图像
func NewEbitenCanvas(dst *ebiten.Image) *EbitenCanvas {
	return &EbitenCanvas{dst: dst}
}

func (c *EbitenCanvas) Size() (int, int) {
	b := c.dst.Bounds()
	return b.Dx(), b.Dy()
}

func (c *EbitenCanvas) Fill(clr color.Color) {
	c.dst.Fill(clr)
}

func (c *EbitenCanvas) StrokeLine(x0, y0, x1, y1, width float32, clr color.Color) {
	vector.StrokeLine(c.dst, x0, y0, x1, y1, width, clr, true)
}

func (c *EbitenCanvas) FillCircle(cx, cy, r float32, clr color.Color) {
	vector.DrawFilledCircle(c.dst, cx, cy, r, clr, true)
}

func (c *EbitenCanvas) StrokeCircle(cx, cy, r, width float32, clr color.Color) {
	vector.StrokeCircle(c.dst, cx, cy, r, width, clr, true)
}
