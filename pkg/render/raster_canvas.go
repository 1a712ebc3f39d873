package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// circleSegments 圆近似为多边形的边数
const circleSegments = 32

// RasterCanvas 基于 golang.org/x/image/vector 的软件光栅化画布
// 用于没有 GPU 上下文的快照导出
type RasterCanvas struct {
	img *image.RGBA
	ras *vector.Rasterizer
}

// NewRasterCanvas 创建指定尺寸的画布
func NewRasterCanvas(width, height int) *RasterCanvas {
	return &RasterCanvas{
		img: image.NewRGBA(image.Rect(0, 0, width, height)),
		ras: vector.NewRasterizer(width, height),
	}
}

// Image 返回底层图像
func (c *RasterCanvas) Image() *image.RGBA {
	return c.img
}

func (c *RasterCanvas) Size() (int, int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

func (c *RasterCanvas) Fill(clr color.Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(clr), image.Point{}, draw.Src)
}

// StrokeLine 线段光栅化为宽度为 width 的四边形
func (c *RasterCanvas) StrokeLine(x0, y0, x1, y1, width float32, clr color.Color) {
	dx, dy := x1-x0, y1-y0
	l := float32(math.Hypot(float64(dx), float64(dy)))
	if l == 0 {
		return
	}
	nx, ny := -dy/l*width/2, dx/l*width/2

	c.begin()
	c.ras.MoveTo(x0+nx, y0+ny)
	c.ras.LineTo(x1+nx, y1+ny)
	c.ras.LineTo(x1-nx, y1-ny)
	c.ras.LineTo(x0-nx, y0-ny)
	c.ras.ClosePath()
	c.flush(clr)
}

func (c *RasterCanvas) FillCircle(cx, cy, r float32, clr color.Color) {
	if r <= 0 {
		return
	}
	c.begin()
	c.circlePath(cx, cy, r)
	c.flush(clr)
}

// StrokeCircle 以外圆减内圆（非零环绕规则下反向绕行）绘制圆环
func (c *RasterCanvas) StrokeCircle(cx, cy, r, width float32, clr color.Color) {
	if r <= 0 {
		return
	}
	c.begin()
	c.circlePath(cx, cy, r+width/2)
	inner := r - width/2
	if inner > 0 {
		for i := circleSegments; i >= 0; i-- {
			a := float64(i) / circleSegments * 2 * math.Pi
			x := cx + inner*float32(math.Cos(a))
			y := cy + inner*float32(math.Sin(a))
			if i == circleSegments {
				c.ras.MoveTo(x, y)
			} else {
				c.ras.LineTo(x, y)
			}
		}
		c.ras.ClosePath()
	}
	c.flush(clr)
}

func (c *RasterCanvas) circlePath(cx, cy, r float32) {
	for i := 0; i <= circleSegments; i++ {
		a := float64(i) / circleSegments * 2 * math.Pi
		x := cx + r*float32(math.Cos(a))
		y := cy + r*float32(math.Sin(a))
		if i == 0 {
			c.ras.MoveTo(x, y)
		} else {
			c.ras.LineTo(x, y)
		}
	}
	c.ras.ClosePath()
}

func (c *RasterCanvas) begin() {
	b := c.img.Bounds()
	c.ras.Reset(b.Dx(), b.Dy())
	c.ras.DrawOp = draw.Over
}

func (c *RasterCanvas) flush(clr color.Color) {
	c.ras.Draw(c.img, c.img.Bounds(), image.NewUniform(clr), image.Point{})
}
