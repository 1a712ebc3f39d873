// Package render 实现线框 3D 背景的绘制
//
// WireScene 是镜头位姿的接收端：每帧接收一次 timeline.CameraPose，
// 然后把星空、网格地面和装饰物投影到 Canvas 上。Canvas 有两个实现：
// EbitenCanvas 用于窗口渲染，RasterCanvas 用于无窗口的快照导出。
package render

import "image/color"

// Canvas 二维绘图目标
type Canvas interface {
	Size() (width, height int)
	Fill(c color.Color)
	StrokeLine(x0, y0, x1, y1, width float32, c color.Color)
	FillCircle(cx, cy, r float32, c color.Color)
	StrokeCircle(cx, cy, r, width float32, c color.Color)
}

// Fade 按 alpha 系数淡化颜色（预乘 alpha）
func Fade(c color.Color, alpha float64) color.RGBA {
	if alpha <= 0 {
		return color.RGBA{}
	}
	if alpha > 1 {
		alpha = 1
	}
	r, g, b, a := c.RGBA()
	return color.RGBA{
		R: uint8(float64(r>>8) * alpha),
		G: uint8(float64(g>>8) * alpha),
		B: uint8(float64(b>>8) * alpha),
		A: uint8(float64(a>>8) * alpha),
	}
}
