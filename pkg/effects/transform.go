// Package effects 实现与滚动时间轴无关的装饰效果
//
// 故障文字、光标跟随、卡片倾斜和打字机横幅都是独立的帧驱动状态对象，
// 只通过 TransformTarget 或返回的文字与渲染层交互。
package effects

import "math"

// Transform 作用于视觉元素的二维变换
//
// 平移以视口像素为单位；TiltX/TiltY 是绕 X/Y 轴的透视倾斜角（弧度），
// 由渲染层近似为剪切变换。
type Transform struct {
	TranslateX, TranslateY float64
	Rotation               float64
	Scale                  float64
	TiltX, TiltY           float64
}

// Identity 返回单位变换
func Identity() Transform {
	return Transform{Scale: 1}
}

// Perspective 倾斜变换的透视距离（像素）
const Perspective = 1000.0

// Apply 把相对元素中心的局部坐标 (x, y) 变换到屏幕坐标
//
// 顺序：缩放，绕 Y 轴倾斜，绕 X 轴倾斜，透视投影，旋转，平移。
func (t Transform) Apply(x, y float64) (float64, float64) {
	s := t.Scale
	if s == 0 {
		s = 1
	}
	x, y = x*s, y*s

	// 绕 Y 轴
	z := -x * math.Sin(t.TiltY)
	x = x * math.Cos(t.TiltY)
	// 绕 X 轴
	y, z = y*math.Cos(t.TiltX)-z*math.Sin(t.TiltX), y*math.Sin(t.TiltX)+z*math.Cos(t.TiltX)

	if z < Perspective {
		f := Perspective / (Perspective - z)
		x, y = x*f, y*f
	}

	if t.Rotation != 0 {
		sin, cos := math.Sincos(t.Rotation)
		x, y = x*cos-y*sin, x*sin+y*cos
	}
	return x + t.TranslateX, y + t.TranslateY
}

// TransformTarget "对视觉元素 E 应用变换 T"
//
// 任何渲染目标都可以实现：ebiten 绘制参数、软件光栅化、测试桩。
type TransformTarget interface {
	ApplyTransform(t Transform)
}

// Marker 记录最近一次变换的 TransformTarget
// 渲染系统在 Draw 时读取 Current
type Marker struct {
	Current Transform
	// Applied 收到变换的次数
	Applied int
}

// NewMarker 创建处于单位变换的标记
func NewMarker() *Marker {
	return &Marker{Current: Identity()}
}

// ApplyTransform 实现 TransformTarget
func (m *Marker) ApplyTransform(t Transform) {
	m.Current = t
	m.Applied++
}
