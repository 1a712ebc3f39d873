package render

import (
	"math"

	"github.com/cloudypatil/portfolio/pkg/timeline"
)

// nearPlane 近裁剪面距离
const nearPlane = 0.1

// Projector 透视投影
//
// 镜头朝 -Z 方向看，位置和 Z 轴滚转来自 timeline.CameraPose。
type Projector struct {
	Pose          timeline.CameraPose
	Width, Height float64
	focal         float64
}

// NewProjector 创建投影器
// fovDegrees 为垂直视场角
func NewProjector(width, height, fovDegrees float64) *Projector {
	p := &Projector{Width: width, Height: height}
	p.focal = (height / 2) / math.Tan(fovDegrees*math.Pi/360)
	return p
}

// ToCamera 把世界坐标转换到镜头坐标系
func (p *Projector) ToCamera(world Vec3) Vec3 {
	rel := world.Sub(Vec3{p.Pose.X, p.Pose.Y, p.Pose.Z})
	return rel.RotateXYZ(Vec3{0, 0, -p.Pose.RotationZ})
}

// Project 把世界坐标投影到屏幕
// 返回屏幕坐标、到镜头的深度，以及点是否在近裁剪面之前
func (p *Projector) Project(world Vec3) (sx, sy, depth float64, ok bool) {
	c := p.ToCamera(world)
	depth = -c[2]
	if depth < nearPlane {
		return 0, 0, depth, false
	}
	sx = p.Width/2 + c[0]*p.focal/depth
	sy = p.Height/2 - c[1]*p.focal/depth
	return sx, sy, depth, true
}

// ProjectSegment 投影一条线段，必要时在近裁剪面处截断
func (p *Projector) ProjectSegment(a, b Vec3) (x0, y0, x1, y1, depth float64, ok bool) {
	ca, cb := p.ToCamera(a), p.ToCamera(b)
	da, db := -ca[2], -cb[2]
	if da < nearPlane && db < nearPlane {
		return 0, 0, 0, 0, 0, false
	}

	// 截断到近裁剪面
	if da < nearPlane {
		t := (nearPlane - da) / (db - da)
		ca = ca.Add(cb.Sub(ca).Scale(t))
		da = nearPlane
	} else if db < nearPlane {
		t := (nearPlane - db) / (da - db)
		cb = cb.Add(ca.Sub(cb).Scale(t))
		db = nearPlane
	}

	x0 = p.Width/2 + ca[0]*p.focal/da
	y0 = p.Height/2 - ca[1]*p.focal/da
	x1 = p.Width/2 + cb[0]*p.focal/db
	y1 = p.Height/2 - cb[1]*p.focal/db
	return x0, y0, x1, y1, (da + db) / 2, true
}

// FogFactor 线性雾：near 之前完全可见，far 之后完全不可见
func FogFactor(depth, near, far float64) float64 {
	if depth <= near {
		return 1
	}
	if depth >= far || far <= near {
		return 0
	}
	return 1 - (depth-near)/(far-near)
}
