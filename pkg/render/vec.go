package render

import "math"

// Vec3 三维向量（值类型）
type Vec3 [3]float64

func (a Vec3) Add(b Vec3) Vec3 {
	return Vec3{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

func (a Vec3) Sub(b Vec3) Vec3 {
	return Vec3{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v[0] * s, v[1] * s, v[2] * s}
}

func (v Vec3) Len() float64 {
	return math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}

// RotateXYZ 按 X、Y、Z 顺序的欧拉角旋转（与场景图默认顺序一致）
func (v Vec3) RotateXYZ(r Vec3) Vec3 {
	x, y, z := v[0], v[1], v[2]

	if r[0] != 0 {
		s, c := math.Sincos(r[0])
		y, z = y*c-z*s, y*s+z*c
	}
	if r[1] != 0 {
		s, c := math.Sincos(r[1])
		x, z = x*c+z*s, -x*s+z*c
	}
	if r[2] != 0 {
		s, c := math.Sincos(r[2])
		x, y = x*c-y*s, x*s+y*c
	}
	return Vec3{x, y, z}
}
