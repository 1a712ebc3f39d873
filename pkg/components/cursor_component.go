package components

import "github.com/cloudypatil/portfolio/pkg/effects"

// CursorComponent 自定义光标（中心圆点 + 旋转外环）
type CursorComponent struct {
	Follower *effects.CursorFollower
	Dot      *effects.Marker
	Ring     *effects.Marker

	DotRadius  float64
	RingRadius float64
}
