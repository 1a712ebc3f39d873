package components

import "image/color"

// ToastComponent 屏幕底部的短暂提示
type ToastComponent struct {
	Message string
	Color   color.RGBA
	// Remaining 剩余显示时间（秒），到 0 时实体被删除
	Remaining float64
	Duration  float64
}
