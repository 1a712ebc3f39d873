package components

import "github.com/cloudypatil/portfolio/pkg/effects"

// GlitchTextComponent 悬停时播放故障动画的文字
//
// 每个实例拥有独立的 GlitchAnimator，触发只依赖 ClickableComponent 的悬停上升沿。
type GlitchTextComponent struct {
	Animator *effects.GlitchAnimator
	// Triggers 累计触发次数
	Triggers int
}
