package components

import "image/color"

// HeadingAlign 标题对齐方式
type HeadingAlign int

const (
	AlignLeft HeadingAlign = iota
	AlignCenter
	AlignRight
)

// HeadingComponent 内容块标题和正文
//
// 如果实体同时带有 GlitchTextComponent，标题后面追加故障文字。
type HeadingComponent struct {
	Title string
	// Lines 标题下方的正文行（已按宽度换行）
	Lines []string
	Scale float64
	Color color.RGBA
	// AccentColor 故障文字颜色
	AccentColor color.RGBA
	Align       HeadingAlign
}
