package components

import "image/color"

// ButtonComponent 文字按钮
//
// 纯数据组件。点击由 ButtonSystem 根据 ClickableComponent.JustClicked 分发到 OnClick。
type ButtonComponent struct {
	Label string
	Color color.RGBA
	// Filled 实心按钮（如表单提交），否则为描边按钮
	Filled bool

	// OnClick 点击回调
	OnClick func()
	// Clicks 累计点击次数
	Clicks int
}
