package components

// AnchorComponent 把实体固定在滚动内容层上
//
// 内容层随滚动像素平移：屏幕 Y = Page*视口高度 - scrollTop + OffsetY。
// ScreenY 和 Visible 由 ContentLayoutSystem 每帧计算。
type AnchorComponent struct {
	// Page 所属内容块的页偏移（以视口高度为单位）
	Page float64
	// X 屏幕横坐标（内容层不做横向滚动）
	X float64
	// OffsetY 相对内容块顶部的纵向偏移
	OffsetY float64

	Width, Height float64

	ScreenY float64
	Visible bool
}
