package components

// ClickableComponent 标记实体可以被指针点击
//
// X/Y 为屏幕坐标（视口像素）。锚定在内容层上的实体由
// ContentLayoutSystem 每帧改写 Y；HUD 实体的坐标固定。
// 悬停和点击标志由 InputSystem 每帧重新计算，其他系统只读。
type ClickableComponent struct {
	X, Y          float64
	Width, Height float64
	IsEnabled     bool // 禁用时不参与命中测试（如发送中的提交按钮）

	IsHovered   bool // 指针当前在区域内
	JustEntered bool // 本帧指针刚进入区域（悬停的上升沿）
	JustClicked bool // 本帧在区域内发生了点击/触摸
}

// Contains 检查点是否在可点击区域内
func (c *ClickableComponent) Contains(px, py float64) bool {
	return px >= c.X && px <= c.X+c.Width && py >= c.Y && py <= c.Y+c.Height
}
