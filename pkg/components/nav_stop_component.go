package components

// NavStopComponent HUD 导航栏上的一个站点
type NavStopComponent struct {
	// Index 站点序号，与 SectionIndexResolver 的结果对应
	Index int
	// Label 显示文字
	Label string
	// Page 点击后滚动到的页码
	Page int

	// Active 当前是否高亮
	Active bool
	// Redraws 站点样式被改写的次数（只在激活状态变化时增加）
	Redraws int
}
