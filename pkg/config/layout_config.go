package config

import "image/color"

// 布局配置常量
// 本文件定义了页面窗口尺寸、HUD 导航栏位置和调色板
// 所有坐标使用"屏幕坐标系"（逻辑分辨率，Ebitengine 负责缩放）

// Window Configuration (窗口配置)
const (
	// GameWindowWidth 逻辑屏幕宽度
	GameWindowWidth = 1280

	// GameWindowHeight 默认逻辑屏幕高度
	// 同时也是一页的"视口高度"，导航跳转目标 = 页码 * 视口高度
	GameWindowHeight = 720

	// MinLogicalHeight / MaxLogicalHeight 逻辑高度随窗口宽高比变化的范围
	// 宽度固定为 GameWindowWidth，竖屏手机得到更高的视口
	MinLogicalHeight = 540
	MaxLogicalHeight = 2560

	// AutosaveIntervalSeconds 定期保存滚动位置的间隔（秒）
	AutosaveIntervalSeconds = 5.0

	// WindowTitle 窗口标题
	WindowTitle = "HARSHAL PATIL // SYSTEM ARCHITECT"

	// FieldOfViewDegrees 垂直视场角（度）
	FieldOfViewDegrees = 50.0
)

// HUD Navigation Rail (导航轨道布局)
const (
	// NavRailRightMargin 导航轨道距屏幕右边缘的距离
	NavRailRightMargin = 40.0

	// NavRailHeightRatio 导航轨道高度占屏幕高度的比例
	NavRailHeightRatio = 0.5

	// NavRailMinHeight 导航轨道最小高度
	NavRailMinHeight = 400.0

	// NavStopRadius 站点节点半径
	NavStopRadius = 6.0

	// NavStopHitWidth 站点可点击区域宽度（包含左侧标签）
	NavStopHitWidth = 190.0

	// NavStopHitHeight 站点可点击区域高度
	NavStopHitHeight = 28.0
)

// Content Overlay (内容覆盖层布局)
const (
	// ContentMarginX 内容块左右边距
	ContentMarginX = 80.0

	// CardWidth 技能卡/成就卡宽度
	CardWidth = 300.0

	// CardHeight 技能卡高度
	CardHeight = 170.0

	// ProjectCardWidth 项目卡宽度
	ProjectCardWidth = 560.0

	// ProjectCardHeight 项目卡高度
	ProjectCardHeight = 190.0

	// FormWidth 联系表单宽度
	FormWidth = 448.0

	// FormFieldHeight 表单输入框高度
	FormFieldHeight = 30.0

	// FormMessageHeight 留言输入框高度（三行）
	FormMessageHeight = 66.0

	// TextScaleHeading 标题文字缩放（7x13 位图字体）
	TextScaleHeading = 4.0

	// TextScaleSubheading 副标题文字缩放
	TextScaleSubheading = 2.0
)

// Palette (调色板)
var (
	NeonCyan  = color.RGBA{R: 0x00, G: 0xf3, B: 0xff, A: 0xff}
	NeonPink  = color.RGBA{R: 0xff, G: 0x00, B: 0x3c, A: 0xff}
	NeonGreen = color.RGBA{R: 0x0a, G: 0xff, B: 0x00, A: 0xff}
	VoidBlack = color.RGBA{R: 0x05, G: 0x05, B: 0x05, A: 0xff}
	Amber     = color.RGBA{R: 0xfb, G: 0xbf, B: 0x24, A: 0xff}
	DimGray   = color.RGBA{R: 0x6b, G: 0x72, B: 0x80, A: 0xff}
	SoftWhite = color.RGBA{R: 0xe5, G: 0xe7, B: 0xeb, A: 0xff}
)

// Fog (雾效)
// 距离镜头 FogNear 以内不衰减，FogFar 以外完全融入背景色
const (
	FogNear = 5.0
	FogFar  = 60.0
)
