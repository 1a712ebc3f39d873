// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputState 存储当前帧的输入状态
// 用于统一处理鼠标和触摸输入
type InputState struct {
	// 是否有点击/触摸事件刚刚发生
	JustPressed bool
	// 点击/触摸位置
	X, Y int
	// 是否有活动的触摸
	IsTouching bool
	// 滚轮/触摸拖动产生的垂直滚动量（像素，向下为正）
	ScrollDelta float64
}

// wheelPixelsPerNotch 每格滚轮对应的滚动像素
const wheelPixelsPerNotch = 100.0

// GetInputState 获取当前帧的输入状态
// 同时支持鼠标点击和触摸输入，优先检测触摸
func GetInputState() InputState {
	state := InputState{}

	// 首先检查触摸输入（移动设备）
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touchIDs) > 0 {
		state.JustPressed = true
		state.X, state.Y = ebiten.TouchPosition(touchIDs[0])
		state.IsTouching = true
		return state
	}

	// 活动触摸：拖动距离转换为滚动量（手指上移 = 页面下滚）
	allTouchIDs := ebiten.AppendTouchIDs(nil)
	if len(allTouchIDs) > 0 {
		id := allTouchIDs[0]
		state.X, state.Y = ebiten.TouchPosition(id)
		_, prevY := inpututil.TouchPositionInPreviousTick(id)
		state.ScrollDelta = float64(prevY - state.Y)
		state.IsTouching = true
		return state
	}

	// 鼠标输入（桌面设备）
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		state.JustPressed = true
	}
	state.X, state.Y = ebiten.CursorPosition()

	_, wheelY := ebiten.Wheel()
	state.ScrollDelta = -wheelY * wheelPixelsPerNotch
	return state
}

// IsPointerPressed 检查是否有指针按下（鼠标左键或触摸）
func IsPointerPressed() bool {
	if len(ebiten.AppendTouchIDs(nil)) > 0 {
		return true
	}
	return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

// PointInRect 检查点是否在矩形内（包含边界）
func PointInRect(px, py, x, y, w, h float64) bool {
	return px >= x && px <= x+w && py >= y && py <= y+h
}
