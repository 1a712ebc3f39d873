package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene 由 SceneManager 驱动的页面
//
// Update 和 Draw 都在 ebiten 帧循环中调用，实现不需要加锁。
type Scene interface {
	// Update 推进一帧，deltaTime 单位为秒
	Update(deltaTime float64)

	// Draw 绘制到逻辑屏幕
	Draw(screen *ebiten.Image)
}

// Saveable 可选接口：场景在窗口关闭或重新加载前保存状态
//
// 作品集场景用它保存滚动位置和访问者设置。
type Saveable interface {
	// SaveOnExit 返回 false 表示保存失败，退出流程不受影响
	SaveOnExit() bool
}

// Resizable 可选接口：逻辑屏幕尺寸变化时调整布局
type Resizable interface {
	Resize(width, height int)
}
