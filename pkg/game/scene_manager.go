package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneFactory 场景工厂函数类型
// 按场景 ID 创建场景，创建失败返回 error
type SceneFactory func(sceneID string) (Scene, error)

// SceneManager manages which scene is active.
// It ensures only one scene's Update and Draw methods are called at any given time.
type SceneManager struct {
	currentScene   Scene
	currentSceneID string
	sceneFactory   SceneFactory
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use SwitchTo or Load to set the initial scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SetSceneFactory 设置场景工厂函数
func (sm *SceneManager) SetSceneFactory(factory SceneFactory) {
	sm.sceneFactory = factory
}

// SwitchTo changes the active scene to the provided scene.
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
}

// GetCurrentScene 返回当前活动的场景，没有活动场景时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// Load 通过工厂创建并切换到指定场景
//
// 创建失败时保留当前场景并返回 false。
// 旧场景实现了 Saveable 时，先保存状态再创建新场景，新场景才能读到最新的设置。
func (sm *SceneManager) Load(sceneID string) bool {
	log.Printf("[SceneManager] 加载场景: %s", sceneID)

	if sm.sceneFactory == nil {
		log.Printf("[SceneManager] 错误: SceneFactory 未设置")
		return false
	}

	sm.SaveCurrent()

	newScene, err := sm.sceneFactory(sceneID)
	if err != nil {
		log.Printf("[SceneManager] 错误: 无法创建场景 %s: %v", sceneID, err)
		return false
	}

	sm.SwitchTo(newScene)
	sm.currentSceneID = sceneID
	log.Printf("[SceneManager] 成功切换到场景: %s", sceneID)
	return true
}

// Reload 重新创建当前场景（配置覆盖文件修改后使用）
func (sm *SceneManager) Reload() bool {
	if sm.currentSceneID == "" {
		return false
	}
	return sm.Load(sm.currentSceneID)
}

// SaveCurrent 让当前场景保存状态（如果支持）
func (sm *SceneManager) SaveCurrent() bool {
	if s, ok := sm.currentScene.(Saveable); ok {
		return s.SaveOnExit()
	}
	return true
}

// Resize 把新的逻辑屏幕尺寸转发给当前场景（如果支持）
func (sm *SceneManager) Resize(width, height int) {
	if r, ok := sm.currentScene.(Resizable); ok {
		r.Resize(width, height)
	}
}

// Update updates the currently active scene.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the currently active scene to the provided screen.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
