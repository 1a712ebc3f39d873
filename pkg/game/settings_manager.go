package game

import (
	"fmt"
	"log"

	"github.com/cloudypatil/portfolio/pkg/utils"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// ViewerSettings 访问者偏好
// 保存在本机，不随站点配置分发
type ViewerSettings struct {
	// CursorEnabled 是否显示自定义光标（关闭时显示系统光标）
	CursorEnabled bool `yaml:"cursorEnabled"`
	// EffectsEnabled 是否播放故障文字、卡片倾斜等装饰效果
	EffectsEnabled bool `yaml:"effectsEnabled"`
	// Fullscreen 启动时是否全屏
	Fullscreen bool `yaml:"fullscreen"`
	// LastOffset 上次退出时的滚动偏移量 [0, 1]
	LastOffset float64 `yaml:"lastOffset"`
}

// DefaultSettings 返回默认设置
func DefaultSettings() *ViewerSettings {
	return &ViewerSettings{
		CursorEnabled:  true,
		EffectsEnabled: true,
		Fullscreen:     false,
		LastOffset:     0,
	}
}

// SettingsManager 设置管理器
// 负责访问者设置的加载、保存和内存管理
type SettingsManager struct {
	gdataManager *gdata.Manager // gdata 跨平台存储管理器，可为 nil（降级模式）
	settings     *ViewerSettings
	saved        ViewerSettings // 最近一次加载或保存时的内容
}

// 存储路径常量
const (
	settingsObject   = "settings"
	settingsProperty = "viewer"
)

// NewSettingsManager 创建新的设置管理器实例
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存设置）
//
// 加载失败不是致命错误，记录警告后使用默认设置。
func NewSettingsManager(gdataManager *gdata.Manager) *SettingsManager {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultSettings(),
	}

	if err := sm.Load(); err != nil {
		log.Printf("[SettingsManager] Warning: Failed to load settings: %v (using defaults)", err)
	}

	return sm
}

// Load 从 gdata 加载设置
//
// 如果 gdataManager 为 nil 或文件不存在，使用默认设置
func (sm *SettingsManager) Load() error {
	if sm.gdataManager == nil {
		sm.reset(DefaultSettings())
		return nil
	}

	if !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		sm.reset(DefaultSettings())
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		sm.reset(DefaultSettings())
		return fmt.Errorf("failed to load settings: %w", err)
	}

	loaded := DefaultSettings()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		sm.reset(DefaultSettings())
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	loaded.LastOffset = utils.Clamp01(loaded.LastOffset)

	sm.reset(loaded)
	log.Printf("[SettingsManager] Settings loaded successfully")
	return nil
}

// Save 保存设置到 gdata
//
// 如果 gdataManager 为 nil，返回 nil（降级模式，不报错）
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		sm.saved = *sm.settings
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	sm.saved = *sm.settings
	log.Printf("[SettingsManager] Settings saved successfully")
	return nil
}

func (sm *SettingsManager) reset(s *ViewerSettings) {
	sm.settings = s
	sm.saved = *s
}

// Dirty 设置在上次加载或保存后是否被修改过
func (sm *SettingsManager) Dirty() bool {
	return *sm.settings != sm.saved
}

// Persistent 是否能持久化
func (sm *SettingsManager) Persistent() bool {
	return sm.gdataManager != nil
}

// GetSettings 获取当前设置
func (sm *SettingsManager) GetSettings() *ViewerSettings {
	return sm.settings
}

// SetCursorEnabled 设置自定义光标开关
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetCursorEnabled(enabled bool) {
	sm.settings.CursorEnabled = enabled
}

// SetEffectsEnabled 设置装饰效果开关
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetEffectsEnabled(enabled bool) {
	sm.settings.EffectsEnabled = enabled
}

// SetFullscreen 设置全屏模式
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetFullscreen(enabled bool) {
	sm.settings.Fullscreen = enabled
}

// SetLastOffset 记录滚动偏移量，限制在 [0, 1]
func (sm *SettingsManager) SetLastOffset(offset float64) {
	sm.settings.LastOffset = utils.Clamp01(offset)
}
