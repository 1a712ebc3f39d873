package config

import (
	"fmt"
	"math"
)

// TimelineConfig 滚动时间轴配置
//
// 页面的三个尺度常量互相独立，不能互相推导：
//   - PageCount: 外层滚动容器的总页数（滚动像素长度 = (PageCount-1) * 视口高度）
//   - TotalVirtualDepth: 镜头从起点飞到终点经过的 3D 深度
//   - 导航站点数: 由 SiteConfig.Nav 的长度决定
//
// 镜头模型和内容布局都从同一个 TimelineConfig 实例读取深度预算，
// 避免同一个常量在两个组件中重复出现。
type TimelineConfig struct {
	// PageCount 滚动总页数
	PageCount int `yaml:"pageCount" koanf:"pageCount"`

	// TotalVirtualDepth 镜头在 offset=1 时到达的深度（取正值，镜头沿 -Z 前进）
	TotalVirtualDepth float64 `yaml:"totalVirtualDepth" koanf:"totalVirtualDepth"`

	// DampingFactor 镜头 Z 轴每帧插值权重（0 < f <= 1）
	DampingFactor float64 `yaml:"dampingFactor" koanf:"dampingFactor"`

	// SwayFrequency 横向摆动频率（sin(offset * SwayFrequency)）
	SwayFrequency float64 `yaml:"swayFrequency" koanf:"swayFrequency"`

	// SwayAmplitudeX 横向摆动幅度
	SwayAmplitudeX float64 `yaml:"swayAmplitudeX" koanf:"swayAmplitudeX"`

	// SwayAmplitudeRot Z 轴滚转幅度（弧度）
	SwayAmplitudeRot float64 `yaml:"swayAmplitudeRot" koanf:"swayAmplitudeRot"`

	// RestingPose 场景初始化时的镜头位置（首帧从这里开始插值）
	RestingPose Vec3Config `yaml:"restingPose" koanf:"restingPose"`

	// ScrollDamping 滚动偏移量的平滑时间（秒）
	ScrollDamping float64 `yaml:"scrollDamping" koanf:"scrollDamping"`
}

// Vec3Config 三维坐标配置
type Vec3Config struct {
	X float64 `yaml:"x" koanf:"x"`
	Y float64 `yaml:"y" koanf:"y"`
	Z float64 `yaml:"z" koanf:"z"`
}

// DefaultTimelineConfig 返回默认的时间轴参数
func DefaultTimelineConfig() TimelineConfig {
	return TimelineConfig{
		PageCount:         7,
		TotalVirtualDepth: 140,
		DampingFactor:     0.1,
		SwayFrequency:     10,
		SwayAmplitudeX:    2,
		SwayAmplitudeRot:  0.1,
		RestingPose:       Vec3Config{X: 0, Y: 0, Z: 5},
		ScrollDamping:     0.2,
	}
}

// Validate 验证时间轴配置
//
// 返回:
//   - error: 验证失败时返回错误，成功返回 nil
func (c *TimelineConfig) Validate() error {
	if c.PageCount < 1 {
		return fmt.Errorf("pageCount must be >= 1, got %d", c.PageCount)
	}
	if !(c.TotalVirtualDepth > 0) || math.IsInf(c.TotalVirtualDepth, 0) {
		return fmt.Errorf("totalVirtualDepth must be a positive finite number, got %v", c.TotalVirtualDepth)
	}
	if !(c.DampingFactor > 0 && c.DampingFactor <= 1) {
		return fmt.Errorf("dampingFactor must be in (0, 1], got %v", c.DampingFactor)
	}
	if c.ScrollDamping < 0 {
		return fmt.Errorf("scrollDamping must be >= 0, got %v", c.ScrollDamping)
	}
	return nil
}

// PageToDepth 将页偏移（以视口高度为单位）换算为镜头深度
//
// 页偏移 p 在滚动偏移量 p/(PageCount-1) 处到达视口顶部，
// 对应的虚拟深度为 offset * TotalVirtualDepth。
// PageCount == 1 时页面不可滚动，所有内容都在深度 0。
func (c *TimelineConfig) PageToDepth(page float64) float64 {
	if c.PageCount <= 1 {
		return 0
	}
	return page / float64(c.PageCount-1) * c.TotalVirtualDepth
}
