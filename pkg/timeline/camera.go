// Package timeline 实现滚动时间轴引擎
//
// 引擎把一个连续的滚动进度值 offset ∈ [0, 1] 映射为：
//   - 镜头在 3D 场景中的位姿（CameraMotionModel）
//   - 导航栏当前高亮的站点（ResolveSection / SectionTracker）
//   - 内容块和场景装饰物沿滚动长度的静态布局（ContentStager）
//
// 所有函数都在单一帧循环中调用，不需要加锁。
package timeline

import (
	"math"

	"github.com/cloudypatil/portfolio/pkg/config"
	"github.com/cloudypatil/portfolio/pkg/utils"
)

// CameraPose 镜头位姿（每帧重新计算，不持久化）
type CameraPose struct {
	X, Y, Z   float64
	RotationZ float64
}

// RestingPose 返回配置中的初始位姿
func RestingPose(cfg config.TimelineConfig) CameraPose {
	return CameraPose{
		X: cfg.RestingPose.X,
		Y: cfg.RestingPose.Y,
		Z: cfg.RestingPose.Z,
	}
}

// TargetZ 返回滚动偏移量对应的目标深度
// targetZ = -(offset * TotalVirtualDepth)
func TargetZ(cfg config.TimelineConfig, offset float64) float64 {
	return -(utils.Clamp01(offset) * cfg.TotalVirtualDepth)
}

// NextPose 计算当前帧的镜头位姿
//
// Z 轴按 DampingFactor 每帧向目标插值（离散指数趋近，不随帧率归一化：
// 帧率越高收敛越快）。X 轴摆动和 Z 轴滚转是 offset 的纯函数，不做平滑，
// 滚动越快摆动越明显。
//
// prev 为 nil 表示第一帧，从 RestingPose 开始插值。
// 非有限的 offset 会被限制到 [0, 1]，本函数不会 panic。
func NextPose(cfg config.TimelineConfig, prev *CameraPose, offset float64) CameraPose {
	o := utils.Clamp01(offset)

	start := RestingPose(cfg)
	if prev != nil {
		start = *prev
	}

	sway := math.Sin(o * cfg.SwayFrequency)
	return CameraPose{
		X:         sway * cfg.SwayAmplitudeX,
		Y:         start.Y,
		Z:         utils.Lerp(start.Z, TargetZ(cfg, o), cfg.DampingFactor),
		RotationZ: sway * cfg.SwayAmplitudeRot,
	}
}

// CameraMotionModel 有状态的镜头运动模型
// 保存上一帧的位姿，每帧调用 Step 推进一次
type CameraMotionModel struct {
	cfg         config.TimelineConfig
	pose        CameraPose
	initialized bool
}

// NewCameraMotionModel 创建镜头运动模型
func NewCameraMotionModel(cfg config.TimelineConfig) *CameraMotionModel {
	return &CameraMotionModel{
		cfg:  cfg,
		pose: RestingPose(cfg),
	}
}

// Step 根据本帧的滚动偏移量推进镜头
func (m *CameraMotionModel) Step(offset float64) CameraPose {
	var prev *CameraPose
	if m.initialized {
		prev = &m.pose
	}
	m.pose = NextPose(m.cfg, prev, offset)
	m.initialized = true
	return m.pose
}

// Pose 返回最近一帧的位姿（未 Step 过时为初始位姿）
func (m *CameraMotionModel) Pose() CameraPose {
	return m.pose
}

// Reset 回到初始位姿，下一次 Step 视为第一帧
func (m *CameraMotionModel) Reset() {
	m.pose = RestingPose(m.cfg)
	m.initialized = false
}

// Config 返回模型使用的时间轴配置
func (m *CameraMotionModel) Config() config.TimelineConfig {
	return m.cfg
}
