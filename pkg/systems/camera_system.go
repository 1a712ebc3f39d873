package systems

import (
	"github.com/cloudypatil/portfolio/pkg/scroll"
	"github.com/cloudypatil/portfolio/pkg/timeline"
)

// PoseSink 接收每帧镜头位姿的渲染目标
type PoseSink interface {
	ApplyPose(pose timeline.CameraPose)
}

// CameraSystem 每帧读取滚动偏移量，推进镜头运动模型并写入渲染场景
type CameraSystem struct {
	surface scroll.Surface
	model   *timeline.CameraMotionModel
	sink    PoseSink
}

// NewCameraSystem 创建镜头系统
func NewCameraSystem(surface scroll.Surface, model *timeline.CameraMotionModel, sink PoseSink) *CameraSystem {
	return &CameraSystem{
		surface: surface,
		model:   model,
		sink:    sink,
	}
}

// Update 推进一帧
//
// 镜头 Z 轴插值是逐帧的，与 deltaTime 无关。
func (cs *CameraSystem) Update(deltaTime float64) {
	offset := 0.0
	if cs.surface != nil {
		offset = cs.surface.Offset()
	}
	pose := cs.model.Step(offset)
	if cs.sink != nil {
		cs.sink.ApplyPose(pose)
	}
}

// Pose 返回最近一帧的位姿
func (cs *CameraSystem) Pose() timeline.CameraPose {
	return cs.model.Pose()
}
