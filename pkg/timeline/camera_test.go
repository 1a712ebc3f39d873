package timeline

import (
	"math"
	"testing"

	"github.com/cloudypatil/portfolio/pkg/config"
)

func TestTargetZ(t *testing.T) {
	cfg := config.DefaultTimelineConfig()
	tests := []struct {
		offset float64
		want   float64
	}{
		{0, 0},
		{0.5, -70},
		{1, -140},
		{1.5, -140}, // 超出范围被限制
		{-0.2, 0},
	}
	for _, tt := range tests {
		if got := TargetZ(cfg, tt.offset); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("TargetZ(%v) = %v, want %v", tt.offset, got, tt.want)
		}
	}
}

// TestNextPoseFirstFrame 第一帧从初始位姿插值
func TestNextPoseFirstFrame(t *testing.T) {
	cfg := config.DefaultTimelineConfig()
	pose := NextPose(cfg, nil, 0)

	// lerp(5, 0, 0.1) = 4.5
	if math.Abs(pose.Z-4.5) > 1e-9 {
		t.Errorf("first frame Z = %v, want 4.5", pose.Z)
	}
	if pose.X != 0 || pose.RotationZ != 0 {
		t.Errorf("sway at offset 0 should be zero, got X=%v rot=%v", pose.X, pose.RotationZ)
	}
}

// TestNextPoseSway 摆动是 offset 的纯函数
func TestNextPoseSway(t *testing.T) {
	cfg := config.DefaultTimelineConfig()
	prev := CameraPose{Z: -30}

	for _, o := range []float64{0.1, 0.37, 0.8} {
		pose := NextPose(cfg, &prev, o)
		wantX := math.Sin(o*10) * 2
		wantRot := math.Sin(o*10) * 0.1
		if math.Abs(pose.X-wantX) > 1e-12 {
			t.Errorf("offset %v: X = %v, want %v", o, pose.X, wantX)
		}
		if math.Abs(pose.RotationZ-wantRot) > 1e-12 {
			t.Errorf("offset %v: RotationZ = %v, want %v", o, pose.RotationZ, wantRot)
		}
	}
}

// TestCameraConvergesWithoutOvershoot 固定 offset 下 Z 单调收敛到目标且不越过
func TestCameraConvergesWithoutOvershoot(t *testing.T) {
	cfg := config.DefaultTimelineConfig()

	for _, offset := range []float64{0, 0.25, 0.5, 1} {
		model := NewCameraMotionModel(cfg)
		target := TargetZ(cfg, offset)
		prevDist := math.Inf(1)

		for frame := 0; frame < 400; frame++ {
			pose := model.Step(offset)
			dist := math.Abs(pose.Z - target)

			if dist > prevDist {
				t.Fatalf("offset %v frame %d: distance grew %v -> %v", offset, frame, prevDist, dist)
			}
			// 初始位姿在目标之上（Z=5 >= target），不应越过目标
			if pose.Z < target-1e-9 {
				t.Fatalf("offset %v frame %d: overshoot Z=%v target=%v", offset, frame, pose.Z, target)
			}
			prevDist = dist
		}

		if prevDist > 1e-9 {
			t.Errorf("offset %v: did not converge, remaining distance %v", offset, prevDist)
		}
	}
}

// TestCameraReverseScroll 反向滚动同样单调收敛
func TestCameraReverseScroll(t *testing.T) {
	cfg := config.DefaultTimelineConfig()
	model := NewCameraMotionModel(cfg)
	for i := 0; i < 300; i++ {
		model.Step(1)
	}

	prev := model.Pose().Z
	for i := 0; i < 300; i++ {
		z := model.Step(0.2).Z
		if z < prev {
			t.Fatalf("frame %d: Z moved away from target (%v -> %v)", i, prev, z)
		}
		if z > TargetZ(cfg, 0.2)+1e-9 {
			t.Fatalf("frame %d: overshoot Z=%v", i, z)
		}
		prev = z
	}
}

func TestCameraNeverPanicsOnBadOffset(t *testing.T) {
	cfg := config.DefaultTimelineConfig()
	model := NewCameraMotionModel(cfg)

	for _, o := range []float64{math.NaN(), math.Inf(1), math.Inf(-1), -5, 5} {
		pose := model.Step(o)
		if math.IsNaN(pose.Z) || math.IsNaN(pose.X) || math.IsNaN(pose.RotationZ) {
			t.Errorf("offset %v produced NaN pose %+v", o, pose)
		}
	}
}

func TestCameraModelReset(t *testing.T) {
	cfg := config.DefaultTimelineConfig()
	model := NewCameraMotionModel(cfg)

	if model.Pose() != RestingPose(cfg) {
		t.Errorf("initial pose = %+v, want resting pose", model.Pose())
	}

	model.Step(0.7)
	model.Step(0.7)
	model.Reset()

	if model.Pose() != RestingPose(cfg) {
		t.Errorf("pose after Reset = %+v, want resting pose", model.Pose())
	}
	// 重置后的第一帧仍从初始位姿插值
	if got := model.Step(0).Z; math.Abs(got-4.5) > 1e-9 {
		t.Errorf("first Z after reset = %v, want 4.5", got)
	}
}
