package utils

import (
	"math"
	"testing"
)

// TestEaseOutCubic 测试三次方缓出函数
func TestEaseOutCubic(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"起点", 0.0, 0.0},
		{"终点", 1.0, 1.0},
		{"中点", 0.5, 0.875}, // 1 - (1-0.5)^3 = 0.875
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := EaseOutCubic(tt.input)
			if math.Abs(result-tt.expected) > 0.001 {
				t.Errorf("EaseOutCubic(%v) = %v, 期望 %v", tt.input, result, tt.expected)
			}
		})
	}
}

// TestEaseInOutCubic 测试缓入缓出的对称性
func TestEaseInOutCubic(t *testing.T) {
	if EaseInOutCubic(0) != 0 || EaseInOutCubic(1) != 1 {
		t.Error("EaseInOutCubic endpoints should be 0 and 1")
	}
	if math.Abs(EaseInOutCubic(0.5)-0.5) > 1e-9 {
		t.Errorf("EaseInOutCubic(0.5) = %v, 期望 0.5", EaseInOutCubic(0.5))
	}
	for p := 0.1; p < 0.5; p += 0.1 {
		if math.Abs(EaseInOutCubic(p)+EaseInOutCubic(1-p)-1) > 1e-9 {
			t.Errorf("EaseInOutCubic should be point-symmetric at p=%v", p)
		}
	}
}

// TestLerp 测试线性插值
func TestLerp(t *testing.T) {
	tests := []struct {
		a, b, t, want float64
	}{
		{0, 10, 0, 0},
		{0, 10, 1, 10},
		{0, 10, 0.5, 5},
		{5, -135, 0.1, -9},
	}
	for _, tt := range tests {
		if got := Lerp(tt.a, tt.b, tt.t); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Lerp(%v, %v, %v) = %v, 期望 %v", tt.a, tt.b, tt.t, got, tt.want)
		}
	}
}

// TestDamp 测试指数趋近与帧率无关
func TestDamp(t *testing.T) {
	// 一次走 0.2 秒与分 12 次走完应该得到相同结果
	oneStep := Damp(0, 1, 0.2, 0.2)
	v := 0.0
	for i := 0; i < 12; i++ {
		v = Damp(v, 1, 0.2, 0.2/12)
	}
	if math.Abs(oneStep-v) > 1e-9 {
		t.Errorf("Damp not frame-rate independent: %v vs %v", oneStep, v)
	}
	if math.Abs(oneStep-(1-math.Exp(-1))) > 1e-9 {
		t.Errorf("Damp after one time constant = %v, 期望 %v", oneStep, 1-math.Exp(-1))
	}

	// smoothTime 为 0 时立即到达
	if got := Damp(3, 7, 0, 0.016); got != 7 {
		t.Errorf("Damp with zero smoothTime = %v, 期望 7", got)
	}
}

// TestClamp01 测试限制范围
func TestClamp01(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{-0.5, 0},
		{0.3, 0.3},
		{1.7, 1},
		{math.NaN(), 0},
		{math.Inf(1), 1},
		{math.Inf(-1), 0},
	}
	for _, tt := range tests {
		if got := Clamp01(tt.in); got != tt.want {
			t.Errorf("Clamp01(%v) = %v, 期望 %v", tt.in, got, tt.want)
		}
	}
}
