package utils

import "testing"

// TestPointInRect 测试点在矩形内的检测逻辑
func TestPointInRect(t *testing.T) {
	tests := []struct {
		name       string
		px, py     float64
		x, y, w, h float64
		want       bool
	}{
		{"点在矩形内", 150, 150, 100, 100, 100, 100, true},
		{"点在左边界上", 100, 150, 100, 100, 100, 100, true},
		{"点在右下角", 200, 200, 100, 100, 100, 100, true},
		{"点在矩形左侧", 50, 150, 100, 100, 100, 100, false},
		{"点在矩形下方", 150, 250, 100, 100, 100, 100, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PointInRect(tt.px, tt.py, tt.x, tt.y, tt.w, tt.h); got != tt.want {
				t.Errorf("PointInRect(%v,%v) in (%v,%v,%v,%v) = %v, want %v",
					tt.px, tt.py, tt.x, tt.y, tt.w, tt.h, got, tt.want)
			}
		})
	}
}
