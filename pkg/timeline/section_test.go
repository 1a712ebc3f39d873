package timeline

import (
	"math"
	"testing"
)

func TestResolveSectionEndpoints(t *testing.T) {
	for _, n := range []int{2, 3, 5, 9} {
		if got := ResolveSection(0, n); got != 0 {
			t.Errorf("ResolveSection(0, %d) = %d, want 0", n, got)
		}
		if got := ResolveSection(1, n); got != n-1 {
			t.Errorf("ResolveSection(1, %d) = %d, want %d", n, got, n-1)
		}
	}
}

// TestResolveSectionRangeAndMonotonic 结果在 [0, N-1] 内且随 offset 单调不减
func TestResolveSectionRangeAndMonotonic(t *testing.T) {
	const n = 5
	prev := 0
	for i := 0; i <= 1000; i++ {
		o := float64(i) / 1000
		idx := ResolveSection(o, n)
		if idx < 0 || idx > n-1 {
			t.Fatalf("ResolveSection(%v) = %d out of range", o, idx)
		}
		if idx < prev {
			t.Fatalf("ResolveSection not monotonic at %v: %d < %d", o, idx, prev)
		}
		prev = idx
	}
}

// TestResolveSectionScrollSequence 端到端场景：边界取整
func TestResolveSectionScrollSequence(t *testing.T) {
	offsets := []float64{0.0, 0.2, 0.5, 0.8, 1.0}
	want := []int{0, 1, 2, 3, 4}

	for i, o := range offsets {
		if got := ResolveSection(o, 5); got != want[i] {
			t.Errorf("ResolveSection(%v, 5) = %d, want %d", o, got, want[i])
		}
	}
}

func TestResolveSectionDegenerate(t *testing.T) {
	tests := []struct {
		name   string
		offset float64
		n      int
		want   int
	}{
		{"single stop", 0.7, 1, 0},
		{"zero stops", 0.7, 0, 0},
		{"negative offset", -3, 5, 0},
		{"offset above one", 4, 5, 4},
		{"NaN offset", math.NaN(), 5, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveSection(tt.offset, tt.n); got != tt.want {
				t.Errorf("ResolveSection(%v, %d) = %d, want %d", tt.offset, tt.n, got, tt.want)
			}
		})
	}
}

// TestSectionTrackerEdgeTriggered 只有索引变化时才报告
func TestSectionTrackerEdgeTriggered(t *testing.T) {
	tracker := NewSectionTracker(5)

	steps := []struct {
		offset      float64
		wantIndex   int
		wantChanged bool
	}{
		{0.0, 0, true}, // 首次观察
		{0.05, 0, false},
		{0.1, 0, false},
		{0.2, 1, true},
		{0.22, 1, false},
		{0.5, 2, true},
		{0.2, 1, true}, // 反向滚动
		{1.0, 4, true},
		{1.0, 4, false},
	}

	for i, s := range steps {
		idx, changed := tracker.Observe(s.offset)
		if idx != s.wantIndex || changed != s.wantChanged {
			t.Errorf("step %d offset %v: got (%d, %v), want (%d, %v)",
				i, s.offset, idx, changed, s.wantIndex, s.wantChanged)
		}
	}
	if tracker.Current() != 4 {
		t.Errorf("Current() = %d, want 4", tracker.Current())
	}
}

func TestRailFill(t *testing.T) {
	tests := []struct {
		active, n int
		want      float64
	}{
		{0, 5, 0},
		{2, 5, 0.5},
		{4, 5, 1},
		{0, 1, 0},
	}
	for _, tt := range tests {
		if got := RailFill(tt.active, tt.n); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("RailFill(%d, %d) = %v, want %v", tt.active, tt.n, got, tt.want)
		}
	}
}
