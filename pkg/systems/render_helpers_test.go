package systems

import (
	"math"
	"testing"

	"github.com/cloudypatil/portfolio/pkg/components"
	"github.com/cloudypatil/portfolio/pkg/effects"
	"github.com/cloudypatil/portfolio/pkg/utils"
)

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// TestCursorRingTicks 测试外环刻度随旋转和平移变换
func TestCursorRingTicks(t *testing.T) {
	ring := effects.Identity()
	ring.TranslateX, ring.TranslateY = 100, 200

	ticks := cursorRingTicks(ring, 16)
	// 第一个刻度在右侧：从半径 12 到 18
	if !near(ticks[0][0], 112) || !near(ticks[0][1], 200) || !near(ticks[0][2], 118) {
		t.Errorf("tick 0 = %v", ticks[0])
	}

	ring.Rotation = math.Pi / 2
	rotated := cursorRingTicks(ring, 16)
	// 旋转 90° 后第一个刻度指向下方
	if !near(rotated[0][0], 100) || !near(rotated[0][1], 212) {
		t.Errorf("rotated tick 0 = %v", rotated[0])
	}
}

// TestCaretPosition 测试光标位置换算
func TestCaretPosition(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		pos     int
		wantX   float64
		wantRow int
	}{
		{"空文本", "", 0, 0, 0},
		{"行中", "abcd", 2, utils.MeasureText("ab", 1), 0},
		{"第二行", "ab\ncd", 4, utils.MeasureText("c", 1), 1},
		{"越界", "ab", 10, utils.MeasureText("ab", 1), 0},
		{"负数", "ab", -3, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, row := CaretPosition(tt.value, tt.pos, 1)
			if !near(x, tt.wantX) || row != tt.wantRow {
				t.Errorf("CaretPosition(%q, %d) = (%v, %d), 期望 (%v, %d)", tt.value, tt.pos, x, row, tt.wantX, tt.wantRow)
			}
		})
	}
}

// TestHeadingText 测试标题与故障文字拼接
func TestHeadingText(t *testing.T) {
	if got := HeadingText("I'M", "Harshal"); got != "I'M Harshal" {
		t.Errorf("got %q", got)
	}
	if got := HeadingText("OPERATOR LOGS", ""); got != "OPERATOR LOGS" {
		t.Errorf("got %q", got)
	}
	if got := HeadingText("", "UPLINK"); got != "UPLINK" {
		t.Errorf("got %q", got)
	}
}

// TestAlignedX 测试对齐
func TestAlignedX(t *testing.T) {
	a := &components.AnchorComponent{X: 100, Width: 400}
	tests := []struct {
		align components.HeadingAlign
		want  float64
	}{
		{components.AlignLeft, 100},
		{components.AlignCenter, 250},
		{components.AlignRight, 400},
	}
	for _, tt := range tests {
		if got := alignedX(a, 100, tt.align); got != tt.want {
			t.Errorf("alignedX(%v) = %v, 期望 %v", tt.align, got, tt.want)
		}
	}
}

// TestCardQuad 测试卡片四角变换
func TestCardQuad(t *testing.T) {
	q := cardQuad(effects.Identity(), 10, 20, 100, 50)
	want := [4][2]float64{{10, 20}, {110, 20}, {110, 70}, {10, 70}}
	for i := range q {
		if !near(q[i][0], want[i][0]) || !near(q[i][1], want[i][1]) {
			t.Errorf("corner %d = %v, 期望 %v", i, q[i], want[i])
		}
	}

	// 放大以中心为基准
	scaled := effects.Identity()
	scaled.Scale = 1.1
	q = cardQuad(scaled, 10, 20, 100, 50)
	if !near(q[0][0], 5) || !near(q[2][0], 115) {
		t.Errorf("scaled quad = %v", q)
	}

	// 倾斜后卡片中心不动
	tilted := effects.Identity()
	tilted.TiltY = 0.1
	q = cardQuad(tilted, 10, 20, 100, 50)
	cx := (q[0][0] + q[1][0] + q[2][0] + q[3][0]) / 4
	if math.Abs(cx-60) > 1 {
		t.Errorf("tilted center x = %v, 期望约 60", cx)
	}
}
