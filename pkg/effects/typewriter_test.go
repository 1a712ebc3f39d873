package effects

import (
	"testing"
	"time"
)

func TestTypewriterCycle(t *testing.T) {
	tw := NewTypewriter([]string{"AB", "XYZ"}, TypewriterOptions{
		TypeDelay:   50 * time.Millisecond,
		DeleteDelay: 30 * time.Millisecond,
		Hold:        100 * time.Millisecond,
	})

	steps := []struct {
		dt   time.Duration
		want string
	}{
		{0, ""},
		{50 * time.Millisecond, "A"},
		{50 * time.Millisecond, "AB"},
		{100 * time.Millisecond, "AB"}, // 保持结束
		{30 * time.Millisecond, "A"},
		{30 * time.Millisecond, ""},
		{pauseBeforeNext, ""},
		{50 * time.Millisecond, "X"},
	}

	for i, s := range steps {
		tw.Advance(s.dt)
		if got := tw.Text(); got != s.want {
			t.Fatalf("step %d: Text() = %q, want %q", i, got, s.want)
		}
	}
	if tw.Role() != 1 {
		t.Errorf("Role() = %d, want 1", tw.Role())
	}
}

// TestTypewriterLoops 最后一个角色之后回到第一个
func TestTypewriterLoops(t *testing.T) {
	tw := NewTypewriter([]string{"A", "B"}, TypewriterOptions{Hold: 100 * time.Millisecond})

	seen := map[int]bool{}
	for i := 0; i < 2000; i++ {
		tw.Advance(10 * time.Millisecond)
		seen[tw.Role()] = true
	}
	if !seen[0] || !seen[1] {
		t.Errorf("typewriter should visit both roles, saw %v", seen)
	}
}

func TestTypewriterNoRoles(t *testing.T) {
	tw := NewTypewriter(nil, TypewriterOptions{})
	tw.Advance(time.Second)
	if tw.Text() != "" {
		t.Errorf("Text() = %q, want empty", tw.Text())
	}
}
