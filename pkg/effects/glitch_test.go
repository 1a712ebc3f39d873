package effects

import (
	"math/rand/v2"
	"strings"
	"testing"
	"time"
)

func newTestGlitch(text string) *GlitchAnimator {
	return NewGlitchAnimator(text, GlitchOptions{
		Speed: 30 * time.Millisecond,
		Rand:  rand.New(rand.NewPCG(1, 2)),
	})
}

// TestGlitchCompletesToSource 足够多的 tick 之后显示原文
func TestGlitchCompletesToSource(t *testing.T) {
	g := newTestGlitch("Harshal")
	g.Trigger()

	// 7 个字符需要 21 次触发
	for i := 0; i < 21; i++ {
		if !g.Running() {
			t.Fatalf("animation stopped early after %d ticks", i)
		}
		g.Advance(30 * time.Millisecond)
	}

	if g.Running() {
		t.Error("animation should stop once iteration reaches the text length")
	}
	if g.Text() != "Harshal" {
		t.Errorf("Text() = %q, want %q", g.Text(), "Harshal")
	}

	// 之后的帧不再改变显示
	g.Advance(time.Second)
	if g.Text() != "Harshal" {
		t.Errorf("Text() changed after completion: %q", g.Text())
	}
}

// TestGlitchTickZero 第 0 帧所有字符都来自字符表
func TestGlitchTickZero(t *testing.T) {
	g := newTestGlitch("Harshal")
	g.Trigger()

	text := g.Text()
	if len([]rune(text)) != 7 {
		t.Fatalf("display length = %d, want 7", len([]rune(text)))
	}
	for _, r := range text {
		if !strings.ContainsRune(DefaultGlitchAlphabet, r) {
			t.Errorf("rune %q not from the glitch alphabet", r)
		}
	}
}

// TestGlitchRevealCascade 每 3 次触发多揭示一个字符
func TestGlitchRevealCascade(t *testing.T) {
	g := newTestGlitch("abcdef")
	g.Trigger()

	for tick := 1; tick < 18; tick++ {
		g.Advance(30 * time.Millisecond)

		revealed := tick / 3
		display := []rune(g.Text())
		for i := 0; i < revealed; i++ {
			if display[i] != rune("abcdef"[i]) {
				t.Fatalf("tick %d: char %d = %q, want revealed %q", tick, i, display[i], "abcdef"[i])
			}
		}
		// 小写原文不在字符表中，未揭示位置一定是乱码
		for i := revealed; i < len(display); i++ {
			if !strings.ContainsRune(DefaultGlitchAlphabet, display[i]) {
				t.Fatalf("tick %d: char %d = %q should be scrambled", tick, i, display[i])
			}
		}
	}
}

// TestGlitchRetriggerResets 重新触发时 iteration 归零，始终只有一个定时器
func TestGlitchRetriggerResets(t *testing.T) {
	g := newTestGlitch("Harshal")
	g.Trigger()
	for i := 0; i < 10; i++ {
		g.Advance(30 * time.Millisecond)
	}
	if g.Iteration() == 0 {
		t.Fatal("iteration should have advanced")
	}

	g.Trigger()
	if g.Iteration() != 0 {
		t.Errorf("Iteration() after retrigger = %v, want 0", g.Iteration())
	}
	if g.ActiveTimers() != 1 {
		t.Errorf("ActiveTimers() = %d, want 1", g.ActiveTimers())
	}

	// 快速连续触发也只有一个定时器
	for i := 0; i < 5; i++ {
		g.Trigger()
		g.Advance(10 * time.Millisecond)
		if g.ActiveTimers() != 1 {
			t.Fatalf("ActiveTimers() = %d after rapid retrigger", g.ActiveTimers())
		}
	}

	// 重新触发后仍需完整的 21 次触发才能完成
	g.Trigger()
	for i := 0; i < 20; i++ {
		g.Advance(30 * time.Millisecond)
	}
	if !g.Running() {
		t.Error("animation should still be running after 20 ticks")
	}
	g.Advance(30 * time.Millisecond)
	if g.Running() || g.Text() != "Harshal" {
		t.Errorf("animation should finish after 21 ticks, running=%v text=%q", g.Running(), g.Text())
	}
}

// TestGlitchLargeFrame 一帧跨越多个间隔时补齐所有触发
func TestGlitchLargeFrame(t *testing.T) {
	g := newTestGlitch("OK")
	g.Trigger()

	g.Advance(65 * time.Millisecond) // 2 次触发，余 5ms
	if g.Iteration() != 2.0/3 {
		t.Errorf("Iteration() = %v, want 2/3", g.Iteration())
	}
	g.Advance(time.Second)
	if g.Running() || g.Text() != "OK" {
		t.Errorf("expected completion, running=%v text=%q", g.Running(), g.Text())
	}
}

func TestGlitchEmptyText(t *testing.T) {
	g := newTestGlitch("")
	g.Trigger()

	if g.Running() || g.ActiveTimers() != 0 {
		t.Error("empty text should complete immediately")
	}
	if g.Text() != "" {
		t.Errorf("Text() = %q, want empty", g.Text())
	}
}

func TestGlitchCancel(t *testing.T) {
	g := newTestGlitch("Harshal")
	g.Trigger()
	g.Advance(30 * time.Millisecond)
	g.Cancel()

	before := g.Text()
	g.Advance(time.Second)
	if g.Text() != before {
		t.Error("cancelled animation must not mutate the display")
	}
	if g.ActiveTimers() != 0 {
		t.Errorf("ActiveTimers() = %d after cancel", g.ActiveTimers())
	}
}

func TestGlitchSetText(t *testing.T) {
	g := newTestGlitch("OLD")
	g.Trigger()
	g.SetText("NEW TEXT")

	if g.Running() {
		t.Error("SetText should stop the animation")
	}
	if g.Text() != "NEW TEXT" || g.Source() != "NEW TEXT" {
		t.Errorf("Text() = %q, Source() = %q", g.Text(), g.Source())
	}
}
