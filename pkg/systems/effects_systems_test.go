package systems

import (
	"errors"
	"testing"
	"time"

	"github.com/cloudypatil/portfolio/pkg/components"
	"github.com/cloudypatil/portfolio/pkg/config"
	"github.com/cloudypatil/portfolio/pkg/ecs"
	"github.com/cloudypatil/portfolio/pkg/effects"
	"github.com/cloudypatil/portfolio/pkg/utils"
)

func newGlitchEntity(em *ecs.EntityManager, text string) (*components.GlitchTextComponent, *components.ClickableComponent) {
	id := em.CreateEntity()
	g := &components.GlitchTextComponent{
		Animator: effects.NewGlitchAnimator(text, effects.GlitchOptions{Speed: 30 * time.Millisecond}),
	}
	c := &components.ClickableComponent{IsEnabled: true}
	ecs.AddComponent(em, id, g)
	ecs.AddComponent(em, id, c)
	return g, c
}

// TestGlitchTextSystemHoverTrigger 测试悬停上升沿触发一次动画
func TestGlitchTextSystemHoverTrigger(t *testing.T) {
	em := ecs.NewEntityManager()
	gs := NewGlitchTextSystem(em, nil)
	g, c := newGlitchEntity(em, "Harshal")

	c.IsHovered, c.JustEntered = true, true
	gs.Update(0)
	if g.Triggers != 1 || !g.Animator.Running() {
		t.Fatalf("triggers=%d running=%v, 期望 1 true", g.Triggers, g.Animator.Running())
	}

	// 停留在区域内不重复触发；7 个字符 * 3 tick * 30ms 之后完成
	c.JustEntered = false
	gs.Update(1.0)
	if g.Triggers != 1 {
		t.Errorf("triggers = %d, 期望 1", g.Triggers)
	}
	if g.Animator.Running() || g.Animator.Text() != "Harshal" {
		t.Errorf("animation should finish on the source text, got %q running=%v", g.Animator.Text(), g.Animator.Running())
	}
}

// TestGlitchTextSystemEffectsDisabled 测试关闭效果后悬停不触发
func TestGlitchTextSystemEffectsDisabled(t *testing.T) {
	em := ecs.NewEntityManager()
	gs := NewGlitchTextSystem(em, func() bool { return false })
	g, c := newGlitchEntity(em, "Harshal")

	c.JustEntered = true
	gs.Update(0.016)
	if g.Triggers != 0 || g.Animator.Running() {
		t.Errorf("triggers=%d running=%v, 期望 0 false", g.Triggers, g.Animator.Running())
	}
}

// TestCursorSystemMountUnmount 测试光标挂载和卸载恢复监听者数量
func TestCursorSystemMountUnmount(t *testing.T) {
	em := ecs.NewEntityManager()
	hub := utils.NewPointerHub()
	before := hub.ListenerCount()

	cs := NewCursorSystem(em, hub, config.CursorConfig{DotRadius: 4, RingRadius: 16, RingPeriodSeconds: 10})
	if !cs.Enabled() || hub.ListenerCount() != before+1 {
		t.Fatalf("enabled=%v listeners=%d, 期望 true %d", cs.Enabled(), hub.ListenerCount(), before+1)
	}

	// 重复启用不会重复订阅
	cs.SetEnabled(true)
	if hub.ListenerCount() != before+1 {
		t.Errorf("listeners = %d after double mount", hub.ListenerCount())
	}

	hub.Publish(200, 300)
	c := cs.Cursor()
	if c.Dot.Current.TranslateX != 200 || c.Ring.Current.TranslateY != 300 {
		t.Errorf("cursor did not follow pointer: dot=%+v ring=%+v", c.Dot.Current, c.Ring.Current)
	}

	cs.Update(2.5)
	if got := c.Follower.RingAngle(); got <= 0 {
		t.Errorf("ring angle = %v, 期望 > 0", got)
	}

	cs.SetEnabled(false)
	if cs.Enabled() || hub.ListenerCount() != before {
		t.Errorf("enabled=%v listeners=%d, 期望 false %d", cs.Enabled(), hub.ListenerCount(), before)
	}

	// 卸载后不再跟随
	hub.Publish(10, 10)
	if c.Dot.Current.TranslateX != 200 {
		t.Error("unmounted cursor should not follow the pointer")
	}
}

func newCardEntity(em *ecs.EntityManager, url string) (*components.CardComponent, *components.ClickableComponent) {
	marker := effects.NewMarker()
	card := &components.CardComponent{
		Kind:   components.CardSkill,
		Title:  "FRONTEND",
		Tilt:   effects.NewCardTilt(marker, effects.SkillCardMaxTilt, effects.SkillCardHoverScale),
		Marker: marker,
		URL:    url,
	}
	c := &components.ClickableComponent{Width: 100, Height: 100, IsEnabled: true}
	id := em.CreateEntity()
	ecs.AddComponent(em, id, card)
	ecs.AddComponent(em, id, c)
	return card, c
}

// TestCardSystemTilt 测试悬停倾斜和离开复位
func TestCardSystemTilt(t *testing.T) {
	em := ecs.NewEntityManager()
	pointer := &fakePointer{state: utils.InputState{X: 100, Y: 50}}
	cs := NewCardSystem(em, pointer, nil, nil)
	card, c := newCardEntity(em, "")

	c.IsHovered = true
	cs.Update(0.1)
	if card.Marker.Applied != 1 {
		t.Fatalf("marker applied %d times, 期望 1", card.Marker.Applied)
	}
	if card.Marker.Current.TiltY <= 0 || card.Marker.Current.Scale <= 1 {
		t.Errorf("right edge hover should tilt around Y and scale up: %+v", card.Marker.Current)
	}

	c.IsHovered = false
	for i := 0; i < 200; i++ {
		cs.Update(0.05)
	}
	if tr := card.Marker.Current; tr.TiltX > 1e-6 || tr.TiltY > 1e-6 || tr.Scale-1 > 1e-6 {
		t.Errorf("card should return to identity after leave: %+v", tr)
	}
}

// TestCardSystemEffectsDisabled 测试关闭效果后卡片不倾斜
func TestCardSystemEffectsDisabled(t *testing.T) {
	em := ecs.NewEntityManager()
	pointer := &fakePointer{state: utils.InputState{X: 100, Y: 0}}
	cs := NewCardSystem(em, pointer, func() bool { return false }, nil)
	card, c := newCardEntity(em, "")

	c.IsHovered = true
	cs.Update(0.1)
	if card.Tilt.Hovered() || card.Marker.Current.TiltY != 0 {
		t.Errorf("tilt should stay at rest when effects are off: %+v", card.Marker.Current)
	}
}

// TestCardSystemOpensURL 测试点击带链接的卡片
func TestCardSystemOpensURL(t *testing.T) {
	em := ecs.NewEntityManager()
	var opened []string
	open := func(url string) error {
		opened = append(opened, url)
		return errors.New("no browser")
	}
	cs := NewCardSystem(em, &fakePointer{}, nil, open)
	_, c := newCardEntity(em, "https://youtube.com/@false-window")
	_, plain := newCardEntity(em, "")

	c.JustClicked = true
	plain.JustClicked = true
	cs.Update(0.016)

	if len(opened) != 1 || opened[0] != "https://youtube.com/@false-window" {
		t.Errorf("opened = %v", opened)
	}
}

// TestTypewriterSystemAdvances 测试打字机随帧时间推进
func TestTypewriterSystemAdvances(t *testing.T) {
	em := ecs.NewEntityManager()
	id := em.CreateEntity()
	tw := &components.TypewriterComponent{
		Writer: effects.NewTypewriter([]string{"AB"}, effects.TypewriterOptions{
			TypeDelay:   50 * time.Millisecond,
			DeleteDelay: 30 * time.Millisecond,
			Hold:        time.Second,
		}),
	}
	ecs.AddComponent(em, id, tw)

	ts := NewTypewriterSystem(em)
	ts.Update(0.125)
	if got := tw.Writer.Text(); got != "AB" {
		t.Errorf("Text = %q, 期望 \"AB\"", got)
	}
}
