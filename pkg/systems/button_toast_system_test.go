package systems

import (
	"testing"

	"github.com/cloudypatil/portfolio/pkg/components"
	"github.com/cloudypatil/portfolio/pkg/config"
	"github.com/cloudypatil/portfolio/pkg/ecs"
)

// TestButtonSystemDispatchesClick 测试点击分发到 OnClick
func TestButtonSystemDispatchesClick(t *testing.T) {
	em := ecs.NewEntityManager()
	bs := NewButtonSystem(em)

	calls := 0
	id := em.CreateEntity()
	b := &components.ButtonComponent{Label: "GITHUB", OnClick: func() { calls++ }}
	c := &components.ClickableComponent{IsEnabled: true}
	ecs.AddComponent(em, id, b)
	ecs.AddComponent(em, id, c)

	bs.Update(0.016)
	if calls != 0 {
		t.Fatalf("calls = %d without click", calls)
	}

	c.JustClicked = true
	bs.Update(0.016)
	if calls != 1 || b.Clicks != 1 {
		t.Errorf("calls=%d clicks=%d, 期望 1 1", calls, b.Clicks)
	}

	// 没有回调的按钮只计数
	b.OnClick = nil
	bs.Update(0.016)
	if b.Clicks != 2 {
		t.Errorf("clicks = %d, 期望 2", b.Clicks)
	}
}

// TestToastSystemReplaceAndExpire 测试新提示替换旧提示并按时消失
func TestToastSystemReplaceAndExpire(t *testing.T) {
	em := ecs.NewEntityManager()
	ts := NewToastSystem(em)

	if ts.Current() != nil {
		t.Fatal("no toast expected initially")
	}

	ts.Show("ALL FIELDS REQUIRED", config.Amber)
	ts.Show("INVALID FREQUENCY (EMAIL)", config.Amber)
	if n := len(ecs.GetEntitiesWith1[*components.ToastComponent](em)); n != 1 {
		t.Fatalf("toasts = %d, 期望 1", n)
	}
	if got := ts.Current().Message; got != "INVALID FREQUENCY (EMAIL)" {
		t.Errorf("Current = %q", got)
	}

	ts.Update(DefaultToastDuration / 2)
	if ts.Current() == nil {
		t.Fatal("toast expired too early")
	}
	ts.Update(DefaultToastDuration)
	em.RemoveMarkedEntities()
	if ts.Current() != nil {
		t.Error("toast should expire")
	}
}
