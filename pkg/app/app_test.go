package app

import (
	"testing"

	"github.com/cloudypatil/portfolio/pkg/config"
	"github.com/cloudypatil/portfolio/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
)

// stubScene 记录保存次数和收到的尺寸
type stubScene struct {
	saves         int
	width, height int
}

func (s *stubScene) Update(deltaTime float64) {}

func (s *stubScene) Draw(screen *ebiten.Image) {}

func (s *stubScene) SaveOnExit() bool {
	s.saves++
	return true
}

func (s *stubScene) Resize(width, height int) {
	s.width, s.height = width, height
}

func newStubApp() (*App, *stubScene) {
	scene := &stubScene{}
	sm := game.NewSceneManager()
	sm.SwitchTo(scene)
	return &App{
		sceneManager: sm,
		settings:     game.NewSettingsManager(nil),
		width:        config.GameWindowWidth,
		height:       config.GameWindowHeight,
	}, scene
}

func TestLogicalSize(t *testing.T) {
	tests := []struct {
		name         string
		outW, outH   int
		wantW, wantH int
	}{
		{"默认窗口", 1280, 720, config.GameWindowWidth, 720},
		{"16:10 全屏", 1920, 1200, config.GameWindowWidth, 800},
		{"竖屏手机", 1080, 2340, config.GameWindowWidth, 2560},
		{"超宽屏", 3440, 1000, config.GameWindowWidth, config.MinLogicalHeight},
		{"尺寸未知", 0, 0, config.GameWindowWidth, config.GameWindowHeight},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := LogicalSize(tt.outW, tt.outH)
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("LogicalSize(%d, %d) = %dx%d, 期望 %dx%d", tt.outW, tt.outH, w, h, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestLayoutResizesScene(t *testing.T) {
	a, scene := newStubApp()

	a.Layout(1280, 720)
	if scene.width != 0 {
		t.Error("尺寸未变化时不应调用 Resize")
	}

	w, h := a.Layout(1920, 1200)
	if w != config.GameWindowWidth || h != 800 {
		t.Errorf("Layout = %dx%d, 期望 %dx800", w, h, config.GameWindowWidth)
	}
	if scene.width != config.GameWindowWidth || scene.height != 800 {
		t.Errorf("场景尺寸 = %dx%d, 期望 %dx800", scene.width, scene.height, config.GameWindowWidth)
	}
}

func TestAutosave(t *testing.T) {
	a, scene := newStubApp()

	frames := int(config.AutosaveIntervalSeconds*60) - 1
	for i := 0; i < frames; i++ {
		a.autosave(1.0 / 60.0)
	}
	if scene.saves != 0 {
		t.Fatalf("间隔未到时保存了 %d 次", scene.saves)
	}

	a.autosave(1.0 / 60.0)
	a.autosave(1.0 / 60.0)
	if scene.saves != 1 {
		t.Errorf("期望保存 1 次, 实际为 %d", scene.saves)
	}
}
