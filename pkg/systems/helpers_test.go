package systems

import (
	"github.com/cloudypatil/portfolio/pkg/scroll"
	"github.com/cloudypatil/portfolio/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// fakeKeys 脚本化的键盘输入，每次 Update 前由测试设置
type fakeKeys struct {
	chars     []rune
	durations map[ebiten.Key]int
	just      map[ebiten.Key]bool
}

func newFakeKeys() *fakeKeys {
	return &fakeKeys{
		durations: map[ebiten.Key]int{},
		just:      map[ebiten.Key]bool{},
	}
}

// AppendInputChars 字符只被读取一次
func (k *fakeKeys) AppendInputChars(runes []rune) []rune {
	runes = append(runes, k.chars...)
	k.chars = nil
	return runes
}

func (k *fakeKeys) KeyPressDuration(key ebiten.Key) int {
	return k.durations[key]
}

func (k *fakeKeys) IsKeyJustPressed(key ebiten.Key) bool {
	return k.just[key]
}

// press 模拟按下一帧
func (k *fakeKeys) press(key ebiten.Key) {
	k.durations[key] = 1
	k.just[key] = true
}

// release 松开所有按键
func (k *fakeKeys) release() {
	k.chars = nil
	clear(k.durations)
	clear(k.just)
}

// fakePointer 固定的输入状态
type fakePointer struct {
	state utils.InputState
}

func (p *fakePointer) State() utils.InputState {
	return p.state
}

// scrollCall 一次 ScrollTo 调用
type scrollCall struct {
	top      float64
	behavior scroll.Behavior
}

// fakeSurface 记录滚动命令的滚动容器
type fakeSurface struct {
	offset float64
	pages  int
	vh     float64
	calls  []scrollCall
}

func (s *fakeSurface) Offset() float64         { return s.offset }
func (s *fakeSurface) Pages() int              { return s.pages }
func (s *fakeSurface) ViewportHeight() float64 { return s.vh }

func (s *fakeSurface) ScrollTo(pixelTop float64, behavior scroll.Behavior) {
	s.calls = append(s.calls, scrollCall{top: pixelTop, behavior: behavior})
}
