package systems

import (
	"github.com/cloudypatil/portfolio/pkg/components"
	"github.com/cloudypatil/portfolio/pkg/ecs"
	"github.com/cloudypatil/portfolio/pkg/scroll"
	"github.com/cloudypatil/portfolio/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// KeyScrollStep 方向键每次滚动的像素
const KeyScrollStep = 80.0

// InputSystem 输入系统
//
// 每帧轮询一次指针和滚轮：
//   - 指针位置提交给 PointerHub（位置变化时分发移动事件）
//   - 滚轮/触摸拖动和键盘立即滚动虚拟容器
//   - 对所有 ClickableComponent 做命中测试，写入悬停和点击标志
type InputSystem struct {
	entityManager *ecs.EntityManager
	surface       *scroll.VirtualSurface
	hub           *utils.PointerHub
	keys          KeySource
	poll          func() utils.InputState

	state utils.InputState
}

// NewInputSystem 创建输入系统
// surface 和 hub 可以为 nil（对应的功能被跳过）
func NewInputSystem(em *ecs.EntityManager, surface *scroll.VirtualSurface, hub *utils.PointerHub, keys KeySource) *InputSystem {
	return &InputSystem{
		entityManager: em,
		surface:       surface,
		hub:           hub,
		keys:          keys,
		poll:          utils.GetInputState,
	}
}

// SetPoller 替换输入轮询函数（测试用）
func (s *InputSystem) SetPoller(poll func() utils.InputState) {
	s.poll = poll
}

// State 返回本帧的输入状态
func (s *InputSystem) State() utils.InputState {
	return s.state
}

// Update 轮询输入并更新命中测试结果
func (s *InputSystem) Update(deltaTime float64) {
	s.state = s.poll()

	if s.hub != nil {
		s.hub.Poll(s.state.X, s.state.Y)
	}

	if s.surface != nil {
		if s.state.ScrollDelta != 0 {
			s.surface.ScrollBy(s.state.ScrollDelta)
		}
		if s.keys != nil && !s.TextInputFocused() {
			s.handleKeyboardScroll()
		}
	}

	s.hitTest()
}

// handleKeyboardScroll 方向键、翻页键、Home/End
func (s *InputSystem) handleKeyboardScroll() {
	vh := s.surface.ViewportHeight()

	if keyRepeat(s.keys, ebiten.KeyArrowDown) {
		s.surface.ScrollBy(KeyScrollStep)
	}
	if keyRepeat(s.keys, ebiten.KeyArrowUp) {
		s.surface.ScrollBy(-KeyScrollStep)
	}
	if s.keys.IsKeyJustPressed(ebiten.KeyPageDown) || s.keys.IsKeyJustPressed(ebiten.KeySpace) {
		s.surface.ScrollBy(vh)
	}
	if s.keys.IsKeyJustPressed(ebiten.KeyPageUp) {
		s.surface.ScrollBy(-vh)
	}
	if s.keys.IsKeyJustPressed(ebiten.KeyHome) {
		s.surface.ScrollTo(0, scroll.BehaviorSmooth)
	}
	if s.keys.IsKeyJustPressed(ebiten.KeyEnd) {
		s.surface.ScrollTo(s.surface.ScrollRange(), scroll.BehaviorSmooth)
	}
}

// TextInputFocused 有输入框获得焦点时，键盘用于编辑而不是滚动或快捷键
func (s *InputSystem) TextInputFocused() bool {
	for _, id := range ecs.GetEntitiesWith1[*components.TextInputComponent](s.entityManager) {
		input, ok := ecs.GetComponent[*components.TextInputComponent](s.entityManager, id)
		if ok && input.IsFocused {
			return true
		}
	}
	return false
}

// hitTest 更新所有可点击实体的悬停和点击标志
func (s *InputSystem) hitTest() {
	px, py := float64(s.state.X), float64(s.state.Y)

	for _, id := range ecs.GetEntitiesWith1[*components.ClickableComponent](s.entityManager) {
		c, ok := ecs.GetComponent[*components.ClickableComponent](s.entityManager, id)
		if !ok {
			continue
		}

		active := c.IsEnabled
		if anchor, ok := ecs.GetComponent[*components.AnchorComponent](s.entityManager, id); ok && !anchor.Visible {
			active = false
		}

		inside := active && c.Contains(px, py)
		c.JustEntered = inside && !c.IsHovered
		c.IsHovered = inside
		c.JustClicked = inside && s.state.JustPressed
	}
}
