package systems

import (
	"log"
	"unicode"

	"github.com/cloudypatil/portfolio/pkg/components"
	"github.com/cloudypatil/portfolio/pkg/contact"
	"github.com/cloudypatil/portfolio/pkg/ecs"
	"github.com/cloudypatil/portfolio/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// TextInputSystem 文本输入系统
// 处理联系表单输入框的焦点、键盘输入、光标闪烁等逻辑
//
// 文本保存在 contact.Form 中，表单发送期间字段只读。
type TextInputSystem struct {
	entityManager *ecs.EntityManager
	form          *contact.Form
	keys          KeySource
	pointer       PointerSource
}

// NewTextInputSystem 创建文本输入系统
func NewTextInputSystem(em *ecs.EntityManager, form *contact.Form, keys KeySource, pointer PointerSource) *TextInputSystem {
	return &TextInputSystem{
		entityManager: em,
		form:          form,
		keys:          keys,
		pointer:       pointer,
	}
}

// Update 更新文本输入系统
func (s *TextInputSystem) Update(deltaTime float64) {
	entities := ecs.GetEntitiesWith1[*components.TextInputComponent](s.entityManager)

	s.updateFocus(entities)

	for _, entityID := range entities {
		input, ok := ecs.GetComponent[*components.TextInputComponent](s.entityManager, entityID)
		if !ok {
			continue
		}

		// 表单清空后光标可能越界
		if n := len([]rune(s.text(input))); input.CursorPosition > n {
			input.CursorPosition = n
		}

		if !input.IsFocused {
			input.CursorVisible = false
			continue
		}

		s.updateCursorBlink(input, deltaTime)

		if s.keys == nil || s.form.Status() == contact.StatusSending {
			continue
		}
		s.handleKeyboardInput(input)
	}
}

// updateFocus 点击决定焦点：点中的输入框获得焦点，点在别处则全部失焦
// Tab 切换到下一个输入框
func (s *TextInputSystem) updateFocus(entities []ecs.EntityID) {
	if s.pointer != nil && s.pointer.State().JustPressed {
		for _, id := range entities {
			input, _ := ecs.GetComponent[*components.TextInputComponent](s.entityManager, id)
			c, ok := ecs.GetComponent[*components.ClickableComponent](s.entityManager, id)
			focused := ok && c.JustClicked
			if focused && !input.IsFocused {
				input.CursorPosition = len([]rune(s.text(input)))
				s.resetBlink(input)
			}
			input.IsFocused = focused
		}
	}

	if s.keys != nil && s.keys.IsKeyJustPressed(ebiten.KeyTab) {
		s.FocusNext(entities)
	}
}

// FocusNext 把焦点移到下一个输入框（循环）；没有焦点时聚焦第一个
func (s *TextInputSystem) FocusNext(entities []ecs.EntityID) {
	if len(entities) == 0 {
		return
	}
	next := 0
	for i, id := range entities {
		input, _ := ecs.GetComponent[*components.TextInputComponent](s.entityManager, id)
		if input.IsFocused {
			input.IsFocused = false
			next = (i + 1) % len(entities)
		}
	}
	input, _ := ecs.GetComponent[*components.TextInputComponent](s.entityManager, entities[next])
	input.IsFocused = true
	input.CursorPosition = len([]rune(s.text(input)))
	s.resetBlink(input)
}

func (s *TextInputSystem) text(input *components.TextInputComponent) string {
	return s.form.Field(input.Field)
}

func (s *TextInputSystem) setText(input *components.TextInputComponent, text string) {
	s.form.SetField(input.Field, text)
}

// updateCursorBlink 更新光标闪烁状态
func (s *TextInputSystem) updateCursorBlink(input *components.TextInputComponent, deltaTime float64) {
	const blinkInterval = 0.5 // 光标闪烁间隔（秒）

	input.CursorBlinkTimer += deltaTime
	if input.CursorBlinkTimer >= blinkInterval {
		input.CursorBlinkTimer = 0
		input.CursorVisible = !input.CursorVisible
	}
}

// resetBlink 输入时光标应该可见
func (s *TextInputSystem) resetBlink(input *components.TextInputComponent) {
	input.CursorBlinkTimer = 0
	input.CursorVisible = true
}

// handleKeyboardInput 处理键盘输入
func (s *TextInputSystem) handleKeyboardInput(input *components.TextInputComponent) {
	// 1. 文本字符输入
	if runes := s.keys.AppendInputChars(nil); len(runes) > 0 {
		s.insertText(input, runes)
		s.resetBlink(input)
	}

	// 2. 多行输入框的回车换行
	if input.Multiline && keyRepeat(s.keys, ebiten.KeyEnter) {
		s.insertText(input, []rune{'\n'})
		s.resetBlink(input)
	}

	// 3. 退格键（删除光标前的字符），按住连续删除
	if keyRepeat(s.keys, ebiten.KeyBackspace) {
		s.deleteCharBefore(input)
		s.resetBlink(input)
	}

	// 4. 删除键（删除光标后的字符）
	if keyRepeat(s.keys, ebiten.KeyDelete) {
		s.deleteCharAfter(input)
		s.resetBlink(input)
	}

	// 5. 左右箭头移动光标
	if keyRepeat(s.keys, ebiten.KeyArrowLeft) && input.CursorPosition > 0 {
		input.CursorPosition--
		s.resetBlink(input)
	}
	if keyRepeat(s.keys, ebiten.KeyArrowRight) && input.CursorPosition < len([]rune(s.text(input))) {
		input.CursorPosition++
		s.resetBlink(input)
	}

	// 6. Home / End
	if s.keys.IsKeyJustPressed(ebiten.KeyHome) {
		input.CursorPosition = 0
		s.resetBlink(input)
	}
	if s.keys.IsKeyJustPressed(ebiten.KeyEnd) {
		input.CursorPosition = len([]rune(s.text(input)))
		s.resetBlink(input)
	}

	// 7. Esc 失去焦点
	if s.keys.IsKeyJustPressed(ebiten.KeyEscape) {
		input.IsFocused = false
		input.CursorVisible = false
	}
}

// insertText 在光标位置插入文本
func (s *TextInputSystem) insertText(input *components.TextInputComponent, text []rune) {
	filtered := make([]rune, 0, len(text))
	for _, r := range text {
		if r == '\n' && input.Multiline {
			filtered = append(filtered, r)
			continue
		}
		if unicode.IsPrint(r) {
			filtered = append(filtered, r)
		}
	}
	if len(filtered) == 0 {
		return
	}

	runes := []rune(s.text(input))
	if input.MaxLength > 0 && len(runes)+len(filtered) > input.MaxLength {
		log.Printf("[TextInputSystem] 达到最大长度限制 (%d 字符)", input.MaxLength)
		return
	}

	pos := utils.ClampInt(input.CursorPosition, 0, len(runes))
	result := make([]rune, 0, len(runes)+len(filtered))
	result = append(result, runes[:pos]...)
	result = append(result, filtered...)
	result = append(result, runes[pos:]...)

	s.setText(input, string(result))
	input.CursorPosition = pos + len(filtered)
}

// deleteCharBefore 删除光标前的字符（退格）
func (s *TextInputSystem) deleteCharBefore(input *components.TextInputComponent) {
	runes := []rune(s.text(input))
	if input.CursorPosition == 0 || len(runes) == 0 {
		return
	}
	pos := utils.ClampInt(input.CursorPosition, 1, len(runes))
	s.setText(input, string(append(runes[:pos-1:pos-1], runes[pos:]...)))
	input.CursorPosition = pos - 1
}

// deleteCharAfter 删除光标后的字符（Delete键）
func (s *TextInputSystem) deleteCharAfter(input *components.TextInputComponent) {
	runes := []rune(s.text(input))
	if input.CursorPosition >= len(runes) {
		return
	}
	pos := input.CursorPosition
	s.setText(input, string(append(runes[:pos:pos], runes[pos+1:]...)))
}
