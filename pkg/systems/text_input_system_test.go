package systems

import (
	"testing"

	"github.com/cloudypatil/portfolio/pkg/components"
	"github.com/cloudypatil/portfolio/pkg/contact"
	"github.com/cloudypatil/portfolio/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
)

func newTestTextInput(t *testing.T) (*TextInputSystem, *testForm, *fakeKeys, *fakePointer) {
	t.Helper()
	em := ecs.NewEntityManager()
	tf := newTestForm(em, nil)
	keys := newFakeKeys()
	pointer := &fakePointer{}
	return NewTextInputSystem(em, tf.form, keys, pointer), tf, keys, pointer
}

// clickInput 模拟点击第 i 个输入框
func clickInput(t *testing.T, ts *TextInputSystem, tf *testForm, pointer *fakePointer, i int) {
	t.Helper()
	for j, id := range tf.ids {
		c, _ := ecs.GetComponent[*components.ClickableComponent](ts.entityManager, id)
		c.JustClicked = j == i
	}
	pointer.state.JustPressed = true
	ts.Update(0.016)
	pointer.state.JustPressed = false
	for _, id := range tf.ids {
		c, _ := ecs.GetComponent[*components.ClickableComponent](ts.entityManager, id)
		c.JustClicked = false
	}
}

// TestTextInputClickFocus 测试点击获得焦点，点在别处失去焦点
func TestTextInputClickFocus(t *testing.T) {
	ts, tf, _, pointer := newTestTextInput(t)

	tf.form.SetField(contact.FieldFromEmail, "ada@")
	clickInput(t, ts, tf, pointer, 1)
	if !tf.inputs[1].IsFocused || tf.inputs[0].IsFocused || tf.inputs[2].IsFocused {
		t.Fatalf("focus = %v %v %v, 期望只有第二个", tf.inputs[0].IsFocused, tf.inputs[1].IsFocused, tf.inputs[2].IsFocused)
	}
	if tf.inputs[1].CursorPosition != 4 || !tf.inputs[1].CursorVisible {
		t.Errorf("cursor = %d visible=%v, 期望 4 true", tf.inputs[1].CursorPosition, tf.inputs[1].CursorVisible)
	}

	clickInput(t, ts, tf, pointer, -1)
	for i, in := range tf.inputs {
		if in.IsFocused {
			t.Errorf("input %d still focused after clicking elsewhere", i)
		}
	}
}

// TestTextInputEditing 测试输入、退格、删除和光标移动
func TestTextInputEditing(t *testing.T) {
	ts, tf, keys, pointer := newTestTextInput(t)
	clickInput(t, ts, tf, pointer, 0)
	name := func() string { return tf.form.Field(contact.FieldFromName) }

	keys.chars = []rune("Ada")
	ts.Update(0.016)
	if name() != "Ada" || tf.inputs[0].CursorPosition != 3 {
		t.Fatalf("text=%q cursor=%d, 期望 \"Ada\" 3", name(), tf.inputs[0].CursorPosition)
	}

	steps := []struct {
		name   string
		key    ebiten.Key
		chars  string
		want   string
		cursor int
	}{
		{"退格", ebiten.KeyBackspace, "", "Ad", 2},
		{"左移", ebiten.KeyArrowLeft, "", "Ad", 1},
		{"插入", -1, "x", "Axd", 2},
		{"删除", ebiten.KeyDelete, "", "Ax", 2},
		{"Home", ebiten.KeyHome, "", "Ax", 0},
		{"行首退格", ebiten.KeyBackspace, "", "Ax", 0},
		{"End", ebiten.KeyEnd, "", "Ax", 2},
		{"右移到末尾", ebiten.KeyArrowRight, "", "Ax", 2},
		{"控制字符被过滤", -1, "\t\x00", "Ax", 2},
		{"单行回车被忽略", ebiten.KeyEnter, "", "Ax", 2},
	}
	for _, st := range steps {
		keys.release()
		if st.key >= 0 {
			keys.press(st.key)
		}
		keys.chars = []rune(st.chars)
		ts.Update(0.016)
		if name() != st.want || tf.inputs[0].CursorPosition != st.cursor {
			t.Errorf("%s: text=%q cursor=%d, 期望 %q %d", st.name, name(), tf.inputs[0].CursorPosition, st.want, st.cursor)
		}
	}
}

// TestTextInputMaxLength 测试最大长度限制
func TestTextInputMaxLength(t *testing.T) {
	ts, tf, keys, pointer := newTestTextInput(t)
	clickInput(t, ts, tf, pointer, 0)

	keys.chars = []rune("0123456789")
	ts.Update(0.016)
	keys.chars = []rune("X")
	ts.Update(0.016)
	if got := tf.form.Field(contact.FieldFromName); got != "0123456789" {
		t.Errorf("text = %q, 期望截止在 10 个字符", got)
	}
}

// TestTextInputMultilineEnter 测试多行输入框回车换行
func TestTextInputMultilineEnter(t *testing.T) {
	ts, tf, keys, pointer := newTestTextInput(t)
	clickInput(t, ts, tf, pointer, 2)

	keys.chars = []rune("hi")
	ts.Update(0.016)
	keys.press(ebiten.KeyEnter)
	ts.Update(0.016)
	keys.release()
	keys.chars = []rune("there")
	ts.Update(0.016)

	if got := tf.form.Field(contact.FieldMessage); got != "hi\nthere" {
		t.Errorf("message = %q, 期望 \"hi\\nthere\"", got)
	}
}

// TestTextInputTabCyclesFocus 测试 Tab 循环切换焦点
func TestTextInputTabCyclesFocus(t *testing.T) {
	ts, tf, keys, _ := newTestTextInput(t)

	want := []int{0, 1, 2, 0}
	for frame, w := range want {
		keys.release()
		keys.press(ebiten.KeyTab)
		ts.Update(0.016)
		for i, in := range tf.inputs {
			if in.IsFocused != (i == w) {
				t.Errorf("frame %d: input %d focused=%v, 期望焦点在 %d", frame, i, in.IsFocused, w)
			}
		}
	}
}

// TestTextInputEscBlurs 测试 Esc 失去焦点
func TestTextInputEscBlurs(t *testing.T) {
	ts, tf, keys, pointer := newTestTextInput(t)
	clickInput(t, ts, tf, pointer, 0)

	keys.press(ebiten.KeyEscape)
	ts.Update(0.016)
	if tf.inputs[0].IsFocused || tf.inputs[0].CursorVisible {
		t.Error("Esc should blur the input")
	}
}

// TestTextInputCursorBlink 测试光标闪烁
func TestTextInputCursorBlink(t *testing.T) {
	ts, tf, _, pointer := newTestTextInput(t)
	clickInput(t, ts, tf, pointer, 0)

	in := tf.inputs[0]
	if !in.CursorVisible {
		t.Fatal("cursor should be visible right after focus")
	}
	ts.Update(0.5)
	if in.CursorVisible {
		t.Error("cursor should blink off after 0.5s")
	}
	ts.Update(0.5)
	if !in.CursorVisible {
		t.Error("cursor should blink back on")
	}
}

// TestTextInputLockedWhileSending 测试发送期间字段只读
func TestTextInputLockedWhileSending(t *testing.T) {
	em := ecs.NewEntityManager()
	tf := newTestForm(em, newGateSender(t, nil))
	keys := newFakeKeys()
	pointer := &fakePointer{}
	ts := NewTextInputSystem(em, tf.form, keys, pointer)

	tf.fillValid()
	clickInput(t, ts, tf, pointer, 0)
	if err := tf.form.Submit(); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	keys.chars = []rune("!!")
	keys.press(ebiten.KeyBackspace)
	ts.Update(0.016)
	if got := tf.form.Field(contact.FieldFromName); got != "Ada" {
		t.Errorf("name = %q while sending, 期望 \"Ada\"", got)
	}
}

// TestTextInputCursorClampedAfterReset 测试表单清空后光标回到有效范围
func TestTextInputCursorClampedAfterReset(t *testing.T) {
	ts, tf, _, pointer := newTestTextInput(t)
	tf.fillValid()
	clickInput(t, ts, tf, pointer, 2)

	tf.form.SetField(contact.FieldMessage, "")
	ts.Update(0.016)
	if tf.inputs[2].CursorPosition != 0 {
		t.Errorf("cursor = %d, 期望 0", tf.inputs[2].CursorPosition)
	}
}
