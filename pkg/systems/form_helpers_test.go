package systems

import (
	"context"
	"testing"
	"time"

	"github.com/cloudypatil/portfolio/pkg/components"
	"github.com/cloudypatil/portfolio/pkg/contact"
	"github.com/cloudypatil/portfolio/pkg/ecs"
)

// gateSender 在 release 关闭前阻塞的发送器
type gateSender struct {
	release chan struct{}
	err     error
}

func newGateSender(t *testing.T, err error) *gateSender {
	s := &gateSender{release: make(chan struct{}), err: err}
	t.Cleanup(s.open)
	return s
}

func (s *gateSender) open() {
	select {
	case <-s.release:
	default:
		close(s.release)
	}
}

func (s *gateSender) Send(ctx context.Context, sub contact.Submission) error {
	select {
	case <-s.release:
	case <-ctx.Done():
		return ctx.Err()
	}
	return s.err
}

// testForm 表单实体及其输入框、提交按钮
type testForm struct {
	form   *contact.Form
	entity ecs.EntityID
	inputs []*components.TextInputComponent
	ids    []ecs.EntityID
	button *components.ButtonComponent
	click  *components.ClickableComponent
}

func newTestForm(em *ecs.EntityManager, sender contact.Sender) *testForm {
	tf := &testForm{form: contact.NewForm(sender, contact.FormOptions{ResetAfter: time.Second})}

	for _, in := range []*components.TextInputComponent{
		{Field: contact.FieldFromName, Label: "- ENTER_IDENTITY", MaxLength: 10},
		{Field: contact.FieldFromEmail, Label: "- ENTER_FREQUENCY"},
		{Field: contact.FieldMessage, Label: "- TRANSMISSION_DATA", Multiline: true},
	} {
		id := em.CreateEntity()
		ecs.AddComponent(em, id, in)
		ecs.AddComponent(em, id, &components.ClickableComponent{IsEnabled: true})
		tf.inputs = append(tf.inputs, in)
		tf.ids = append(tf.ids, id)
	}

	btn := em.CreateEntity()
	tf.button = &components.ButtonComponent{}
	tf.click = &components.ClickableComponent{IsEnabled: true}
	ecs.AddComponent(em, btn, tf.button)
	ecs.AddComponent(em, btn, tf.click)

	tf.entity = em.CreateEntity()
	ecs.AddComponent(em, tf.entity, &components.ContactFormComponent{
		Form:         tf.form,
		SubmitButton: btn,
		Inputs:       tf.ids,
	})
	return tf
}

func (tf *testForm) fillValid() {
	tf.form.SetField(contact.FieldFromName, "Ada")
	tf.form.SetField(contact.FieldFromEmail, "ada@example.com")
	tf.form.SetField(contact.FieldMessage, "hello")
}
