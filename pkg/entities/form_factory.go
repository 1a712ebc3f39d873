package entities

import (
	"log"

	"github.com/cloudypatil/portfolio/pkg/components"
	"github.com/cloudypatil/portfolio/pkg/config"
	"github.com/cloudypatil/portfolio/pkg/contact"
	"github.com/cloudypatil/portfolio/pkg/ecs"
)

// 表单布局（相对表单顶部）
const (
	formFieldGap     = 40.0 // 输入框之间的间距（包含上方标签）
	formSubmitHeight = 40.0
	formMaxNameLen   = 80
	formMaxEmailLen  = 120
	formMaxMessage   = 1000
)

// formField 输入框定义
type formField struct {
	field       contact.FieldName
	label       string
	placeholder string
	multiline   bool
	height      float64
	maxLength   int
}

var contactFields = []formField{
	{contact.FieldFromName, "- ENTER_IDENTITY", "Name / Org", false, config.FormFieldHeight, formMaxNameLen},
	{contact.FieldFromEmail, "- ENTER_FREQUENCY", "Email Address", false, config.FormFieldHeight, formMaxEmailLen},
	{contact.FieldMessage, "- TRANSMISSION_DATA", "Message...", true, config.FormMessageHeight, formMaxMessage},
}

// FormHeight 返回联系表单的总高度
func FormHeight() float64 {
	h := 0.0
	for _, f := range contactFields {
		h += f.height + formFieldGap
	}
	return h + formSubmitHeight
}

// NewContactFormEntity 创建联系表单：三个输入框、提交按钮和表单实体
//
// 参数：
//   - em: 实体管理器
//   - form: 表单状态机
//   - anchor: 表单顶部位置，Width 为表单宽度
//   - onSubmit: 提交按钮回调，参数为表单实体ID
//
// 返回：
//   - 表单实体ID
func NewContactFormEntity(
	em *ecs.EntityManager,
	form *contact.Form,
	anchor components.AnchorComponent,
	onSubmit func(formID ecs.EntityID),
) ecs.EntityID {
	formID := em.CreateEntity()

	var inputs []ecs.EntityID
	y := anchor.OffsetY + formFieldGap
	for _, f := range contactFields {
		id := em.CreateEntity()
		addAnchor(em, id, components.AnchorComponent{
			Page:    anchor.Page,
			X:       anchor.X,
			OffsetY: y,
			Width:   anchor.Width,
			Height:  f.height,
		})
		ecs.AddComponent(em, id, &components.TextInputComponent{
			Field:       f.field,
			Label:       f.label,
			Placeholder: f.placeholder,
			Multiline:   f.multiline,
			MaxLength:   f.maxLength,
		})
		ecs.AddComponent(em, id, &components.ClickableComponent{IsEnabled: true})
		inputs = append(inputs, id)
		y += f.height + formFieldGap
	}

	submit := NewButtonEntity(em, components.AnchorComponent{
		Page:    anchor.Page,
		X:       anchor.X,
		OffsetY: y - formFieldGap/2,
		Width:   anchor.Width,
		Height:  formSubmitHeight,
	}, "[ EXECUTE_TRANSMISSION ]", config.NeonCyan, true, func() {
		if onSubmit != nil {
			onSubmit(formID)
		}
	})

	ecs.AddComponent(em, formID, &components.ContactFormComponent{
		Form:         form,
		SubmitButton: submit,
		Inputs:       inputs,
		LastStatus:   form.Status(),
	})

	log.Printf("[FormFactory] 创建联系表单 (%d 个输入框)", len(inputs))
	return formID
}
