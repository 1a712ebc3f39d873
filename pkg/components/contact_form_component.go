package components

import (
	"github.com/cloudypatil/portfolio/pkg/contact"
	"github.com/cloudypatil/portfolio/pkg/ecs"
)

// ContactFormComponent 联系表单
//
// ContactFormSystem 根据表单状态改写提交按钮的文字、颜色和可用性。
type ContactFormComponent struct {
	Form         *contact.Form
	SubmitButton ecs.EntityID
	// Inputs 表单输入框实体，按 Tab 顺序排列
	Inputs []ecs.EntityID

	// LastStatus 上一帧的状态，用于检测状态切换
	LastStatus contact.Status
}
