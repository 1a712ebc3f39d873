package systems

import (
	"errors"
	"image/color"
	"log"
	"time"

	"github.com/cloudypatil/portfolio/pkg/components"
	"github.com/cloudypatil/portfolio/pkg/config"
	"github.com/cloudypatil/portfolio/pkg/contact"
	"github.com/cloudypatil/portfolio/pkg/ecs"
)

// 提交按钮在各状态下的文字
var submitLabels = map[contact.Status]string{
	contact.StatusIdle:    "[ EXECUTE_TRANSMISSION ]",
	contact.StatusSending: "UPLOADING DATA...",
	contact.StatusSuccess: "TRANSMISSION COMPLETE",
	contact.StatusError:   "ERROR: RETRY",
}

var submitColors = map[contact.Status]color.RGBA{
	contact.StatusIdle:    config.NeonCyan,
	contact.StatusSending: config.DimGray,
	contact.StatusSuccess: config.NeonGreen,
	contact.StatusError:   config.NeonPink,
}

// SubmitLabel 返回状态对应的按钮文字
func SubmitLabel(st contact.Status) string {
	return submitLabels[st]
}

// ContactFormSystem 联系表单系统
//
// 每帧排空表单的发送结果，并根据状态改写提交按钮。
type ContactFormSystem struct {
	entityManager *ecs.EntityManager
	toasts        *ToastSystem
}

// NewContactFormSystem 创建联系表单系统
// toasts 可以为 nil
func NewContactFormSystem(em *ecs.EntityManager, toasts *ToastSystem) *ContactFormSystem {
	return &ContactFormSystem{
		entityManager: em,
		toasts:        toasts,
	}
}

// Submit 提交表单实体 id 对应的表单
//
// 校验失败时状态不变，只显示提示；忙碌时忽略。
func (s *ContactFormSystem) Submit(id ecs.EntityID) error {
	fc, ok := ecs.GetComponent[*components.ContactFormComponent](s.entityManager, id)
	if !ok || fc.Form == nil {
		return nil
	}

	err := fc.Form.Submit()
	switch {
	case err == nil:
		s.blurInputs(fc)
	case errors.Is(err, contact.ErrBusy):
		log.Printf("[ContactFormSystem] 忽略提交：%v", err)
	case errors.Is(err, contact.ErrMissingField):
		s.toast("ALL FIELDS REQUIRED", config.Amber)
	case errors.Is(err, contact.ErrInvalidEmail):
		s.toast("INVALID FREQUENCY (EMAIL)", config.Amber)
	default:
		s.toast(err.Error(), config.NeonPink)
	}
	return err
}

// Update 推进表单状态并同步提交按钮
func (s *ContactFormSystem) Update(deltaTime float64) {
	dt := time.Duration(deltaTime * float64(time.Second))

	for _, id := range ecs.GetEntitiesWith1[*components.ContactFormComponent](s.entityManager) {
		fc, ok := ecs.GetComponent[*components.ContactFormComponent](s.entityManager, id)
		if !ok || fc.Form == nil {
			continue
		}

		fc.Form.Update(dt)
		st := fc.Form.Status()
		if st != fc.LastStatus {
			s.onStatusChange(fc, fc.LastStatus, st)
			fc.LastStatus = st
		}
		s.syncButton(fc)
	}
}

func (s *ContactFormSystem) onStatusChange(fc *components.ContactFormComponent, from, to contact.Status) {
	log.Printf("[ContactFormSystem] 表单状态 %s -> %s", from, to)
	if to == contact.StatusError && fc.Form.LastError() != nil {
		log.Printf("[ContactFormSystem] 发送失败: %v", fc.Form.LastError())
	}
}

// syncButton 按状态改写按钮文字、颜色和可用性
func (s *ContactFormSystem) syncButton(fc *components.ContactFormComponent) {
	st := fc.Form.Status()
	if b, ok := ecs.GetComponent[*components.ButtonComponent](s.entityManager, fc.SubmitButton); ok {
		b.Label = submitLabels[st]
		b.Color = submitColors[st]
		b.Filled = true
	}
	if c, ok := ecs.GetComponent[*components.ClickableComponent](s.entityManager, fc.SubmitButton); ok {
		c.IsEnabled = fc.Form.CanSubmit()
	}
}

func (s *ContactFormSystem) blurInputs(fc *components.ContactFormComponent) {
	for _, id := range fc.Inputs {
		if input, ok := ecs.GetComponent[*components.TextInputComponent](s.entityManager, id); ok {
			input.IsFocused = false
			input.CursorVisible = false
		}
	}
}

func (s *ContactFormSystem) toast(msg string, clr color.RGBA) {
	if s.toasts != nil {
		s.toasts.Show(msg, clr)
	}
}
