// Package contact 实现联系表单的状态机和事务邮件客户端
//
// 表单状态：idle -> sending -> success | error -> idle（固定时间后自动复位）。
// 发送在独立 goroutine 中进行，结果通过 channel 回到帧循环，
// 所有状态修改都发生在 Update 中。
package contact

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrMissingField 必填字段为空
	ErrMissingField = errors.New("required field is empty")
	// ErrInvalidEmail 邮箱格式错误
	ErrInvalidEmail = errors.New("invalid email address")
	// ErrBusy 正在发送或刚刚发送成功，按钮处于禁用状态
	ErrBusy = errors.New("form is busy")
)

// Status 表单状态
type Status int

const (
	StatusIdle Status = iota
	StatusSending
	StatusSuccess
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusSending:
		return "sending"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	default:
		return "idle"
	}
}

// FieldName 表单字段名（与邮件模板变量一致）
type FieldName string

const (
	FieldFromName  FieldName = "from_name"
	FieldFromEmail FieldName = "from_email"
	FieldMessage   FieldName = "message"
)

// Fields 表单字段值
type Fields struct {
	Name    string
	Email   string
	Message string
}

// Validate 检查必填字段和邮箱格式
func (f Fields) Validate() error {
	for _, field := range []struct {
		name  FieldName
		value string
	}{
		{FieldFromName, f.Name},
		{FieldFromEmail, f.Email},
		{FieldMessage, f.Message},
	} {
		if strings.TrimSpace(field.value) == "" {
			return fmt.Errorf("%s: %w", field.name, ErrMissingField)
		}
	}
	// 只接受裸地址，"Name <addr>" 和带注释的写法都会被拒绝
	email := strings.TrimSpace(f.Email)
	if addr, err := mail.ParseAddress(email); err != nil || addr.Address != email {
		return fmt.Errorf("%s %q: %w", FieldFromEmail, f.Email, ErrInvalidEmail)
	}
	return nil
}

// Submission 一次提交
type Submission struct {
	// ID 提交编号，用于日志关联和邮件模板
	ID     string
	Fields Fields
}

// Sender 事务邮件服务
type Sender interface {
	Send(ctx context.Context, sub Submission) error
}

// FormOptions 表单参数
type FormOptions struct {
	// Timeout 单次发送超时，<= 0 表示 10 秒
	Timeout time.Duration
	// ResetAfter 成功/失败状态持续时间，<= 0 表示 3 秒
	ResetAfter time.Duration
}

type sendResult struct {
	id  string
	err error
}

// Form 联系表单
type Form struct {
	sender Sender
	opts   FormOptions

	fields Fields
	status Status

	// 当前状态已持续的时间（只对 success/error 计时）
	statusAge time.Duration

	pendingID string
	results   chan sendResult
	lastErr   error
}

// NewForm 创建联系表单
func NewForm(sender Sender, opts FormOptions) *Form {
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}
	if opts.ResetAfter <= 0 {
		opts.ResetAfter = 3 * time.Second
	}
	return &Form{
		sender:  sender,
		opts:    opts,
		results: make(chan sendResult, 1),
	}
}

// Status 返回当前状态
func (f *Form) Status() Status {
	return f.status
}

// Fields 返回当前字段值
func (f *Form) Fields() Fields {
	return f.fields
}

// Field 返回指定字段值
func (f *Form) Field(name FieldName) string {
	switch name {
	case FieldFromName:
		return f.fields.Name
	case FieldFromEmail:
		return f.fields.Email
	case FieldMessage:
		return f.fields.Message
	}
	return ""
}

// SetField 修改字段值；发送期间字段只读
func (f *Form) SetField(name FieldName, value string) {
	if f.status == StatusSending {
		return
	}
	switch name {
	case FieldFromName:
		f.fields.Name = value
	case FieldFromEmail:
		f.fields.Email = value
	case FieldMessage:
		f.fields.Message = value
	}
}

// CanSubmit 按钮是否可用
func (f *Form) CanSubmit() bool {
	return f.status == StatusIdle || f.status == StatusError
}

// LastError 返回最近一次发送失败的原因
func (f *Form) LastError() error {
	return f.lastErr
}

// Submit 提交表单
//
// 正在发送或刚刚成功时返回 ErrBusy；字段无效时返回校验错误，状态不变。
// 失败状态下允许重新提交。
func (f *Form) Submit() error {
	if !f.CanSubmit() {
		return ErrBusy
	}
	if err := f.fields.Validate(); err != nil {
		return err
	}

	sub := Submission{ID: uuid.NewString(), Fields: f.fields}
	f.pendingID = sub.ID
	f.status = StatusSending
	f.statusAge = 0
	log.Printf("[Contact] submission %s sending", sub.ID)

	go f.send(sub)
	return nil
}

func (f *Form) send(sub Submission) {
	ctx, cancel := context.WithTimeout(context.Background(), f.opts.Timeout)
	defer cancel()

	var err error
	if f.sender == nil {
		err = errors.New("no email sender configured")
	} else {
		err = f.sender.Send(ctx, sub)
	}
	f.results <- sendResult{id: sub.ID, err: err}
}

// Update 每帧调用：接收发送结果，推进自动复位计时
func (f *Form) Update(dt time.Duration) {
	select {
	case res := <-f.results:
		f.finish(res)
		return
	default:
	}

	if f.status != StatusSuccess && f.status != StatusError {
		return
	}
	f.statusAge += dt
	if f.statusAge >= f.opts.ResetAfter {
		log.Printf("[Contact] %s -> idle", f.status)
		f.status = StatusIdle
		f.statusAge = 0
	}
}

func (f *Form) finish(res sendResult) {
	if res.id != f.pendingID || f.status != StatusSending {
		return
	}
	f.pendingID = ""
	f.statusAge = 0

	if res.err != nil {
		log.Printf("[Contact] submission %s failed: %v", res.id, res.err)
		f.status = StatusError
		f.lastErr = res.err
		return
	}

	log.Printf("[Contact] submission %s sent", res.id)
	f.status = StatusSuccess
	f.lastErr = nil
	f.fields = Fields{}
}
