package components

import "github.com/cloudypatil/portfolio/pkg/contact"

// TextInputComponent 联系表单输入框
//
// 文本本身保存在 contact.Form 中（Field 指向表单字段），
// 组件只保存光标、焦点等编辑状态。
type TextInputComponent struct {
	Field contact.FieldName

	Label       string // 输入框上方的标签，如 "- ENTER_IDENTITY"
	Placeholder string // 字段为空时显示
	Multiline   bool
	MaxLength   int // 最大字符数（0 = 无限制）

	// 光标状态
	CursorVisible    bool
	CursorBlinkTimer float64 // 秒
	CursorPosition   int     // 字符索引

	IsFocused bool
}
