package systems

import "github.com/cloudypatil/portfolio/pkg/utils"

// PointerSource 提供本帧输入状态（InputSystem 实现）
type PointerSource interface {
	State() utils.InputState
}

// Toggle 装饰效果开关（由访问者设置控制）
type Toggle func() bool

func enabled(t Toggle) bool {
	return t == nil || t()
}
