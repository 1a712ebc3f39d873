//go:build mobile

package utils

import "errors"

// ErrUnsupported 当前平台不支持的操作
var ErrUnsupported = errors.New("not supported on this platform")

// IsMobile 检测当前是否在移动设备上运行
// 移动端编译时返回 true
func IsMobile() bool {
	return true
}

// OpenURL 移动端由宿主应用处理链接，这里只返回错误
func OpenURL(url string) error {
	return ErrUnsupported
}
