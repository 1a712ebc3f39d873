//go:build !mobile

package utils

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
)

// IsMobile 检测当前是否在移动设备上运行
// 桌面端编译时返回 false
// 可以通过设置环境变量 PORTFOLIO_MOBILE_EMULATE=1 强制启用移动模式（用于本地调试）
func IsMobile() bool {
	return os.Getenv("PORTFOLIO_MOBILE_EMULATE") == "1"
}

// OpenURL 在系统默认浏览器中打开链接
func OpenURL(url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to open %s: %w", url, err)
	}
	// 不等待浏览器退出，只回收子进程
	go func() { _ = cmd.Wait() }()
	return nil
}
