//go:build android

package utils

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
)

// EnsureStorageDir 在 gdata 打开之前准备设置目录
//
// Android 上 gdata 写入 /data/data/{package}/ 下的子目录，但不会自己创建。
func EnsureStorageDir() error {
	dir := GetStoragePath()
	if dir == "" {
		return errors.New("cannot resolve Android package name")
	}
	return ensureWritableDir(filepath.Join(dir, "saves"))
}

// GetStoragePath 返回应用私有目录，无法识别包名时返回空字符串
func GetStoragePath() string {
	// /proc/self/cmdline 的第一个参数就是包名
	data, err := os.ReadFile("/proc/self/cmdline")
	if err != nil {
		return ""
	}
	pkg, _, _ := bytes.Cut(data, []byte{0})
	pkg = bytes.TrimSpace(pkg)
	if len(pkg) == 0 {
		return ""
	}
	return filepath.Join("/data/data", string(pkg))
}
