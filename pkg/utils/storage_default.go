//go:build !android

package utils

import "os"

// EnsureStorageDir 桌面和 iOS 上 gdata 自己创建目录，这里只确认用户配置目录可用
func EnsureStorageDir() error {
	_, err := os.UserConfigDir()
	return err
}

// GetStoragePath 返回用户配置目录（gdata 在其下按应用名建子目录），用于日志
func GetStoragePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return dir
}
