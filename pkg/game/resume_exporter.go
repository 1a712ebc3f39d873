package game

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/cloudypatil/portfolio/pkg/config"
)

// ResumeExporter 把嵌入的简历文件保存到下载目录
type ResumeExporter struct {
	assets fs.FS
	cfg    config.ResumeConfig
}

// NewResumeExporter 创建简历导出器
//
// assets 中的路径与 cfg.Asset 一致（如 "assets/resume.pdf"）。
func NewResumeExporter(assets fs.FS, cfg config.ResumeConfig) *ResumeExporter {
	return &ResumeExporter{assets: assets, cfg: cfg}
}

// DownloadDir 返回目标目录
// 配置为空时使用 ~/Downloads
func (e *ResumeExporter) DownloadDir() (string, error) {
	if e.cfg.DownloadDir != "" {
		return e.cfg.DownloadDir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, "Downloads"), nil
}

// Export 复制简历文件，返回写入的路径
//
// 目标文件已存在时追加序号（"Harshal_Resume (1).pdf"），不覆盖已有文件。
func (e *ResumeExporter) Export() (string, error) {
	src, err := e.assets.Open(e.cfg.Asset)
	if err != nil {
		return "", fmt.Errorf("failed to open resume asset %s: %w", e.cfg.Asset, err)
	}
	defer src.Close()

	dir, err := e.DownloadDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create download directory %s: %w", dir, err)
	}

	dst, path, err := createUnique(dir, e.cfg.FileName)
	if err != nil {
		return "", err
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(path)
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := dst.Close(); err != nil {
		return "", fmt.Errorf("failed to close %s: %w", path, err)
	}

	log.Printf("[ResumeExporter] 简历已保存: %s", path)
	return path, nil
}

// maxNameAttempts 同名文件最多尝试的序号
const maxNameAttempts = 100

// createUnique 以独占方式创建文件，名字冲突时追加序号
func createUnique(dir, name string) (*os.File, string, error) {
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)

	for i := 0; i < maxNameAttempts; i++ {
		candidate := name
		if i > 0 {
			candidate = fmt.Sprintf("%s (%d)%s", base, i, ext)
		}
		path := filepath.Join(dir, candidate)
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
		if err == nil {
			return f, path, nil
		}
		if !errors.Is(err, fs.ErrExist) {
			return nil, "", fmt.Errorf("failed to create %s: %w", path, err)
		}
	}
	return nil, "", fmt.Errorf("too many copies of %s in %s", name, dir)
}
