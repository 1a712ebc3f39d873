package game

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/cloudypatil/portfolio/pkg/config"
)

func testResumeFS() fstest.MapFS {
	return fstest.MapFS{
		"assets/resume.pdf": {Data: []byte("%PDF-1.4 dossier")},
	}
}

// TestResumeExport 测试简历导出到配置目录
func TestResumeExport(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "downloads")
	e := NewResumeExporter(testResumeFS(), config.ResumeConfig{
		Asset:       "assets/resume.pdf",
		FileName:    "Harshal_Resume.pdf",
		DownloadDir: dir,
	})

	path, err := e.Export()
	if err != nil {
		t.Fatalf("Export() error: %v", err)
	}
	if path != filepath.Join(dir, "Harshal_Resume.pdf") {
		t.Errorf("path = %s", path)
	}
	data, err := os.ReadFile(path)
	if err != nil || string(data) != "%PDF-1.4 dossier" {
		t.Errorf("exported content = %q, %v", data, err)
	}

	// 第二次导出不覆盖
	path2, err := e.Export()
	if err != nil {
		t.Fatalf("second Export() error: %v", err)
	}
	if path2 != filepath.Join(dir, "Harshal_Resume (1).pdf") {
		t.Errorf("second path = %s", path2)
	}
}

// TestResumeExportMissingAsset 测试资源缺失时返回错误
func TestResumeExportMissingAsset(t *testing.T) {
	e := NewResumeExporter(fstest.MapFS{}, config.ResumeConfig{
		Asset:       "assets/resume.pdf",
		FileName:    "Harshal_Resume.pdf",
		DownloadDir: t.TempDir(),
	})
	if _, err := e.Export(); err == nil {
		t.Error("Export() with missing asset should fail")
	}
}

// TestResumeDownloadDirDefault 测试默认下载目录
func TestResumeDownloadDirDefault(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)

	e := NewResumeExporter(testResumeFS(), config.ResumeConfig{Asset: "assets/resume.pdf", FileName: "r.pdf"})
	dir, err := e.DownloadDir()
	if err != nil {
		t.Fatalf("DownloadDir() error: %v", err)
	}
	if dir != filepath.Join(home, "Downloads") {
		t.Errorf("DownloadDir() = %s, want %s", dir, filepath.Join(home, "Downloads"))
	}
}
