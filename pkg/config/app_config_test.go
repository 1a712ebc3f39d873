package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaultsOnly(t *testing.T) {
	cfg, err := Load(loadDefaultSiteYAML(t), "")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Timeline.PageCount != 7 {
		t.Errorf("PageCount: got %d, want 7", cfg.Timeline.PageCount)
	}
	if len(cfg.Nav) != 5 {
		t.Errorf("nav stops: got %d, want 5", len(cfg.Nav))
	}
	if cfg.Props[0].Position != [3]float64{4, 0, -10} {
		t.Errorf("props[0].Position: got %v", cfg.Props[0].Position)
	}
}

func TestLoadMissingOverrideFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.yaml")
	if _, err := Load(loadDefaultSiteYAML(t), missing); err != nil {
		t.Fatalf("missing override file should be skipped, got %v", err)
	}
}

func TestLoadOverrideFile(t *testing.T) {
	override := `
contact:
  serviceId: service_from_file
nav:
  - label: "01 // ONLY"
    page: 0
  - label: "02 // END"
    page: 6
`
	path := filepath.Join(t.TempDir(), "site.yaml")
	if err := os.WriteFile(path, []byte(override), 0644); err != nil {
		t.Fatalf("write override: %v", err)
	}

	cfg, err := Load(loadDefaultSiteYAML(t), path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Contact.ServiceID != "service_from_file" {
		t.Errorf("ServiceID: got %q", cfg.Contact.ServiceID)
	}
	// 其余键保留默认值
	if cfg.Contact.TemplateID != "YOUR_TEMPLATE_ID" {
		t.Errorf("TemplateID: got %q", cfg.Contact.TemplateID)
	}
	// 列表整体替换
	if len(cfg.Nav) != 2 || cfg.Nav[1].Page != 6 {
		t.Errorf("nav should be replaced, got %+v", cfg.Nav)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("PORTFOLIO_CONTACT__SERVICE_ID", "service_from_env")
	t.Setenv("PORTFOLIO_TIMELINE__DAMPING_FACTOR", "0.25")

	cfg, err := Load(loadDefaultSiteYAML(t), "")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Contact.ServiceID != "service_from_env" {
		t.Errorf("ServiceID: got %q, want service_from_env", cfg.Contact.ServiceID)
	}
	if cfg.Timeline.DampingFactor != 0.25 {
		t.Errorf("DampingFactor: got %v, want 0.25", cfg.Timeline.DampingFactor)
	}
}

func TestLoadInvalidOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	if err := os.WriteFile(path, []byte("timeline:\n  pageCount: 0\n"), 0644); err != nil {
		t.Fatalf("write override: %v", err)
	}
	if _, err := Load(loadDefaultSiteYAML(t), path); err == nil {
		t.Fatal("expected validation error for pageCount 0")
	}
}

func TestLoadMalformedDefaults(t *testing.T) {
	if _, err := Load([]byte("timeline: [oops"), ""); err == nil {
		t.Fatal("expected parse error for malformed embedded config")
	}
}

func TestEnvKey(t *testing.T) {
	tests := map[string]string{
		"PORTFOLIO_CONTACT__SERVICE_ID":  "contact.serviceid",
		"PORTFOLIO_TIMELINE__PAGE_COUNT": "timeline.pagecount",
		"PORTFOLIO_GLITCH__SPEED_MS":     "glitch.speedms",
		"PORTFOLIO_RESUME__DOWNLOAD_DIR": "resume.downloaddir",
	}
	for in, want := range tests {
		if got := envKey(in); got != want {
			t.Errorf("envKey(%q) = %q, want %q", in, got, want)
		}
	}
}
