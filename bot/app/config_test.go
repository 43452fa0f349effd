package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

const validConfig = `
telegram:
  token: "123:abc"
  admin_id: 1000
data:
  dir: data
  submissions_dir: submissions
exams:
  sweep_interval_minutes: 60
  max_retained: 0
donate_url: "https://example.test/coffee"
`

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, validConfig))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Core.Telegram.AdminID != 1000 {
		t.Fatalf("admin id = %d", cfg.Core.Telegram.AdminID)
	}
	if cfg.Exams.SweepIntervalMinutes != 60 {
		t.Fatalf("sweep interval = %d", cfg.Exams.SweepIntervalMinutes)
	}
	if cfg.Exams.MaxRetained != 0 {
		t.Fatalf("max retained = %d, expected unbounded default", cfg.Exams.MaxRetained)
	}
	if cfg.DonateURL != "https://example.test/coffee" {
		t.Fatalf("donate url = %q", cfg.DonateURL)
	}
}

func TestLoadConfigRequiresAdminID(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, "telegram:\n  token: \"123:abc\"\n"))
	if err == nil || !strings.Contains(err.Error(), "admin_id") {
		t.Fatalf("expected admin_id error, got %v", err)
	}
}

func TestLoadConfigRejectsNegativeSweepInterval(t *testing.T) {
	body := strings.Replace(validConfig, "sweep_interval_minutes: 60", "sweep_interval_minutes: -5", 1)
	_, err := LoadConfig(writeConfig(t, body))
	if err == nil || !strings.Contains(err.Error(), "sweep_interval_minutes") {
		t.Fatalf("expected sweep interval error, got %v", err)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
