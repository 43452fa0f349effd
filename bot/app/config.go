package app

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	coreconfig "github.com/m3rciful/classbot/core/config"
)

// DataConfig locates the persisted collections and stored submissions.
type DataConfig struct {
	Dir            string `yaml:"dir" envconfig:"DATA_DIR"`
	UsersFile      string `yaml:"users_file"`
	ExamsFile      string `yaml:"exams_file"`
	FilesFile      string `yaml:"files_file"`
	SubmissionsDir string `yaml:"submissions_dir" envconfig:"SUBMISSIONS_DIR"`
}

// ExamsConfig tunes exam retention and expiry sweeping.
type ExamsConfig struct {
	// SweepIntervalMinutes defines how often expired exams are pruned; 0 -> hourly.
	SweepIntervalMinutes int `yaml:"sweep_interval_minutes" envconfig:"EXAM_SWEEP_INTERVAL_MINUTES"`
	// MaxRetained caps the exam collection; 0 keeps unbounded history.
	MaxRetained int `yaml:"max_retained" envconfig:"EXAM_MAX_RETAINED"`
}

// KeepAliveConfig configures the optional keep-alive HTTP listener.
type KeepAliveConfig struct {
	Listen string `yaml:"listen" envconfig:"KEEPALIVE_LISTEN"`
}

// Config aggregates the core bot configuration with the class-assistant
// specific settings.
type Config struct {
	Core      coreconfig.Config `yaml:",inline"`
	Data      DataConfig        `yaml:"data"`
	Exams     ExamsConfig       `yaml:"exams"`
	KeepAlive KeepAliveConfig   `yaml:"keepalive"`
	DonateURL string            `yaml:"donate_url" envconfig:"DONATE_URL"`
}

// CoreConfig exposes the embedded core configuration for the cmd runner.
func (c *Config) CoreConfig() *coreconfig.Config {
	return &c.Core
}

// LoadConfig reads configuration from a YAML file and environment variables.
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML config: %w", err)
	}
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process env: %w", err)
	}

	if err := coreconfig.Normalize(&cfg.Core); err != nil {
		return nil, err
	}
	if cfg.Core.Telegram.AdminID == 0 {
		return nil, fmt.Errorf("telegram.admin_id is required")
	}
	if cfg.Exams.SweepIntervalMinutes < 0 {
		return nil, fmt.Errorf("exams.sweep_interval_minutes must be >= 0")
	}
	if cfg.Exams.MaxRetained < 0 {
		return nil, fmt.Errorf("exams.max_retained must be >= 0")
	}
	return &cfg, nil
}
