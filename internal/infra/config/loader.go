// Package config loads the workspace configuration from linkledger.yaml.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/srazash/linkledger/internal/domain"
)

// Load reads linkledger.yaml under root. A missing file yields the default
// configuration; a present but malformed file is an error.
func Load(root string) (domain.Config, error) {
	path := filepath.Join(root, "linkledger.yaml")

	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.DefaultConfig(), nil
		}
		return domain.Config{}, &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	var dto yamlConfig
	if err := yaml.Unmarshal(b, &dto); err != nil {
		return domain.Config{}, &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return mapConfig(dto), nil
}

type yamlConfig struct {
	HTTP struct {
		TimeoutSeconds int   `yaml:"timeout_seconds"`
		MaxBodyBytes   int64 `yaml:"max_body_bytes"`
	} `yaml:"http"`
	Paths struct {
		LedgersDir string `yaml:"ledgers_dir"`
		ReportsDir string `yaml:"reports_dir"`
	} `yaml:"paths"`
}

// mapConfig overlays the DTO onto the defaults so partial files stay valid.
func mapConfig(dto yamlConfig) domain.Config {
	cfg := domain.DefaultConfig()

	if dto.HTTP.TimeoutSeconds > 0 {
		cfg.HTTP.TimeoutSeconds = dto.HTTP.TimeoutSeconds
	}
	if dto.HTTP.MaxBodyBytes > 0 {
		cfg.HTTP.MaxBodyBytes = dto.HTTP.MaxBodyBytes
	}
	if dir := strings.TrimSpace(dto.Paths.LedgersDir); dir != "" {
		cfg.Paths.LedgersDir = dir
	}
	if dir := strings.TrimSpace(dto.Paths.ReportsDir); dir != "" {
		cfg.Paths.ReportsDir = dir
	}

	return cfg
}
