package domain

import "time"

// Config represents the minimal linkledger configuration loaded from
// linkledger.yaml.
type Config struct {
	HTTP  HTTPConfig
	Paths PathsConfig
}

type HTTPConfig struct {
	// TimeoutSeconds bounds the whole fetch of a web document.
	TimeoutSeconds int
	// MaxBodyBytes bounds how much of a response body is read.
	MaxBodyBytes int64
}

func (c HTTPConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

type PathsConfig struct {
	LedgersDir string
	ReportsDir string
}

// DefaultConfig provides sane defaults if linkledger.yaml is partially
// missing.
func DefaultConfig() Config {
	return Config{
		HTTP: HTTPConfig{
			TimeoutSeconds: 30,
			MaxBodyBytes:   1 << 20, // 1MB
		},
		Paths: PathsConfig{
			LedgersDir: "ledgers",
			ReportsDir: "reports",
		},
	}
}
