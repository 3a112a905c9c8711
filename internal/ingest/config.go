// File path: internal/ingest/config.go
package ingest

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"
)

const defaultTimeout = 15 * time.Second

// Config locates the retrieval backend that serves assembled chart
// summaries.
type Config struct {
	Endpoint string `json:"endpoint"`
	APIKey   string `json:"api_key"`

	Timeout       time.Duration `json:"-"`
	TimeoutString string        `json:"timeout"`
}

func (c Config) Merge(override Config) Config {
	result := c
	if strings.TrimSpace(override.Endpoint) != "" {
		result.Endpoint = strings.TrimSpace(override.Endpoint)
	}
	if strings.TrimSpace(override.APIKey) != "" {
		result.APIKey = override.APIKey
	}
	if override.Timeout > 0 {
		result.Timeout = override.Timeout
	}
	if strings.TrimSpace(override.TimeoutString) != "" {
		result.TimeoutString = strings.TrimSpace(override.TimeoutString)
	}
	return result
}

// LoadConfig resolves the backend location from an optional JSON config file
// (RAG_CONFIG_FILE) overlaid with RAG_ENDPOINT / RAG_API_KEY / RAG_TIMEOUT
// environment variables. An empty endpoint means no backend is configured.
func LoadConfig() (Config, error) {
	cfg := Config{}
	if path := strings.TrimSpace(os.Getenv("RAG_CONFIG_FILE")); path != "" {
		fileCfg, err := loadConfigFile(path)
		if err != nil {
			return Config{}, err
		}
		cfg = cfg.Merge(fileCfg)
	}
	cfg = cfg.Merge(Config{
		Endpoint:      os.Getenv("RAG_ENDPOINT"),
		APIKey:        os.Getenv("RAG_API_KEY"),
		TimeoutString: os.Getenv("RAG_TIMEOUT"),
	})
	if strings.TrimSpace(cfg.TimeoutString) != "" {
		timeout, err := time.ParseDuration(cfg.TimeoutString)
		if err != nil {
			return Config{}, fmt.Errorf("invalid rag timeout %q: %w", cfg.TimeoutString, err)
		}
		cfg.Timeout = timeout
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	return cfg, nil
}

func loadConfigFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read rag config: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse rag config: %w", err)
	}
	return cfg, nil
}
