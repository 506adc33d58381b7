package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

type LLMConfig struct {
	Provider string `toml:"provider"`
	Model    string `toml:"model"`
	APIKey   string `toml:"api_key"`
	BaseURL  string `toml:"base_url"`
}

type StorageConfig struct {
	SQLitePath string `toml:"sqlite_path"`
}

type SearchConfig struct {
	GoogleAPIKey string `toml:"google_api_key"`
	GoogleCX     string `toml:"google_cx"`
}

type CalendarConfig struct {
	// Provider is "local" (in-memory, default) or "google".
	Provider        string `toml:"provider"`
	CredentialsPath string `toml:"credentials_path"`
	CalendarID      string `toml:"calendar_id"`
}

type ServerConfig struct {
	Port string `toml:"port"`
}

type Config struct {
	Server   ServerConfig   `toml:"server"`
	LLM      LLMConfig      `toml:"llm"`
	Storage  StorageConfig  `toml:"storage"`
	Search   SearchConfig   `toml:"search"`
	Calendar CalendarConfig `toml:"calendar"`
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// Default returns a config suitable for running without a config file,
// relying entirely on environment overrides.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Server.Port == "" {
		c.Server.Port = "8080"
	}
	if c.Storage.SQLitePath == "" {
		c.Storage.SQLitePath = "data/memory.db"
	}
	if c.Calendar.Provider == "" {
		c.Calendar.Provider = "local"
	}
	if c.Calendar.CalendarID == "" {
		c.Calendar.CalendarID = "primary"
	}
}

// ApplyEnvOverrides lets deployment environments override file config
// without editing the TOML.
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("PORT"); v != "" {
		c.Server.Port = v
	}
	if v := os.Getenv("LLM_PROVIDER"); v != "" {
		c.LLM.Provider = v
	}
	if v := os.Getenv("LLM_MODEL"); v != "" {
		c.LLM.Model = v
	}
	if v := os.Getenv("LLM_API_KEY"); v != "" {
		c.LLM.APIKey = v
	}
	if v := os.Getenv("LLM_BASE_URL"); v != "" {
		c.LLM.BaseURL = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		c.Storage.SQLitePath = v
	}
	if v := os.Getenv("GOOGLE_SEARCH_API_KEY"); v != "" {
		c.Search.GoogleAPIKey = v
	}
	if v := os.Getenv("GOOGLE_SEARCH_CX"); v != "" {
		c.Search.GoogleCX = v
	}
}
