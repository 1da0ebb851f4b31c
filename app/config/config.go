package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Config holds the process-wide settings read once at startup. It is built
// by Load and passed to components explicitly; nothing mutates it afterwards.
type Config struct {
	Port          int    `json:"PORT"`
	SiteURL       string `json:"SITE_URL"`
	AdminUser     string `json:"ADMIN_USER"`
	AdminPassHash string `json:"ADMIN_PASS_HASH"`
	SessionSecret string `json:"SESSION_SECRET"`

	// DataPath is where the posts collection lives. Not part of config.json;
	// it defaults next to the config file unless overridden for tests.
	DataPath string `json:"-"`
	// SessionDBPath is the Badger directory for server-side sessions.
	SessionDBPath string `json:"-"`
}

// Load reads the JSON config file at path and applies the same defaults the
// service has always shipped with.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config okunamadı: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config çözümlenemedi: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Port == 0 {
		c.Port = 3000
	}
	if c.SiteURL == "" {
		c.SiteURL = fmt.Sprintf("http://localhost:%d", c.Port)
	}
	if c.AdminUser == "" {
		c.AdminUser = "halil"
	}
	if c.SessionSecret == "" {
		c.SessionSecret = "DEGISIN"
	}
	if c.DataPath == "" {
		c.DataPath = "server/posts.json"
	}
	if c.SessionDBPath == "" {
		c.SessionDBPath = "data/sessions"
	}
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
