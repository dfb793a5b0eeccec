package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config is built once at startup and passed explicitly into the router and
// services. Nothing reads it through package globals.
type Config struct {
	Server    Server    `toml:"server"`
	Store     Store     `toml:"store"`
	Assistant Assistant `toml:"assistant"`
	WhatsApp  WhatsApp  `toml:"whatsapp"`
	Metrics   Metrics   `toml:"metrics"`
	CORS      CORS      `toml:"cors"`

	GinMode string `toml:"-"`
}

type Server struct {
	Addr            string `toml:"addr"`
	ReadTimeout     int    `toml:"read_timeout_seconds"`
	WriteTimeout    int    `toml:"write_timeout_seconds"`
	IdleTimeout     int    `toml:"idle_timeout_seconds"`
	ShutdownTimeout int    `toml:"shutdown_timeout_seconds"`
}

// Store points at the spreadsheet-backed record endpoint.
type Store struct {
	URL         string `toml:"url"`
	Timeout     int    `toml:"timeout_seconds"`
	SyncTimeout int    `toml:"sync_timeout_seconds"`
}

type Assistant struct {
	BaseURL string `toml:"base_url"`
	Model   string `toml:"model"`
	Timeout int    `toml:"timeout_seconds"`
	APIKey  string `toml:"-"`
}

type WhatsApp struct {
	AdminPhone string `toml:"admin_phone"`
}

type Metrics struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`
}

type CORS struct {
	AllowedOrigins []string `toml:"allowed_origins"`
}

// Load reads the TOML file, then applies .env / environment overrides.
// Secrets (the assistant API key) never live in the file.
func Load(path string) (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if v := strings.TrimSpace(os.Getenv("APP_ADDR")); v != "" {
		cfg.Server.Addr = v
	}
	if v := strings.TrimSpace(os.Getenv("SHEET_URL")); v != "" {
		cfg.Store.URL = v
	}
	if v := strings.TrimSpace(os.Getenv("ADMIN_PHONE")); v != "" {
		cfg.WhatsApp.AdminPhone = v
	}
	if v := strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS")); v != "" {
		cfg.CORS.AllowedOrigins = splitCSV(v)
	}
	cfg.Assistant.APIKey = strings.TrimSpace(os.Getenv("GEMINI_API_KEY"))
	cfg.GinMode = strings.TrimSpace(os.Getenv("GIN_MODE"))

	cfg.applyDefaults()

	if strings.TrimSpace(cfg.Store.URL) == "" {
		return Config{}, fmt.Errorf("config: store.url is required")
	}
	if strings.TrimSpace(cfg.WhatsApp.AdminPhone) == "" {
		return Config{}, fmt.Errorf("config: whatsapp.admin_phone is required")
	}

	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Server.ReadTimeout <= 0 {
		c.Server.ReadTimeout = 20
	}
	if c.Server.WriteTimeout <= 0 {
		c.Server.WriteTimeout = 20
	}
	if c.Server.IdleTimeout <= 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout <= 0 {
		c.Server.ShutdownTimeout = 10
	}
	if c.Store.Timeout <= 0 {
		c.Store.Timeout = 30
	}
	if c.Store.SyncTimeout <= 0 {
		c.Store.SyncTimeout = c.Store.Timeout
	}
	if c.Assistant.BaseURL == "" {
		c.Assistant.BaseURL = "https://generativelanguage.googleapis.com"
	}
	if c.Assistant.Model == "" {
		c.Assistant.Model = "gemini-2.0-flash"
	}
	if c.Assistant.Timeout <= 0 {
		c.Assistant.Timeout = 30
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
}

// StoreTimeout is the per-request budget for store reads.
func (c Config) StoreTimeout() time.Duration {
	return time.Duration(c.Store.Timeout) * time.Second
}

// StoreSyncTimeout bounds the background write dispatched at submit time.
func (c Config) StoreSyncTimeout() time.Duration {
	return time.Duration(c.Store.SyncTimeout) * time.Second
}

func (c Config) AssistantTimeout() time.Duration {
	return time.Duration(c.Assistant.Timeout) * time.Second
}

func splitCSV(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
