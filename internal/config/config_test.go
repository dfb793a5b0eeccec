package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

const minimalConfig = `
[store]
url = "https://example.com/exec"

[whatsapp]
admin_phone = "94701362527"
`

func TestLoadAppliesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, minimalConfig))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Server.Addr != ":8080" {
		t.Fatalf("addr = %q", cfg.Server.Addr)
	}
	if cfg.Store.Timeout != 30 || cfg.Store.SyncTimeout != 30 {
		t.Fatalf("store timeouts = %d/%d", cfg.Store.Timeout, cfg.Store.SyncTimeout)
	}
	if cfg.Assistant.Model == "" || cfg.Assistant.BaseURL == "" {
		t.Fatalf("assistant defaults missing: %+v", cfg.Assistant)
	}
	if cfg.Metrics.Path != "/metrics" {
		t.Fatalf("metrics path = %q", cfg.Metrics.Path)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("APP_ADDR", ":9090")
	t.Setenv("SHEET_URL", "https://override.example/exec")
	t.Setenv("GEMINI_API_KEY", "secret-key")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://laganbus.lk, https://www.laganbus.lk")

	cfg, err := Load(writeConfig(t, minimalConfig))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Server.Addr != ":9090" {
		t.Fatalf("addr override ignored: %q", cfg.Server.Addr)
	}
	if cfg.Store.URL != "https://override.example/exec" {
		t.Fatalf("store url override ignored: %q", cfg.Store.URL)
	}
	if cfg.Assistant.APIKey != "secret-key" {
		t.Fatalf("api key not read from env")
	}
	if len(cfg.CORS.AllowedOrigins) != 2 || cfg.CORS.AllowedOrigins[1] != "https://www.laganbus.lk" {
		t.Fatalf("cors origins = %v", cfg.CORS.AllowedOrigins)
	}
}

func TestLoadRequiresStoreAndAdminPhone(t *testing.T) {
	if _, err := Load(writeConfig(t, `[store]`+"\n"+`url = ""`)); err == nil {
		t.Fatalf("missing store url accepted")
	}
	if _, err := Load(writeConfig(t, `[store]`+"\n"+`url = "https://x"`)); err == nil {
		t.Fatalf("missing admin phone accepted")
	}
}
