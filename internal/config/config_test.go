package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(viper.New(), "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Addr != ":8080" {
		t.Errorf("expected addr ':8080', got %q", cfg.Addr)
	}
	if cfg.Store.Driver != DriverMemory {
		t.Errorf("expected memory store, got %q", cfg.Store.Driver)
	}
	if cfg.Validation.Strategy != "tagged" {
		t.Errorf("expected tagged validation, got %q", cfg.Validation.Strategy)
	}
	if cfg.Auth.PasswordHash != "" {
		t.Error("expected auth to be disabled by default")
	}
	if cfg.RateLimit.RPS != 5 || cfg.RateLimit.Burst != 10 {
		t.Errorf("unexpected rate limit %+v", cfg.RateLimit)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("ITEMSERVICE_STORE_DRIVER", "sqlite")
	t.Setenv("ITEMSERVICE_VALIDATION_STRATEGY", "manual")
	t.Setenv("ITEMSERVICE_RATELIMIT_RPS", "0")

	cfg, err := Load(viper.New(), "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Store.Driver != "sqlite" {
		t.Errorf("expected sqlite driver, got %q", cfg.Store.Driver)
	}
	if cfg.Validation.Strategy != "manual" {
		t.Errorf("expected manual strategy, got %q", cfg.Validation.Strategy)
	}
	if cfg.RateLimit.RPS != 0 {
		t.Errorf("expected rps 0, got %v", cfg.RateLimit.RPS)
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "itemservice.yaml")
	content := "addr: \":9090\"\nauth:\n  username: shop\n  password_hash: \"$2a$10$abc\"\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(viper.New(), path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Addr != ":9090" {
		t.Errorf("expected addr ':9090', got %q", cfg.Addr)
	}
	if cfg.Auth.Username != "shop" || cfg.Auth.PasswordHash != "$2a$10$abc" {
		t.Errorf("unexpected auth config %+v", cfg.Auth)
	}
}

func TestLoadMissingConfigFile(t *testing.T) {
	if _, err := Load(viper.New(), filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestFlagsOverrideEnv(t *testing.T) {
	t.Setenv("ITEMSERVICE_ADDR", ":7000")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	if err := fs.Parse([]string{"--addr", ":6000", "--validation", "manual"}); err != nil {
		t.Fatalf("parsing flags: %v", err)
	}

	v := viper.New()
	if err := BindFlags(v, fs); err != nil {
		t.Fatalf("BindFlags: %v", err)
	}
	cfg, err := Load(v, "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Addr != ":6000" {
		t.Errorf("expected flag value ':6000', got %q", cfg.Addr)
	}
	if cfg.Validation.Strategy != "manual" {
		t.Errorf("expected manual strategy, got %q", cfg.Validation.Strategy)
	}
}

func TestValidate(t *testing.T) {
	base := func() Config {
		return Config{
			Addr:       ":8080",
			Store:      StoreConfig{Driver: DriverMemory},
			Validation: ValidationConfig{Strategy: "tagged"},
			Auth:       AuthConfig{Username: "admin"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"empty addr", func(c *Config) { c.Addr = "" }, true},
		{"unknown driver", func(c *Config) { c.Store.Driver = "mongo" }, true},
		{"sqlite without dsn", func(c *Config) { c.Store.Driver = "sqlite" }, true},
		{"postgres with dsn", func(c *Config) { c.Store = StoreConfig{Driver: "postgres", DSN: "postgres://x"} }, false},
		{"unknown strategy", func(c *Config) { c.Validation.Strategy = "magic" }, true},
		{"hash without username", func(c *Config) { c.Auth = AuthConfig{PasswordHash: "h"} }, true},
		{"negative burst", func(c *Config) { c.RateLimit.Burst = -1 }, true},
	}

	for _, tt := range tests {
		c := base()
		tt.mutate(&c)
		err := c.Validate()
		if (err != nil) != tt.wantErr {
			t.Errorf("%s: Validate() error = %v, wantErr %v", tt.name, err, tt.wantErr)
		}
	}
}
