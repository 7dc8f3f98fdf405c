// Package config loads server settings from defaults, an optional config
// file, ITEMSERVICE_* environment variables and command-line flags, in
// increasing order of precedence.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/erazemk/itemservice/internal/db"
	"github.com/erazemk/itemservice/internal/validation"
)

// EnvPrefix prefixes every environment variable, e.g. ITEMSERVICE_STORE_DRIVER.
const EnvPrefix = "ITEMSERVICE"

// DriverMemory keeps items in process memory.
const DriverMemory = "memory"

// Config is the full server configuration.
type Config struct {
	Addr       string           `mapstructure:"addr"`
	Store      StoreConfig      `mapstructure:"store"`
	Validation ValidationConfig `mapstructure:"validation"`
	Auth       AuthConfig       `mapstructure:"auth"`
	RateLimit  RateLimitConfig  `mapstructure:"ratelimit"`
	Log        LogConfig        `mapstructure:"log"`
}

// StoreConfig selects the item store.
type StoreConfig struct {
	Driver string `mapstructure:"driver"`
	DSN    string `mapstructure:"dsn"`
}

// ValidationConfig selects the validator strategy.
type ValidationConfig struct {
	Strategy string `mapstructure:"strategy"`
}

// AuthConfig configures the operator login. An empty PasswordHash leaves
// every page open.
type AuthConfig struct {
	Username     string `mapstructure:"username"`
	PasswordHash string `mapstructure:"password_hash"`
	JWTSecret    string `mapstructure:"jwt_secret"`
}

// RateLimitConfig limits form and API submissions per client. RPS 0 turns
// the limiter off.
type RateLimitConfig struct {
	RPS   float64 `mapstructure:"rps"`
	Burst int     `mapstructure:"burst"`
}

// LogConfig configures logging.
type LogConfig struct {
	Path string `mapstructure:"path"`
}

// SetDefaults registers the default value of every key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("addr", ":8080")
	v.SetDefault("store.driver", DriverMemory)
	v.SetDefault("store.dsn", "itemservice.sqlite3")
	v.SetDefault("validation.strategy", validation.StrategyTagged)
	v.SetDefault("auth.username", "admin")
	v.SetDefault("auth.password_hash", "")
	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("ratelimit.rps", 5.0)
	v.SetDefault("ratelimit.burst", 10)
	v.SetDefault("log.path", "")
}

// flagKeys maps command-line flags to config keys.
var flagKeys = map[string]string{
	"addr":       "addr",
	"store":      "store.driver",
	"dsn":        "store.dsn",
	"validation": "validation.strategy",
	"log":        "log.path",
}

// RegisterFlags adds the server flags to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.StringP("addr", "a", ":8080", "listen address")
	fs.String("store", DriverMemory, "item store: memory, sqlite or postgres")
	fs.String("dsn", "itemservice.sqlite3", "database path (sqlite) or connection string (postgres)")
	fs.String("validation", validation.StrategyTagged, "validation strategy: tagged or manual")
	fs.StringP("log", "l", "", "log file path (default: stdout/stderr only)")
}

// BindFlags makes the flags registered by RegisterFlags override other sources.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("binding flag %s: %w", name, err)
		}
	}
	return nil
}

// Load reads the configuration. configFile may be empty.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that the configuration can be used to start a server.
func (c *Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("addr must not be empty")
	}

	switch c.Store.Driver {
	case DriverMemory:
	case db.DriverSQLite, db.DriverPostgres:
		if c.Store.DSN == "" {
			return fmt.Errorf("store.dsn is required for driver %q", c.Store.Driver)
		}
	default:
		return fmt.Errorf("unknown store driver %q", c.Store.Driver)
	}

	switch c.Validation.Strategy {
	case validation.StrategyManual, validation.StrategyTagged:
	default:
		return fmt.Errorf("unknown validation strategy %q", c.Validation.Strategy)
	}

	if c.Auth.PasswordHash != "" && c.Auth.Username == "" {
		return fmt.Errorf("auth.username is required when auth.password_hash is set")
	}

	if c.RateLimit.RPS < 0 || c.RateLimit.Burst < 0 {
		return fmt.Errorf("ratelimit values must not be negative")
	}

	return nil
}
