// Package config loads runtime configuration with env > default precedence.
// Environment variables use the MESHMCP prefix, with double underscores for
// nesting (MESHMCP_TTL__COMPONENTLISTSECONDS -> ttl.componentlistseconds).
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	meshmcp "github.com/lukeylias/MeshMCP"
)

// EnvPrefix is the prefix for environment variable overrides.
const EnvPrefix = "MESHMCP"

// Config is the runtime configuration.
type Config struct {
	BaseURL               string  `koanf:"baseurl"`
	DBPath                string  `koanf:"dbpath"`
	ListenAddr            string  `koanf:"listenaddr"`
	FallbackEnabled       bool    `koanf:"fallbackenabled"`
	ExtractTimeoutSeconds int     `koanf:"extracttimeoutseconds"`
	SweepIntervalSeconds  int     `koanf:"sweepintervalseconds"`
	TTL                   TTL     `koanf:"ttl"`
	Logging               Logging `koanf:"logging"`
}

// TTL holds per-namespace freshness windows in seconds.
type TTL struct {
	ComponentListSeconds   int `koanf:"componentlistseconds"`
	ComponentDetailSeconds int `koanf:"componentdetailseconds"`
	DesignTokensSeconds    int `koanf:"designtokensseconds"`
}

// Logging configures the slog handler.
type Logging struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		BaseURL:               "https://www.meshdesignsystem.com",
		DBPath:                "meshmcp.db",
		ListenAddr:            ":8000",
		FallbackEnabled:       true,
		ExtractTimeoutSeconds: 60,
		SweepIntervalSeconds:  300,
		TTL: TTL{
			ComponentListSeconds:   3600,
			ComponentDetailSeconds: 7200,
			DesignTokensSeconds:    7200,
		},
		Logging: Logging{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load assembles the effective configuration from defaults and environment
// overrides.
func Load() (Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(structToMap(Default()), "."), nil); err != nil {
		return Config{}, fmt.Errorf("config: load defaults: %w", err)
	}

	transform := func(s string) string {
		// Double underscores signal a nested path
		// (TTL__COMPONENTLISTSECONDS -> ttl.componentlistseconds).
		key := strings.TrimPrefix(s, EnvPrefix+"_")
		key = strings.ReplaceAll(key, "__", ".")
		key = strings.ReplaceAll(key, "_", "")
		return strings.ToLower(key)
	}
	if err := k.Load(env.Provider(EnvPrefix, ".", transform), nil); err != nil {
		return Config{}, fmt.Errorf("config: load env: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports configuration errors.
func (c Config) Validate() error {
	if c.BaseURL == "" {
		return meshmcp.Errorf(meshmcp.EINVALID, "baseurl must not be empty")
	}
	if c.DBPath == "" {
		return meshmcp.Errorf(meshmcp.EINVALID, "dbpath must not be empty")
	}
	if c.ExtractTimeoutSeconds <= 0 {
		return meshmcp.Errorf(meshmcp.EINVALID, "extracttimeoutseconds must be positive")
	}
	if c.SweepIntervalSeconds <= 0 {
		return meshmcp.Errorf(meshmcp.EINVALID, "sweepintervalseconds must be positive")
	}
	for _, ttl := range []int{c.TTL.ComponentListSeconds, c.TTL.ComponentDetailSeconds, c.TTL.DesignTokensSeconds} {
		if ttl <= 0 {
			return meshmcp.Errorf(meshmcp.EINVALID, "ttl values must be positive")
		}
	}
	return nil
}

// TTLs returns the per-namespace freshness windows.
func (c Config) TTLs() map[meshmcp.Namespace]time.Duration {
	return map[meshmcp.Namespace]time.Duration{
		meshmcp.NamespaceComponentList:   time.Duration(c.TTL.ComponentListSeconds) * time.Second,
		meshmcp.NamespaceComponentDetail: time.Duration(c.TTL.ComponentDetailSeconds) * time.Second,
		meshmcp.NamespaceDesignTokens:    time.Duration(c.TTL.DesignTokensSeconds) * time.Second,
	}
}

// ExtractTimeout returns the extraction deadline as a duration.
func (c Config) ExtractTimeout() time.Duration {
	return time.Duration(c.ExtractTimeoutSeconds) * time.Second
}

// SweepInterval returns the background sweep period as a duration.
func (c Config) SweepInterval() time.Duration {
	return time.Duration(c.SweepIntervalSeconds) * time.Second
}

// structToMap converts Default into a map for the koanf confmap provider.
func structToMap(cfg Config) map[string]any {
	return map[string]any{
		"baseurl":               cfg.BaseURL,
		"dbpath":                cfg.DBPath,
		"listenaddr":            cfg.ListenAddr,
		"fallbackenabled":       cfg.FallbackEnabled,
		"extracttimeoutseconds": cfg.ExtractTimeoutSeconds,
		"sweepintervalseconds":  cfg.SweepIntervalSeconds,
		"ttl": map[string]any{
			"componentlistseconds":   cfg.TTL.ComponentListSeconds,
			"componentdetailseconds": cfg.TTL.ComponentDetailSeconds,
			"designtokensseconds":    cfg.TTL.DesignTokensSeconds,
		},
		"logging": map[string]any{
			"level":  cfg.Logging.Level,
			"format": cfg.Logging.Format,
		},
	}
}
