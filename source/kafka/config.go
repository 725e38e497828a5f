package kafka

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type ThrottleCfg struct {
	RateBytes int64         `koanf:"rate_bytes"` // budget added per tick, 0 = unthrottled
	Burst     int64         `koanf:"burst"`      // bucket capacity
	Tick      time.Duration `koanf:"tick"`
}

type CommitCfg struct {
	Interval time.Duration `koanf:"interval"` // offset flush cadence
}

type Config struct {
	Brokers   []string `koanf:"brokers"`
	Topics    []string `koanf:"topics"`
	GroupID   string   `koanf:"group_id"`
	StartFrom string   `koanf:"start_from"` // oldest|newest (default newest)
	Version   string   `koanf:"version"`
	TLSEn     bool     `koanf:"tls_enabled"`
	SASLUser  string   `koanf:"sasl_user"`
	SASLPass  string   `koanf:"sasl_pass"`

	Throttle ThrottleCfg `koanf:"throttle"`
	Commit   CommitCfg   `koanf:"commit"`
}

// LoadConfig merges YAML (if present) with env-vars
// (prefix `SLUICE_KAFKA__`, delimiter `__`).
func LoadConfig(path string) (Config, error) {
	k := koanf.New(".")
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil &&
			!errors.Is(err, fs.ErrNotExist) {
			return Config{}, err
		}
	}
	// schema version check (only when YAML is present)
	sv := k.String("schema_version")
	if sv != "" && sv != "v1" {
		return Config{}, fmt.Errorf("kafka schema_version %q not supported (want v1)", sv)
	}

	_ = k.Load(env.Provider("SLUICE_KAFKA__", "__", nil), nil)

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return cfg, err
	}
	applyDefaults(&cfg)
	return cfg, nil
}

func applyDefaults(c *Config) {
	if c.Throttle.RateBytes > 0 {
		if c.Throttle.Burst == 0 {
			c.Throttle.Burst = c.Throttle.RateBytes
		}
		if c.Throttle.Tick == 0 {
			c.Throttle.Tick = 100 * time.Millisecond
		}
	}
	if c.Commit.Interval == 0 {
		c.Commit.Interval = 5 * time.Second
	}
	if c.StartFrom == "" {
		c.StartFrom = "newest"
	}
}
