package main

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/pdiddy/wiktitrage/internal/instance"
	"github.com/pdiddy/wiktitrage/pkg/types"
)

const (
	defaultTimeout    = 10 * time.Second
	defaultMaxRetries = 3
	defaultCountdown  = 7
	defaultInterval   = time.Second
	defaultLines      = 3
)

// setDefaults registers every configuration key so that environment
// variables are picked up by Unmarshal.
func setDefaults(v *viper.Viper) {
	v.SetDefault("language", "fr")
	v.SetDefault("endpoint", "")
	v.SetDefault("user_agent", userAgent())
	v.SetDefault("timeout", defaultTimeout)
	v.SetDefault("max_retries", defaultMaxRetries)
	v.SetDefault("markers.etymology", "")
	v.SetDefault("markers.missing", "")

	v.SetDefault("countdown", defaultCountdown)
	v.SetDefault("interval", defaultInterval)
	v.SetDefault("lines", defaultLines)
	v.SetDefault("width", 0)
	v.SetDefault("lock_file", instance.DefaultPath())

	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "text")
}

// loadConfig decodes and validates the merged configuration.
func loadConfig(v *viper.Viper) (types.Config, error) {
	var cfg types.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return types.Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if cfg.Source.UserAgent == "" {
		cfg.Source.UserAgent = userAgent()
	}
	if err := cfg.Validate(); err != nil {
		return types.Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
