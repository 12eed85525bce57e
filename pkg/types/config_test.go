package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validConfig() Config {
	return Config{
		Source:  SourceConfig{Language: "fr"},
		Session: SessionConfig{Countdown: 7, Interval: time.Second, Lines: 3},
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{"defaults are valid", func(*Config) {}, ""},
		{"zero countdown", func(c *Config) { c.Session.Countdown = 0 }, "countdown"},
		{"zero interval", func(c *Config) { c.Session.Interval = 0 }, "interval"},
		{"zero lines", func(c *Config) { c.Session.Lines = 0 }, "lines"},
		{"negative width", func(c *Config) { c.Session.Width = -1 }, "width"},
		{"no language nor endpoint", func(c *Config) { c.Source.Language = "" }, "language"},
		{"endpoint without language", func(c *Config) {
			c.Source.Language = ""
			c.Source.Endpoint = "http://localhost/w/api.php"
		}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.errMsg == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.errMsg)
		})
	}
}
