package types

import (
	"fmt"
	"time"
)

// HTTPConfig holds shared HTTP settings used by the Article Source.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "wiktitrage/0.3.0"). Wikimedia rejects requests without one.
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`

	// MaxRetries is the number of retries on HTTP 429 and 5xx (default 3).
	MaxRetries int `json:"max_retries" yaml:"max_retries" mapstructure:"max_retries"`
}

// MarkerConfig overrides the section markers the parser matches. Empty
// fields keep the French Wiktionary defaults.
type MarkerConfig struct {
	// Etymology is the exact etymology subsection heading line.
	Etymology string `json:"etymology" yaml:"etymology" mapstructure:"etymology"`

	// Missing is the placeholder prefix of an empty etymology paragraph.
	Missing string `json:"missing" yaml:"missing" mapstructure:"missing"`
}

// SourceConfig holds settings for the Article Source.
type SourceConfig struct {
	HTTPConfig `yaml:",inline" mapstructure:",squash"`

	// Language selects the Wiktionary edition (default "fr").
	Language string `json:"language" yaml:"language" mapstructure:"language"`

	// Endpoint overrides the api.php URL derived from Language.
	Endpoint string `json:"endpoint,omitempty" yaml:"endpoint,omitempty" mapstructure:"endpoint"`

	// Markers overrides the parser's section markers.
	Markers MarkerConfig `json:"markers" yaml:"markers" mapstructure:"markers"`
}

// SessionConfig holds settings for the rotation session.
type SessionConfig struct {
	// Countdown is the number of ticks before the session expires (default 7).
	Countdown int `json:"countdown" yaml:"countdown" mapstructure:"countdown"`

	// Interval is the wall-clock duration of one tick (default 1s).
	Interval time.Duration `json:"interval" yaml:"interval" mapstructure:"interval"`

	// Lines is the number of visible display lines (default 3).
	Lines int `json:"lines" yaml:"lines" mapstructure:"lines"`

	// Width is the display width in columns; 0 uses the terminal width.
	Width int `json:"width" yaml:"width" mapstructure:"width"`

	// LockFile is the single-instance lock path.
	LockFile string `json:"lock_file" yaml:"lock_file" mapstructure:"lock_file"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	// Level is one of debug, info, warn, error (default warn).
	Level string `json:"level" yaml:"level" mapstructure:"level"`

	// Format is "text" or "json" (default text).
	Format string `json:"format" yaml:"format" mapstructure:"format"`
}

// Config groups all wiktitrage settings.
type Config struct {
	Source  SourceConfig  `json:"source" yaml:"source" mapstructure:",squash"`
	Session SessionConfig `json:"session" yaml:"session" mapstructure:",squash"`
	Log     LogConfig     `json:"log" yaml:"log" mapstructure:"log"`
}

// Validate reports the first setting that cannot drive a session.
func (c Config) Validate() error {
	if c.Session.Countdown < 1 {
		return fmt.Errorf("countdown must be at least 1, got %d", c.Session.Countdown)
	}
	if c.Session.Interval <= 0 {
		return fmt.Errorf("interval must be positive, got %v", c.Session.Interval)
	}
	if c.Session.Lines < 1 {
		return fmt.Errorf("lines must be at least 1, got %d", c.Session.Lines)
	}
	if c.Session.Width < 0 {
		return fmt.Errorf("width must not be negative, got %d", c.Session.Width)
	}
	if c.Source.Language == "" && c.Source.Endpoint == "" {
		return fmt.Errorf("language or endpoint is required")
	}
	return nil
}
