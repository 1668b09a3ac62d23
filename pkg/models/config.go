package models

import "time"

// Config holds application configuration.
// Timer items are never part of it; only user preferences are persisted.
type Config struct {
	AutoStart       bool          `json:"auto_start"`        // launch at login
	HoldTimeSeconds int           `json:"hold_time_seconds"` // dismiss button hold time
	SoundPath       string        `json:"sound_path"`        // custom WAV, empty for the built-in bell
	FullScreenAlert bool          `json:"full_screen_alert"` // alert window covers the screen
	TickInterval    time.Duration `json:"tick_interval"`     // length of one clock second
}

// DefaultTickInterval is one real second per clock second
const DefaultTickInterval = time.Second

// DefaultConfig returns the configuration used on first launch
func DefaultConfig() *Config {
	return &Config{
		AutoStart:       false,
		HoldTimeSeconds: 2,
		FullScreenAlert: false,
		TickInterval:    DefaultTickInterval,
	}
}

// Normalize replaces out-of-range values with defaults
func (c *Config) Normalize() {
	if c.HoldTimeSeconds < 0 {
		c.HoldTimeSeconds = 0
	}
	if c.TickInterval <= 0 {
		c.TickInterval = DefaultTickInterval
	}
}

// UsesBuiltInSound returns true when no custom alert sound is configured
func (c *Config) UsesBuiltInSound() bool {
	return c.SoundPath == ""
}
