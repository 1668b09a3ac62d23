package store

import (
	"time"

	"fyne.io/fyne/v2"
	"github.com/borgmon/kitchen-timer/pkg/models"
)

// Preference keys
const (
	prefAutoStart       = "auto_start"
	prefHoldTimeSeconds = "hold_time_seconds"
	prefSoundPath       = "sound_path"
	prefFullScreenAlert = "full_screen_alert"
	prefTickIntervalMs  = "tick_interval_ms"
)

// ConfigStore handles configuration persistence using Fyne preferences
type ConfigStore struct {
	prefs fyne.Preferences
}

// NewConfigStore creates a new ConfigStore instance
func NewConfigStore(app fyne.App) *ConfigStore {
	return &ConfigStore{prefs: app.Preferences()}
}

// Load loads configuration from preferences
func (cs *ConfigStore) Load() *models.Config {
	defaults := models.DefaultConfig()

	config := &models.Config{
		AutoStart:       cs.prefs.BoolWithFallback(prefAutoStart, defaults.AutoStart),
		HoldTimeSeconds: cs.prefs.IntWithFallback(prefHoldTimeSeconds, defaults.HoldTimeSeconds),
		SoundPath:       cs.prefs.StringWithFallback(prefSoundPath, defaults.SoundPath),
		FullScreenAlert: cs.prefs.BoolWithFallback(prefFullScreenAlert, defaults.FullScreenAlert),
		TickInterval: time.Duration(cs.prefs.IntWithFallback(prefTickIntervalMs,
			int(defaults.TickInterval/time.Millisecond))) * time.Millisecond,
	}
	config.Normalize()
	return config
}

// Save saves configuration to preferences
func (cs *ConfigStore) Save(config *models.Config) {
	cs.prefs.SetBool(prefAutoStart, config.AutoStart)
	cs.prefs.SetInt(prefHoldTimeSeconds, config.HoldTimeSeconds)
	cs.prefs.SetString(prefSoundPath, config.SoundPath)
	cs.prefs.SetBool(prefFullScreenAlert, config.FullScreenAlert)
	cs.prefs.SetInt(prefTickIntervalMs, int(config.TickInterval/time.Millisecond))
}
