package store

import (
	"os"
	"strconv"
	"time"

	"github.com/borgmon/kitchen-timer/pkg/logger"
	"github.com/borgmon/kitchen-timer/pkg/models"
	"github.com/joho/godotenv"
)

// Environment overrides, read after the saved preferences
const (
	EnvSound       = "KITCHEN_TIMER_SOUND"
	EnvTick        = "KITCHEN_TIMER_TICK"
	EnvHoldSeconds = "KITCHEN_TIMER_HOLD_SECONDS"
)

// LoadDotEnv loads a .env file (or the given files) into the environment.
// A missing file is only a warning.
func LoadDotEnv(log logger.Logger, files ...string) {
	if err := godotenv.Load(files...); err != nil {
		log.Warning("Error loading .env file: %v", err)
	}
}

// ApplyEnv overrides cfg with any KITCHEN_TIMER_* variables that are set.
// Unparseable values are logged and ignored.
func ApplyEnv(cfg *models.Config, log logger.Logger) {
	if v := os.Getenv(EnvSound); v != "" {
		cfg.SoundPath = v
	}

	if v := os.Getenv(EnvTick); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			log.Warning("Ignoring %s=%q: not a positive duration", EnvTick, v)
		} else {
			cfg.TickInterval = d
		}
	}

	if v := os.Getenv(EnvHoldSeconds); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			log.Warning("Ignoring %s=%q: not a non-negative integer", EnvHoldSeconds, v)
		} else {
			cfg.HoldTimeSeconds = n
		}
	}
}
