package audio

import (
	"context"
	"fmt"
	"os"

	"github.com/borgmon/kitchen-timer/pkg/logger"
	"github.com/borgmon/kitchen-timer/pkg/models"
)

// Stopper ends a sound that is still playing
type Stopper interface {
	Stop()
}

type nopStopper struct{}

func (nopStopper) Stop() {}

// Sounder turns an alert into sound
type Sounder interface {
	Play(alert models.Alert) Stopper
}

// SoundBank plays one sound for every alert: once for an item start,
// looped until stopped for the finish alert.
type SoundBank struct {
	sound *Sound
	log   logger.Logger
}

// NewSoundBank uses sound, or the built-in bell when sound is nil
func NewSoundBank(sound *Sound, log logger.Logger) *SoundBank {
	if sound == nil {
		sound = Bell()
	}
	if log == nil {
		log = logger.NewNopLogger()
	}
	return &SoundBank{sound: sound, log: log}
}

// LoadSoundBank reads a WAV file. An empty path selects the built-in bell.
func LoadSoundBank(path string, log logger.Logger) (*SoundBank, error) {
	if path == "" {
		return NewSoundBank(nil, log), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read sound %s: %w", path, err)
	}
	sound, err := ParseWAV(data)
	if err != nil {
		return nil, fmt.Errorf("parse sound %s: %w", path, err)
	}
	return NewSoundBank(sound, log), nil
}

// Play starts the sound for alert
func (b *SoundBank) Play(alert models.Alert) Stopper {
	p, err := Play(b.sound, alert.IsTerminal(), b.log)
	if err != nil {
		b.log.Error("Failed to play alert sound: %v", err)
		return nopStopper{}
	}
	return p
}

// NotifyFunc is called for every alert after its sound started.
// stop ends the sound; for a finish alert it loops until called.
type NotifyFunc func(alert models.Alert, stop Stopper)

// Dispatcher delivers alerts from the engine to the speaker and the user
type Dispatcher struct {
	sound  Sounder
	notify NotifyFunc
	log    logger.Logger
}

// NewDispatcher creates a dispatcher. sound and notify may be nil; with a
// sound but no notify the finish alarm loops until the process exits.
func NewDispatcher(sound Sounder, notify NotifyFunc, log logger.Logger) *Dispatcher {
	if log == nil {
		log = logger.NewNopLogger()
	}
	return &Dispatcher{sound: sound, notify: notify, log: log}
}

// Run handles alerts until ctx is done or the stream is closed
func (d *Dispatcher) Run(ctx context.Context, alerts <-chan models.Alert) {
	for {
		select {
		case <-ctx.Done():
			return
		case alert, ok := <-alerts:
			if !ok {
				return
			}
			d.dispatch(alert)
		}
	}
}

func (d *Dispatcher) dispatch(alert models.Alert) {
	var stop Stopper = nopStopper{}
	if d.sound != nil {
		if s := d.sound.Play(alert); s != nil {
			stop = s
		}
	}

	if alert.IsTerminal() {
		d.log.Info("All items done")
	} else {
		d.log.Info("Start cooking %s", alert.ItemName)
	}

	if d.notify != nil {
		d.notify(alert, stop)
	}
}
