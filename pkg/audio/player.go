package audio

import (
	"bytes"
	"fmt"
	"sync"
	"time"

	"github.com/borgmon/kitchen-timer/pkg/logger"
	"github.com/ebitengine/oto/v3"
)

// Global audio context singleton. oto allows one context per process, so
// its format is fixed by the first sound played.
var (
	globalAudioCtx     *oto.Context
	globalAudioCtxOnce sync.Once
	globalAudioCtxErr  error
)

// InitAudioContext initializes the global audio context once
func InitAudioContext(format Format) (*oto.Context, error) {
	globalAudioCtxOnce.Do(func() {
		op := &oto.NewContextOptions{
			SampleRate:   format.SampleRate,
			ChannelCount: format.Channels,
			Format:       oto.FormatSignedInt16LE,
		}

		ctx, readyChan, err := oto.NewContext(op)
		if err != nil {
			globalAudioCtxErr = fmt.Errorf("init audio context: %w", err)
			return
		}

		// Wait for the hardware audio devices to be ready
		<-readyChan
		globalAudioCtx = ctx
	})
	return globalAudioCtx, globalAudioCtxErr
}

// Player plays a sound once or loops it until stopped
type Player struct {
	stopChan chan struct{}
	player   *oto.Player
	stopped  bool
	mu       sync.Mutex
	log      logger.Logger
}

// Play starts playback of sound and returns without waiting
func Play(sound *Sound, loop bool, log logger.Logger) (*Player, error) {
	ctx, err := InitAudioContext(sound.Format)
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = logger.NewNopLogger()
	}

	p := &Player{
		stopChan: make(chan struct{}),
		log:      log,
	}
	go p.playLoop(ctx, sound.Data, loop)
	return p, nil
}

func (p *Player) playLoop(ctx *oto.Context, audioData []byte, loop bool) {
	for {
		player := ctx.NewPlayer(bytes.NewReader(audioData))
		p.mu.Lock()
		p.player = player
		p.mu.Unlock()

		player.Play()

		for player.IsPlaying() {
			select {
			case <-p.stopChan:
				player.Pause()
				player.Close()
				return
			case <-time.After(10 * time.Millisecond):
			}
		}

		if err := player.Close(); err != nil {
			p.log.Warning("Failed to close audio player: %v", err)
		}

		if !loop {
			return
		}
		select {
		case <-p.stopChan:
			return
		default:
		}
	}
}

// Stop stops playback. Safe to call on a nil Player and more than once.
func (p *Player) Stop() {
	if p == nil {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.stopped {
		return
	}
	p.stopped = true
	close(p.stopChan)
	if p.player != nil {
		p.player.Pause()
	}
}
