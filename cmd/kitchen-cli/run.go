package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/borgmon/kitchen-timer/pkg/audio"
	"github.com/borgmon/kitchen-timer/pkg/kitchen"
	"github.com/borgmon/kitchen-timer/pkg/logger"
	"github.com/borgmon/kitchen-timer/pkg/models"
	"github.com/borgmon/kitchen-timer/pkg/schedule"
	"github.com/borgmon/kitchen-timer/pkg/store"
	"github.com/urfave/cli"
	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

// ErrNothingToTime is returned by run when the clock starts at zero
var ErrNothingToTime = errors.New("nothing to time, add an item or set the clock")

var runFlags = []cli.Flag{
	cli.DurationFlag{
		Name:  "tick",
		Usage: "length of one clock second",
		Value: models.DefaultTickInterval,
	},
	cli.StringFlag{
		Name:  "sound, s",
		Usage: "16-bit PCM WAV to play on alerts (default: built-in bell)",
	},
	cli.DurationFlag{
		Name:  "ring",
		Usage: "how long the finish alarm rings before it stops",
		Value: 5 * time.Second,
	},
	cli.BoolFlag{
		Name:  "quiet, q",
		Usage: "do not play any sound",
	},
	cli.StringFlag{
		Name:  "log",
		Usage: "append debug logs to this file",
	},
}

// countdown owns the progress bars of one run
type countdown struct {
	p      *mpb.Progress
	master *mpb.Bar
	items  map[models.ItemID]*mpb.Bar
	start  int
}

func runCountdown(ctx *cli.Context) error {
	l, closeLog, err := openLog(ctx.String("log"))
	if err != nil {
		return err
	}
	defer closeLog()
	store.LoadDotEnv(l)

	cfg := models.DefaultConfig()
	store.ApplyEnv(cfg, l)
	if ctx.IsSet("tick") {
		cfg.TickInterval = ctx.Duration("tick")
	}
	if ctx.IsSet("sound") {
		cfg.SoundPath = ctx.String("sound")
	}
	cfg.Normalize()

	t := kitchen.New(kitchen.WithLogger(l), kitchen.WithTickInterval(cfg.TickInterval))
	defer t.Close()
	if err := planInputFrom(ctx).load(t); err != nil {
		return err
	}

	var sound audio.Sounder = silence{}
	if !ctx.Bool("quiet") {
		bank, err := audio.LoadSoundBank(cfg.SoundPath, l)
		if err != nil {
			return err
		}
		sound = bank
	}

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return countDown(sigCtx, t, sound, ctx.Duration("ring"), l)
}

// countDown runs the timer until the clock reaches zero or ctx ends
func countDown(ctx context.Context, t *kitchen.Timer, sound audio.Sounder, ring time.Duration, l logger.Logger) error {
	view := t.View()
	if view.Clock == 0 {
		return ErrNothingToTime
	}

	alerts, unsubscribe := t.Alerts()
	defer unsubscribe()
	changes, unwatch := t.Changes()
	defer unwatch()

	finished := make(chan audio.Stopper, 1)
	dispatchCtx, cancelDispatch := context.WithCancel(context.Background())
	defer cancelDispatch()
	dispatcher := audio.NewDispatcher(sound, func(alert models.Alert, stop audio.Stopper) {
		fmt.Fprint(os.Stdout, "\a")
		if alert.IsTerminal() {
			finished <- stop
		}
	}, l)
	go dispatcher.Run(dispatchCtx, alerts)

	cd := newCountdown(view)
	if !t.Start() {
		cd.abort()
		return ErrNothingToTime
	}

	for {
		select {
		case <-ctx.Done():
			t.Pause()
			cd.abort()
			fmt.Println("Stopped at", schedule.FormatClock(t.View().Clock))
			return nil
		case <-changes:
			cd.update(t.View())
		case stopSound := <-finished:
			cd.finish(t.View())
			fmt.Println("Everything is done!")
			select {
			case <-time.After(ring):
			case <-ctx.Done():
			}
			stopSound.Stop()
			return nil
		}
	}
}

func newCountdown(view schedule.View) *countdown {
	p := mpb.New(mpb.WithWidth(64), mpb.WithRefreshRate(100*time.Millisecond))
	barStyle := mpb.BarStyle().Lbound("╢").Filler("█").Tip("█").Padding("░").Rbound("╟")
	cd := &countdown{
		p:     p,
		items: make(map[models.ItemID]*mpb.Bar),
		start: view.Clock,
	}

	name := "Clock"
	cd.master = p.New(0,
		barStyle,
		mpb.BarPriority(0),
		mpb.PrependDecorators(
			decor.Name(name, decor.WC{W: len(name) + 1, C: decor.DindentRight}),
			decor.OnComplete(decor.Any(remaining, decor.WC{W: 6}), "Done"),
		),
	)
	cd.master.SetTotal(int64(view.Clock), false)
	cd.master.EnableTriggerComplete()

	for i, e := range entries(view) {
		name := e.Item.Name
		bar := p.New(0,
			barStyle,
			mpb.BarPriority(i+1),
			mpb.PrependDecorators(
				decor.Name(name, decor.WC{W: len(name) + 1, C: decor.DindentRight}),
				decor.OnComplete(decor.Any(startsIn, decor.WC{W: 9}), "Cooking"),
			),
		)
		wait := e.BeginIn
		if wait <= 0 {
			bar.SetTotal(-1, true)
		} else {
			bar.SetTotal(int64(wait), false)
			bar.EnableTriggerComplete()
		}
		cd.items[e.Item.ID] = bar
	}
	return cd
}

// update moves every bar to the elapsed time of view
func (cd *countdown) update(view schedule.View) {
	elapsed := int64(cd.start - view.Clock)
	if elapsed < 0 {
		elapsed = 0
	}
	cd.master.SetCurrent(elapsed)
	for _, e := range entries(view) {
		bar, ok := cd.items[e.Item.ID]
		if !ok || bar.Completed() {
			continue
		}
		if e.Status == schedule.StatusInProgress {
			bar.SetTotal(-1, true)
			continue
		}
		bar.SetCurrent(elapsed)
	}
}

// finish draws the final state and releases the terminal
func (cd *countdown) finish(view schedule.View) {
	cd.update(view)
	cd.abort()
}

// abort stops the bars that are still running and waits for the last render
func (cd *countdown) abort() {
	if !cd.master.Completed() {
		cd.master.Abort(false)
	}
	for _, bar := range cd.items {
		if !bar.Completed() {
			bar.Abort(false)
		}
	}
	cd.p.Wait()
}

func entries(view schedule.View) []schedule.Entry {
	all := make([]schedule.Entry, 0, len(view.Pending)+len(view.InProgress))
	all = append(all, view.Pending...)
	return append(all, view.InProgress...)
}

func remaining(s decor.Statistics) string {
	return schedule.FormatClock(int(s.Total - s.Current))
}

func startsIn(s decor.Statistics) string {
	return "in " + schedule.FormatClock(int(s.Total-s.Current))
}

// silence is the Sounder used with --quiet
type silence struct{}

func (silence) Play(models.Alert) audio.Stopper { return silence{} }

func (silence) Stop() {}

// openLog returns a logger appending to path, or a discarding one.
// Logs never go to the terminal while the bars are drawn.
func openLog(path string) (*logger.StandardLogger, func(), error) {
	if path == "" {
		return logger.NewStandardLogger(log.New(io.Discard, "", 0)), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}
	return logger.NewStandardLogger(log.New(f, "kitchen-cli: ", log.LstdFlags)), func() { f.Close() }, nil
}
