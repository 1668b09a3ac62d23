package engine

import (
	"sync"
	"time"

	"github.com/borgmon/kitchen-timer/pkg/clock"
	"github.com/borgmon/kitchen-timer/pkg/logger"
	"github.com/borgmon/kitchen-timer/pkg/models"
)

const alertBuffer = 32

// State of the tick engine
type State int

const (
	StateIdle State = iota
	StateRunning
)

func (s State) String() string {
	if s == StateRunning {
		return "running"
	}
	return "idle"
}

// Items is the part of the item store the engine reads.
type Items interface {
	List() []models.Item
	LongestDuration() int
}

// Options configures an Engine. Zero values select defaults.
type Options struct {
	Clock    Clock
	Interval time.Duration
	Logger   logger.Logger
}

// Snapshot is the clock state at one instant
type Snapshot struct {
	Clock int
	State State
}

type boundary struct {
	id       models.ItemID
	duration int
}

type command struct {
	fn   func()
	done chan struct{}
}

// Engine serializes every access to the master clock and the item store
// and decrements the clock once per quantum while running.
type Engine struct {
	master   *clock.Master
	items    Items
	source   Clock
	interval time.Duration
	log      logger.Logger

	cmds      chan command
	done      chan struct{}
	stopped   chan struct{}
	closeOnce sync.Once

	// Owned by the loop goroutine
	ticker Ticker
	fired  map[boundary]struct{}

	subMu    sync.Mutex
	nextSub  int
	alerts   map[int]chan models.Alert
	watchers map[int]chan struct{}
}

// New creates an engine over master and items and starts its loop.
// Callers must not touch master directly afterwards.
func New(master *clock.Master, items Items, opts Options) *Engine {
	if opts.Clock == nil {
		opts.Clock = SystemClock
	}
	if opts.Interval <= 0 {
		opts.Interval = time.Second
	}
	if opts.Logger == nil {
		opts.Logger = logger.NewNopLogger()
	}

	e := &Engine{
		master:   master,
		items:    items,
		source:   opts.Clock,
		interval: opts.Interval,
		log:      opts.Logger,
		cmds:     make(chan command),
		done:     make(chan struct{}),
		stopped:  make(chan struct{}),
		fired:    make(map[boundary]struct{}),
		alerts:   make(map[int]chan models.Alert),
		watchers: make(map[int]chan struct{}),
	}
	go e.run()
	return e
}

func (e *Engine) run() {
	defer close(e.stopped)
	defer e.stopTicker()

	for {
		var tickC <-chan time.Time
		if e.ticker != nil {
			tickC = e.ticker.C()
		}

		select {
		case <-e.done:
			return
		case cmd := <-e.cmds:
			cmd.fn()
			e.syncTicker()
			close(cmd.done)
		case <-tickC:
			e.tick()
			e.syncTicker()
		}
	}
}

// exec runs fn on the loop goroutine and waits for it.
// Returns false if the engine is closed. fn must not call back into the engine.
func (e *Engine) exec(fn func()) bool {
	cmd := command{fn: fn, done: make(chan struct{})}
	select {
	case e.cmds <- cmd:
	case <-e.done:
		return false
	}
	<-cmd.done
	return true
}

// Mutate runs fn with exclusive access to the clock and the items.
// If fn moves the clock, boundaries at or below the new value re-open.
// While running, an item that now starts exactly at the clock value alerts.
func (e *Engine) Mutate(fn func(master *clock.Master)) {
	e.exec(func() {
		before := e.master.Value()
		fn(e.master)
		e.rebase(before)
		if e.master.Armed() {
			e.checkBoundaries(e.master.Value())
		}
		e.notify()
	})
}

// Read runs fn with a consistent view of the clock and the items.
func (e *Engine) Read(fn func(master *clock.Master)) {
	e.exec(func() {
		fn(e.master)
	})
}

// State returns the clock value and the engine state
func (e *Engine) State() Snapshot {
	var s Snapshot
	e.exec(func() {
		s.Clock = e.master.Value()
		if e.master.Armed() {
			s.State = StateRunning
		}
	})
	return s
}

// Start arms the clock. Rejected when the clock is at 0.
// Items sitting exactly on the clock value alert immediately.
func (e *Engine) Start() bool {
	started := false
	e.exec(func() {
		if !e.master.Arm() {
			e.log.Info("Start rejected: master clock is at 0")
			return
		}
		started = true
		e.log.Info("Countdown started at %d seconds", e.master.Value())
		e.checkBoundaries(e.master.Value())
		e.notify()
	})
	return started
}

// Pause disarms the clock. No further decrement happens after it returns.
func (e *Engine) Pause() {
	e.exec(func() {
		if !e.master.Armed() {
			return
		}
		e.master.Disarm()
		e.log.Info("Countdown paused at %d seconds", e.master.Value())
		e.notify()
	})
}

// Reset disarms the clock and sets it to the longest item duration.
func (e *Engine) Reset() {
	e.exec(func() {
		before := e.master.Value()
		e.master.Disarm()
		e.master.ResetToLongest(e.items)
		e.rebase(before)
		e.log.Info("Countdown reset to %d seconds", e.master.Value())
		e.notify()
	})
}

// Override sets the clock to seconds. Rejected while running.
func (e *Engine) Override(seconds int) bool {
	ok := false
	e.exec(func() {
		before := e.master.Value()
		if !e.master.SetTo(seconds) {
			return
		}
		ok = true
		e.rebase(before)
		e.notify()
	})
	return ok
}

// Subscribe returns the alert stream and a cancel function.
// Alerts are dropped for a subscriber whose buffer is full.
func (e *Engine) Subscribe() (<-chan models.Alert, func()) {
	e.subMu.Lock()
	defer e.subMu.Unlock()

	id := e.nextSub
	e.nextSub++
	ch := make(chan models.Alert, alertBuffer)

	select {
	case <-e.stopped:
		close(ch)
		return ch, func() {}
	default:
	}
	e.alerts[id] = ch

	return ch, func() {
		e.subMu.Lock()
		defer e.subMu.Unlock()
		if c, ok := e.alerts[id]; ok {
			delete(e.alerts, id)
			close(c)
		}
	}
}

// Watch returns a channel signalled after every state change.
// Signals coalesce: a slow reader sees at most one pending signal.
func (e *Engine) Watch() (<-chan struct{}, func()) {
	e.subMu.Lock()
	defer e.subMu.Unlock()

	id := e.nextSub
	e.nextSub++
	ch := make(chan struct{}, 1)

	select {
	case <-e.stopped:
		close(ch)
		return ch, func() {}
	default:
	}
	e.watchers[id] = ch

	return ch, func() {
		e.subMu.Lock()
		defer e.subMu.Unlock()
		if c, ok := e.watchers[id]; ok {
			delete(e.watchers, id)
			close(c)
		}
	}
}

// Close stops the loop and closes every subscription.
func (e *Engine) Close() {
	e.closeOnce.Do(func() {
		close(e.done)
		<-e.stopped

		e.subMu.Lock()
		defer e.subMu.Unlock()
		for id, ch := range e.alerts {
			delete(e.alerts, id)
			close(ch)
		}
		for id, ch := range e.watchers {
			delete(e.watchers, id)
			close(ch)
		}
	})
}

func (e *Engine) tick() {
	if !e.master.Armed() {
		return
	}

	value := e.master.Decrement()
	e.checkBoundaries(value)

	if value == 0 {
		e.log.Info("Countdown finished")
		e.publish(models.Alert{Kind: models.AlertDone, Clock: 0})
	}
	e.notify()
}

// checkBoundaries fires a start alert for every item whose duration equals
// value and has not alerted for that duration yet.
func (e *Engine) checkBoundaries(value int) {
	for _, item := range e.items.List() {
		if item.DurationSeconds != value {
			continue
		}
		key := boundary{id: item.ID, duration: item.DurationSeconds}
		if _, seen := e.fired[key]; seen {
			continue
		}
		e.fired[key] = struct{}{}
		e.log.Info("Start cooking %q at %d seconds", item.Name, value)
		e.publish(models.Alert{
			Kind:     models.AlertItemStart,
			ItemID:   item.ID,
			ItemName: item.Name,
			Clock:    value,
		})
	}
}

// rebase re-opens boundaries when a non-tick change moved the clock.
func (e *Engine) rebase(before int) {
	after := e.master.Value()
	if after == before {
		return
	}
	for key := range e.fired {
		if key.duration <= after {
			delete(e.fired, key)
		}
	}
}

func (e *Engine) syncTicker() {
	switch {
	case e.master.Armed() && e.ticker == nil:
		e.ticker = e.source.NewTicker(e.interval)
	case !e.master.Armed() && e.ticker != nil:
		e.stopTicker()
	}
}

func (e *Engine) stopTicker() {
	if e.ticker != nil {
		e.ticker.Stop()
		e.ticker = nil
	}
}

func (e *Engine) publish(alert models.Alert) {
	e.subMu.Lock()
	defer e.subMu.Unlock()

	for _, ch := range e.alerts {
		select {
		case ch <- alert:
		default:
			e.log.Warning("Alert subscriber is full, dropped %s alert", alert.Kind)
		}
	}
}

func (e *Engine) notify() {
	e.subMu.Lock()
	defer e.subMu.Unlock()

	for _, ch := range e.watchers {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
