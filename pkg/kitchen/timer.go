// Package kitchen is the entry point to the timer core: it wires the item
// store, the master clock and the tick engine together and exposes the
// operations the desktop and terminal front ends call.
package kitchen

import (
	"time"

	"github.com/borgmon/kitchen-timer/pkg/clock"
	"github.com/borgmon/kitchen-timer/pkg/engine"
	"github.com/borgmon/kitchen-timer/pkg/logger"
	"github.com/borgmon/kitchen-timer/pkg/models"
	"github.com/borgmon/kitchen-timer/pkg/schedule"
	"github.com/borgmon/kitchen-timer/pkg/store"
)

// Timer schedules items against one master clock.
type Timer struct {
	items  *store.ItemStore
	engine *engine.Engine
	log    logger.Logger
}

type options struct {
	log      logger.Logger
	interval time.Duration
	clock    engine.Clock
}

// Option configures a Timer
type Option func(*options)

// WithLogger sets the logger used by the timer and its engine
func WithLogger(l logger.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithTickInterval sets how long one clock second lasts
func WithTickInterval(d time.Duration) Option {
	return func(o *options) { o.interval = d }
}

// WithClock replaces the tick source, mainly for tests
func WithClock(c engine.Clock) Option {
	return func(o *options) { o.clock = c }
}

// New creates a Timer with no items and the clock at 0
func New(opts ...Option) *Timer {
	o := options{
		log:      logger.NewNopLogger(),
		interval: models.DefaultTickInterval,
		clock:    engine.SystemClock,
	}
	for _, opt := range opts {
		opt(&o)
	}

	items := store.NewItemStore()
	return &Timer{
		items: items,
		engine: engine.New(clock.New(), items, engine.Options{
			Clock:    o.clock,
			Interval: o.interval,
			Logger:   o.log,
		}),
		log: o.log,
	}
}

// AddItem schedules a new item and grows the clock to fit it.
// Invalid input is rejected with no state change.
func (t *Timer) AddItem(name string, minutes int) (models.Item, error) {
	name, err := validate(name, minutes)
	if err != nil {
		return models.Item{}, err
	}

	var item models.Item
	t.engine.Mutate(func(m *clock.Master) {
		item = t.items.Add(name, minutes)
		m.RaiseToAtLeast(item.DurationSeconds)
	})
	t.log.Info("Added %q (%d min)", item.Name, minutes)
	return item, nil
}

// EditItem replaces name and duration of an item. While idle the clock is
// recomputed to the longest item; while running it is left alone.
// An unknown ID is a no-op.
func (t *Timer) EditItem(id models.ItemID, name string, minutes int) error {
	name, err := validate(name, minutes)
	if err != nil {
		return err
	}

	t.engine.Mutate(func(m *clock.Master) {
		if _, ok := t.items.Edit(id, name, minutes); !ok {
			return
		}
		if !m.Armed() {
			m.ResetToLongest(t.items)
		}
	})
	return nil
}

// RemoveItem deletes an item. The clock is not touched.
func (t *Timer) RemoveItem(id models.ItemID) {
	t.engine.Mutate(func(m *clock.Master) {
		t.items.Remove(id)
	})
}

// Start begins the countdown. Returns false when the clock is at 0.
func (t *Timer) Start() bool {
	return t.engine.Start()
}

// Pause stops the countdown
func (t *Timer) Pause() {
	t.engine.Pause()
}

// Reset stops the countdown and sets the clock to the longest item
func (t *Timer) Reset() {
	t.engine.Reset()
}

// OverrideClock sets the clock to seconds. Returns false while running.
func (t *Timer) OverrideClock(seconds int) bool {
	return t.engine.Override(seconds)
}

// ListPending returns the items waiting to start, soonest first
func (t *Timer) ListPending() []schedule.Entry {
	return t.View().Pending
}

// ListInProgress returns the items already cooking, nearest to done first
func (t *Timer) ListInProgress() []schedule.Entry {
	return t.View().InProgress
}

// NextUp returns the items that start next and the shared wait
func (t *Timer) NextUp() schedule.NextUp {
	return t.View().Next
}

// View returns a consistent snapshot of clock, lists and next-up
func (t *Timer) View() schedule.View {
	var v schedule.View
	t.engine.Read(func(m *clock.Master) {
		v = schedule.Build(t.items.List(), m.Value(), m.Armed())
	})
	return v
}

// Items returns every item in creation order
func (t *Timer) Items() []models.Item {
	var items []models.Item
	t.engine.Read(func(*clock.Master) {
		items = t.items.List()
	})
	return items
}

// Item returns one item by ID
func (t *Timer) Item(id models.ItemID) (models.Item, bool) {
	return t.items.Get(id)
}

// Running reports whether the countdown is active
func (t *Timer) Running() bool {
	return t.engine.State().State == engine.StateRunning
}

// Alerts subscribes to start and finish alerts
func (t *Timer) Alerts() (<-chan models.Alert, func()) {
	return t.engine.Subscribe()
}

// Changes subscribes to redraw notifications
func (t *Timer) Changes() (<-chan struct{}, func()) {
	return t.engine.Watch()
}

// Close stops the engine and ends every subscription
func (t *Timer) Close() {
	t.engine.Close()
}

func validate(name string, minutes int) (string, error) {
	name, err := ValidateName(name)
	if err != nil {
		return "", err
	}
	if !validMinutes(minutes) {
		return "", ErrInvalidMinutes
	}
	return name, nil
}
