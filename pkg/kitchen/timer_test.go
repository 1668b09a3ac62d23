package kitchen

import (
	"errors"
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/borgmon/kitchen-timer/pkg/engine"
	"github.com/borgmon/kitchen-timer/pkg/models"
	"github.com/borgmon/kitchen-timer/pkg/schedule"
)

type manualTicker struct{ c chan time.Time }

func (m *manualTicker) C() <-chan time.Time { return m.c }
func (m *manualTicker) Stop()               {}

// manualClock hands out unbuffered tickers driven by tick().
type manualClock struct {
	mu   sync.Mutex
	last *manualTicker
}

func (m *manualClock) NewTicker(time.Duration) engine.Ticker {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.last = &manualTicker{c: make(chan time.Time)}
	return m.last
}

func (m *manualClock) tick(t *testing.T, n int) {
	t.Helper()
	m.mu.Lock()
	tk := m.last
	m.mu.Unlock()
	if tk == nil {
		t.Fatal("timer never started")
	}
	for i := 0; i < n; i++ {
		select {
		case tk.c <- time.Now():
		case <-time.After(2 * time.Second):
			t.Fatalf("tick %d not consumed", i+1)
		}
	}
}

func newTimer(t *testing.T) (*Timer, *manualClock) {
	t.Helper()
	mc := &manualClock{}
	tm := New(WithClock(mc))
	t.Cleanup(tm.Close)
	return tm, mc
}

func entryNames(entries []schedule.Entry) []string {
	out := []string{}
	for _, e := range entries {
		out = append(out, e.Item.Name)
	}
	return out
}

func TestRiceAndChicken(t *testing.T) {
	tm, _ := newTimer(t)

	rice, err := tm.AddItem("rice", 20)
	if err != nil {
		t.Fatal(err)
	}
	if v := tm.View(); v.Clock != 1200 {
		t.Fatalf("clock after rice = %d, want 1200", v.Clock)
	}
	if _, err := tm.AddItem("chicken", 5); err != nil {
		t.Fatal(err)
	}

	v := tm.View()
	if v.Clock != 1200 {
		t.Errorf("clock after chicken = %d, want 1200", v.Clock)
	}
	if rice.DurationSeconds != 1200 {
		t.Errorf("rice duration = %d", rice.DurationSeconds)
	}
	if got := entryNames(tm.ListInProgress()); !reflect.DeepEqual(got, []string{"rice"}) {
		t.Errorf("in progress = %v", got)
	}
	pending := tm.ListPending()
	if got := entryNames(pending); !reflect.DeepEqual(got, []string{"chicken"}) || pending[0].BeginIn != 900 {
		t.Errorf("pending = %+v", pending)
	}
	if next := tm.NextUp(); next.Wait != 900 || next.String() != "chicken in 15:00" {
		t.Errorf("next = %q (wait %d)", next.String(), next.Wait)
	}
}

func TestAddRaisesClockButNeverShrinks(t *testing.T) {
	tm, _ := newTimer(t)
	tm.AddItem("short", 5)
	tm.AddItem("long", 30)
	tm.AddItem("mid", 10)

	if v := tm.View(); v.Clock != 1800 {
		t.Errorf("clock = %d, want 1800", v.Clock)
	}
	for _, item := range tm.Items() {
		if tm.View().Clock < item.DurationSeconds {
			t.Errorf("clock below %s duration", item.Name)
		}
	}
}

func TestInvalidInputLeavesStateUnchanged(t *testing.T) {
	tm, _ := newTimer(t)
	item, _ := tm.AddItem("rice", 20)

	if _, err := tm.AddItem("  ", 5); !errors.Is(err, ErrEmptyName) {
		t.Errorf("AddItem(blank) error = %v", err)
	}
	if _, err := tm.AddItem("x", -1); !errors.Is(err, ErrInvalidMinutes) {
		t.Errorf("AddItem(-1) error = %v", err)
	}
	if _, err := tm.AddItem("huge", 153722867280912931); !errors.Is(err, ErrInvalidMinutes) {
		t.Errorf("AddItem(huge) error = %v", err)
	}
	if err := tm.EditItem(item.ID, "", 3); !errors.Is(err, ErrEmptyName) {
		t.Errorf("EditItem(blank) error = %v", err)
	}
	if err := tm.EditItem(item.ID, "rice", models.MaxMinutes+1); !errors.Is(err, ErrInvalidMinutes) {
		t.Errorf("EditItem(too long) error = %v", err)
	}

	if len(tm.Items()) != 1 {
		t.Errorf("items = %d, want 1", len(tm.Items()))
	}
	got, _ := tm.Item(item.ID)
	if got != item {
		t.Errorf("item changed to %+v", got)
	}
	if v := tm.View(); v.Clock != 1200 {
		t.Errorf("clock = %d, want 1200", v.Clock)
	}
}

func TestEditWhileIdleRecomputesClock(t *testing.T) {
	tm, _ := newTimer(t)
	long, _ := tm.AddItem("roast", 60)
	tm.AddItem("veg", 10)

	if err := tm.EditItem(long.ID, "roast", 25); err != nil {
		t.Fatal(err)
	}
	if v := tm.View(); v.Clock != 1500 {
		t.Errorf("clock = %d, want 1500 after shrinking the longest item", v.Clock)
	}

	if err := tm.EditItem(long.ID, "slow roast", 90); err != nil {
		t.Fatal(err)
	}
	if v := tm.View(); v.Clock != 5400 {
		t.Errorf("clock = %d, want 5400 after growing", v.Clock)
	}
	got, _ := tm.Item(long.ID)
	if got.Name != "slow roast" {
		t.Errorf("name = %q", got.Name)
	}
}

func TestEditWhileRunningKeepsClock(t *testing.T) {
	tm, mc := newTimer(t)
	long, _ := tm.AddItem("roast", 60)
	tm.Start()
	mc.tick(t, 10)

	tm.EditItem(long.ID, "roast", 5)
	if v := tm.View(); v.Clock != 3590 || !v.Armed {
		t.Errorf("view = clock %d armed %v, want 3590 armed", v.Clock, v.Armed)
	}
}

func TestEditUnknownIDIsNoop(t *testing.T) {
	tm, _ := newTimer(t)
	tm.AddItem("rice", 20)
	tm.OverrideClock(5000)

	if err := tm.EditItem(models.ItemID("nope"), "x", 1); err != nil {
		t.Errorf("EditItem(unknown) error = %v", err)
	}
	tm.RemoveItem(models.ItemID("nope"))

	if v := tm.View(); v.Clock != 5000 || len(tm.Items()) != 1 {
		t.Errorf("state changed: clock %d items %d", v.Clock, len(tm.Items()))
	}
}

func TestRemoveKeepsClock(t *testing.T) {
	tm, _ := newTimer(t)
	long, _ := tm.AddItem("roast", 60)
	tm.AddItem("veg", 10)

	tm.RemoveItem(long.ID)
	if v := tm.View(); v.Clock != 3600 {
		t.Errorf("clock = %d, want 3600", v.Clock)
	}
	if len(tm.Items()) != 1 {
		t.Errorf("items = %d", len(tm.Items()))
	}

	tm.Reset()
	if v := tm.View(); v.Clock != 600 {
		t.Errorf("clock after reset = %d, want 600", v.Clock)
	}
}

func TestResetIdempotent(t *testing.T) {
	tm, mc := newTimer(t)
	tm.AddItem("rice", 20)
	tm.Start()
	mc.tick(t, 30)

	tm.Reset()
	first := tm.View()
	tm.Reset()
	second := tm.View()

	if first.Clock != 1200 || second.Clock != first.Clock || second.Armed {
		t.Errorf("resets = %d then %d (armed %v)", first.Clock, second.Clock, second.Armed)
	}
}

func TestResetWithoutItemsIsZero(t *testing.T) {
	tm, _ := newTimer(t)
	tm.OverrideClock(300)
	tm.Reset()
	if v := tm.View(); v.Clock != 0 {
		t.Errorf("clock = %d, want 0", v.Clock)
	}
}

func TestStartRejectedAtZero(t *testing.T) {
	tm, _ := newTimer(t)
	if tm.Start() {
		t.Error("Start at zero = true")
	}
	if tm.Running() {
		t.Error("Running after rejected start")
	}
}

func TestOverrideClock(t *testing.T) {
	tm, _ := newTimer(t)
	tm.AddItem("rice", 20)

	if !tm.OverrideClock(25 * 60) {
		t.Fatal("OverrideClock while idle = false")
	}
	if next := tm.NextUp(); next.Wait != 300 || next.Names()[0] != "rice" {
		t.Errorf("next = %+v", next)
	}

	tm.Start()
	if tm.OverrideClock(10) {
		t.Error("OverrideClock while running = true")
	}
	tm.Pause()
	if tm.Running() {
		t.Error("Running after pause")
	}
}

func TestCountdownAlerts(t *testing.T) {
	tm, mc := newTimer(t)
	alerts, cancel := tm.Alerts()
	defer cancel()

	tm.AddItem("rice", 2)
	chicken, _ := tm.AddItem("chicken", 1)
	tm.Start()
	mc.tick(t, 60)

	var got []models.Alert
	for len(got) < 2 {
		select {
		case a := <-alerts:
			got = append(got, a)
		case <-time.After(time.Second):
			t.Fatalf("alerts so far %+v", got)
		}
	}
	if got[1].ItemID != chicken.ID || got[1].Clock != 60 {
		t.Errorf("second alert = %+v, want chicken at 60", got[1])
	}

	mc.tick(t, 60)
	select {
	case a := <-alerts:
		if !a.IsTerminal() {
			t.Errorf("final alert = %+v, want terminal", a)
		}
	case <-time.After(time.Second):
		t.Fatal("no terminal alert")
	}
	if tm.Running() {
		t.Error("still running at zero")
	}
}

func TestChangesNotified(t *testing.T) {
	tm, _ := newTimer(t)
	changes, cancel := tm.Changes()
	defer cancel()

	tm.AddItem("rice", 1)
	select {
	case <-changes:
	case <-time.After(time.Second):
		t.Fatal("no change after AddItem")
	}
}
