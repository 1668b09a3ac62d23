package schedule

import (
	"reflect"
	"testing"

	"github.com/borgmon/kitchen-timer/pkg/models"
)

// makeItems builds items from (name, minutes) pairs in creation order.
func makeItems(t *testing.T, specs ...interface{}) []models.Item {
	t.Helper()
	if len(specs)%2 != 0 {
		t.Fatal("makeItems needs name/minutes pairs")
	}
	var items []models.Item
	for i := 0; i < len(specs); i += 2 {
		name := specs[i].(string)
		minutes := specs[i+1].(int)
		items = append(items, models.Item{
			ID:              models.ItemID(name),
			Name:            name,
			DurationSeconds: minutes * 60,
			Seq:             uint64(i/2 + 1),
		})
	}
	return items
}

func names(entries []Entry) []string {
	out := []string{}
	for _, e := range entries {
		out = append(out, e.Item.Name)
	}
	return out
}

func TestRiceAndChickenScenario(t *testing.T) {
	items := makeItems(t, "rice", 20, "chicken", 5)
	const clock = 1200

	pending := Pending(items, clock)
	inProgress := InProgress(items, clock)

	if got := names(inProgress); !reflect.DeepEqual(got, []string{"rice"}) {
		t.Errorf("in progress = %v, want [rice]", got)
	}
	if got := names(pending); !reflect.DeepEqual(got, []string{"chicken"}) {
		t.Fatalf("pending = %v, want [chicken]", got)
	}
	if pending[0].BeginIn != 900 {
		t.Errorf("chicken BeginIn = %d, want 900", pending[0].BeginIn)
	}
	if pending[0].Label != "chicken - Begin in 15:00" {
		t.Errorf("chicken label = %q", pending[0].Label)
	}
	if inProgress[0].Label != "rice (20:00)" {
		t.Errorf("rice label = %q", inProgress[0].Label)
	}

	next := Next(items, clock)
	if next.Wait != 900 || !reflect.DeepEqual(next.Names(), []string{"chicken"}) {
		t.Errorf("next = %+v", next)
	}
}

func TestBoundaryIsInProgress(t *testing.T) {
	item := models.Item{Name: "egg", DurationSeconds: 300}
	if Classify(item, 300) != StatusInProgress {
		t.Error("duration == clock must be in progress")
	}
	if Classify(item, 301) != StatusPending {
		t.Error("duration < clock must be pending")
	}
	if Classify(item, 0) != StatusInProgress {
		t.Error("clock 0 must be in progress")
	}
}

func TestClassificationIsTotal(t *testing.T) {
	items := makeItems(t, "a", 0, "b", 1, "c", 5, "d", 5, "e", 12)
	for clock := 0; clock <= 13*60; clock += 7 {
		p := Pending(items, clock)
		ip := InProgress(items, clock)
		if len(p)+len(ip) != len(items) {
			t.Fatalf("clock %d: %d pending + %d in progress != %d items", clock, len(p), len(ip), len(items))
		}
		seen := map[models.ItemID]bool{}
		for _, e := range append(p, ip...) {
			if seen[e.Item.ID] {
				t.Fatalf("clock %d: item %s classified twice", clock, e.Item.ID)
			}
			seen[e.Item.ID] = true
		}
	}
}

func TestOrdering(t *testing.T) {
	items := makeItems(t, "mid", 10, "short", 2, "long", 30, "mid2", 10, "tiny", 1)

	pending := Pending(items, 60*60)
	if got := names(pending); !reflect.DeepEqual(got, []string{"long", "mid", "mid2", "short", "tiny"}) {
		t.Errorf("pending order = %v", got)
	}

	inProgress := InProgress(items, 0)
	if got := names(inProgress); !reflect.DeepEqual(got, []string{"tiny", "short", "mid", "mid2", "long"}) {
		t.Errorf("in-progress order = %v", got)
	}
}

func TestNextUpTies(t *testing.T) {
	items := makeItems(t, "rice", 20, "beans", 12, "peas", 12, "salad", 3)

	next := Next(items, 1200)
	if !reflect.DeepEqual(next.Names(), []string{"beans", "peas"}) {
		t.Errorf("next names = %v, want [beans peas]", next.Names())
	}
	if next.Wait != 1200-720 {
		t.Errorf("next wait = %d, want %d", next.Wait, 1200-720)
	}
	if next.String() != "beans, peas in 8:00" {
		t.Errorf("next string = %q", next.String())
	}
}

func TestNextUpEmpty(t *testing.T) {
	if next := Next(nil, 0); len(next.Items) != 0 || next.Wait != 0 || next.String() != "" {
		t.Errorf("Next(nil) = %+v", next)
	}

	items := makeItems(t, "rice", 20)
	if next := Next(items, 1200); len(next.Items) != 0 || next.Wait != 0 {
		t.Errorf("Next with nothing pending = %+v", next)
	}
}

func TestBuild(t *testing.T) {
	items := makeItems(t, "rice", 20, "chicken", 5)
	v := Build(items, 300, true)

	if v.Clock != 300 || !v.Armed {
		t.Errorf("view header = (%d, %v)", v.Clock, v.Armed)
	}
	if len(v.Pending) != 0 || len(v.InProgress) != 2 {
		t.Errorf("at 300 expected everything in progress, got %d pending %d in progress", len(v.Pending), len(v.InProgress))
	}
}

func TestFormatClock(t *testing.T) {
	tests := map[int]string{
		0:    "0:00",
		5:    "0:05",
		60:   "1:00",
		905:  "15:05",
		7200: "120:00",
		-3:   "0:00",
	}
	for in, want := range tests {
		if got := FormatClock(in); got != want {
			t.Errorf("FormatClock(%d) = %q, want %q", in, got, want)
		}
	}
}
