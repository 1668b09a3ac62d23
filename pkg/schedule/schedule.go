// Package schedule derives the pending/in-progress views of the items from
// the current master clock value. Everything here is a pure function of
// (items, clock); nothing is cached.
package schedule

import (
	"fmt"
	"sort"
	"strings"

	"github.com/borgmon/kitchen-timer/pkg/models"
)

// Status is the classification of an item at a clock value
type Status int

const (
	StatusPending Status = iota
	StatusInProgress
)

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusInProgress:
		return "in-progress"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Entry is one row of a classified list
type Entry struct {
	Item    models.Item
	Status  Status
	BeginIn int    // Seconds until the item starts, 0 once in progress
	Label   string // Display text
}

// NextUp is the set of pending items that must start soonest
type NextUp struct {
	Items []models.Item
	Wait  int // Seconds until they start
}

// Names returns the item names in order
func (n NextUp) Names() []string {
	names := make([]string, len(n.Items))
	for i, item := range n.Items {
		names[i] = item.Name
	}
	return names
}

// String renders "rice, beans in 4:00", or "" when nothing is pending
func (n NextUp) String() string {
	if len(n.Items) == 0 {
		return ""
	}
	return fmt.Sprintf("%s in %s", strings.Join(n.Names(), ", "), FormatClock(n.Wait))
}

// View is a complete snapshot for presentation
type View struct {
	Clock      int
	Armed      bool
	Pending    []Entry
	InProgress []Entry
	Next       NextUp
}

// Classify returns the status of one item at clock value t.
// An item whose duration equals t has just started.
func Classify(item models.Item, t int) Status {
	if item.InProgressAt(t) {
		return StatusInProgress
	}
	return StatusPending
}

// Pending returns items not yet started, longest duration first
func Pending(items []models.Item, t int) []Entry {
	result := []Entry{}
	for _, item := range items {
		if Classify(item, t) != StatusPending {
			continue
		}
		beginIn := item.BeginIn(t)
		if beginIn < 0 {
			beginIn = 0
		}
		result = append(result, Entry{
			Item:    item,
			Status:  StatusPending,
			BeginIn: beginIn,
			Label:   fmt.Sprintf("%s - Begin in %s", item.Name, FormatClock(beginIn)),
		})
	}

	sort.SliceStable(result, func(i, j int) bool {
		a, b := result[i].Item, result[j].Item
		if a.DurationSeconds != b.DurationSeconds {
			return a.DurationSeconds > b.DurationSeconds
		}
		return a.Seq < b.Seq
	})
	return result
}

// InProgress returns started items, shortest duration first
func InProgress(items []models.Item, t int) []Entry {
	result := []Entry{}
	for _, item := range items {
		if Classify(item, t) != StatusInProgress {
			continue
		}
		result = append(result, Entry{
			Item:   item,
			Status: StatusInProgress,
			Label:  fmt.Sprintf("%s (%s)", item.Name, FormatClock(item.DurationSeconds)),
		})
	}

	sort.SliceStable(result, func(i, j int) bool {
		a, b := result[i].Item, result[j].Item
		if a.DurationSeconds != b.DurationSeconds {
			return a.DurationSeconds < b.DurationSeconds
		}
		return a.Seq < b.Seq
	})
	return result
}

// Next returns the pending items sharing the longest duration, ties included
func Next(items []models.Item, t int) NextUp {
	longest := -1
	for _, item := range items {
		if Classify(item, t) == StatusPending && item.DurationSeconds > longest {
			longest = item.DurationSeconds
		}
	}
	if longest < 0 {
		return NextUp{}
	}

	next := NextUp{Wait: t - longest}
	for _, entry := range Pending(items, t) {
		if entry.Item.DurationSeconds == longest {
			next.Items = append(next.Items, entry.Item)
		}
	}
	return next
}

// Build computes the full view in one pass over the inputs
func Build(items []models.Item, t int, armed bool) View {
	return View{
		Clock:      t,
		Armed:      armed,
		Pending:    Pending(items, t),
		InProgress: InProgress(items, t),
		Next:       Next(items, t),
	}
}

// FormatClock renders seconds as m:ss, minutes unbounded
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
