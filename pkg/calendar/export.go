// Package calendar exports a cook plan as an iCalendar file and reads it
// back. Each item becomes one event that runs from the moment it must go
// on until the master clock reaches zero.
package calendar

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/borgmon/kitchen-timer/pkg/schedule"
	"github.com/emersion/go-ical"
)

const productID = "-//borgmon//kitchen-timer//EN"

// ErrEmptyPlan is returned when there is nothing to export
var ErrEmptyPlan = errors.New("cook plan has no items")

// BuildPlan turns a schedule view into a calendar, anchored at now.
// Items already in progress start in the past.
func BuildPlan(view schedule.View, now time.Time) *ical.Calendar {
	now = now.UTC().Truncate(time.Second)
	finish := now.Add(time.Duration(view.Clock) * time.Second)

	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, productID)

	entries := append(append([]schedule.Entry{}, view.Pending...), view.InProgress...)
	for _, entry := range entries {
		start := now.Add(time.Duration(entry.Item.BeginIn(view.Clock)) * time.Second)

		event := ical.NewEvent()
		event.Props.SetText(ical.PropUID, string(entry.Item.ID))
		event.Props.SetDateTime(ical.PropDateTimeStamp, now)
		event.Props.SetDateTime(ical.PropDateTimeStart, start)
		event.Props.SetDateTime(ical.PropDateTimeEnd, finish)
		event.Props.SetText(ical.PropSummary, entry.Item.Name)
		event.Props.SetText(ical.PropDescription, fmt.Sprintf("Start cooking %s (%s)",
			entry.Item.Name, schedule.FormatClock(entry.Item.DurationSeconds)))

		cal.Children = append(cal.Children, event.Component)
	}

	return cal
}

// WritePlan encodes the plan for view to w
func WritePlan(w io.Writer, view schedule.View, now time.Time) error {
	if len(view.Pending)+len(view.InProgress) == 0 {
		return ErrEmptyPlan
	}
	if err := ical.NewEncoder(w).Encode(BuildPlan(view, now)); err != nil {
		return fmt.Errorf("encode plan: %w", err)
	}
	return nil
}
