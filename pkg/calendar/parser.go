package calendar

import (
	"fmt"
	"io"
	"time"

	"github.com/emersion/go-ical"
)

// PlannedItem is one cooking event read back from an exported plan
type PlannedItem struct {
	UID   string
	Name  string
	Start time.Time
	End   time.Time
}

// Minutes returns the cook time of the item, rounded to whole minutes
func (p PlannedItem) Minutes() int {
	return int(p.End.Sub(p.Start).Round(time.Minute) / time.Minute)
}

// ReadPlan decodes a plan written by WritePlan. Events without a summary
// or a start and end time are skipped.
func ReadPlan(r io.Reader) ([]PlannedItem, error) {
	cal, err := ical.NewDecoder(r).Decode()
	if err != nil {
		return nil, fmt.Errorf("decode plan: %w", err)
	}

	var items []PlannedItem
	for _, comp := range cal.Children {
		if comp.Name != ical.CompEvent {
			continue
		}
		item, ok := parseEvent(comp)
		if !ok {
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

func parseEvent(comp *ical.Component) (PlannedItem, bool) {
	item := PlannedItem{}

	if uidProp := comp.Props.Get(ical.PropUID); uidProp != nil {
		item.UID = uidProp.Value
	}
	if name, err := comp.Props.Text(ical.PropSummary); err == nil {
		item.Name = name
	}

	startProp := comp.Props.Get(ical.PropDateTimeStart)
	endProp := comp.Props.Get(ical.PropDateTimeEnd)
	if item.Name == "" || startProp == nil || endProp == nil {
		return item, false
	}

	// Times without a zone are wall-clock times in the local zone
	normalizeTimezones(comp)
	var err error
	if item.Start, err = startProp.DateTime(time.Local); err != nil {
		return item, false
	}
	if item.End, err = endProp.DateTime(time.Local); err != nil {
		return item, false
	}
	if item.End.Before(item.Start) {
		return item, false
	}
	return item, true
}
