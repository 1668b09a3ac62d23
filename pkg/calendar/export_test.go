package calendar

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/borgmon/kitchen-timer/pkg/models"
	"github.com/borgmon/kitchen-timer/pkg/schedule"
	"github.com/emersion/go-ical"
)

func riceAndChicken() schedule.View {
	items := []models.Item{
		{ID: "rice-id", Name: "rice", DurationSeconds: 1200, Seq: 1},
		{ID: "chicken-id", Name: "chicken", DurationSeconds: 300, Seq: 2},
	}
	return schedule.Build(items, 1200, false)
}

func TestWritePlanRoundTrip(t *testing.T) {
	now := time.Date(2026, 3, 1, 18, 0, 0, 0, time.UTC)

	var buf bytes.Buffer
	if err := WritePlan(&buf, riceAndChicken(), now); err != nil {
		t.Fatalf("WritePlan: %v", err)
	}
	if !strings.Contains(buf.String(), "BEGIN:VCALENDAR") || !strings.Contains(buf.String(), "Start cooking rice") {
		t.Fatalf("unexpected output:\n%s", buf.String())
	}

	plan, err := ReadPlan(&buf)
	if err != nil {
		t.Fatalf("ReadPlan: %v", err)
	}
	if len(plan) != 2 {
		t.Fatalf("events = %d, want 2", len(plan))
	}

	byName := map[string]PlannedItem{}
	for _, p := range plan {
		byName[p.Name] = p
	}

	finish := now.Add(20 * time.Minute)
	rice := byName["rice"]
	if !rice.Start.Equal(now) || !rice.End.Equal(finish) || rice.UID != "rice-id" {
		t.Errorf("rice = %+v", rice)
	}
	chicken := byName["chicken"]
	if !chicken.Start.Equal(now.Add(15*time.Minute)) || chicken.Minutes() != 5 {
		t.Errorf("chicken = %+v (minutes %d)", chicken, chicken.Minutes())
	}
}

func TestBuildPlanInProgressStartsInPast(t *testing.T) {
	now := time.Date(2026, 3, 1, 18, 0, 0, 0, time.UTC)
	items := []models.Item{{ID: "stew", Name: "stew", DurationSeconds: 600, Seq: 1}}

	cal := BuildPlan(schedule.Build(items, 120, true), now)
	if len(cal.Children) != 1 {
		t.Fatalf("children = %d", len(cal.Children))
	}
	start, err := cal.Children[0].Props.DateTime(ical.PropDateTimeStart, time.UTC)
	if err != nil {
		t.Fatal(err)
	}
	if want := now.Add(-8 * time.Minute); !start.Equal(want) {
		t.Errorf("start = %v, want %v", start, want)
	}
}

func TestWritePlanEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePlan(&buf, schedule.View{}, time.Now()); !errors.Is(err, ErrEmptyPlan) {
		t.Errorf("error = %v, want ErrEmptyPlan", err)
	}
	if buf.Len() != 0 {
		t.Error("wrote output for an empty plan")
	}
}

func TestReadPlanSkipsIncompleteEvents(t *testing.T) {
	data := strings.Join([]string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//test//EN",
		"BEGIN:VEVENT",
		"UID:a",
		"DTSTAMP:20260301T180000Z",
		"SUMMARY:no times",
		"END:VEVENT",
		"BEGIN:VEVENT",
		"UID:b",
		"DTSTAMP:20260301T180000Z",
		"DTSTART:20260301T180000Z",
		"DTEND:20260301T181000Z",
		"SUMMARY:pasta",
		"END:VEVENT",
		"END:VCALENDAR",
		"",
	}, "\r\n")

	plan, err := ReadPlan(strings.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	if len(plan) != 1 || plan[0].Name != "pasta" || plan[0].Minutes() != 10 {
		t.Errorf("plan = %+v", plan)
	}
}

func TestReadPlanInvalid(t *testing.T) {
	if _, err := ReadPlan(strings.NewReader("not a calendar")); err == nil {
		t.Error("expected error")
	}
}
