package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/borgmon/kitchen-timer/pkg/calendar"
	"github.com/borgmon/kitchen-timer/pkg/kitchen"
	"github.com/borgmon/kitchen-timer/pkg/models"
	"github.com/borgmon/kitchen-timer/pkg/schedule"
	"github.com/urfave/cli"
)

var (
	planFlags = []cli.Flag{
		cli.StringSliceFlag{
			Name:  "item, i",
			Usage: "add an item as name=minutes, may be repeated",
		},
		cli.StringFlag{
			Name:  "plan",
			Usage: "load items from a cook plan exported earlier (.ics file or URL)",
		},
		cli.IntFlag{
			Name:  "clock, c",
			Usage: "set the master clock to this many minutes after adding items",
		},
	}
	exportFlags = []cli.Flag{
		cli.StringFlag{
			Name:  "output, o",
			Usage: "file to write, - for standard output",
			Value: "-",
		},
	}
)

// planInput is everything needed to rebuild a cook plan from the command line
type planInput struct {
	PlanPath     string
	Specs        []string
	ClockMinutes int
	SetClock     bool
}

func planInputFrom(ctx *cli.Context) planInput {
	return planInput{
		PlanPath:     ctx.String("plan"),
		Specs:        ctx.StringSlice("item"),
		ClockMinutes: ctx.Int("clock"),
		SetClock:     ctx.IsSet("clock"),
	}
}

// load adds the planned items to t, file items first
func (in planInput) load(t *kitchen.Timer) error {
	if in.PlanPath != "" {
		planned, err := readPlan(in.PlanPath)
		if err != nil {
			return err
		}
		for _, p := range planned {
			if _, err := t.AddItem(p.Name, p.Minutes()); err != nil {
				return fmt.Errorf("plan item %q: %w", p.Name, err)
			}
		}
	}

	for _, spec := range in.Specs {
		name, minutes, err := kitchen.ParseItemSpec(spec)
		if err != nil {
			return err
		}
		if _, err := t.AddItem(name, minutes); err != nil {
			return err
		}
	}

	if in.SetClock {
		if in.ClockMinutes < 0 || in.ClockMinutes > models.MaxMinutes {
			return kitchen.ErrInvalidMinutes
		}
		t.OverrideClock(models.MinutesToSeconds(in.ClockMinutes))
	}
	return nil
}

// readPlan loads a plan from a file or an http(s) URL
func readPlan(location string) ([]calendar.PlannedItem, error) {
	if calendar.IsRemote(location) {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return calendar.FetchPlan(ctx, nil, location)
	}
	f, err := os.Open(location)
	if err != nil {
		return nil, fmt.Errorf("open plan: %w", err)
	}
	defer f.Close()
	return calendar.ReadPlan(f)
}

func printPlan(ctx *cli.Context) error {
	t := kitchen.New()
	defer t.Close()
	if err := planInputFrom(ctx).load(t); err != nil {
		return err
	}
	writeView(ctx.App.Writer, t.View())
	return nil
}

func writeView(w io.Writer, view schedule.View) {
	fmt.Fprintf(w, "Clock: %s\n", schedule.FormatClock(view.Clock))
	if next := view.Next.String(); next != "" {
		fmt.Fprintf(w, "Next:  %s\n", next)
	}

	fmt.Fprintln(w, "\nUp next:")
	if len(view.Pending) == 0 {
		fmt.Fprintln(w, "  (none)")
	}
	for _, e := range view.Pending {
		fmt.Fprintf(w, "  %s\n", e.Label)
	}

	fmt.Fprintln(w, "\nCooking:")
	if len(view.InProgress) == 0 {
		fmt.Fprintln(w, "  (none)")
	}
	for _, e := range view.InProgress {
		fmt.Fprintf(w, "  %s\n", e.Label)
	}
}

func exportPlan(ctx *cli.Context) error {
	t := kitchen.New()
	defer t.Close()
	if err := planInputFrom(ctx).load(t); err != nil {
		return err
	}

	out := ctx.String("output")
	if out == "" || out == "-" {
		return calendar.WritePlan(ctx.App.Writer, t.View(), time.Now())
	}

	f, err := os.Create(out)
	if err != nil {
		return err
	}
	if err := calendar.WritePlan(f, t.View(), time.Now()); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Fprintf(ctx.App.Writer, "Cook plan written to %s\n", out)
	return nil
}
