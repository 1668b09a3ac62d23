package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
	"github.com/borgmon/kitchen-timer/pkg/calendar"
	"github.com/borgmon/kitchen-timer/pkg/kitchen"
	"github.com/borgmon/kitchen-timer/pkg/models"
)

func newItemEntries(name string, minutes string) (*widget.Entry, *widget.Entry, []*widget.FormItem) {
	nameEntry := widget.NewEntry()
	nameEntry.SetPlaceHolder("Rice")
	nameEntry.SetText(name)
	nameEntry.Validator = func(s string) error {
		_, err := kitchen.ValidateName(s)
		return err
	}

	minEntry := widget.NewEntry()
	minEntry.SetPlaceHolder("20")
	minEntry.SetText(minutes)
	minEntry.Validator = func(s string) error {
		_, err := kitchen.ParseMinutes(s)
		return err
	}

	items := []*widget.FormItem{
		widget.NewFormItem("Name", nameEntry),
		widget.NewFormItem("Minutes", minEntry),
	}
	return nameEntry, minEntry, items
}

func showAddItemDialog(parent fyne.Window, timer *kitchen.Timer) {
	nameEntry, minEntry, items := newItemEntries("", "")

	dialog.ShowForm("Add Item", "Add", "Cancel", items, func(confirmed bool) {
		if !confirmed {
			return
		}

		name, minutes, err := kitchen.ParseItem(nameEntry.Text, minEntry.Text)
		if err != nil {
			dialog.ShowError(err, parent)
			return
		}
		if _, err := timer.AddItem(name, minutes); err != nil {
			dialog.ShowError(err, parent)
		}
	}, parent)
}

func showEditItemDialog(parent fyne.Window, timer *kitchen.Timer, item models.Item) {
	nameEntry, minEntry, items := newItemEntries(item.Name, strconv.Itoa(item.DurationSeconds/60))

	dialog.ShowForm("Edit "+item.Name, "Save", "Cancel", items, func(confirmed bool) {
		if !confirmed {
			return
		}

		name, minutes, err := kitchen.ParseItem(nameEntry.Text, minEntry.Text)
		if err != nil {
			dialog.ShowError(err, parent)
			return
		}
		if err := timer.EditItem(item.ID, name, minutes); err != nil {
			dialog.ShowError(err, parent)
		}
	}, parent)
}

func showSetTimerDialog(parent fyne.Window, timer *kitchen.Timer) {
	minEntry := widget.NewEntry()
	minEntry.SetPlaceHolder("30")
	minEntry.Validator = func(s string) error {
		_, err := kitchen.ParseMinutes(s)
		return err
	}

	items := []*widget.FormItem{
		widget.NewFormItem("Minutes", minEntry),
	}

	dialog.ShowForm("Set Timer", "Set", "Cancel", items, func(confirmed bool) {
		if !confirmed {
			return
		}

		minutes, err := kitchen.ParseMinutes(minEntry.Text)
		if err != nil {
			dialog.ShowError(err, parent)
			return
		}
		if !timer.OverrideClock(models.MinutesToSeconds(minutes)) {
			dialog.ShowError(errors.New("pause the timer before setting it"), parent)
		}
	}, parent)
}

func showExportDialog(parent fyne.Window, timer *kitchen.Timer) {
	view := timer.View()
	if len(view.Pending)+len(view.InProgress) == 0 {
		dialog.ShowInformation("Nothing to Export", "Add an item before exporting the cook plan.", parent)
		return
	}

	save := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, parent)
			return
		}
		if writer == nil {
			return
		}
		defer writer.Close()

		// Anchor the plan when the file is written, not when the dialog opened
		if err := calendar.WritePlan(writer, timer.View(), time.Now()); err != nil {
			dialog.ShowError(fmt.Errorf("export cook plan: %w", err), parent)
			return
		}
		log.Printf("Cook plan exported to %s", writer.URI().Path())
	}, parent)

	save.SetFileName("cook-plan.ics")
	save.SetFilter(storage.NewExtensionFileFilter([]string{".ics"}))
	if home, err := os.UserHomeDir(); err == nil {
		if dir, err := storage.ListerForURI(storage.NewFileURI(home)); err == nil {
			save.SetLocation(dir)
		}
	}
	save.Show()
}

// showImportDialog adds every item of a saved cook plan to the timer
func showImportDialog(parent fyne.Window, timer *kitchen.Timer) {
	open := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, parent)
			return
		}
		if reader == nil {
			return
		}
		defer reader.Close()

		planned, err := calendar.ReadPlan(reader)
		if err != nil {
			dialog.ShowError(fmt.Errorf("open cook plan: %w", err), parent)
			return
		}
		if len(planned) == 0 {
			dialog.ShowInformation("Empty Plan", "The file has no cooking items.", parent)
			return
		}

		added := 0
		for _, p := range planned {
			if _, err := timer.AddItem(p.Name, p.Minutes()); err != nil {
				log.Printf("Skipping planned item %q: %v", p.Name, err)
				continue
			}
			added++
		}
		log.Printf("Imported %d of %d items from %s", added, len(planned), reader.URI().Path())
	}, parent)

	open.SetFilter(storage.NewExtensionFileFilter([]string{".ics"}))
	open.Show()
}
