package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"github.com/borgmon/kitchen-timer/pkg/schedule"
)

// trayMenu keeps the menu items that are relabelled on every tick
type trayMenu struct {
	menu   *fyne.Menu
	clock  *fyne.MenuItem
	next   *fyne.MenuItem
	toggle *fyne.MenuItem
	reset  *fyne.MenuItem
}

func (kt *KitchenTimer) setupSystemTray() {
	desk, ok := kt.app.(desktop.App)
	if !ok {
		return
	}

	t := &trayMenu{
		clock: fyne.NewMenuItem("0:00", nil),
		next:  fyne.NewMenuItem("", nil),
		toggle: fyne.NewMenuItem("Start", func() {
			kt.toggle()
		}),
		reset: fyne.NewMenuItem("Reset", func() {
			kt.timer.Reset()
		}),
	}
	t.clock.Disabled = true
	t.next.Disabled = true

	t.menu = fyne.NewMenu("Kitchen Timer",
		t.clock,
		t.next,
		fyne.NewMenuItemSeparator(),
		t.toggle,
		t.reset,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Show Timer", func() {
			kt.mainWindow.Show()
			kt.mainWindow.window.RequestFocus()
		}),
		fyne.NewMenuItem("Export Cook Plan", func() {
			kt.mainWindow.Show()
			showExportDialog(kt.mainWindow.window, kt.timer)
		}),
		fyne.NewMenuItem("Settings", func() {
			kt.showSettingsWindow()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() {
			kt.quit()
		}),
	)

	kt.tray = t
	desk.SetSystemTrayMenu(t.menu)
	desk.SetSystemTrayIcon(theme.HistoryIcon())
}

// updateSystemTrayMenu mirrors the clock and next-up line in the tray
func (kt *KitchenTimer) updateSystemTrayMenu(view schedule.View) {
	if kt.tray == nil {
		return
	}
	t := kt.tray

	t.clock.Label = schedule.FormatClock(view.Clock)
	if next := view.Next.String(); next != "" {
		t.next.Label = "Next: " + truncateString(next, 40)
	} else {
		t.next.Label = "Nothing pending"
	}

	if view.Armed {
		t.toggle.Label = "Pause"
		t.toggle.Disabled = false
		t.reset.Disabled = true
	} else {
		t.toggle.Label = "Start"
		t.toggle.Disabled = view.Clock == 0
		t.reset.Disabled = false
	}

	t.menu.Refresh()
}

// truncateString truncates a string to maxLen characters, adding "..." if needed
func truncateString(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen-3]) + "..."
}
