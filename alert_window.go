package main

import (
	"fmt"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/borgmon/kitchen-timer/pkg/platform"
	"github.com/borgmon/kitchen-timer/pkg/ui/components"
	"golang.design/x/hotkey"
)

// AlertWindow is shown when the master clock reaches zero. The alarm keeps
// ringing until the dismiss button has been held down.
type AlertWindow struct {
	window          fyne.Window
	app             fyne.App
	holdTimeSeconds int
	fullScreen      bool
	onDismiss       func()

	dismissOnce    sync.Once
	cmdQHotkey     *hotkey.Hotkey
	stopMonitoring chan struct{}
}

func NewAlertWindow(app fyne.App, holdTimeSeconds int, fullScreen bool, onDismiss func()) *AlertWindow {
	aw := &AlertWindow{
		app:             app,
		holdTimeSeconds: holdTimeSeconds,
		fullScreen:      fullScreen,
		onDismiss:       onDismiss,
		stopMonitoring:  make(chan struct{}),
	}

	// Create window and build UI on the main Fyne thread
	fyne.Do(func() {
		aw.window = app.NewWindow("Food is ready")
		aw.window.SetFullScreen(aw.fullScreen)
		if !aw.fullScreen {
			aw.window.Resize(fyne.NewSize(520, 320))
			aw.window.CenterOnScreen()
		}
		aw.buildUI()

		if aw.fullScreen {
			aw.registerCmdQPrevention()
		}
		go platform.KeepFocused(aw.stopMonitoring, 500*time.Millisecond, func() {
			fyne.Do(func() {
				aw.window.Show()
				aw.window.RequestFocus()
			})
		})

		// Closing the window any other way still silences the alarm
		aw.window.SetOnClosed(func() {
			close(aw.stopMonitoring)
			aw.dismiss()
			if aw.cmdQHotkey != nil {
				aw.cmdQHotkey.Unregister()
			}
		})
	})

	return aw
}

func (aw *AlertWindow) buildUI() {
	title := canvas.NewText("Everything is done!", nil)
	title.TextSize = 32
	title.Alignment = fyne.TextAlignCenter

	timeLabel := widget.NewLabel("Finished at " + time.Now().Format("3:04 PM"))
	timeLabel.Alignment = fyne.TextAlignCenter

	label := "Dismiss"
	if aw.holdTimeSeconds > 0 {
		label = fmt.Sprintf("Dismiss (Hold %ds)", aw.holdTimeSeconds)
	}
	dismissButton := components.NewHoldButton(label, time.Duration(aw.holdTimeSeconds)*time.Second, func() {
		aw.dismiss()
		fyne.Do(func() {
			aw.window.Close()
		})
	})

	content := container.NewVBox(
		container.NewPadded(title),
		timeLabel,
		widget.NewSeparator(),
		container.NewCenter(dismissButton),
	)

	aw.window.SetContent(container.NewPadded(container.NewCenter(content)))
}

func (aw *AlertWindow) dismiss() {
	aw.dismissOnce.Do(func() {
		if aw.onDismiss != nil {
			aw.onDismiss()
		}
	})
}

func (aw *AlertWindow) Show() {
	fyne.Do(func() {
		if aw.window != nil {
			aw.window.Show()
		}
	})
}
