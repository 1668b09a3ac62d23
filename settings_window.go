package main

import (
	"fmt"
	"log"
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
	"github.com/borgmon/kitchen-timer/pkg/audio"
	"github.com/borgmon/kitchen-timer/pkg/logger"
	"github.com/borgmon/kitchen-timer/pkg/models"
)

type SettingsWindow struct {
	window fyne.Window
	app    fyne.App
	config *models.Config
	onSave func(*models.Config)

	autoStartCheck  *widget.Check
	fullScreenCheck *widget.Check
	holdTimeSelect  *widget.Select
	soundEntry      *widget.Entry

	saveStatusLabel *widget.Label
	saveButton      *widget.Button
}

func NewSettingsWindow(app fyne.App, config *models.Config, onSave func(*models.Config)) *SettingsWindow {
	sw := &SettingsWindow{
		app:    app,
		config: config,
		onSave: onSave,
	}

	sw.window = app.NewWindow("Kitchen Timer - Settings")
	sw.buildUI()

	return sw
}

func (sw *SettingsWindow) buildUI() {
	markChanged := func() { sw.updateSaveButtonState() }

	sw.autoStartCheck = widget.NewCheck("Launch at login", func(bool) { markChanged() })
	sw.autoStartCheck.SetChecked(sw.config.AutoStart)

	sw.fullScreenCheck = widget.NewCheck("Cover the screen when everything is done", func(bool) { markChanged() })
	sw.fullScreenCheck.SetChecked(sw.config.FullScreenAlert)

	holdTimeOptions := []string{"0 sec"}
	for i := 1; i <= 10; i++ {
		holdTimeOptions = append(holdTimeOptions, strconv.Itoa(i)+" sec")
	}
	sw.holdTimeSelect = widget.NewSelect(holdTimeOptions, func(string) { markChanged() })
	holdTime := sw.config.HoldTimeSeconds
	if holdTime > 10 {
		holdTime = 10
	}
	sw.holdTimeSelect.SetSelected(strconv.Itoa(holdTime) + " sec")

	sw.soundEntry = widget.NewEntry()
	sw.soundEntry.SetPlaceHolder("Built-in bell")
	sw.soundEntry.SetText(sw.config.SoundPath)
	sw.soundEntry.OnChanged = func(string) { markChanged() }

	browseButton := widget.NewButton("Browse...", sw.browseSound)
	testButton := widget.NewButton("Test", sw.testSound)
	clearButton := widget.NewButton("Use Bell", func() {
		sw.soundEntry.SetText("")
	})

	autoStartHelp := widget.NewLabel("Start Kitchen Timer in the tray when you log in")
	autoStartHelp.Importance = widget.MediumImportance

	holdHelp := widget.NewLabel("How long to hold Dismiss to silence the finish alarm")
	holdHelp.Importance = widget.MediumImportance

	soundHelp := widget.NewLabel("16-bit PCM WAV file. Takes effect after a restart.")
	soundHelp.Wrapping = fyne.TextWrapWord
	soundHelp.Importance = widget.MediumImportance

	form := container.New(layout.NewFormLayout(),
		container.NewVBox(widget.NewLabel("Auto Start:"), autoStartHelp),
		sw.autoStartCheck,

		container.NewVBox(widget.NewLabel("Finish Alert:"), holdHelp),
		container.NewVBox(sw.fullScreenCheck, sw.holdTimeSelect),

		container.NewVBox(widget.NewLabel("Alert Sound:"), soundHelp),
		container.NewBorder(nil, container.NewHBox(browseButton, clearButton, testButton), nil, nil, sw.soundEntry),
	)

	sw.saveStatusLabel = widget.NewLabel("")
	sw.saveButton = widget.NewButton("Save", sw.save)
	sw.saveButton.Importance = widget.HighImportance
	sw.saveButton.Disable()

	closeButton := widget.NewButton("Close", sw.handleClose)

	buttonRow := container.NewBorder(nil, nil,
		container.NewHBox(sw.saveButton, sw.saveStatusLabel),
		closeButton,
	)

	content := container.NewBorder(
		nil,
		container.NewPadded(buttonRow),
		nil,
		nil,
		container.NewPadded(container.NewVScroll(form)),
	)

	sw.window.SetContent(content)
	sw.window.Resize(fyne.NewSize(640, 360))
	sw.window.CenterOnScreen()

	sw.window.SetCloseIntercept(sw.handleClose)
}

func (sw *SettingsWindow) save() {
	sw.saveButton.Disable()
	sw.saveStatusLabel.SetText("Saving...")
	sw.saveStatusLabel.Importance = widget.MediumImportance
	sw.saveStatusLabel.Refresh()

	newConfig := sw.getConfigFromUI()
	go func() {
		if err := setupAutostart(newConfig.AutoStart); err != nil {
			log.Printf("Error setting autostart: %v", err)
			fyne.Do(func() {
				sw.saveStatusLabel.SetText("Error: Failed to set autostart")
				sw.saveStatusLabel.Importance = widget.DangerImportance
				sw.saveStatusLabel.Refresh()
				sw.updateSaveButtonState()
			})
			return
		}

		fyne.Do(func() {
			if sw.onSave != nil {
				sw.onSave(newConfig)
			}
			sw.config = newConfig
			sw.saveStatusLabel.SetText("Settings saved")
			sw.saveStatusLabel.Importance = widget.SuccessImportance
			sw.saveStatusLabel.Refresh()
			sw.updateSaveButtonState()

			// Clear the message after 3 seconds
			time.AfterFunc(3*time.Second, func() {
				fyne.Do(func() {
					if sw.saveStatusLabel.Text == "Settings saved" {
						sw.saveStatusLabel.SetText("")
					}
				})
			})
		})
	}()
}

func (sw *SettingsWindow) browseSound() {
	open := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, sw.window)
			return
		}
		if reader == nil {
			return
		}
		defer reader.Close()
		sw.soundEntry.SetText(reader.URI().Path())
	}, sw.window)
	open.SetFilter(storage.NewExtensionFileFilter([]string{".wav"}))
	open.Show()
}

func (sw *SettingsWindow) testSound() {
	bank, err := audio.LoadSoundBank(sw.soundEntry.Text, logger.Default())
	if err != nil {
		dialog.ShowError(fmt.Errorf("cannot use this sound: %w", err), sw.window)
		return
	}
	bank.Play(models.Alert{Kind: models.AlertItemStart, ItemName: "test"})
}

func (sw *SettingsWindow) getConfigFromUI() *models.Config {
	holdTime := sw.config.HoldTimeSeconds
	if sw.holdTimeSelect.Selected != "" {
		var val int
		if _, err := fmt.Sscanf(sw.holdTimeSelect.Selected, "%d sec", &val); err == nil {
			holdTime = val
		}
	}

	return &models.Config{
		AutoStart:       sw.autoStartCheck.Checked,
		HoldTimeSeconds: holdTime,
		SoundPath:       sw.soundEntry.Text,
		FullScreenAlert: sw.fullScreenCheck.Checked,
		TickInterval:    sw.config.TickInterval,
	}
}

func (sw *SettingsWindow) Show() {
	sw.window.Show()
}

func (sw *SettingsWindow) hasActualChanges() bool {
	return *sw.getConfigFromUI() != *sw.config
}

// updateSaveButtonState enables the save button only when something changed
func (sw *SettingsWindow) updateSaveButtonState() {
	if sw.saveButton == nil || sw.soundEntry == nil {
		return
	}
	if sw.hasActualChanges() {
		sw.saveButton.Enable()
	} else {
		sw.saveButton.Disable()
	}
}

// handleClose asks before throwing away unsaved changes
func (sw *SettingsWindow) handleClose() {
	if !sw.hasActualChanges() {
		sw.window.Close()
		return
	}
	dialog.ShowConfirm("Unsaved Changes",
		"You have unsaved changes. Are you sure you want to close?",
		func(confirmed bool) {
			if confirmed {
				sw.window.Close()
			}
		}, sw.window)
}
