package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/borgmon/kitchen-timer/pkg/models"
	"github.com/borgmon/kitchen-timer/pkg/schedule"
	"github.com/borgmon/kitchen-timer/pkg/ui/components"
)

// MainWindow shows the master clock, the controls and both item lists
type MainWindow struct {
	window fyne.Window
	kt     *KitchenTimer

	clockText   *canvas.Text
	nextLabel   *widget.Label
	statusLabel *widget.Label

	startButton *widget.Button
	resetButton *widget.Button
	setButton   *widget.Button
	addButton   *widget.Button
	openButton  *widget.Button

	pending    *components.ItemList
	inProgress *components.ItemList
}

func NewMainWindow(kt *KitchenTimer) *MainWindow {
	mw := &MainWindow{kt: kt}

	mw.window = kt.app.NewWindow("Kitchen Timer")
	mw.buildUI()

	// Closing the window keeps the timer running in the tray
	if _, ok := kt.app.(desktop.App); ok {
		mw.window.SetCloseIntercept(func() {
			mw.window.Hide()
		})
	} else {
		mw.window.SetMaster()
	}

	return mw
}

func (mw *MainWindow) buildUI() {
	mw.clockText = canvas.NewText("0:00", theme.PrimaryColor())
	mw.clockText.TextSize = 96
	mw.clockText.TextStyle.Monospace = true
	mw.clockText.Alignment = fyne.TextAlignCenter

	mw.nextLabel = widget.NewLabel("")
	mw.nextLabel.Alignment = fyne.TextAlignCenter

	mw.statusLabel = widget.NewLabel("")
	mw.statusLabel.Alignment = fyne.TextAlignCenter
	mw.statusLabel.Importance = widget.WarningImportance

	mw.startButton = widget.NewButtonWithIcon("Start", theme.MediaPlayIcon(), mw.kt.toggle)
	mw.startButton.Importance = widget.SuccessImportance

	mw.resetButton = widget.NewButtonWithIcon("Reset", theme.MediaReplayIcon(), func() {
		mw.statusLabel.SetText("")
		mw.kt.timer.Reset()
	})
	mw.resetButton.Importance = widget.DangerImportance

	mw.setButton = widget.NewButtonWithIcon("Set Timer", theme.HistoryIcon(), func() {
		showSetTimerDialog(mw.window, mw.kt.timer)
	})

	mw.addButton = widget.NewButtonWithIcon("Add Item", theme.ContentAddIcon(), func() {
		showAddItemDialog(mw.window, mw.kt.timer)
	})
	mw.addButton.Importance = widget.HighImportance

	mw.openButton = widget.NewButtonWithIcon("", theme.FolderOpenIcon(), func() {
		showImportDialog(mw.window, mw.kt.timer)
	})
	exportButton := widget.NewButtonWithIcon("", theme.DocumentSaveIcon(), func() {
		showExportDialog(mw.window, mw.kt.timer)
	})
	settingsButton := widget.NewButtonWithIcon("", theme.SettingsIcon(), func() {
		mw.kt.showSettingsWindow()
	})

	onEdit := func(id models.ItemID) {
		if item, ok := mw.kt.timer.Item(id); ok {
			showEditItemDialog(mw.window, mw.kt.timer, item)
		}
	}
	onRemove := func(id models.ItemID) {
		mw.kt.timer.RemoveItem(id)
	}

	var pendingList, inProgressList *fyne.Container
	mw.pending, pendingList = components.NewItemList(components.ItemListConfig{
		Title:    "Up next",
		OnEdit:   onEdit,
		OnRemove: onRemove,
	})
	mw.inProgress, inProgressList = components.NewItemList(components.ItemListConfig{
		Title:    "Cooking",
		OnEdit:   onEdit,
		OnRemove: onRemove,
	})

	controls := container.NewHBox(mw.startButton, mw.resetButton, mw.setButton, mw.addButton)
	clockPanel := container.NewVBox(
		container.NewPadded(mw.clockText),
		mw.nextLabel,
		container.NewCenter(controls),
		mw.statusLabel,
	)

	toolbar := container.NewBorder(nil, nil, nil, container.NewHBox(mw.openButton, exportButton, settingsButton))
	lists := container.NewGridWithRows(2, pendingList, inProgressList)

	split := container.NewHSplit(container.NewCenter(clockPanel), lists)
	split.Offset = 0.45

	mw.window.SetContent(container.NewBorder(toolbar, nil, nil, nil, split))
	mw.window.Resize(fyne.NewSize(960, 560))
	mw.window.CenterOnScreen()
}

// Update redraws the window from a schedule view. Call on the UI goroutine.
func (mw *MainWindow) Update(view schedule.View) {
	mw.clockText.Text = schedule.FormatClock(view.Clock)
	if view.Armed {
		mw.clockText.Color = theme.ForegroundColor()
	} else {
		mw.clockText.Color = theme.PrimaryColor()
	}
	mw.clockText.Refresh()

	if next := view.Next.String(); next != "" {
		mw.nextLabel.SetText("Next: " + next)
	} else if len(view.InProgress) > 0 {
		mw.nextLabel.SetText("Everything is cooking")
	} else {
		mw.nextLabel.SetText("Add an item to get started")
	}

	if view.Armed {
		mw.startButton.SetText("Pause")
		mw.startButton.SetIcon(theme.MediaPauseIcon())
		mw.startButton.Importance = widget.WarningImportance
		mw.startButton.Enable()
		mw.resetButton.Disable()
		mw.setButton.Disable()
		mw.addButton.Disable()
		mw.openButton.Disable()
	} else {
		mw.startButton.SetText("Start")
		mw.startButton.SetIcon(theme.MediaPlayIcon())
		mw.startButton.Importance = widget.SuccessImportance
		if view.Clock == 0 {
			mw.startButton.Disable()
		} else {
			mw.startButton.Enable()
		}
		mw.resetButton.Enable()
		mw.setButton.Enable()
		mw.addButton.Enable()
		mw.openButton.Enable()
	}
	mw.startButton.Refresh()

	mw.pending.SetEntries(view.Pending)
	mw.inProgress.SetEntries(view.InProgress)
}

// ShowAlert puts the latest start alert under the controls
func (mw *MainWindow) ShowAlert(alert models.Alert) {
	mw.statusLabel.SetText(fmt.Sprintf("Start cooking %s now", alert.ItemName))
}

func (mw *MainWindow) Show() {
	mw.window.Show()
}
