package main

import (
	"context"
	"log"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/borgmon/kitchen-timer/pkg/audio"
	"github.com/borgmon/kitchen-timer/pkg/kitchen"
	"github.com/borgmon/kitchen-timer/pkg/logger"
	"github.com/borgmon/kitchen-timer/pkg/models"
	"github.com/borgmon/kitchen-timer/pkg/platform"
	"github.com/borgmon/kitchen-timer/pkg/store"
	"golang.design/x/hotkey"
)

const appID = "com.borgmon.kitchen-timer"

type KitchenTimer struct {
	app            fyne.App
	log            logger.Logger
	config         *models.Config
	configStore    *store.ConfigStore
	timer          *kitchen.Timer
	mainWindow     *MainWindow
	settingsWindow *SettingsWindow
	tray           *trayMenu
	toggleHotkey   *hotkey.Hotkey
	cancel         context.CancelFunc
}

func main() {
	kt := &KitchenTimer{
		app: app.NewWithID(appID),
		log: logger.Default(),
	}

	if err := kt.initialize(); err != nil {
		log.Fatal(err)
	}

	kt.run()
}

func (kt *KitchenTimer) initialize() error {
	store.LoadDotEnv(kt.log)
	kt.configStore = store.NewConfigStore(kt.app)
	kt.config = kt.configStore.Load()
	store.ApplyEnv(kt.config, kt.log)

	// Sync autostart state with config on startup
	if err := setupAutostart(kt.config.AutoStart); err != nil {
		log.Printf("Warning: failed to setup autostart: %v", err)
	}

	kt.timer = kitchen.New(
		kitchen.WithLogger(kt.log),
		kitchen.WithTickInterval(kt.config.TickInterval),
	)

	sounds, err := audio.LoadSoundBank(kt.config.SoundPath, kt.log)
	if err != nil {
		log.Printf("Warning: %v, falling back to the built-in bell", err)
		sounds = audio.NewSoundBank(nil, kt.log)
	}

	ctx, cancel := context.WithCancel(context.Background())
	kt.cancel = cancel

	alerts, _ := kt.timer.Alerts()
	go audio.NewDispatcher(sounds, kt.showAlert, kt.log).Run(ctx, alerts)

	kt.mainWindow = NewMainWindow(kt)
	kt.setupSystemTray()
	kt.registerToggleHotkey()
	kt.watchChanges()

	return nil
}

func (kt *KitchenTimer) run() {
	// A launch at login waits in the tray until it is needed
	if !startedFromLogin(os.Args[1:]) {
		kt.mainWindow.Show()
	}
	kt.app.Run()
	kt.shutdown()
}

// watchChanges redraws the main window and tray after every timer change
func (kt *KitchenTimer) watchChanges() {
	changes, _ := kt.timer.Changes()

	// First draw happens before the app runs, on the main goroutine
	view := kt.timer.View()
	kt.mainWindow.Update(view)
	kt.updateSystemTrayMenu(view)

	go func() {
		for range changes {
			view := kt.timer.View()
			fyne.Do(func() {
				kt.mainWindow.Update(view)
				kt.updateSystemTrayMenu(view)
			})
		}
	}()
}

// toggle starts a stopped countdown or pauses a running one
func (kt *KitchenTimer) toggle() {
	if kt.timer.Running() {
		kt.timer.Pause()
		return
	}
	if !kt.timer.Start() {
		log.Println("Nothing to count down: set the timer or add an item first")
	}
}

// showAlert is called by the alert dispatcher for every alert
func (kt *KitchenTimer) showAlert(alert models.Alert, stop audio.Stopper) {
	platform.RequestAttention()

	if !alert.IsTerminal() {
		kt.app.SendNotification(fyne.NewNotification("Start cooking", alert.ItemName))
		fyne.Do(func() {
			kt.mainWindow.ShowAlert(alert)
		})
		return
	}

	// kt.config is owned by the UI goroutine
	fyne.Do(func() {
		alertWindow := NewAlertWindow(kt.app, kt.config.HoldTimeSeconds, kt.config.FullScreenAlert, func() {
			stop.Stop()
			log.Println("Finish alarm dismissed")
		})
		alertWindow.Show()
	})
}

func (kt *KitchenTimer) showSettingsWindow() {
	// If the settings window is already open, just bring it to front
	if kt.settingsWindow != nil {
		kt.settingsWindow.window.RequestFocus()
		kt.settingsWindow.window.Show()
		return
	}

	kt.settingsWindow = NewSettingsWindow(kt.app, kt.config, func(newConfig *models.Config) {
		kt.config = newConfig
		kt.configStore.Save(kt.config)
	})
	kt.settingsWindow.window.SetOnClosed(func() {
		kt.settingsWindow = nil
	})
	kt.settingsWindow.Show()
}

func (kt *KitchenTimer) shutdown() {
	if kt.toggleHotkey != nil {
		kt.toggleHotkey.Unregister()
	}
	if kt.cancel != nil {
		kt.cancel()
	}
	kt.timer.Close()
}

func (kt *KitchenTimer) quit() {
	kt.app.Quit()
}
