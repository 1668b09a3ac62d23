package main

import (
	"log"
	"os"
	"path/filepath"
	"slices"

	"github.com/emersion/go-autostart"
)

// trayFlag is passed by the login entry so the timer starts hidden in the tray
const trayFlag = "--tray"

// loginEntry describes the launch-at-login registration for the binary at execPath
func loginEntry(execPath string) *autostart.App {
	return &autostart.App{
		Name:        "kitchen-timer",
		DisplayName: "Kitchen Timer",
		Exec:        []string{execPath, trayFlag},
	}
}

// startedFromLogin reports whether args came from the login entry
func startedFromLogin(args []string) bool {
	return slices.Contains(args, trayFlag)
}

// setupAutostart makes the login entry match enable. Nothing is touched
// when it already does.
func setupAutostart(enable bool) error {
	execPath, err := os.Executable()
	if err != nil {
		return err
	}
	if execPath, err = filepath.EvalSymlinks(execPath); err != nil {
		return err
	}

	entry := loginEntry(execPath)
	if entry.IsEnabled() == enable {
		return nil
	}

	action, apply := "enable", entry.Enable
	if !enable {
		action, apply = "disable", entry.Disable
	}
	if err := apply(); err != nil {
		log.Printf("Failed to %s launch at login: %v", action, err)
		return err
	}
	log.Printf("Launch at login: %sd", action)
	return nil
}
