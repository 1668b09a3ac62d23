//go:build darwin

package main

import (
	"log"

	"golang.design/x/hotkey"
)

// registerCmdQPrevention swallows Cmd+Q while the full screen alert is up
func (aw *AlertWindow) registerCmdQPrevention() {
	go func() {
		hk := hotkey.New([]hotkey.Modifier{hotkey.ModCmd}, hotkey.KeyQ)
		if err := hk.Register(); err != nil {
			log.Printf("Failed to register Cmd+Q hotkey prevention: %v", err)
			return
		}
		aw.cmdQHotkey = hk

		for range hk.Keydown() {
			log.Println("Cmd+Q blocked - hold the Dismiss button to silence the alarm")
		}
	}()
}
