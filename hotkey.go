package main

import (
	"log"

	"golang.design/x/hotkey"
)

// registerToggleHotkey binds Ctrl+Shift+K to start/pause from anywhere
func (kt *KitchenTimer) registerToggleHotkey() {
	go func() {
		hk := hotkey.New([]hotkey.Modifier{hotkey.ModCtrl, hotkey.ModShift}, hotkey.KeyK)
		if err := hk.Register(); err != nil {
			log.Printf("Failed to register start/pause hotkey: %v", err)
			return
		}
		kt.toggleHotkey = hk
		log.Println("Ctrl+Shift+K toggles the countdown")

		for range hk.Keydown() {
			kt.toggle()
		}
	}()
}
