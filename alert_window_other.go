//go:build !darwin

package main

// registerCmdQPrevention is macOS only
func (aw *AlertWindow) registerCmdQPrevention() {}
