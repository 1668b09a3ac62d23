package main

import (
	"slices"
	"testing"
)

func TestLoginEntryStartsInTray(t *testing.T) {
	entry := loginEntry("/opt/kitchen-timer/kitchen-timer")

	if entry.Name != "kitchen-timer" {
		t.Errorf("Name = %q", entry.Name)
	}
	want := []string{"/opt/kitchen-timer/kitchen-timer", trayFlag}
	if !slices.Equal(entry.Exec, want) {
		t.Errorf("Exec = %v, want %v", entry.Exec, want)
	}
	if !startedFromLogin(entry.Exec) {
		t.Error("login entry args not recognised")
	}
}

func TestStartedFromLogin(t *testing.T) {
	tests := []struct {
		args []string
		want bool
	}{
		{[]string{"kitchen-timer"}, false},
		{[]string{"kitchen-timer", "--tray"}, true},
		{[]string{"kitchen-timer", "--trays"}, false},
	}
	for _, tt := range tests {
		if got := startedFromLogin(tt.args); got != tt.want {
			t.Errorf("startedFromLogin(%v) = %v, want %v", tt.args, got, tt.want)
		}
	}
}
