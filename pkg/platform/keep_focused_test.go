package platform

import (
	"testing"
	"time"
)

func TestKeepFocusedReturnsOnStop(t *testing.T) {
	stop := make(chan struct{})
	done := make(chan struct{})
	go func() {
		KeepFocused(stop, time.Millisecond, nil)
		close(done)
	}()

	time.Sleep(10 * time.Millisecond)
	close(stop)
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("KeepFocused did not return after stop")
	}
}
