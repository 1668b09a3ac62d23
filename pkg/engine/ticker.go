package engine

import "time"

// Clock creates the tickers that pace the countdown.
type Clock interface {
	NewTicker(d time.Duration) Ticker
}

// Ticker delivers one value per quantum until stopped.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// SystemClock paces ticks with time.Ticker.
var SystemClock Clock = systemClock{}

type systemClock struct{}

func (systemClock) NewTicker(d time.Duration) Ticker {
	return tickerWrap{time.NewTicker(d)}
}

type tickerWrap struct{ *time.Ticker }

func (t tickerWrap) C() <-chan time.Time { return t.Ticker.C }
