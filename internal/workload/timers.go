package workload

import "time"

type workTicker interface {
	C() <-chan time.Time
	Stop()
}

type tickerFactory func(d time.Duration) workTicker

type stdTicker struct {
	t *time.Ticker
}

func (t *stdTicker) C() <-chan time.Time { return t.t.C }
func (t *stdTicker) Stop()               { t.t.Stop() }

func defaultTickerFactory(d time.Duration) workTicker {
	return &stdTicker{t: time.NewTicker(d)}
}
