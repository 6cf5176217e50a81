package countdown

import (
	"sync"
	"time"
)

var simulatedEpoch = time.Date(2022, time.August, 1, 0, 0, 0, 0, time.UTC)

// simulatedClock moves only by Advance. Advance delivers every due tick and
// blocks until the tick is received, so ticks come one by one in order.
type simulatedClock struct {
	now     time.Time
	tickers []*simulatedTicker
	sync.RWMutex
}

func newSimulatedClock() *simulatedClock {
	return &simulatedClock{now: simulatedEpoch}
}

func (c *simulatedClock) NewTicker(d time.Duration) Ticker {
	c.Lock()
	defer c.Unlock()

	tk := &simulatedTicker{
		c:      make(chan time.Time),
		stopch: make(chan struct{}),
		d:      d,
		next:   c.now.Add(d),
	}

	c.tickers = append(c.tickers, tk)

	return tk
}

func (c *simulatedClock) Now() time.Time {
	c.RLock()
	defer c.RUnlock()

	return c.now
}

func (c *simulatedClock) Elapsed() time.Duration {
	return c.Now().Sub(simulatedEpoch)
}

func (c *simulatedClock) Tickers() int {
	c.RLock()
	defer c.RUnlock()

	return len(c.tickers)
}

func (c *simulatedClock) Advance(d time.Duration) {
	c.Lock()
	end := c.now.Add(d)
	tickers := make([]*simulatedTicker, len(c.tickers))
	copy(tickers, c.tickers)
	c.Unlock()

	for {
		var due *simulatedTicker

		for i := range tickers {
			tk := tickers[i]

			switch {
			case tk.isStopped(), tk.next.After(end):
			case due == nil, tk.next.Before(due.next):
				due = tk
			}
		}

		if due == nil {
			break
		}

		at := due.next
		due.next = due.next.Add(due.d)

		c.Lock()
		c.now = at
		c.Unlock()

		select {
		case due.c <- at:
		case <-due.stopch:
		}
	}

	c.Lock()
	c.now = end
	c.Unlock()
}

type simulatedTicker struct {
	next     time.Time
	c        chan time.Time
	stopch   chan struct{}
	d        time.Duration
	stopOnce sync.Once
}

func (tk *simulatedTicker) C() <-chan time.Time {
	return tk.c
}

func (tk *simulatedTicker) Stop() {
	tk.stopOnce.Do(func() {
		close(tk.stopch)
	})
}

func (tk *simulatedTicker) isStopped() bool {
	select {
	case <-tk.stopch:
		return true
	default:
		return false
	}
}
