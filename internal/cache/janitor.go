package cache

import (
	"sync"
	"time"
)

// janitor runs a sweep function on a fixed interval in its own goroutine.
// It carries an explicit start/stop lifecycle instead of being tied to the
// cache constructor, so the owning process decides when the sweep runs and
// when its timer is released.
type janitor struct {
	mu       sync.Mutex
	interval time.Duration
	stopCh   chan struct{}
	doneCh   chan struct{}
}

func newJanitor(interval time.Duration) *janitor {
	return &janitor{interval: interval}
}

// start launches the sweep loop. A loop that is already running is stopped
// first, so repeated starts never leak a goroutine.
func (j *janitor) start(sweep func()) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.stopLocked()

	stopCh := make(chan struct{})
	doneCh := make(chan struct{})
	j.stopCh, j.doneCh = stopCh, doneCh

	go func() {
		defer close(doneCh)
		ticker := time.NewTicker(j.interval)
		defer ticker.Stop()
		for {
			select {
			case <-stopCh:
				return
			case <-ticker.C:
				sweep()
			}
		}
	}()
}

// stop cancels the loop and waits for it to exit. Safe when not running.
func (j *janitor) stop() {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.stopLocked()
}

func (j *janitor) stopLocked() {
	if j.stopCh == nil {
		return
	}
	close(j.stopCh)
	<-j.doneCh
	j.stopCh, j.doneCh = nil, nil
}
