package service

import (
	"context"
	"errors"
	"sync"
	"time"
)

type clientSessionWatcher struct {
	sessions ClientSessionService

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClientSessionWatcher creates a watcher that re-checks the cached
// session on a ticker. The watcher is idle until Start is called.
func NewClientSessionWatcher(sessions ClientSessionService) ClientSessionWatcher {
	return &clientSessionWatcher{sessions: sessions}
}

// Start implements ClientSessionWatcher. It stops any previously running
// watcher, then launches a background goroutine that calls RestoreSession
// every interval; once the session comes back expired the onExpired callback
// fires and the goroutine exits. If interval is zero or negative it defaults
// to one minute.
func (w *clientSessionWatcher) Start(ctx context.Context, interval time.Duration, onExpired func()) {
	if interval <= 0 {
		interval = time.Minute
	}

	w.Stop()

	w.mu.Lock()
	watchCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.wg.Add(1)
	w.mu.Unlock()

	go func() {
		defer w.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-watchCtx.Done():
				return
			case <-t.C:
				if _, err := w.sessions.RestoreSession(watchCtx); errors.Is(err, ErrNotAuthenticated) {
					if onExpired != nil {
						onExpired()
					}
					return
				}
			}
		}
	}()
}

// Stop implements ClientSessionWatcher. It cancels the background
// goroutine's context and blocks until the goroutine has fully exited. Safe
// to call when the watcher is not running (no-op in that case).
func (w *clientSessionWatcher) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}
