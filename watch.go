package nircmd

import (
	"context"
	"time"

	"vawter.tech/stopper"
)

// DefaultWatchInterval is the default polling interval for Watch
const DefaultWatchInterval = time.Second

// WatchEvent carries either an observed audio state or an error from
// a failed poll. Polling continues after errors.
type WatchEvent struct {
	// Volume is the device volume percentage at the time of the poll
	Volume int
	// Muted is the device mute state at the time of the poll
	Muted bool
	// Err is set when the poll itself failed
	Err error
}

// WatchCleanupFunc stops a watch and waits for its goroutine to exit
type WatchCleanupFunc func() error

// Watch polls the target device and emits an event whenever its volume
// or mute state changes. The first successful poll always emits. The
// returned cleanup function must be called to stop polling; the event
// channel is closed once the watch goroutine has exited.
//
// The wrapped tool has no change-notification interface, so this is a
// poll, one tool invocation pair per interval.
func (c *Client) Watch(ctx context.Context, interval time.Duration) (<-chan WatchEvent, WatchCleanupFunc, error) {
	if err := c.ready(); err != nil {
		return nil, nil, &OpError{Op: OpGetVolume, Err: err}
	}
	if interval <= 0 {
		interval = DefaultWatchInterval
	}

	ch := make(chan WatchEvent, 10)

	sctx := stopper.WithContext(ctx)
	sctx.Defer(func() {
		close(ch)
	})

	cleanup := func() error {
		sctx.Stop(stopGrace)
		return sctx.Wait()
	}

	var (
		lastVolume = VolumeUnknown
		lastMuted  bool
		havePrev   bool
	)

	poll := func(sctx *stopper.Context) {
		if sctx.IsStopping() {
			return
		}

		volume, err := c.Volume(ctx)
		var muted bool
		if err == nil {
			muted, err = c.Muted(ctx)
		}
		if err != nil {
			select {
			case ch <- WatchEvent{Err: err}:
			case <-sctx.Stopping():
			}
			return
		}

		if havePrev && volume == lastVolume && muted == lastMuted {
			return
		}
		lastVolume, lastMuted, havePrev = volume, muted, true

		select {
		case ch <- WatchEvent{Volume: volume, Muted: muted}:
		case <-sctx.Stopping():
		}
	}

	sctx.Go(func(sctx *stopper.Context) error {
		ticker := time.NewTicker(interval)
		sctx.Defer(ticker.Stop)

		poll(sctx)

		for !sctx.IsStopping() {
			select {
			case <-sctx.Stopping():
				return nil
			case <-ticker.C:
				poll(sctx)
			}
		}
		return nil
	})

	return ch, cleanup, nil
}
