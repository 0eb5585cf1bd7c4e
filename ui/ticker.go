package ui

import (
	"context"
	"time"
)

// Tick calls fn through queue at every interval until ctx is done. dt is the
// wall time since the previous frame in seconds. queue is normally
// app.QueueUpdateDraw so fn runs on the UI goroutine.
func Tick(ctx context.Context, queue func(func()), interval time.Duration, fn func(dt float64)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			queue(func() { fn(dt) })
		}
	}
}
