// Package scheduler runs recurring maintenance tasks on a fixed interval.
package scheduler

import (
	"context"
	"log"
	"time"
)

type Task func(ctx context.Context) error

// Every runs task immediately and then once per interval until ctx is
// cancelled. Task errors are logged, not fatal; the next tick runs anyway.
func Every(ctx context.Context, interval time.Duration, name string, task Task) {
	t := time.NewTicker(interval)
	defer t.Stop()

	run := func() {
		if err := task(ctx); err != nil {
			log.Printf("level=error msg=\"task\" name=%s err=%v", name, err)
		}
	}
	run()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			run()
		}
	}
}
