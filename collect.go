package termclock

import (
	"os"
	"os/signal"
	"syscall"
	"time"
)

// CollectInterrupt stops the reactor cleanly on the first SIGINT or SIGTERM.
func CollectInterrupt(r Reactor) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt, syscall.SIGTERM)
	go func() {
		defer signal.Stop(ch)
		select {
		case <-ch:
			r.Stop(nil)
		case <-r.Done():
		}
	}()
}

// CollectTicks enqueues fn immediately and then once per interval until the
// reactor finishes.
func CollectTicks(r Reactor, interval time.Duration, now func() time.Time, fn func(time.Time)) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		t := now()
		for {
			r.Enque(func() { fn(t) }, "tick")
			select {
			case <-ticker.C:
				t = now()
			case <-r.Done():
				return
			}
		}
	}()
}
