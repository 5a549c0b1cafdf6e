package termclock

import "sync"

// Reactor runs queued events one at a time on the goroutine that calls Run.
// All clock state is mutated from inside events, so none of it is locked.
type Reactor interface {
	Enque(fn func(), source string)
	Run() error
	Stop(error)
	Done() <-chan struct{}
	GetCycle() int
}

func NewReactor() Reactor {
	return &reactor{
		queue: make(chan event, 1024),
		stop:  make(chan error, 1),
		done:  make(chan struct{}),
	}
}

type event struct {
	action func()
	source string
}

type reactor struct {
	queue    chan event
	stop     chan error
	done     chan struct{}
	doneOnce sync.Once
	cycle    int
}

// Enque drops the event if the reactor has already finished.
func (r *reactor) Enque(fn func(), source string) {
	select {
	case r.queue <- event{action: fn, source: source}:
	case <-r.done:
	}
}

func (r *reactor) Run() error {
	defer r.doneOnce.Do(func() { close(r.done) })
	for {
		r.cycle++
		log.SetCycle(r.cycle)

		// Check stopping condition first, since it has the highest priority.
		select {
		case err := <-r.stop:
			log.Flush()
			return err
		default:
		}

		// Wait for the stopping condition, or the next event to process.
		select {
		case event := <-r.queue:
			log.Debug("Running event from: %s", event.source)
			event.action()
			if err := log.Flush(); err != nil {
				r.Stop(err)
			}
		case err := <-r.stop:
			log.Flush()
			return err
		}
	}
}

// Stop asks Run to return err. Only the first call has any effect.
func (r *reactor) Stop(err error) {
	select {
	case r.stop <- err:
	default:
	}
}

func (r *reactor) Done() <-chan struct{} {
	return r.done
}

func (r *reactor) GetCycle() int {
	return r.cycle
}
