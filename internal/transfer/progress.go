package transfer

import "github.com/imagenai/imagen-ai-sdk/imagentypes"

// progressDispatcher serializes progress callbacks onto a single goroutine so
// user code never runs on a transfer worker and a slow callback never blocks
// one. The channel is buffered for the whole batch. Each worker sends exactly
// one event, so sends cannot block.
type progressDispatcher struct {
	events chan string
	done   chan struct{}
}

// newProgressDispatcher starts the dispatch goroutine. A nil callback yields
// a dispatcher whose methods are no-ops.
func newProgressDispatcher(total int, fn imagentypes.ProgressFunc) *progressDispatcher {
	if fn == nil {
		return &progressDispatcher{}
	}

	d := &progressDispatcher{
		events: make(chan string, total),
		done:   make(chan struct{}),
	}
	go func() {
		defer close(d.done)
		completed := 0
		for file := range d.events {
			completed++
			fn(completed, total, file)
		}
	}()
	return d
}

// notify reports one file as finished, successfully or not.
func (d *progressDispatcher) notify(file string) {
	if d.events == nil {
		return
	}
	d.events <- file
}

// stop drains pending events and waits for the last callback to return.
func (d *progressDispatcher) stop() {
	if d.events == nil {
		return
	}
	close(d.events)
	<-d.done
}
