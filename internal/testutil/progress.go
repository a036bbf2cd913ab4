// Package testutil provides test utilities for progress reporting.
package testutil

import "sync"

// ProgressUpdate represents a single progress callback invocation.
type ProgressUpdate struct {
	Completed int
	Total     int
	File      string
}

// ProgressRecorder captures progress callbacks for assertions. Callbacks are
// delivered from a dispatcher goroutine, so access is guarded by a mutex.
type ProgressRecorder struct {
	mu      sync.Mutex
	updates []ProgressUpdate
}

// Record is the callback to hand to upload or download configuration.
func (r *ProgressRecorder) Record(completed, total int, file string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.updates = append(r.updates, ProgressUpdate{Completed: completed, Total: total, File: file})
}

// Updates returns a copy of all recorded callbacks in delivery order.
func (r *ProgressRecorder) Updates() []ProgressUpdate {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]ProgressUpdate, len(r.updates))
	copy(out, r.updates)
	return out
}

// Count returns how many callbacks were recorded.
func (r *ProgressRecorder) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.updates)
}

// Files returns the file names in callback delivery order.
func (r *ProgressRecorder) Files() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.updates))
	for i, u := range r.updates {
		out[i] = u.File
	}
	return out
}
