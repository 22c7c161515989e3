package snapshot

import (
	"sync"

	"github.com/eugenenazirov/confres/internal/config"
)

// Holder keeps the most recently resolved configuration record and guards
// access with a RWMutex. Records themselves are immutable values; the holder
// only coordinates swapping the published record between a writer (the watch
// loop) and concurrent readers.
type Holder struct {
	mu     sync.RWMutex
	set    bool
	record config.Record
}

// NewHolder creates an empty holder with no published record.
func NewHolder() *Holder {
	return &Holder{}
}

// Publish stores the record and reports whether it differs from the
// previously published one. The first publish always reports a change.
func (h *Holder) Publish(record config.Record) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	changed := !h.set || h.record != record
	h.record = record
	h.set = true
	return changed
}

// Current returns the most recently published record and whether one has
// been published yet.
func (h *Holder) Current() (config.Record, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return h.record, h.set
}
