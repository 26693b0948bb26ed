// Package registry holds the dense summation kernel variants.
//
// Variants register themselves from init functions in the arch packages. The
// kernel package selects the highest-priority variant the CPU supports.
package registry

import (
	"sync"

	"github.com/cwbudde/algo-colsum/internal/cpu"
)

// OpEntry is one registered kernel variant. Dense kernels assume the input
// holds no missing element.
type OpEntry struct {
	Name      string
	SIMDLevel cpu.SIMDLevel

	// Priority orders compatible variants; higher wins.
	Priority int

	// SumFloat64 returns the sum of x, 0 for an empty slice.
	SumFloat64 func(x []float64) float64

	// SumInt32 returns the exact sum of x in a 64-bit accumulator.
	SumInt32 func(x []int32) int64
}

// OpRegistry stores the registered variants.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []OpEntry
	sorted  bool
}

// Global is the registry used by the kernel package.
var Global = &OpRegistry{}

// Register adds a variant. All registrations should happen before the first
// Lookup.
func (r *OpRegistry) Register(entry OpEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup returns the highest-priority variant supported by features, or nil.
func (r *OpRegistry) Lookup(features cpu.Features) *OpEntry {
	r.mu.Lock()
	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}
	r.mu.Unlock()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		entry := &r.entries[i]
		if cpu.Supports(features, entry.SIMDLevel) {
			return entry
		}
	}

	return nil
}

// sortByPriority orders entries by descending priority. r.mu must be held.
func (r *OpRegistry) sortByPriority() {
	for i := 1; i < len(r.entries); i++ {
		key := r.entries[i]
		j := i - 1
		for j >= 0 && r.entries[j].Priority < key.Priority {
			r.entries[j+1] = r.entries[j]
			j--
		}
		r.entries[j+1] = key
	}
}

// ListEntries returns a copy of the registered entries.
func (r *OpRegistry) ListEntries() []OpEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]OpEntry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Reset removes every entry. Intended for tests.
func (r *OpRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	r.sorted = false
}
