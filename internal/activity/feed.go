// Package activity keeps a bounded in-memory feed of recent automation
// decisions, populated from domain events. It records what the engine
// decided, not canonical lead state, which lives with the caller.
package activity

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Entry is one recorded automation decision.
type Entry struct {
	ID         uuid.UUID      `json:"id"`
	Kind       string         `json:"kind"`
	LeadID     uuid.UUID      `json:"leadId"`
	Detail     map[string]any `json:"detail,omitempty"`
	OccurredAt time.Time      `json:"occurredAt"`
}

// DefaultCapacity bounds the feed when no explicit capacity is given.
const DefaultCapacity = 200

// Feed is a fixed-capacity ring of recent entries, newest first on read.
// Safe for concurrent use.
type Feed struct {
	mu       sync.RWMutex
	entries  []Entry
	next     int
	size     int
	capacity int
}

// NewFeed creates a feed holding at most capacity entries. Non-positive
// capacities fall back to the default.
func NewFeed(capacity int) *Feed {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Feed{
		entries:  make([]Entry, capacity),
		capacity: capacity,
	}
}

// Record appends an entry, evicting the oldest when the feed is full.
func (f *Feed) Record(entry Entry) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.entries[f.next] = entry
	f.next = (f.next + 1) % f.capacity
	if f.size < f.capacity {
		f.size++
	}
}

// Recent returns up to limit entries, newest first. A non-positive limit
// returns everything retained.
func (f *Feed) Recent(limit int) []Entry {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if limit <= 0 || limit > f.size {
		limit = f.size
	}

	results := make([]Entry, 0, limit)
	for i := 1; i <= limit; i++ {
		idx := (f.next - i + f.capacity) % f.capacity
		results = append(results, f.entries[idx])
	}
	return results
}
