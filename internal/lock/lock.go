// Package lock provides in-process, keyed mutual exclusion over account
// numbers. Writers hold every account they mutate for the whole mutation,
// and balance reads take the same key, so a reader going through the
// registry can never observe a transfer's source debited but its
// destination not yet credited. Reads that bypass the registry (bulk
// listings) see whatever the store's own lock serializes.
package lock

import (
	"sort"
	"sync"
)

// Registry hands out one mutex per key. Keys are account numbers; the
// registry never evicts, which is acceptable for a single-process engine.
type Registry struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{locks: make(map[string]*sync.Mutex)}
}

func (r *Registry) get(key string) *sync.Mutex {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.locks[key]
	if !ok {
		m = &sync.Mutex{}
		r.locks[key] = m
	}
	return m
}

// Locker holds a fixed set of keys and locks them all as one unit.
type Locker struct {
	registry *Registry
	keys     []string
}

// NewLocker prepares a locker over the given keys. Duplicate keys are
// collapsed and the remainder sorted, so two lockers over overlapping key
// sets always acquire in the same order and cannot deadlock each other.
func NewLocker(registry *Registry, keys ...string) *Locker {
	seen := make(map[string]struct{}, len(keys))
	unique := make([]string, 0, len(keys))
	for _, key := range keys {
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, key)
	}
	sort.Strings(unique)
	return &Locker{registry: registry, keys: unique}
}

// Lock acquires every key in order. It blocks until all are held.
func (l *Locker) Lock() {
	for _, key := range l.keys {
		l.registry.get(key).Lock()
	}
}

// Unlock releases every key in reverse acquisition order.
func (l *Locker) Unlock() {
	for i := len(l.keys) - 1; i >= 0; i-- {
		l.registry.get(l.keys[i]).Unlock()
	}
}
