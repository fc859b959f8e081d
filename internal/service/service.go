// Package service is the dispatch core every pipeline stage is built
// on: a keyed entity store with synchronous listener fan-out. The
// whole pipeline runs on one logical thread of control, so stores take
// no locks; each stage exclusively owns its store.
package service

import "errors"

var ErrNotFound = errors.New("service: key not found")

// Listener receives every entity a stage produces. Fan-out happens on
// the publishing goroutine, in registration order, before the next
// ingestion is processed.
type Listener[V any] interface {
	OnAdd(v V) error
}

// ListenerFunc adapts a function to the Listener interface.
type ListenerFunc[V any] func(v V) error

func (f ListenerFunc[V]) OnAdd(v V) error { return f(v) }

// Store is a keyed entity store with an append-only listener list.
type Store[K comparable, V any] struct {
	entries   map[K]V
	listeners []Listener[V]
}

// NewStore creates an empty store.
func NewStore[K comparable, V any]() *Store[K, V] {
	return &Store[K, V]{entries: make(map[K]V)}
}

// Put stores the most recent entity under key.
func (s *Store[K, V]) Put(key K, v V) {
	s.entries[key] = v
}

// Get returns the most recent entity stored under key, or ErrNotFound
// if nothing was ever ingested under it.
func (s *Store[K, V]) Get(key K) (V, error) {
	v, ok := s.entries[key]
	if !ok {
		var zero V
		return zero, ErrNotFound
	}
	return v, nil
}

// Has reports whether key has ever been ingested.
func (s *Store[K, V]) Has(key K) bool {
	_, ok := s.entries[key]
	return ok
}

// Len returns the number of stored entities.
func (s *Store[K, V]) Len() int { return len(s.entries) }

// AddListener appends a listener. Registration is append-only for the
// lifetime of the store.
func (s *Store[K, V]) AddListener(l Listener[V]) {
	s.listeners = append(s.listeners, l)
}

// Listeners returns the registered listeners in registration order.
func (s *Store[K, V]) Listeners() []Listener[V] {
	return s.listeners
}

// Dispatch notifies every listener of v, in registration order. A
// failing listener does not stop the remaining ones; all failures are
// joined and returned to the caller.
func (s *Store[K, V]) Dispatch(v V) error {
	var errs []error
	for _, l := range s.listeners {
		if err := l.OnAdd(v); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
