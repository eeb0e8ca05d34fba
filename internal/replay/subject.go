// Package replay provides a single-slot publish/subscribe cell that replays
// its latest value to every new subscriber.
package replay

import "sync"

// delivery is one queued callback round. A replay targets a single callback;
// a publish targets the subscribers registered when it was queued.
type delivery[T any] struct {
	value  T
	replay func(T)
	ids    []uint64
}

// Subject holds the most recent value of type T and fans it out to
// subscribers. Replays and publishes share one FIFO queue that is drained by
// a single goroutine at a time, so every subscriber observes values in the
// order they were stored and never ends on a stale one. A Publish or
// Subscribe issued from inside a callback is queued and delivered after the
// running callback returns.
type Subject[T any] struct {
	mu       sync.Mutex
	value    T
	nextID   uint64
	subs     map[uint64]func(T)
	order    []uint64
	queue    []delivery[T]
	draining bool
}

// NewSubject returns a Subject seeded with initial.
func NewSubject[T any](initial T) *Subject[T] {
	return &Subject[T]{value: initial, subs: make(map[uint64]func(T))}
}

// Value returns the latest published value.
func (s *Subject[T]) Value() T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value
}

// Publish stores v and delivers it to all current subscribers.
func (s *Subject[T]) Publish(v T) {
	s.mu.Lock()
	s.value = v
	ids := make([]uint64, len(s.order))
	copy(ids, s.order)
	s.queue = append(s.queue, delivery[T]{value: v, ids: ids})
	s.mu.Unlock()

	s.drain()
}

// Subscribe registers fn and calls it with the latest value before any later
// Publish reaches it. The returned function removes the subscription;
// calling it more than once is harmless.
func (s *Subject[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.order = append(s.order, id)
	s.queue = append(s.queue, delivery[T]{value: s.value, replay: fn})
	s.mu.Unlock()

	s.drain()

	var once sync.Once
	return func() {
		once.Do(func() { s.remove(id) })
	}
}

// drain delivers queued rounds until the queue is empty. Only one goroutine
// drains at a time; others return once their round is queued.
func (s *Subject[T]) drain() {
	s.mu.Lock()
	if s.draining {
		s.mu.Unlock()
		return
	}
	s.draining = true

	finished := false
	defer func() {
		if !finished {
			s.mu.Lock()
			s.draining = false
			s.mu.Unlock()
		}
	}()

	for len(s.queue) > 0 {
		d := s.queue[0]
		s.queue[0] = delivery[T]{}
		s.queue = s.queue[1:]
		fns := s.resolve(d)
		s.mu.Unlock()

		for _, fn := range fns {
			fn(d.value)
		}

		s.mu.Lock()
	}
	s.queue = nil
	s.draining = false
	finished = true
	s.mu.Unlock()
}

// resolve returns the callbacks a round still targets. Subscribers removed
// after a publish was queued are skipped. Must be called with mu held.
func (s *Subject[T]) resolve(d delivery[T]) []func(T) {
	if d.replay != nil {
		return []func(T){d.replay}
	}
	fns := make([]func(T), 0, len(d.ids))
	for _, id := range d.ids {
		if fn, ok := s.subs[id]; ok {
			fns = append(fns, fn)
		}
	}
	return fns
}

func (s *Subject[T]) remove(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.subs, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}
