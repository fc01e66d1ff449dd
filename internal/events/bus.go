// Package events is a small in-process publish/subscribe bus used to fan
// progression events out to interested listeners.
package events

import "sync"

// Bus delivers published events of type T to every subscribed handler.
// Subscribers are keyed by id; resubscribing under the same id replaces the
// handler. Delivery is synchronous, in unspecified subscriber order.
type Bus[T any] struct {
	mu       sync.RWMutex
	handlers map[string]func(T)
}

// NewBus creates an empty bus.
func NewBus[T any]() *Bus[T] {
	return &Bus[T]{handlers: make(map[string]func(T))}
}

// Subscribe registers a handler under the subscriber id.
func (b *Bus[T]) Subscribe(id string, handler func(T)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[id] = handler
}

// Unsubscribe removes the subscriber's handler, if present.
func (b *Bus[T]) Unsubscribe(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.handlers, id)
}

// Publish delivers the event to every current subscriber.
func (b *Bus[T]) Publish(event T) {
	b.mu.RLock()
	handlers := make([]func(T), 0, len(b.handlers))
	for _, handler := range b.handlers {
		handlers = append(handlers, handler)
	}
	b.mu.RUnlock()

	for _, handler := range handlers {
		handler(event)
	}
}
