package events

import (
	"context"
	"fmt"
	"log"
	"sync"
)

// Kind identifies one event type on the bus.
type Kind string

// Handler consumes one emitted event. The payload's concrete type is fixed per
// Kind; use the typed On/Emit helpers instead of asserting by hand.
type Handler func(ctx context.Context, payload any) error

// Bus is an in-process publish/subscribe registry. It is constructed once at
// composition time and injected into publishers and subscribers; there is no
// package-level instance.
//
// Concurrency model:
//   - Emit fans out to every registered handler concurrently and only returns
//     after all of them settled (it is a join barrier, not fire-and-forget).
//   - A handler error or panic is caught and logged at the bus boundary; it
//     never reaches the publisher and never blocks sibling handlers.
//   - On/Off/Clear are safe to call concurrently with Emit, but are expected
//     on the startup/teardown path, not the hot path.
//
// Registering the same function twice creates two independent subscriptions
// and the handler runs twice per event; each On returns its own unsubscribe.
type Bus struct {
	mu   sync.RWMutex
	subs map[Kind]map[int]Handler
	next int
}

func NewBus() *Bus {
	return &Bus{subs: make(map[Kind]map[int]Handler)}
}

// On registers a handler for one event kind and returns its unsubscribe
// function. Unsubscribing twice is a no-op.
func (b *Bus) On(kind Kind, h Handler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.subs[kind] == nil {
		b.subs[kind] = make(map[int]Handler)
	}
	id := b.next
	b.next++
	b.subs[kind][id] = h

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.subs[kind], id)
	}
}

// Emit delivers payload to every handler currently registered for kind and
// blocks until all of them finished. Handler failures are logged and dropped.
func (b *Bus) Emit(ctx context.Context, kind Kind, payload any) {
	b.mu.RLock()
	handlers := make([]Handler, 0, len(b.subs[kind]))
	for _, h := range b.subs[kind] {
		handlers = append(handlers, h)
	}
	b.mu.RUnlock()

	var wg sync.WaitGroup
	for _, h := range handlers {
		wg.Add(1)
		go func(h Handler) {
			defer wg.Done()
			if err := safeInvoke(ctx, h, payload); err != nil {
				log.Printf("[events][bus] handler failed kind=%s err=%v", kind, err)
			}
		}(h)
	}
	wg.Wait()
}

// Off removes every handler registered for kind.
func (b *Bus) Off(kind Kind) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.subs, kind)
}

// Clear empties the whole registry. Used on restart and for test isolation.
func (b *Bus) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subs = make(map[Kind]map[int]Handler)
}

func safeInvoke(ctx context.Context, h Handler, payload any) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("handler panic: %v", r)
		}
	}()
	return h(ctx, payload)
}

// TypedKind ties a Kind to the concrete payload type carried by its events, so
// registration and emission stay type-checked end to end.
type TypedKind[T any] struct {
	Kind Kind
}

// On registers a typed handler for k. A payload of the wrong concrete type is
// surfaced as a handler error (and therefore logged, not propagated).
func On[T any](b *Bus, k TypedKind[T], h func(ctx context.Context, payload T) error) func() {
	return b.On(k.Kind, func(ctx context.Context, payload any) error {
		p, ok := payload.(T)
		if !ok {
			return fmt.Errorf("unexpected payload type %T for kind %s", payload, k.Kind)
		}
		return h(ctx, p)
	})
}

// Emit publishes a typed payload for k and waits for all handlers.
func Emit[T any](ctx context.Context, b *Bus, k TypedKind[T], payload T) {
	b.Emit(ctx, k.Kind, payload)
}
