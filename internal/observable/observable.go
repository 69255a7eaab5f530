// Package observable provides the publish/subscribe primitive every store is
// built on. Notifications are classified by domain.UpdateType so subscribers
// switch over a closed enum instead of matching event names.
package observable

import (
	"slices"
	"sync"

	"github.com/pkordes/big-trip/internal/domain"
)

// Listener receives a notification. payload is the changed entity for
// UpdatePatch and whatever the store documents for the other kinds.
type Listener[T any] func(kind domain.UpdateType, payload T)

type subscription[T any] struct {
	id       uint64
	listener Listener[T]
}

// Observable holds an ordered list of listeners.
// The zero value is ready to use. The list is copied on every change so
// Notify can iterate a snapshot without holding the lock, which lets a
// listener subscribe or unsubscribe while it is being notified.
type Observable[T any] struct {
	mu     sync.Mutex
	nextID uint64
	subs   []subscription[T]
}

// Subscribe appends l and returns a function that removes it again.
// Calling the returned function more than once is harmless.
func (o *Observable[T]) Subscribe(l Listener[T]) (unsubscribe func()) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.nextID++
	id := o.nextID
	next := slices.Clone(o.subs)
	next = append(next, subscription[T]{id: id, listener: l})
	o.subs = next

	return func() { o.remove(id) }
}

func (o *Observable[T]) remove(id uint64) {
	o.mu.Lock()
	defer o.mu.Unlock()

	i := slices.IndexFunc(o.subs, func(s subscription[T]) bool { return s.id == id })
	if i < 0 {
		return
	}
	next := slices.Clone(o.subs)
	o.subs = slices.Delete(next, i, i+1)
}

// Notify calls every listener synchronously, in subscription order.
func (o *Observable[T]) Notify(kind domain.UpdateType, payload T) {
	o.mu.Lock()
	subs := o.subs
	o.mu.Unlock()

	for _, s := range subs {
		s.listener(kind, payload)
	}
}

// Len returns the number of active listeners.
func (o *Observable[T]) Len() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.subs)
}
