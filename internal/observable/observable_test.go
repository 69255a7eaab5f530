package observable_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/big-trip/internal/domain"
	"github.com/pkordes/big-trip/internal/observable"
)

type call struct {
	who     string
	kind    domain.UpdateType
	payload string
}

func TestObservable_NotifiesInSubscriptionOrder(t *testing.T) {
	var o observable.Observable[string]
	var calls []call

	o.Subscribe(func(kind domain.UpdateType, p string) { calls = append(calls, call{"a", kind, p}) })
	o.Subscribe(func(kind domain.UpdateType, p string) { calls = append(calls, call{"b", kind, p}) })

	o.Notify(domain.UpdatePatch, "x")

	require.Len(t, calls, 2)
	assert.Equal(t, call{"a", domain.UpdatePatch, "x"}, calls[0])
	assert.Equal(t, call{"b", domain.UpdatePatch, "x"}, calls[1])
}

func TestObservable_Unsubscribe(t *testing.T) {
	var o observable.Observable[int]
	count := 0

	unsubscribe := o.Subscribe(func(domain.UpdateType, int) { count++ })
	o.Notify(domain.UpdateMinor, 1)
	unsubscribe()
	unsubscribe() // second call is a no-op
	o.Notify(domain.UpdateMinor, 2)

	assert.Equal(t, 1, count)
	assert.Equal(t, 0, o.Len())
}

// TestObservable_SubscribeDuringNotify verifies that a listener added while a
// notification is in progress does not receive that notification and that
// the call does not deadlock.
func TestObservable_SubscribeDuringNotify(t *testing.T) {
	var o observable.Observable[int]
	late := 0

	o.Subscribe(func(domain.UpdateType, int) {
		o.Subscribe(func(domain.UpdateType, int) { late++ })
	})

	o.Notify(domain.UpdateInit, 0)
	assert.Equal(t, 0, late)

	o.Notify(domain.UpdateInit, 0)
	assert.Equal(t, 1, late)
}

func TestObservable_UnsubscribeSelfDuringNotify(t *testing.T) {
	var o observable.Observable[int]
	var order []string

	var unsubscribe func()
	unsubscribe = o.Subscribe(func(domain.UpdateType, int) {
		order = append(order, "first")
		unsubscribe()
	})
	o.Subscribe(func(domain.UpdateType, int) { order = append(order, "second") })

	o.Notify(domain.UpdateMajor, 0)
	o.Notify(domain.UpdateMajor, 0)

	assert.Equal(t, []string{"first", "second", "second"}, order)
}
