package observable

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignalUnsubscribeDuringEmit(t *testing.T) {
	var s Signal[int]
	var calls []string

	var second *Subscription
	s.Subscribe(func(int) {
		calls = append(calls, "first")
		second.Unsubscribe()
	})
	second = s.Subscribe(func(int) { calls = append(calls, "second") })
	s.Subscribe(func(int) { calls = append(calls, "third") })

	s.Emit(1)
	assert.Equal(t, []string{"first", "third"}, calls)
	assert.Equal(t, 2, s.Len())
}

func TestSubscriptionIsIdempotent(t *testing.T) {
	n := 0
	sub := NewSubscription(func() { n++ })
	assert.True(t, sub.Active())
	sub.Unsubscribe()
	sub.Unsubscribe()
	assert.Equal(t, 1, n)
	assert.False(t, sub.Active())

	var nilSub *Subscription
	nilSub.Unsubscribe()
	assert.False(t, nilSub.Active())
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "add", ActionAdd.String())
	assert.Equal(t, "remove", ActionRemove.String())
	assert.Equal(t, "reset", ActionReset.String())
	assert.Equal(t, "unknown", Action(9).String())
}
