package observable

// Subscription is returned by every Subscribe call. Unsubscribe detaches the
// handler; calling it more than once, or on a nil Subscription, is a no-op.
type Subscription struct {
	cancel func()
}

// NewSubscription creates a subscription that runs cancel once on Unsubscribe
func NewSubscription(cancel func()) *Subscription {
	return &Subscription{cancel: cancel}
}

// Unsubscribe detaches the handler
func (s *Subscription) Unsubscribe() {
	if s == nil || s.cancel == nil {
		return
	}
	cancel := s.cancel
	s.cancel = nil
	cancel()
}

// Active reports whether the subscription is still attached
func (s *Subscription) Active() bool {
	return s != nil && s.cancel != nil
}

type handler[A any] struct {
	fn      func(A)
	removed bool
}

// Signal is a list of handlers that receive emitted values in subscription
// order. It is not safe for concurrent use; all emission happens on the UI
// goroutine.
type Signal[A any] struct {
	handlers []*handler[A]
}

// Subscribe adds fn to the signal
func (s *Signal[A]) Subscribe(fn func(A)) *Subscription {
	h := &handler[A]{fn: fn}
	s.handlers = append(s.handlers, h)
	return NewSubscription(func() {
		h.removed = true
		for i, other := range s.handlers {
			if other == h {
				s.handlers = append(s.handlers[:i:i], s.handlers[i+1:]...)
				break
			}
		}
	})
}

// Emit calls every handler with value. Handlers unsubscribed by an earlier
// handler during the same emission are skipped.
func (s *Signal[A]) Emit(value A) {
	if len(s.handlers) == 0 {
		return
	}
	snapshot := make([]*handler[A], len(s.handlers))
	copy(snapshot, s.handlers)
	for _, h := range snapshot {
		if h.removed {
			continue
		}
		h.fn(value)
	}
}

// Len returns the number of attached handlers
func (s *Signal[A]) Len() int {
	return len(s.handlers)
}
