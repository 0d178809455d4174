package glide

// Subscription is returned when registering a handler, Cancel unregisters it.
type Subscription struct {
	cancel func()
}

// Cancel removes the handler. Cancelling more than once is a no-op.
func (s *Subscription) Cancel() {
	if s == nil || s.cancel == nil {
		return
	}
	s.cancel()
	s.cancel = nil
}

type handler[T any] struct {
	id int
	fn T
}

// handlers is an ordered set of registered callbacks.
type handlers[T any] struct {
	next int
	l    []handler[T]
}

func (h *handlers[T]) add(fn T) *Subscription {
	h.next++
	id := h.next
	h.l = append(h.l, handler[T]{id, fn})
	return &Subscription{func() { h.remove(id) }}
}

func (h *handlers[T]) remove(id int) {
	for i, x := range h.l {
		if x.id == id {
			h.l = append(h.l[:i:i], h.l[i+1:]...)
			return
		}
	}
}

// list returns a copy, handlers may cancel subscriptions while it is walked.
func (h *handlers[T]) list() []T {
	l := make([]T, len(h.l))
	for i, x := range h.l {
		l[i] = x.fn
	}
	return l
}

func (h *handlers[T]) len() int {
	return len(h.l)
}
