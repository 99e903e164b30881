package observer

// subscription pairs a stable id with the callback it was registered
// with, so Unsubscribe can find and remove it without disturbing the
// order of the remaining subscribers.
type subscription[E any] struct {
	id int
	fn func(E)
}

// Multicast is an ordered, many-subscriber publish/subscribe port.
// Notification invokes each subscriber in the order it subscribed.
type Multicast[E any] struct {
	subs   []subscription[E]
	nextID int
}

// Subscribe registers fn and returns a function that, when called,
// detaches fn from this port. Calling the returned function more than
// once is a no-op.
func (m *Multicast[E]) Subscribe(fn func(E)) func() {
	id := m.nextID
	m.nextID++
	m.subs = append(m.subs, subscription[E]{id: id, fn: fn})

	detached := false
	return func() {
		if detached {
			return
		}
		detached = true
		m.remove(id)
	}
}

func (m *Multicast[E]) remove(id int) {
	for i, s := range m.subs {
		if s.id == id {
			m.subs = append(m.subs[:i:i], m.subs[i+1:]...)
			return
		}
	}
}

// Notify delivers event to every currently-subscribed observer, in
// subscription order. The subscriber list is snapshotted before
// iteration begins, so a handler that subscribes or unsubscribes during
// this call only affects subsequent Notify calls.
func (m *Multicast[E]) Notify(event E) {
	if len(m.subs) == 0 {
		return
	}
	snapshot := make([]subscription[E], len(m.subs))
	copy(snapshot, m.subs)
	for _, s := range snapshot {
		s.fn(event)
	}
}

// Len reports the number of currently-subscribed observers.
func (m *Multicast[E]) Len() int {
	return len(m.subs)
}

// Signal is a Multicast specialized for events that carry no payload.
type Signal = Multicast[struct{}]

// Fire notifies every Signal subscriber.
func Fire(s *Signal) {
	s.Notify(struct{}{})
}
