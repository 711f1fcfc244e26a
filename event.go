package levent

// listener is one registered entry: the delegate plus its placement
// priority. The entry pointer is shared between the event's ordered list
// and any outstanding Connection, so removal detaches it from the list
// without invalidating the connection's reference.
type listener[R, A any] struct {
	del      *Delegate[R, A]
	priority Priority
}

// Event broadcasts an argument of type A to an ordered set of listeners and
// collects one R per listener. The listener list is kept sorted by priority
// descending; equal priorities preserve registration order.
//
// An Event is not safe for concurrent use. The broadcasting flag guards
// against reentrant mutation from inside a listener, not against other
// goroutines.
type Event[R, A any] struct {
	listeners    []*listener[R, A]
	broadcasting bool
	destroyed    bool
}

// New creates an empty event for the signature R(A).
func New[R, A any]() *Event[R, A] {
	return &Event[R, A]{}
}

// Add registers a delegate and returns its Connection.
//
// Add fails with ErrModifyingDuringBroadcast while a broadcast is running.
// Unless AllowDuplicates is given, a delegate equal to an existing entry is
// rejected with ErrCallbackAlreadyAdded. The new entry is inserted before
// the first entry of strictly lower priority, so it fires after existing
// entries of equal priority.
func (e *Event[R, A]) Add(d *Delegate[R, A], opts ...AddOption) (*Connection, error) {
	if e.broadcasting {
		return nil, ErrModifyingDuringBroadcast
	}

	var cfg addConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	if !cfg.allowDuplicates {
		for _, l := range e.listeners {
			if l.del.equal(d) {
				return nil, ErrCallbackAlreadyAdded
			}
		}
	}

	entry := &listener[R, A]{del: d, priority: cfg.priority}

	at := len(e.listeners)
	for i, l := range e.listeners {
		if l.priority < entry.priority {
			at = i
			break
		}
	}
	e.listeners = append(e.listeners, nil)
	copy(e.listeners[at+1:], e.listeners[at:])
	e.listeners[at] = entry

	return newConnection(e, entry), nil
}

// Remove unregisters the listener a connection refers to and marks the
// connection inactive. It fails with ErrModifyingDuringBroadcast while a
// broadcast is running. Removing an absent or already-removed listener is a
// no-op, not an error.
func (e *Event[R, A]) Remove(c *Connection) error {
	if c == nil || !c.active {
		return nil
	}
	if err := e.removeEntry(c.entry); err != nil {
		return err
	}
	c.active = false
	return nil
}

// Trigger invokes every current listener exactly once, in order, with arg,
// and returns their results in the same order. An empty listener set yields
// an empty slice. The listener set cannot change for the duration: mutation
// attempts from inside a listener are rejected, not queued.
func (e *Event[R, A]) Trigger(arg A) []R {
	e.broadcasting = true
	defer func() { e.broadcasting = false }()

	results := make([]R, 0, len(e.listeners))
	for _, l := range e.listeners {
		results = append(results, l.del.fn(arg))
	}
	return results
}

// TriggerInto is Trigger with caller-supplied aggregation: each result is
// passed to add instead of being appended to a slice. Use it when the
// natural accumulation is a set, a sum, or anything but a sequence.
func (e *Event[R, A]) TriggerInto(add func(R), arg A) {
	e.broadcasting = true
	defer func() { e.broadcasting = false }()

	for _, l := range e.listeners {
		add(l.del.fn(arg))
	}
}

// IsBroadcasting reports whether a broadcast is currently running.
func (e *Event[R, A]) IsBroadcasting() bool {
	return e.broadcasting
}

// Len returns the number of registered listeners.
func (e *Event[R, A]) Len() int {
	return len(e.listeners)
}

// removeEntry implements the removal path Connections use. The broadcasting
// restriction applies; an entry that is not in the list is silently ignored.
func (e *Event[R, A]) removeEntry(entry any) error {
	if e.broadcasting {
		return ErrModifyingDuringBroadcast
	}
	l, ok := entry.(*listener[R, A])
	if !ok {
		return nil
	}
	for i, x := range e.listeners {
		if x == l {
			e.listeners = append(e.listeners[:i], e.listeners[i+1:]...)
			break
		}
	}
	return nil
}

// isDestroyed implements eventRef for Connection liveness checks.
func (e *Event[R, A]) isDestroyed() bool {
	return e.destroyed
}

// destroy marks the event dead and drops its listeners. The list is left in
// place if a broadcast is running; the flag alone is enough to make
// outstanding connections report not live.
func (e *Event[R, A]) destroy() {
	e.destroyed = true
	if !e.broadcasting {
		e.listeners = nil
	}
}
