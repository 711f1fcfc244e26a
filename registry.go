package levent

// destroyer lets the registry tear down a slot's event without knowing its
// signature.
type destroyer interface {
	destroy()
}

// Registry is a dispatch table keyed by a dense integer enum. Each slot
// holds at most one dynamically-typed event; every access checks the
// requested signature against the stored one at runtime via type assertion,
// so a mismatch is always a recoverable error, never a misdirected call.
//
// Registries are explicit values with caller-controlled lifetime. Construct
// one per identifier domain and pass it to the modules that need it.
type Registry[ID Enum] struct {
	slots   []any
	blocked bool
}

// NewRegistry creates a registry sized for identifiers 0..count-1, where
// count is the enum's terminal sentinel.
func NewRegistry[ID Enum](count ID) *Registry[ID] {
	return &Registry[ID]{slots: make([]any, int(count))}
}

// BlockEvents sets or clears the global block switch. While set, Trigger on
// every slot returns ErrEventsBlocked and runs no listeners.
func (r *Registry[ID]) BlockEvents(block bool) {
	r.blocked = block
}

// Blocked reports the state of the global block switch.
func (r *Registry[ID]) Blocked() bool {
	return r.blocked
}

// DestroyAll releases every slot's event. Outstanding connections to the
// destroyed events go dead: Live reports false and Disconnect is a no-op.
func (r *Registry[ID]) DestroyAll() {
	for i, s := range r.slots {
		if d, ok := s.(destroyer); ok {
			d.destroy()
		}
		r.slots[i] = nil
	}
}

// Declare binds the signature R(A) to a slot, creating its event. An
// occupied slot is left untouched and Declare returns false unless Replace
// is given, in which case the old event is destroyed unconditionally. The
// return value reports whether a (re)declaration happened.
func Declare[R, A any, ID Enum](r *Registry[ID], id ID, opts ...DeclareOption) bool {
	var cfg declareConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	i := int(id)
	if i < 0 || i >= len(r.slots) {
		return false
	}
	if r.slots[i] != nil && !cfg.replace {
		return false
	}
	if d, ok := r.slots[i].(destroyer); ok {
		d.destroy()
	}
	r.slots[i] = New[R, A]()
	return true
}

// Defined reports whether a slot holds an event of exactly the signature
// R(A).
func Defined[R, A any, ID Enum](r *Registry[ID], id ID) bool {
	_, ok := lookup[R, A](r, id)
	return ok
}

// Connect registers a delegate against a slot and returns its Connection.
// Failures come back as an error-carrying connection that is not Live:
// ErrFailedToMatchEventType when the slot is empty or declared with a
// different signature, ErrModifyingDuringBroadcast when the event is
// mid-broadcast, ErrCallbackAlreadyAdded on a rejected duplicate.
func Connect[R, A any, ID Enum](r *Registry[ID], id ID, d *Delegate[R, A], opts ...AddOption) *Connection {
	ev, ok := lookup[R, A](r, id)
	if !ok {
		return failedConnection(ErrFailedToMatchEventType)
	}
	conn, err := ev.Add(d, opts...)
	if err != nil {
		return failedConnection(err)
	}
	return conn
}

// Trigger broadcasts arg on a slot's event and returns the aggregated
// results. It returns ErrEventsBlocked while the block switch is set and
// ErrFailedToMatchEventType when the slot is empty or declared with a
// different signature; in both cases no listener runs and the results are
// nil. A broadcast either fully runs or is rejected before starting.
func Trigger[R, A any, ID Enum](r *Registry[ID], id ID, arg A) ([]R, error) {
	if r.blocked {
		return nil, ErrEventsBlocked
	}
	ev, ok := lookup[R, A](r, id)
	if !ok {
		return nil, ErrFailedToMatchEventType
	}
	return ev.Trigger(arg), nil
}

// TriggerInto is Trigger with caller-supplied aggregation, mirroring
// Event.TriggerInto. The same error conditions apply; add is never called
// on failure.
func TriggerInto[R, A any, ID Enum](r *Registry[ID], id ID, add func(R), arg A) error {
	if r.blocked {
		return ErrEventsBlocked
	}
	ev, ok := lookup[R, A](r, id)
	if !ok {
		return ErrFailedToMatchEventType
	}
	ev.TriggerInto(add, arg)
	return nil
}

// lookup resolves a slot to an event of the exact signature R(A). The type
// assertion is the runtime signature check.
func lookup[R, A any, ID Enum](r *Registry[ID], id ID) (*Event[R, A], bool) {
	i := int(id)
	if i < 0 || i >= len(r.slots) {
		return nil, false
	}
	ev, ok := r.slots[i].(*Event[R, A])
	if !ok || ev.destroyed {
		return nil, false
	}
	return ev, ok
}
