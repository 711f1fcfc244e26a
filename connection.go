package levent

// eventRef is the view of an owning event a Connection needs: enough to
// request removal and to tell whether the event has been destroyed, without
// knowing its signature.
type eventRef interface {
	removeEntry(entry any) error
	isDestroyed() bool
}

// Connection is the lifetime token returned when a listener is registered.
// It has exactly one owner, which decides when to disconnect; always handle
// it as a *Connection and do not copy the value.
//
// A Connection constructed from a failed registration carries the
// explanatory error and no event reference; Live reports false for it and
// Disconnect is a no-op.
type Connection struct {
	ev     eventRef
	entry  any
	active bool
	err    error
}

func newConnection(ev eventRef, entry any) *Connection {
	return &Connection{ev: ev, entry: entry, active: true}
}

func failedConnection(err error) *Connection {
	return &Connection{err: err}
}

// Disconnect asks the owning event to remove the listener and marks the
// connection inactive. It is idempotent. A refusal from an event that is
// mid-broadcast is silently absorbed; callers that need the outcome should
// use Event.Remove instead.
func (c *Connection) Disconnect() {
	if c.ev != nil && c.active {
		_ = c.ev.removeEntry(c.entry)
	}
	c.active = false
}

// Close disconnects the connection and always returns nil. It exists so a
// connection can be scope-bound with defer, guaranteeing disconnection on
// every exit path.
func (c *Connection) Close() error {
	c.Disconnect()
	return nil
}

// Live reports whether the connection still references a live event and has
// not been disconnected. It does not guarantee the listener is still
// registered, only that disconnection has not been requested and the event
// has not been destroyed.
func (c *Connection) Live() bool {
	return c.ev != nil && c.active && !c.ev.isDestroyed()
}

// IsActive reports whether the connection is active and carries no error.
func (c *Connection) IsActive() bool {
	return c.active && c.err == nil
}

// Err returns the error attached at construction, or nil.
func (c *Connection) Err() error {
	return c.err
}
