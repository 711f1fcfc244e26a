// Package levent provides a typed in-process publish/dispatch mechanism.
//
// Callers register callables ("listeners") against a typed event and later
// broadcast an argument to every registered listener in a deterministic
// order, optionally collecting their return values. A secondary layer, the
// Registry, maps an enumerated identifier to a dynamically-typed event so
// decoupled modules can declare, connect to, and trigger events without
// sharing compile-time event objects.
//
// # Events
//
// An Event[R, A] broadcasts a single argument of type A and collects one
// result of type R per listener. Use a struct payload for multi-argument
// signatures and Void for signatures with no result or no argument:
//
//	ev := levent.New[Color, string]()
//	conn, err := ev.Add(levent.Func(pickColor), levent.WithPriority(2))
//	results := ev.Trigger("crimson")
//
// Listeners fire in priority order, higher priorities first. Listeners of
// equal priority fire in registration order. While a broadcast is running
// the listener set is frozen: registration and removal attempts are rejected
// with ErrModifyingDuringBroadcast instead of being queued or deferred.
//
// # Delegates
//
// Listeners are wrapped into delegates by a closed set of constructors:
// Func for free functions and method expressions, Bind for an object plus
// method, Callable for arbitrary closures, and Proc for void-returning
// functions. Func and Bind give the delegate an identity used for duplicate
// detection; closures have no identity and never compare equal unless
// WithKey supplies one.
//
// # Connections
//
// Add and Connect return a *Connection, the lifetime token for one
// registration. Disconnect is idempotent and absorbs a refusal from an event
// that is mid-broadcast; use Event.Remove when the outcome matters.
// Connection implements io.Closer, so deferred Close gives scope-bound
// auto-disconnect:
//
//	conn := levent.Connect(reg, EvString, levent.Func(onString))
//	defer conn.Close()
//
// # Registry
//
// A Registry[ID] holds one slot per value of a dense integer enum whose
// terminal Count sentinel sizes the table. Declare binds a signature to a
// slot; Connect and Trigger check the requested signature against the
// declared one at runtime and report ErrFailedToMatchEventType on any
// mismatch, never coercing:
//
//	reg := levent.NewRegistry(EventCount)
//	levent.Declare[Color, string](reg, EvString)
//	results, err := levent.Trigger[Color](reg, EvString, "crimson")
//
// BlockEvents suppresses all triggers on all slots until cleared.
//
// # Concurrency
//
// Events and registries assume a single logical thread of control. The
// broadcasting flag is reentrancy protection, not cross-thread
// synchronization; callers needing multi-threaded use must serialize access
// to a given event or registry externally.
package levent
