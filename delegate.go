package levent

import (
	"reflect"

	"github.com/google/uuid"
)

// Delegate is the uniform invocable wrapper produced by the constructor set
// below. It carries the callable, an optional comparable identity used for
// duplicate detection and a unique id for diagnostics.
type Delegate[R, A any] struct {
	id  string
	fn  func(A) R
	key any
}

// DelegateOption configures a delegate at construction time.
type DelegateOption func(*delegateConfig)

type delegateConfig struct {
	key any
}

// WithKey overrides the delegate's identity with a caller-chosen value.
// The key must be comparable; two delegates with equal keys are considered
// the same callable by duplicate detection.
func WithKey(key any) DelegateOption {
	return func(c *delegateConfig) {
		c.key = key
	}
}

// funcKey identifies a free function or method expression by code pointer.
type funcKey uintptr

// methodKey identifies a bound object + method pair.
type methodKey struct {
	recv   any
	method uintptr
}

// Func wraps a free function or method expression. Two Func delegates made
// from the same function compare equal for duplicate detection.
//
// Do not pass closures to Func: distinct closures created from the same
// source location share a code pointer and would falsely compare equal.
// Use Callable for closures.
func Func[R, A any](fn func(A) R, opts ...DelegateOption) *Delegate[R, A] {
	d := newDelegate(fn, opts...)
	if d.key == nil && fn != nil {
		d.key = funcKey(reflect.ValueOf(fn).Pointer())
	}
	return d
}

// Bind wraps an object pointer plus a method expression, e.g.
//
//	levent.Bind(&foo, (*Foo).OnString)
//
// Identity is the (receiver, method) pair: the same method bound to the
// same object compares equal, the same method bound to a different object
// does not.
func Bind[T, R, A any](recv *T, method func(*T, A) R, opts ...DelegateOption) *Delegate[R, A] {
	var fn func(A) R
	if method != nil {
		fn = func(arg A) R {
			return method(recv, arg)
		}
	}
	d := newDelegate(fn, opts...)
	if d.key == nil && recv != nil && method != nil {
		d.key = methodKey{recv: recv, method: reflect.ValueOf(method).Pointer()}
	}
	return d
}

// Callable wraps an arbitrary callable, typically a closure. Callable
// delegates have no identity and never compare equal, so duplicate
// detection cannot reject them; supply WithKey when that matters.
func Callable[R, A any](fn func(A) R, opts ...DelegateOption) *Delegate[R, A] {
	return newDelegate(fn, opts...)
}

// Proc wraps a void-returning free function as a Delegate[Void, A].
// Identity follows Func: the same function compares equal.
func Proc[A any](fn func(A), opts ...DelegateOption) *Delegate[Void, A] {
	var wrapped func(A) Void
	if fn != nil {
		wrapped = func(arg A) Void {
			fn(arg)
			return Void{}
		}
	}
	d := newDelegate(wrapped, opts...)
	if d.key == nil && fn != nil {
		d.key = funcKey(reflect.ValueOf(fn).Pointer())
	}
	return d
}

func newDelegate[R, A any](fn func(A) R, opts ...DelegateOption) *Delegate[R, A] {
	var cfg delegateConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Delegate[R, A]{
		id:  uuid.NewString(),
		fn:  fn,
		key: cfg.key,
	}
}

// ID returns the delegate's unique identifier.
func (d *Delegate[R, A]) ID() string {
	return d.id
}

// Key returns the delegate's comparable identity, or nil if it has none.
func (d *Delegate[R, A]) Key() any {
	return d.key
}

// Call invokes the wrapped callable directly, outside any broadcast.
func (d *Delegate[R, A]) Call(arg A) R {
	return d.fn(arg)
}

// equal reports whether two delegates wrap the same callable. Delegates
// without identity are conservatively never equal.
func (d *Delegate[R, A]) equal(other *Delegate[R, A]) bool {
	if d.key == nil || other.key == nil {
		return false
	}
	return d.key == other.key
}
