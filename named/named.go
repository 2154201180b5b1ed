package named

import (
	"fmt"
	"sync/atomic"
)

// binding is the shared storage behind every copy of a Named value.
type binding[T any] struct {
	id    ID
	value T
	state atomic.Uint32
}

// Named is a value of type T under brand N.
//
// Named has no exported fields and no setter. Copies share one binding, so
// releasing or closing through any copy is observed by all of them.
// The zero Named has ID 0 and is never live.
type Named[N, T any] struct {
	b *binding[T]
}

// WithBrand names v under a fresh brand of type Anon and runs body with it.
//
// The brand is valid only while body runs. The scope is closed when body
// returns, including when body panics.
//
// Example:
//
//	msg := named.WithBrand(-5, func(n named.Named[named.Anon, int]) string {
//	    _, err := props.CertifyNonNegative(n)
//	    return err.Error()
//	})
func WithBrand[T, R any](v T, body func(Named[Anon, T]) R) R {
	return WithName[Anon](v, body)
}

// WithName names v under a fresh brand of the author-chosen type N.
//
// Declaring a dedicated N (for example `type comparator struct{}`) lets the
// compiler reject mixing this value with values branded by another type.
// Values branded with the same N are still told apart by ID at runtime.
func WithName[N, T, R any](v T, body func(Named[N, T]) R) R {
	b := &binding[T]{id: mint(), value: v}
	defer b.state.CompareAndSwap(uint32(stateLive), uint32(stateClosed))
	return body(Named[N, T]{b: b})
}

// Update releases n and re-brands f(n.Raw()) under a fresh ID for body.
//
// This is the only way to change a named value. Evidence minted for n stops
// satisfying Require once Update runs, so the new value must be certified
// again.
func Update[N, T, R any](n Named[N, T], f func(T) T, body func(Named[N, T]) R) R {
	v := n.IntoRaw()
	return WithName[N](f(v), body)
}

// Raw returns the named value. It always succeeds, including after the
// scope closed or the brand was released.
func (n Named[N, T]) Raw() T {
	if n.b == nil {
		var zero T
		return zero
	}
	return n.b.value
}

// IntoRaw gives up the brand and returns the value.
//
// After IntoRaw no evidence can be minted for this brand and previously
// minted evidence no longer satisfies Require.
func (n Named[N, T]) IntoRaw() T {
	if n.b == nil {
		var zero T
		return zero
	}
	n.b.state.CompareAndSwap(uint32(stateLive), uint32(stateReleased))
	return n.b.value
}

// ID returns the runtime brand identity, or 0 for the zero Named.
func (n Named[N, T]) ID() ID {
	if n.b == nil {
		return 0
	}
	return n.b.id
}

// Live reports whether the brand's scope is open and the brand has not been
// released.
func (n Named[N, T]) Live() bool {
	return n.b != nil && state(n.b.state.Load()) == stateLive
}

// Closed reports whether the brand's scope ended while it was still live.
func (n Named[N, T]) Closed() bool {
	return n.b != nil && state(n.b.state.Load()) == stateClosed
}

// Released reports whether IntoRaw or Update gave up the brand.
func (n Named[N, T]) Released() bool {
	return n.b != nil && state(n.b.state.Load()) == stateReleased
}

// String implements fmt.Stringer. It reports the brand and its lifecycle
// state, not the value.
func (n Named[N, T]) String() string {
	if n.b == nil {
		return "named(unbound)"
	}
	return fmt.Sprintf("named(%s, %s)", n.b.id, state(n.b.state.Load()))
}
