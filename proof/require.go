package proof

import "github.com/roach88/ghost/named"

// Require checks that p is evidence about n and that n is still live.
// Consuming APIs call it first:
//
//	func Search[N any](xs named.Named[N, []int], p proof.Proof[N, Ascending], x int) (int, error) {
//	    if err := proof.Require(xs, p); err != nil {
//	        return 0, err
//	    }
//	    ...
//	}
//
// The error, if any, is a *BrandError.
func Require[N, P, T any](n named.Named[N, T], p Proof[N, P]) error {
	property := Name[P]()
	switch {
	case n.ID() == 0:
		return &BrandError{Op: "require", Fault: FaultUnbound, Property: property}
	case p.id == 0:
		return &BrandError{Op: "require", Fault: FaultForged, Property: property, Want: n.ID()}
	case p.id != n.ID():
		return &BrandError{Op: "require", Fault: FaultMismatch, Property: property, Want: n.ID(), Got: p.id}
	}
	if be := checkLive("require", property, n); be != nil {
		return be
	}
	return nil
}

// SuchThat is a named value bundled with evidence about it.
type SuchThat[N, T, P any] struct {
	n named.Named[N, T]
	p Proof[N, P]
}

// Attach bundles n with p after checking them with Require.
func Attach[N, T, P any](n named.Named[N, T], p Proof[N, P]) (SuchThat[N, T, P], error) {
	if err := Require(n, p); err != nil {
		return SuchThat[N, T, P]{}, err
	}
	return SuchThat[N, T, P]{n: n, p: p}, nil
}

// Value returns the underlying value.
func (s SuchThat[N, T, P]) Value() T {
	return s.n.Raw()
}

// Named returns the branded value.
func (s SuchThat[N, T, P]) Named() named.Named[N, T] {
	return s.n
}

// Proof returns the evidence.
func (s SuchThat[N, T, P]) Proof() Proof[N, P] {
	return s.p
}
