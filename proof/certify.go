package proof

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/roach88/ghost/named"
)

// maxDetail bounds the rendering of an offending value in errors and audit
// events.
const maxDetail = 96

// Certify runs pred once against n's value and returns evidence that the
// value satisfies P when pred returns true.
//
// The caller is responsible for pred genuinely establishing P; nothing
// relates the two beyond the type bookkeeping. pred should be pure.
//
// When pred returns false the error is a *ValidationError. When n can no
// longer mint evidence (scope closed, brand released, zero Named) pred is
// not run and the error is a *BrandError.
func Certify[P, N, T any](n named.Named[N, T], pred func(T) bool) (Proof[N, P], error) {
	return Check[P](n, func(v T) error {
		if !pred(v) {
			return errPredicate
		}
		return nil
	})
}

// errPredicate marks a boolean predicate failure, which has no invariant
// text of its own.
var errPredicate = errors.New("predicate returned false")

// Check is Certify for checks that explain their failure. The text of the
// returned error becomes ValidationError.Invariant and the error itself is
// available through errors.Unwrap.
func Check[P, N, T any](n named.Named[N, T], check func(T) error) (Proof[N, P], error) {
	property := Name[P]()
	if be := checkLive("certify", property, n); be != nil {
		emit(Event{Brand: n.ID(), Property: property, Outcome: OutcomeRejected, Detail: be.Error()})
		return Proof[N, P]{}, be
	}

	v := n.Raw()
	if err := check(v); err != nil {
		ve := &ValidationError{Property: property, Detail: describe(v)}
		if err != errPredicate {
			ve.Invariant = err.Error()
			ve.cause = err
		}
		emit(Event{Brand: n.ID(), Property: property, Outcome: OutcomeRejected, Detail: ve.Detail})
		return Proof[N, P]{}, ve
	}

	emit(Event{Brand: n.ID(), Property: property, Outcome: OutcomeCertified, Detail: describe(v)})
	return mintFor[N, P](n.ID()), nil
}

// Assume returns evidence that n satisfies P without checking anything.
//
// UNCHECKED: use only at boundaries where P is already guaranteed by other
// means, for example a value parsed from a grammar that cannot produce a
// violating value. Every call is reported to the Auditor as "assumed".
//
// When n can no longer mint evidence the zero Proof is returned; it fails
// every Require.
func Assume[P, N, T any](n named.Named[N, T]) Proof[N, P] {
	property := Name[P]()
	if be := checkLive("assume", property, n); be != nil {
		emit(Event{Brand: n.ID(), Property: property, Outcome: OutcomeRejected, Detail: be.Error()})
		return Proof[N, P]{}
	}
	emit(Event{Brand: n.ID(), Property: property, Outcome: OutcomeAssumed, Detail: describe(n.Raw())})
	return mintFor[N, P](n.ID())
}

// describe renders v for error and audit messages.
func describe(v any) string {
	s := fmt.Sprintf("%v", v)
	if utf8.RuneCountInString(s) <= maxDetail {
		return s
	}
	r := []rune(s)
	return string(r[:maxDetail]) + "..."
}
