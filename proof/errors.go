package proof

import (
	"errors"
	"fmt"

	"github.com/roach88/ghost/named"
)

// ErrCodeValidationFailed prefixes every ValidationError message.
const ErrCodeValidationFailed = "VALIDATION_FAILED"

// ValidationError reports that a certifying predicate did not hold.
//
// It is the error a correct program expects from Certify and Check. Misuse
// of brands is reported separately as a *BrandError. A ValidationError
// carries the property being established and a rendering of the offending
// value, never a brand or evidence.
type ValidationError struct {
	// Property is the display name of the property being certified.
	Property string

	// Detail describes the offending value.
	Detail string

	// Invariant is the violated invariant, when the check reported one.
	Invariant string

	cause error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("%s: property %q does not hold for %s", ErrCodeValidationFailed, e.Property, e.Detail)
	if e.Invariant != "" {
		msg += ": " + e.Invariant
	}
	return msg
}

// Unwrap returns the error reported by the check passed to Check, if any.
func (e *ValidationError) Unwrap() error {
	return e.cause
}

// IsValidationError reports whether err is or wraps a *ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// Fault categorizes a runtime brand check failure.
type Fault string

const (
	// FaultMismatch: evidence minted for one brand was presented for another.
	FaultMismatch Fault = "BRAND_MISMATCH"

	// FaultForged: the zero Proof, which no constructor returns for a live
	// brand, was presented as evidence.
	FaultForged Fault = "FORGED_EVIDENCE"

	// FaultUnbound: the zero Named value, which carries no brand.
	FaultUnbound Fault = "UNBOUND_VALUE"

	// FaultClosed: the brand's scope has ended.
	FaultClosed Fault = "SCOPE_CLOSED"

	// FaultReleased: the brand was given up with IntoRaw or Update.
	FaultReleased Fault = "BRAND_RELEASED"
)

// BrandError is the runtime rendition of what the brand type parameter
// rejects at compile time when brand types differ. It signals a bug in the
// calling code, not a failed validation.
type BrandError struct {
	// Op is the operation that detected the fault ("certify", "require", ...).
	Op string

	// Fault identifies what went wrong.
	Fault Fault

	// Property is the property involved, when known.
	Property string

	// Want is the brand the operation expected.
	Want named.ID

	// Got is the brand the evidence carried (FaultMismatch only).
	Got named.ID
}

// Error implements the error interface.
func (e *BrandError) Error() string {
	var msg string
	switch e.Fault {
	case FaultMismatch:
		msg = fmt.Sprintf("evidence for %s presented for %s", e.Got, e.Want)
	case FaultForged:
		msg = fmt.Sprintf("evidence carries no brand (want %s)", e.Want)
	case FaultUnbound:
		msg = "value carries no brand"
	case FaultClosed:
		msg = fmt.Sprintf("%s used after its scope closed", e.Want)
	case FaultReleased:
		msg = fmt.Sprintf("%s used after it was released", e.Want)
	default:
		msg = "unknown brand fault"
	}
	if e.Property != "" {
		return fmt.Sprintf("%s: %s %s: %s", e.Fault, e.Op, e.Property, msg)
	}
	return fmt.Sprintf("%s: %s: %s", e.Fault, e.Op, msg)
}

// IsBrandError reports whether err is or wraps a *BrandError.
func IsBrandError(err error) bool {
	var be *BrandError
	return errors.As(err, &be)
}

// IsFault reports whether err is or wraps a *BrandError with the given fault.
func IsFault(err error, f Fault) bool {
	var be *BrandError
	if errors.As(err, &be) {
		return be.Fault == f
	}
	return false
}

// checkLive returns a *BrandError unless n can still mint evidence.
func checkLive[N, T any](op, property string, n named.Named[N, T]) *BrandError {
	switch {
	case n.ID() == 0:
		return &BrandError{Op: op, Fault: FaultUnbound, Property: property}
	case n.Released():
		return &BrandError{Op: op, Fault: FaultReleased, Property: property, Want: n.ID()}
	case !n.Live():
		return &BrandError{Op: op, Fault: FaultClosed, Property: property, Want: n.ID()}
	}
	return nil
}
