// Package props declares commonly needed property tags together with their
// certifiers and the laws relating them.
package props

import (
	"cmp"
	"errors"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/roach88/ghost/named"
	"github.com/roach88/ghost/proof"
)

// NonNegative holds for numbers >= 0.
type NonNegative struct{}

// Positive holds for numbers > 0.
type Positive struct{}

// NonEmpty holds for strings and slices with at least one element.
type NonEmpty struct{}

// NFC holds for strings in Unicode Normalization Form C.
type NFC struct{}

// ValidUTF8 holds for strings that are valid UTF-8.
type ValidUTF8 struct{}

func (NonNegative) Describe() string { return "non-negative" }
func (Positive) Describe() string    { return "positive" }
func (NonEmpty) Describe() string    { return "non-empty" }
func (NFC) Describe() string         { return "nfc" }
func (ValidUTF8) Describe() string   { return "valid-utf8" }

// Number is the set of types the numeric certifiers accept.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// PositiveIsNonNegative is the law that every positive number is
// non-negative.
var PositiveIsNonNegative = proof.Trust[Positive, NonNegative]()

// NFCIsValidUTF8 is the law that an NFC string is valid UTF-8. The
// normalizer never yields NFC for ill-formed input, see CertifyNFC.
var NFCIsValidUTF8 = proof.Trust[NFC, ValidUTF8]()

// CertifyNonNegative certifies that n's value is >= 0.
func CertifyNonNegative[N any, T Number](n named.Named[N, T]) (proof.Proof[N, NonNegative], error) {
	return proof.Certify[NonNegative](n, func(v T) bool {
		var zero T
		return cmp.Compare(v, zero) >= 0
	})
}

// CertifyPositive certifies that n's value is > 0.
func CertifyPositive[N any, T Number](n named.Named[N, T]) (proof.Proof[N, Positive], error) {
	return proof.Certify[Positive](n, func(v T) bool {
		var zero T
		return cmp.Compare(v, zero) > 0
	})
}

// CertifyNonEmpty certifies that n's slice has at least one element.
func CertifyNonEmpty[N any, S ~[]E, E any](n named.Named[N, S]) (proof.Proof[N, NonEmpty], error) {
	return proof.Certify[NonEmpty](n, func(v S) bool { return len(v) > 0 })
}

// CertifyNonEmptyString certifies that n's string is not "".
func CertifyNonEmptyString[N any, S ~string](n named.Named[N, S]) (proof.Proof[N, NonEmpty], error) {
	return proof.Certify[NonEmpty](n, func(v S) bool { return len(v) > 0 })
}

// CertifyValidUTF8 certifies that n's string is valid UTF-8.
func CertifyValidUTF8[N any, S ~string](n named.Named[N, S]) (proof.Proof[N, ValidUTF8], error) {
	return proof.Check[ValidUTF8](n, func(v S) error {
		if i := invalidUTF8At(string(v)); i >= 0 {
			return fmt.Errorf("invalid UTF-8 at byte %d", i)
		}
		return nil
	})
}

// ErrNotNFC is the invariant reported when a string is not in NFC.
var ErrNotNFC = errors.New("string is not in Unicode Normalization Form C")

// CertifyNFC certifies that n's string is in Normalization Form C. Strings
// that are not valid UTF-8 are rejected as well, which keeps NFCIsValidUTF8
// sound.
func CertifyNFC[N any, S ~string](n named.Named[N, S]) (proof.Proof[N, NFC], error) {
	return proof.Check[NFC](n, func(v S) error {
		if !utf8.ValidString(string(v)) {
			return fmt.Errorf("%w: invalid UTF-8", ErrNotNFC)
		}
		if !norm.NFC.IsNormalString(string(v)) {
			return ErrNotNFC
		}
		return nil
	})
}

// invalidUTF8At returns the byte offset of the first invalid sequence in s,
// or -1.
func invalidUTF8At(s string) int {
	for i, r := range s {
		if r == utf8.RuneError {
			if _, size := utf8.DecodeRuneInString(s[i:]); size == 1 {
				return i
			}
		}
	}
	return -1
}
