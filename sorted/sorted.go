// Package sorted provides sorting and searching whose preconditions are
// carried as evidence.
//
// SortBy and MergeBy tie a sorted slice to the branded comparator that
// ordered it, so two slices sorted under different orders cannot be merged.
// Search demands evidence that its input is in ascending order.
package sorted

import (
	"cmp"
	"slices"

	"github.com/roach88/ghost/named"
	"github.com/roach88/ghost/proof"
)

// Comparator is a three-way comparison returning a negative number when
// a < b, zero when a == b and a positive number when a > b.
type Comparator[T any] func(a, b T) int

// SortedBy is a slice sorted by the comparator branded C.
type SortedBy[C, T any] struct {
	xs  []T
	cmp named.ID
}

// SortBy sorts a copy of xs with the branded comparator by. The sort is stable.
func SortBy[C, T any](xs []T, by named.Named[C, Comparator[T]]) (SortedBy[C, T], error) {
	if err := comparatorLive("sort", by); err != nil {
		return SortedBy[C, T]{}, err
	}
	out := slices.Clone(xs)
	slices.SortStableFunc(out, by.Raw())
	return SortedBy[C, T]{xs: out, cmp: by.ID()}, nil
}

// MergeBy merges xs and ys, both sorted by the comparator by, into one
// sorted slice. Equal elements from xs come before those from ys.
//
// Slices sorted by a comparator of a different brand type are rejected by
// the compiler; slices sorted by another comparator of the same brand type
// are rejected with a *proof.BrandError.
func MergeBy[C, T any](xs, ys SortedBy[C, T], by named.Named[C, Comparator[T]]) (SortedBy[C, T], error) {
	if err := comparatorLive("merge", by); err != nil {
		return SortedBy[C, T]{}, err
	}
	for _, s := range []SortedBy[C, T]{xs, ys} {
		if s.cmp != by.ID() {
			return SortedBy[C, T]{}, &proof.BrandError{
				Op:    "merge",
				Fault: proof.FaultMismatch,
				Want:  by.ID(),
				Got:   s.cmp,
			}
		}
	}

	compare := by.Raw()
	out := make([]T, 0, len(xs.xs)+len(ys.xs))
	i, j := 0, 0
	for i < len(xs.xs) && j < len(ys.xs) {
		if compare(xs.xs[i], ys.xs[j]) <= 0 {
			out = append(out, xs.xs[i])
			i++
		} else {
			out = append(out, ys.xs[j])
			j++
		}
	}
	out = append(out, xs.xs[i:]...)
	out = append(out, ys.xs[j:]...)

	return SortedBy[C, T]{xs: out, cmp: by.ID()}, nil
}

// Values returns a copy of the sorted elements.
func (s SortedBy[C, T]) Values() []T {
	return slices.Clone(s.xs)
}

// Len returns the number of elements.
func (s SortedBy[C, T]) Len() int {
	return len(s.xs)
}

// Comparator returns the brand of the comparator that ordered s.
func (s SortedBy[C, T]) Comparator() named.ID {
	return s.cmp
}

func comparatorLive[C, T any](op string, c named.Named[C, Comparator[T]]) error {
	switch {
	case c.ID() == 0:
		return &proof.BrandError{Op: op, Fault: proof.FaultUnbound, Property: "comparator"}
	case c.Released():
		return &proof.BrandError{Op: op, Fault: proof.FaultReleased, Property: "comparator", Want: c.ID()}
	case !c.Live():
		return &proof.BrandError{Op: op, Fault: proof.FaultClosed, Property: "comparator", Want: c.ID()}
	}
	return nil
}

// Ascending holds for slices in non-decreasing order.
type Ascending struct{}

func (Ascending) Describe() string { return "ascending" }

// CertifyAscending certifies that n's slice is in non-decreasing order.
func CertifyAscending[N any, T cmp.Ordered](n named.Named[N, []T]) (proof.Proof[N, Ascending], error) {
	return proof.Certify[Ascending](n, func(v []T) bool { return slices.IsSorted(v) })
}

// Search looks for x in n's slice by binary search. It returns the
// position where x is or would be inserted and whether x is present.
func Search[N any, T cmp.Ordered](n named.Named[N, []T], p proof.Proof[N, Ascending], x T) (int, bool, error) {
	if err := proof.Require(n, p); err != nil {
		return 0, false, err
	}
	i, found := slices.BinarySearch(n.Raw(), x)
	return i, found, nil
}
