package proof

// Implication is a brand-independent law: every value satisfying P also
// satisfies Q. It is consumed by Weaken.
type Implication[P, Q any] struct{}

// Trust declares that P implies Q.
//
// UNCHECKED: the author asserts the law once, typically as a package-level
// variable next to the property tags it relates:
//
//	var PositiveIsNonNegative = proof.Trust[Positive, NonNegative]()
func Trust[P, Q any]() Implication[P, Q] {
	return Implication[P, Q]{}
}

// Compose chains P implies Q and Q implies R into P implies R.
func Compose[P, Q, R any](_ Implication[P, Q], _ Implication[Q, R]) Implication[P, R] {
	return Implication[P, R]{}
}

// Identity is the law that P implies P.
func Identity[P any]() Implication[P, P] {
	return Implication[P, P]{}
}

// AndLeft is the law that P and Q implies P.
func AndLeft[P, Q any]() Implication[And[P, Q], P] {
	return Implication[And[P, Q], P]{}
}

// AndRight is the law that P and Q implies Q.
func AndRight[P, Q any]() Implication[And[P, Q], Q] {
	return Implication[And[P, Q], Q]{}
}

// OrLeft is the law that P implies P or Q.
func OrLeft[P, Q any]() Implication[P, Or[P, Q]] {
	return Implication[P, Or[P, Q]]{}
}

// OrRight is the law that Q implies P or Q.
func OrRight[P, Q any]() Implication[Q, Or[P, Q]] {
	return Implication[Q, Or[P, Q]]{}
}

// String implements fmt.Stringer.
func (Implication[P, Q]) String() string {
	return Name[P]() + " => " + Name[Q]()
}
