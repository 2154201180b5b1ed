package proof

// Propositional connectives. All are zero-size type-level markers.

// True is the trivially true proposition.
type True struct{}

// False is the proposition with no evidence.
type False struct{}

// And is the conjunction of P and Q.
type And[P, Q any] struct{}

// Or is the disjunction of P and Q.
type Or[P, Q any] struct{}

// Not is the negation of P.
type Not[P any] struct{}

// Implies is the implication from P to Q, held as evidence about a brand.
// For brand-independent laws use Implication.
type Implies[P, Q any] struct{}

// Equiv is the equivalence of P and Q.
type Equiv[P, Q any] struct{}

func (True) Describe() string  { return "true" }
func (False) Describe() string { return "false" }

func (And[P, Q]) Describe() string {
	return "(" + Name[P]() + " and " + Name[Q]() + ")"
}

func (Or[P, Q]) Describe() string {
	return "(" + Name[P]() + " or " + Name[Q]() + ")"
}

func (Not[P]) Describe() string {
	return "not " + Name[P]()
}

func (Implies[P, Q]) Describe() string {
	return "(" + Name[P]() + " implies " + Name[Q]() + ")"
}

func (Equiv[P, Q]) Describe() string {
	return "(" + Name[P]() + " iff " + Name[Q]() + ")"
}
