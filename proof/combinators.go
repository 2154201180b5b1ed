package proof

import "github.com/roach88/ghost/named"

// Combinators never run checks and never fail for well-branded inputs. The
// compiler rejects arguments whose brand types differ; binary combinators
// panic with a *BrandError when arguments share a brand type but carry
// different runtime brands.

// sameBrand returns the common brand of a and b or panics.
func sameBrand(op string, a, b named.ID) named.ID {
	if a != b {
		panic(&BrandError{Op: op, Fault: FaultMismatch, Want: a, Got: b})
	}
	return a
}

// Conjoin combines evidence of P and of Q about one brand into evidence of
// their conjunction.
func Conjoin[N, P, Q any](p Proof[N, P], q Proof[N, Q]) Proof[N, And[P, Q]] {
	return mintFor[N, And[P, Q]](sameBrand("conjoin", p.id, q.id))
}

// ProjectLeft eliminates a conjunction, keeping its left side.
func ProjectLeft[N, P, Q any](pq Proof[N, And[P, Q]]) Proof[N, P] {
	return mintFor[N, P](pq.id)
}

// ProjectRight eliminates a conjunction, keeping its right side.
func ProjectRight[N, P, Q any](pq Proof[N, And[P, Q]]) Proof[N, Q] {
	return mintFor[N, Q](pq.id)
}

// Weaken turns evidence of P into evidence of Q using a law that P implies Q.
func Weaken[N, P, Q any](p Proof[N, P], _ Implication[P, Q]) Proof[N, Q] {
	return mintFor[N, Q](p.id)
}

// OrIntroLeft turns evidence of P into evidence of P or Q.
//
//	pq := proof.OrIntroLeft[Q](p)
func OrIntroLeft[Q, N, P any](p Proof[N, P]) Proof[N, Or[P, Q]] {
	return mintFor[N, Or[P, Q]](p.id)
}

// OrIntroRight turns evidence of Q into evidence of P or Q.
func OrIntroRight[P, N, Q any](q Proof[N, Q]) Proof[N, Or[P, Q]] {
	return mintFor[N, Or[P, Q]](q.id)
}

// OrElim discharges a disjunction when both cases lead to R.
func OrElim[N, P, Q, R any](pq Proof[N, Or[P, Q]], _ Implication[P, R], _ Implication[Q, R]) Proof[N, R] {
	return mintFor[N, R](pq.id)
}

// TrueIntro returns evidence of True about a live brand. It returns the
// zero Proof when n cannot mint evidence.
func TrueIntro[N, T any](n named.Named[N, T]) Proof[N, True] {
	if checkLive("true", "", n) != nil {
		return Proof[N, True]{}
	}
	return mintFor[N, True](n.ID())
}

// discharge reports whether f derives Q from a hypothetical P. The
// hypothesis carries a fresh brand, so f sees no other evidence and a
// hypothesis that escapes f proves nothing about any named value.
func discharge[N, P, Q any](f func(Proof[N, P]) Proof[N, Q]) bool {
	if f == nil {
		return false
	}
	h := named.Fresh()
	return f(mintFor[N, P](h)).id == h
}

// ImplIntro returns evidence that P implies Q for n's brand, given a
// derivation of Q from P built from combinators and laws. It returns the
// zero Proof when n cannot mint evidence or the derivation does not return
// evidence descended from its argument.
//
// f runs once, with a hypothesis that belongs to no named value. Combining
// it with evidence about n panics with a *BrandError.
func ImplIntro[N, P, Q, T any](n named.Named[N, T], f func(Proof[N, P]) Proof[N, Q]) Proof[N, Implies[P, Q]] {
	if checkLive("implies", "", n) != nil || !discharge(f) {
		return Proof[N, Implies[P, Q]]{}
	}
	return mintFor[N, Implies[P, Q]](n.ID())
}

// ModusPonens applies evidence of an implication to evidence of its premise.
func ModusPonens[N, P, Q any](pq Proof[N, Implies[P, Q]], p Proof[N, P]) Proof[N, Q] {
	return mintFor[N, Q](sameBrand("modus ponens", pq.id, p.id))
}

// NotIntro returns evidence that P does not hold for n's brand, given a
// derivation of False from P. The derivation is run as for ImplIntro.
func NotIntro[N, P, T any](n named.Named[N, T], f func(Proof[N, P]) Proof[N, False]) Proof[N, Not[P]] {
	if checkLive("not", "", n) != nil || !discharge(f) {
		return Proof[N, Not[P]]{}
	}
	return mintFor[N, Not[P]](n.ID())
}

// NotElim derives False from evidence of P and of not P.
func NotElim[N, P any](np Proof[N, Not[P]], p Proof[N, P]) Proof[N, False] {
	return mintFor[N, False](sameBrand("not elim", np.id, p.id))
}

// Absurd derives anything from False.
func Absurd[Q, N any](f Proof[N, False]) Proof[N, Q] {
	return mintFor[N, Q](f.id)
}

// Contradict derives anything from evidence of P and of not P.
func Contradict[Q, N, P any](p Proof[N, P], np Proof[N, Not[P]]) Proof[N, Q] {
	return Absurd[Q](NotElim(np, p))
}

// EquivIntro returns evidence that P and Q are equivalent for n's brand,
// given derivations in both directions. Each derivation is run as for
// ImplIntro.
func EquivIntro[N, P, Q, T any](n named.Named[N, T], f func(Proof[N, P]) Proof[N, Q], g func(Proof[N, Q]) Proof[N, P]) Proof[N, Equiv[P, Q]] {
	if checkLive("equiv", "", n) != nil || !discharge(f) || !discharge(g) {
		return Proof[N, Equiv[P, Q]]{}
	}
	return mintFor[N, Equiv[P, Q]](n.ID())
}

// EquivElim applies an equivalence to evidence of its left side.
func EquivElim[N, P, Q any](e Proof[N, Equiv[P, Q]], p Proof[N, P]) Proof[N, Q] {
	return mintFor[N, Q](sameBrand("equiv elim", e.id, p.id))
}

// Refl returns evidence that P is equivalent to itself for n's brand.
func Refl[P, N, T any](n named.Named[N, T]) Proof[N, Equiv[P, P]] {
	if checkLive("refl", "", n) != nil {
		return Proof[N, Equiv[P, P]]{}
	}
	return mintFor[N, Equiv[P, P]](n.ID())
}
