// Package proof mints and combines evidence about branded values.
//
// A Proof[N, P] asserts that the value named under brand N satisfies the
// property P. Property tags are ordinary Go types, usually empty structs:
//
//	type NonNegative struct{}
//
//	func (NonNegative) Describe() string { return "non-negative" }
//
// Outside this package a Proof can only be obtained from:
//
//   - Certify or Check, which run a predicate once and mint evidence only
//     when it holds;
//   - Assume, the unchecked constructor for boundary code that validated the
//     fact by other means;
//   - the combinators (Conjoin, Weaken, ProjectLeft, ModusPonens, ...), which
//     derive new evidence from evidence already held for the same brand.
//
// The zero Proof carries no brand and is rejected as forged wherever
// evidence is required.
//
// # Audit points
//
// Certify, Check, Assume and Trust are where a human asserts that a
// predicate or law really establishes the named property. Every call to the
// first three is reported to the installed Auditor (see SetAuditor) together
// with the calling file and line. Calls to Trust are grep-able by name.
//
// # Runtime brand checks
//
// The compiler unifies the brand type N across every combinator and
// consuming function. Values sharing a brand type (named.Anon in particular)
// are told apart by their runtime brand ID: binary combinators panic with a
// *BrandError when IDs differ, and Require returns one. This is weaker than a
// build failure and is the price of Go lacking per-call fresh types.
//
// # Stale evidence
//
// Evidence describes the value as it was when minted. named.Named exposes no
// setter; named.Update is the only mutation path and it re-brands the
// result, so evidence for the old brand fails Require. Values reachable
// through references (slices, maps, pointers) can still be mutated behind
// the brand's back; doing so invalidates outstanding evidence by convention
// only.
package proof
