// Package named attaches a fresh, unforgeable identity (a brand) to a value.
//
// A brand has two layers:
//
//   - The type parameter N of Named[N, T]. Every function that takes two
//     branded arguments unifies N, so the compiler rejects mixing values
//     named under different brand types. WithBrand uses the shared brand type
//     Anon; WithName lets an API author declare a dedicated brand type.
//   - A runtime ID minted per WithBrand/WithName call. Go cannot mint a new
//     type per call, so two values both branded Anon are told apart by ID.
//     Every boundary that demands evidence compares IDs, which turns a
//     confusion bug into a runtime failure rather than a build failure.
//
// A brand lives for the duration of the body passed to WithBrand. When body
// returns the scope is closed, and a Named value smuggled out of body can no
// longer be used to mint or satisfy evidence.
//
// Named values are immutable. Update is the only mutation path: it releases
// the old brand and re-brands the result under a fresh ID, so evidence about
// the old value never describes the new one.
package named
