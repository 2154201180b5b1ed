// Package cuepred turns CUE constraint expressions into certification
// predicates.
//
// A constraint such as `>=0 & <100` or `=~"^[a-z]+$"` is compiled once and
// then unified with Go values. A value certifies when the unification is
// concrete and free of conflicts:
//
//	c, err := cuepred.Compile(`>=0 & <100`)
//	...
//	p, err := cuepred.CertifySatisfies(n, c)
package cuepred

import (
	"fmt"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/errors"

	"github.com/roach88/ghost/named"
	"github.com/roach88/ghost/proof"
)

// Satisfies holds for values that satisfy a CUE constraint. The constraint
// itself is not part of the type; the caller keeps the *Constraint that was
// checked.
type Satisfies struct{}

func (Satisfies) Describe() string { return "satisfies-cue" }

// Constraint is a compiled CUE expression.
//
// Thread-safety: a cue.Context is not safe for concurrent use, so Check
// serializes access.
type Constraint struct {
	mu   sync.Mutex
	ctx  *cue.Context
	expr string
	v    cue.Value
}

// ConstraintError reports a CUE compile or unification failure.
type ConstraintError struct {
	Expr    string
	Message string
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("cue constraint %q: %s", e.Expr, e.Message)
}

// Compile parses and evaluates expr.
func Compile(expr string) (*Constraint, error) {
	ctx := cuecontext.New()
	v := ctx.CompileString(expr)
	if err := v.Err(); err != nil {
		return nil, &ConstraintError{Expr: expr, Message: firstMessage(err)}
	}
	return &Constraint{ctx: ctx, expr: expr, v: v}, nil
}

// MustCompile is Compile for expressions known to be valid. It panics on
// error.
func MustCompile(expr string) *Constraint {
	c, err := Compile(expr)
	if err != nil {
		panic(err)
	}
	return c
}

// Check unifies x with the constraint and returns a *ConstraintError when
// the result is not a concrete, conflict-free value.
func (c *Constraint) Check(x any) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	xv := c.ctx.Encode(x)
	if err := xv.Err(); err != nil {
		return &ConstraintError{Expr: c.expr, Message: firstMessage(err)}
	}
	u := c.v.Unify(xv)
	if err := u.Validate(cue.Concrete(true)); err != nil {
		return &ConstraintError{Expr: c.expr, Message: firstMessage(err)}
	}
	return nil
}

// String returns the source expression.
func (c *Constraint) String() string {
	return c.expr
}

// CertifySatisfies certifies that n's value satisfies c.
func CertifySatisfies[N, T any](n named.Named[N, T], c *Constraint) (proof.Proof[N, Satisfies], error) {
	return proof.Check[Satisfies](n, func(v T) error {
		return c.Check(v)
	})
}

// firstMessage returns the first CUE error message; CUE may report several
// for one failure.
func firstMessage(err error) string {
	errs := errors.Errors(err)
	if len(errs) == 0 {
		return err.Error()
	}
	return errs[0].Error()
}
