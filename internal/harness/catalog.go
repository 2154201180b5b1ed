package harness

import (
	"fmt"
	"slices"

	"github.com/roach88/ghost/internal/cuepred"
	"github.com/roach88/ghost/named"
	"github.com/roach88/ghost/proof"
	"github.com/roach88/ghost/props"
	"github.com/roach88/ghost/sorted"
)

// property certifies or assumes one named property for a raw scenario
// value. Each call brands the value in a fresh scope.
type property struct {
	certify func(v any) error
	assume  func(v any) error
}

// entry binds a value conversion to a certifier for property P.
func entry[T, P any](conv func(any) (T, error), certify func(named.Named[named.Anon, T]) (proof.Proof[named.Anon, P], error)) property {
	return property{
		certify: func(v any) error {
			x, err := conv(v)
			if err != nil {
				return err
			}
			return named.WithBrand(x, func(n named.Named[named.Anon, T]) error {
				p, err := certify(n)
				if err != nil {
					return err
				}
				return proof.Require(n, p)
			})
		},
		assume: func(v any) error {
			x, err := conv(v)
			if err != nil {
				return err
			}
			return named.WithBrand(x, func(n named.Named[named.Anon, T]) error {
				return proof.Require(n, proof.Assume[P](n))
			})
		},
	}
}

var catalog = map[string]property{
	"non-negative": entry(toFloat, props.CertifyNonNegative[named.Anon, float64]),
	"positive":     entry(toFloat, props.CertifyPositive[named.Anon, float64]),
	"non-empty":    entry(toString, props.CertifyNonEmptyString[named.Anon, string]),
	"valid-utf8":   entry(toString, props.CertifyValidUTF8[named.Anon, string]),
	"nfc":          entry(toString, props.CertifyNFC[named.Anon, string]),
	"ascending":    entry(toFloats, sorted.CertifyAscending[named.Anon, float64]),
}

// Properties returns the catalog property names in sorted order.
func Properties() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// constraintProperty builds a property for a CUE constraint expression.
func constraintProperty(expr string) (property, error) {
	c, err := cuepred.Compile(expr)
	if err != nil {
		return property{}, err
	}
	certify := func(n named.Named[named.Anon, any]) (proof.Proof[named.Anon, cuepred.Satisfies], error) {
		return cuepred.CertifySatisfies(n, c)
	}
	return entry(toAny, certify), nil
}

func toAny(v any) (any, error) {
	return v, nil
}

func toFloat(v any) (float64, error) {
	switch x := v.(type) {
	case int:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case uint64:
		return float64(x), nil
	case float64:
		return x, nil
	default:
		return 0, fmt.Errorf("expected a number, got %T", v)
	}
}

func toString(v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("expected a string, got %T", v)
	}
	return s, nil
}

func toFloats(v any) ([]float64, error) {
	xs, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("expected a list of numbers, got %T", v)
	}
	out := make([]float64, len(xs))
	for i, x := range xs {
		f, err := toFloat(x)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		out[i] = f
	}
	return out, nil
}
