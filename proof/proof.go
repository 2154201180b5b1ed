package proof

import (
	"fmt"
	"reflect"

	"github.com/roach88/ghost/named"
)

// Proof is evidence that the value branded N satisfies property P.
//
// Proof has a single unexported field, the brand ID it was minted for.
// Copying a Proof is free. A Proof has no serialized form.
type Proof[N, P any] struct {
	id named.ID
}

// Brand returns the runtime brand the evidence was minted for, or 0 for
// the zero Proof.
func (p Proof[N, P]) Brand() named.ID {
	return p.id
}

// Property returns the display name of P.
func (p Proof[N, P]) Property() string {
	return Name[P]()
}

// String implements fmt.Stringer.
func (p Proof[N, P]) String() string {
	return fmt.Sprintf("proof(%s: %s)", p.id, Name[P]())
}

// Describer lets a property tag choose its display name.
type Describer interface {
	Describe() string
}

// Name returns the display name of property P: Describe() when the zero
// value of P implements Describer, otherwise the Go type name.
func Name[P any]() string {
	var p P
	if d, ok := any(p).(Describer); ok {
		return d.Describe()
	}
	t := reflect.TypeFor[P]()
	if n := t.Name(); n != "" {
		return n
	}
	return t.String()
}

// mintFor returns evidence for id. It is the only place a non-zero Proof
// is created.
func mintFor[N, P any](id named.ID) Proof[N, P] {
	return Proof[N, P]{id: id}
}
