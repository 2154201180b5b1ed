package named

import (
	"strconv"
	"sync/atomic"
)

// ID is the runtime identity of one brand.
//
// IDs start at 1 and are never reused within a process. The zero ID belongs
// to no brand; zero-valued Named values and forged evidence carry it.
type ID uint64

// String renders the ID as "brand#<n>".
func (id ID) String() string {
	return "brand#" + strconv.FormatUint(uint64(id), 10)
}

// Anon is the brand type shared by every value named through WithBrand.
// Values branded Anon are distinguished by their runtime ID only.
type Anon struct{}

// minted is the process-wide brand counter.
//
// Thread-safety: Add is linearizable, so concurrent scopes never observe the
// same ID.
var minted atomic.Uint64

// mint returns a fresh, non-zero brand ID.
func mint() ID {
	return ID(minted.Add(1))
}

// Fresh returns a non-zero ID that no Named value will ever carry.
func Fresh() ID {
	return mint()
}

// state tracks the lifecycle of one binding.
type state uint32

const (
	stateLive state = iota
	stateReleased
	stateClosed
)

func (s state) String() string {
	switch s {
	case stateLive:
		return "live"
	case stateReleased:
		return "released"
	case stateClosed:
		return "closed"
	default:
		return "unknown"
	}
}
