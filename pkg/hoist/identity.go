package hoist

import (
	"strconv"
	"sync/atomic"
)

// nextSerial numbers identities for String output only.
var nextSerial uint64

type token struct {
	serial uint64
}

// Identity is an opaque token naming one registry entry. Two identities
// are equal only if they come from the same NewIdentity call. The zero
// Identity is invalid and is rejected by [Registry.Upsert].
//
// Identity is comparable, so it can key maps and serve as a widget key.
type Identity struct {
	t *token
}

// NewIdentity mints a fresh Identity.
func NewIdentity() Identity {
	return Identity{t: &token{serial: atomic.AddUint64(&nextSerial, 1)}}
}

// IsZero reports whether id is the zero Identity.
func (id Identity) IsZero() bool {
	return id.t == nil
}

func (id Identity) String() string {
	if id.t == nil {
		return "identity(zero)"
	}
	return "identity#" + strconv.FormatUint(id.t.serial, 10)
}
