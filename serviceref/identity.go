package serviceref

import (
	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
)

// ID uniquely identifies one registration event in the registry. Two handles
// carrying the same ID refer to the same registration, regardless of which
// interface type they are viewed through. The zero value carries no identity.
type ID uuid.UUID

// NewID returns a fresh registration identity.
func NewID() ID {
	return ID(uuid.New())
}

// IsZero reports whether the identity is the "no identity" value.
func (id ID) IsZero() bool {
	return id == ID(uuid.Nil)
}

// String returns the canonical textual form of the identity.
func (id ID) String() string {
	return uuid.UUID(id).String()
}

// Hash returns a 64-bit hash of the identity for use in hash-based
// containers. The zero identity hashes to InvalidHash.
func (id ID) Hash() uint64 {
	if id.IsZero() {
		return InvalidHash
	}
	return xxhash.Sum64(id[:])
}

// InvalidHash is the sentinel hash shared by every invalid handle.
const InvalidHash uint64 = 0
