package sortable

import (
	"bytes"

	"github.com/google/uuid"
)

// UUID is a sortable wrapper around uuid.UUID, ordered by its 16 raw bytes.
// For time-ordered UUID versions (v6, v7) this is also creation order.
type UUID uuid.UUID

// Compile-time check that UUID implements Sortable[UUID].
var _ Sortable[UUID] = (*UUID)(nil)

// NewUUID returns a random (version 4) UUID key.
func NewUUID() UUID {
	return UUID(uuid.New())
}

// ParseUUID decodes s into a UUID key. It accepts every form uuid.Parse accepts.
func ParseUUID(s string) (UUID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, err
	}

	return UUID(u), nil
}

// Equals returns true if both UUIDs hold the same bytes.
func (u UUID) Equals(other UUID) bool {
	return u == other
}

// LessThan returns true if u sorts bytewise before other.
func (u UUID) LessThan(other UUID) bool {
	return bytes.Compare(u[:], other[:]) < 0
}

// String returns the canonical hyphenated form.
func (u UUID) String() string {
	return uuid.UUID(u).String()
}
