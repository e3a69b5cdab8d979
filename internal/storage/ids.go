package storage

import "github.com/google/uuid"

// IDGenerator produces unique identifiers for cart items and orders. It is
// injected so stores stay deterministic under test.
type IDGenerator interface {
	NewID() string
}

type UUIDGenerator struct{}

func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}
