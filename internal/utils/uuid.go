package utils

import "github.com/google/uuid"

// UUIDGenerator hands out random (version 4) document ids. The cloud expects
// v4 ids, so unlike time-ordered ids nothing can be inferred from them.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() uuid.UUID {
	return uuid.New()
}
