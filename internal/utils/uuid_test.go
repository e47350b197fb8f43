package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestUUIDGenerator_Generate(t *testing.T) {
	g := NewUUIDGenerator()

	a, b := g.Generate(), g.Generate()
	assert.NotEqual(t, uuid.Nil, a)
	assert.NotEqual(t, a, b)
	assert.Equal(t, uuid.Version(4), a.Version())
}
