package services

import (
	"crypto/rand"
	"io"

	"github.com/google/uuid"
)

// IdentifierGenerator produces random version-4 UUID strings used as fresh
// avatar inputs.
type IdentifierGenerator struct {
	random io.Reader
}

// NewIdentifierGenerator reads randomness from r, or crypto/rand when r is nil.
func NewIdentifierGenerator(r io.Reader) *IdentifierGenerator {
	if r == nil {
		r = rand.Reader
	}
	return &IdentifierGenerator{random: r}
}

// Next returns an identifier shaped xxxxxxxx-xxxx-4xxx-Yxxx-xxxxxxxxxxxx with
// Y in {8, 9, a, b}. It panics if the random source fails.
func (g *IdentifierGenerator) Next() string {
	return uuid.Must(uuid.NewRandomFromReader(g.random)).String()
}
