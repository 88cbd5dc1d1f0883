package postgres

import (
	"crypto/rand"

	"github.com/oklog/ulid/v2"
)

// ULIDGenerator generates lexicographically sortable transaction IDs.
type ULIDGenerator struct{}

func NewULIDGenerator() *ULIDGenerator {
	return &ULIDGenerator{}
}

// Generate returns a new ULID string.
func (g *ULIDGenerator) Generate() string {
	return ulid.MustNew(ulid.Now(), rand.Reader).String()
}
