package uuidgen

import (
	"github.com/google/uuid"

	"github.com/danielmek/hotelhub/internal/domain/contract"
)

// Generator issues random UUIDv4 strings for entity and file IDs.
type Generator struct{}

func NewGenerator() contract.IUUIDGenerator {
	return &Generator{}
}

func (g *Generator) NewUUID() string {
	return uuid.New().String()
}

var _ contract.IUUIDGenerator = (*Generator)(nil)
