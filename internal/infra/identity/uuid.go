// Package identity provides the production identifier generator.
package identity

import (
	"github.com/google/uuid"

	"dispatch/internal/domain/service"
)

type uuidGenerator struct{}

// NewIDGenerator creates a UUIDv4-backed IDGenerator.
func NewIDGenerator() service.IDGenerator {
	return &uuidGenerator{}
}

func (g *uuidGenerator) NewID() string {
	return uuid.New().String()
}
