package uuid

import "github.com/google/uuid"

//go:generate mockgen -package=mocks -destination=mocks/mock_uuid.go github.com/KirkDiggler/pig/internal/common/uuid UUID

// UUID hands out identifiers for games and history records
type UUID interface {
	NewUUID() string
}

// DefaultUUID generates random (version 4) UUIDs
type DefaultUUID struct{}

func New() *DefaultUUID {
	return &DefaultUUID{}
}

// NewUUID returns a new UUID string
func (d *DefaultUUID) NewUUID() string {
	return uuid.New().String()
}
