package domain

import (
	"github.com/google/uuid"

	dashboard "epidash-service/internal/dashboard/core/domain"
)

// Entry is a validated record ready to be stored.
type Entry struct {
	ID        uuid.UUID
	Record    dashboard.Record
	DedupeKey string
}
