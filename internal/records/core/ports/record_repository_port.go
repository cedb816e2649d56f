package ports

import (
	"context"

	"epidash-service/internal/records/core/domain"
)

type RecordRepositoryPort interface {
	// InsertRecord:
	//   created = true,  err = nil  -> new record
	//   created = false, err = nil  -> duplicate (idempotent)
	//   created = false, err != nil -> DB error
	InsertRecord(ctx context.Context, e *domain.Entry) (created bool, err error)
}
