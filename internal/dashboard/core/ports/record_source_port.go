package ports

import (
	"context"
	"time"

	"epidash-service/internal/dashboard/core/domain"
)

// RecordQuery is the part of the filter criteria pushed down to a source.
// Sources may return more than asked; the domain filter runs afterwards.
type RecordQuery struct {
	StartDate domain.Date
	EndDate   domain.Date
	Disease   string            // optional
	Region    string            // optional
	AgeGroups []domain.AgeGroup // nil = all
}

type RecordSourcePort interface {
	FetchRecords(ctx context.Context, q RecordQuery) ([]domain.Record, error)
}

// RecordCachePort stores source results. A miss is (nil, false, nil).
type RecordCachePort interface {
	Get(ctx context.Context, key string) ([]domain.Record, bool, error)
	Set(ctx context.Context, key string, records []domain.Record, ttl time.Duration) error
}
