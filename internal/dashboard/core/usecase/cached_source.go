package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"epidash-service/internal/dashboard/core/domain"
	"epidash-service/internal/dashboard/core/ports"
	"epidash-service/internal/logger"
)

// CachedRecordSource serves repeated queries from a RecordCachePort.
// Cache errors are logged and the inner source is used instead.
type CachedRecordSource struct {
	name  string
	inner ports.RecordSourcePort
	cache ports.RecordCachePort
	ttl   time.Duration
	log   *logger.Logger
}

func NewCachedRecordSource(name string, inner ports.RecordSourcePort, cache ports.RecordCachePort, ttl time.Duration, log *logger.Logger) *CachedRecordSource {
	if log == nil {
		log = logger.NewNop()
	}
	return &CachedRecordSource{name: name, inner: inner, cache: cache, ttl: ttl, log: log.With("source", name)}
}

func (c *CachedRecordSource) FetchRecords(ctx context.Context, q ports.RecordQuery) ([]domain.Record, error) {
	key := CacheKey(c.name, q)

	records, ok, err := c.cache.Get(ctx, key)
	switch {
	case err != nil:
		c.log.Warn("record cache read failed", "key", key, "error", err)
	case ok:
		return records, nil
	}

	records, err = c.inner.FetchRecords(ctx, q)
	if err != nil {
		return nil, err
	}

	if err := c.cache.Set(ctx, key, records, c.ttl); err != nil {
		c.log.Warn("record cache write failed", "key", key, "error", err)
	}
	return records, nil
}

// CacheKey is stable for equal queries against the same source and distinct
// for distinct ones; free-text fields are quoted.
func CacheKey(source string, q ports.RecordQuery) string {
	groups := "*"
	if q.AgeGroups != nil {
		parts := make([]string, len(q.AgeGroups))
		for i, ag := range q.AgeGroups {
			parts[i] = string(ag)
		}
		groups = strconv.Quote(strings.Join(parts, ","))
	}
	return fmt.Sprintf("epidash:records:%s:%s:%s:%q:%q:%s",
		source, q.StartDate, q.EndDate, q.Disease, q.Region, groups)
}
