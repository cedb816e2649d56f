package mock

import (
	"context"
	"slices"
	"sync"
	"time"

	"epidash-service/internal/dashboard/core/domain"
	"epidash-service/internal/dashboard/core/ports"
)

type Config struct {
	Count     int
	Seed      uint64
	StartDate domain.Date
	EndDate   domain.Date
}

// Source serves a generated snapshot. Refresh swaps in a new snapshot;
// readers always see a complete one.
type Source struct {
	cfg Config

	genMu sync.Mutex
	gen   *Generator

	mu          sync.RWMutex
	records     []domain.Record
	generatedAt time.Time
}

var _ ports.RecordSourcePort = (*Source)(nil)

func NewSource(cfg Config) *Source {
	s := &Source{cfg: cfg, gen: NewGenerator(cfg.Seed)}
	s.regenerate()
	return s
}

func (s *Source) FetchRecords(ctx context.Context, q ports.RecordQuery) ([]domain.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var groups map[domain.AgeGroup]struct{}
	if q.AgeGroups != nil {
		groups = make(map[domain.AgeGroup]struct{}, len(q.AgeGroups))
		for _, ag := range q.AgeGroups {
			groups[ag] = struct{}{}
		}
	}

	out := make([]domain.Record, 0, len(s.records))
	for _, r := range s.records {
		if !q.StartDate.IsZero() && r.Date.Before(q.StartDate) {
			continue
		}
		if !q.EndDate.IsZero() && r.Date.After(q.EndDate) {
			continue
		}
		if q.Disease != "" && r.Disease != q.Disease {
			continue
		}
		if q.Region != "" && r.Region != q.Region {
			continue
		}
		if groups != nil {
			if _, ok := groups[r.AgeGroup]; !ok {
				continue
			}
		}
		out = append(out, r)
	}
	return out, nil
}

// Refresh regenerates the snapshot. Scheduled by the cron job.
func (s *Source) Refresh(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.regenerate()
	return nil
}

// Snapshot returns a copy of every record and when it was generated.
func (s *Source) Snapshot() ([]domain.Record, time.Time) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.records), s.generatedAt
}

func (s *Source) regenerate() {
	s.genMu.Lock()
	records := s.gen.Generate(s.cfg.StartDate, s.cfg.EndDate, s.cfg.Count)
	s.genMu.Unlock()

	s.mu.Lock()
	s.records = records
	s.generatedAt = time.Now()
	s.mu.Unlock()
}
