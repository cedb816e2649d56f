package usecase

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"epidash-service/internal/dashboard/core/domain"
	"epidash-service/internal/dashboard/core/ports"
)

var ErrSourceUnavailable = errors.New("data source not configured")

// SourcePolicy decides which source serves a request.
type SourcePolicy struct {
	Default        domain.DataSource
	AllowSwitching bool
}

// Resolve honours the requested source only when switching is allowed.
func (p SourcePolicy) Resolve(requested string) (domain.DataSource, error) {
	if requested == "" || !p.AllowSwitching {
		return p.Default, nil
	}
	return domain.ParseDataSource(requested)
}

// Available lists the sources a client may pick.
func (p SourcePolicy) Available() []domain.DataSource {
	if !p.AllowSwitching {
		return []domain.DataSource{p.Default}
	}
	return domain.DataSources
}

// SourceSelector fetches records from the mock source, the database or both.
// Either source may be nil when it is not configured.
type SourceSelector struct {
	mock     ports.RecordSourcePort
	database ports.RecordSourcePort
}

func NewSourceSelector(mock, database ports.RecordSourcePort) *SourceSelector {
	return &SourceSelector{mock: mock, database: database}
}

// FetchResult carries the records plus failures tolerated under "both".
type FetchResult struct {
	Records      []domain.Record
	SourceErrors map[string]string
}

func (s *SourceSelector) Fetch(ctx context.Context, ds domain.DataSource, q ports.RecordQuery) (*FetchResult, error) {
	switch ds {
	case domain.DataSourceMock:
		return s.single(ctx, s.mock, ds, q)
	case domain.DataSourceDatabase:
		return s.single(ctx, s.database, ds, q)
	case domain.DataSourceBoth:
		return s.both(ctx, q)
	}
	return nil, fmt.Errorf("%w: %s", ErrSourceUnavailable, ds)
}

func (s *SourceSelector) single(ctx context.Context, src ports.RecordSourcePort, ds domain.DataSource, q ports.RecordQuery) (*FetchResult, error) {
	if src == nil {
		return nil, fmt.Errorf("%w: %s", ErrSourceUnavailable, ds)
	}
	records, err := src.FetchRecords(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("fetch %s records: %w", ds, err)
	}
	return &FetchResult{Records: records}, nil
}

// both runs the two fetches concurrently. A database failure is reported in
// SourceErrors and the mock records are still returned.
func (s *SourceSelector) both(ctx context.Context, q ports.RecordQuery) (*FetchResult, error) {
	if s.mock == nil {
		return nil, fmt.Errorf("%w: %s", ErrSourceUnavailable, domain.DataSourceMock)
	}

	var (
		mockRecords []domain.Record
		dbRecords   []domain.Record
		dbErr       error
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		records, err := s.mock.FetchRecords(gctx, q)
		if err != nil {
			return fmt.Errorf("fetch mock records: %w", err)
		}
		mockRecords = records
		return nil
	})
	if s.database != nil {
		g.Go(func() error {
			// never fails the group
			dbRecords, dbErr = s.database.FetchRecords(gctx, q)
			return nil
		})
	} else {
		dbErr = ErrSourceUnavailable
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := &FetchResult{Records: make([]domain.Record, 0, len(mockRecords)+len(dbRecords))}
	out.Records = append(out.Records, mockRecords...)
	if dbErr != nil {
		out.SourceErrors = map[string]string{string(domain.DataSourceDatabase): dbErr.Error()}
		return out, nil
	}
	out.Records = append(out.Records, dbRecords...)
	return out, nil
}
