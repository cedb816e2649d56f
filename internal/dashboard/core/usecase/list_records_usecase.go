package usecase

import (
	"context"

	"epidash-service/internal/dashboard/core/domain"
	"epidash-service/internal/dashboard/core/ports"
)

type ListRecordsInput struct {
	StartDate string
	EndDate   string
	Disease   string
	Region    string
	Source    string
}

type ListRecordsResult struct {
	Source       domain.DataSource
	Records      []domain.Record
	SourceErrors map[string]string
}

// ListRecordsUseCase returns raw records for a date range, without aggregation.
type ListRecordsUseCase struct {
	sources  *SourceSelector
	policy   SourcePolicy
	defaults DashboardDefaults
}

func NewListRecordsUseCase(sources *SourceSelector, policy SourcePolicy, defaults DashboardDefaults) *ListRecordsUseCase {
	return &ListRecordsUseCase{sources: sources, policy: policy, defaults: defaults}
}

func (uc *ListRecordsUseCase) Execute(ctx context.Context, in ListRecordsInput) (*ListRecordsResult, error) {
	if in.StartDate == "" {
		in.StartDate = uc.defaults.StartDate
	}
	if in.EndDate == "" {
		in.EndDate = uc.defaults.EndDate
	}
	criteria, err := domain.NewFilterCriteria(domain.CriteriaInput{
		StartDate: in.StartDate,
		EndDate:   in.EndDate,
		Disease:   in.Disease,
		Region:    in.Region,
		Period:    string(domain.PeriodDaily),
	})
	if err != nil {
		return nil, err
	}

	source, err := uc.policy.Resolve(in.Source)
	if err != nil {
		return nil, err
	}

	fetched, err := uc.sources.Fetch(ctx, source, ports.RecordQuery{
		StartDate: criteria.StartDate,
		EndDate:   criteria.EndDate,
		Disease:   criteria.Disease,
		Region:    criteria.Region,
	})
	if err != nil {
		return nil, err
	}

	return &ListRecordsResult{
		Source:       source,
		Records:      domain.Filter(fetched.Records, criteria),
		SourceErrors: fetched.SourceErrors,
	}, nil
}
