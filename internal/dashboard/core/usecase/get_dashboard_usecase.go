package usecase

import (
	"context"
	"time"

	"epidash-service/internal/dashboard/core/domain"
	"epidash-service/internal/dashboard/core/ports"
)

type GetDashboardInput struct {
	StartDate string
	EndDate   string
	Preset    string // overrides StartDate/EndDate when set
	Disease   string
	Region    string
	AgeGroups []string // nil = all
	Gender    string
	Period    string
	Source    string
	Search    string
	GroupBy   string // optional breakdown dimension
	Page      int
	PageSize  int
}

// DashboardDefaults fills input fields the client left empty.
type DashboardDefaults struct {
	StartDate  string
	EndDate    string
	Period     domain.Period
	PageSize   int
	TopRegions int
}

type DashboardResult struct {
	Source          domain.DataSource
	Criteria        domain.FilterCriteria
	Metrics         domain.Metrics
	QuickStats      domain.QuickStats
	Buckets         domain.Page[domain.AggregatedBucket]
	TopRegions      []domain.GroupTotal
	AgeDistribution []domain.GroupTotal
	TimeSeries      []domain.SeriesPoint
	Choropleth      []domain.RegionShade
	GroupBy         domain.Dimension
	Breakdown       []domain.GroupTotal // nil unless GroupBy is set
	SourceErrors    map[string]string
}

type GetDashboardUseCase struct {
	sources  *SourceSelector
	policy   SourcePolicy
	defaults DashboardDefaults
	now      func() time.Time
}

func NewGetDashboardUseCase(sources *SourceSelector, policy SourcePolicy, defaults DashboardDefaults) *GetDashboardUseCase {
	return &GetDashboardUseCase{sources: sources, policy: policy, defaults: defaults, now: time.Now}
}

// WithClock replaces the clock used to resolve presets.
func (uc *GetDashboardUseCase) WithClock(now func() time.Time) *GetDashboardUseCase {
	uc.now = now
	return uc
}

// Execute resolves the source, fetches, filters, aggregates and derives every
// dashboard view from one consistent record set.
func (uc *GetDashboardUseCase) Execute(ctx context.Context, in GetDashboardInput) (*DashboardResult, error) {
	criteria, err := uc.criteria(in)
	if err != nil {
		return nil, err
	}

	var groupBy domain.Dimension
	if in.GroupBy != "" {
		if groupBy, err = domain.ParseDimension(in.GroupBy); err != nil {
			return nil, err
		}
	}

	page, pageSize := in.Page, in.PageSize
	if page == 0 {
		page = 1
	}
	if pageSize == 0 {
		pageSize = uc.defaults.PageSize
	}

	source, err := uc.policy.Resolve(in.Source)
	if err != nil {
		return nil, err
	}

	fetched, err := uc.sources.Fetch(ctx, source, QueryFor(criteria))
	if err != nil {
		return nil, err
	}

	filtered := domain.Filter(fetched.Records, criteria)

	buckets, err := domain.Aggregate(filtered, criteria.Period)
	if err != nil {
		return nil, err
	}
	bucketRecords := domain.BucketRecords(buckets)

	pageOut, err := domain.NewPage(domain.Search(buckets, in.Search), page, pageSize)
	if err != nil {
		return nil, err
	}

	series, err := domain.TimeSeries(filtered, criteria.Period)
	if err != nil {
		return nil, err
	}

	var breakdown []domain.GroupTotal
	if groupBy != "" {
		breakdown = domain.Breakdown(filtered, groupBy)
	}

	return &DashboardResult{
		Source:          source,
		Criteria:        criteria,
		Metrics:         domain.ComputeMetrics(bucketRecords),
		QuickStats:      domain.ComputeQuickStats(bucketRecords),
		Buckets:         pageOut,
		TopRegions:      domain.TopN(domain.Breakdown(filtered, domain.DimensionRegion), uc.defaults.TopRegions),
		AgeDistribution: domain.AgeDistribution(filtered),
		TimeSeries:      series,
		Choropleth:      domain.Choropleth(filtered),
		GroupBy:         groupBy,
		Breakdown:       breakdown,
		SourceErrors:    fetched.SourceErrors,
	}, nil
}

func (uc *GetDashboardUseCase) criteria(in GetDashboardInput) (domain.FilterCriteria, error) {
	ci := domain.CriteriaInput{
		StartDate: in.StartDate,
		EndDate:   in.EndDate,
		Disease:   in.Disease,
		Region:    in.Region,
		AgeGroups: in.AgeGroups,
		Gender:    in.Gender,
		Period:    in.Period,
	}
	if in.Preset != "" {
		start, end, err := domain.PresetRange(in.Preset, domain.DateOf(uc.now()))
		if err != nil {
			return domain.FilterCriteria{}, err
		}
		ci.StartDate, ci.EndDate = start.String(), end.String()
	}
	if ci.StartDate == "" {
		ci.StartDate = uc.defaults.StartDate
	}
	if ci.EndDate == "" {
		ci.EndDate = uc.defaults.EndDate
	}
	if ci.Period == "" {
		ci.Period = string(uc.defaults.Period)
	}
	return domain.NewFilterCriteria(ci)
}

// QueryFor derives the source pushdown from the full criteria.
func QueryFor(c domain.FilterCriteria) ports.RecordQuery {
	return ports.RecordQuery{
		StartDate: c.StartDate,
		EndDate:   c.EndDate,
		Disease:   c.Disease,
		Region:    c.Region,
		AgeGroups: c.AgeGroups,
	}
}
