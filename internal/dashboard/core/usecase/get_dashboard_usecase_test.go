package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"epidash-service/internal/dashboard/core/domain"
	"epidash-service/internal/dashboard/core/ports"
	"epidash-service/internal/dashboard/core/usecase"
)

// fakeSource, RecordSourcePort'u test için fake'ler.
type fakeSource struct {
	FetchFn   func(ctx context.Context, q ports.RecordQuery) ([]domain.Record, error)
	lastQuery ports.RecordQuery
	calls     int
}

func (f *fakeSource) FetchRecords(ctx context.Context, q ports.RecordQuery) ([]domain.Record, error) {
	f.calls++
	f.lastQuery = q
	if f.FetchFn != nil {
		return f.FetchFn(ctx, q)
	}
	return nil, nil
}

func staticSource(records ...domain.Record) *fakeSource {
	return &fakeSource{FetchFn: func(ctx context.Context, q ports.RecordQuery) ([]domain.Record, error) {
		return records, nil
	}}
}

func record(date, region, disease string, ag domain.AgeGroup, cases, recoveries, deaths int64) domain.Record {
	return domain.Record{
		Date:       domain.MustParseDate(date),
		Region:     region,
		Disease:    disease,
		AgeGroup:   ag,
		Gender:     domain.GenderFemale,
		Cases:      cases,
		Recoveries: recoveries,
		Deaths:     deaths,
		Active:     domain.ActiveFrom(cases, recoveries, deaths),
	}
}

var defaults = usecase.DashboardDefaults{
	StartDate:  "2023-01-01",
	EndDate:    "2023-12-31",
	Period:     domain.PeriodDaily,
	PageSize:   10,
	TopRegions: 10,
}

func newDashboard(mock, db ports.RecordSourcePort, policy usecase.SourcePolicy) *usecase.GetDashboardUseCase {
	return usecase.NewGetDashboardUseCase(usecase.NewSourceSelector(mock, db), policy, defaults)
}

var mockOnly = usecase.SourcePolicy{Default: domain.DataSourceMock, AllowSwitching: true}

// ------------------------------------------------------------
// SUCCESS
// ------------------------------------------------------------

func TestGetDashboard_Success_Monthly(t *testing.T) {
	mock := staticSource(
		record("2023-01-05", "Nairobi", "Malaria", domain.AgeGroupChild, 10, 8, 1),
		record("2023-01-20", "Kisumu", "Malaria", domain.AgeGroupAdult, 30, 20, 0),
		record("2023-02-02", "Nairobi", "Cholera", domain.AgeGroupChild, 40, 30, 2),
		record("2024-01-01", "Nairobi", "Cholera", domain.AgeGroupChild, 99, 0, 0),
	)

	uc := newDashboard(mock, nil, mockOnly)

	out, err := uc.Execute(context.Background(), usecase.GetDashboardInput{Period: "monthly"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.Source != domain.DataSourceMock {
		t.Fatalf("expected source=mock, got %s", out.Source)
	}
	if out.Buckets.TotalItems != 2 {
		t.Fatalf("expected 2 monthly buckets, got %d", out.Buckets.TotalItems)
	}
	if out.Buckets.Items[0].PeriodKey != "2023-01" || out.Buckets.Items[0].Cases != 40 {
		t.Fatalf("unexpected first bucket: %+v", out.Buckets.Items[0])
	}
	if out.Metrics.TotalCases != 80 {
		t.Fatalf("expected totalCases=80, got %d", out.Metrics.TotalCases)
	}
	if out.QuickStats.TopRegion != "Nairobi" {
		t.Fatalf("expected topRegion=Nairobi, got %s", out.QuickStats.TopRegion)
	}
	if len(out.TopRegions) != 2 || out.TopRegions[0].Key != "Nairobi" {
		t.Fatalf("unexpected top regions: %+v", out.TopRegions)
	}
	if len(out.AgeDistribution) != len(domain.AgeGroups) {
		t.Fatalf("expected %d age groups, got %d", len(domain.AgeGroups), len(out.AgeDistribution))
	}
	if len(out.TimeSeries) != 2 || out.TimeSeries[0].ByDisease["Malaria"] != 40 {
		t.Fatalf("unexpected time series: %+v", out.TimeSeries)
	}
	if out.SourceErrors != nil {
		t.Fatalf("expected no source errors, got %v", out.SourceErrors)
	}

	// pushdown
	if mock.lastQuery.StartDate.String() != "2023-01-01" || mock.lastQuery.EndDate.String() != "2023-12-31" {
		t.Fatalf("unexpected pushed down range: %+v", mock.lastQuery)
	}
}

func TestGetDashboard_SearchAndPaging(t *testing.T) {
	var records []domain.Record
	for i := 1; i <= 25; i++ {
		records = append(records, record("2023-03-01", "Nairobi", "Malaria", domain.AgeGroupAdult, int64(i), 0, 0))
	}
	records = append(records, record("2023-03-02", "Embu", "Typhoid", domain.AgeGroupAdult, 1, 0, 0))

	uc := newDashboard(staticSource(records...), nil, mockOnly)

	out, err := uc.Execute(context.Background(), usecase.GetDashboardInput{Search: "nairobi", Page: 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Buckets.TotalItems != 25 || out.Buckets.TotalPages != 3 || len(out.Buckets.Items) != 5 {
		t.Fatalf("unexpected page: total=%d pages=%d items=%d", out.Buckets.TotalItems, out.Buckets.TotalPages, len(out.Buckets.Items))
	}
	if out.Buckets.Items[0].Cases != 21 {
		t.Fatalf("expected page 3 to start at the 21st bucket, got %+v", out.Buckets.Items[0])
	}
	// metrics ignore search
	if out.Metrics.TotalCases != 326 {
		t.Fatalf("expected totalCases=326, got %d", out.Metrics.TotalCases)
	}
}

func TestGetDashboard_Preset(t *testing.T) {
	mock := staticSource()
	uc := newDashboard(mock, nil, mockOnly).WithClock(func() time.Time {
		return time.Date(2024, 3, 1, 15, 0, 0, 0, time.UTC)
	})

	if _, err := uc.Execute(context.Background(), usecase.GetDashboardInput{Preset: "last30days"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := mock.lastQuery.StartDate.String(); got != "2024-01-31" {
		t.Fatalf("expected start=2024-01-31, got %s", got)
	}
	if got := mock.lastQuery.EndDate.String(); got != "2024-03-01" {
		t.Fatalf("expected end=2024-03-01, got %s", got)
	}
}

func TestGetDashboard_GroupBy(t *testing.T) {
	mock := staticSource(
		record("2023-01-05", "Nairobi", "Malaria", domain.AgeGroupChild, 10, 8, 1),
		record("2023-01-20", "Kisumu", "Cholera", domain.AgeGroupAdult, 30, 20, 0),
		record("2023-02-02", "Nairobi", "Malaria", domain.AgeGroupChild, 5, 3, 0),
	)

	uc := newDashboard(mock, nil, mockOnly)

	out, err := uc.Execute(context.Background(), usecase.GetDashboardInput{GroupBy: "disease"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.GroupBy != domain.DimensionDisease {
		t.Fatalf("expected disease dimension, got %q", out.GroupBy)
	}
	if len(out.Breakdown) != 2 || out.Breakdown[0].Key != "Malaria" || out.Breakdown[0].Cases != 15 {
		t.Fatalf("unexpected breakdown: %+v", out.Breakdown)
	}

	out, err = uc.Execute(context.Background(), usecase.GetDashboardInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Breakdown != nil {
		t.Fatalf("expected no breakdown without group by, got %+v", out.Breakdown)
	}

	calls := mock.calls
	_, err = uc.Execute(context.Background(), usecase.GetDashboardInput{GroupBy: "weekday"})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if mock.calls != calls {
		t.Fatalf("expected no fetch for invalid group by")
	}
}

// ------------------------------------------------------------
// SOURCE POLICY
// ------------------------------------------------------------

func TestGetDashboard_Both_ToleratesDatabaseFailure(t *testing.T) {
	mock := staticSource(record("2023-01-01", "Nairobi", "Malaria", domain.AgeGroupAdult, 5, 0, 0))
	db := &fakeSource{FetchFn: func(ctx context.Context, q ports.RecordQuery) ([]domain.Record, error) {
		return nil, errors.New("connection refused")
	}}

	uc := newDashboard(mock, db, mockOnly)

	out, err := uc.Execute(context.Background(), usecase.GetDashboardInput{Source: "both"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Metrics.TotalCases != 5 {
		t.Fatalf("expected mock records to be served, got totalCases=%d", out.Metrics.TotalCases)
	}
	if out.SourceErrors["database"] != "connection refused" {
		t.Fatalf("expected database source error, got %v", out.SourceErrors)
	}
}

func TestGetDashboard_Both_ConcatenatesMockThenDatabase(t *testing.T) {
	mock := staticSource(record("2023-01-02", "Mock", "Malaria", domain.AgeGroupAdult, 1, 0, 0))
	db := staticSource(record("2023-01-01", "Db", "Malaria", domain.AgeGroupAdult, 2, 0, 0))

	uc := newDashboard(mock, db, mockOnly)

	out, err := uc.Execute(context.Background(), usecase.GetDashboardInput{Source: "both"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Buckets.Items) != 2 || out.Buckets.Items[0].Region != "Mock" || out.Buckets.Items[1].Region != "Db" {
		t.Fatalf("unexpected bucket order: %+v", out.Buckets.Items)
	}
}

func TestGetDashboard_DatabaseFailureFailsRequest(t *testing.T) {
	db := &fakeSource{FetchFn: func(ctx context.Context, q ports.RecordQuery) ([]domain.Record, error) {
		return nil, errors.New("boom")
	}}

	uc := newDashboard(staticSource(), db, mockOnly)

	_, err := uc.Execute(context.Background(), usecase.GetDashboardInput{Source: "database"})
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if errors.Is(err, domain.ErrValidation) || errors.Is(err, usecase.ErrSourceUnavailable) {
		t.Fatalf("expected internal error, got %v", err)
	}
}

func TestGetDashboard_SwitchingDisabledUsesDefault(t *testing.T) {
	mock := staticSource()
	db := staticSource()

	uc := newDashboard(mock, db, usecase.SourcePolicy{Default: domain.DataSourceMock, AllowSwitching: false})

	out, err := uc.Execute(context.Background(), usecase.GetDashboardInput{Source: "database"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Source != domain.DataSourceMock || db.calls != 0 || mock.calls != 1 {
		t.Fatalf("expected mock to serve, got source=%s mock=%d db=%d", out.Source, mock.calls, db.calls)
	}
}

func TestGetDashboard_UnconfiguredDatabase(t *testing.T) {
	uc := newDashboard(staticSource(), nil, mockOnly)

	_, err := uc.Execute(context.Background(), usecase.GetDashboardInput{Source: "database"})
	if !errors.Is(err, usecase.ErrSourceUnavailable) {
		t.Fatalf("expected ErrSourceUnavailable, got %v", err)
	}
}

// ------------------------------------------------------------
// VALIDATION
// ------------------------------------------------------------

func TestGetDashboard_ValidationErrors(t *testing.T) {
	mock := staticSource()
	uc := newDashboard(mock, nil, mockOnly)

	inputs := []usecase.GetDashboardInput{
		{StartDate: "2023-13-01"},
		{StartDate: "2023-06-01", EndDate: "2023-05-01"},
		{Period: "hourly"},
		{Source: "csv"},
		{Gender: "other"},
		{AgeGroups: []string{"70+"}},
		{Preset: "lastCentury"},
		{Page: -1},
	}
	for _, in := range inputs {
		_, err := uc.Execute(context.Background(), in)
		if !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("input %+v: expected validation error, got %v", in, err)
		}
	}
}
