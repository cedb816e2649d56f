package postgres

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"epidash-service/internal/dashboard/core/domain"
	"epidash-service/internal/dashboard/core/ports"
)

// fakeRowScanner implements RowScanner for tests.
type fakeRowScanner struct {
	rows   []fakeRow
	i      int
	err    error
	closed bool
}

type fakeRow struct {
	values []any
}

func (f *fakeRowScanner) Next() bool {
	return f.i < len(f.rows)
}

func (f *fakeRowScanner) Scan(dest ...any) error {
	if f.i >= len(f.rows) {
		return errors.New("no more rows")
	}
	row := f.rows[f.i]
	if len(dest) != len(row.values) {
		return errors.New("dest length mismatch")
	}
	for i := range dest {
		switch d := dest[i].(type) {
		case *int64:
			v, ok := row.values[i].(int64)
			if !ok {
				return errors.New("type assertion to int64 failed")
			}
			*d = v
		case *string:
			v, ok := row.values[i].(string)
			if !ok {
				return errors.New("type assertion to string failed")
			}
			*d = v
		case *time.Time:
			v, ok := row.values[i].(time.Time)
			if !ok {
				return errors.New("type assertion to time.Time failed")
			}
			*d = v
		default:
			return errors.New("unsupported dest type")
		}
	}
	f.i++
	return nil
}

func (f *fakeRowScanner) Err() error {
	return f.err
}

func (f *fakeRowScanner) Close() error {
	f.closed = true
	return nil
}

// fakeDB implements DB interface.
type fakeDB struct {
	QueryFn   func(ctx context.Context, query string, args ...any) (RowScanner, error)
	lastQuery string
	lastArgs  []any
	called    bool
}

func (f *fakeDB) QueryContext(ctx context.Context, query string, args ...any) (RowScanner, error) {
	f.called = true
	f.lastQuery = query
	f.lastArgs = args
	if f.QueryFn != nil {
		return f.QueryFn(ctx, query, args...)
	}
	return nil, nil
}

func row(date string, region, disease, age, gender string, cases, rec, deaths, active int64) fakeRow {
	d, _ := time.Parse("2006-01-02", date)
	return fakeRow{values: []any{d, region, disease, age, gender, cases, rec, deaths, active}}
}

func baseQuery() ports.RecordQuery {
	return ports.RecordQuery{
		StartDate: domain.MustParseDate("2023-01-01"),
		EndDate:   domain.MustParseDate("2023-12-31"),
	}
}

// ------------------------------------------------------------
// DATE RANGE ONLY
// ------------------------------------------------------------

func TestRecordReader_DateRangeOnly(t *testing.T) {
	scanner := &fakeRowScanner{
		rows: []fakeRow{
			row("2023-01-05", "Nairobi", "Malaria", "0-14", "male", 10, 8, 1, 1),
			row("2023-01-06", "Kisumu", "Cholera", "65+", "female", 4, 4, 0, 0),
		},
	}
	db := &fakeDB{
		QueryFn: func(ctx context.Context, query string, args ...any) (RowScanner, error) {
			if !strings.Contains(query, "FROM epidemiological_data ed") {
				t.Fatalf("unexpected query: %s", query)
			}
			if !strings.Contains(query, "ORDER BY ed.date_recorded, ed.data_id") {
				t.Fatalf("expected ordering by date then id, got: %s", query)
			}
			return scanner, nil
		},
	}

	repo := NewRecordReader(db)

	records, err := repo.FetchRecords(context.Background(), baseQuery())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(db.lastArgs) != 2 {
		t.Fatalf("expected 2 args, got %d", len(db.lastArgs))
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Date.String() != "2023-01-05" || records[0].AgeGroup != domain.AgeGroupChild || records[0].Gender != domain.GenderMale {
		t.Fatalf("unexpected first record: %+v", records[0])
	}
	if records[1].Region != "Kisumu" || records[1].Cases != 4 {
		t.Fatalf("unexpected second record: %+v", records[1])
	}
	if !scanner.closed {
		t.Fatalf("expected rows to be closed")
	}
}

// ------------------------------------------------------------
// PUSHDOWN
// ------------------------------------------------------------

func TestRecordReader_Pushdown(t *testing.T) {
	db := &fakeDB{
		QueryFn: func(ctx context.Context, query string, args ...any) (RowScanner, error) {
			return &fakeRowScanner{}, nil
		},
	}

	repo := NewRecordReader(db)

	q := baseQuery()
	q.Disease = "Malaria"
	q.Region = "Nairobi"
	q.AgeGroups = []domain.AgeGroup{domain.AgeGroupChild, domain.AgeGroupSenior}

	records, err := repo.FetchRecords(context.Background(), q)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if records == nil || len(records) != 0 {
		t.Fatalf("expected empty non-nil slice, got %v", records)
	}

	for _, want := range []string{"d.disease_name = $3", "r.region_name = $4", "ag.age_range = ANY($5)"} {
		if !strings.Contains(db.lastQuery, want) {
			t.Fatalf("expected %q in query, got: %s", want, db.lastQuery)
		}
	}
	if len(db.lastArgs) != 5 {
		t.Fatalf("expected 5 args, got %d", len(db.lastArgs))
	}
	if db.lastArgs[2] != "Malaria" || db.lastArgs[3] != "Nairobi" {
		t.Fatalf("unexpected args: %v", db.lastArgs)
	}
}

func TestRecordReader_RegionOnlyNumbersArgs(t *testing.T) {
	db := &fakeDB{
		QueryFn: func(ctx context.Context, query string, args ...any) (RowScanner, error) {
			return &fakeRowScanner{}, nil
		},
	}

	q := baseQuery()
	q.Region = "Embu"

	if _, err := NewRecordReader(db).FetchRecords(context.Background(), q); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(db.lastQuery, "r.region_name = $3") {
		t.Fatalf("expected region as $3, got: %s", db.lastQuery)
	}
}

// ------------------------------------------------------------
// ERRORS
// ------------------------------------------------------------

func TestRecordReader_QueryError(t *testing.T) {
	db := &fakeDB{
		QueryFn: func(ctx context.Context, query string, args ...any) (RowScanner, error) {
			return nil, errors.New("db down")
		},
	}

	_, err := NewRecordReader(db).FetchRecords(context.Background(), baseQuery())
	if err == nil || !strings.Contains(err.Error(), "db down") {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestRecordReader_InvalidRowValue(t *testing.T) {
	db := &fakeDB{
		QueryFn: func(ctx context.Context, query string, args ...any) (RowScanner, error) {
			return &fakeRowScanner{rows: []fakeRow{
				row("2023-01-05", "Nairobi", "Malaria", "0-14", "unknown", 1, 0, 0, 1),
			}}, nil
		},
	}

	_, err := NewRecordReader(db).FetchRecords(context.Background(), baseQuery())
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error for bad gender, got %v", err)
	}
}

func TestRecordReader_RowsErr(t *testing.T) {
	db := &fakeDB{
		QueryFn: func(ctx context.Context, query string, args ...any) (RowScanner, error) {
			return &fakeRowScanner{err: errors.New("conn reset")}, nil
		},
	}

	if _, err := NewRecordReader(db).FetchRecords(context.Background(), baseQuery()); err == nil {
		t.Fatalf("expected error, got nil")
	}
}
