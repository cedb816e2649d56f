package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/lib/pq"

	"epidash-service/internal/dashboard/core/domain"
	"epidash-service/internal/dashboard/core/ports"
)

type RowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
}

type DB interface {
	QueryContext(ctx context.Context, query string, args ...any) (RowScanner, error)
}

type RecordReader struct {
	db DB
}

func NewRecordReader(db DB) *RecordReader {
	return &RecordReader{db: db}
}

var _ ports.RecordSourcePort = (*RecordReader)(nil)

const selectRecordsSQL = `
SELECT
    ed.date_recorded,
    r.region_name,
    d.disease_name,
    ag.age_range,
    ed.gender,
    ed.cases,
    ed.recoveries,
    ed.deaths,
    ed.active
FROM epidemiological_data ed
JOIN regions r ON ed.region_id = r.region_id
JOIN diseases d ON ed.disease_id = d.disease_id
JOIN age_groups ag ON ed.age_group_id = ag.age_group_id
WHERE `

func (r *RecordReader) FetchRecords(ctx context.Context, q ports.RecordQuery) ([]domain.Record, error) {
	query, args := buildRecordQuery(q)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query records: %w", err)
	}
	defer rows.Close()

	records := make([]domain.Record, 0)
	for rows.Next() {
		var (
			date                              time.Time
			region, disease, age, gender      string
			cases, recoveries, deaths, active int64
		)
		if err := rows.Scan(&date, &region, &disease, &age, &gender, &cases, &recoveries, &deaths, &active); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}

		ageGroup, err := domain.ParseAgeGroup(age)
		if err != nil {
			return nil, fmt.Errorf("record row: %w", err)
		}
		g, err := domain.ParseGender(gender)
		if err != nil {
			return nil, fmt.Errorf("record row: %w", err)
		}

		records = append(records, domain.Record{
			Date:       domain.DateOf(date),
			Region:     region,
			Disease:    disease,
			AgeGroup:   ageGroup,
			Gender:     g,
			Cases:      cases,
			Recoveries: recoveries,
			Deaths:     deaths,
			Active:     active,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate records: %w", err)
	}

	return records, nil
}

func buildRecordQuery(q ports.RecordQuery) (string, []any) {
	where := "ed.date_recorded BETWEEN $1 AND $2"
	args := []any{q.StartDate.Time(), q.EndDate.Time()}
	argIndex := 3

	if q.Disease != "" {
		where += fmt.Sprintf(" AND d.disease_name = $%d", argIndex)
		args = append(args, q.Disease)
		argIndex++
	}
	if q.Region != "" {
		where += fmt.Sprintf(" AND r.region_name = $%d", argIndex)
		args = append(args, q.Region)
		argIndex++
	}
	if q.AgeGroups != nil {
		groups := make([]string, len(q.AgeGroups))
		for i, ag := range q.AgeGroups {
			groups[i] = string(ag)
		}
		where += fmt.Sprintf(" AND ag.age_range = ANY($%d)", argIndex)
		args = append(args, pq.Array(groups))
	}

	return selectRecordsSQL + where + "\nORDER BY ed.date_recorded, ed.data_id", args
}
