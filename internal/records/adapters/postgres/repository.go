package postgres

import (
	"context"
	"fmt"

	"epidash-service/internal/records/core/domain"
	"epidash-service/internal/records/core/ports"
)

type RecordRepository struct {
	db DB
}

func NewRecordRepository(db DB) *RecordRepository {
	return &RecordRepository{db: db}
}

var _ ports.RecordRepositoryPort = (*RecordRepository)(nil)

// Regions and diseases are created on first use; age groups are fixed
// reference rows, so an unknown range fails the NOT NULL constraint.
const insertRecordSQL = `
WITH
    r AS (
        INSERT INTO regions (region_name) VALUES ($3)
        ON CONFLICT (region_name) DO UPDATE SET region_name = EXCLUDED.region_name
        RETURNING region_id
    ),
    d AS (
        INSERT INTO diseases (disease_name) VALUES ($4)
        ON CONFLICT (disease_name) DO UPDATE SET disease_name = EXCLUDED.disease_name
        RETURNING disease_id
    )
INSERT INTO epidemiological_data (
    entry_id,
    date_recorded,
    region_id,
    disease_id,
    age_group_id,
    gender,
    cases,
    recoveries,
    deaths,
    active,
    dedupe_key
) VALUES (
    $1, $2,
    (SELECT region_id FROM r),
    (SELECT disease_id FROM d),
    (SELECT age_group_id FROM age_groups WHERE age_range = $5),
    $6, $7, $8, $9, $10, $11
)
ON CONFLICT (dedupe_key) DO NOTHING;
`

func (r *RecordRepository) InsertRecord(ctx context.Context, e *domain.Entry) (bool, error) {
	rec := e.Record

	res, err := r.db.ExecContext(ctx, insertRecordSQL,
		e.ID,
		rec.Date.Time(),
		rec.Region,
		rec.Disease,
		string(rec.AgeGroup),
		string(rec.Gender),
		rec.Cases,
		rec.Recoveries,
		rec.Deaths,
		rec.Active,
		e.DedupeKey,
	)
	if err != nil {
		return false, fmt.Errorf("insert record: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	// rows == 1  -> new record
	// rows == 0  -> duplicate (ON CONFLICT DO NOTHING)
	return rows > 0, nil
}
