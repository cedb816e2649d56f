package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	dashboard "epidash-service/internal/dashboard/core/domain"
	"epidash-service/internal/records/core/domain"
	"epidash-service/internal/records/core/ports"
)

var (
	ErrInvalidRecord = errors.New("invalid record")
	ErrFutureDate    = errors.New("date cannot be in the future")
)

type StoreRecordUseCase struct {
	repo ports.RecordRepositoryPort
	now  func() time.Time
}

func NewStoreRecordUseCase(repo ports.RecordRepositoryPort) *StoreRecordUseCase {
	return &StoreRecordUseCase{repo: repo, now: time.Now}
}

type StoreRecordInput struct {
	Date       string
	Region     string
	Disease    string
	AgeGroup   string
	Gender     string
	Cases      int64
	Recoveries int64
	Deaths     int64
}

func (uc *StoreRecordUseCase) Execute(ctx context.Context, in StoreRecordInput) (bool, error) {
	rec, err := uc.toRecord(in)
	if err != nil {
		return false, err
	}

	e := &domain.Entry{
		ID:        uuid.New(),
		Record:    rec,
		DedupeKey: buildDedupeKey(rec),
	}

	created, err := uc.repo.InsertRecord(ctx, e)
	if err != nil {
		return false, err
	}

	return created, nil
}

func buildDedupeKey(r dashboard.Record) string {
	// date + region + disease + age_group + gender
	return fmt.Sprintf("%s|%s|%s|%s|%s",
		r.Date,
		r.Region,
		r.Disease,
		r.AgeGroup,
		r.Gender,
	)
}

type BulkCreateRecordsInput struct {
	Records []StoreRecordInput
}

type BulkCreateRecordsResult struct {
	Created    int
	Duplicates int
}

// BulkCreateRecords rejects the whole batch if any entry is invalid, then
// inserts one by one.
func (uc *StoreRecordUseCase) BulkCreateRecords(ctx context.Context, in BulkCreateRecordsInput) (BulkCreateRecordsResult, error) {
	var res BulkCreateRecordsResult

	for i, r := range in.Records {
		if _, err := uc.toRecord(r); err != nil {
			return res, fmt.Errorf("record %d: %w", i, err)
		}
	}

	for _, r := range in.Records {
		ok, err := uc.Execute(ctx, r)
		if err != nil {
			return res, err
		}

		if ok {
			res.Created++
		} else {
			res.Duplicates++
		}
	}

	return res, nil
}

func (uc *StoreRecordUseCase) toRecord(in StoreRecordInput) (dashboard.Record, error) {
	date, err := dashboard.ParseDate("date", in.Date)
	if err != nil {
		return dashboard.Record{}, fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}
	if date.After(dashboard.DateOf(uc.now())) {
		return dashboard.Record{}, ErrFutureDate
	}

	rec := dashboard.Record{
		Date:       date,
		Region:     strings.TrimSpace(in.Region),
		Disease:    strings.TrimSpace(in.Disease),
		AgeGroup:   dashboard.AgeGroup(strings.TrimSpace(in.AgeGroup)),
		Gender:     dashboard.Gender(strings.ToLower(strings.TrimSpace(in.Gender))),
		Cases:      in.Cases,
		Recoveries: in.Recoveries,
		Deaths:     in.Deaths,
		Active:     dashboard.ActiveFrom(in.Cases, in.Recoveries, in.Deaths),
	}
	if err := rec.Validate(); err != nil {
		return dashboard.Record{}, fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}
	return rec, nil
}
