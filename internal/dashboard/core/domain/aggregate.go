package domain

import (
	"fmt"
	"time"
)

// AggregatedBucket is the sum of every record sharing a period key. Date and
// the dimension labels are taken from the first member record.
type AggregatedBucket struct {
	PeriodKey string `json:"periodKey"`
	Record
}

// PeriodKey returns the bucket key of d for period p.
func PeriodKey(d Date, p Period) (string, error) {
	switch p {
	case PeriodDaily:
		return d.String(), nil
	case PeriodWeekly:
		return fmt.Sprintf("%d-W%d", d.Year(), weekOfYear(d)), nil
	case PeriodMonthly:
		return fmt.Sprintf("%d-%02d", d.Year(), int(d.Month())), nil
	case PeriodQuarterly:
		return fmt.Sprintf("%d-Q%d", d.Year(), (int(d.Month())+2)/3), nil
	case PeriodYearly:
		return fmt.Sprintf("%d", d.Year()), nil
	}
	return "", newValidationError("period", string(p), "expected daily, weekly, monthly, quarterly or yearly")
}

// weekOfYear counts Sunday-start weeks inside the calendar year, week 1
// being the (possibly partial) week holding January 1st. Not ISO-8601.
func weekOfYear(d Date) int {
	jan1 := time.Date(d.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	days := d.Time().YearDay() - 1
	offset := int(jan1.Weekday())
	return (days + offset + 1 + 6) / 7
}

// Aggregate groups records by period key in first-occurrence order.
func Aggregate(records []Record, p Period) ([]AggregatedBucket, error) {
	p, err := ParsePeriod(string(p))
	if err != nil {
		return nil, err
	}

	buckets := make([]AggregatedBucket, 0, len(records))
	index := make(map[string]int, len(records))

	for _, r := range records {
		key, err := PeriodKey(r.Date, p)
		if err != nil {
			return nil, err
		}
		if p == PeriodDaily {
			buckets = append(buckets, AggregatedBucket{PeriodKey: key, Record: r})
			continue
		}
		i, ok := index[key]
		if !ok {
			index[key] = len(buckets)
			buckets = append(buckets, AggregatedBucket{PeriodKey: key, Record: r})
			continue
		}
		b := &buckets[i]
		b.Cases += r.Cases
		b.Recoveries += r.Recoveries
		b.Deaths += r.Deaths
		b.Active += r.Active
	}
	return buckets, nil
}

// BucketRecords projects buckets back onto records for the calculators.
func BucketRecords(buckets []AggregatedBucket) []Record {
	out := make([]Record, len(buckets))
	for i, b := range buckets {
		out[i] = b.Record
	}
	return out
}
