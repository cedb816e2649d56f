package domain

import (
	"cmp"
	"slices"
)

// SeriesPoint is one period of the time series chart.
type SeriesPoint struct {
	PeriodKey  string           `json:"periodKey"`
	Date       Date             `json:"date"`
	Cases      int64            `json:"cases"`
	Recoveries int64            `json:"recoveries"`
	Deaths     int64            `json:"deaths"`
	Active     int64            `json:"active"`
	ByDisease  map[string]int64 `json:"byDisease"`
}

// TimeSeries sums records per period key and orders the points by the
// earliest member date. Date holds that earliest date.
func TimeSeries(records []Record, p Period) ([]SeriesPoint, error) {
	p, err := ParsePeriod(string(p))
	if err != nil {
		return nil, err
	}

	points := make([]SeriesPoint, 0)
	index := make(map[string]int)
	for _, r := range records {
		key, err := PeriodKey(r.Date, p)
		if err != nil {
			return nil, err
		}
		i, ok := index[key]
		if !ok {
			i = len(points)
			index[key] = i
			points = append(points, SeriesPoint{PeriodKey: key, Date: r.Date, ByDisease: map[string]int64{}})
		}
		pt := &points[i]
		if r.Date.Before(pt.Date) {
			pt.Date = r.Date
		}
		pt.Cases += r.Cases
		pt.Recoveries += r.Recoveries
		pt.Deaths += r.Deaths
		pt.Active += r.Active
		pt.ByDisease[r.Disease] += r.Cases
	}

	slices.SortStableFunc(points, func(a, b SeriesPoint) int {
		if c := a.Date.Compare(b.Date); c != 0 {
			return c
		}
		return cmp.Compare(a.PeriodKey, b.PeriodKey)
	})
	return points, nil
}
