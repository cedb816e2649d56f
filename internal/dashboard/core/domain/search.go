package domain

import "strings"

// Search keeps buckets whose region, disease or period key contains term,
// ignoring case. A blank term keeps everything.
func Search(buckets []AggregatedBucket, term string) []AggregatedBucket {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return buckets
	}
	out := make([]AggregatedBucket, 0, len(buckets))
	for _, b := range buckets {
		if strings.Contains(strings.ToLower(b.Region), term) ||
			strings.Contains(strings.ToLower(b.Disease), term) ||
			strings.Contains(strings.ToLower(b.PeriodKey), term) {
			out = append(out, b)
		}
	}
	return out
}
