package domain

// NotAvailable fills quick stats that cannot be computed.
const NotAvailable = "N/A"

type QuickStats struct {
	TopDisease   string `json:"topDisease"`
	TopRegion    string `json:"topRegion"`
	BottomRegion string `json:"bottomRegion"`
}

// ComputeQuickStats picks the disease and regions with the most and fewest
// cases. Ties go to the key encountered first.
func ComputeQuickStats(records []Record) QuickStats {
	stats := QuickStats{TopDisease: NotAvailable, TopRegion: NotAvailable, BottomRegion: NotAvailable}
	if len(records) == 0 {
		return stats
	}

	diseases := sumCasesBy(records, func(r Record) string { return r.Disease })
	regions := sumCasesBy(records, func(r Record) string { return r.Region })

	stats.TopDisease = extreme(diseases, func(a, b int64) bool { return a > b })
	stats.TopRegion = extreme(regions, func(a, b int64) bool { return a > b })
	stats.BottomRegion = extreme(regions, func(a, b int64) bool { return a < b })
	return stats
}

type keyedSum struct {
	key   string
	cases int64
}

func sumCasesBy(records []Record, key func(Record) string) []keyedSum {
	var sums []keyedSum
	index := make(map[string]int)
	for _, r := range records {
		k := key(r)
		i, ok := index[k]
		if !ok {
			index[k] = len(sums)
			sums = append(sums, keyedSum{key: k})
			i = len(sums) - 1
		}
		sums[i].cases += r.Cases
	}
	return sums
}

func extreme(sums []keyedSum, better func(a, b int64) bool) string {
	if len(sums) == 0 {
		return NotAvailable
	}
	best := sums[0]
	for _, s := range sums[1:] {
		if better(s.cases, best.cases) {
			best = s
		}
	}
	return best.key
}
