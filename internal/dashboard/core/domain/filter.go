package domain

// Filter returns the records matching c, in input order. The input is not modified.
func Filter(records []Record, c FilterCriteria) []Record {
	out := make([]Record, 0, len(records))
	if len(c.AgeGroups) == 0 {
		return out
	}

	allowed := make(map[AgeGroup]struct{}, len(c.AgeGroups))
	for _, ag := range c.AgeGroups {
		allowed[ag] = struct{}{}
	}

	for _, r := range records {
		if r.Date.Before(c.StartDate) || r.Date.After(c.EndDate) {
			continue
		}
		if c.Disease != "" && r.Disease != c.Disease {
			continue
		}
		if c.Region != "" && r.Region != c.Region {
			continue
		}
		if _, ok := allowed[r.AgeGroup]; !ok {
			continue
		}
		if c.Gender != "" && r.Gender != c.Gender {
			continue
		}
		out = append(out, r)
	}
	return out
}
