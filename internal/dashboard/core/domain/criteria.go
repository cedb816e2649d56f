package domain

import (
	"slices"
	"strings"
)

type Period string

const (
	PeriodDaily     Period = "daily"
	PeriodWeekly    Period = "weekly"
	PeriodMonthly   Period = "monthly"
	PeriodQuarterly Period = "quarterly"
	PeriodYearly    Period = "yearly"
)

var Periods = []Period{PeriodDaily, PeriodWeekly, PeriodMonthly, PeriodQuarterly, PeriodYearly}

func ParsePeriod(s string) (Period, error) {
	p := Period(strings.ToLower(strings.TrimSpace(s)))
	if slices.Contains(Periods, p) {
		return p, nil
	}
	return "", newValidationError("period", s, "expected daily, weekly, monthly, quarterly or yearly")
}

// FilterCriteria is built once per request and passed by value. Empty Disease,
// Region and Gender mean "any".
type FilterCriteria struct {
	StartDate Date
	EndDate   Date
	Disease   string
	Region    string
	AgeGroups []AgeGroup
	Gender    Gender
	Period    Period
}

type CriteriaInput struct {
	StartDate string
	EndDate   string
	Disease   string
	Region    string
	// nil selects every age group, an empty non-nil slice selects none.
	AgeGroups []string
	Gender    string
	Period    string
}

const anyValue = "all"

func NewFilterCriteria(in CriteriaInput) (FilterCriteria, error) {
	start, err := ParseDate("startDate", in.StartDate)
	if err != nil {
		return FilterCriteria{}, err
	}
	end, err := ParseDate("endDate", in.EndDate)
	if err != nil {
		return FilterCriteria{}, err
	}
	if end.Before(start) {
		return FilterCriteria{}, newValidationError("endDate", in.EndDate, "must not be before startDate")
	}

	period, err := ParsePeriod(in.Period)
	if err != nil {
		return FilterCriteria{}, err
	}

	c := FilterCriteria{
		StartDate: start,
		EndDate:   end,
		Disease:   optional(in.Disease),
		Region:    optional(in.Region),
		Period:    period,
	}

	if g := optional(in.Gender); g != "" {
		gender, err := ParseGender(g)
		if err != nil {
			return FilterCriteria{}, err
		}
		c.Gender = gender
	}

	if in.AgeGroups == nil {
		c.AgeGroups = slices.Clone(AgeGroups)
	} else {
		c.AgeGroups = make([]AgeGroup, 0, len(in.AgeGroups))
		for _, raw := range in.AgeGroups {
			ag, err := ParseAgeGroup(raw)
			if err != nil {
				return FilterCriteria{}, err
			}
			if !slices.Contains(c.AgeGroups, ag) {
				c.AgeGroups = append(c.AgeGroups, ag)
			}
		}
	}

	return c, nil
}

func optional(s string) string {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, anyValue) {
		return ""
	}
	return s
}

// PresetRange resolves the quick date ranges offered next to the date pickers.
func PresetRange(preset string, today Date) (Date, Date, error) {
	switch preset {
	case "last7days":
		return today.AddDays(-7), today, nil
	case "last30days":
		return today.AddDays(-30), today, nil
	case "last90days":
		return today.AddDays(-90), today, nil
	case "lastYear":
		return today.AddYears(-1), today, nil
	}
	return Date{}, Date{}, newValidationError("preset", preset, "expected last7days, last30days, last90days or lastYear")
}
