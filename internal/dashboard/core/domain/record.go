package domain

import "strings"

type AgeGroup string

const (
	AgeGroupChild      AgeGroup = "0-14"
	AgeGroupYouth      AgeGroup = "15-24"
	AgeGroupAdult      AgeGroup = "25-44"
	AgeGroupMiddleAged AgeGroup = "45-64"
	AgeGroupSenior     AgeGroup = "65+"
)

// AgeGroups lists every age group in display order.
var AgeGroups = []AgeGroup{
	AgeGroupChild,
	AgeGroupYouth,
	AgeGroupAdult,
	AgeGroupMiddleAged,
	AgeGroupSenior,
}

func ParseAgeGroup(s string) (AgeGroup, error) {
	ag := AgeGroup(strings.TrimSpace(s))
	for _, known := range AgeGroups {
		if ag == known {
			return ag, nil
		}
	}
	return "", newValidationError("ageGroup", s, "unknown age group")
}

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

var Genders = []Gender{GenderMale, GenderFemale}

func ParseGender(s string) (Gender, error) {
	switch g := Gender(strings.ToLower(strings.TrimSpace(s))); g {
	case GenderMale, GenderFemale:
		return g, nil
	}
	return "", newValidationError("gender", s, "expected male or female")
}

// Record is one epidemiological observation for a day, region, disease and demographic cell.
type Record struct {
	Date       Date     `json:"date"`
	Region     string   `json:"region"`
	Disease    string   `json:"disease"`
	AgeGroup   AgeGroup `json:"ageGroup"`
	Gender     Gender   `json:"gender"`
	Cases      int64    `json:"cases"`
	Recoveries int64    `json:"recoveries"`
	Deaths     int64    `json:"deaths"`
	Active     int64    `json:"active"`
}

// ActiveFrom derives the active count that keeps a record consistent.
func ActiveFrom(cases, recoveries, deaths int64) int64 {
	return cases - recoveries - deaths
}

// Validate checks field domains and the count invariant
// recoveries + deaths <= cases, active = cases - recoveries - deaths.
func (r Record) Validate() error {
	if r.Date.IsZero() {
		return newValidationError("date", "", "required")
	}
	if strings.TrimSpace(r.Region) == "" {
		return newValidationError("region", r.Region, "required")
	}
	if strings.TrimSpace(r.Disease) == "" {
		return newValidationError("disease", r.Disease, "required")
	}
	if _, err := ParseAgeGroup(string(r.AgeGroup)); err != nil {
		return err
	}
	if _, err := ParseGender(string(r.Gender)); err != nil {
		return err
	}
	if r.Cases < 0 || r.Recoveries < 0 || r.Deaths < 0 || r.Active < 0 {
		return newValidationError("cases", "", "counts must be non-negative")
	}
	if r.Recoveries+r.Deaths > r.Cases {
		return newValidationError("recoveries", "", "recoveries + deaths exceed cases")
	}
	if r.Active != ActiveFrom(r.Cases, r.Recoveries, r.Deaths) {
		return newValidationError("active", "", "active must equal cases - recoveries - deaths")
	}
	return nil
}
