package domain

import (
	"slices"
	"strings"
)

type Dimension string

const (
	DimensionRegion   Dimension = "region"
	DimensionDisease  Dimension = "disease"
	DimensionAgeGroup Dimension = "ageGroup"
	DimensionGender   Dimension = "gender"
)

func ParseDimension(s string) (Dimension, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "region":
		return DimensionRegion, nil
	case "disease":
		return DimensionDisease, nil
	case "agegroup", "age_group":
		return DimensionAgeGroup, nil
	case "gender":
		return DimensionGender, nil
	}
	return "", newValidationError("dimension", s, "expected region, disease, ageGroup or gender")
}

func (d Dimension) valueOf(r Record) string {
	switch d {
	case DimensionRegion:
		return r.Region
	case DimensionDisease:
		return r.Disease
	case DimensionAgeGroup:
		return string(r.AgeGroup)
	case DimensionGender:
		return string(r.Gender)
	}
	return ""
}

// GroupTotal sums the counts of every record sharing one dimension value.
type GroupTotal struct {
	Key        string `json:"key"`
	Records    int    `json:"records"`
	Cases      int64  `json:"cases"`
	Recoveries int64  `json:"recoveries"`
	Deaths     int64  `json:"deaths"`
	Active     int64  `json:"active"`
}

func (g *GroupTotal) add(r Record) {
	g.Records++
	g.Cases += r.Cases
	g.Recoveries += r.Recoveries
	g.Deaths += r.Deaths
	g.Active += r.Active
}

// Breakdown groups records by dimension in first-encounter order.
func Breakdown(records []Record, d Dimension) []GroupTotal {
	groups := make([]GroupTotal, 0)
	index := make(map[string]int)
	for _, r := range records {
		k := d.valueOf(r)
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, GroupTotal{Key: k})
		}
		groups[i].add(r)
	}
	return groups
}

// TopN orders groups by cases, highest first, and keeps n of them.
// n <= 0 keeps all. Equal groups keep their relative order.
func TopN(groups []GroupTotal, n int) []GroupTotal {
	sorted := slices.Clone(groups)
	slices.SortStableFunc(sorted, func(a, b GroupTotal) int {
		switch {
		case a.Cases > b.Cases:
			return -1
		case a.Cases < b.Cases:
			return 1
		}
		return 0
	})
	if n > 0 && len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// AgeDistribution always reports every age group in display order.
func AgeDistribution(records []Record) []GroupTotal {
	groups := make([]GroupTotal, len(AgeGroups))
	index := make(map[AgeGroup]int, len(AgeGroups))
	for i, ag := range AgeGroups {
		groups[i].Key = string(ag)
		index[ag] = i
	}
	for _, r := range records {
		if i, ok := index[r.AgeGroup]; ok {
			groups[i].add(r)
		}
	}
	return groups
}

// RegionShade is one region of the choropleth map.
type RegionShade struct {
	Region string `json:"region"`
	Cases  int64  `json:"cases"`
	Color  string `json:"color"`
}

var shadeBins = []struct {
	above int64
	color string
}{
	{10000, "#800026"},
	{5000, "#BD0026"},
	{1000, "#E31A1C"},
	{500, "#FC4E2A"},
	{100, "#FD8D3C"},
	{50, "#FEB24C"},
	{10, "#FED976"},
}

const lowestShade = "#FFEDA0"

func ShadeFor(cases int64) string {
	for _, b := range shadeBins {
		if cases > b.above {
			return b.color
		}
	}
	return lowestShade
}

func Choropleth(records []Record) []RegionShade {
	groups := Breakdown(records, DimensionRegion)
	out := make([]RegionShade, len(groups))
	for i, g := range groups {
		out[i] = RegionShade{Region: g.Key, Cases: g.Cases, Color: ShadeFor(g.Cases)}
	}
	return out
}
