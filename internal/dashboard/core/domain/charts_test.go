package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBreakdown_ByRegion(t *testing.T) {
	groups := Breakdown(sampleRecords(), DimensionRegion)
	require.Len(t, groups, 3)
	assert.Equal(t, GroupTotal{Key: "Nairobi", Records: 3, Cases: 27, Recoveries: 20, Deaths: 2, Active: 5}, groups[0])
	assert.Equal(t, "Mombasa", groups[1].Key)
	assert.Equal(t, "Kisumu", groups[2].Key)
}

func TestTopN(t *testing.T) {
	groups := []GroupTotal{{Key: "a", Cases: 1}, {Key: "b", Cases: 5}, {Key: "c", Cases: 5}, {Key: "d", Cases: 3}}
	top := TopN(groups, 3)
	assert.Equal(t, []string{"b", "c", "d"}, keys(top))
	assert.Equal(t, "a", groups[0].Key)
	assert.Len(t, TopN(groups, 0), 4)
}

func TestAgeDistribution_AlwaysAllGroups(t *testing.T) {
	dist := AgeDistribution([]Record{rec("2023-01-01", "Embu", "Typhoid", AgeGroupSenior, GenderMale, 4, 1, 0)})
	assert.Equal(t, []string{"0-14", "15-24", "25-44", "45-64", "65+"}, keys(dist))
	assert.Equal(t, int64(0), dist[0].Cases)
	assert.Equal(t, int64(4), dist[4].Cases)
}

func TestParseDimension(t *testing.T) {
	d, err := ParseDimension("age_group")
	require.NoError(t, err)
	assert.Equal(t, DimensionAgeGroup, d)

	_, err = ParseDimension("county")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestTimeSeries_ChronologicalPerDisease(t *testing.T) {
	records := []Record{
		rec("2023-02-03", "Embu", "Malaria", AgeGroupAdult, GenderMale, 4, 0, 0),
		rec("2023-01-20", "Embu", "Cholera", AgeGroupAdult, GenderMale, 2, 0, 0),
		rec("2023-01-05", "Meru", "Malaria", AgeGroupAdult, GenderMale, 3, 0, 0),
	}
	points, err := TimeSeries(records, PeriodMonthly)
	require.NoError(t, err)
	require.Len(t, points, 2)
	assert.Equal(t, "2023-01", points[0].PeriodKey)
	assert.Equal(t, "2023-01-05", points[0].Date.String())
	assert.Equal(t, map[string]int64{"Cholera": 2, "Malaria": 3}, points[0].ByDisease)
	assert.Equal(t, int64(5), points[0].Cases)
	assert.Equal(t, "2023-02", points[1].PeriodKey)

	_, err = TimeSeries(records, "hourly")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestChoropleth_ColourBins(t *testing.T) {
	assert.Equal(t, "#800026", ShadeFor(10001))
	assert.Equal(t, "#BD0026", ShadeFor(10000))
	assert.Equal(t, "#FED976", ShadeFor(11))
	assert.Equal(t, "#FFEDA0", ShadeFor(10))
	assert.Equal(t, "#FFEDA0", ShadeFor(0))

	shades := Choropleth(sampleRecords())
	require.Len(t, shades, 3)
	assert.Equal(t, RegionShade{Region: "Nairobi", Cases: 27, Color: "#FED976"}, shades[0])
}

func TestSearch(t *testing.T) {
	buckets, err := Aggregate(sampleRecords(), PeriodDaily)
	require.NoError(t, err)

	assert.Len(t, Search(buckets, ""), len(buckets))
	assert.Len(t, Search(buckets, "  NAIROBI "), 3)
	assert.Len(t, Search(buckets, "dengue"), 1)
	assert.Len(t, Search(buckets, "2023-02"), 2)
	assert.Empty(t, Search(buckets, "ebola"))
}

func TestPresetRange(t *testing.T) {
	today := MustParseDate("2024-03-01")

	start, end, err := PresetRange("last7days", today)
	require.NoError(t, err)
	assert.Equal(t, "2024-02-23", start.String())
	assert.Equal(t, today, end)

	start, _, err = PresetRange("lastYear", today)
	require.NoError(t, err)
	assert.Equal(t, "2023-03-01", start.String())

	_, _, err = PresetRange("lastDecade", today)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestParseDataSource(t *testing.T) {
	ds, err := ParseDataSource("Both")
	require.NoError(t, err)
	assert.Equal(t, DataSourceBoth, ds)

	_, err = ParseDataSource("csv")
	assert.ErrorIs(t, err, ErrValidation)
}

func keys(groups []GroupTotal) []string {
	out := make([]string, len(groups))
	for i, g := range groups {
		out[i] = g.Key
	}
	return out
}
