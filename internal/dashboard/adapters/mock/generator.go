package mock

import (
	"math"
	"math/rand/v2"
	"slices"

	"epidash-service/internal/dashboard/core/domain"
)

// Generator draws weighted random records. It is not safe for concurrent use.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator returns a generator whose output is fully determined by seed.
func NewGenerator(seed uint64) *Generator {
	return &Generator{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Generate returns exactly n records dated within [start, end]. Off-peak
// draws of seasonal diseases are mostly rejected and redrawn.
func (g *Generator) Generate(start, end domain.Date, n int) []domain.Record {
	if n <= 0 || end.Before(start) {
		return []domain.Record{}
	}
	span := int(end.Time().Sub(start.Time()).Hours()/24) + 1

	out := make([]domain.Record, 0, n)
	for len(out) < n {
		if r, ok := g.draw(start, span); ok {
			out = append(out, r)
		}
	}
	return out
}

func (g *Generator) draw(start domain.Date, span int) (domain.Record, bool) {
	date := start.AddDays(g.rng.IntN(span))
	region := Regions[g.rng.IntN(len(Regions))]

	disease := g.pickDisease()
	if keep, ok := regionDiseaseKeep[region.Code][disease.Name]; ok && g.percent() > keep {
		disease = g.pickDisease()
	}

	if disease.Seasonal() && !slices.Contains(disease.PeakMonths, int(date.Month())) && g.percent() > offPeakKeep {
		return domain.Record{}, false
	}

	gender := domain.Genders[g.rng.IntN(len(domain.Genders))]

	cases := int64(minCases + g.rng.IntN(maxCases-minCases+1))
	recoveries, deaths := outcomes(cases, disease)

	return domain.Record{
		Date:       date,
		Region:     region.Name,
		Disease:    disease.Name,
		AgeGroup:   domain.AgeGroups[g.weighted(ageWeights)],
		Gender:     gender,
		Cases:      cases,
		Recoveries: recoveries,
		Deaths:     deaths,
		Active:     domain.ActiveFrom(cases, recoveries, deaths),
	}, true
}

// outcomes applies the disease rates and trims recoveries when rounding
// pushes recoveries + deaths past cases.
func outcomes(cases int64, d Disease) (recoveries, deaths int64) {
	recoveries = int64(math.Round(float64(cases) * d.RecoveryRate / 100))
	deaths = int64(math.Round(float64(cases) * d.MortalityRate / 100))
	if overflow := recoveries + deaths - cases; overflow > 0 {
		recoveries = max(0, recoveries-overflow)
	}
	return recoveries, deaths
}

func (g *Generator) pickDisease() Disease {
	weights := make([]int, len(Diseases))
	for i, d := range Diseases {
		weights[i] = d.Weight
	}
	return Diseases[g.weighted(weights)]
}

// weighted returns an index with probability proportional to its weight.
func (g *Generator) weighted(weights []int) int {
	total := 0
	for _, w := range weights {
		total += w
	}
	n := g.rng.IntN(total) + 1
	sum := 0
	for i, w := range weights {
		sum += w
		if n <= sum {
			return i
		}
	}
	return len(weights) - 1
}

// percent is uniform over 1..100.
func (g *Generator) percent() int {
	return g.rng.IntN(100) + 1
}
