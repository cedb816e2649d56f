package mock

type Region struct {
	Code string
	Name string
}

// Regions are the counties the generator spreads records across.
var Regions = []Region{
	{"NAI", "Nairobi"},
	{"MOM", "Mombasa"},
	{"KIS", "Kisumu"},
	{"NAK", "Nakuru"},
	{"UGK", "Eldoret"},
	{"MAC", "Machakos"},
	{"KIA", "Kiambu"},
	{"KAJ", "Kajiado"},
	{"KLF", "Kilifi"},
	{"NYE", "Nyeri"},
	{"KAK", "Kakamega"},
	{"BUN", "Bungoma"},
	{"MER", "Meru"},
	{"EMB", "Embu"},
	{"GAR", "Garissa"},
	{"KWL", "Kwale"},
	{"LAM", "Lamu"},
}

type Disease struct {
	Name string
	// Weight is the relative prevalence.
	Weight int
	// RecoveryRate and MortalityRate are percentages of cases.
	RecoveryRate  float64
	MortalityRate float64
	// PeakMonths is empty for non-seasonal diseases.
	PeakMonths []int
}

func (d Disease) Seasonal() bool { return len(d.PeakMonths) > 0 }

var Diseases = []Disease{
	{Name: "Malaria", Weight: 35, RecoveryRate: 97, MortalityRate: 0.3, PeakMonths: []int{4, 5, 6, 10, 11}},
	{Name: "Tuberculosis", Weight: 15, RecoveryRate: 85, MortalityRate: 8},
	{Name: "Cholera", Weight: 10, RecoveryRate: 99, MortalityRate: 0.2, PeakMonths: []int{3, 4, 5, 10, 11, 12}},
	{Name: "Dengue Fever", Weight: 5, RecoveryRate: 99.5, MortalityRate: 0.1, PeakMonths: []int{4, 5, 6, 10, 11}},
	{Name: "Typhoid", Weight: 20, RecoveryRate: 99, MortalityRate: 0.2},
	// chronic, nobody recovers
	{Name: "HIV/AIDS", Weight: 15, RecoveryRate: 0, MortalityRate: 5},
}

// ageWeights follows domain.AgeGroups order.
var ageWeights = []int{30, 25, 25, 15, 5}

// regionDiseaseKeep is the percent chance a region keeps a disease it is
// prone to before a second draw is made.
var regionDiseaseKeep = map[string]map[string]int{
	"MOM": {"Malaria": 45, "Dengue Fever": 15},
	"KWL": {"Malaria": 50, "Dengue Fever": 10},
	"KLF": {"Malaria": 50, "Dengue Fever": 10},
	"LAM": {"Malaria": 50, "Dengue Fever": 10},
	"NAI": {"Tuberculosis": 25, "HIV/AIDS": 20},
	"KIS": {"Tuberculosis": 20, "HIV/AIDS": 20},
	"NAK": {"Tuberculosis": 20, "HIV/AIDS": 18},
	"UGK": {"Tuberculosis": 20},
}

const (
	minCases = 5
	maxCases = 30
	// offPeakKeep is the percent chance a seasonal draw outside its peak months survives.
	offPeakKeep = 30
)
