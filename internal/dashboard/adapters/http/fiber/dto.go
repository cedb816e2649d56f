package fiber

import "epidash-service/internal/dashboard/core/domain"

type CriteriaResponse struct {
	StartDate string   `json:"startDate" example:"2023-01-01"`
	EndDate   string   `json:"endDate" example:"2023-12-31"`
	Disease   string   `json:"disease,omitempty"`
	Region    string   `json:"region,omitempty"`
	AgeGroups []string `json:"ageGroups"`
	Gender    string   `json:"gender,omitempty"`
	Period    string   `json:"period" example:"weekly"`
}

type BucketPageResponse struct {
	Items      []domain.AggregatedBucket `json:"items"`
	Page       int                       `json:"page"`
	PageSize   int                       `json:"pageSize"`
	TotalItems int                       `json:"totalItems"`
	TotalPages int                       `json:"totalPages"`
}

type DashboardResponse struct {
	Source          string               `json:"source" example:"mock"`
	Criteria        CriteriaResponse     `json:"criteria"`
	Metrics         domain.Metrics       `json:"metrics"`
	QuickStats      domain.QuickStats    `json:"quickStats"`
	Buckets         BucketPageResponse   `json:"buckets"`
	TopRegions      []domain.GroupTotal  `json:"topRegions"`
	AgeDistribution []domain.GroupTotal  `json:"ageDistribution"`
	TimeSeries      []domain.SeriesPoint `json:"timeSeries"`
	Choropleth      []domain.RegionShade `json:"choropleth"`
	GroupBy         string               `json:"groupBy,omitempty" example:"disease"`
	Breakdown       []domain.GroupTotal  `json:"breakdown,omitempty"`
	SourceErrors    map[string]string    `json:"sourceErrors,omitempty"`
}

type RecordsResponse struct {
	Source       string            `json:"source" example:"database"`
	Count        int               `json:"count"`
	Records      []domain.Record   `json:"records"`
	SourceErrors map[string]string `json:"sourceErrors,omitempty"`
}

type ConfigStatusResponse struct {
	DefaultDataSource    string   `json:"defaultDataSource" example:"mock"`
	AllowSourceSwitching bool     `json:"allowSourceSwitching"`
	AvailableSources     []string `json:"availableSources"`
	AppName              string   `json:"appName" example:"EpiDash"`
	Version              string   `json:"version" example:"1.0.0"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_query"`
	Message string `json:"message" example:"invalid startDate \"2023-13-01\": expected YYYY-MM-DD"`
}
