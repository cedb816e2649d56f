package fiber

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"epidash-service/internal/dashboard/core/domain"
	"epidash-service/internal/dashboard/core/usecase"
)

type GetDashboardUseCase interface {
	Execute(ctx context.Context, in usecase.GetDashboardInput) (*usecase.DashboardResult, error)
}

type ListRecordsUseCase interface {
	Execute(ctx context.Context, in usecase.ListRecordsInput) (*usecase.ListRecordsResult, error)
}

// AppInfo is reported by the config-status endpoint.
type AppInfo struct {
	Name    string
	Version string
}

type DashboardHandler struct {
	dashboardUC GetDashboardUseCase
	listUC      ListRecordsUseCase
	policy      usecase.SourcePolicy
	info        AppInfo
}

func NewDashboardHandler(dashboardUC GetDashboardUseCase, listUC ListRecordsUseCase, policy usecase.SourcePolicy, info AppInfo) *DashboardHandler {
	return &DashboardHandler{dashboardUC: dashboardUC, listUC: listUC, policy: policy, info: info}
}

func (h *DashboardHandler) Register(r fiber.Router) {
	r.Get("/dashboard", h.GetDashboard)
	r.Get("/data", h.GetData)
	r.Get("/config-status", h.GetConfigStatus)
}

// GetDashboard godoc
// @Summary Filtered dashboard view
// @Description Filters records, groups them by period and returns metrics, quick stats, a page of buckets and chart series
// @Tags Dashboard
// @Produce json
// @Param start_date query string false "Start date (YYYY-MM-DD)"
// @Param end_date query string false "End date (YYYY-MM-DD)"
// @Param preset query string false "last7days | last30days | last90days | lastYear"
// @Param disease query string false "Disease or all"
// @Param region query string false "Region or all"
// @Param age_groups query string false "Comma separated age groups; empty selects none"
// @Param gender query string false "male | female | all"
// @Param period query string false "daily | weekly | monthly | quarterly | yearly"
// @Param source query string false "mock | database | both"
// @Param search query string false "Search in region, disease or period"
// @Param group_by query string false "Breakdown dimension: region | disease | age_group | gender"
// @Param page query int false "Page, 1-based"
// @Param page_size query int false "Page size"
// @Success 200 {object} DashboardResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /dashboard [get]
func (h *DashboardHandler) GetDashboard(c *fiber.Ctx) error {
	page, err := intQuery(c, "page")
	if err != nil {
		return badQuery(c, err)
	}
	pageSize, err := intQuery(c, "page_size")
	if err != nil {
		return badQuery(c, err)
	}

	in := usecase.GetDashboardInput{
		StartDate: c.Query("start_date", ""),
		EndDate:   c.Query("end_date", ""),
		Preset:    c.Query("preset", ""),
		Disease:   c.Query("disease", ""),
		Region:    c.Query("region", ""),
		AgeGroups: listQuery(c, "age_groups"),
		Gender:    c.Query("gender", ""),
		Period:    c.Query("period", ""),
		Source:    c.Query("source", ""),
		Search:    c.Query("search", ""),
		GroupBy:   c.Query("group_by", ""),
		Page:      page,
		PageSize:  pageSize,
	}

	res, err := h.dashboardUC.Execute(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}

	groups := make([]string, len(res.Criteria.AgeGroups))
	for i, ag := range res.Criteria.AgeGroups {
		groups[i] = string(ag)
	}

	resp := DashboardResponse{
		Source: string(res.Source),
		Criteria: CriteriaResponse{
			StartDate: res.Criteria.StartDate.String(),
			EndDate:   res.Criteria.EndDate.String(),
			Disease:   res.Criteria.Disease,
			Region:    res.Criteria.Region,
			AgeGroups: groups,
			Gender:    string(res.Criteria.Gender),
			Period:    string(res.Criteria.Period),
		},
		Metrics:    res.Metrics,
		QuickStats: res.QuickStats,
		Buckets: BucketPageResponse{
			Items:      res.Buckets.Items,
			Page:       res.Buckets.Page,
			PageSize:   res.Buckets.PageSize,
			TotalItems: res.Buckets.TotalItems,
			TotalPages: res.Buckets.TotalPages,
		},
		TopRegions:      res.TopRegions,
		AgeDistribution: res.AgeDistribution,
		TimeSeries:      res.TimeSeries,
		Choropleth:      res.Choropleth,
		GroupBy:         string(res.GroupBy),
		Breakdown:       res.Breakdown,
		SourceErrors:    res.SourceErrors,
	}

	return c.Status(http.StatusOK).JSON(resp)
}

// GetData godoc
// @Summary Raw records
// @Description Returns unaggregated records from the selected source
// @Tags Dashboard
// @Produce json
// @Param start_date query string false "Start date (YYYY-MM-DD)"
// @Param end_date query string false "End date (YYYY-MM-DD)"
// @Param disease query string false "Disease or all"
// @Param region query string false "Region or all"
// @Param source query string false "mock | database | both"
// @Success 200 {object} RecordsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /data [get]
func (h *DashboardHandler) GetData(c *fiber.Ctx) error {
	in := usecase.ListRecordsInput{
		StartDate: c.Query("start_date", ""),
		EndDate:   c.Query("end_date", ""),
		Disease:   c.Query("disease", ""),
		Region:    c.Query("region", ""),
		Source:    c.Query("source", ""),
	}

	res, err := h.listUC.Execute(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(RecordsResponse{
		Source:       string(res.Source),
		Count:        len(res.Records),
		Records:      res.Records,
		SourceErrors: res.SourceErrors,
	})
}

// GetConfigStatus godoc
// @Summary Data source configuration
// @Tags Dashboard
// @Produce json
// @Success 200 {object} ConfigStatusResponse
// @Router /config-status [get]
func (h *DashboardHandler) GetConfigStatus(c *fiber.Ctx) error {
	available := h.policy.Available()
	sources := make([]string, len(available))
	for i, s := range available {
		sources[i] = string(s)
	}

	return c.Status(http.StatusOK).JSON(ConfigStatusResponse{
		DefaultDataSource:    string(h.policy.Default),
		AllowSourceSwitching: h.policy.AllowSwitching,
		AvailableSources:     sources,
		AppName:              h.info.Name,
		Version:              h.info.Version,
	})
}

func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return badQuery(c, err)
	case errors.Is(err, usecase.ErrSourceUnavailable):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "source_unavailable",
			Message: err.Error(),
		})
	default:
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}
}

func badQuery(c *fiber.Ctx, err error) error {
	return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
		Error:   "invalid_query",
		Message: err.Error(),
	})
}

// intQuery returns 0 when the parameter is absent.
func intQuery(c *fiber.Ctx, key string) (int, error) {
	raw := c.Query(key, "")
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &domain.ValidationError{Field: key, Value: raw, Reason: "expected an integer"}
	}
	return n, nil
}

// listQuery splits a comma separated parameter. An absent parameter yields
// nil, a present but empty one yields an empty slice.
func listQuery(c *fiber.Ctx, key string) []string {
	if !c.Context().QueryArgs().Has(key) {
		return nil
	}
	out := []string{}
	for _, part := range strings.Split(c.Query(key, ""), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
