package adaptor

import (
	"net/http"
	"strconv"
	"time"

	"phi-inspection/internal/dto/request"
	"phi-inspection/internal/usecase"
	"phi-inspection/pkg/utils"

	"go.uber.org/zap"
)

type AnalyticsHandler struct {
	service usecase.AnalyticsService
	log     *zap.Logger
}

func NewAnalyticsHandler(service usecase.AnalyticsService, log *zap.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		service: service,
		log:     log,
	}
}

// DailyCounts handles GET /api/inspections/analytics/daily?month=&year=
// Missing parameters default to the current UTC month.
func (h *AnalyticsHandler) DailyCounts(w http.ResponseWriter, r *http.Request) {
	now := time.Now().UTC()
	query := r.URL.Query()

	q := request.DailyCountsQuery{Month: int(now.Month()), Year: now.Year()}
	var ok bool
	if q.Month, ok = h.parseInt(w, query.Get("month"), q.Month, "month"); !ok {
		return
	}
	if q.Year, ok = h.parseInt(w, query.Get("year"), q.Year, "year"); !ok {
		return
	}
	if !validate(w, q) {
		return
	}

	resp, err := h.service.DailyCounts(r.Context(), q)
	if err != nil {
		writeServiceError(w, h.log, err, "daily inspection counts")
		return
	}

	utils.ResponseSuccess(w, "Daily inspection counts retrieved", resp)
}

// Categories handles GET /api/inspections/analytics/categories
func (h *AnalyticsHandler) Categories(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.Categories(r.Context())
	if err != nil {
		writeServiceError(w, h.log, err, "category summary")
		return
	}

	utils.ResponseSuccess(w, "Category summary retrieved", resp)
}

// HighRisk handles GET /api/inspections/analytics/high-risk?search=&priority=&category=
func (h *AnalyticsHandler) HighRisk(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	q := request.HighRiskQuery{
		Search:   query.Get("search"),
		Priority: query.Get("priority"),
		Category: query.Get("category"),
	}
	if !validate(w, q) {
		return
	}

	resp, err := h.service.HighRisk(r.Context(), q)
	if err != nil {
		writeServiceError(w, h.log, err, "high-risk inspections")
		return
	}

	utils.ResponseSuccess(w, "High-risk inspections retrieved", resp)
}

func (h *AnalyticsHandler) parseInt(w http.ResponseWriter, value string, defaultValue int, name string) (int, bool) {
	if value == "" {
		return defaultValue, true
	}
	result, err := strconv.Atoi(value)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid "+name, map[string]string{name: "Must be a number"})
		return 0, false
	}
	return result, true
}
