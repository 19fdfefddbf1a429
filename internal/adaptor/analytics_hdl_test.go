package adaptor

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"phi-inspection/internal/dto/request"
	"phi-inspection/internal/dto/response"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type stubAnalyticsService struct {
	daily    request.DailyCountsQuery
	highRisk request.HighRiskQuery
}

func (s *stubAnalyticsService) DailyCounts(_ context.Context, q request.DailyCountsQuery) (*response.DailyCountsResponse, error) {
	s.daily = q
	return &response.DailyCountsResponse{Month: q.Month, Year: q.Year, Counts: []int{}}, nil
}

func (s *stubAnalyticsService) Categories(context.Context) (*response.CategorySummaryResponse, error) {
	return &response.CategorySummaryResponse{}, nil
}

func (s *stubAnalyticsService) HighRisk(_ context.Context, q request.HighRiskQuery) (*response.HighRiskResponse, error) {
	s.highRisk = q
	return &response.HighRiskResponse{}, nil
}

func TestDailyCountsQueryParsing(t *testing.T) {
	svc := &stubAnalyticsService{}
	h := NewAnalyticsHandler(svc, zap.NewNop())

	rec := httptest.NewRecorder()
	h.DailyCounts(rec, httptest.NewRequest(http.MethodGet, "/api/inspections/analytics/daily?month=2&year=2024", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, request.DailyCountsQuery{Month: 2, Year: 2024}, svc.daily)

	rec = httptest.NewRecorder()
	h.DailyCounts(rec, httptest.NewRequest(http.MethodGet, "/api/inspections/analytics/daily", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	now := time.Now().UTC()
	assert.Equal(t, int(now.Month()), svc.daily.Month)
	assert.Equal(t, now.Year(), svc.daily.Year)

	rec = httptest.NewRecorder()
	h.DailyCounts(rec, httptest.NewRequest(http.MethodGet, "/api/inspections/analytics/daily?month=feb", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	h.DailyCounts(rec, httptest.NewRequest(http.MethodGet, "/api/inspections/analytics/daily?month=13", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHighRiskQueryParsing(t *testing.T) {
	svc := &stubAnalyticsService{}
	h := NewAnalyticsHandler(svc, zap.NewNop())

	rec := httptest.NewRecorder()
	h.HighRisk(rec, httptest.NewRequest(http.MethodGet, "/api/inspections/analytics/high-risk?search=kandy&priority=urgent&category=Bakery", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, request.HighRiskQuery{Search: "kandy", Priority: "urgent", Category: "Bakery"}, svc.highRisk)

	rec = httptest.NewRecorder()
	h.HighRisk(rec, httptest.NewRequest(http.MethodGet, "/api/inspections/analytics/high-risk?priority=someday", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
