package usecase

import (
	"context"
	"time"

	"phi-inspection/internal/analytics"
	"phi-inspection/internal/data/entity"
	"phi-inspection/internal/data/repository"
	"phi-inspection/internal/dto/request"
	"phi-inspection/internal/dto/response"
	"phi-inspection/pkg/utils"

	"go.uber.org/zap"
)

// AnalyticsService recomputes dashboard summaries from the full inspection
// list on every call.
type AnalyticsService interface {
	DailyCounts(ctx context.Context, q request.DailyCountsQuery) (*response.DailyCountsResponse, error)
	Categories(ctx context.Context) (*response.CategorySummaryResponse, error)
	HighRisk(ctx context.Context, q request.HighRiskQuery) (*response.HighRiskResponse, error)
}

type analyticsService struct {
	inspections repository.InspectionRepository
	shops       repository.ShopRepository
	log         *zap.Logger
}

func NewAnalyticsService(inspections repository.InspectionRepository, shops repository.ShopRepository, log *zap.Logger) AnalyticsService {
	return &analyticsService{
		inspections: inspections,
		shops:       shops,
		log:         log.With(zap.String("service", "analytics")),
	}
}

func (s *analyticsService) load(ctx context.Context, withDirectory bool) ([]*entity.Inspection, analytics.Directory, error) {
	list, err := s.inspections.FindAll(ctx)
	if err != nil {
		return nil, analytics.Directory{}, serverError(err, "failed to load inspections")
	}
	if !withDirectory {
		return list, analytics.Directory{}, nil
	}

	entries, err := s.shops.Directory(ctx)
	if err != nil {
		return nil, analytics.Directory{}, serverError(err, "failed to load shop directory")
	}
	return list, analytics.NewDirectory(entries), nil
}

func (s *analyticsService) DailyCounts(ctx context.Context, q request.DailyCountsQuery) (*response.DailyCountsResponse, error) {
	if errs := utils.ValidateStruct(q); len(errs) > 0 {
		return nil, validationError(errs)
	}

	list, _, err := s.load(ctx, false)
	if err != nil {
		return nil, err
	}

	return &response.DailyCountsResponse{
		Month:  q.Month,
		Year:   q.Year,
		Counts: analytics.DailyCounts(list, time.Month(q.Month), q.Year),
	}, nil
}

func (s *analyticsService) Categories(ctx context.Context) (*response.CategorySummaryResponse, error) {
	list, dir, err := s.load(ctx, true)
	if err != nil {
		return nil, err
	}
	return &response.CategorySummaryResponse{Categories: analytics.CategorySummary(list, dir)}, nil
}

func (s *analyticsService) HighRisk(ctx context.Context, q request.HighRiskQuery) (*response.HighRiskResponse, error) {
	if errs := utils.ValidateStruct(q); len(errs) > 0 {
		return nil, validationError(errs)
	}

	list, dir, err := s.load(ctx, true)
	if err != nil {
		return nil, err
	}

	entries := analytics.HighRisk(list, dir, analytics.HighRiskFilter{
		Search:   q.Search,
		Priority: q.Priority,
		Category: q.Category,
	})
	return &response.HighRiskResponse{Count: len(entries), Inspections: entries}, nil
}
