package usecase

import (
	"context"
	"errors"
	"strings"

	"phi-inspection/internal/data/entity"
	"phi-inspection/internal/data/repository"
	"phi-inspection/internal/dto/request"
	"phi-inspection/internal/dto/response"
	"phi-inspection/pkg/apperror"
	"phi-inspection/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// InspectionService manages inspection reports. Reports are visible and
// editable by every authenticated officer; the caller is recorded for logging.
type InspectionService interface {
	Create(ctx context.Context, caller Caller, req *request.CreateInspectionRequest) (*response.InspectionResponse, error)
	List(ctx context.Context) ([]response.InspectionResponse, error)
	Get(ctx context.Context, publicID string) (*response.InspectionResponse, error)
	Update(ctx context.Context, caller Caller, id uuid.UUID, req *request.UpdateInspectionRequest) (*response.InspectionResponse, error)
	Delete(ctx context.Context, caller Caller, id uuid.UUID) error
}

type inspectionService struct {
	inspections repository.InspectionRepository
	now         clock
	log         *zap.Logger
}

func NewInspectionService(inspections repository.InspectionRepository, log *zap.Logger) InspectionService {
	return &inspectionService{
		inspections: inspections,
		now:         systemClock,
		log:         log.With(zap.String("service", "inspection")),
	}
}

func (s *inspectionService) photos(in []request.PhotoRequest) []entity.Photo {
	out := make([]entity.Photo, 0, len(in))
	for _, p := range in {
		photo := entity.Photo{URL: p.URL, Caption: p.Caption, Timestamp: s.now()}
		if p.Timestamp != nil {
			photo.Timestamp = *p.Timestamp
		}
		out = append(out, photo)
	}
	return out
}

func checklist(in []request.ChecklistItemRequest) []entity.ChecklistItem {
	out := make([]entity.ChecklistItem, 0, len(in))
	for _, item := range in {
		out = append(out, entity.ChecklistItem(item))
	}
	return out
}

func (s *inspectionService) Create(ctx context.Context, caller Caller, req *request.CreateInspectionRequest) (*response.InspectionResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create inspection validation failed", zap.Any("errors", errs))
		return nil, validationError(errs)
	}

	now := s.now()
	in := &entity.Inspection{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		PublicID:            utils.GenerateInspectionID(now),
		ShopName:            strings.TrimSpace(req.ShopName),
		ShopAddress:         strings.TrimSpace(req.ShopAddress),
		Category:            req.Category,
		GNDivision:          req.GNDivision,
		InspectorID:         caller.ID,
		InspectorName:       caller.Name,
		Type:                entity.InspectionRoutine,
		InspectionDate:      now,
		OverallRating:       strings.TrimSpace(req.OverallRating),
		Status:              entity.InspectionCompleted,
		Photos:              s.photos(req.Photos),
		Notes:               req.Notes,
		LocationEnvironment: checklist(req.LocationEnvironment),
		BuildingStructure:   checklist(req.BuildingStructure),
		FoodPreparationArea: checklist(req.FoodPreparationArea),
		HealthInstructions:  checklist(req.HealthInstructions),
	}
	if req.InspectionType != "" {
		in.Type = entity.InspectionType(req.InspectionType)
	}
	if req.Status != "" {
		in.Status = entity.InspectionStatus(req.Status)
	}
	if req.InspectionDate != nil {
		in.InspectionDate = req.InspectionDate.UTC()
	}

	if err := s.inspections.Create(ctx, in); err != nil {
		return nil, serverError(err, "failed to create inspection")
	}

	s.log.Info("Inspection created",
		zap.String("inspection_id", in.PublicID),
		zap.String("inspector_id", caller.ID.String()))

	resp := response.InspectionToResponse(in)
	return &resp, nil
}

func (s *inspectionService) List(ctx context.Context) ([]response.InspectionResponse, error) {
	list, err := s.inspections.FindAll(ctx)
	if err != nil {
		return nil, serverError(err, "failed to list inspections")
	}
	return response.InspectionsToResponse(list), nil
}

func (s *inspectionService) Get(ctx context.Context, publicID string) (*response.InspectionResponse, error) {
	in, err := s.inspections.FindByPublicID(ctx, publicID)
	if err != nil {
		return nil, serverError(err, "failed to load inspection")
	}
	if in == nil {
		return nil, apperror.NotFound("Inspection not found")
	}
	resp := response.InspectionToResponse(in)
	return &resp, nil
}

func (s *inspectionService) Update(ctx context.Context, caller Caller, id uuid.UUID, req *request.UpdateInspectionRequest) (*response.InspectionResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, validationError(errs)
	}

	in, err := s.inspections.FindByID(ctx, id)
	if err != nil {
		return nil, serverError(err, "failed to load inspection")
	}
	if in == nil {
		return nil, apperror.NotFound("Inspection not found")
	}

	if req.ShopName != nil {
		in.ShopName = strings.TrimSpace(*req.ShopName)
	}
	if req.ShopAddress != nil {
		in.ShopAddress = strings.TrimSpace(*req.ShopAddress)
	}
	if req.Category != nil {
		in.Category = req.Category
	}
	if req.GNDivision != nil {
		in.GNDivision = req.GNDivision
	}
	if req.InspectionType != nil {
		in.Type = entity.InspectionType(*req.InspectionType)
	}
	if req.InspectionDate != nil {
		in.InspectionDate = req.InspectionDate.UTC()
	}
	if req.OverallRating != nil {
		in.OverallRating = strings.TrimSpace(*req.OverallRating)
	}
	if req.Status != nil {
		in.Status = entity.InspectionStatus(*req.Status)
	}
	if req.Photos != nil {
		in.Photos = s.photos(req.Photos)
	}
	if req.Notes != nil {
		in.Notes = *req.Notes
	}
	if req.LocationEnvironment != nil {
		in.LocationEnvironment = checklist(req.LocationEnvironment)
	}
	if req.BuildingStructure != nil {
		in.BuildingStructure = checklist(req.BuildingStructure)
	}
	if req.FoodPreparationArea != nil {
		in.FoodPreparationArea = checklist(req.FoodPreparationArea)
	}
	if req.HealthInstructions != nil {
		in.HealthInstructions = checklist(req.HealthInstructions)
	}
	in.Touch(s.now())

	if err := s.inspections.Update(ctx, in); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperror.NotFound("Inspection not found")
		}
		return nil, serverError(err, "failed to update inspection")
	}

	s.log.Info("Inspection updated",
		zap.String("inspection_id", in.PublicID),
		zap.String("user_id", caller.ID.String()))

	resp := response.InspectionToResponse(in)
	return &resp, nil
}

func (s *inspectionService) Delete(ctx context.Context, caller Caller, id uuid.UUID) error {
	if err := s.inspections.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperror.NotFound("Inspection not found")
		}
		return serverError(err, "failed to delete inspection")
	}

	s.log.Info("Inspection deleted",
		zap.String("inspection_id", id.String()),
		zap.String("user_id", caller.ID.String()))
	return nil
}
