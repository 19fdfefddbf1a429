package usecase

import (
	"context"
	"errors"
	"strings"

	"phi-inspection/internal/analytics"
	"phi-inspection/internal/data/entity"
	"phi-inspection/internal/data/repository"
	"phi-inspection/internal/dto/request"
	"phi-inspection/internal/dto/response"
	"phi-inspection/pkg/apperror"
	"phi-inspection/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ShopService interface {
	Create(ctx context.Context, caller Caller, req *request.CreateShopRequest) (*response.ShopResponse, error)
	List(ctx context.Context, caller Caller) ([]response.ShopResponse, error)
	Get(ctx context.Context, caller Caller, id uuid.UUID) (*response.ShopResponse, error)
	Update(ctx context.Context, caller Caller, id uuid.UUID, req *request.UpdateShopRequest) (*response.ShopResponse, error)
	Delete(ctx context.Context, caller Caller, id uuid.UUID) error
	BackfillOwnership(ctx context.Context, caller Caller) (*response.BackfillResponse, error)
}

type shopService struct {
	shops repository.ShopRepository
	now   clock
	log   *zap.Logger
}

func NewShopService(shops repository.ShopRepository, log *zap.Logger) ShopService {
	return &shopService{
		shops: shops,
		now:   systemClock,
		log:   log.With(zap.String("service", "shop")),
	}
}

// normalizeLicense treats a blank license number as absent.
func normalizeLicense(license *string) *string {
	if license == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*license)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func (s *shopService) Create(ctx context.Context, caller Caller, req *request.CreateShopRequest) (*response.ShopResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create shop validation failed", zap.Any("errors", errs))
		return nil, validationError(errs)
	}

	license := normalizeLicense(req.LicenseNumber)
	if license != nil {
		existing, err := s.shops.FindByLicense(ctx, *license)
		if err != nil {
			return nil, serverError(err, "failed to check license number")
		}
		if existing != nil {
			return nil, apperror.Conflict("Shop with this license number already exists")
		}
	}

	category := strings.TrimSpace(req.Category)
	if category == "" {
		category = analytics.DefaultCategory
	}
	status := entity.ShopActive
	if req.Status != "" {
		status = entity.ShopStatus(req.Status)
	}

	now := s.now()
	owner := caller.ID
	shop := &entity.Shop{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:          strings.TrimSpace(req.Name),
		Address:       strings.TrimSpace(req.Address),
		OwnerName:     strings.TrimSpace(req.OwnerName),
		LicenseNumber: license,
		EmployeeCount: req.EmployeeCount,
		District:      req.District,
		GNDivision:    req.GNDivision,
		Category:      category,
		Status:        status,
		CreatedBy:     &owner,
	}

	if err := s.shops.Create(ctx, shop); err != nil {
		return nil, serverError(err, "failed to create shop")
	}

	s.log.Info("Shop created",
		zap.String("shop_id", shop.ID.String()),
		zap.String("user_id", caller.ID.String()))

	resp := response.ShopToResponse(shop)
	return &resp, nil
}

func (s *shopService) List(ctx context.Context, caller Caller) ([]response.ShopResponse, error) {
	shops, err := s.shops.FindByOwner(ctx, caller.ID)
	if err != nil {
		return nil, serverError(err, "failed to list shops")
	}
	return response.ShopsToResponse(shops), nil
}

// owned loads a shop and enforces that the caller owns it.
func (s *shopService) owned(ctx context.Context, caller Caller, id uuid.UUID) (*entity.Shop, error) {
	shop, err := s.shops.FindByID(ctx, id)
	if err != nil {
		return nil, serverError(err, "failed to load shop")
	}
	if shop == nil {
		return nil, apperror.NotFound("Shop not found")
	}
	if !shop.OwnedBy(caller.ID) {
		s.log.Warn("Shop access denied",
			zap.String("shop_id", id.String()),
			zap.String("user_id", caller.ID.String()))
		return nil, apperror.Forbidden("Not authorized to access this shop")
	}
	return shop, nil
}

func (s *shopService) Get(ctx context.Context, caller Caller, id uuid.UUID) (*response.ShopResponse, error) {
	shop, err := s.owned(ctx, caller, id)
	if err != nil {
		return nil, err
	}
	resp := response.ShopToResponse(shop)
	return &resp, nil
}

func (s *shopService) Update(ctx context.Context, caller Caller, id uuid.UUID, req *request.UpdateShopRequest) (*response.ShopResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, validationError(errs)
	}

	shop, err := s.owned(ctx, caller, id)
	if err != nil {
		return nil, err
	}

	if req.LicenseNumber != nil {
		license := normalizeLicense(req.LicenseNumber)
		if license != nil && (shop.LicenseNumber == nil || *shop.LicenseNumber != *license) {
			other, err := s.shops.FindByLicense(ctx, *license)
			if err != nil {
				return nil, serverError(err, "failed to check license number")
			}
			if other != nil && other.ID != shop.ID {
				return nil, apperror.Conflict("Another shop with this license number already exists")
			}
		}
		shop.LicenseNumber = license
	}

	if req.Name != nil {
		shop.Name = strings.TrimSpace(*req.Name)
	}
	if req.Address != nil {
		shop.Address = strings.TrimSpace(*req.Address)
	}
	if req.OwnerName != nil {
		shop.OwnerName = strings.TrimSpace(*req.OwnerName)
	}
	if req.EmployeeCount != nil {
		shop.EmployeeCount = *req.EmployeeCount
	}
	if req.District != nil {
		shop.District = req.District
	}
	if req.GNDivision != nil {
		shop.GNDivision = req.GNDivision
	}
	if req.Category != nil {
		shop.Category = strings.TrimSpace(*req.Category)
	}
	if req.Status != nil {
		shop.Status = entity.ShopStatus(*req.Status)
	}
	shop.Touch(s.now())

	if err := s.shops.Update(ctx, shop); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperror.NotFound("Shop not found")
		}
		return nil, serverError(err, "failed to update shop")
	}

	s.log.Info("Shop updated", zap.String("shop_id", shop.ID.String()))
	resp := response.ShopToResponse(shop)
	return &resp, nil
}

func (s *shopService) Delete(ctx context.Context, caller Caller, id uuid.UUID) error {
	if _, err := s.owned(ctx, caller, id); err != nil {
		return err
	}

	if err := s.shops.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperror.NotFound("Shop not found")
		}
		return serverError(err, "failed to delete shop")
	}
	return nil
}

// BackfillOwnership assigns every unowned shop to the caller, one record at a
// time. Shops claimed concurrently by someone else are skipped.
func (s *shopService) BackfillOwnership(ctx context.Context, caller Caller) (*response.BackfillResponse, error) {
	orphans, err := s.shops.FindUnowned(ctx)
	if err != nil {
		return nil, serverError(err, "failed to find unowned shops")
	}

	names := []string{}
	for _, shop := range orphans {
		err := s.shops.AssignOwner(ctx, shop.ID, caller.ID)
		if errors.Is(err, repository.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, serverError(err, "failed to assign shop owner")
		}
		names = append(names, shop.Name)
	}

	s.log.Info("Shop ownership back-filled",
		zap.String("user_id", caller.ID.String()),
		zap.Int("count", len(names)))

	return &response.BackfillResponse{Count: len(names), UpdatedShops: names}, nil
}
