package usecase

import (
	"time"

	"phi-inspection/internal/data/repository"
	"phi-inspection/pkg/apperror"
	"phi-inspection/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Caller is the authenticated identity a request acts as. Handlers build it
// from the verified token and pass it into every scoped operation.
type Caller struct {
	ID   uuid.UUID
	Name string
}

type Service struct {
	Auth       AuthService
	User       UserService
	Shop       ShopService
	Inspection InspectionService
	Task       TaskService
	Analytics  AnalyticsService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:       NewAuthService(repo.User, config.JWT, log),
		User:       NewUserService(repo.User, log),
		Shop:       NewShopService(repo.Shop, log),
		Inspection: NewInspectionService(repo.Inspection, log),
		Task:       NewTaskService(repo.Task, log),
		Analytics:  NewAnalyticsService(repo.Inspection, repo.Shop, log),
	}
}

type clock func() time.Time

func systemClock() time.Time { return time.Now().UTC() }

func validationError(errs map[string]string) error {
	return apperror.BadRequest(utils.FormatValidationErrors(errs)).WithDetails(errs)
}

// serverError keeps typed errors raised below the service and wraps anything else.
func serverError(err error, message string) error {
	if typed := apperror.As(err); typed != nil {
		return typed
	}
	return apperror.Internal(err, message)
}
