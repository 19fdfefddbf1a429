package adaptor

import (
	"encoding/json"
	"io"
	"net/http"

	"phi-inspection/internal/usecase"
	"phi-inspection/pkg/apperror"
	"phi-inspection/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const maxBodyBytes = 5 << 20

type Handler struct {
	Auth       *AuthHandler
	User       *UserHandler
	Shop       *ShopHandler
	Inspection *InspectionHandler
	Analytics  *AnalyticsHandler
	Task       *TaskHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:       NewAuthHandler(service.Auth, log),
		User:       NewUserHandler(service.User, log),
		Shop:       NewShopHandler(service.Shop, log),
		Inspection: NewInspectionHandler(service.Inspection, log),
		Analytics:  NewAnalyticsHandler(service.Analytics, log),
		Task:       NewTaskHandler(service.Task, log),
	}
}

// decodeJSON reads a bounded JSON body into dst and answers 400 itself on failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return false
	}
	return true
}

// validate answers 400 with per-field messages when dst fails its tags.
func validate(w http.ResponseWriter, dst any) bool {
	if validationErrors := utils.ValidateStruct(dst); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return false
	}
	return true
}

// callerFrom builds the explicit caller identity from the auth context.
func callerFrom(w http.ResponseWriter, r *http.Request) (usecase.Caller, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return usecase.Caller{}, false
	}
	return usecase.Caller{ID: userID, Name: utils.GetUserNameFromContext(r.Context())}, true
}

func idParam(w http.ResponseWriter, r *http.Request, resource string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid "+resource+" ID", nil)
		return uuid.Nil, false
	}
	return id, true
}

// writeServiceError renders a service error. Client faults log at warn; anything
// else logs at error and reaches the client only as a generic message.
func writeServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	typed := apperror.As(err)
	if typed == nil {
		typed = apperror.Internal(err, "unexpected error")
	}

	if apperror.MetadataFor(typed.Code()).ClientFault {
		log.Warn(operation+" failed",
			zap.String("code", string(typed.Code())),
			zap.Error(err))
	} else {
		log.Error("Failed to "+operation,
			zap.String("operation", operation),
			zap.Error(err))
	}

	utils.ResponseError(w, typed)
}
