package adaptor

import (
	"net/http"

	"phi-inspection/internal/dto/request"
	"phi-inspection/internal/usecase"
	"phi-inspection/pkg/utils"

	"go.uber.org/zap"
)

type ShopHandler struct {
	service usecase.ShopService
	log     *zap.Logger
}

func NewShopHandler(service usecase.ShopService, log *zap.Logger) *ShopHandler {
	return &ShopHandler{
		service: service,
		log:     log,
	}
}

// CreateShop handles POST /api/shops
func (h *ShopHandler) CreateShop(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}

	var req request.CreateShopRequest
	if !decodeJSON(w, r, &req) || !validate(w, req) {
		return
	}

	shop, err := h.service.Create(r.Context(), caller, &req)
	if err != nil {
		writeServiceError(w, h.log, err, "create shop")
		return
	}

	utils.ResponseCreated(w, "Shop created successfully", shop)
}

// GetShops handles GET /api/shops
func (h *ShopHandler) GetShops(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}

	shops, err := h.service.List(r.Context(), caller)
	if err != nil {
		writeServiceError(w, h.log, err, "list shops")
		return
	}

	utils.ResponseSuccess(w, "Shops retrieved successfully", shops)
}

// GetShop handles GET /api/shops/{id}
func (h *ShopHandler) GetShop(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}
	id, ok := idParam(w, r, "shop")
	if !ok {
		return
	}

	shop, err := h.service.Get(r.Context(), caller, id)
	if err != nil {
		writeServiceError(w, h.log, err, "get shop")
		return
	}

	utils.ResponseSuccess(w, "Shop retrieved successfully", shop)
}

// UpdateShop handles PUT /api/shops/{id}
func (h *ShopHandler) UpdateShop(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}
	id, ok := idParam(w, r, "shop")
	if !ok {
		return
	}

	var req request.UpdateShopRequest
	if !decodeJSON(w, r, &req) || !validate(w, req) {
		return
	}

	shop, err := h.service.Update(r.Context(), caller, id, &req)
	if err != nil {
		writeServiceError(w, h.log, err, "update shop")
		return
	}

	utils.ResponseSuccess(w, "Shop updated successfully", shop)
}

// DeleteShop handles DELETE /api/shops/{id}
func (h *ShopHandler) DeleteShop(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}
	id, ok := idParam(w, r, "shop")
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), caller, id); err != nil {
		writeServiceError(w, h.log, err, "delete shop")
		return
	}

	utils.ResponseSuccess(w, "Shop deleted successfully", nil)
}

// UpdateOwnership handles POST /api/shops/update-ownership
func (h *ShopHandler) UpdateOwnership(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}

	result, err := h.service.BackfillOwnership(r.Context(), caller)
	if err != nil {
		writeServiceError(w, h.log, err, "update shop ownership")
		return
	}

	utils.ResponseSuccess(w, "Shop ownership updated", result)
}
