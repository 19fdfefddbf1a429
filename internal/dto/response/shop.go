package response

import (
	"time"

	"phi-inspection/internal/data/entity"
)

type ShopResponse struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	Address       string            `json:"address"`
	OwnerName     string            `json:"ownerName"`
	LicenseNumber *string           `json:"licenseNumber,omitempty"`
	EmployeeCount int               `json:"employeeCount"`
	District      *string           `json:"district,omitempty"`
	GNDivision    *string           `json:"gnDivision,omitempty"`
	Category      string            `json:"category"`
	Status        entity.ShopStatus `json:"status"`
	CreatedBy     *string           `json:"createdBy"`
	CreatedAt     time.Time         `json:"createdAt"`
	UpdatedAt     time.Time         `json:"updatedAt"`
}

type BackfillResponse struct {
	Count        int      `json:"count"`
	UpdatedShops []string `json:"updatedShops"`
}

func ShopToResponse(shop *entity.Shop) ShopResponse {
	resp := ShopResponse{
		ID:            shop.ID.String(),
		Name:          shop.Name,
		Address:       shop.Address,
		OwnerName:     shop.OwnerName,
		LicenseNumber: shop.LicenseNumber,
		EmployeeCount: shop.EmployeeCount,
		District:      shop.District,
		GNDivision:    shop.GNDivision,
		Category:      shop.Category,
		Status:        shop.Status,
		CreatedAt:     shop.CreatedAt,
		UpdatedAt:     shop.UpdatedAt,
	}
	if shop.CreatedBy != nil {
		owner := shop.CreatedBy.String()
		resp.CreatedBy = &owner
	}
	return resp
}

func ShopsToResponse(shops []*entity.Shop) []ShopResponse {
	out := make([]ShopResponse, 0, len(shops))
	for _, s := range shops {
		out = append(out, ShopToResponse(s))
	}
	return out
}
