package response

import (
	"time"

	"phi-inspection/internal/data/entity"
)

type InspectionResponse struct {
	ID                  string                  `json:"_id"`
	PublicID            string                  `json:"id"`
	ShopName            string                  `json:"shopName"`
	ShopAddress         string                  `json:"shopAddress"`
	Category            *string                 `json:"category,omitempty"`
	GNDivision          *string                 `json:"gnDivision,omitempty"`
	InspectorID         string                  `json:"inspectorId"`
	InspectorName       string                  `json:"inspectorName"`
	InspectionType      entity.InspectionType   `json:"inspectionType"`
	InspectionDate      time.Time               `json:"inspectionDate"`
	OverallRating       string                  `json:"overallRating"`
	Status              entity.InspectionStatus `json:"status"`
	Photos              []entity.Photo          `json:"photos"`
	Notes               string                  `json:"notes"`
	LocationEnvironment []entity.ChecklistItem  `json:"locationEnvironment"`
	BuildingStructure   []entity.ChecklistItem  `json:"buildingStructure"`
	FoodPreparationArea []entity.ChecklistItem  `json:"foodPreparationArea"`
	HealthInstructions  []entity.ChecklistItem  `json:"healthInstructions"`
	CreatedAt           time.Time               `json:"createdAt"`
	UpdatedAt           time.Time               `json:"updatedAt"`
}

func InspectionToResponse(in *entity.Inspection) InspectionResponse {
	return InspectionResponse{
		ID:                  in.ID.String(),
		PublicID:            in.PublicID,
		ShopName:            in.ShopName,
		ShopAddress:         in.ShopAddress,
		Category:            in.Category,
		GNDivision:          in.GNDivision,
		InspectorID:         in.InspectorID.String(),
		InspectorName:       in.InspectorName,
		InspectionType:      in.Type,
		InspectionDate:      in.InspectionDate,
		OverallRating:       in.OverallRating,
		Status:              in.Status,
		Photos:              nonNil(in.Photos),
		Notes:               in.Notes,
		LocationEnvironment: nonNil(in.LocationEnvironment),
		BuildingStructure:   nonNil(in.BuildingStructure),
		FoodPreparationArea: nonNil(in.FoodPreparationArea),
		HealthInstructions:  nonNil(in.HealthInstructions),
		CreatedAt:           in.CreatedAt,
		UpdatedAt:           in.UpdatedAt,
	}
}

func InspectionsToResponse(list []*entity.Inspection) []InspectionResponse {
	out := make([]InspectionResponse, 0, len(list))
	for _, in := range list {
		out = append(out, InspectionToResponse(in))
	}
	return out
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
