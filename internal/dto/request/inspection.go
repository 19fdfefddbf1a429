package request

import "time"

type PhotoRequest struct {
	URL       string     `json:"url" validate:"required"`
	Caption   string     `json:"caption"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
}

type ChecklistItemRequest struct {
	Item      string `json:"item"`
	Compliant bool   `json:"compliant"`
	Remarks   string `json:"remarks"`
}

type CreateInspectionRequest struct {
	ShopName            string                 `json:"shopName" validate:"required,max=150"`
	ShopAddress         string                 `json:"shopAddress" validate:"max=255"`
	Category            *string                `json:"category,omitempty"`
	GNDivision          *string                `json:"gnDivision,omitempty"`
	InspectionType      string                 `json:"inspectionType,omitempty" validate:"omitempty,oneof=Routine Follow-up Complaint-based Special"`
	InspectionDate      *time.Time             `json:"inspectionDate,omitempty"`
	OverallRating       string                 `json:"overallRating"`
	Status              string                 `json:"status,omitempty" validate:"omitempty,oneof=Completed Pending Failed Passed"`
	Photos              []PhotoRequest         `json:"photos" validate:"dive"`
	Notes               string                 `json:"notes"`
	LocationEnvironment []ChecklistItemRequest `json:"locationEnvironment"`
	BuildingStructure   []ChecklistItemRequest `json:"buildingStructure"`
	FoodPreparationArea []ChecklistItemRequest `json:"foodPreparationArea"`
	HealthInstructions  []ChecklistItemRequest `json:"healthInstructions"`
}

// UpdateInspectionRequest merges only the supplied fields. A supplied list replaces the stored one.
type UpdateInspectionRequest struct {
	ShopName            *string                `json:"shopName,omitempty" validate:"omitempty,max=150"`
	ShopAddress         *string                `json:"shopAddress,omitempty" validate:"omitempty,max=255"`
	Category            *string                `json:"category,omitempty"`
	GNDivision          *string                `json:"gnDivision,omitempty"`
	InspectionType      *string                `json:"inspectionType,omitempty" validate:"omitempty,oneof=Routine Follow-up Complaint-based Special"`
	InspectionDate      *time.Time             `json:"inspectionDate,omitempty"`
	OverallRating       *string                `json:"overallRating,omitempty"`
	Status              *string                `json:"status,omitempty" validate:"omitempty,oneof=Completed Pending Failed Passed"`
	Photos              []PhotoRequest         `json:"photos,omitempty" validate:"omitempty,dive"`
	Notes               *string                `json:"notes,omitempty"`
	LocationEnvironment []ChecklistItemRequest `json:"locationEnvironment,omitempty"`
	BuildingStructure   []ChecklistItemRequest `json:"buildingStructure,omitempty"`
	FoodPreparationArea []ChecklistItemRequest `json:"foodPreparationArea,omitempty"`
	HealthInstructions  []ChecklistItemRequest `json:"healthInstructions,omitempty"`
}
