package entity

import (
	"time"

	"github.com/google/uuid"
)

type InspectionType string

const (
	InspectionRoutine   InspectionType = "Routine"
	InspectionFollowUp  InspectionType = "Follow-up"
	InspectionComplaint InspectionType = "Complaint-based"
	InspectionSpecial   InspectionType = "Special"
)

type InspectionStatus string

const (
	InspectionCompleted InspectionStatus = "Completed"
	InspectionPending   InspectionStatus = "Pending"
	InspectionFailed    InspectionStatus = "Failed"
	InspectionPassed    InspectionStatus = "Passed"
)

// Photo is stored inside the inspection's photos JSONB column.
type Photo struct {
	URL       string    `json:"url"`
	Caption   string    `json:"caption"`
	Timestamp time.Time `json:"timestamp"`
}

// ChecklistItem is one finding within a checklist section.
type ChecklistItem struct {
	Item      string `json:"item"`
	Compliant bool   `json:"compliant"`
	Remarks   string `json:"remarks"`
}

// Inspection is a single visit report. Shop name and address are copied at
// creation time and never follow later shop edits.
type Inspection struct {
	Base
	PublicID            string           `db:"public_id"`
	ShopName            string           `db:"shop_name"`
	ShopAddress         string           `db:"shop_address"`
	Category            *string          `db:"category"`
	GNDivision          *string          `db:"gn_division"`
	InspectorID         uuid.UUID        `db:"inspector_id"`
	InspectorName       string           `db:"inspector_name"`
	Type                InspectionType   `db:"inspection_type"`
	InspectionDate      time.Time        `db:"inspection_date"`
	OverallRating       string           `db:"overall_rating"`
	Status              InspectionStatus `db:"status"`
	Photos              []Photo          `db:"photos"`
	Notes               string           `db:"notes"`
	LocationEnvironment []ChecklistItem  `db:"location_environment"`
	BuildingStructure   []ChecklistItem  `db:"building_structure"`
	FoodPreparationArea []ChecklistItem  `db:"food_preparation_area"`
	HealthInstructions  []ChecklistItem  `db:"health_instructions"`
}
