package request

type CreateShopRequest struct {
	Name          string  `json:"name" validate:"required,max=150"`
	Address       string  `json:"address" validate:"required,max=255"`
	OwnerName     string  `json:"ownerName" validate:"required,max=100"`
	LicenseNumber *string `json:"licenseNumber,omitempty" validate:"omitempty,max=50"`
	EmployeeCount int     `json:"employeeCount" validate:"gte=0"`
	District      *string `json:"district,omitempty" validate:"omitempty,max=100"`
	GNDivision    *string `json:"gnDivision,omitempty" validate:"omitempty,max=100"`
	Category      string  `json:"category,omitempty" validate:"omitempty,max=50"`
	Status        string  `json:"status,omitempty" validate:"omitempty,oneof=Active Inactive Pending"`
}

// UpdateShopRequest merges only the supplied fields.
type UpdateShopRequest struct {
	Name          *string `json:"name,omitempty" validate:"omitempty,max=150"`
	Address       *string `json:"address,omitempty" validate:"omitempty,max=255"`
	OwnerName     *string `json:"ownerName,omitempty" validate:"omitempty,max=100"`
	LicenseNumber *string `json:"licenseNumber,omitempty" validate:"omitempty,max=50"`
	EmployeeCount *int    `json:"employeeCount,omitempty" validate:"omitempty,gte=0"`
	District      *string `json:"district,omitempty" validate:"omitempty,max=100"`
	GNDivision    *string `json:"gnDivision,omitempty" validate:"omitempty,max=100"`
	Category      *string `json:"category,omitempty" validate:"omitempty,max=50"`
	Status        *string `json:"status,omitempty" validate:"omitempty,oneof=Active Inactive Pending"`
}
