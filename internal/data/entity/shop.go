package entity

import "github.com/google/uuid"

type ShopStatus string

const (
	ShopActive   ShopStatus = "Active"
	ShopInactive ShopStatus = "Inactive"
	ShopPending  ShopStatus = "Pending"
)

// Shop is a food business under inspection. A nil CreatedBy marks a legacy
// record that no officer owns yet.
type Shop struct {
	Base
	Name          string     `db:"name"`
	Address       string     `db:"address"`
	OwnerName     string     `db:"owner_name"`
	LicenseNumber *string    `db:"license_number"`
	EmployeeCount int        `db:"employee_count"`
	District      *string    `db:"district"`
	GNDivision    *string    `db:"gn_division"`
	Category      string     `db:"category"`
	Status        ShopStatus `db:"status"`
	CreatedBy     *uuid.UUID `db:"created_by"`
}

// OwnedBy reports whether userID owns the shop. Unowned shops belong to nobody.
func (s *Shop) OwnedBy(userID uuid.UUID) bool {
	return s.CreatedBy != nil && *s.CreatedBy == userID
}

// ShopDirectoryEntry is the slice of a shop the aggregation view needs.
type ShopDirectoryEntry struct {
	Name      string `db:"name"`
	OwnerName string `db:"owner_name"`
	Category  string `db:"category"`
}
