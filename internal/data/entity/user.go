package entity

type UserRole string

const (
	RolePHI   UserRole = "phi"
	RoleAdmin UserRole = "admin"
)

type User struct {
	Base
	Name         string   `db:"name"`
	PhiID        string   `db:"phi_id"`
	NIC          string   `db:"nic"`
	Email        string   `db:"email"`
	Phone        *string  `db:"phone"`
	Address      *string  `db:"address"`
	Role         UserRole `db:"role"`
	PasswordHash string   `db:"password"`
}
