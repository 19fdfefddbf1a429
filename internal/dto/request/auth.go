package request

type RegisterRequest struct {
	Name     string  `json:"name" validate:"required,min=2,max=100"`
	PhiID    string  `json:"phiId" validate:"required,max=50"`
	NIC      string  `json:"nic" validate:"required,min=10,max=12"`
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required,min=6"`
	Phone    *string `json:"phone,omitempty" validate:"omitempty,min=9,max=15"`
	Address  *string `json:"address,omitempty" validate:"omitempty,max=255"`
	Role     string  `json:"role,omitempty" validate:"omitempty,oneof=phi admin"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
