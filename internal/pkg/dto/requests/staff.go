package requests

type RegisterStaff struct {
	Username   string `json:"username" validate:"required"`
	Email      string `json:"email" validate:"omitempty,email"`
	Password   string `json:"password" validate:"required,min=8"`
	Role       string `json:"role" validate:"omitempty,staff_role"`
	FullName   string `json:"fullName" validate:"required"`
	EmployeeID string `json:"employeeId"`
}

type CreateStaff struct {
	Username   string `json:"username" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=8"`
	Role       string `json:"role" validate:"omitempty,staff_role"`
	FullName   string `json:"fullName" validate:"required"`
	EmployeeID string `json:"employeeId"`
	IsActive   *bool  `json:"isActive"`
}

// UpdateStaff merges over the stored account; nil pointers leave the stored
// value untouched. A non-empty password is re-hashed before persisting.
type UpdateStaff struct {
	Username   *string `json:"username"`
	Email      *string `json:"email" validate:"omitempty,email"`
	Password   *string `json:"password" validate:"omitempty,min=8"`
	Role       *string `json:"role" validate:"omitempty,staff_role"`
	FullName   *string `json:"fullName"`
	EmployeeID *string `json:"employeeId"`
	IsActive   *bool   `json:"isActive"`
}
