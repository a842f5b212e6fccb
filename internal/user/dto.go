package user

import (
	"github.com/frahmantamala/inventory-tracker/internal"
	"github.com/frahmantamala/inventory-tracker/internal/auth"
)

// CreateUserDTO carries the user-management form fields.
type CreateUserDTO struct {
	Username string
	Password string
	Role     string
}

// Validate checks required fields and the closed role set. An empty role
// falls back to staff, matching the column default.
func (d *CreateUserDTO) Validate() error {
	if d.Username == "" {
		return internal.NewValidationError("username is required", internal.ErrCodeMissingField)
	}
	if d.Password == "" {
		return internal.NewValidationError("password is required", internal.ErrCodeMissingField)
	}
	if d.Role == "" {
		d.Role = string(auth.RoleStaff)
	}
	if !auth.Role(d.Role).Valid() {
		return internal.NewValidationError("role must be admin or staff", internal.ErrCodeInvalidRole)
	}
	return nil
}

type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type UsersResponse struct {
	Users []UserResponse `json:"users"`
	Flash string         `json:"flash,omitempty"`
}
