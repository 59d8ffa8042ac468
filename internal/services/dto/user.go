package dto

import (
	"time"

	"legalvault_backend/internal/models"
)

// CreateUserRequest registers a staff account. Only Admins reach this
// endpoint.
type CreateUserRequest struct {
	Email      string `json:"user_email" validate:"required,email"`
	Password   string `json:"user_password" validate:"required,min=8"`
	FirstName  string `json:"user_fname" validate:"required"`
	MiddleName string `json:"user_mname"`
	LastName   string `json:"user_lname" validate:"required"`
	Phone      string `json:"user_phone_number"`
	Role       string `json:"user_role" validate:"required,oneof=Admin Lawyer Staff Paralegal"`
	BranchID   *uint  `json:"branch_id"`
}

// UpdateUserRequest is a partial update: nil fields keep their stored
// values.
type UpdateUserRequest struct {
	Email        *string `json:"user_email" validate:"omitempty,email"`
	FirstName    *string `json:"user_fname"`
	MiddleName   *string `json:"user_mname"`
	LastName     *string `json:"user_lname"`
	Phone        *string `json:"user_phone_number"`
	Status       *string `json:"user_status" validate:"omitempty,oneof=Active Suspended"`
	BranchID     *uint   `json:"branch_id"`
	ProfileImage *string `json:"user_profile"`
}

// UpdateRoleRequest changes a user's role, subject to the role policy.
type UpdateRoleRequest struct {
	Role string `json:"user_role" validate:"required,oneof=Admin Lawyer Staff Paralegal"`
}

// ChangePasswordRequest lets a signed-in user rotate their password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
}

// UserResponse is the wire shape of a user; the password hash and OTP
// never leave the server.
type UserResponse struct {
	ID           uint      `json:"user_id"`
	Email        string    `json:"user_email"`
	FirstName    string    `json:"user_fname"`
	MiddleName   string    `json:"user_mname"`
	LastName     string    `json:"user_lname"`
	Phone        string    `json:"user_phone_number"`
	Role         string    `json:"user_role"`
	Status       string    `json:"user_status"`
	ProfileImage string    `json:"user_profile"`
	BranchID     *uint     `json:"branch_id"`
	BranchName   string    `json:"branch_name,omitempty"`
	IsVerified   bool      `json:"is_verified"`
	CreatedAt    time.Time `json:"user_date_created"`
}

// NewUserResponse maps a model row to its wire shape.
func NewUserResponse(u *models.User) *UserResponse {
	resp := &UserResponse{
		ID:           u.ID,
		Email:        u.Email,
		FirstName:    u.FirstName,
		MiddleName:   u.MiddleName,
		LastName:     u.LastName,
		Phone:        u.Phone,
		Role:         string(u.Role),
		Status:       string(u.Status),
		ProfileImage: u.ProfileImage,
		BranchID:     u.BranchID,
		IsVerified:   u.IsVerified,
		CreatedAt:    u.CreatedAt,
	}
	if u.Branch != nil {
		resp.BranchName = u.Branch.Name
	}
	return resp
}

// NewUserResponseList maps a slice of rows.
func NewUserResponseList(users []models.User) []*UserResponse {
	out := make([]*UserResponse, 0, len(users))
	for i := range users {
		out = append(out, NewUserResponse(&users[i]))
	}
	return out
}
