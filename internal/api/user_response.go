// File: internal/api/user_response.go
package api

import (
	"time"

	"construction-erp/internal/model"
)

// UserResponse 不含 password_hash
// swagger:model api.UserResponse
type UserResponse struct {
	ID        int       `json:"id" example:"1"`
	Name      string    `json:"name" example:"Alice"`
	Email     string    `json:"email" example:"alice@example.com"`
	Role      string    `json:"role" example:"site_manager"`
	CreatedAt time.Time `json:"created_at" example:"2025-05-01T15:04:05Z"`
}

// swagger:model api.UserEnvelope
type UserEnvelope struct {
	User UserResponse `json:"user"`
}

// swagger:model api.UserListResponse
type UserListResponse struct {
	Users []UserResponse `json:"users"`
}

func NewUserResponse(u model.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
