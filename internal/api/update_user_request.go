// File: internal/api/update_user_request.go
package api

// swagger:model api.UpdateUserRequest
type UpdateUserRequest struct {
	Name  string `json:"name" validate:"required" example:"Alice"`
	Email string `json:"email" validate:"required,email" example:"alice@example.com"`
	Role  string `json:"role" example:"site_manager"`
}
