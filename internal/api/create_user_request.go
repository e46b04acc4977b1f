// File: internal/api/create_user_request.go
package api

// CreateUserRequest 管理用的新增使用者請求
// password_hash 必須是 bcrypt 哈希；也可改傳 password 由伺服器端哈希，兩者只能擇一
// bcrypt 只接受 72 bytes 以內的密碼
// swagger:model api.CreateUserRequest
type CreateUserRequest struct {
	Name         string `json:"name" validate:"required" example:"Bob"`
	Email        string `json:"email" validate:"required,email" example:"bob@example.com"`
	PasswordHash string `json:"password_hash" validate:"required_without=Password,excluded_with=Password" example:"$2a$10$..."`
	Password     string `json:"password,omitempty" validate:"required_without=PasswordHash,excluded_with=PasswordHash,max=72" example:"Secret123!"`
	Role         string `json:"role" example:"engineer"`
}
