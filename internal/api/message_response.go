// File: internal/api/message_response.go
package api

// swagger:model api.MessageResponse
type MessageResponse struct {
	Message string `json:"message" example:"User updated"`
}

// CreatedResponse 新增資源成功後回傳的 id 與訊息
// swagger:model api.CreatedResponse
type CreatedResponse struct {
	ID      int    `json:"id" example:"1"`
	Message string `json:"message" example:"Project created"`
}
