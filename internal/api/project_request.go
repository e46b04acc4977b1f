// File: internal/api/project_request.go
package api

// ProjectRequest 新增與更新專案共用；數值欄位用指標以區分 0 與未填
// swagger:model api.ProjectRequest
type ProjectRequest struct {
	Name     string   `json:"name" validate:"required" example:"North Bridge"`
	Budget   *float64 `json:"budget" validate:"required,gte=0" example:"100000"`
	Spent    *float64 `json:"spent" validate:"required,gte=0" example:"42000"`
	Progress *float64 `json:"progress" validate:"required,gte=0,lte=100" example:"35"`
	Status   string   `json:"status" validate:"required" example:"in_progress"`
}
