// File: internal/api/risk_response.go
package api

import "construction-erp/internal/service"

// ProjectRiskResponse 欄位名稱沿用既有前端：projectId 為 camelCase，其餘為 snake_case
// swagger:model api.ProjectRiskResponse
type ProjectRiskResponse struct {
	ProjectID int     `json:"projectId" example:"1"`
	Budget    float64 `json:"budget" example:"100"`
	Spent     float64 `json:"spent" example:"80"`
	Progress  float64 `json:"progress" example:"50"`
	RiskScore int     `json:"risk_score" example:"50"`
	RiskLevel string  `json:"risk_level" example:"High"`
}

// swagger:model api.PortfolioRiskResponse
type PortfolioRiskResponse struct {
	Assessments []ProjectRiskResponse `json:"assessments"`
}

func NewProjectRiskResponse(a service.RiskAssessment) ProjectRiskResponse {
	return ProjectRiskResponse{
		ProjectID: a.ProjectID,
		Budget:    a.Budget,
		Spent:     a.Spent,
		Progress:  a.Progress,
		RiskScore: a.Score,
		RiskLevel: a.Level,
	}
}
