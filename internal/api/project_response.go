// File: internal/api/project_response.go
package api

import (
	"time"

	"construction-erp/internal/model"
)

// swagger:model api.ProjectResponse
type ProjectResponse struct {
	ID        int       `json:"id" example:"1"`
	Name      string    `json:"name" example:"North Bridge"`
	Budget    float64   `json:"budget" example:"100000"`
	Spent     float64   `json:"spent" example:"42000"`
	Progress  float64   `json:"progress" example:"35"`
	Status    string    `json:"status" example:"in_progress"`
	CreatedAt time.Time `json:"created_at" example:"2025-05-01T15:04:05Z"`
}

// swagger:model api.ProjectEnvelope
type ProjectEnvelope struct {
	Project ProjectResponse `json:"project"`
}

// swagger:model api.ProjectListResponse
type ProjectListResponse struct {
	Projects []ProjectResponse `json:"projects"`
}

func NewProjectResponse(p model.Project) ProjectResponse {
	return ProjectResponse{
		ID:        p.ID,
		Name:      p.Name,
		Budget:    p.Budget,
		Spent:     p.Spent,
		Progress:  p.Progress,
		Status:    p.Status,
		CreatedAt: p.CreatedAt,
	}
}
