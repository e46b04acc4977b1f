// File: internal/handler/risk/risk.go
package risk

import (
	"errors"
	"net/http"

	"construction-erp/internal/api"
	"construction-erp/internal/database"
	"construction-erp/internal/handler"
	"construction-erp/internal/service"
	"construction-erp/internal/store"
	"construction-erp/internal/worker"

	"github.com/labstack/echo/v4"
)

var (
	getProjectByID = store.GetProjectByID
	listProjects   = store.ListProjects
)

// ProjectRiskHandler 計算單一專案的預算風險
// @Summary     Project risk
// @Description 預算使用率超過進度 20 個百分點時加 50 分；預算 <= 0 直接視為 Critical
// @Tags        ai
// @Produce     json
// @Param       id  path     int true "Project ID"
// @Success     200 {object} api.ProjectRiskResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {string} string "Invalid JWT Token"
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /ai/project-risk/{id} [get]
func ProjectRiskHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := handler.ParseID(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}
		p, err := getProjectByID(c.Request().Context(), db, id)
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "Project not found"})
		}
		if err != nil {
			c.Logger().Errorf("project risk: %v", err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "internal server error"})
		}
		return c.JSON(http.StatusOK, api.NewProjectRiskResponse(service.EvaluateRisk(*p)))
	}
}

// PortfolioRiskHandler 以 worker pool 評估所有專案
// @Summary     Portfolio risk
// @Tags        ai
// @Produce     json
// @Success     200 {object} api.PortfolioRiskResponse
// @Failure     401 {string} string "Invalid JWT Token"
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /ai/project-risk [get]
func PortfolioRiskHandler(db database.DB, pool worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		list, err := listProjects(c.Request().Context(), db)
		if err != nil {
			c.Logger().Errorf("portfolio risk: %v", err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "internal server error"})
		}
		assessments := service.EvaluatePortfolio(pool, list)
		resp := api.PortfolioRiskResponse{Assessments: make([]api.ProjectRiskResponse, 0, len(assessments))}
		for _, a := range assessments {
			resp.Assessments = append(resp.Assessments, api.NewProjectRiskResponse(a))
		}
		return c.JSON(http.StatusOK, resp)
	}
}
