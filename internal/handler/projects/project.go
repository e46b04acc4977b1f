// File: internal/handler/projects/project.go
package projects

import (
	"errors"
	"net/http"

	"construction-erp/internal/api"
	"construction-erp/internal/database"
	"construction-erp/internal/handler"
	"construction-erp/internal/model"
	"construction-erp/internal/store"

	"github.com/labstack/echo/v4"
)

const (
	msgProjectCreated  = "Project created"
	msgProjectUpdated  = "Project updated"
	msgProjectDeleted  = "Project deleted"
	msgProjectNotFound = "Project not found"
	msgInternalError   = "internal server error"
)

var (
	createProject  = store.CreateProject
	listProjects   = store.ListProjects
	getProjectByID = store.GetProjectByID
	updateProject  = store.UpdateProject
	deleteProject  = store.DeleteProject
)

func internalError(c echo.Context, op string, err error) error {
	c.Logger().Errorf("%s: %v", op, err)
	return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: msgInternalError})
}

func notFound(c echo.Context) error {
	return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: msgProjectNotFound})
}

// bindProject 綁定並驗證請求，失敗時已寫出 400
func bindProject(c echo.Context) (*model.Project, bool, error) {
	var req api.ProjectRequest
	if err := c.Bind(&req); err != nil {
		return nil, false, c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return nil, false, c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
	}
	p := &model.Project{Name: req.Name, Status: req.Status}
	if req.Budget != nil {
		p.Budget = *req.Budget
	}
	if req.Spent != nil {
		p.Spent = *req.Spent
	}
	if req.Progress != nil {
		p.Progress = *req.Progress
	}
	return p, true, nil
}

// CreateProjectHandler 新增專案
// @Summary     Create a project
// @Tags        projects
// @Accept      json
// @Produce     json
// @Param       body body     api.ProjectRequest true "專案資料"
// @Success     201  {object} api.CreatedResponse
// @Failure     400  {object} api.ErrorResponse
// @Failure     401  {string} string "Invalid JWT Token"
// @Failure     500  {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /projects [post]
func CreateProjectHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		p, ok, err := bindProject(c)
		if !ok {
			return err
		}
		created, err := createProject(c.Request().Context(), db, p)
		if err != nil {
			return internalError(c, "create project", err)
		}
		return c.JSON(http.StatusCreated, api.CreatedResponse{ID: created.ID, Message: msgProjectCreated})
	}
}

// ListProjectsHandler 列出所有專案
// @Summary     List projects
// @Tags        projects
// @Produce     json
// @Success     200 {object} api.ProjectListResponse
// @Failure     401 {string} string "Invalid JWT Token"
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /projects [get]
func ListProjectsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		list, err := listProjects(c.Request().Context(), db)
		if err != nil {
			return internalError(c, "list projects", err)
		}
		resp := api.ProjectListResponse{Projects: make([]api.ProjectResponse, 0, len(list))}
		for _, p := range list {
			resp.Projects = append(resp.Projects, api.NewProjectResponse(p))
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// GetProjectHandler 依 id 取得專案
// @Summary     Get a project
// @Tags        projects
// @Produce     json
// @Param       id  path     int true "Project ID"
// @Success     200 {object} api.ProjectEnvelope
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {string} string "Invalid JWT Token"
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /projects/{id} [get]
func GetProjectHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := handler.ParseID(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}
		p, err := getProjectByID(c.Request().Context(), db, id)
		if errors.Is(err, store.ErrNotFound) {
			return notFound(c)
		}
		if err != nil {
			return internalError(c, "get project", err)
		}
		return c.JSON(http.StatusOK, api.ProjectEnvelope{Project: api.NewProjectResponse(*p)})
	}
}

// UpdateProjectHandler 整筆覆寫專案
// @Summary     Update a project
// @Description 以請求內容整筆覆寫專案
// @Tags        projects
// @Accept      json
// @Produce     json
// @Param       id   path     int                true "Project ID"
// @Param       body body     api.ProjectRequest true "專案資料"
// @Success     200  {object} api.MessageResponse
// @Failure     400  {object} api.ErrorResponse
// @Failure     401  {string} string "Invalid JWT Token"
// @Failure     404  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /projects/{id} [put]
func UpdateProjectHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := handler.ParseID(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}
		p, ok, err := bindProject(c)
		if !ok {
			return err
		}
		p.ID = id

		err = updateProject(c.Request().Context(), db, p)
		if errors.Is(err, store.ErrNotFound) {
			return notFound(c)
		}
		if err != nil {
			return internalError(c, "update project", err)
		}
		return c.JSON(http.StatusOK, api.MessageResponse{Message: msgProjectUpdated})
	}
}

// DeleteProjectHandler 刪除專案
// @Summary     Delete a project
// @Tags        projects
// @Produce     json
// @Param       id  path     int true "Project ID"
// @Success     200 {object} api.MessageResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {string} string "Invalid JWT Token"
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /projects/{id} [delete]
func DeleteProjectHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := handler.ParseID(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}
		err = deleteProject(c.Request().Context(), db, id)
		if errors.Is(err, store.ErrNotFound) {
			return notFound(c)
		}
		if err != nil {
			return internalError(c, "delete project", err)
		}
		return c.JSON(http.StatusOK, api.MessageResponse{Message: msgProjectDeleted})
	}
}
