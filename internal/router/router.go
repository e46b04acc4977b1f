// File: internal/router/router.go
package router

import (
	"github.com/labstack/echo/v4"

	"construction-erp/internal/cache"
	"construction-erp/internal/database"
	"construction-erp/internal/handler"
	"construction-erp/internal/handler/auth"
	"construction-erp/internal/handler/projects"
	"construction-erp/internal/handler/risk"
	"construction-erp/internal/handler/users"
	"construction-erp/internal/middleware"
	"construction-erp/internal/service"
	"construction-erp/internal/worker"
)

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, db database.DB, cch cache.Cache, authn *service.Authenticator, pool worker.Pool) {
	requireAuth := middleware.RequireAuth(authn, cch)

	// 健康檢查（需登入）
	e.GET("/ping", handler.PingHandler(db, cch), requireAuth)

	// 註冊、登入、登出
	e.POST("/auth/register", auth.RegisterHandler(db))
	e.POST("/auth/login", auth.LoginHandler(db, authn))
	e.POST("/auth/logout", auth.LogoutHandler(cch), requireAuth)

	// Users CRUD；/users/me 須先於 /users/:id 註冊，Echo 會優先比對靜態路徑
	u := e.Group("/users", requireAuth)
	u.POST("", users.CreateUserHandler(db))
	u.GET("", users.ListUsersHandler(db))
	u.GET("/me", users.GetMyUserHandler(db))
	u.GET("/:id", users.GetUserHandler(db))
	u.PUT("/:id", users.UpdateUserHandler(db))
	u.DELETE("/:id", users.DeleteUserHandler(db))

	// Projects CRUD
	p := e.Group("/projects", requireAuth)
	p.POST("", projects.CreateProjectHandler(db))
	p.GET("", projects.ListProjectsHandler(db))
	p.GET("/:id", projects.GetProjectHandler(db))
	p.PUT("/:id", projects.UpdateProjectHandler(db))
	p.DELETE("/:id", projects.DeleteProjectHandler(db))

	// 風險評估
	a := e.Group("/ai", requireAuth)
	a.GET("/project-risk", risk.PortfolioRiskHandler(db, pool))
	a.GET("/project-risk/:id", risk.ProjectRiskHandler(db))
}
