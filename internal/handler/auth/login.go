// File: internal/handler/auth/login.go
package auth

import (
	"errors"
	"net/http"
	"strings"

	"construction-erp/internal/api"
	"construction-erp/internal/database"
	"construction-erp/internal/store"

	"github.com/labstack/echo/v4"
)

// LoginHandler 使用 Email/Password 驗證並回傳 JWT
// @Summary     登入使用者
// @Description Email 不存在與密碼錯誤回傳相同的 400 回應，避免帳號枚舉；令牌一小時後到期
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body     api.LoginRequest true "登入資料"
// @Success     200  {object} api.LoginResponse
// @Failure     400  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Router      /auth/login [post]
func LoginHandler(db database.DB, issuer TokenIssuer) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		user, err := getUserByEmail(c.Request().Context(), db, strings.ToLower(strings.TrimSpace(req.Email)))
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: msgInvalidLogin})
		}
		if err != nil {
			c.Logger().Errorf("login lookup: %v", err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: msgDBError})
		}

		if err := authenticateUser(c.Request().Context(), *user, req.Password); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: msgInvalidLogin})
		}

		token, _, err := issuer.IssueAccessToken(*user)
		if err != nil {
			c.Logger().Errorf("login issue token: %v", err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: msgInternalError})
		}

		return c.JSON(http.StatusOK, api.LoginResponse{Token: token})
	}
}
