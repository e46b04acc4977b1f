// File: internal/handler/auth/logout.go
package auth

import (
	"net/http"

	"construction-erp/internal/api"
	"construction-erp/internal/cache"
	"construction-erp/internal/middleware"

	"github.com/labstack/echo/v4"
)

// LogoutHandler 撤銷目前的存取令牌
// @Summary     Logout
// @Description 將目前令牌的 jti 寫入撤銷清單，直到原本的到期時間
// @Tags        auth
// @Produce     json
// @Success     200 {object} api.MessageResponse
// @Failure     401 {string} string "Invalid JWT Token"
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /auth/logout [post]
func LogoutHandler(cch cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := middleware.ClaimsFromContext(c)
		if !ok {
			return c.String(http.StatusUnauthorized, middleware.InvalidTokenMessage)
		}
		if err := revokeToken(c.Request().Context(), cch, claims); err != nil {
			c.Logger().Errorf("logout: %v", err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: msgInternalError})
		}
		return c.JSON(http.StatusOK, api.MessageResponse{Message: msgLoggedOut})
	}
}
