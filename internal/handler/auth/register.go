// File: internal/handler/auth/register.go
package auth

import (
	"errors"
	"net/http"
	"strings"

	"construction-erp/internal/api"
	"construction-erp/internal/database"
	"construction-erp/internal/model"
	"construction-erp/internal/service"
	"construction-erp/internal/store"

	"github.com/labstack/echo/v4"
)

// RegisterHandler 註冊新使用者
// @Summary     Register a user
// @Description 以 bcrypt 哈希密碼後建立帳號；Email 重複時回傳 409 與 "Email already exists"
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body     api.RegisterRequest true "註冊資料"
// @Success     201  {object} api.CreatedResponse
// @Failure     400  {object} api.ErrorResponse
// @Failure     409  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Router      /auth/register [post]
func RegisterHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.RegisterRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		ctx := c.Request().Context()
		req.Email = strings.ToLower(strings.TrimSpace(req.Email))

		// 先查一次，插入時的唯一性衝突再由 store.ErrEmailExists 兜底
		_, err := getUserByEmail(ctx, db, req.Email)
		switch {
		case err == nil:
			return c.JSON(http.StatusConflict, api.ErrorResponse{Message: msgEmailExists})
		case !errors.Is(err, store.ErrNotFound):
			c.Logger().Errorf("register lookup: %v", err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: msgInternalError})
		}

		hash, err := hashPassword(req.Password)
		if errors.Is(err, service.ErrPasswordTooLong) {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: msgPasswordTooLong})
		}
		if err != nil {
			c.Logger().Errorf("register hash: %v", err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: msgInternalError})
		}

		user, err := createUser(ctx, db, &model.User{
			Name:         req.Name,
			Email:        req.Email,
			PasswordHash: hash,
			Role:         req.Role,
		})
		if errors.Is(err, store.ErrEmailExists) {
			return c.JSON(http.StatusConflict, api.ErrorResponse{Message: msgEmailExists})
		}
		if err != nil {
			c.Logger().Errorf("register insert: %v", err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: msgInternalError})
		}

		return c.JSON(http.StatusCreated, api.CreatedResponse{ID: user.ID, Message: msgRegistered})
	}
}
