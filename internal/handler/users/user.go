// File: internal/handler/users/user.go
package users

import (
	"errors"
	"net/http"
	"strings"

	"construction-erp/internal/api"
	"construction-erp/internal/database"
	"construction-erp/internal/handler"
	"construction-erp/internal/middleware"
	"construction-erp/internal/model"
	"construction-erp/internal/service"
	"construction-erp/internal/store"

	"github.com/labstack/echo/v4"
)

const (
	msgUserCreated     = "User created"
	msgUserUpdated     = "User updated"
	msgUserDeleted     = "User deleted"
	msgUserNotFound    = "User not found"
	msgEmailExists     = "Email already exists"
	msgBadHash         = "password_hash must be a bcrypt hash"
	msgPasswordTooLong = "password must be at most 72 bytes"
	msgInternalError   = "internal server error"
)

var (
	hashPassword   = service.HashPassword
	isPasswordHash = service.IsPasswordHash
	createUser     = store.CreateUser
	listUsers      = store.ListUsers
	getUserByID    = store.GetUserByID
	updateUser     = store.UpdateUser
	deleteUser     = store.DeleteUser
)

func internalError(c echo.Context, op string, err error) error {
	c.Logger().Errorf("%s: %v", op, err)
	return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: msgInternalError})
}

func invalidID(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: handler.ErrInvalidID.Error()})
}

// CreateUserHandler 管理用新增使用者
// @Summary     Create a new user
// @Description 管理用新增帳號；password_hash 必須是 bcrypt 哈希，或改傳 password 由伺服器哈希
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       body body     api.CreateUserRequest true "使用者資料"
// @Success     201  {object} api.CreatedResponse
// @Failure     400  {object} api.ErrorResponse
// @Failure     401  {string} string "Invalid JWT Token"
// @Failure     409  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users [post]
func CreateUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateUserRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		hash := req.PasswordHash
		switch {
		case hash != "":
			if !isPasswordHash(hash) {
				return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: msgBadHash})
			}
		default:
			var err error
			hash, err = hashPassword(req.Password)
			if errors.Is(err, service.ErrPasswordTooLong) {
				return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: msgPasswordTooLong})
			}
			if err != nil {
				return internalError(c, "create user hash", err)
			}
		}

		user, err := createUser(c.Request().Context(), db, &model.User{
			Name:         req.Name,
			Email:        strings.ToLower(strings.TrimSpace(req.Email)),
			PasswordHash: hash,
			Role:         req.Role,
		})
		if errors.Is(err, store.ErrEmailExists) {
			return c.JSON(http.StatusConflict, api.ErrorResponse{Message: msgEmailExists})
		}
		if err != nil {
			return internalError(c, "create user", err)
		}
		return c.JSON(http.StatusCreated, api.CreatedResponse{ID: user.ID, Message: msgUserCreated})
	}
}

// ListUsersHandler 列出所有使用者
// @Summary     List users
// @Tags        users
// @Produce     json
// @Success     200 {object} api.UserListResponse
// @Failure     401 {string} string "Invalid JWT Token"
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users [get]
func ListUsersHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		list, err := listUsers(c.Request().Context(), db)
		if err != nil {
			return internalError(c, "list users", err)
		}
		resp := api.UserListResponse{Users: make([]api.UserResponse, 0, len(list))}
		for _, u := range list {
			resp.Users = append(resp.Users, api.NewUserResponse(u))
		}
		return c.JSON(http.StatusOK, resp)
	}
}

func writeUser(c echo.Context, db database.DB, id int) error {
	user, err := getUserByID(c.Request().Context(), db, id)
	if errors.Is(err, store.ErrNotFound) {
		return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: msgUserNotFound})
	}
	if err != nil {
		return internalError(c, "get user", err)
	}
	return c.JSON(http.StatusOK, api.UserEnvelope{User: api.NewUserResponse(*user)})
}

// GetUserHandler 依 id 取得使用者
// @Summary     Get a user
// @Tags        users
// @Produce     json
// @Param       id  path     int true "User ID"
// @Success     200 {object} api.UserEnvelope
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {string} string "Invalid JWT Token"
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users/{id} [get]
func GetUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := handler.ParseID(c)
		if err != nil {
			return invalidID(c)
		}
		return writeUser(c, db, id)
	}
}

// GetMyUserHandler 回傳 token 所代表的使用者
// @Summary     Get current user
// @Tags        users
// @Produce     json
// @Success     200 {object} api.UserEnvelope
// @Failure     401 {string} string "Invalid JWT Token"
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users/me [get]
func GetMyUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := middleware.ClaimsFromContext(c)
		if !ok {
			return c.String(http.StatusUnauthorized, middleware.InvalidTokenMessage)
		}
		return writeUser(c, db, claims.ID)
	}
}

// UpdateUserHandler 覆寫使用者資料
// @Summary     Update a user
// @Description 覆寫 name、email、role；不可修改密碼
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       id   path     int                   true "User ID"
// @Param       body body     api.UpdateUserRequest true "更新資料"
// @Success     200  {object} api.MessageResponse
// @Failure     400  {object} api.ErrorResponse
// @Failure     401  {string} string "Invalid JWT Token"
// @Failure     404  {object} api.ErrorResponse
// @Failure     409  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users/{id} [put]
func UpdateUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := handler.ParseID(c)
		if err != nil {
			return invalidID(c)
		}
		var req api.UpdateUserRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		err = updateUser(c.Request().Context(), db, &model.User{
			ID:    id,
			Name:  req.Name,
			Email: strings.ToLower(strings.TrimSpace(req.Email)),
			Role:  req.Role,
		})
		switch {
		case errors.Is(err, store.ErrNotFound):
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: msgUserNotFound})
		case errors.Is(err, store.ErrEmailExists):
			return c.JSON(http.StatusConflict, api.ErrorResponse{Message: msgEmailExists})
		case err != nil:
			return internalError(c, "update user", err)
		}
		return c.JSON(http.StatusOK, api.MessageResponse{Message: msgUserUpdated})
	}
}

// DeleteUserHandler 刪除使用者
// @Summary     Delete a user
// @Tags        users
// @Produce     json
// @Param       id  path     int true "User ID"
// @Success     200 {object} api.MessageResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {string} string "Invalid JWT Token"
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users/{id} [delete]
func DeleteUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := handler.ParseID(c)
		if err != nil {
			return invalidID(c)
		}
		err = deleteUser(c.Request().Context(), db, id)
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: msgUserNotFound})
		}
		if err != nil {
			return internalError(c, "delete user", err)
		}
		return c.JSON(http.StatusOK, api.MessageResponse{Message: msgUserDeleted})
	}
}
