// File: internal/handler/auth/auth.go
package auth

import (
	"time"

	"construction-erp/internal/model"
	"construction-erp/internal/service"
	"construction-erp/internal/store"
)

const (
	msgRegistered    = "User registered successfully"
	msgEmailExists   = "Email already exists"
	msgInvalidLogin  = "Invalid email or password"
	msgDBError       = "DB error"
	msgLoggedOut     = "Logged out"
	msgInternalError = "internal server error"

	msgPasswordTooLong = "password must be at most 72 bytes"
)

// TokenIssuer 由 *service.Authenticator 實作
type TokenIssuer interface {
	IssueAccessToken(user model.User) (string, time.Time, error)
}

var (
	hashPassword     = service.HashPassword
	authenticateUser = service.AuthenticateUser
	revokeToken      = service.RevokeToken
	getUserByEmail   = store.GetUserByEmail
	createUser       = store.CreateUser
)
