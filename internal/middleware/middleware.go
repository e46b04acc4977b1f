// File: internal/middleware/middleware.go
package middleware

import (
	"errors"
	"net/http"
	"strings"

	"construction-erp/internal/cache"
	"construction-erp/internal/service"

	"github.com/labstack/echo/v4"
)

const ContextUserKey = "user"

// InvalidTokenMessage 所有驗證失敗共用的純文字回應
const InvalidTokenMessage = "Invalid JWT Token"

var (
	errNoToken     = errors.New("no token")
	isTokenRevoked = service.IsTokenRevoked
)

// TokenVerifier 由 *service.Authenticator 實作
type TokenVerifier interface {
	VerifyAccessToken(tokenString string) (*service.CustomClaims, error)
}

// bearerToken 取出 "Bearer <token>" 中的 token；缺 header 與缺 token 一律視為無 token
func bearerToken(authHeader string) (string, error) {
	if authHeader == "" {
		return "", errNoToken
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", errNoToken
	}
	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", errNoToken
	}
	return token, nil
}

func extractClaims(c echo.Context, verifier TokenVerifier, revoked cache.Cache) (*service.CustomClaims, error) {
	tokenString, err := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
	if err != nil {
		return nil, err
	}
	claims, err := verifier.VerifyAccessToken(tokenString)
	if err != nil {
		return nil, err
	}
	isRevoked, err := isTokenRevoked(c.Request().Context(), revoked, claims.RegisteredClaims.ID)
	if err != nil {
		c.Logger().Errorf("revocation lookup failed: %v", err)
		return nil, err
	}
	if isRevoked {
		return nil, errors.New("token revoked")
	}
	return claims, nil
}

// RequireAuth 驗證 bearer token，失敗時回 401 純文字並中止後續 handler
func RequireAuth(verifier TokenVerifier, revoked cache.Cache) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := extractClaims(c, verifier, revoked)
			if err != nil {
				return c.String(http.StatusUnauthorized, InvalidTokenMessage)
			}
			c.Set(ContextUserKey, claims)
			return next(c)
		}
	}
}

// ClaimsFromContext 取回 RequireAuth 存入的 claims
func ClaimsFromContext(c echo.Context) (*service.CustomClaims, bool) {
	claims, ok := c.Get(ContextUserKey).(*service.CustomClaims)
	return claims, ok && claims != nil
}
