// File: internal/service/authentication.go
package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"construction-erp/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AccessTokenTTL 存取令牌有效期限
const AccessTokenTTL = time.Hour

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrMissingSecret      = errors.New("JWT secret not set")
)

var (
	timeNow         = time.Now
	newTokenID      = uuid.NewString
	parseWithClaims = jwt.ParseWithClaims
)

// CustomClaims 定義 JWT 負載內容
type CustomClaims struct {
	ID    int    `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// AuthenticateUser 以 bcrypt 比對明文密碼，不符時回傳 ErrInvalidCredentials
func AuthenticateUser(_ context.Context, user model.User, password string) error {
	if user.PasswordHash == "" {
		return ErrInvalidCredentials
	}
	if err := ComparePassword(user.PasswordHash, password); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// Authenticator 持有簽章密鑰與有效期限，於啟動時建立一次後注入各 handler
type Authenticator struct {
	secret []byte
	ttl    time.Duration
}

// NewAuthenticator 建立 Authenticator；secret 不可為空，ttl <= 0 時使用 AccessTokenTTL
func NewAuthenticator(secret string, ttl time.Duration) (*Authenticator, error) {
	if secret == "" {
		return nil, ErrMissingSecret
	}
	if ttl <= 0 {
		ttl = AccessTokenTTL
	}
	return &Authenticator{secret: []byte(secret), ttl: ttl}, nil
}

// TTL 回傳令牌有效期限
func (a *Authenticator) TTL() time.Duration { return a.ttl }

// IssueAccessToken 依據使用者資訊產生 HS256 JWT，回傳令牌與到期時間
func (a *Authenticator) IssueAccessToken(user model.User) (string, time.Time, error) {
	now := timeNow()
	expiresAt := now.Add(a.ttl)
	claims := CustomClaims{
		ID:    user.ID,
		Email: user.Email,
		Role:  user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        newTokenID(),
			Subject:   strconv.Itoa(user.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(a.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("IssueAccessToken: %w", err)
	}
	return signed, expiresAt, nil
}

// VerifyAccessToken 驗證簽章與到期時間並解析 JWT
func (a *Authenticator) VerifyAccessToken(tokenString string) (*CustomClaims, error) {
	token, err := parseWithClaims(tokenString, &CustomClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return a.secret, nil
	},
		jwt.WithTimeFunc(timeNow),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}
