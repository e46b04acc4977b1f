// File: internal/service/revocation.go
package service

import (
	"context"
	"errors"
	"fmt"

	"construction-erp/internal/cache"

	"github.com/redis/go-redis/v9"
)

const revokedKeyPrefix = "revoked:"

func revokedKey(jti string) string { return revokedKeyPrefix + jti }

// RevokeToken 將令牌 jti 寫入快取，TTL 為令牌剩餘有效時間
// 已過期的令牌不需寫入
func RevokeToken(ctx context.Context, c cache.Cache, claims *CustomClaims) error {
	if claims == nil || claims.RegisteredClaims.ID == "" {
		return errors.New("RevokeToken: token has no id")
	}
	if claims.ExpiresAt == nil {
		return errors.New("RevokeToken: token has no expiry")
	}
	ttl := claims.ExpiresAt.Time.Sub(timeNow())
	if ttl <= 0 {
		return nil
	}
	if err := c.Set(ctx, revokedKey(claims.RegisteredClaims.ID), "1", ttl).Err(); err != nil {
		return fmt.Errorf("RevokeToken: %w", err)
	}
	return nil
}

// IsTokenRevoked 查詢 jti 是否已被撤銷；redis.Nil 代表未撤銷
func IsTokenRevoked(ctx context.Context, c cache.Cache, jti string) (bool, error) {
	if jti == "" {
		return false, nil
	}
	err := c.Get(ctx, revokedKey(jti)).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("IsTokenRevoked: %w", err)
	}
	return true, nil
}
