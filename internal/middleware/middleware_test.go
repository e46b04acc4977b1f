package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"construction-erp/internal/cache"
	"construction-erp/internal/model"
	"construction-erp/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func newContext(auth string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func notRevoked() *cache.FakeCache {
	return &cache.FakeCache{GetFn: func(context.Context, string) *redis.StringCmd {
		return redis.NewStringResult("", redis.Nil)
	}}
}

func newAuthenticator(t *testing.T, secret string) *service.Authenticator {
	t.Helper()
	a, err := service.NewAuthenticator(secret, time.Minute)
	require.NoError(t, err)
	return a
}

func TestBearerToken(t *testing.T) {
	for _, h := range []string{"", "Bearer", "Bearer ", "BadHeader", "Basic abc"} {
		_, err := bearerToken(h)
		require.ErrorIs(t, err, errNoToken, h)
	}
	tok, err := bearerToken("bearer abc.def")
	require.NoError(t, err)
	require.Equal(t, "abc.def", tok)
}

func TestExtractClaims(t *testing.T) {
	a := newAuthenticator(t, "testsecret")

	ctx, _ := newContext("")
	_, err := extractClaims(ctx, a, notRevoked())
	require.Error(t, err)

	ctx, _ = newContext("Bearer invalid")
	_, err = extractClaims(ctx, a, notRevoked())
	require.Error(t, err)

	tok, _, err := a.IssueAccessToken(model.User{ID: 1, Email: "a@b.com", Role: "admin"})
	require.NoError(t, err)
	ctx, _ = newContext("Bearer " + tok)
	claims, err := extractClaims(ctx, a, notRevoked())
	require.NoError(t, err)
	require.Equal(t, 1, claims.ID)
	require.Equal(t, "admin", claims.Role)

	revoked := &cache.FakeCache{GetFn: func(context.Context, string) *redis.StringCmd {
		return redis.NewStringResult("1", nil)
	}}
	ctx, _ = newContext("Bearer " + tok)
	_, err = extractClaims(ctx, a, revoked)
	require.Error(t, err)

	broken := &cache.FakeCache{GetFn: func(context.Context, string) *redis.StringCmd {
		return redis.NewStringResult("", errors.New("down"))
	}}
	ctx, _ = newContext("Bearer " + tok)
	_, err = extractClaims(ctx, a, broken)
	require.Error(t, err)
}

func TestRequireAuth(t *testing.T) {
	a := newAuthenticator(t, "secret")
	tok, _, err := a.IssueAccessToken(model.User{ID: 2})
	require.NoError(t, err)

	// success path
	ctx, rec := newContext("Bearer " + tok)
	called := false
	handler := RequireAuth(a, notRevoked())(func(c echo.Context) error {
		called = true
		cl, ok := ClaimsFromContext(c)
		require.True(t, ok)
		require.Equal(t, 2, cl.ID)
		return c.String(http.StatusOK, "ok")
	})
	require.NoError(t, handler(ctx))
	require.True(t, called)
	require.Equal(t, http.StatusOK, rec.Code)

	// 缺少 header、格式錯誤、簽章錯誤皆回 401 且不執行 handler
	forged, _, err := newAuthenticator(t, "other").IssueAccessToken(model.User{ID: 2})
	require.NoError(t, err)
	for _, h := range []string{"", "Bearer", "Token " + tok, "Bearer " + forged} {
		ctx, rec = newContext(h)
		called = false
		err = RequireAuth(a, notRevoked())(func(echo.Context) error { called = true; return nil })(ctx)
		require.NoError(t, err)
		require.False(t, called, h)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Equal(t, InvalidTokenMessage, rec.Body.String())
		require.Contains(t, rec.Header().Get(echo.HeaderContentType), echo.MIMETextPlain)
	}
}

func TestClaimsFromContext(t *testing.T) {
	ctx, _ := newContext("")
	_, ok := ClaimsFromContext(ctx)
	require.False(t, ok)

	ctx.Set(ContextUserKey, &service.CustomClaims{ID: 9})
	cl, ok := ClaimsFromContext(ctx)
	require.True(t, ok)
	require.Equal(t, 9, cl.ID)
}
