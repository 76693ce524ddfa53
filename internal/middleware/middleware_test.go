package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/iliyamo/autism-support-api/internal/apierr"
	"github.com/iliyamo/autism-support-api/internal/config"
	"github.com/iliyamo/autism-support-api/internal/utils"
)

type verifierFunc func(raw string) (*utils.Claims, error)

func (f verifierFunc) Verify(raw string) (*utils.Claims, error) { return f(raw) }

type stubVerifier struct {
	claims *utils.Claims
	err    error
	got    string
}

func (s *stubVerifier) Verify(raw string) (*utils.Claims, error) {
	s.got = raw
	return s.claims, s.err
}

func runJWT(t *testing.T, v TokenVerifier, header string) (echo.Context, bool, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/profiles", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	c := e.NewContext(req, httptest.NewRecorder())
	called := false
	err := JWTAuth(v)(func(echo.Context) error {
		called = true
		return nil
	})(c)
	return c, called, err
}

func TestJWTAuthRejects(t *testing.T) {
	verifyErr := apierr.Token(apierr.MsgInvalidToken, errors.New("expired"))
	cases := map[string]struct {
		header string
		msg    string
	}{
		"missing":       {"", apierr.MsgMissingToken},
		"no scheme":     {"abc.def.ghi", apierr.MsgMalformedToken},
		"wrong scheme":  {"Basic abc", apierr.MsgMalformedToken},
		"lower case":    {"bearer abc", apierr.MsgMalformedToken},
		"extra part":    {"Bearer abc def", apierr.MsgMalformedToken},
		"double space":  {"Bearer  abc", apierr.MsgMalformedToken},
		"invalid token": {"Bearer abc", apierr.MsgInvalidToken},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, called, err := runJWT(t, &stubVerifier{err: verifyErr}, tc.header)
			assert.False(t, called)
			assert.Equal(t, apierr.InvalidOrExpiredToken, apierr.KindOf(err))
			out := apierr.Resolve(err, false)
			assert.Equal(t, http.StatusUnauthorized, out.Status)
			assert.Equal(t, tc.msg, out.Body.Message)
		})
	}
}

func TestJWTAuthSetsPrincipal(t *testing.T) {
	v := &stubVerifier{claims: &utils.Claims{UserID: "u-1", Email: "admin@autismo.com"}}
	c, called, err := runJWT(t, v, "Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, "abc.def.ghi", v.got)
	assert.Equal(t, "u-1", c.Get(CtxUserID))
	assert.Equal(t, "admin@autismo.com", c.Get(CtxEmail))
	assert.Same(t, v.claims, c.Get(CtxClaims))
}

func TestRequestLoggerLevels(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	e := echo.New()
	e.Use(RequestLogger(zap.New(core)))
	e.GET("/ok", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/missing", func(c echo.Context) error { return echo.ErrNotFound })
	e.GET("/boom", func(c echo.Context) error { return errors.New("boom") })

	for _, path := range []string{"/ok", "/missing", "/boom"} {
		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	entries := logs.All()
	require.Len(t, entries, 3)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[2].Level)
	assert.EqualValues(t, http.StatusNotFound, entries[1].ContextMap()["status"])
	assert.Equal(t, "/missing", entries[1].ContextMap()["path"])
}

func TestLimiterPassThrough(t *testing.T) {
	cfg := config.RateLimitConfig{Enabled: true, Capacity: 1, RefillTokens: 1, RefillInterval: time.Second}
	for name, l := range map[string]*Limiter{
		"no redis": NewLimiter(cfg, nil, zap.NewNop()),
		"disabled": NewLimiter(config.RateLimitConfig{}, redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"}), nil),
	} {
		t.Run(name, func(t *testing.T) {
			require.Nil(t, l)
			e := echo.New()
			e.Use(l.Middleware(ByClientIP))
			e.GET("/", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
			for i := 0; i < 5; i++ {
				rec := httptest.NewRecorder()
				e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
				assert.Equal(t, http.StatusOK, rec.Code)
			}
		})
	}
}

func newTestLimiter(t *testing.T, cfg config.RateLimitConfig) (*Limiter, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	cfg.Enabled = true
	l := NewLimiter(cfg, rdb, zap.NewNop())
	require.NotNil(t, l)
	return l, mr
}

func TestLimiterTakeRefillsByInterval(t *testing.T) {
	l, mr := newTestLimiter(t, config.RateLimitConfig{
		Prefix: "autismo:rl", Capacity: 2, RefillTokens: 1, RefillInterval: time.Second, TTL: time.Minute,
	})
	now := time.Date(2024, 12, 29, 10, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }
	ctx := context.Background()

	for want := int64(1); want >= 0; want-- {
		d, err := l.Take(ctx, "k")
		require.NoError(t, err)
		assert.True(t, d.Allowed)
		assert.Equal(t, want, d.Remaining)
	}

	now = now.Add(400 * time.Millisecond)
	d, err := l.Take(ctx, "k")
	require.NoError(t, err)
	assert.False(t, d.Allowed)
	assert.Equal(t, 600*time.Millisecond, d.RetryAfter)

	now = now.Add(600 * time.Millisecond)
	d, err = l.Take(ctx, "k")
	require.NoError(t, err)
	assert.True(t, d.Allowed)
	assert.Equal(t, int64(0), d.Remaining)

	assert.True(t, mr.Exists("autismo:rl:k"))
	assert.Equal(t, time.Minute, mr.TTL("autismo:rl:k"))
}

func TestLimiterKeysByPrincipal(t *testing.T) {
	l, mr := newTestLimiter(t, config.RateLimitConfig{
		Prefix: "autismo:rl", Capacity: 1, RefillTokens: 1, RefillInterval: time.Hour, TTL: time.Hour,
	})
	fixed := time.Now()
	l.now = func() time.Time { return fixed }
	users := map[string]string{"Bearer a": "u-42", "Bearer b": "u-7"}
	verify := verifierFunc(func(raw string) (*utils.Claims, error) {
		return &utils.Claims{UserID: users["Bearer "+raw]}, nil
	})

	e := echo.New()
	g := e.Group("/profiles", JWTAuth(verify), l.Middleware(ByPrincipal(true)))
	g.GET("", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.POST("/auth/login", func(c echo.Context) error { return c.NoContent(http.StatusOK) }, l.Middleware(ByClientIP))

	send := func(method, path, auth string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, nil)
		req.Header.Set(echo.HeaderXRealIP, "10.0.0.7")
		if auth != "" {
			req.Header.Set(echo.HeaderAuthorization, auth)
		}
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec
	}

	assert.Equal(t, http.StatusOK, send(http.MethodGet, "/profiles", "Bearer a").Code)
	blocked := send(http.MethodGet, "/profiles", "Bearer a")
	assert.Equal(t, http.StatusTooManyRequests, blocked.Code)
	assert.Equal(t, "3600", blocked.Header().Get("Retry-After"))
	assert.JSONEq(t, `{"message":"Muitas requisições, tente novamente em instantes","retry_after":3600}`, blocked.Body.String())

	// same address, other user: separate bucket
	assert.Equal(t, http.StatusOK, send(http.MethodGet, "/profiles", "Bearer b").Code)
	assert.Equal(t, http.StatusOK, send(http.MethodPost, "/auth/login", "").Code)

	assert.ElementsMatch(t, []string{
		"autismo:rl:user:u-42:GET /profiles",
		"autismo:rl:user:u-7:GET /profiles",
		"autismo:rl:ip:10.0.0.7:POST /auth/login",
	}, mr.Keys())
}

func TestByPrincipal(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/routines", nil)
	req.Header.Set(echo.HeaderXRealIP, "10.0.0.7")
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetPath("/routines")

	assert.Equal(t, "ip:10.0.0.7:GET /routines", ByPrincipal(true)(c))

	c.Set(CtxUserID, "u-1")
	assert.Equal(t, "user:u-1:GET /routines", ByPrincipal(true)(c))
	assert.Equal(t, "user:u-1", ByPrincipal(false)(c))
}

func TestLimiterRedisDownLetsRequestsThrough(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1, DialTimeout: 100 * time.Millisecond})
	t.Cleanup(func() { _ = rdb.Close() })
	l := NewLimiter(config.RateLimitConfig{Enabled: true, Capacity: 1, RefillTokens: 1, RefillInterval: time.Hour, TTL: time.Hour}, rdb, zap.NewNop())

	e := echo.New()
	e.GET("/", func(c echo.Context) error { return c.NoContent(http.StatusOK) }, l.Middleware(ByClientIP))
	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}
