package middleware

import (
    "context"
    "fmt"
    "net/http"
    "strconv"
    "time"

    "github.com/labstack/echo/v4"
    "github.com/redis/go-redis/v9"
    "go.uber.org/zap"

    "github.com/iliyamo/autism-support-api/internal/config"
)

// MsgTooManyRequests is the body message of a 429.
const MsgTooManyRequests = "Muitas requisições, tente novamente em instantes"

// takeScript refills the bucket in KEYS[1] by whole intervals, then spends one
// token if there is one.  It returns {allowed, tokens left, wait in ms}.
var takeScript = redis.NewScript(`
local now      = tonumber(ARGV[1])
local capacity = tonumber(ARGV[2])
local refill   = tonumber(ARGV[3])
local interval = tonumber(ARGV[4])

local bucket = redis.call('HMGET', KEYS[1], 'tokens', 'ts')
local tokens = tonumber(bucket[1]) or capacity
local ts     = tonumber(bucket[2]) or now

local steps = math.floor(math.max(0, now - ts) / interval)
if steps > 0 then
    tokens = math.min(capacity, tokens + steps * refill)
    ts = ts + steps * interval
end

local allowed, wait = 0, 0
if tokens >= 1 then
    allowed = 1
    tokens = tokens - 1
else
    wait = interval - (now - ts)
end

redis.call('HSET', KEYS[1], 'tokens', tokens, 'ts', ts)
redis.call('PEXPIRE', KEYS[1], ARGV[5])
return {allowed, tokens, wait}
`)

// Decision is the outcome of drawing one token.
type Decision struct {
    Allowed    bool
    Remaining  int64
    RetryAfter time.Duration
}

// Limiter keeps one token bucket per key in Redis.  A nil *Limiter allows
// everything.
type Limiter struct {
    cfg config.RateLimitConfig
    rdb redis.Scripter
    log *zap.Logger
    now func() time.Time
}

// NewLimiter returns nil when limiting is disabled or rdb is nil.
func NewLimiter(cfg config.RateLimitConfig, rdb *redis.Client, log *zap.Logger) *Limiter {
    if !cfg.Enabled || rdb == nil {
        return nil
    }
    if log == nil {
        log = zap.NewNop()
    }
    return &Limiter{cfg: cfg, rdb: rdb, log: log, now: time.Now}
}

// Take draws one token from the bucket named key.
func (l *Limiter) Take(ctx context.Context, key string) (Decision, error) {
    res, err := takeScript.Run(ctx, l.rdb, []string{l.cfg.Prefix + ":" + key},
        l.now().UnixMilli(),
        l.cfg.Capacity,
        l.cfg.RefillTokens,
        l.cfg.RefillInterval.Milliseconds(),
        l.cfg.TTL.Milliseconds(),
    ).Int64Slice()
    if err != nil {
        return Decision{}, err
    }
    if len(res) != 3 {
        return Decision{}, fmt.Errorf("ratelimit: unexpected script result %v", res)
    }
    return Decision{
        Allowed:    res[0] == 1,
        Remaining:  res[1],
        RetryAfter: time.Duration(res[2]) * time.Millisecond,
    }, nil
}

// KeyFunc names the bucket a request draws from.
type KeyFunc func(c echo.Context) string

// ByClientIP keys on the client address and route.  It serves endpoints
// reached before a principal is known.
func ByClientIP(c echo.Context) string {
    ip := c.RealIP()
    if ip == "" {
        ip = "unknown"
    }
    return "ip:" + ip + ":" + c.Request().Method + " " + c.Path()
}

// ByPrincipal keys on the user stored by JWTAuth, so it must be mounted after
// it.  With perRoute each route gets its own bucket.  Requests without a
// principal fall back to ByClientIP.
func ByPrincipal(perRoute bool) KeyFunc {
    return func(c echo.Context) string {
        uid, _ := c.Get(CtxUserID).(string)
        if uid == "" {
            return ByClientIP(c)
        }
        if !perRoute {
            return "user:" + uid
        }
        return "user:" + uid + ":" + c.Request().Method + " " + c.Path()
    }
}

// Middleware rejects requests with 429 once the bucket chosen by key is
// empty.  Redis errors let the request through.
func (l *Limiter) Middleware(key KeyFunc) echo.MiddlewareFunc {
    if l == nil {
        return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
    }
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            k := key(c)
            d, err := l.Take(c.Request().Context(), k)
            if err != nil {
                l.log.Warn("ratelimit: redis error", zap.String("key", k), zap.Error(err))
                return next(c)
            }

            h := c.Response().Header()
            h.Set("X-RateLimit-Limit", strconv.Itoa(l.cfg.Capacity))
            h.Set("X-RateLimit-Remaining", strconv.FormatInt(d.Remaining, 10))
            if l.cfg.Debug {
                h.Set("X-RateLimit-Key", k)
            }
            if d.Allowed {
                return next(c)
            }

            secs := int((d.RetryAfter + time.Second - 1) / time.Second)
            h.Set("Retry-After", strconv.Itoa(secs))
            if l.cfg.Debug {
                l.log.Info("ratelimit: blocked", zap.String("key", k), zap.Duration("retry_after", d.RetryAfter))
            }
            return c.JSON(http.StatusTooManyRequests, map[string]any{
                "message":     MsgTooManyRequests,
                "retry_after": secs,
            })
        }
    }
}
