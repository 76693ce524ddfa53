package middleware

import (
    "strings"
    "time"

    "github.com/labstack/echo/v4"
    "go.uber.org/zap"
)

// RequestLogger logs one line per request.  Handler errors are passed to
// c.Error first so the logged status is the one the client receives.
func RequestLogger(log *zap.Logger) echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            start := time.Now()
            if err := next(c); err != nil {
                c.Error(err)
            }
            if log == nil {
                return nil
            }

            status := c.Response().Status
            path := c.Path()
            if path == "" {
                path = c.Request().URL.Path
            }
            fields := []zap.Field{
                zap.String("method", strings.ToUpper(c.Request().Method)),
                zap.String("path", path),
                zap.Int("status", status),
                zap.Int64("duration_ms", time.Since(start).Milliseconds()),
            }
            if uid, ok := c.Get(CtxUserID).(string); ok && uid != "" {
                fields = append(fields, zap.String("user_id", uid))
            }

            switch {
            case status >= 500:
                log.Error("HTTP request", fields...)
            case status >= 400:
                log.Warn("HTTP request", fields...)
            default:
                log.Info("HTTP request", fields...)
            }
            return nil
        }
    }
}
