package middleware // middleware provides shared request processing for handlers

import (
    "strings" // splitting the Authorization header

    "github.com/labstack/echo/v4" // Echo framework used for defining middleware and handlers

    "github.com/iliyamo/autism-support-api/internal/apierr"
    "github.com/iliyamo/autism-support-api/internal/utils"
)

// Context keys set by JWTAuth for downstream handlers and middleware.
const (
    CtxUserID = "user_id"
    CtxEmail  = "email"
    CtxClaims = "claims"
)

// TokenVerifier checks a raw token (without the Bearer prefix).
type TokenVerifier interface {
    Verify(raw string) (*utils.Claims, error)
}

// JWTAuth returns an Echo middleware that requires an "Authorization: Bearer
// <token>" header.  Failures are returned as apierr token errors so the
// HTTP error handler writes the 401; on success the principal's id, email
// and full claims are stored in the context.
func JWTAuth(v TokenVerifier) echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            header := c.Request().Header.Get(echo.HeaderAuthorization)
            if header == "" {
                return apierr.Token(apierr.MsgMissingToken, nil)
            }

            // Exactly two space-separated parts, the first being "Bearer".
            parts := strings.Split(header, " ")
            if len(parts) != 2 || parts[0] != strings.TrimSpace(utils.BearerPrefix) {
                return apierr.Token(apierr.MsgMalformedToken, nil)
            }

            claims, err := v.Verify(parts[1])
            if err != nil {
                return err
            }

            c.Set(CtxUserID, claims.UserID)
            c.Set(CtxEmail, claims.Email)
            c.Set(CtxClaims, claims)
            return next(c)
        }
    }
}
