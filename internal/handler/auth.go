package handler

import (
    "context"
    "net/http"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/autism-support-api/internal/request"
)

// Authenticator issues session tokens.
type Authenticator interface {
    Login(ctx context.Context, email, password string) (string, error)
}

// AuthHandler serves /auth.
type AuthHandler struct {
    auth Authenticator
}

func NewAuthHandler(a Authenticator) *AuthHandler { return &AuthHandler{auth: a} }

type loginResp struct {
    Token string `json:"token"` // "Bearer <jwt>"
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c echo.Context) error {
    var req request.Login
    if err := bindBody(c, &req); err != nil {
        return err
    }
    ctx, cancel := requestContext(c)
    defer cancel()

    token, err := h.auth.Login(ctx, req.Email, req.Password)
    if err != nil {
        return err
    }
    return c.JSON(http.StatusOK, loginResp{Token: token})
}
