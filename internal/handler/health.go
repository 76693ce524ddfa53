package handler // declare the package name; contains HTTP handlers

import (
    "net/http"

    "github.com/labstack/echo/v4"
)

const (
    APIName    = "API de Apoio ao Autismo"
    APIVersion = "1.0.0"
)

type rootResp struct {
    Message string `json:"message"`
    Version string `json:"version"`
    Status  string `json:"status"`
}

// Root describes the service.  It needs no token.
func Root(c echo.Context) error {
    return c.JSON(http.StatusOK, rootResp{Message: APIName, Version: APIVersion, Status: "online"})
}

// Health is a plain-text liveness check for load balancers and monitors.
func Health(c echo.Context) error {
    return c.String(http.StatusOK, "ok")
}
