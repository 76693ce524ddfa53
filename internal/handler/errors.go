package handler

import (
    "errors"
    "fmt"
    "net/http"

    "github.com/labstack/echo/v4"
    "go.uber.org/zap"

    "github.com/iliyamo/autism-support-api/internal/apierr"
)

// ErrorHandler is the application's echo.HTTPErrorHandler and the only place
// error responses are written.  Domain errors go through apierr.Resolve;
// errors raised by echo itself keep their status, except that unknown
// routes and unsupported methods both read as a missing endpoint.
func ErrorHandler(log *zap.Logger, exposeFaults bool) echo.HTTPErrorHandler {
    return func(err error, c echo.Context) {
        if c.Response().Committed {
            return
        }

        var out apierr.Outcome
        var he *echo.HTTPError
        if apierr.KindOf(err) == apierr.Unclassified && errors.As(err, &he) {
            out = httpErrorOutcome(he, exposeFaults)
        } else {
            out = apierr.Resolve(err, exposeFaults)
        }

        if out.Status >= http.StatusInternalServerError {
            log.Error("request failed",
                zap.String("method", c.Request().Method),
                zap.String("path", c.Request().URL.Path),
                zap.Error(err))
        }

        var werr error
        if c.Request().Method == http.MethodHead {
            werr = c.NoContent(out.Status)
        } else {
            werr = c.JSON(out.Status, out.Body)
        }
        if werr != nil {
            log.Warn("writing error response failed", zap.Error(werr))
        }
    }
}

func httpErrorOutcome(he *echo.HTTPError, exposeFaults bool) apierr.Outcome {
    switch {
    case he.Code == http.StatusNotFound, he.Code == http.StatusMethodNotAllowed:
        return apierr.Outcome{Status: http.StatusNotFound, Body: apierr.Body{Message: apierr.MsgRouteNotFound}}
    case he.Code >= http.StatusInternalServerError:
        return apierr.Resolve(he, exposeFaults)
    }
    msg := http.StatusText(he.Code)
    if m, ok := he.Message.(string); ok && m != "" {
        msg = m
    } else if he.Message != nil {
        msg = fmt.Sprint(he.Message)
    }
    return apierr.Outcome{Status: he.Code, Body: apierr.Body{Message: msg}}
}
