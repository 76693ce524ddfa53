package handler

import (
    "context"
    "errors"
    "io"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/autism-support-api/internal/apierr"
    "github.com/iliyamo/autism-support-api/internal/validation"
)

// MsgInvalidJSON is reported on the "body" field when the payload is not JSON.
const MsgInvalidJSON = "JSON inválido"

// requestTimeout bounds the work a handler hands to the service layer.
const requestTimeout = 5 * time.Second

func requestContext(c echo.Context) (context.Context, context.CancelFunc) {
    return context.WithTimeout(c.Request().Context(), requestTimeout)
}

// bindBody decodes the JSON body into dst and validates it.  Values of the
// wrong JSON type are reported as field errors alongside the rule failures
// of the remaining fields, so the client sees every problem at once.  The
// body is read as JSON whatever its declared content type.
func bindBody(c echo.Context, dst any) error {
    data, err := io.ReadAll(c.Request().Body)
    if err != nil {
        return err
    }
    fields, err := validation.Decode(data, dst)
    if errors.Is(err, validation.ErrNotObject) {
        return apierr.Validation(apierr.FieldError{Field: "body", Message: MsgInvalidJSON})
    }
    if err != nil {
        return err
    }
    if err := c.Validate(dst); err != nil {
        var ae *apierr.Error
        if !errors.As(err, &ae) || ae.Kind != apierr.ValidationFailed {
            return err
        }
        for _, f := range ae.Fields {
            if !hasField(fields, f.Field) {
                fields = append(fields, f)
            }
        }
    }
    if len(fields) > 0 {
        return apierr.Validation(fields...)
    }
    return nil
}

// bindQuery binds and validates query parameters into dst.
func bindQuery(c echo.Context, dst any) error {
    if err := (&echo.DefaultBinder{}).BindQueryParams(c, dst); err != nil {
        return err
    }
    return c.Validate(dst)
}

func hasField(fields []apierr.FieldError, name string) bool {
    for _, f := range fields {
        if f.Field == name {
            return true
        }
    }
    return false
}
