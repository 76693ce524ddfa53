// Package validation checks request payloads against the field rules declared
// on their schema structs.  Rules live in `validate` tags; the message a client
// sees for a failing field lives in its `msg` tag.
package validation

import (
    "errors"
    "fmt"
    "reflect"
    "regexp"
    "strings"

    "github.com/go-playground/validator/v10"

    "github.com/iliyamo/autism-support-api/internal/apierr"
    "github.com/iliyamo/autism-support-api/internal/utils"
)

// MsgInvalidID is reported on the "id" field when a path identifier is not a
// UUID.
const MsgInvalidID = "ID inválido"

var hhmm = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d)$`)

// Validator adapts go-playground/validator to echo.Validator.  It is safe for
// concurrent use.
type Validator struct {
    v *validator.Validate
}

// New returns a Validator with the custom "hhmm" and "iso8601" rules
// registered and field names taken from json tags.
func New() *Validator {
    v := validator.New(validator.WithRequiredStructEnabled())
    v.RegisterTagNameFunc(jsonName)
    // registration only fails on empty tags or nil funcs
    _ = v.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
        return hhmm.MatchString(fl.Field().String())
    })
    _ = v.RegisterValidation("iso8601", func(fl validator.FieldLevel) bool {
        _, err := utils.ParseTimestamp(fl.Field().String())
        return err == nil
    })
    return &Validator{v: v}
}

// Validate runs every rule on i and reports all failing fields at once as an
// apierr validation error.
func (v *Validator) Validate(i any) error {
    err := v.v.Struct(i)
    if err == nil {
        return nil
    }
    var ves validator.ValidationErrors
    if !errors.As(err, &ves) {
        return err
    }
    fields := make([]apierr.FieldError, 0, len(ves))
    for _, fe := range ves {
        fields = append(fields, apierr.FieldError{
            Field:   fe.Field(),
            Message: messageFor(i, fe.StructField(), fe.Field()),
        })
    }
    return apierr.Validation(fields...)
}

// ID checks a path identifier on its own, before any body rule runs, and
// returns it in the lower-case form ids are stored in.  Hex digits of
// either case are accepted.
func (v *Validator) ID(id string) (string, error) {
    id = strings.ToLower(id)
    if err := v.v.Var(id, "required,uuid"); err != nil {
        return "", apierr.Validation(apierr.FieldError{Field: "id", Message: MsgInvalidID})
    }
    return id, nil
}

// FieldMessage returns the message declared for the field of schema whose
// json name is name.  It is used for decoder type errors, which never reach
// the rule engine.
func FieldMessage(schema any, name string) string {
    t := structType(schema)
    if t == nil {
        return defaultMessage(name)
    }
    for i := 0; i < t.NumField(); i++ {
        sf := t.Field(i)
        if jsonName(sf) == name {
            if msg := sf.Tag.Get("msg"); msg != "" {
                return msg
            }
            break
        }
    }
    return defaultMessage(name)
}

func messageFor(schema any, structField, name string) string {
    t := structType(schema)
    if t == nil {
        return defaultMessage(name)
    }
    // dive errors carry an index suffix, e.g. "FoodRestrictions[0]"
    if i := strings.IndexByte(structField, '['); i >= 0 {
        structField = structField[:i]
    }
    if sf, ok := t.FieldByName(structField); ok {
        if msg := sf.Tag.Get("msg"); msg != "" {
            return msg
        }
    }
    return defaultMessage(name)
}

func defaultMessage(name string) string {
    return fmt.Sprintf("%s inválido", name)
}

func structType(i any) reflect.Type {
    t := reflect.TypeOf(i)
    for t != nil && t.Kind() == reflect.Pointer {
        t = t.Elem()
    }
    if t == nil || t.Kind() != reflect.Struct {
        return nil
    }
    return t
}

func jsonName(sf reflect.StructField) string {
    name, _, _ := strings.Cut(sf.Tag.Get("json"), ",")
    switch name {
    case "-":
        return ""
    case "":
        return sf.Name
    }
    return name
}
