package validation

import (
    "bytes"
    "encoding/json"
    "errors"
    "fmt"
    "reflect"

    "github.com/iliyamo/autism-support-api/internal/apierr"
)

// ErrNotObject is returned by Decode when the payload is not a JSON object.
var ErrNotObject = errors.New("payload is not a JSON object")

// Decode fills the schema struct dst from a JSON object one field at a time,
// so a wrong-typed value never hides another.  Every field whose value does
// not fit is left at its zero value and reported with its declared message.
// An empty payload decodes as {}.  Keys without a matching field are ignored.
func Decode(data []byte, dst any) ([]apierr.FieldError, error) {
    rv := reflect.ValueOf(dst)
    if rv.Kind() != reflect.Pointer || rv.Elem().Kind() != reflect.Struct {
        return nil, fmt.Errorf("validation: decode target must be a struct pointer, got %T", dst)
    }

    var raw map[string]json.RawMessage
    if len(bytes.TrimSpace(data)) > 0 {
        if err := json.Unmarshal(data, &raw); err != nil {
            return nil, ErrNotObject
        }
    }

    sv := rv.Elem()
    t := sv.Type()
    var fields []apierr.FieldError
    for i := 0; i < t.NumField(); i++ {
        sf := t.Field(i)
        name := jsonName(sf)
        if !sf.IsExported() || name == "" {
            continue
        }
        val, ok := raw[name]
        if !ok {
            continue
        }
        fv := sv.Field(i)
        if err := json.Unmarshal(val, fv.Addr().Interface()); err != nil {
            fv.SetZero()
            fields = append(fields, apierr.FieldError{Field: name, Message: FieldMessage(dst, name)})
        }
    }
    return fields, nil
}
