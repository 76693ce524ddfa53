package utils

import (
    "errors"
    "strings"
    "time"
)

var ErrInvalidTimestamp = errors.New("invalid ISO-8601 timestamp")

// iso8601Layouts covers calendar dates down to the year and date-times with
// hour, minute or second precision followed by an optional zone in any of
// the Z, ±hh:mm, ±hhmm or ±hh forms.  Fractional seconds need no layout of
// their own: time.Parse accepts them after the seconds field.
var iso8601Layouts = func() []string {
    layouts := []string{"2006-01-02", "2006-01", "2006"}
    for _, clock := range []string{"T15", "T15:04", "T15:04:05"} {
        for _, zone := range []string{"", "Z07:00", "Z0700", "Z07"} {
            layouts = append(layouts, "2006-01-02"+clock+zone)
        }
    }
    return layouts
}()

// ParseTimestamp parses an ISO-8601 date or date-time.  A space may stand in
// for the T separator.  Values without a zone are taken as UTC.
func ParseTimestamp(s string) (time.Time, error) {
    s = strings.TrimSpace(s)
    if len(s) > 10 && s[10] == ' ' {
        s = s[:10] + "T" + s[11:]
    }
    for _, layout := range iso8601Layouts {
        if t, err := time.Parse(layout, s); err == nil {
            return t.UTC(), nil
        }
    }
    return time.Time{}, ErrInvalidTimestamp
}
