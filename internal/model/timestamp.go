package model

import (
    "encoding/json"
    "time"

    "github.com/iliyamo/autism-support-api/internal/utils"
)

// Timestamp is an instant that keeps the text it was parsed from.  It
// serialises back to that text, so a client reads what it wrote; ordering and
// range checks use the embedded UTC time.
type Timestamp struct {
    time.Time
    raw string
}

// ParseTimestamp parses an ISO-8601 date or date-time and remembers s.
func ParseTimestamp(s string) (Timestamp, error) {
    t, err := utils.ParseTimestamp(s)
    if err != nil {
        return Timestamp{}, err
    }
    return Timestamp{Time: t, raw: s}, nil
}

// At wraps t; it serialises in RFC 3339 form.
func At(t time.Time) Timestamp { return Timestamp{Time: t.UTC()} }

func (t Timestamp) String() string {
    if t.raw != "" {
        return t.raw
    }
    return t.Time.Format(time.RFC3339Nano)
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
    return json.Marshal(t.String())
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
    var s string
    if err := json.Unmarshal(b, &s); err != nil {
        return err
    }
    parsed, err := ParseTimestamp(s)
    if err != nil {
        return err
    }
    *t = parsed
    return nil
}
