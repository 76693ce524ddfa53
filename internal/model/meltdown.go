package model

import "github.com/iliyamo/autism-support-api/internal/utils"

const (
    MinIntensity = 1
    MaxIntensity = 5
)

// Meltdown is a recorded crisis.  It is immutable once created; the only
// lifecycle operation after create is delete.
//
// Fields:
//  Trigger     – what set the crisis off; required.
//  Description – optional.
//  Intensity   – 1..5 inclusive.
//  OccurredAt  – when it happened, echoed as submitted; drives list
//                ordering and date filters.
type Meltdown struct {
    Meta
    ProfileID   string    `json:"profileId"`
    Trigger     string    `json:"trigger"`
    Description string    `json:"description,omitempty"`
    Intensity   int       `json:"intensity"`
    OccurredAt  Timestamp `json:"occurredAt"`
}

func (m *Meltdown) ProfileRef() string { return m.ProfileID }

// Matches supports profileId plus inclusive startDate/endDate bounds on
// OccurredAt.  An unparsable bound does not filter anything out.
func (m *Meltdown) Matches(key, value string) bool {
    switch key {
    case "profileId":
        return m.ProfileID == value
    case "startDate":
        if from, err := utils.ParseTimestamp(value); err == nil {
            return !m.OccurredAt.Before(from)
        }
    case "endDate":
        if to, err := utils.ParseTimestamp(value); err == nil {
            return !m.OccurredAt.After(to)
        }
    }
    return true
}

// MoreRecent orders meltdowns newest first.
func MoreRecent(a, b *Meltdown) int {
    return b.OccurredAt.Compare(a.OccurredAt.Time)
}
