package model

type DayOfWeek string

const (
    Monday    DayOfWeek = "segunda"
    Tuesday   DayOfWeek = "terça"
    Wednesday DayOfWeek = "quarta"
    Thursday  DayOfWeek = "quinta"
    Friday    DayOfWeek = "sexta"
    Saturday  DayOfWeek = "sábado"
    Sunday    DayOfWeek = "domingo"
)

// Routine is a recurring daily activity of a profile.  Time is "HH:MM".
type Routine struct {
    Meta
    ProfileID   string    `json:"profileId"`
    Title       string    `json:"title"`
    Description string    `json:"description,omitempty"`
    Time        string    `json:"time,omitempty"`
    DayOfWeek   DayOfWeek `json:"dayOfWeek,omitempty"`
}

func (r *Routine) ProfileRef() string { return r.ProfileID }

func (r *Routine) Matches(key, value string) bool {
    switch key {
    case "profileId":
        return r.ProfileID == value
    }
    return true
}
