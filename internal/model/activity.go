package model

// Activity is a therapeutic activity planned for a profile.
type Activity struct {
    Meta
    ProfileID       string `json:"profileId"`
    Name            string `json:"name"`
    Objective       string `json:"objective,omitempty"`
    DurationMinutes int    `json:"durationMinutes"`
    Professional    string `json:"professional,omitempty"`
}

func (a *Activity) ProfileRef() string { return a.ProfileID }

func (a *Activity) Matches(key, value string) bool {
    switch key {
    case "profileId":
        return a.ProfileID == value
    }
    return true
}
