package model

// SupportLevel is the support need of a profile.
type SupportLevel string

const (
    SupportLow      SupportLevel = "leve"
    SupportModerate SupportLevel = "moderado"
    SupportHigh     SupportLevel = "alto"
)

// Profile is the person whose routines, preferences and incidents are
// tracked.  Every other record points at one.
//
// Fields:
//  Name          – required.
//  Age           – non-negative integer.
//  SupportLevel  – leve | moderado | alto.
//  DiagnosisDate – optional ISO-8601 date, kept as submitted.
//  Notes         – optional free text.
type Profile struct {
    Meta
    Name          string       `json:"name"`
    Age           int          `json:"age"`
    SupportLevel  SupportLevel `json:"supportLevel"`
    DiagnosisDate string       `json:"diagnosisDate,omitempty"`
    Notes         string       `json:"notes,omitempty"`
}

// Profiles accept no list filters.
func (p *Profile) Matches(string, string) bool { return true }
