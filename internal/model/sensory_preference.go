package model

import "slices"

// Sensitivity is how strongly a profile reacts to one sensory channel.
type Sensitivity string

const (
    SensitivityLow    Sensitivity = "baixa"
    SensitivityMedium Sensitivity = "média"
    SensitivityHigh   Sensitivity = "alta"
)

type SensoryPreference struct {
    Meta
    ProfileID        string      `json:"profileId"`
    SoundSensitivity Sensitivity `json:"soundSensitivity"`
    LightSensitivity Sensitivity `json:"lightSensitivity"`
    TouchSensitivity Sensitivity `json:"touchSensitivity"`
    FoodRestrictions []string    `json:"foodRestrictions,omitempty"`
}

func (s *SensoryPreference) ProfileRef() string { return s.ProfileID }

func (s *SensoryPreference) Detach() { s.FoodRestrictions = slices.Clone(s.FoodRestrictions) }

func (s *SensoryPreference) Matches(key, value string) bool {
    switch key {
    case "profileId":
        return s.ProfileID == value
    }
    return true
}
