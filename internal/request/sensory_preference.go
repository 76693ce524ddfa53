package request

import "github.com/iliyamo/autism-support-api/internal/model"

type CreateSensoryPreference struct {
    ProfileID        string   `json:"profileId" validate:"uuid" msg:"profileId deve ser um UUID válido"`
    SoundSensitivity string   `json:"soundSensitivity" validate:"oneof=baixa média alta" msg:"Sensibilidade ao som deve ser: baixa, média ou alta"`
    LightSensitivity string   `json:"lightSensitivity" validate:"oneof=baixa média alta" msg:"Sensibilidade à luz deve ser: baixa, média ou alta"`
    TouchSensitivity string   `json:"touchSensitivity" validate:"oneof=baixa média alta" msg:"Sensibilidade ao toque deve ser: baixa, média ou alta"`
    FoodRestrictions []string `json:"foodRestrictions" msg:"Restrições alimentares deve ser um array"`
}

func (r CreateSensoryPreference) Model() model.SensoryPreference {
    return model.SensoryPreference{
        ProfileID:        r.ProfileID,
        SoundSensitivity: model.Sensitivity(r.SoundSensitivity),
        LightSensitivity: model.Sensitivity(r.LightSensitivity),
        TouchSensitivity: model.Sensitivity(r.TouchSensitivity),
        FoodRestrictions: r.FoodRestrictions,
    }
}

type UpdateSensoryPreference struct {
    SoundSensitivity *string `json:"soundSensitivity" validate:"omitnil,oneof=baixa média alta" msg:"Sensibilidade ao som deve ser: baixa, média ou alta"`
    LightSensitivity *string `json:"lightSensitivity" validate:"omitnil,oneof=baixa média alta" msg:"Sensibilidade à luz deve ser: baixa, média ou alta"`
    TouchSensitivity *string `json:"touchSensitivity" validate:"omitnil,oneof=baixa média alta" msg:"Sensibilidade ao toque deve ser: baixa, média ou alta"`
    // nil means absent; an explicit [] clears the list.
    FoodRestrictions []string `json:"foodRestrictions" msg:"Restrições alimentares deve ser um array"`
}

func (r UpdateSensoryPreference) Apply(s *model.SensoryPreference) {
    if r.SoundSensitivity != nil {
        s.SoundSensitivity = model.Sensitivity(*r.SoundSensitivity)
    }
    if r.LightSensitivity != nil {
        s.LightSensitivity = model.Sensitivity(*r.LightSensitivity)
    }
    if r.TouchSensitivity != nil {
        s.TouchSensitivity = model.Sensitivity(*r.TouchSensitivity)
    }
    if r.FoodRestrictions != nil {
        s.FoodRestrictions = r.FoodRestrictions
    }
}
