package request

import "github.com/iliyamo/autism-support-api/internal/model"

// CreateMeltdown has no update counterpart: meltdowns are immutable.
type CreateMeltdown struct {
    ProfileID   string  `json:"profileId" validate:"uuid" msg:"profileId deve ser um UUID válido"`
    Trigger     string  `json:"trigger" validate:"required" msg:"Gatilho é obrigatório"`
    Description *string `json:"description" msg:"Descrição deve ser texto"`
    Intensity   *int    `json:"intensity" validate:"required,min=1,max=5" msg:"Intensidade deve estar entre 1 e 5"`
    OccurredAt  string  `json:"occurredAt" validate:"iso8601" msg:"occurredAt deve ser uma data válida"`
}

// Model assumes the payload passed validation; an unparsable OccurredAt
// becomes the zero time.
func (r CreateMeltdown) Model() model.Meltdown {
    at, _ := model.ParseTimestamp(r.OccurredAt)
    return model.Meltdown{
        ProfileID:   r.ProfileID,
        Trigger:     r.Trigger,
        Description: deref(r.Description),
        Intensity:   deref(r.Intensity),
        OccurredAt:  at,
    }
}
