package request

import "github.com/iliyamo/autism-support-api/internal/model"

type CreateActivity struct {
    ProfileID       string  `json:"profileId" validate:"uuid" msg:"profileId deve ser um UUID válido"`
    Name            string  `json:"name" validate:"required" msg:"Nome é obrigatório"`
    Objective       *string `json:"objective" msg:"Objetivo deve ser texto"`
    DurationMinutes *int    `json:"durationMinutes" validate:"required,min=1" msg:"Duração deve ser um número inteiro positivo"`
    Professional    *string `json:"professional" msg:"Profissional deve ser texto"`
}

func (r CreateActivity) Model() model.Activity {
    return model.Activity{
        ProfileID:       r.ProfileID,
        Name:            r.Name,
        Objective:       deref(r.Objective),
        DurationMinutes: deref(r.DurationMinutes),
        Professional:    deref(r.Professional),
    }
}

type UpdateActivity struct {
    Name            *string `json:"name" validate:"omitnil,required" msg:"Nome não pode estar vazio"`
    Objective       *string `json:"objective" msg:"Objetivo deve ser texto"`
    DurationMinutes *int    `json:"durationMinutes" validate:"omitnil,min=1" msg:"Duração deve ser um número inteiro positivo"`
    Professional    *string `json:"professional" msg:"Profissional deve ser texto"`
}

func (r UpdateActivity) Apply(a *model.Activity) {
    set(&a.Name, r.Name)
    set(&a.Objective, r.Objective)
    set(&a.DurationMinutes, r.DurationMinutes)
    set(&a.Professional, r.Professional)
}
