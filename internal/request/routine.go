package request

import "github.com/iliyamo/autism-support-api/internal/model"

type CreateRoutine struct {
    ProfileID   string  `json:"profileId" validate:"uuid" msg:"profileId deve ser um UUID válido"`
    Title       string  `json:"title" validate:"required" msg:"Título é obrigatório"`
    Description *string `json:"description" msg:"Descrição deve ser texto"`
    Time        *string `json:"time" validate:"omitnil,hhmm" msg:"Horário deve estar no formato HH:mm"`
    DayOfWeek   *string `json:"dayOfWeek" validate:"omitnil,oneof=segunda terça quarta quinta sexta sábado domingo" msg:"Dia da semana inválido"`
}

func (r CreateRoutine) Model() model.Routine {
    return model.Routine{
        ProfileID:   r.ProfileID,
        Title:       r.Title,
        Description: deref(r.Description),
        Time:        deref(r.Time),
        DayOfWeek:   model.DayOfWeek(deref(r.DayOfWeek)),
    }
}

// UpdateRoutine cannot move a routine to another profile.
type UpdateRoutine struct {
    Title       *string `json:"title" validate:"omitnil,required" msg:"Título não pode estar vazio"`
    Description *string `json:"description" msg:"Descrição deve ser texto"`
    Time        *string `json:"time" validate:"omitnil,hhmm" msg:"Horário deve estar no formato HH:mm"`
    DayOfWeek   *string `json:"dayOfWeek" validate:"omitnil,oneof=segunda terça quarta quinta sexta sábado domingo" msg:"Dia da semana inválido"`
}

func (r UpdateRoutine) Apply(rt *model.Routine) {
    set(&rt.Title, r.Title)
    set(&rt.Description, r.Description)
    set(&rt.Time, r.Time)
    if r.DayOfWeek != nil {
        rt.DayOfWeek = model.DayOfWeek(*r.DayOfWeek)
    }
}
