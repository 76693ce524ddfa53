package request

import "github.com/iliyamo/autism-support-api/internal/model"

type CreateProfile struct {
    Name          string  `json:"name" validate:"required" msg:"Nome é obrigatório"`
    Age           *int    `json:"age" validate:"required,min=0" msg:"Idade deve ser um número inteiro positivo"`
    SupportLevel  string  `json:"supportLevel" validate:"oneof=leve moderado alto" msg:"Nível de suporte deve ser: leve, moderado ou alto"`
    DiagnosisDate *string `json:"diagnosisDate" validate:"omitnil,iso8601" msg:"Data de diagnóstico deve ser uma data válida"`
    Notes         *string `json:"notes" msg:"Observações devem ser texto"`
}

func (r CreateProfile) Model() model.Profile {
    return model.Profile{
        Name:          r.Name,
        Age:           deref(r.Age),
        SupportLevel:  model.SupportLevel(r.SupportLevel),
        DiagnosisDate: deref(r.DiagnosisDate),
        Notes:         deref(r.Notes),
    }
}

type UpdateProfile struct {
    Name          *string `json:"name" validate:"omitnil,required" msg:"Nome não pode estar vazio"`
    Age           *int    `json:"age" validate:"omitnil,min=0" msg:"Idade deve ser um número inteiro positivo"`
    SupportLevel  *string `json:"supportLevel" validate:"omitnil,oneof=leve moderado alto" msg:"Nível de suporte deve ser: leve, moderado ou alto"`
    DiagnosisDate *string `json:"diagnosisDate" validate:"omitnil,iso8601" msg:"Data de diagnóstico deve ser uma data válida"`
    Notes         *string `json:"notes" msg:"Observações devem ser texto"`
}

func (r UpdateProfile) Apply(p *model.Profile) {
    set(&p.Name, r.Name)
    set(&p.Age, r.Age)
    if r.SupportLevel != nil {
        p.SupportLevel = model.SupportLevel(*r.SupportLevel)
    }
    set(&p.DiagnosisDate, r.DiagnosisDate)
    set(&p.Notes, r.Notes)
}
