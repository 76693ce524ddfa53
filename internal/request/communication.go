package request

import "github.com/iliyamo/autism-support-api/internal/model"

type CreateCommunication struct {
    ProfileID string `json:"profileId" validate:"uuid" msg:"profileId deve ser um UUID válido"`
    Phrase    string `json:"phrase" validate:"required" msg:"Frase é obrigatória"`
    Meaning   string `json:"meaning" validate:"required" msg:"Significado é obrigatório"`
    Category  string `json:"category" validate:"oneof=necessidade emoção dor lazer" msg:"Categoria deve ser: necessidade, emoção, dor ou lazer"`
}

func (r CreateCommunication) Model() model.CommunicationEntry {
    return model.CommunicationEntry{
        ProfileID: r.ProfileID,
        Phrase:    r.Phrase,
        Meaning:   r.Meaning,
        Category:  model.Category(r.Category),
    }
}

type UpdateCommunication struct {
    Phrase   *string `json:"phrase" validate:"omitnil,required" msg:"Frase não pode estar vazia"`
    Meaning  *string `json:"meaning" validate:"omitnil,required" msg:"Significado não pode estar vazio"`
    Category *string `json:"category" validate:"omitnil,oneof=necessidade emoção dor lazer" msg:"Categoria deve ser: necessidade, emoção, dor ou lazer"`
}

func (r UpdateCommunication) Apply(c *model.CommunicationEntry) {
    set(&c.Phrase, r.Phrase)
    set(&c.Meaning, r.Meaning)
    if r.Category != nil {
        c.Category = model.Category(*r.Category)
    }
}
