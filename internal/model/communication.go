package model

// Category groups augmentative-communication phrases.
type Category string

const (
    CategoryNeed    Category = "necessidade"
    CategoryEmotion Category = "emoção"
    CategoryPain    Category = "dor"
    CategoryLeisure Category = "lazer"
)

// CommunicationEntry maps a phrase (or pictogram label) a profile uses to
// what it means.
type CommunicationEntry struct {
    Meta
    ProfileID string   `json:"profileId"`
    Phrase    string   `json:"phrase"`
    Meaning   string   `json:"meaning"`
    Category  Category `json:"category"`
}

func (c *CommunicationEntry) ProfileRef() string { return c.ProfileID }

func (c *CommunicationEntry) Matches(key, value string) bool {
    switch key {
    case "profileId":
        return c.ProfileID == value
    case "category":
        return string(c.Category) == value
    }
    return true
}
