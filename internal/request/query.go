package request

// ListQuery holds the list filters shared by every collection.  Each
// resource only honours the keys it supports; the rest are ignored.
type ListQuery struct {
    ProfileID string `query:"profileId" json:"profileId"`
    Category  string `query:"category" json:"category"`
}

// Filter returns the non-empty criteria keyed by their query names.
func (q *ListQuery) Filter() map[string]string {
    return nonEmpty(map[string]string{
        "profileId": q.ProfileID,
        "category":  q.Category,
    })
}

// MeltdownQuery adds the inclusive occurredAt bounds.  Only meltdown lists
// check their format.
type MeltdownQuery struct {
    ProfileID string `query:"profileId" json:"profileId"`
    StartDate string `query:"startDate" json:"startDate" validate:"omitempty,iso8601" msg:"startDate deve ser uma data válida"`
    EndDate   string `query:"endDate" json:"endDate" validate:"omitempty,iso8601" msg:"endDate deve ser uma data válida"`
}

func (q *MeltdownQuery) Filter() map[string]string {
    return nonEmpty(map[string]string{
        "profileId": q.ProfileID,
        "startDate": q.StartDate,
        "endDate":   q.EndDate,
    })
}

func nonEmpty(in map[string]string) map[string]string {
    for k, v := range in {
        if v == "" {
            delete(in, k)
        }
    }
    return in
}
