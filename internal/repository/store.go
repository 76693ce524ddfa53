package repository

import "github.com/iliyamo/autism-support-api/internal/model"

type (
    ProfileRepo           = Collection[model.Profile, *model.Profile]
    RoutineRepo           = Collection[model.Routine, *model.Routine]
    SensoryPreferenceRepo = Collection[model.SensoryPreference, *model.SensoryPreference]
    MeltdownRepo          = Collection[model.Meltdown, *model.Meltdown]
    ActivityRepo          = Collection[model.Activity, *model.Activity]
    CommunicationRepo     = Collection[model.CommunicationEntry, *model.CommunicationEntry]
)

// Store groups one collection per entity kind.  It is built once at process
// start and passed to the services that need it; Reset exists for test
// harnesses only.
type Store struct {
    Users              *UserRepo
    Profiles           *ProfileRepo
    Routines           *RoutineRepo
    SensoryPreferences *SensoryPreferenceRepo
    Meltdowns          *MeltdownRepo
    Activities         *ActivityRepo
    Communication      *CommunicationRepo
}

// NewStore returns an empty store.  opts apply to every collection.
func NewStore(opts ...Option) *Store {
    return &Store{
        Users:              NewUserRepo(opts...),
        Profiles:           NewCollection[model.Profile](opts...),
        Routines:           NewCollection[model.Routine](opts...),
        SensoryPreferences: NewCollection[model.SensoryPreference](opts...),
        Meltdowns:          NewCollection[model.Meltdown](append(opts, Immutable())...),
        Activities:         NewCollection[model.Activity](opts...),
        Communication:      NewCollection[model.CommunicationEntry](opts...),
    }
}

// Reset empties every collection, users included.
func (s *Store) Reset() {
    s.Users.users.Reset()
    s.Profiles.Reset()
    s.Routines.Reset()
    s.SensoryPreferences.Reset()
    s.Meltdowns.Reset()
    s.Activities.Reset()
    s.Communication.Reset()
}
