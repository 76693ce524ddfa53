package service

import (
    "go.uber.org/zap"

    "github.com/iliyamo/autism-support-api/internal/apierr"
    "github.com/iliyamo/autism-support-api/internal/model"
    "github.com/iliyamo/autism-support-api/internal/repository"
)

type (
    ProfileService           = Resource[model.Profile, *model.Profile]
    RoutineService           = Resource[model.Routine, *model.Routine]
    SensoryPreferenceService = Resource[model.SensoryPreference, *model.SensoryPreference]
    MeltdownService          = Resource[model.Meltdown, *model.Meltdown]
    ActivityService          = Resource[model.Activity, *model.Activity]
    CommunicationService     = Resource[model.CommunicationEntry, *model.CommunicationEntry]
)

const MsgIntensityRange = "Intensidade deve estar entre 1 e 5"

var byProfile = []string{"profileId"}

func NewProfileService(repo Repository[model.Profile], events EventPublisher, log *zap.Logger) *ProfileService {
    return NewResource[model.Profile](repo, nil, Rules[model.Profile]{
        Resource: "profiles",
        NotFound: apierr.MsgProfileNotFound,
        Deleted:  "Perfil excluído com sucesso",
    }, events, log)
}

func NewRoutineService(repo Repository[model.Routine], profiles ProfileLookup, events EventPublisher, log *zap.Logger) *RoutineService {
    return NewResource[model.Routine](repo, profiles, Rules[model.Routine]{
        Resource: "routines",
        NotFound: "Rotina não encontrada",
        Deleted:  "Rotina excluída com sucesso",
        Filters:  byProfile,
    }, events, log)
}

func NewSensoryPreferenceService(repo Repository[model.SensoryPreference], profiles ProfileLookup, events EventPublisher, log *zap.Logger) *SensoryPreferenceService {
    return NewResource[model.SensoryPreference](repo, profiles, Rules[model.SensoryPreference]{
        Resource: "sensory-preferences",
        NotFound: "Preferência sensorial não encontrada",
        Deleted:  "Preferência sensorial excluída com sucesso",
        Filters:  byProfile,
    }, events, log)
}

// NewMeltdownService re-checks the intensity range even though request
// validation already did; this rule is the authoritative one.
func NewMeltdownService(repo Repository[model.Meltdown], profiles ProfileLookup, events EventPublisher, log *zap.Logger) *MeltdownService {
    return NewResource[model.Meltdown](repo, profiles, Rules[model.Meltdown]{
        Resource:    "meltdowns",
        NotFound:    "Registro de crise não encontrado",
        Deleted:     "Registro de crise excluído com sucesso",
        Filters:     []string{"profileId", "startDate", "endDate"},
        Constraints: []func(*model.Meltdown) error{intensityInRange},
        Order:       model.MoreRecent,
    }, events, log)
}

func intensityInRange(m *model.Meltdown) error {
    if m.Intensity < model.MinIntensity || m.Intensity > model.MaxIntensity {
        return apierr.Constraint(MsgIntensityRange)
    }
    return nil
}

func NewActivityService(repo Repository[model.Activity], profiles ProfileLookup, events EventPublisher, log *zap.Logger) *ActivityService {
    return NewResource[model.Activity](repo, profiles, Rules[model.Activity]{
        Resource: "activities",
        NotFound: "Atividade terapêutica não encontrada",
        Deleted:  "Atividade terapêutica excluída com sucesso",
        Filters:  byProfile,
    }, events, log)
}

func NewCommunicationService(repo Repository[model.CommunicationEntry], profiles ProfileLookup, events EventPublisher, log *zap.Logger) *CommunicationService {
    return NewResource[model.CommunicationEntry](repo, profiles, Rules[model.CommunicationEntry]{
        Resource: "communication",
        NotFound: "Comunicação alternativa não encontrada",
        Deleted:  "Comunicação alternativa excluída com sucesso",
        Filters:  []string{"profileId", "category"},
    }, events, log)
}

// Services bundles every service the HTTP layer needs.
type Services struct {
    Auth               *AuthService
    Profiles           *ProfileService
    Routines           *RoutineService
    SensoryPreferences *SensoryPreferenceService
    Meltdowns          *MeltdownService
    Activities         *ActivityService
    Communication      *CommunicationService
}

// New builds all services over one store.
func New(store *repository.Store, auth AuthConfig, events EventPublisher, log *zap.Logger) *Services {
    return &Services{
        Auth:               NewAuthService(store.Users, auth, log),
        Profiles:           NewProfileService(store.Profiles, events, log),
        Routines:           NewRoutineService(store.Routines, store.Profiles, events, log),
        SensoryPreferences: NewSensoryPreferenceService(store.SensoryPreferences, store.Profiles, events, log),
        Meltdowns:          NewMeltdownService(store.Meltdowns, store.Profiles, events, log),
        Activities:         NewActivityService(store.Activities, store.Profiles, events, log),
        Communication:      NewCommunicationService(store.Communication, store.Profiles, events, log),
    }
}
