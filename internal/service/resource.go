package service

import (
    "context"
    "errors"
    "fmt"
    "slices"
    "time"

    "go.uber.org/zap"

    "github.com/iliyamo/autism-support-api/internal/apierr"
    "github.com/iliyamo/autism-support-api/internal/model"
    "github.com/iliyamo/autism-support-api/internal/queue"
    "github.com/iliyamo/autism-support-api/internal/repository"
)

// Rules is what distinguishes one entity kind from another.
//
// Fields:
//  Resource    – plural name used in events and logs, e.g. "routines".
//  NotFound    – message raised when an id does not resolve.
//  Deleted     – confirmation message returned by Delete.
//  Filters     – list filter keys the entity honours; others are dropped.
//  Constraints – domain rules checked on create, after the parent check.
//  Order       – optional list ordering; nil keeps insertion order.
type Rules[E any] struct {
    Resource    string
    NotFound    string
    Deleted     string
    Filters     []string
    Constraints []func(*E) error
    Order       func(a, b *E) int
}

// Confirmation is returned by a successful delete.
type Confirmation struct {
    Message string `json:"message"`
}

// Resource is the service for one entity kind.  When the entity belongs to a
// profile (implements model.Child) the profile must exist at create time.
type Resource[E any, P model.Record[E]] struct {
    repo     Repository[E]
    profiles ProfileLookup
    rules    Rules[E]
    events   EventPublisher
    log      *zap.Logger
    now      func() time.Time
}

// NewResource wires a service.  profiles may be nil for root entities and
// events may be nil to disable publishing.
func NewResource[E any, P model.Record[E]](repo Repository[E], profiles ProfileLookup, rules Rules[E], events EventPublisher, log *zap.Logger) *Resource[E, P] {
    if events == nil {
        events = queue.Nop{}
    }
    return &Resource[E, P]{
        repo:     repo,
        profiles: profiles,
        rules:    rules,
        events:   events,
        log:      log.Named(rules.Resource),
        now:      time.Now,
    }
}

// Create checks the parent profile, then the domain constraints, then
// persists.  Nothing is stored when a check fails.
func (s *Resource[E, P]) Create(ctx context.Context, rec E) (E, error) {
    var zero E
    if child, ok := any(P(&rec)).(model.Child); ok && s.profiles != nil {
        if !s.profiles.Exists(ctx, child.ProfileRef()) {
            return zero, apierr.ParentMissing(apierr.MsgProfileNotFound)
        }
    }
    for _, check := range s.rules.Constraints {
        if err := check(&rec); err != nil {
            return zero, err
        }
    }
    created, err := s.repo.Create(ctx, rec)
    if err != nil {
        return zero, fmt.Errorf("create %s: %w", s.rules.Resource, err)
    }
    s.publish(ctx, queue.ActionCreated, P(&created))
    return created, nil
}

// GetAll returns the records matching every supported filter.
func (s *Resource[E, P]) GetAll(ctx context.Context, filter map[string]string) ([]E, error) {
    supported := repository.Filter{}
    for _, k := range s.rules.Filters {
        if v, ok := filter[k]; ok && v != "" {
            supported[k] = v
        }
    }
    out, err := s.repo.FindAll(ctx, supported)
    if err != nil {
        return nil, fmt.Errorf("list %s: %w", s.rules.Resource, err)
    }
    if order := s.rules.Order; order != nil {
        slices.SortStableFunc(out, func(a, b E) int { return order(&a, &b) })
    }
    return out, nil
}

func (s *Resource[E, P]) GetByID(ctx context.Context, id string) (E, error) {
    rec, err := s.repo.FindByID(ctx, id)
    if err != nil {
        return rec, s.translate(err)
    }
    return rec, nil
}

// Update merges patch over the stored record.  The patch cannot touch the
// id, the creation time or the parent profile.
func (s *Resource[E, P]) Update(ctx context.Context, id string, patch func(*E)) (E, error) {
    updated, err := s.repo.Update(ctx, id, patch)
    if err != nil {
        return updated, s.translate(err)
    }
    s.publish(ctx, queue.ActionUpdated, P(&updated))
    return updated, nil
}

func (s *Resource[E, P]) Delete(ctx context.Context, id string) (Confirmation, error) {
    rec, err := s.repo.FindByID(ctx, id)
    if err != nil {
        return Confirmation{}, s.translate(err)
    }
    if err := s.repo.Delete(ctx, id); err != nil {
        return Confirmation{}, s.translate(err)
    }
    s.publish(ctx, queue.ActionDeleted, P(&rec))
    return Confirmation{Message: s.rules.Deleted}, nil
}

func (s *Resource[E, P]) translate(err error) error {
    switch {
    case errors.Is(err, repository.ErrNotFound):
        return apierr.NotFound(s.rules.NotFound)
    case errors.Is(err, repository.ErrImmutable):
        return fmt.Errorf("%s cannot be updated: %w", s.rules.Resource, err)
    }
    return fmt.Errorf("%s: %w", s.rules.Resource, err)
}

// publish never fails the request; a lost event is only logged.
func (s *Resource[E, P]) publish(ctx context.Context, action queue.Action, rec P) {
    ev := queue.RecordEvent{
        Resource:   s.rules.Resource,
        Action:     action,
        RecordID:   rec.Metadata().ID,
        OccurredAt: s.now().UTC(),
    }
    if child, ok := any(rec).(model.Child); ok {
        ev.ProfileID = child.ProfileRef()
    }
    if err := s.events.Publish(ctx, ev); err != nil {
        s.log.Warn("record event not published",
            zap.String("action", string(action)),
            zap.String("record_id", ev.RecordID),
            zap.Error(err))
    }
}
