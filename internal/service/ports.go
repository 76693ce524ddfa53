// Package service holds the business rules: credential issuance and the
// per-entity record services.  Services raise *apierr.Error values and never
// shape transport responses.
package service

import (
    "context"

    "github.com/iliyamo/autism-support-api/internal/queue"
    "github.com/iliyamo/autism-support-api/internal/repository"
)

// Repository is the storage contract a resource service consumes.
// *repository.Collection satisfies it.
type Repository[E any] interface {
    Create(ctx context.Context, rec E) (E, error)
    FindAll(ctx context.Context, filter repository.Filter) ([]E, error)
    FindByID(ctx context.Context, id string) (E, error)
    Update(ctx context.Context, id string, fn func(*E)) (E, error)
    Delete(ctx context.Context, id string) error
}

// ProfileLookup answers whether a parent profile exists.
type ProfileLookup interface {
    Exists(ctx context.Context, id string) bool
}

// EventPublisher receives a record event after every successful write.
type EventPublisher interface {
    Publish(ctx context.Context, ev queue.RecordEvent) error
}
