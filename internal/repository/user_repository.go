package repository

import (
    "context"
    "strings"
    "sync"

    "github.com/iliyamo/autism-support-api/internal/model"
    "github.com/iliyamo/autism-support-api/internal/utils"
)

// UserRepo stores login principals.  Users are immutable once created.
type UserRepo struct {
    mu    sync.Mutex // serialises the uniqueness check with the insert
    users *Collection[model.User, *model.User]
}

func NewUserRepo(opts ...Option) *UserRepo {
    return &UserRepo{users: NewCollection[model.User](append(opts, Immutable())...)}
}

// Create hashes password and inserts a user under the normalised email.
func (r *UserRepo) Create(ctx context.Context, email, password, name, role string, cost int) (model.User, error) {
    email = normalizeEmail(email)
    hash, err := utils.HashPassword(password, cost)
    if err != nil {
        return model.User{}, err
    }

    r.mu.Lock()
    defer r.mu.Unlock()
    existing, err := r.users.FindAll(ctx, Filter{"email": email})
    if err != nil {
        return model.User{}, err
    }
    if len(existing) > 0 {
        return model.User{}, ErrEmailExists
    }
    return r.users.Create(ctx, model.User{Email: email, PasswordHash: hash, Name: name, Role: role})
}

// GetByEmail fetches a user by normalised email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (model.User, error) {
    found, err := r.users.FindAll(ctx, Filter{"email": normalizeEmail(email)})
    if err != nil {
        return model.User{}, err
    }
    if len(found) == 0 {
        return model.User{}, ErrNotFound
    }
    return found[0], nil
}

// GetByID fetches a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id string) (model.User, error) {
    return r.users.FindByID(ctx, id)
}

func normalizeEmail(email string) string {
    return strings.ToLower(strings.TrimSpace(email))
}
