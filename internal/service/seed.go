package service

import (
    "context"
    "errors"

    "go.uber.org/zap"

    "github.com/iliyamo/autism-support-api/internal/model"
    "github.com/iliyamo/autism-support-api/internal/repository"
)

const (
    AdminEmail    = "admin@autismo.com"
    AdminPassword = "123456"
    AdminName     = "Administrador"
)

// SeedAdmin creates the default administrator unless it already exists.
func SeedAdmin(ctx context.Context, users *repository.UserRepo, cost int, log *zap.Logger) error {
    if _, err := users.GetByEmail(ctx, AdminEmail); err == nil {
        return nil
    }
    u, err := users.Create(ctx, AdminEmail, AdminPassword, AdminName, model.RoleAdmin, cost)
    if errors.Is(err, repository.ErrEmailExists) {
        return nil
    }
    if err != nil {
        return err
    }
    log.Info("default admin user created", zap.String("email", u.Email), zap.String("user_id", u.ID))
    return nil
}
