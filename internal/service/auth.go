package service

import (
    "context"
    "errors"
    "time"

    "go.uber.org/zap"

    "github.com/iliyamo/autism-support-api/internal/apierr"
    "github.com/iliyamo/autism-support-api/internal/model"
    "github.com/iliyamo/autism-support-api/internal/repository"
    "github.com/iliyamo/autism-support-api/internal/utils"
)

// UserFinder is the subset of the user repository login needs.
type UserFinder interface {
    GetByEmail(ctx context.Context, email string) (model.User, error)
}

type AuthConfig struct {
    Secret string
    TTL    time.Duration
}

// AuthService issues and verifies stateless session tokens.  There is no
// session registry: expiry is the only way a token stops working.
type AuthService struct {
    users UserFinder
    cfg   AuthConfig
    log   *zap.Logger
    now   func() time.Time
}

func NewAuthService(users UserFinder, cfg AuthConfig, log *zap.Logger) *AuthService {
    return &AuthService{users: users, cfg: cfg, log: log.Named("auth"), now: time.Now}
}

// Login checks email and password and returns "Bearer <jwt>".  An unknown
// email and a wrong password fail the same way.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
    u, err := s.users.GetByEmail(ctx, email)
    if errors.Is(err, repository.ErrNotFound) {
        return "", apierr.Credentials()
    }
    if err != nil {
        return "", err
    }
    if !utils.VerifyPassword(u.PasswordHash, password) {
        s.log.Debug("password mismatch", zap.String("user_id", u.ID))
        return "", apierr.Credentials()
    }

    tok, err := utils.NewAccessToken(s.cfg.Secret, u.ID, u.Email, s.cfg.TTL, s.now())
    if err != nil {
        return "", err
    }
    return utils.BearerPrefix + tok.Token, nil
}

// Verify validates a raw token (without the Bearer prefix) and returns its
// claims.
func (s *AuthService) Verify(raw string) (*utils.Claims, error) {
    claims, err := utils.ParseAccessToken(s.cfg.Secret, raw)
    if err != nil {
        return nil, apierr.Token(apierr.MsgInvalidToken, err)
    }
    return claims, nil
}
