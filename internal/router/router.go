package router // package router defines how HTTP routes are registered for the API

import (
    "github.com/labstack/echo/v4"
    echomw "github.com/labstack/echo/v4/middleware"
    "github.com/redis/go-redis/v9"
    "go.uber.org/zap"

    "github.com/iliyamo/autism-support-api/internal/config"
    "github.com/iliyamo/autism-support-api/internal/handler"
    "github.com/iliyamo/autism-support-api/internal/middleware"
    "github.com/iliyamo/autism-support-api/internal/model"
    "github.com/iliyamo/autism-support-api/internal/request"
    "github.com/iliyamo/autism-support-api/internal/service"
    "github.com/iliyamo/autism-support-api/internal/validation"
)

// Deps is everything the HTTP layer is assembled from.  Redis may be nil,
// which disables rate limiting.
type Deps struct {
    Config    config.Config
    RateLimit config.RateLimitConfig
    Services  *service.Services
    Redis     *redis.Client
    Log       *zap.Logger
}

// maxBody caps request payloads.
const maxBody = "1M"

// New builds the echo application: global middleware, the error handler,
// the validator and every route.
func New(d Deps) *echo.Echo {
    e := echo.New()
    e.HideBanner = true
    e.HidePort = true

    v := validation.New()
    e.Validator = v
    e.HTTPErrorHandler = handler.ErrorHandler(d.Log, d.Config.IsDevelopment())

    e.Pre(echomw.RemoveTrailingSlash())
    e.Use(middleware.RequestLogger(d.Log.Named("http")))
    e.Use(echomw.Recover())
    e.Use(echomw.CORS())
    e.Use(echomw.BodyLimit(maxBody))

    limiter := middleware.NewLimiter(d.RateLimit, d.Redis, d.Log.Named("ratelimit"))

    RegisterRoutes(e)
    RegisterAuth(e, handler.NewAuthHandler(d.Services.Auth), limiter.Middleware(middleware.ByClientIP))
    RegisterRecords(e, d.Services, v, limiter.Middleware(middleware.ByPrincipal(d.RateLimit.PerRoute)))
    return e
}

// RegisterRoutes registers the routes that need no token.
func RegisterRoutes(e *echo.Echo) {
    e.GET("/", handler.Root)
    e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the login endpoint behind limit.  Tokens are
// stateless, so there is no refresh or logout.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, limit echo.MiddlewareFunc) {
    e.POST("/auth/login", a.Login, limit)
}

// RegisterRecords registers the record collections, each behind JWTAuth and
// then limit, so limit sees the principal.  Meltdowns have no PUT: they are
// immutable once recorded.
func RegisterRecords(e *echo.Echo, s *service.Services, ids handler.IDValidator, limit echo.MiddlewareFunc) {
    auth := middleware.JWTAuth(s.Auth)

    profiles := handler.NewResource[model.Profile](s.Profiles, ids)
    crud(e.Group("/profiles", auth, limit), profiles,
        handler.Create[request.CreateProfile](profiles),
        handler.Update[request.UpdateProfile](profiles))

    routines := handler.NewResource[model.Routine](s.Routines, ids)
    crud(e.Group("/routines", auth, limit), routines,
        handler.Create[request.CreateRoutine](routines),
        handler.Update[request.UpdateRoutine](routines))

    prefs := handler.NewResource[model.SensoryPreference](s.SensoryPreferences, ids)
    crud(e.Group("/sensory-preferences", auth, limit), prefs,
        handler.Create[request.CreateSensoryPreference](prefs),
        handler.Update[request.UpdateSensoryPreference](prefs))

    meltdowns := handler.NewResource[model.Meltdown](s.Meltdowns, ids).
        WithQuery(func() handler.Query { return &request.MeltdownQuery{} })
    crud(e.Group("/meltdowns", auth, limit), meltdowns,
        handler.Create[request.CreateMeltdown](meltdowns),
        nil)

    activities := handler.NewResource[model.Activity](s.Activities, ids)
    crud(e.Group("/activities", auth, limit), activities,
        handler.Create[request.CreateActivity](activities),
        handler.Update[request.UpdateActivity](activities))

    comm := handler.NewResource[model.CommunicationEntry](s.Communication, ids)
    crud(e.Group("/communication", auth, limit), comm,
        handler.Create[request.CreateCommunication](comm),
        handler.Update[request.UpdateCommunication](comm))
}

// crud mounts the standard routes on g.  A nil update leaves PUT unrouted.
func crud[E any](g *echo.Group, h *handler.Resource[E], create, update echo.HandlerFunc) {
    g.POST("", create)
    g.GET("", h.List)
    g.GET("/:id", h.Get)
    if update != nil {
        g.PUT("/:id", update)
    }
    g.DELETE("/:id", h.Delete)
}
