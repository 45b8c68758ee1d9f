package di

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"wealth_backend/internal/app/router"
	authadapters "wealth_backend/internal/feature/auth/adapters"
	authhandler "wealth_backend/internal/feature/auth/transport/handler"
	authusecase "wealth_backend/internal/feature/auth/usecase"
	contactadapters "wealth_backend/internal/feature/contact/adapters"
	contacthandler "wealth_backend/internal/feature/contact/transport/handler"
	contactusecase "wealth_backend/internal/feature/contact/usecase"
	goalshandler "wealth_backend/internal/feature/goals/transport/handler"
	goalsusecase "wealth_backend/internal/feature/goals/usecase"
	projectionhandler "wealth_backend/internal/feature/projection/transport/handler"
	projectionusecase "wealth_backend/internal/feature/projection/usecase"
	platformhandler "wealth_backend/internal/platform/http/handler"
	jwtmw "wealth_backend/internal/platform/jwt"
	"wealth_backend/internal/platform/messaging"
	"wealth_backend/internal/platform/ratelimit"
)

// Deps are the long-lived resources opened by main.
type Deps struct {
	Logger *slog.Logger
	DB     *gorm.DB
	// Redis is optional; nil disables the goal list cache and rate limiting.
	Redis *redis.Client
	// Publisher is optional; nil disables contact notifications.
	Publisher *messaging.RabbitPublisher

	Router        router.Config
	JWT           jwtmw.Config
	RateLimit     ratelimit.Config
	GoalsCacheTTL time.Duration
}

// NewEngine wires repositories, usecases and handlers into a gin engine.
func NewEngine(d Deps) (*gin.Engine, error) {
	if d.JWT.Secret == "" {
		return nil, fmt.Errorf("%s is required", jwtmw.EnvKeyJWTSecret)
	}
	sqlDB, err := d.DB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	logger := d.Logger
	if logger == nil {
		logger = slog.Default()
	}

	// Token
	tokens := jwtmw.NewManager(d.JWT.Secret, d.JWT.TTL)

	// Repository
	userRepo := authadapters.NewUserGorm(d.DB)
	goalRepo := NewGoalRepository(d.Redis, d.DB, d.GoalsCacheTTL)
	contactRepo := contactadapters.NewContactGorm(d.DB)

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, tokens)
	goalsUC := goalsusecase.NewGoalUsecase(goalRepo)
	contactUC := contactusecase.NewContactUsecase(contactRepo, NewContactNotifier(d.Publisher))
	projectionUC := projectionusecase.NewProjectionUsecase()

	// Handler
	handlers := router.Handlers{
		Auth:       authhandler.NewAuthHandler(authUC),
		Projection: projectionhandler.NewProjectionHandler(projectionUC),
		Goals:      goalshandler.NewGoalHandler(goalsUC),
		Contact:    contacthandler.NewContactHandler(contactUC),
	}
	mw := router.Middleware{
		Auth:      jwtmw.AuthRequired(tokens, authUC),
		RateLimit: ratelimit.Middleware(d.Redis, d.RateLimit, ratelimit.KeyByIPAndPath()),
		Ready:     platformhandler.Ready(sqlDB),
	}
	return router.NewRouter(d.Router, logger, handlers, mw), nil
}
