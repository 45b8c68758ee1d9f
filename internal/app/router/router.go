// Package router はHTTPルーティングとグローバルミドルウェアを組み立てます。
package router

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authhandler "wealth_backend/internal/feature/auth/transport/handler"
	contacthandler "wealth_backend/internal/feature/contact/transport/handler"
	goalshandler "wealth_backend/internal/feature/goals/transport/handler"
	projectionhandler "wealth_backend/internal/feature/projection/transport/handler"
	"wealth_backend/internal/platform/env"
	platformhandler "wealth_backend/internal/platform/http/handler"
	"wealth_backend/internal/platform/http/middleware"
)

// Config はルーターの設定です。
type Config struct {
	// BasePath prefixes every API route. Health probes stay at the root.
	BasePath    string
	CORSOrigins []string
}

// DefaultCORSOrigins はフロントエンド開発サーバーのオリジンです。
var DefaultCORSOrigins = []string{"http://localhost:3000", "http://127.0.0.1:3000"}

// LoadConfigFromEnv reads API_BASE_PATH (default /api) and CORS_ORIGINS.
func LoadConfigFromEnv() Config {
	return Config{
		BasePath:    env.String("API_BASE_PATH", "/api"),
		CORSOrigins: env.List("CORS_ORIGINS", DefaultCORSOrigins),
	}
}

// Handlers はフィーチャーごとのハンドラーです。
type Handlers struct {
	Auth       *authhandler.AuthHandler
	Projection *projectionhandler.ProjectionHandler
	Goals      *goalshandler.GoalHandler
	Contact    *contacthandler.ContactHandler
}

// Middleware はルート単位で適用するミドルウェアです。nil のものは適用しません。
type Middleware struct {
	// Auth admits only authenticated requests (jwtmw.AuthRequired).
	Auth gin.HandlerFunc
	// RateLimit guards the unauthenticated write endpoints.
	RateLimit gin.HandlerFunc
	// Ready serves /readyz.
	Ready gin.HandlerFunc
}

// NewRouter builds the gin engine.
// An empty CORSOrigins falls back to DefaultCORSOrigins.
func NewRouter(cfg Config, logger *slog.Logger, h Handlers, mw Middleware) *gin.Engine {
	origins := cfg.CORSOrigins
	if len(origins) == 0 {
		// cors.New は空のオリジン指定で panic する
		origins = DefaultCORSOrigins
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.AccessLog(logger))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.HeaderRequestID},
		ExposeHeaders:    []string{middleware.HeaderRequestID, "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// 導通確認用
	r.GET("/healthz", platformhandler.Health)
	r.HEAD("/healthz", platformhandler.Health)
	if mw.Ready != nil {
		r.GET("/readyz", mw.Ready)
	}

	api := r.Group(normalizeBasePath(cfg.BasePath))

	// 認証不要
	limited := api.Group("")
	if mw.RateLimit != nil {
		limited.Use(mw.RateLimit)
	}
	limited.POST("/auth/register", h.Auth.Register)
	limited.POST("/auth/login", h.Auth.Login)
	limited.POST("/contact", h.Contact.Submit)
	api.POST("/calculate", h.Projection.Calculate)

	// 認証必須のルート
	auth := api.Group("")
	if mw.Auth != nil {
		auth.Use(mw.Auth)
	}
	{
		auth.GET("/auth/me", h.Auth.Me)
		auth.POST("/goals", h.Goals.Create)
		auth.GET("/goals", h.Goals.List)
		auth.PUT("/goals/:id", h.Goals.Update)
		auth.DELETE("/goals/:id", h.Goals.Delete)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Not Found", "code": "NOT_FOUND"})
	})
	return r
}

// normalizeBasePath makes "", "/" and "api/" usable as group prefixes.
func normalizeBasePath(p string) string {
	p = strings.Trim(strings.TrimSpace(p), "/")
	if p == "" {
		return "/"
	}
	return "/" + p
}
