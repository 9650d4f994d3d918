// Package router assembles the gin engine.
package router

import (
	"log/slog"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"movie_backend/internal/app/config"
	movieshandler "movie_backend/internal/feature/movies/transport/handler"
	platformhandler "movie_backend/internal/platform/http/handler"
	"movie_backend/internal/platform/logger"
	"movie_backend/internal/platform/metrics"
)

// NewRouter registers every route of the service.
func NewRouter(cfg config.Config, log *slog.Logger, gql *movieshandler.GraphQLHandler,
	health *platformhandler.HealthHandler, m *metrics.Metrics) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), logger.Middleware(log))

	// Browser clients on the allow-listed origins only.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.Any("/healthz", health.Serve)
	r.GET("/metrics", gin.WrapH(m.Handler()))

	r.GET("/graphql", gql.Serve)
	r.POST("/graphql", gql.Serve)

	return r
}
