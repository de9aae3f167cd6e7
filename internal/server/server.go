package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/recetario/backend/internal/api"
	"github.com/recetario/backend/internal/middleware"
	"github.com/recetario/backend/internal/service"
)

// Server assembles the gin engine and its HTTP listener.
type Server struct {
	router *gin.Engine
	http   *http.Server
}

// Options carries the wired dependencies. ImageService and the limiters are
// optional.
type Options struct {
	Catalog        *service.CatalogService
	Auth           *service.AuthService
	Images         *service.ImageService
	RatingLimiter  *middleware.RateLimiter
	CommentLimiter *middleware.RateLimiter
}

func New(opts Options) *Server {
	router := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	api.RegisterRoutes(router, opts.Catalog, opts.Auth, opts.Images, opts.RatingLimiter, opts.CommentLimiter)

	return &Server{router: router}
}

// Start begins serving on the given port and blocks until the listener
// stops.
func (s *Server) Start(port string) error {
	s.http = &http.Server{
		Addr:              ":" + port,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http != nil {
		return s.http.Shutdown(ctx)
	}
	return nil
}
