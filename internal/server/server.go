// Package server implements the JSON-backed REST mock the rest of the
// application talks to. It is intentionally a generic per-resource store:
// no authentication, no pagination, PUT is a full replacement.
package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/recipevault/recipevault/internal/middleware"
)

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	http   *http.Server
	db     *gorm.DB
}

// NewServer creates a new server instance. rdb may be nil, in which case
// the recipe list is served straight from the database.
func NewServer(db *gorm.DB, rdb *redis.Client) *Server {
	router := gin.Default()
	router.Use(middleware.CORS())

	recipeHandler := NewRecipeHandler(db, newRecipeCache(rdb))
	userHandler := NewUserHandler(db)

	recipeHandler.RegisterRoutes(router)
	userHandler.RegisterRoutes(router)

	return &Server{
		router: router,
		db:     db,
	}
}

// Router exposes the gin engine, mainly for tests that mount the server
// on an httptest listener.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Start starts the server and blocks until it stops.
func (s *Server) Start(addr string) error {
	s.http = &http.Server{
		Addr:    addr,
		Handler: s.router,
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
