// ABOUTME: HTTP API for eventscout built on echo
// ABOUTME: POST /recommend runs the ranking pipeline; CORS restricted to an allow-list
package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/eventscout/eventscout/internal/models"
	"github.com/eventscout/eventscout/internal/recommend"
)

// invalidInputMessage is the fixed client-error message for empty input.
const invalidInputMessage = "Please provide a valid user input."

// Server provides the HTTP endpoints for eventscout.
type Server struct {
	echo   *echo.Echo
	engine *recommend.Engine
	logger *zap.Logger
	config *Config
}

// Config holds HTTP server configuration.
type Config struct {
	Host           string
	Port           int
	AllowedOrigins []string
}

// NewServer creates a new HTTP server around a ready engine.
func NewServer(engine *recommend.Engine, logger *zap.Logger, cfg *Config) (*Server, error) {
	if engine == nil {
		return nil, fmt.Errorf("engine cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger is required for request tracking and debugging")
	}
	if cfg == nil {
		cfg = &Config{
			Host:           "localhost",
			Port:           8080,
			AllowedOrigins: []string{"http://localhost:3000"},
		}
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Middleware
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType},
	}))
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			duration := time.Since(start)

			logger.Info("http request",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Int("status", c.Response().Status),
				zap.Duration("duration", duration),
				zap.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
			)

			return err
		}
	})

	s := &Server{
		echo:   e,
		engine: engine,
		logger: logger,
		config: cfg,
	}

	// Register routes
	s.registerRoutes()

	return s, nil
}

// registerRoutes sets up the HTTP endpoints.
func (s *Server) registerRoutes() {
	s.echo.GET("/health", s.handleHealth)
	s.echo.POST("/recommend", s.handleRecommend)
}

// RecommendRequest is the request body for POST /recommend.
type RecommendRequest struct {
	UserInput string `json:"user_input"`
}

// EventsResponse is the success response carrying 1-3 ranked events, each
// with every original catalog field.
type EventsResponse struct {
	Events []models.Event `json:"events"`
}

// MessageResponse is the terminal-branch response without events.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the client-error response body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse is the response body for GET /health.
type HealthResponse struct {
	Status      string `json:"status"`
	CatalogSize int    `json:"catalog_size"`
}

// handleHealth reports readiness and the catalog size.
func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{
		Status:      "ok",
		CatalogSize: s.engine.CatalogSize(),
	})
}

// handleRecommend runs the recommendation pipeline for one query.
func (s *Server) handleRecommend(c echo.Context) error {
	var req RecommendRequest
	if err := c.Bind(&req); err != nil {
		s.logger.Warn("invalid recommend request", zap.Error(err))
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: invalidInputMessage})
	}

	// Empty input is rejected before the engine can touch any provider.
	if req.UserInput == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: invalidInputMessage})
	}

	result, err := s.engine.Recommend(c.Request().Context(), req.UserInput)
	if err != nil {
		if errors.Is(err, recommend.ErrEmptyQuery) {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: invalidInputMessage})
		}
		s.logger.Error("recommendation failed", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "recommendation failed")
	}

	switch result.Outcome {
	case recommend.OutcomeNoEventsForMonth:
		return c.JSON(http.StatusOK, MessageResponse{
			Message: fmt.Sprintf("No events found for %s.", result.Context.Month),
		})
	case recommend.OutcomeNoMatches:
		return c.JSON(http.StatusOK, MessageResponse{Message: "No relevant events found."})
	default:
		events := make([]models.Event, len(result.Events))
		for i, re := range result.Events {
			events[i] = re.Event
		}
		return c.JSON(http.StatusOK, EventsResponse{Events: events})
	}
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	s.logger.Info("starting http server", zap.String("addr", addr))
	return s.echo.Start(addr)
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.echo.Shutdown(ctx)
}
