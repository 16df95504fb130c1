package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	handlers "github.com/Tourment0412/gestion-perfil-micro/internal/adapter/handler/http"
	"github.com/Tourment0412/gestion-perfil-micro/internal/config"
	"github.com/Tourment0412/gestion-perfil-micro/internal/infrastructure/database"
	"github.com/Tourment0412/gestion-perfil-micro/internal/usecase"
	"github.com/Tourment0412/gestion-perfil-micro/pkg/logger"
)

type Server struct {
	config *config.Config
	logger *zap.Logger
	echo   *echo.Echo
	repos  *database.Repositories
}

func NewServer(cfg *config.Config, log *zap.Logger, repos *database.Repositories) *Server {
	e := echo.New()
	e.HideBanner = true

	e.Validator = NewRequestValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// Middleware
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(logger.NewEchoRequestLogger(log))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{cfg.Service.ClientURL},
		AllowMethods: []string{echo.GET, echo.POST, echo.PUT, echo.DELETE},
	}))

	return &Server{
		config: cfg,
		logger: log,
		echo:   e,
		repos:  repos,
	}
}

func (s *Server) Start() error {
	s.setupRoutes()

	addr := fmt.Sprintf("%s:%d", s.config.Server.HTTP.Host, s.config.Server.HTTP.Port)
	s.logger.Info("Starting HTTP server", zap.String("address", addr))

	return s.echo.Start(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func (s *Server) setupRoutes() {
	// Health check
	s.echo.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "healthy",
			"service": s.config.Service.Name,
		})
	})

	perfilService := usecase.NewPerfilService(s.repos.Perfil, s.logger)
	perfilHandler := handlers.NewPerfilHandler(s.logger, perfilService)

	// API v1 routes. The static /publicos route is registered before the
	// :usuarioId parameter routes.
	perfiles := s.echo.Group("/api/v1/perfiles")
	perfiles.GET("/publicos", perfilHandler.GetPerfilesPublicos)
	perfiles.POST("/:usuarioId", perfilHandler.UpsertPerfil)
	perfiles.PUT("/:usuarioId", perfilHandler.UpsertPerfil)
	perfiles.GET("/:usuarioId", perfilHandler.GetPerfil)
	perfiles.DELETE("/:usuarioId", perfilHandler.DeletePerfil)
}
