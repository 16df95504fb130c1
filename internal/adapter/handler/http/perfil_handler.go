package http

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Tourment0412/gestion-perfil-micro/internal/domain/dto"
)

// PerfilUsecase defines the profile operations used by PerfilHandler.
type PerfilUsecase interface {
	Upsert(ctx context.Context, usuarioID string, req *dto.PerfilRequest) (*dto.PerfilResponse, error)
	Get(ctx context.Context, usuarioID string) (*dto.PerfilResponse, error)
	ListPublicos(ctx context.Context) ([]*dto.PerfilResponse, error)
	Delete(ctx context.Context, usuarioID string) error
}

// PerfilHandler handles profile HTTP requests
type PerfilHandler struct {
	logger  *zap.Logger
	perfils PerfilUsecase
}

// NewPerfilHandler creates a new profile handler instance
func NewPerfilHandler(logger *zap.Logger, perfils PerfilUsecase) *PerfilHandler {
	return &PerfilHandler{
		logger:  logger,
		perfils: perfils,
	}
}

// UpsertPerfil handles POST and PUT /api/v1/perfiles/:usuarioId. Both verbs
// share create-or-update semantics with a sparse merge of the payload.
func (h *PerfilHandler) UpsertPerfil(c echo.Context) error {
	usuarioID := c.Param("usuarioId")

	var req dto.PerfilRequest
	if err := c.Bind(&req); err != nil {
		h.logger.Warn("Invalid request body", zap.String("usuario_id", usuarioID), zap.Error(err))
		return echo.NewHTTPError(http.StatusBadRequest, "Cuerpo de la solicitud inválido")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	response, err := h.perfils.Upsert(c.Request().Context(), usuarioID, &req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, response)
}

// GetPerfil handles GET /api/v1/perfiles/:usuarioId
func (h *PerfilHandler) GetPerfil(c echo.Context) error {
	usuarioID := c.Param("usuarioId")

	response, err := h.perfils.Get(c.Request().Context(), usuarioID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, response)
}

// GetPerfilesPublicos handles GET /api/v1/perfiles/publicos
func (h *PerfilHandler) GetPerfilesPublicos(c echo.Context) error {
	responses, err := h.perfils.ListPublicos(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, responses)
}

// DeletePerfil handles DELETE /api/v1/perfiles/:usuarioId
func (h *PerfilHandler) DeletePerfil(c echo.Context) error {
	usuarioID := c.Param("usuarioId")

	if err := h.perfils.Delete(c.Request().Context(), usuarioID); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
