package usecase

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/Tourment0412/gestion-perfil-micro/internal/domain/dto"
	domainErrors "github.com/Tourment0412/gestion-perfil-micro/internal/domain/errors"
	"github.com/Tourment0412/gestion-perfil-micro/internal/domain/model"
	domainRepo "github.com/Tourment0412/gestion-perfil-micro/internal/domain/repository"
)

// PerfilService orchestrates profile reads and writes
type PerfilService struct {
	repo   domainRepo.PerfilRepository
	logger *zap.Logger
}

// NewPerfilService creates a new profile service instance
func NewPerfilService(repo domainRepo.PerfilRepository, logger *zap.Logger) *PerfilService {
	return &PerfilService{
		repo:   repo,
		logger: logger,
	}
}

// Upsert creates the profile for usuarioID if absent and merges the request
// into it. Only fields present in the payload overwrite stored state;
// omitted (nil) fields are preserved. An empty payload against an absent
// user still creates a profile with just the identifier and the default
// visibility flag.
func (s *PerfilService) Upsert(ctx context.Context, usuarioID string, req *dto.PerfilRequest) (*dto.PerfilResponse, error) {
	s.logger.Info("Creating or updating perfil", zap.String("usuario_id", usuarioID))

	perfil, err := s.repo.Upsert(ctx, usuarioID, func(p *model.Perfil) {
		applyRequest(p, req)
	})
	if err != nil {
		return nil, domainErrors.NewStorageFailureError("Error al guardar perfil", err)
	}

	s.logger.Info("Perfil saved", zap.String("usuario_id", usuarioID))
	return dto.ToPerfilResponse(perfil), nil
}

// Get returns the profile for usuarioID, or a PERFIL_NOT_FOUND error naming
// the identifier.
func (s *PerfilService) Get(ctx context.Context, usuarioID string) (*dto.PerfilResponse, error) {
	perfil, err := s.repo.FindByUsuarioID(ctx, usuarioID)
	if err != nil {
		var perfilErr *domainErrors.PerfilError
		if errors.As(err, &perfilErr) {
			s.logger.Warn("Perfil not found", zap.String("usuario_id", usuarioID))
			return nil, err
		}
		return nil, domainErrors.NewStorageFailureError("Error al consultar perfil", err)
	}

	return dto.ToPerfilResponse(perfil), nil
}

// ListPublicos returns every profile whose contact info is public, in
// usuario_id order.
func (s *PerfilService) ListPublicos(ctx context.Context) ([]*dto.PerfilResponse, error) {
	s.logger.Info("Listing public perfiles")

	perfiles, err := s.repo.FindPublicos(ctx)
	if err != nil {
		return nil, domainErrors.NewStorageFailureError("Error al consultar perfiles publicos", err)
	}

	responses := make([]*dto.PerfilResponse, 0, len(perfiles))
	for i := range perfiles {
		responses = append(responses, dto.ToPerfilResponse(&perfiles[i]))
	}

	return responses, nil
}

// Delete removes the profile for usuarioID. Returns PERFIL_NOT_FOUND when no
// profile exists; unexpected storage faults are wrapped with their cause.
func (s *PerfilService) Delete(ctx context.Context, usuarioID string) error {
	s.logger.Info("Deleting perfil", zap.String("usuario_id", usuarioID))

	exists, err := s.repo.ExistsByUsuarioID(ctx, usuarioID)
	if err != nil {
		return domainErrors.NewStorageFailureError("Error al consultar perfil", err)
	}
	if !exists {
		s.logger.Warn("Perfil not found for delete", zap.String("usuario_id", usuarioID))
		return domainErrors.NewPerfilNotFoundError(usuarioID)
	}

	if err := s.repo.DeleteByUsuarioID(ctx, usuarioID); err != nil {
		s.logger.Error("Failed to delete perfil", zap.String("usuario_id", usuarioID), zap.Error(err))
		return domainErrors.NewStorageFailureError("Error al eliminar perfil: "+err.Error(), err)
	}

	s.logger.Info("Perfil deleted", zap.String("usuario_id", usuarioID))
	return nil
}

// applyRequest copies every field the payload explicitly supplies onto the
// profile. Nil pointers are payload-level absence and leave the stored
// value untouched; explicit falsy values (such as an explicit false for the
// visibility flag) do overwrite.
func applyRequest(perfil *model.Perfil, req *dto.PerfilRequest) {
	if req == nil {
		return
	}
	if req.URLPaginaPersonal != nil {
		perfil.URLPaginaPersonal = req.URLPaginaPersonal
	}
	if req.Apodo != nil {
		perfil.Apodo = req.Apodo
	}
	if req.InformacionContactoPublica != nil {
		perfil.InformacionContactoPublica = *req.InformacionContactoPublica
	}
	if req.DireccionCorrespondencia != nil {
		perfil.DireccionCorrespondencia = req.DireccionCorrespondencia
	}
	if req.Biografia != nil {
		perfil.Biografia = req.Biografia
	}
	if req.Organizacion != nil {
		perfil.Organizacion = req.Organizacion
	}
	if req.PaisResidencia != nil {
		perfil.PaisResidencia = req.PaisResidencia
	}
	if req.LinkFacebook != nil {
		perfil.LinkFacebook = req.LinkFacebook
	}
	if req.LinkTwitter != nil {
		perfil.LinkTwitter = req.LinkTwitter
	}
	if req.LinkLinkedIn != nil {
		perfil.LinkLinkedIn = req.LinkLinkedIn
	}
	if req.LinkInstagram != nil {
		perfil.LinkInstagram = req.LinkInstagram
	}
	if req.LinkGithub != nil {
		perfil.LinkGithub = req.LinkGithub
	}
	if req.LinkOtraRed != nil {
		perfil.LinkOtraRed = req.LinkOtraRed
	}
}
