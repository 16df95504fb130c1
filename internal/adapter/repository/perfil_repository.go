package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domainErrors "github.com/Tourment0412/gestion-perfil-micro/internal/domain/errors"
	"github.com/Tourment0412/gestion-perfil-micro/internal/domain/model"
	domainRepo "github.com/Tourment0412/gestion-perfil-micro/internal/domain/repository"
)

type perfilRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewPerfilRepository creates a new profile repository backed by GORM
func NewPerfilRepository(db *gorm.DB, logger *zap.Logger) domainRepo.PerfilRepository {
	return &perfilRepository{
		db:     db,
		logger: logger,
	}
}

// FindByUsuarioID retrieves the profile for the given user
func (r *perfilRepository) FindByUsuarioID(ctx context.Context, usuarioID string) (*model.Perfil, error) {
	var perfil model.Perfil

	err := r.db.WithContext(ctx).
		Where("usuario_id = ?", usuarioID).
		First(&perfil).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainErrors.NewPerfilNotFoundError(usuarioID)
		}
		r.logger.Error("Failed to find perfil", zap.String("usuario_id", usuarioID), zap.Error(err))
		return nil, fmt.Errorf("failed to find perfil: %w", err)
	}

	return &perfil, nil
}

// FindPublicos retrieves all profiles whose contact info is public,
// ordered by usuario_id for deterministic responses.
func (r *perfilRepository) FindPublicos(ctx context.Context) ([]model.Perfil, error) {
	var perfiles []model.Perfil

	err := r.db.WithContext(ctx).
		Where("informacion_contacto_publica = ?", true).
		Order("usuario_id ASC").
		Find(&perfiles).Error

	if err != nil {
		r.logger.Error("Failed to list public perfiles", zap.Error(err))
		return nil, fmt.Errorf("failed to list public perfiles: %w", err)
	}

	return perfiles, nil
}

// ExistsByUsuarioID reports whether a profile row exists for the user
func (r *perfilRepository) ExistsByUsuarioID(ctx context.Context, usuarioID string) (bool, error) {
	var count int64

	err := r.db.WithContext(ctx).
		Model(&model.Perfil{}).
		Where("usuario_id = ?", usuarioID).
		Count(&count).Error

	if err != nil {
		r.logger.Error("Failed to check perfil existence", zap.String("usuario_id", usuarioID), zap.Error(err))
		return false, fmt.Errorf("failed to check perfil existence: %w", err)
	}

	return count > 0, nil
}

// Upsert loads the row for usuarioID under a FOR UPDATE lock so concurrent
// upserts to the same user serialize, creates a default profile when the
// row is absent, applies merge and persists the result. CreatedAt is set
// only on first persistence; UpdatedAt is refreshed on every write.
func (r *perfilRepository) Upsert(ctx context.Context, usuarioID string, merge func(*model.Perfil)) (*model.Perfil, error) {
	var perfil model.Perfil

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		exists := true
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("usuario_id = ?", usuarioID).
			First(&perfil).Error
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			exists = false
			perfil = model.Perfil{
				UsuarioID:                  usuarioID,
				InformacionContactoPublica: false,
			}
		}

		if merge != nil {
			merge(&perfil)
		}

		now := time.Now()
		if perfil.CreatedAt.IsZero() {
			perfil.CreatedAt = now
		}
		perfil.UpdatedAt = now

		if exists {
			return tx.Save(&perfil).Error
		}
		return tx.Create(&perfil).Error
	})

	if err != nil {
		r.logger.Error("Failed to upsert perfil", zap.String("usuario_id", usuarioID), zap.Error(err))
		return nil, fmt.Errorf("failed to upsert perfil: %w", err)
	}

	return &perfil, nil
}

// DeleteByUsuarioID removes the profile row unconditionally
func (r *perfilRepository) DeleteByUsuarioID(ctx context.Context, usuarioID string) error {
	err := r.db.WithContext(ctx).
		Where("usuario_id = ?", usuarioID).
		Delete(&model.Perfil{}).Error

	if err != nil {
		r.logger.Error("Failed to delete perfil", zap.String("usuario_id", usuarioID), zap.Error(err))
		return fmt.Errorf("failed to delete perfil: %w", err)
	}

	return nil
}
