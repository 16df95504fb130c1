package repository

import (
	"context"

	"github.com/Tourment0412/gestion-perfil-micro/internal/domain/model"
)

// PerfilRepository defines the storage operations for profiles, keyed by
// usuario_id.
type PerfilRepository interface {
	// FindByUsuarioID returns the profile for the given user, or a
	// PERFIL_NOT_FOUND domain error if no row exists.
	FindByUsuarioID(ctx context.Context, usuarioID string) (*model.Perfil, error)

	// FindPublicos returns all profiles with public contact info, ordered
	// by usuario_id.
	FindPublicos(ctx context.Context) ([]model.Perfil, error)

	// ExistsByUsuarioID reports whether a profile row exists for the user.
	ExistsByUsuarioID(ctx context.Context, usuarioID string) (bool, error)

	// Upsert loads the profile row for usuarioID under a row lock, creating
	// a default one when absent, applies merge to it and persists the
	// result. CreatedAt is stamped only on first persistence, UpdatedAt on
	// every write.
	Upsert(ctx context.Context, usuarioID string, merge func(*model.Perfil)) (*model.Perfil, error)

	// DeleteByUsuarioID removes the profile row unconditionally.
	DeleteByUsuarioID(ctx context.Context, usuarioID string) error
}
