package database

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Tourment0412/gestion-perfil-micro/internal/adapter/repository"
	domainRepo "github.com/Tourment0412/gestion-perfil-micro/internal/domain/repository"
)

// Repositories holds all repository instances
type Repositories struct {
	Perfil domainRepo.PerfilRepository
}

// NewRepositories creates new repository instances with database connection
func NewRepositories(db *gorm.DB, logger *zap.Logger) *Repositories {
	return &Repositories{
		Perfil: repository.NewPerfilRepository(db, logger),
	}
}
