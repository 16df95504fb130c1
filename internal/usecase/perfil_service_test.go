package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/Tourment0412/gestion-perfil-micro/internal/domain/dto"
	domainErrors "github.com/Tourment0412/gestion-perfil-micro/internal/domain/errors"
	"github.com/Tourment0412/gestion-perfil-micro/internal/domain/model"
	"github.com/Tourment0412/gestion-perfil-micro/internal/usecase"
)

// MockPerfilRepository is a mock implementation of PerfilRepository
type MockPerfilRepository struct {
	mock.Mock
}

func (m *MockPerfilRepository) FindByUsuarioID(ctx context.Context, usuarioID string) (*model.Perfil, error) {
	args := m.Called(ctx, usuarioID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Perfil), args.Error(1)
}

func (m *MockPerfilRepository) FindPublicos(ctx context.Context) ([]model.Perfil, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Perfil), args.Error(1)
}

func (m *MockPerfilRepository) ExistsByUsuarioID(ctx context.Context, usuarioID string) (bool, error) {
	args := m.Called(ctx, usuarioID)
	return args.Bool(0), args.Error(1)
}

func (m *MockPerfilRepository) Upsert(ctx context.Context, usuarioID string, merge func(*model.Perfil)) (*model.Perfil, error) {
	args := m.Called(ctx, usuarioID, merge)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Perfil), args.Error(1)
}

func (m *MockPerfilRepository) DeleteByUsuarioID(ctx context.Context, usuarioID string) error {
	args := m.Called(ctx, usuarioID)
	return args.Error(0)
}

// applyUpsert mimics the repository upsert against the given row: it runs
// the merge closure and stamps timestamps the way the real persist does.
func applyUpsert(row *model.Perfil) func(args mock.Arguments) {
	return func(args mock.Arguments) {
		merge := args.Get(2).(func(*model.Perfil))
		merge(row)
		now := time.Now()
		if row.CreatedAt.IsZero() {
			row.CreatedAt = now
		}
		row.UpdatedAt = now
	}
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestPerfilService_Upsert(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("creates profile with supplied fields", func(t *testing.T) {
		mockRepo := new(MockPerfilRepository)
		service := usecase.NewPerfilService(mockRepo, logger)

		row := &model.Perfil{UsuarioID: "u1", InformacionContactoPublica: false}
		mockRepo.On("Upsert", ctx, "u1", mock.Anything).
			Run(applyUpsert(row)).
			Return(row, nil)

		req := &dto.PerfilRequest{
			Apodo:                      strPtr("Ana"),
			InformacionContactoPublica: boolPtr(true),
			PaisResidencia:             strPtr("Colombia"),
		}

		response, err := service.Upsert(ctx, "u1", req)

		assert.NoError(t, err)
		assert.Equal(t, "u1", response.UsuarioID)
		assert.Equal(t, "Ana", *response.Apodo)
		assert.True(t, response.InformacionContactoPublica)
		assert.Equal(t, "Colombia", *response.PaisResidencia)
		assert.Nil(t, response.Biografia)
		assert.Nil(t, response.URLPaginaPersonal)
		assert.Nil(t, response.LinkFacebook)
		assert.False(t, response.CreatedAt.IsZero())
		assert.Equal(t, response.CreatedAt, response.UpdatedAt)

		mockRepo.AssertExpectations(t)
	})

	t.Run("merge preserves fields omitted from the payload", func(t *testing.T) {
		mockRepo := new(MockPerfilRepository)
		service := usecase.NewPerfilService(mockRepo, logger)

		createdAt := time.Now().Add(-time.Hour)
		row := &model.Perfil{
			UsuarioID:                  "u1",
			Apodo:                      strPtr("Ana"),
			PaisResidencia:             strPtr("Colombia"),
			InformacionContactoPublica: true,
			CreatedAt:                  createdAt,
			UpdatedAt:                  createdAt,
		}
		mockRepo.On("Upsert", ctx, "u1", mock.Anything).
			Run(applyUpsert(row)).
			Return(row, nil)

		response, err := service.Upsert(ctx, "u1", &dto.PerfilRequest{
			Biografia: strPtr("Hello"),
		})

		assert.NoError(t, err)
		assert.Equal(t, "Ana", *response.Apodo)
		assert.Equal(t, "Colombia", *response.PaisResidencia)
		assert.Equal(t, "Hello", *response.Biografia)
		assert.True(t, response.InformacionContactoPublica)
		assert.Equal(t, createdAt, response.CreatedAt)
		assert.True(t, response.UpdatedAt.After(createdAt))

		mockRepo.AssertExpectations(t)
	})

	t.Run("explicit false overwrites stored true", func(t *testing.T) {
		mockRepo := new(MockPerfilRepository)
		service := usecase.NewPerfilService(mockRepo, logger)

		row := &model.Perfil{
			UsuarioID:                  "u1",
			InformacionContactoPublica: true,
			CreatedAt:                  time.Now().Add(-time.Hour),
		}
		mockRepo.On("Upsert", ctx, "u1", mock.Anything).
			Run(applyUpsert(row)).
			Return(row, nil)

		response, err := service.Upsert(ctx, "u1", &dto.PerfilRequest{
			InformacionContactoPublica: boolPtr(false),
		})

		assert.NoError(t, err)
		assert.False(t, response.InformacionContactoPublica)
	})

	t.Run("empty payload still creates default profile", func(t *testing.T) {
		mockRepo := new(MockPerfilRepository)
		service := usecase.NewPerfilService(mockRepo, logger)

		row := &model.Perfil{UsuarioID: "u9", InformacionContactoPublica: false}
		mockRepo.On("Upsert", ctx, "u9", mock.Anything).
			Run(applyUpsert(row)).
			Return(row, nil)

		response, err := service.Upsert(ctx, "u9", &dto.PerfilRequest{})

		assert.NoError(t, err)
		assert.Equal(t, "u9", response.UsuarioID)
		assert.False(t, response.InformacionContactoPublica)
		assert.Nil(t, response.Apodo)
		assert.Nil(t, response.Biografia)
		assert.Equal(t, response.CreatedAt, response.UpdatedAt)
	})

	t.Run("storage fault is wrapped", func(t *testing.T) {
		mockRepo := new(MockPerfilRepository)
		service := usecase.NewPerfilService(mockRepo, logger)

		mockRepo.On("Upsert", ctx, "u1", mock.Anything).
			Return(nil, errors.New("connection reset"))

		response, err := service.Upsert(ctx, "u1", &dto.PerfilRequest{})

		assert.Nil(t, response)
		var perfilErr *domainErrors.PerfilError
		assert.ErrorAs(t, err, &perfilErr)
		assert.Equal(t, domainErrors.ErrTypeStorageFailure, perfilErr.Type)
		assert.Contains(t, perfilErr.Error(), "connection reset")
	})
}

func TestPerfilService_Get(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("returns mapped profile", func(t *testing.T) {
		mockRepo := new(MockPerfilRepository)
		service := usecase.NewPerfilService(mockRepo, logger)

		now := time.Now()
		mockRepo.On("FindByUsuarioID", ctx, "u1").Return(&model.Perfil{
			UsuarioID: "u1",
			Apodo:     strPtr("Ana"),
			CreatedAt: now,
			UpdatedAt: now,
		}, nil)

		response, err := service.Get(ctx, "u1")

		assert.NoError(t, err)
		assert.Equal(t, "u1", response.UsuarioID)
		assert.Equal(t, "Ana", *response.Apodo)
	})

	t.Run("propagates not found with identifier in message", func(t *testing.T) {
		mockRepo := new(MockPerfilRepository)
		service := usecase.NewPerfilService(mockRepo, logger)

		mockRepo.On("FindByUsuarioID", ctx, "missing").
			Return(nil, domainErrors.NewPerfilNotFoundError("missing"))

		response, err := service.Get(ctx, "missing")

		assert.Nil(t, response)
		var perfilErr *domainErrors.PerfilError
		assert.ErrorAs(t, err, &perfilErr)
		assert.Equal(t, domainErrors.ErrTypePerfilNotFound, perfilErr.Type)
		assert.Contains(t, perfilErr.Message, "missing")
	})
}

func TestPerfilService_ListPublicos(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("maps every public profile", func(t *testing.T) {
		mockRepo := new(MockPerfilRepository)
		service := usecase.NewPerfilService(mockRepo, logger)

		mockRepo.On("FindPublicos", ctx).Return([]model.Perfil{
			{UsuarioID: "a1", InformacionContactoPublica: true},
			{UsuarioID: "b2", InformacionContactoPublica: true},
		}, nil)

		responses, err := service.ListPublicos(ctx)

		assert.NoError(t, err)
		assert.Len(t, responses, 2)
		assert.Equal(t, "a1", responses[0].UsuarioID)
		assert.Equal(t, "b2", responses[1].UsuarioID)
	})

	t.Run("returns empty slice when none are public", func(t *testing.T) {
		mockRepo := new(MockPerfilRepository)
		service := usecase.NewPerfilService(mockRepo, logger)

		mockRepo.On("FindPublicos", ctx).Return([]model.Perfil{}, nil)

		responses, err := service.ListPublicos(ctx)

		assert.NoError(t, err)
		assert.NotNil(t, responses)
		assert.Empty(t, responses)
	})
}

func TestPerfilService_Delete(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("deletes existing profile", func(t *testing.T) {
		mockRepo := new(MockPerfilRepository)
		service := usecase.NewPerfilService(mockRepo, logger)

		mockRepo.On("ExistsByUsuarioID", ctx, "u1").Return(true, nil)
		mockRepo.On("DeleteByUsuarioID", ctx, "u1").Return(nil)

		err := service.Delete(ctx, "u1")

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("not found when no profile exists", func(t *testing.T) {
		mockRepo := new(MockPerfilRepository)
		service := usecase.NewPerfilService(mockRepo, logger)

		mockRepo.On("ExistsByUsuarioID", ctx, "ghost").Return(false, nil)

		err := service.Delete(ctx, "ghost")

		var perfilErr *domainErrors.PerfilError
		assert.ErrorAs(t, err, &perfilErr)
		assert.Equal(t, domainErrors.ErrTypePerfilNotFound, perfilErr.Type)
		mockRepo.AssertNotCalled(t, "DeleteByUsuarioID", ctx, "ghost")
	})

	t.Run("unexpected delete fault preserves the cause", func(t *testing.T) {
		mockRepo := new(MockPerfilRepository)
		service := usecase.NewPerfilService(mockRepo, logger)

		mockRepo.On("ExistsByUsuarioID", ctx, "u1").Return(true, nil)
		mockRepo.On("DeleteByUsuarioID", ctx, "u1").Return(errors.New("disk full"))

		err := service.Delete(ctx, "u1")

		var perfilErr *domainErrors.PerfilError
		assert.ErrorAs(t, err, &perfilErr)
		assert.Equal(t, domainErrors.ErrTypeStorageFailure, perfilErr.Type)
		assert.Contains(t, perfilErr.Message, "disk full")
	})
}
