package errors

import (
	"fmt"
)

// PerfilError represents errors raised by profile operations
type PerfilError struct {
	Type      string
	Message   string
	UsuarioID string
	Cause     error
}

func (e *PerfilError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s - %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *PerfilError) Unwrap() error {
	return e.Cause
}

// Profile error types
const (
	ErrTypePerfilNotFound = "PERFIL_NOT_FOUND"
	ErrTypeStorageFailure = "STORAGE_FAILURE"
)

// NewPerfilNotFoundError creates a new profile not found error
func NewPerfilNotFoundError(usuarioID string) *PerfilError {
	return &PerfilError{
		Type:      ErrTypePerfilNotFound,
		Message:   "Perfil no encontrado para el usuario: " + usuarioID,
		UsuarioID: usuarioID,
	}
}

// NewStorageFailureError creates a new storage failure error preserving the cause
func NewStorageFailureError(message string, cause error) *PerfilError {
	return &PerfilError{
		Type:    ErrTypeStorageFailure,
		Message: message,
		Cause:   cause,
	}
}
