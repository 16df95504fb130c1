package dto

import (
	"time"

	"github.com/Tourment0412/gestion-perfil-micro/internal/domain/model"
)

// PerfilRequest is the partial update payload for the upsert endpoints.
// Every field is a pointer so that payload-level absence (nil) can be told
// apart from a falsy value: only non-nil fields overwrite stored state.
type PerfilRequest struct {
	URLPaginaPersonal          *string `json:"urlPaginaPersonal" validate:"omitempty,max=500"`
	Apodo                      *string `json:"apodo" validate:"omitempty,max=100"`
	InformacionContactoPublica *bool   `json:"informacionContactoPublica"`
	DireccionCorrespondencia   *string `json:"direccionCorrespondencia" validate:"omitempty,max=500"`
	Biografia                  *string `json:"biografia" validate:"omitempty,max=2000"`
	Organizacion               *string `json:"organizacion" validate:"omitempty,max=255"`
	PaisResidencia             *string `json:"paisResidencia" validate:"omitempty,max=100"`
	LinkFacebook               *string `json:"linkFacebook" validate:"omitempty,max=500"`
	LinkTwitter                *string `json:"linkTwitter" validate:"omitempty,max=500"`
	LinkLinkedIn               *string `json:"linkLinkedIn" validate:"omitempty,max=500"`
	LinkInstagram              *string `json:"linkInstagram" validate:"omitempty,max=500"`
	LinkGithub                 *string `json:"linkGithub" validate:"omitempty,max=500"`
	LinkOtraRed                *string `json:"linkOtraRed" validate:"omitempty,max=500"`
}

// PerfilResponse is the flat projection of a stored profile. Optional
// fields that were never set render as explicit nulls.
type PerfilResponse struct {
	UsuarioID                  string    `json:"usuarioId"`
	URLPaginaPersonal          *string   `json:"urlPaginaPersonal"`
	Apodo                      *string   `json:"apodo"`
	InformacionContactoPublica bool      `json:"informacionContactoPublica"`
	DireccionCorrespondencia   *string   `json:"direccionCorrespondencia"`
	Biografia                  *string   `json:"biografia"`
	Organizacion               *string   `json:"organizacion"`
	PaisResidencia             *string   `json:"paisResidencia"`
	LinkFacebook               *string   `json:"linkFacebook"`
	LinkTwitter                *string   `json:"linkTwitter"`
	LinkLinkedIn               *string   `json:"linkLinkedIn"`
	LinkInstagram              *string   `json:"linkInstagram"`
	LinkGithub                 *string   `json:"linkGithub"`
	LinkOtraRed                *string   `json:"linkOtraRed"`
	CreatedAt                  time.Time `json:"createdAt"`
	UpdatedAt                  time.Time `json:"updatedAt"`
}

// ToPerfilResponse maps a stored profile to its response shape.
func ToPerfilResponse(perfil *model.Perfil) *PerfilResponse {
	if perfil == nil {
		return nil
	}
	return &PerfilResponse{
		UsuarioID:                  perfil.UsuarioID,
		URLPaginaPersonal:          perfil.URLPaginaPersonal,
		Apodo:                      perfil.Apodo,
		InformacionContactoPublica: perfil.InformacionContactoPublica,
		DireccionCorrespondencia:   perfil.DireccionCorrespondencia,
		Biografia:                  perfil.Biografia,
		Organizacion:               perfil.Organizacion,
		PaisResidencia:             perfil.PaisResidencia,
		LinkFacebook:               perfil.LinkFacebook,
		LinkTwitter:                perfil.LinkTwitter,
		LinkLinkedIn:               perfil.LinkLinkedIn,
		LinkInstagram:              perfil.LinkInstagram,
		LinkGithub:                 perfil.LinkGithub,
		LinkOtraRed:                perfil.LinkOtraRed,
		CreatedAt:                  perfil.CreatedAt,
		UpdatedAt:                  perfil.UpdatedAt,
	}
}
