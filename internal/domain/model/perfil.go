package model

import (
	"time"
)

// Perfil represents a user profile record. One row exists per usuario_id,
// which is supplied by the caller and never generated here.
type Perfil struct {
	UsuarioID                  string  `gorm:"column:usuario_id;primaryKey;size:255" json:"usuarioId"`
	URLPaginaPersonal          *string `gorm:"column:url_pagina_personal;size:500" json:"urlPaginaPersonal,omitempty"`
	Apodo                      *string `gorm:"column:apodo;size:100" json:"apodo,omitempty"`
	InformacionContactoPublica bool    `gorm:"column:informacion_contacto_publica;not null;default:false" json:"informacionContactoPublica"`
	DireccionCorrespondencia   *string `gorm:"column:direccion_correspondencia;size:500" json:"direccionCorrespondencia,omitempty"`
	Biografia                  *string `gorm:"column:biografia;type:text" json:"biografia,omitempty"`
	Organizacion               *string `gorm:"column:organizacion;size:255" json:"organizacion,omitempty"`
	PaisResidencia             *string `gorm:"column:pais_residencia;size:100" json:"paisResidencia,omitempty"`
	LinkFacebook               *string `gorm:"column:link_facebook;size:500" json:"linkFacebook,omitempty"`
	LinkTwitter                *string `gorm:"column:link_twitter;size:500" json:"linkTwitter,omitempty"`
	LinkLinkedIn               *string `gorm:"column:link_linkedin;size:500" json:"linkLinkedIn,omitempty"`
	LinkInstagram              *string `gorm:"column:link_instagram;size:500" json:"linkInstagram,omitempty"`
	LinkGithub                 *string `gorm:"column:link_github;size:500" json:"linkGithub,omitempty"`
	LinkOtraRed                *string `gorm:"column:link_otra_red;size:500" json:"linkOtraRed,omitempty"`

	// Timestamps are stamped explicitly by the repository, not by GORM.
	CreatedAt time.Time `gorm:"column:created_at;not null;autoCreateTime:false" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime:false" json:"updatedAt"`
}

// TableName specifies the table name for GORM
func (Perfil) TableName() string {
	return "perfiles"
}
