package dto

import (
	"strings"

	"github.com/joseeliezerr7/AppPandelpueblo/internal/domain/entity"
)

// UsuarioRequest body para POST/PUT /api/usuarios. Password es opcional al
// actualizar: vacío conserva la contraseña actual.
type UsuarioRequest struct {
	Nombre            string `json:"nombre"`
	CorreoElectronico string `json:"correoElectronico"`
	Telefono          string `json:"telefono"`
	Password          string `json:"password"`
	Permiso           string `json:"permiso"`
}

// Validate valida el body. requierePassword es true al crear.
func (r *UsuarioRequest) Validate(requierePassword bool) ValidationMessages {
	msgs := ValidationMessages{}
	if strings.TrimSpace(r.Nombre) == "" {
		msgs.Add("nombre", "El campo nombre es obligatorio.")
	}
	correo := strings.TrimSpace(r.CorreoElectronico)
	if correo == "" {
		msgs.Add("correoElectronico", "El campo correoElectronico es obligatorio.")
	} else if !strings.Contains(correo, "@") {
		msgs.Add("correoElectronico", "El campo correoElectronico debe ser un correo válido.")
	}
	if requierePassword && r.Password == "" {
		msgs.Add("password", "El campo password es obligatorio.")
	}
	if r.Password != "" && len(r.Password) < 6 {
		msgs.Add("password", "La contraseña debe tener al menos 6 caracteres.")
	}
	if r.Permiso != "" {
		switch r.Permiso {
		case entity.PermisoAdmin, entity.PermisoVendedor, entity.PermisoUsuario, entity.PermisoEmpleado:
		default:
			msgs.Add("permiso", "El permiso seleccionado no es válido.")
		}
	}
	return msgs
}

// UsuarioDTO representación JSON de un usuario. Nunca incluye el hash.
type UsuarioDTO struct {
	ID                int64  `json:"id"`
	Nombre            string `json:"nombre"`
	CorreoElectronico string `json:"correoElectronico"`
	Telefono          string `json:"telefono"`
	Permiso           string `json:"permiso"`
}

func ToUsuarioDTO(u *entity.Usuario) UsuarioDTO {
	return UsuarioDTO{
		ID:                u.ID,
		Nombre:            u.Nombre,
		CorreoElectronico: u.CorreoElectronico,
		Telefono:          u.Telefono,
		Permiso:           u.Permiso,
	}
}

func ToUsuarioDTOs(usuarios []*entity.Usuario) []UsuarioDTO {
	out := make([]UsuarioDTO, 0, len(usuarios))
	for _, u := range usuarios {
		out = append(out, ToUsuarioDTO(u))
	}
	return out
}
