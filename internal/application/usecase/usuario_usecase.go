package usecase

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/joseeliezerr7/AppPandelpueblo/internal/application/dto"
	"github.com/joseeliezerr7/AppPandelpueblo/internal/domain"
	"github.com/joseeliezerr7/AppPandelpueblo/internal/domain/entity"
	"github.com/joseeliezerr7/AppPandelpueblo/internal/domain/repository"
)

// UsuarioUseCase administración de usuarios del sistema. Nunca expone el hash
// de contraseña y no permite que un usuario elimine su propia cuenta.
type UsuarioUseCase struct {
	usuarios repository.UsuarioRepository
	tokens   repository.TokenRepository
}

// NewUsuarioUseCase construye el caso de uso.
func NewUsuarioUseCase(usuarios repository.UsuarioRepository, tokens repository.TokenRepository) *UsuarioUseCase {
	return &UsuarioUseCase{usuarios: usuarios, tokens: tokens}
}

// Create crea un usuario con la contraseña hasheada con bcrypt.
func (uc *UsuarioUseCase) Create(_ context.Context, req dto.UsuarioRequest) (*dto.UsuarioDTO, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	permiso := req.Permiso
	if permiso == "" {
		permiso = entity.PermisoUsuario
	}
	now := time.Now()
	u := &entity.Usuario{
		Nombre:            req.Nombre,
		CorreoElectronico: req.CorreoElectronico,
		Telefono:          req.Telefono,
		PasswordHash:      string(hash),
		Permiso:           permiso,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := uc.usuarios.Create(u); err != nil {
		return nil, err
	}
	out := dto.ToUsuarioDTO(u)
	return &out, nil
}

// GetByID devuelve el usuario o nil si no existe.
func (uc *UsuarioUseCase) GetByID(id int64) (*dto.UsuarioDTO, error) {
	u, err := uc.usuarios.GetByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, nil
	}
	out := dto.ToUsuarioDTO(u)
	return &out, nil
}

// List lista todos los usuarios.
func (uc *UsuarioUseCase) List() ([]dto.UsuarioDTO, error) {
	list, err := uc.usuarios.List()
	if err != nil {
		return nil, err
	}
	return dto.ToUsuarioDTOs(list), nil
}

// Update actualiza un usuario. Password vacío conserva la contraseña actual.
func (uc *UsuarioUseCase) Update(_ context.Context, id int64, req dto.UsuarioRequest) (*dto.UsuarioDTO, error) {
	u, err := uc.usuarios.GetByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, nil
	}
	u.Nombre = req.Nombre
	u.CorreoElectronico = req.CorreoElectronico
	u.Telefono = req.Telefono
	if req.Permiso != "" {
		u.Permiso = req.Permiso
	}
	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		u.PasswordHash = string(hash)
	}
	u.UpdatedAt = time.Now()
	if err := uc.usuarios.Update(u); err != nil {
		return nil, err
	}
	out := dto.ToUsuarioDTO(u)
	return &out, nil
}

// Delete elimina un usuario y revoca sus sesiones. actorID es el usuario
// autenticado que ejecuta la operación: borrarse a sí mismo devuelve
// domain.ErrForbidden.
func (uc *UsuarioUseCase) Delete(_ context.Context, actorID, id int64) (bool, error) {
	if actorID == id {
		return false, domain.ErrForbidden
	}
	u, err := uc.usuarios.GetByID(id)
	if err != nil {
		return false, err
	}
	if u == nil {
		return false, nil
	}
	if err := uc.tokens.DeleteByUsuario(id); err != nil {
		return false, err
	}
	return true, uc.usuarios.Delete(id)
}
