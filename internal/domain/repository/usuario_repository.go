package repository

import "github.com/joseeliezerr7/AppPandelpueblo/internal/domain/entity"

// UsuarioRepository puerto de persistencia para usuarios.
type UsuarioRepository interface {
	Create(u *entity.Usuario) error
	GetByID(id int64) (*entity.Usuario, error)
	GetByEmail(correo string) (*entity.Usuario, error)
	List() ([]*entity.Usuario, error)
	Update(u *entity.Usuario) error
	Delete(id int64) error
}

// TokenRepository puerto de persistencia para tokens de acceso (revocables).
type TokenRepository interface {
	Create(t *entity.AccessToken) error
	// Exists indica si el token sigue vivo (no revocado).
	Exists(id string) (bool, error)
	Delete(id string) error
	// DeleteByUsuario revoca todas las sesiones previas del usuario.
	DeleteByUsuario(usuarioID int64) error
}
