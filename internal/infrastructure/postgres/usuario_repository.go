package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/joseeliezerr7/AppPandelpueblo/internal/domain"
	"github.com/joseeliezerr7/AppPandelpueblo/internal/domain/entity"
	"github.com/joseeliezerr7/AppPandelpueblo/internal/domain/repository"
)

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)
var _ repository.TokenRepository = (*TokenRepo)(nil)

// UsuarioRepo implementación de UsuarioRepository sobre PostgreSQL.
type UsuarioRepo struct {
	q Querier
}

// NewUsuarioRepository construye el adaptador. Pasar pool o tx (Querier).
func NewUsuarioRepository(q Querier) *UsuarioRepo {
	return &UsuarioRepo{q: q}
}

const usuarioColumns = `id, nombre, correo_electronico, telefono, password_hash, permiso, created_at, updated_at`

// Create persiste un usuario. El correo es único: una violación devuelve
// domain.ErrEmailAlreadyExists.
func (r *UsuarioRepo) Create(u *entity.Usuario) error {
	query := `
		INSERT INTO usuarios (nombre, correo_electronico, telefono, password_hash, permiso, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		u.Nombre, u.CorreoElectronico, u.Telefono, u.PasswordHash, u.Permiso, u.CreatedAt, u.UpdatedAt,
	).Scan(&u.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert usuario: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID.
func (r *UsuarioRepo) GetByID(id int64) (*entity.Usuario, error) {
	query := `SELECT ` + usuarioColumns + ` FROM usuarios WHERE id = $1`
	return r.queryOne(query, id)
}

// GetByEmail obtiene un usuario por correo electrónico.
func (r *UsuarioRepo) GetByEmail(correo string) (*entity.Usuario, error) {
	query := `SELECT ` + usuarioColumns + ` FROM usuarios WHERE correo_electronico = $1`
	return r.queryOne(query, correo)
}

func (r *UsuarioRepo) queryOne(query string, args ...any) (*entity.Usuario, error) {
	var u entity.Usuario
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&u.ID, &u.Nombre, &u.CorreoElectronico, &u.Telefono, &u.PasswordHash, &u.Permiso,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario: %w", err)
	}
	return &u, nil
}

// List lista usuarios ordenados por nombre.
func (r *UsuarioRepo) List() ([]*entity.Usuario, error) {
	query := `SELECT ` + usuarioColumns + ` FROM usuarios ORDER BY nombre ASC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list usuarios: %w", err)
	}
	defer rows.Close()
	var list []*entity.Usuario
	for rows.Next() {
		var u entity.Usuario
		if err := rows.Scan(&u.ID, &u.Nombre, &u.CorreoElectronico, &u.Telefono,
			&u.PasswordHash, &u.Permiso, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan usuario: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

// Update actualiza un usuario existente (incluye el hash si cambió la contraseña).
func (r *UsuarioRepo) Update(u *entity.Usuario) error {
	query := `
		UPDATE usuarios
		SET nombre = $2, correo_electronico = $3, telefono = $4, password_hash = $5, permiso = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		u.ID, u.Nombre, u.CorreoElectronico, u.Telefono, u.PasswordHash, u.Permiso, u.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("update usuario: %w", err)
	}
	return nil
}

// Delete elimina un usuario y sus tokens (ON DELETE CASCADE en access_tokens).
func (r *UsuarioRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM usuarios WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete usuario: %w", err)
	}
	return nil
}

// TokenRepo implementación de TokenRepository sobre PostgreSQL.
type TokenRepo struct {
	q Querier
}

// NewTokenRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTokenRepository(q Querier) *TokenRepo {
	return &TokenRepo{q: q}
}

// Create persiste un token de acceso (el ID es el jti del JWT).
func (r *TokenRepo) Create(t *entity.AccessToken) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO access_tokens (id, usuario_id, created_at) VALUES ($1, $2, $3)`,
		t.ID, t.UsuarioID, t.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert token: %w", err)
	}
	return nil
}

// Exists indica si el token sigue vivo (no revocado).
func (r *TokenRepo) Exists(id string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS(SELECT 1 FROM access_tokens WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists token: %w", err)
	}
	return exists, nil
}

// Delete revoca el token.
func (r *TokenRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM access_tokens WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete token: %w", err)
	}
	return nil
}

// DeleteByUsuario revoca todas las sesiones del usuario (login borra las previas).
func (r *TokenRepo) DeleteByUsuario(usuarioID int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM access_tokens WHERE usuario_id = $1`, usuarioID)
	if err != nil {
		return fmt.Errorf("delete tokens by usuario: %w", err)
	}
	return nil
}
