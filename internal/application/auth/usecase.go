// Package auth implementa login, registro, logout y perfil. Los tokens son
// JWT firmados cuyo jti queda persistido en access_tokens: borrar la fila
// revoca la sesión aunque la firma siga vigente, y el login borra todas las
// sesiones previas del usuario.
package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/joseeliezerr7/AppPandelpueblo/internal/application/dto"
	"github.com/joseeliezerr7/AppPandelpueblo/internal/domain"
	"github.com/joseeliezerr7/AppPandelpueblo/internal/domain/entity"
	"github.com/joseeliezerr7/AppPandelpueblo/internal/domain/repository"
	pkgjwt "github.com/joseeliezerr7/AppPandelpueblo/pkg/jwt"
)

// Config parámetros de emisión de tokens.
type Config struct {
	Secret            string
	Issuer            string
	ExpirationMinutes int
}

// UseCase casos de uso de autenticación.
type UseCase struct {
	usuarios repository.UsuarioRepository
	tokens   repository.TokenRepository
	cfg      Config
}

// NewUseCase construye el caso de uso.
func NewUseCase(usuarios repository.UsuarioRepository, tokens repository.TokenRepository, cfg Config) *UseCase {
	return &UseCase{usuarios: usuarios, tokens: tokens, cfg: cfg}
}

// Login verifica credenciales, revoca las sesiones previas y emite un token
// nuevo. Credenciales incorrectas devuelven domain.ErrUnauthorized sin
// distinguir si falló el correo o la contraseña.
func (uc *UseCase) Login(_ context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	u, err := uc.usuarios.GetByEmail(req.CorreoElectronico)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Plain())); err != nil {
		return nil, domain.ErrUnauthorized
	}

	if err := uc.tokens.DeleteByUsuario(u.ID); err != nil {
		return nil, err
	}
	token, err := uc.emitir(u)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Data:        dto.ToUsuarioDTO(u),
		AccessToken: token,
		TokenType:   "Bearer",
	}, nil
}

// Register crea el usuario y emite su primer token. Por defecto el permiso es
// usuario.
func (uc *UseCase) Register(_ context.Context, req dto.UsuarioRequest) (*dto.RegisterResponse, error) {
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
	token, err := uc.emitir(u)
	if err != nil {
		return nil, err
	}
	return &dto.RegisterResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		User:        dto.ToUsuarioDTO(u),
	}, nil
}

// Logout revoca el token presentado.
func (uc *UseCase) Logout(_ context.Context, tokenID string) error {
	return uc.tokens.Delete(tokenID)
}

// Me devuelve el perfil del usuario autenticado.
func (uc *UseCase) Me(usuarioID int64) (*dto.UsuarioDTO, error) {
	u, err := uc.usuarios.GetByID(usuarioID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}
	out := dto.ToUsuarioDTO(u)
	return &out, nil
}

// emitir genera el JWT y persiste su jti.
func (uc *UseCase) emitir(u *entity.Usuario) (string, error) {
	tokenID := uuid.New().String()
	token, err := pkgjwt.Generate(uc.cfg.Secret, tokenID, u.ID, u.Permiso, uc.cfg.Issuer, uc.cfg.ExpirationMinutes)
	if err != nil {
		return "", err
	}
	if err := uc.tokens.Create(&entity.AccessToken{
		ID:        tokenID,
		UsuarioID: u.ID,
		CreatedAt: time.Now(),
	}); err != nil {
		return "", err
	}
	return token, nil
}
