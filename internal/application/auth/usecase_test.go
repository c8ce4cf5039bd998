package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/joseeliezerr7/AppPandelpueblo/internal/application/auth"
	"github.com/joseeliezerr7/AppPandelpueblo/internal/application/dto"
	"github.com/joseeliezerr7/AppPandelpueblo/internal/domain"
	"github.com/joseeliezerr7/AppPandelpueblo/internal/domain/entity"
	"github.com/joseeliezerr7/AppPandelpueblo/internal/testutil"
	pkgjwt "github.com/joseeliezerr7/AppPandelpueblo/pkg/jwt"
)

const testSecret = "clave-de-prueba"

func buildAuth(s *testutil.Store) *auth.UseCase {
	return auth.NewUseCase(s.Usuarios, s.Tokens, auth.Config{
		Secret:            testSecret,
		Issuer:            "pandelpueblo-test",
		ExpirationMinutes: 60,
	})
}

func seedUsuario(t *testing.T, s *testutil.Store, correo, password string) *entity.Usuario {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	u := &entity.Usuario{
		Nombre:            "Vendedor",
		CorreoElectronico: correo,
		PasswordHash:      string(hash),
		Permiso:           entity.PermisoVendedor,
		CreatedAt:         time.Now(),
		UpdatedAt:         time.Now(),
	}
	require.NoError(t, s.Usuarios.Create(u))
	return u
}

// Login correcto: devuelve usuario, token Bearer y deja el jti persistido.
func TestLogin_Exitoso(t *testing.T) {
	s := testutil.NewStore()
	uc := buildAuth(s)
	seedUsuario(t, s, "vendedor@pandelpueblo.hn", "secreta123")

	out, err := uc.Login(context.Background(), dto.LoginRequest{
		CorreoElectronico: "vendedor@pandelpueblo.hn",
		Password:          "secreta123",
	})
	require.NoError(t, err)
	assert.Equal(t, "Bearer", out.TokenType)
	assert.Equal(t, "vendedor@pandelpueblo.hn", out.Data.CorreoElectronico)

	tokenID, usuarioID, permiso, err := pkgjwt.Parse(testSecret, out.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, out.Data.ID, usuarioID)
	assert.Equal(t, entity.PermisoVendedor, permiso)

	vivo, err := s.Tokens.Exists(tokenID)
	require.NoError(t, err)
	assert.True(t, vivo, "el jti del token emitido debe quedar persistido")
}

// La contraseña también puede venir en el campo contrasena.
func TestLogin_CampoContrasena(t *testing.T) {
	s := testutil.NewStore()
	uc := buildAuth(s)
	seedUsuario(t, s, "vendedor@pandelpueblo.hn", "secreta123")

	_, err := uc.Login(context.Background(), dto.LoginRequest{
		CorreoElectronico: "vendedor@pandelpueblo.hn",
		Contrasena:        "secreta123",
	})
	assert.NoError(t, err)
}

// Contraseña incorrecta y correo inexistente fallan igual.
func TestLogin_CredencialesIncorrectas(t *testing.T) {
	s := testutil.NewStore()
	uc := buildAuth(s)
	seedUsuario(t, s, "vendedor@pandelpueblo.hn", "secreta123")

	_, err := uc.Login(context.Background(), dto.LoginRequest{
		CorreoElectronico: "vendedor@pandelpueblo.hn",
		Password:          "otra",
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(context.Background(), dto.LoginRequest{
		CorreoElectronico: "nadie@pandelpueblo.hn",
		Password:          "secreta123",
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// Cada login revoca las sesiones anteriores del usuario.
func TestLogin_RevocaSesionesPrevias(t *testing.T) {
	s := testutil.NewStore()
	uc := buildAuth(s)
	seedUsuario(t, s, "vendedor@pandelpueblo.hn", "secreta123")

	req := dto.LoginRequest{CorreoElectronico: "vendedor@pandelpueblo.hn", Password: "secreta123"}
	primero, err := uc.Login(context.Background(), req)
	require.NoError(t, err)
	segundo, err := uc.Login(context.Background(), req)
	require.NoError(t, err)

	primerJTI, _, _, err := pkgjwt.Parse(testSecret, primero.AccessToken)
	require.NoError(t, err)
	segundoJTI, _, _, err := pkgjwt.Parse(testSecret, segundo.AccessToken)
	require.NoError(t, err)

	vivoPrimero, err := s.Tokens.Exists(primerJTI)
	require.NoError(t, err)
	vivoSegundo, err := s.Tokens.Exists(segundoJTI)
	require.NoError(t, err)
	assert.False(t, vivoPrimero, "la sesión anterior debe quedar revocada")
	assert.True(t, vivoSegundo)
}

// Logout revoca solo el token presentado.
func TestLogout_RevocaElToken(t *testing.T) {
	s := testutil.NewStore()
	uc := buildAuth(s)
	seedUsuario(t, s, "vendedor@pandelpueblo.hn", "secreta123")

	out, err := uc.Login(context.Background(), dto.LoginRequest{
		CorreoElectronico: "vendedor@pandelpueblo.hn", Password: "secreta123",
	})
	require.NoError(t, err)
	jti, _, _, err := pkgjwt.Parse(testSecret, out.AccessToken)
	require.NoError(t, err)

	require.NoError(t, uc.Logout(context.Background(), jti))
	vivo, err := s.Tokens.Exists(jti)
	require.NoError(t, err)
	assert.False(t, vivo)
}

// Registro con correo repetido falla.
func TestRegister_CorreoDuplicado(t *testing.T) {
	s := testutil.NewStore()
	uc := buildAuth(s)
	seedUsuario(t, s, "vendedor@pandelpueblo.hn", "secreta123")

	_, err := uc.Register(context.Background(), dto.UsuarioRequest{
		Nombre:            "Otro",
		CorreoElectronico: "vendedor@pandelpueblo.hn",
		Password:          "secreta123",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

// Registro sin permiso explícito asigna usuario.
func TestRegister_PermisoPorDefecto(t *testing.T) {
	s := testutil.NewStore()
	uc := buildAuth(s)

	out, err := uc.Register(context.Background(), dto.UsuarioRequest{
		Nombre:            "Nuevo",
		CorreoElectronico: "nuevo@pandelpueblo.hn",
		Telefono:          "9999-9999",
		Password:          "secreta123",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.PermisoUsuario, out.User.Permiso)
	assert.NotEmpty(t, out.AccessToken)
}
