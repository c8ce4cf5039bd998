package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/joseeliezerr7/AppPandelpueblo/pkg/jwt"
)

const (
	secreto = "secreto-de-prueba"
	emisor  = "pandelpueblo-test"
)

// Generar y parsear con el mismo secreto devuelve los claims originales.
func TestGenerateParse_IdaYVuelta(t *testing.T) {
	tok, err := pkgjwt.Generate(secreto, "jti-123", 42, "vendedor", emisor, 60)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	jti, usuarioID, permiso, err := pkgjwt.Parse(secreto, tok)
	require.NoError(t, err)
	assert.Equal(t, "jti-123", jti)
	assert.Equal(t, int64(42), usuarioID)
	assert.Equal(t, "vendedor", permiso)
}

// Un token firmado con otro secreto no pasa la verificación.
func TestParse_SecretoIncorrecto(t *testing.T) {
	tok, err := pkgjwt.Generate(secreto, "jti-123", 42, "usuario", emisor, 60)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse("otro-secreto", tok)
	assert.Error(t, err)
}

// Un token con expiración en el pasado es rechazado.
func TestParse_TokenExpirado(t *testing.T) {
	tok, err := pkgjwt.Generate(secreto, "jti-123", 42, "usuario", emisor, -5)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse(secreto, tok)
	assert.Error(t, err)
}

// Un string arbitrario no es un token.
func TestParse_Basura(t *testing.T) {
	_, _, _, err := pkgjwt.Parse(secreto, "no-es-un-jwt")
	assert.Error(t, err)
}

// Generar sin secreto falla en vez de emitir un token sin firma real.
func TestGenerate_SecretoVacio(t *testing.T) {
	_, err := pkgjwt.Generate("", "jti-123", 42, "usuario", emisor, 60)
	assert.Error(t, err)
}
