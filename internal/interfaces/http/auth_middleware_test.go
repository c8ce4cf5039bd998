package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseeliezerr7/AppPandelpueblo/internal/domain/entity"
	apphttp "github.com/joseeliezerr7/AppPandelpueblo/internal/interfaces/http"
	"github.com/joseeliezerr7/AppPandelpueblo/internal/testutil"
	pkgjwt "github.com/joseeliezerr7/AppPandelpueblo/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "pandelpueblo-test"
	testExpMin    = 60
)

// buildTestApp construye una aplicación Fiber mínima con AuthMiddleware y un
// handler dummy que expone los locals cargados.
func buildTestApp(tokens *testutil.MemTokens) *fiber.App {
	app := fiber.New()
	app.Get("/protegida",
		apphttp.AuthMiddleware(testJWTSecret, tokens),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"usuarioId": apphttp.GetUsuarioID(c),
				"permiso":   apphttp.GetPermiso(c),
				"tokenId":   apphttp.GetTokenID(c),
			})
		},
	)
	return app
}

// tokenVivo genera un JWT y registra su jti como sesión activa.
func tokenVivo(t *testing.T, tokens *testutil.MemTokens, usuarioID int64, permiso string) (string, string) {
	t.Helper()
	jti := uuid.NewString()
	tok, err := pkgjwt.Generate(testJWTSecret, jti, usuarioID, permiso, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	require.NoError(t, tokens.Create(&entity.AccessToken{ID: jti, UsuarioID: usuarioID}))
	return "Bearer " + tok, jti
}

// doRequest lanza una petición GET /protegida y devuelve la respuesta.
func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protegida", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

// Token válido con sesión activa → pasa y carga los locals.
func TestAuthMiddleware_TokenValidoPasa(t *testing.T) {
	tokens := testutil.NewMemTokens()
	app := buildTestApp(tokens)
	header, jti := tokenVivo(t, tokens, 7, entity.PermisoVendedor)

	resp := doRequest(t, app, header)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, float64(7), body["usuarioId"])
	assert.Equal(t, entity.PermisoVendedor, body["permiso"])
	assert.Equal(t, jti, body["tokenId"])
}

// Sin cabecera Authorization → 401.
func TestAuthMiddleware_SinCabecera(t *testing.T) {
	app := buildTestApp(testutil.NewMemTokens())

	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "No autenticado", decodeBody(t, resp)["message"])
}

// Cabecera sin esquema Bearer → 401.
func TestAuthMiddleware_CabeceraMalformada(t *testing.T) {
	app := buildTestApp(testutil.NewMemTokens())

	resp := doRequest(t, app, "Basic abc123")
	defer resp.Body.Close()

	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "No autenticado", decodeBody(t, resp)["message"])
}

// Token firmado con otro secreto → 401.
func TestAuthMiddleware_FirmaIncorrecta(t *testing.T) {
	tokens := testutil.NewMemTokens()
	app := buildTestApp(tokens)

	jti := uuid.NewString()
	tok, err := pkgjwt.Generate("otro-secreto", jti, 7, entity.PermisoUsuario, testIssuer, testExpMin)
	require.NoError(t, err)
	require.NoError(t, tokens.Create(&entity.AccessToken{ID: jti, UsuarioID: 7}))

	resp := doRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Token inválido o expirado", decodeBody(t, resp)["message"])
}

// Token expirado → 401.
func TestAuthMiddleware_TokenExpirado(t *testing.T) {
	tokens := testutil.NewMemTokens()
	app := buildTestApp(tokens)

	jti := uuid.NewString()
	tok, err := pkgjwt.Generate(testJWTSecret, jti, 7, entity.PermisoUsuario, testIssuer, -5)
	require.NoError(t, err)
	require.NoError(t, tokens.Create(&entity.AccessToken{ID: jti, UsuarioID: 7}))

	resp := doRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Token inválido o expirado", decodeBody(t, resp)["message"])
}

// Token con firma válida pero jti revocado → 401. La revocación manda sobre
// la vigencia criptográfica.
func TestAuthMiddleware_TokenRevocado(t *testing.T) {
	tokens := testutil.NewMemTokens()
	app := buildTestApp(tokens)
	header, jti := tokenVivo(t, tokens, 7, entity.PermisoAdmin)

	require.NoError(t, tokens.Delete(jti))

	resp := doRequest(t, app, header)
	defer resp.Body.Close()

	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Token revocado", decodeBody(t, resp)["message"])
}
