package http_test

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseeliezerr7/AppPandelpueblo/internal/application/usecase"
	"github.com/joseeliezerr7/AppPandelpueblo/internal/domain/entity"
	apphttp "github.com/joseeliezerr7/AppPandelpueblo/internal/interfaces/http"
	"github.com/joseeliezerr7/AppPandelpueblo/internal/testutil"
)

// ──────────────────────────────────────────────────────────────────────────────
// DELETE /api/usuarios/:id
// ──────────────────────────────────────────────────────────────────────────────

type usuariosTestEnv struct {
	app      *fiber.App
	usuarios *testutil.MemUsuarios
	tokens   *testutil.MemTokens
}

func buildUsuariosApp(t *testing.T) *usuariosTestEnv {
	t.Helper()
	usuarios := testutil.NewMemUsuarios()
	tokens := testutil.NewMemTokens()
	uc := usecase.NewUsuarioUseCase(usuarios, tokens)
	handler := apphttp.NewUsuarioHandler(uc)

	app := fiber.New()
	grupo := app.Group("/api/usuarios", apphttp.AuthMiddleware(testJWTSecret, tokens))
	grupo.Delete("/:id", handler.Delete)

	return &usuariosTestEnv{app: app, usuarios: usuarios, tokens: tokens}
}

func sembrarUsuario(t *testing.T, usuarios *testutil.MemUsuarios, nombre, correo string) *entity.Usuario {
	t.Helper()
	u := &entity.Usuario{Nombre: nombre, CorreoElectronico: correo, Permiso: entity.PermisoAdmin}
	require.NoError(t, usuarios.Create(u))
	return u
}

func borrarUsuario(t *testing.T, env *usuariosTestEnv, actorID, objetivoID int64) *http.Response {
	t.Helper()
	header, _ := tokenVivo(t, env.tokens, actorID, entity.PermisoAdmin)
	req := httptest.NewRequest(http.MethodDelete, "/api/usuarios/"+strconv.FormatInt(objetivoID, 10), nil)
	req.Header.Set("Authorization", header)
	resp, err := env.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// Un usuario no puede eliminar su propia cuenta: 403 y la fila sobrevive.
func TestUsuarioDelete_PropiaCuentaProhibida(t *testing.T) {
	env := buildUsuariosApp(t)
	actor := sembrarUsuario(t, env.usuarios, "Admin", "admin@pandelpueblo.hn")

	resp := borrarUsuario(t, env, actor.ID, actor.ID)
	defer resp.Body.Close()

	require.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "No puedes eliminar tu propia cuenta", decodeBody(t, resp)["message"])

	sigue, err := env.usuarios.GetByID(actor.ID)
	require.NoError(t, err)
	assert.NotNil(t, sigue, "la cuenta del actor debe seguir existiendo")
}

// Eliminar a otro usuario sí procede y revoca sus sesiones.
func TestUsuarioDelete_OtroUsuario(t *testing.T) {
	env := buildUsuariosApp(t)
	actor := sembrarUsuario(t, env.usuarios, "Admin", "admin@pandelpueblo.hn")
	objetivo := sembrarUsuario(t, env.usuarios, "Vendedor", "vendedor@pandelpueblo.hn")
	_, jtiObjetivo := tokenVivo(t, env.tokens, objetivo.ID, entity.PermisoVendedor)

	resp := borrarUsuario(t, env, actor.ID, objetivo.ID)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	borrado, err := env.usuarios.GetByID(objetivo.ID)
	require.NoError(t, err)
	assert.Nil(t, borrado)

	vivo, err := env.tokens.Exists(jtiObjetivo)
	require.NoError(t, err)
	assert.False(t, vivo, "las sesiones del eliminado deben quedar revocadas")
}

// Eliminar un id inexistente responde 404.
func TestUsuarioDelete_Inexistente(t *testing.T) {
	env := buildUsuariosApp(t)
	actor := sembrarUsuario(t, env.usuarios, "Admin", "admin@pandelpueblo.hn")

	resp := borrarUsuario(t, env, actor.ID, 999)
	defer resp.Body.Close()

	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}
