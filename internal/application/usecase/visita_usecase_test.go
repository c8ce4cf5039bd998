package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseeliezerr7/AppPandelpueblo/internal/application/dto"
	"github.com/joseeliezerr7/AppPandelpueblo/internal/application/usecase"
	"github.com/joseeliezerr7/AppPandelpueblo/internal/domain"
	"github.com/joseeliezerr7/AppPandelpueblo/internal/domain/entity"
	"github.com/joseeliezerr7/AppPandelpueblo/internal/testutil"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func sembrarCliente(t *testing.T, clientes *testutil.MemClientes, nombre string) *entity.Cliente {
	t.Helper()
	c := &entity.Cliente{Nombre: nombre}
	require.NoError(t, clientes.Create(c))
	return c
}

// ──────────────────────────────────────────────────────────────────────────────
// Cronogramas
// ──────────────────────────────────────────────────────────────────────────────

// Un cliente no puede tener dos cronogramas activos para el mismo día.
func TestCronogramaCreate_DiaDuplicado(t *testing.T) {
	clientes := testutil.NewMemClientes(testutil.NewMemPulperias())
	cronogramas := testutil.NewMemCronogramas()
	uc := usecase.NewCronogramaUseCase(cronogramas, clientes)
	cliente := sembrarCliente(t, clientes, "Doña Rosa")

	_, err := uc.Create(context.Background(), dto.CronogramaRequest{ClienteID: cliente.ID, DiaSemana: "lunes"})
	require.NoError(t, err)

	_, err = uc.Create(context.Background(), dto.CronogramaRequest{ClienteID: cliente.ID, DiaSemana: "lunes"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

// El día se normaliza a minúsculas antes de comparar.
func TestCronogramaCreate_DiaNormalizado(t *testing.T) {
	clientes := testutil.NewMemClientes(testutil.NewMemPulperias())
	cronogramas := testutil.NewMemCronogramas()
	uc := usecase.NewCronogramaUseCase(cronogramas, clientes)
	cliente := sembrarCliente(t, clientes, "Doña Rosa")

	creado, err := uc.Create(context.Background(), dto.CronogramaRequest{ClienteID: cliente.ID, DiaSemana: "Martes"})
	require.NoError(t, err)
	assert.Equal(t, "martes", creado.DiaSemana)

	_, err = uc.Create(context.Background(), dto.CronogramaRequest{ClienteID: cliente.ID, DiaSemana: "MARTES"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

// El mismo día en clientes distintos no es conflicto.
func TestCronogramaCreate_MismoDiaOtroCliente(t *testing.T) {
	clientes := testutil.NewMemClientes(testutil.NewMemPulperias())
	cronogramas := testutil.NewMemCronogramas()
	uc := usecase.NewCronogramaUseCase(cronogramas, clientes)
	a := sembrarCliente(t, clientes, "Doña Rosa")
	b := sembrarCliente(t, clientes, "Don Pedro")

	_, err := uc.Create(context.Background(), dto.CronogramaRequest{ClienteID: a.ID, DiaSemana: "viernes"})
	require.NoError(t, err)
	_, err = uc.Create(context.Background(), dto.CronogramaRequest{ClienteID: b.ID, DiaSemana: "viernes"})
	assert.NoError(t, err)
}

// Cronograma para un cliente inexistente se rechaza.
func TestCronogramaCreate_ClienteInexistente(t *testing.T) {
	clientes := testutil.NewMemClientes(testutil.NewMemPulperias())
	uc := usecase.NewCronogramaUseCase(testutil.NewMemCronogramas(), clientes)

	_, err := uc.Create(context.Background(), dto.CronogramaRequest{ClienteID: 999, DiaSemana: "lunes"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Visitas
// ──────────────────────────────────────────────────────────────────────────────

// La fecha acepta el formato legado "YYYY-MM-DD HH:MM:SS" y se devuelve igual.
func TestVisitaCreate_FormatoDeFecha(t *testing.T) {
	clientes := testutil.NewMemClientes(testutil.NewMemPulperias())
	uc := usecase.NewVisitaUseCase(testutil.NewMemVisitas(), clientes)
	cliente := sembrarCliente(t, clientes, "Doña Rosa")

	creada, err := uc.Create(context.Background(), dto.VisitaRequest{
		ClienteID: cliente.ID,
		Fecha:     "2024-06-15 09:30:00",
	})
	require.NoError(t, err)
	assert.Equal(t, "2024-06-15 09:30:00", creada.Fecha)
	assert.False(t, creada.Realizada)
}

// Una fecha que no parsea se rechaza como entrada inválida.
func TestVisitaCreate_FechaInvalida(t *testing.T) {
	clientes := testutil.NewMemClientes(testutil.NewMemPulperias())
	uc := usecase.NewVisitaUseCase(testutil.NewMemVisitas(), clientes)
	cliente := sembrarCliente(t, clientes, "Doña Rosa")

	_, err := uc.Create(context.Background(), dto.VisitaRequest{
		ClienteID: cliente.ID,
		Fecha:     "15/06/2024",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// El filtro por cliente devuelve solo sus visitas.
func TestVisitaList_FiltroPorCliente(t *testing.T) {
	clientes := testutil.NewMemClientes(testutil.NewMemPulperias())
	uc := usecase.NewVisitaUseCase(testutil.NewMemVisitas(), clientes)
	a := sembrarCliente(t, clientes, "Doña Rosa")
	b := sembrarCliente(t, clientes, "Don Pedro")

	for _, id := range []int64{a.ID, a.ID, b.ID} {
		_, err := uc.Create(context.Background(), dto.VisitaRequest{ClienteID: id, Fecha: "2024-06-15"})
		require.NoError(t, err)
	}

	deA, err := uc.List(&a.ID, nil, nil)
	require.NoError(t, err)
	assert.Len(t, deA, 2)
}
