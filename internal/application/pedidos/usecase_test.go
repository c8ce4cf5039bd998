package pedidos_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseeliezerr7/AppPandelpueblo/internal/application/dto"
	"github.com/joseeliezerr7/AppPandelpueblo/internal/application/pedidos"
	"github.com/joseeliezerr7/AppPandelpueblo/internal/domain"
	"github.com/joseeliezerr7/AppPandelpueblo/internal/domain/entity"
	"github.com/joseeliezerr7/AppPandelpueblo/internal/testutil"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func buildUseCase(s *testutil.Store) *pedidos.UseCase {
	return pedidos.NewUseCase(s, s.Pedidos, s.Clientes, s.Pulperias, s.Productos)
}

func int64ptr(v int64) *int64 { return &v }

func seedCliente(t *testing.T, s *testutil.Store, nombre string) *entity.Cliente {
	t.Helper()
	c := &entity.Cliente{Nombre: nombre}
	require.NoError(t, s.Clientes.Create(c))
	return c
}

func seedProducto(t *testing.T, s *testutil.Store, nombre string) *entity.Producto {
	t.Helper()
	p := &entity.Producto{Nombre: nombre, CategoriaID: 1}
	require.NoError(t, s.Productos.Create(p))
	return p
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

// Pedido con dos líneas (2×10.00 y 1×5.50) → total persistido 25.50.
func TestCreate_TotalCalculado(t *testing.T) {
	s := testutil.NewStore()
	uc := buildUseCase(s)
	cliente := seedCliente(t, s, "Don José")
	seedProducto(t, s, "Pan blanco")

	out, err := uc.Create(context.Background(), dto.PedidoRequest{
		ClienteID: cliente.ID,
		Fecha:     "2024-06-01",
		Detalles: []dto.DetallePedidoRequest{
			{ProductoID: 5, Cantidad: 2, Precio: decimal.RequireFromString("10.00")},
			{ProductoID: 7, Cantidad: 1, Precio: decimal.RequireFromString("5.50")},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "25.50", out.Total)
	assert.Len(t, out.Detalles, 2)

	persistido, err := s.Pedidos.GetByID(out.ID)
	require.NoError(t, err)
	assert.True(t, persistido.Total.Equal(decimal.RequireFromString("25.50")))
}

// Si falla la inserción de una línea no queda ni el pedido ni ningún detalle.
func TestCreate_FalloDejaBaseIntacta(t *testing.T) {
	s := testutil.NewStore()
	uc := buildUseCase(s)
	cliente := seedCliente(t, s, "Don José")

	s.Pedidos.FailCreateDetalle(errors.New("columna inexistente"))
	_, err := uc.Create(context.Background(), dto.PedidoRequest{
		ClienteID: cliente.ID,
		Fecha:     "2024-06-01",
		Detalles: []dto.DetallePedidoRequest{
			{ProductoID: 1, Cantidad: 1, Precio: decimal.RequireFromString("1.00")},
		},
	})
	require.Error(t, err)

	list, err := s.Pedidos.List(nil, nil)
	require.NoError(t, err)
	assert.Empty(t, list, "el rollback no debe dejar pedidos a medias")
}

// Referencias colgantes: el pedido se crea aunque el cliente no exista, y el
// nombre mostrado sale null.
func TestCreate_ClienteInexistenteNombreNull(t *testing.T) {
	s := testutil.NewStore()
	uc := buildUseCase(s)

	out, err := uc.Create(context.Background(), dto.PedidoRequest{
		ClienteID: 999,
		Fecha:     "2024-06-01 08:00:00",
		Detalles: []dto.DetallePedidoRequest{
			{ProductoID: 123, Cantidad: 1, Precio: decimal.RequireFromString("3.00")},
		},
	})
	require.NoError(t, err)
	assert.Nil(t, out.NombreCliente)
	assert.Nil(t, out.Detalles[0].NombreProducto)
}

// La fecha se devuelve con hora, formato Y-m-d H:i:s.
func TestCreate_FormatoDeFecha(t *testing.T) {
	s := testutil.NewStore()
	uc := buildUseCase(s)

	out, err := uc.Create(context.Background(), dto.PedidoRequest{
		ClienteID: 1,
		Fecha:     "2024-06-01",
		Detalles: []dto.DetallePedidoRequest{
			{ProductoID: 1, Cantidad: 1, Precio: decimal.RequireFromString("1.00")},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "2024-06-01 00:00:00", out.Fecha)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update
// ──────────────────────────────────────────────────────────────────────────────

func crearPedidoBase(t *testing.T, uc *pedidos.UseCase) *dto.PedidoDTO {
	t.Helper()
	out, err := uc.Create(context.Background(), dto.PedidoRequest{
		ClienteID: 1,
		Fecha:     "2024-06-01",
		Detalles: []dto.DetallePedidoRequest{
			{ProductoID: 5, Cantidad: 2, Precio: decimal.RequireFromString("10.00")},
			{ProductoID: 7, Cantidad: 1, Precio: decimal.RequireFromString("5.50")},
		},
	})
	require.NoError(t, err)
	return out
}

// Quitar una línea de la petición la elimina y el total se recalcula.
func TestUpdate_LineaAusenteSeElimina(t *testing.T) {
	s := testutil.NewStore()
	uc := buildUseCase(s)
	base := crearPedidoBase(t, uc)

	out, err := uc.Update(context.Background(), base.ID, dto.PedidoRequest{
		ClienteID: 1,
		Fecha:     "2024-06-01",
		Detalles: []dto.DetallePedidoRequest{
			{ID: &base.Detalles[0].ID, ProductoID: 5, Cantidad: 2, Precio: decimal.RequireFromString("10.00")},
		},
	})
	require.NoError(t, err)
	assert.Len(t, out.Detalles, 1)
	assert.Equal(t, "20.00", out.Total)
}

// Línea con id se actualiza, línea sin id se crea.
func TestUpdate_ActualizaYCrea(t *testing.T) {
	s := testutil.NewStore()
	uc := buildUseCase(s)
	base := crearPedidoBase(t, uc)

	out, err := uc.Update(context.Background(), base.ID, dto.PedidoRequest{
		ClienteID: 1,
		Fecha:     "2024-06-02",
		Detalles: []dto.DetallePedidoRequest{
			{ID: &base.Detalles[0].ID, ProductoID: 5, Cantidad: 3, Precio: decimal.RequireFromString("10.00")},
			{ID: &base.Detalles[1].ID, ProductoID: 7, Cantidad: 1, Precio: decimal.RequireFromString("5.50")},
			{ProductoID: 9, Cantidad: 2, Precio: decimal.RequireFromString("2.25")},
		},
	})
	require.NoError(t, err)
	assert.Len(t, out.Detalles, 3)
	assert.Equal(t, "40.00", out.Total, "3×10.00 + 1×5.50 + 2×2.25")
}

// Un id de detalle que pertenece a otro pedido se ignora sin fallar.
func TestUpdate_DetalleAjenoIgnorado(t *testing.T) {
	s := testutil.NewStore()
	uc := buildUseCase(s)
	primero := crearPedidoBase(t, uc)
	segundo := crearPedidoBase(t, uc)

	out, err := uc.Update(context.Background(), segundo.ID, dto.PedidoRequest{
		ClienteID: 1,
		Fecha:     "2024-06-01",
		Detalles: []dto.DetallePedidoRequest{
			{ID: &primero.Detalles[0].ID, ProductoID: 5, Cantidad: 99, Precio: decimal.RequireFromString("10.00")},
			{ID: &segundo.Detalles[0].ID, ProductoID: 5, Cantidad: 2, Precio: decimal.RequireFromString("10.00")},
		},
	})
	require.NoError(t, err)

	// El detalle del primer pedido no cambió.
	ajeno, err := s.Pedidos.GetDetalleByID(primero.Detalles[0].ID)
	require.NoError(t, err)
	assert.Equal(t, 2, ajeno.Cantidad)
	assert.Equal(t, "20.00", out.Total)
}

// Actualizar un pedido inexistente devuelve not found.
func TestUpdate_PedidoInexistente(t *testing.T) {
	s := testutil.NewStore()
	uc := buildUseCase(s)

	_, err := uc.Update(context.Background(), 999, dto.PedidoRequest{
		ClienteID: 1,
		Fecha:     "2024-06-01",
		Detalles: []dto.DetallePedidoRequest{
			{ProductoID: 1, Cantidad: 1, Precio: decimal.RequireFromString("1.00")},
		},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete / lecturas
// ──────────────────────────────────────────────────────────────────────────────

// Eliminar el pedido elimina también sus detalles.
func TestDelete_EliminaDetalles(t *testing.T) {
	s := testutil.NewStore()
	uc := buildUseCase(s)
	base := crearPedidoBase(t, uc)

	require.NoError(t, uc.Delete(context.Background(), base.ID))

	out, err := uc.GetByID(base.ID)
	require.NoError(t, err)
	assert.Nil(t, out)

	detalles, err := s.Pedidos.GetDetallesByPedidoID(base.ID)
	require.NoError(t, err)
	assert.Empty(t, detalles)
}

// List filtra por cliente y por pulpería.
func TestList_Filtros(t *testing.T) {
	s := testutil.NewStore()
	uc := buildUseCase(s)

	crear := func(clienteID int64, pulperiaID *int64) {
		_, err := uc.Create(context.Background(), dto.PedidoRequest{
			ClienteID:  clienteID,
			PulperiaID: pulperiaID,
			Fecha:      "2024-06-01",
			Detalles: []dto.DetallePedidoRequest{
				{ProductoID: 1, Cantidad: 1, Precio: decimal.RequireFromString("1.00")},
			},
		})
		require.NoError(t, err)
	}
	crear(1, int64ptr(10))
	crear(1, int64ptr(20))
	crear(2, int64ptr(10))

	porCliente, err := uc.List(int64ptr(1), nil)
	require.NoError(t, err)
	assert.Len(t, porCliente, 2)

	porPulperia, err := uc.List(nil, int64ptr(10))
	require.NoError(t, err)
	assert.Len(t, porPulperia, 2)

	ambos, err := uc.List(int64ptr(1), int64ptr(10))
	require.NoError(t, err)
	assert.Len(t, ambos, 1)
}
