package counters_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseeliezerr7/AppPandelpueblo/internal/application/counters"
	"github.com/joseeliezerr7/AppPandelpueblo/internal/domain/entity"
	"github.com/joseeliezerr7/AppPandelpueblo/internal/testutil"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func crearRuta(t *testing.T, s *testutil.Store, nombre string) *entity.Ruta {
	t.Helper()
	r := &entity.Ruta{Nombre: nombre}
	require.NoError(t, s.Rutas.Create(r))
	return r
}

func crearPulperia(t *testing.T, s *testutil.Store, nombre string, rutaID *int64) *entity.Pulperia {
	t.Helper()
	p := &entity.Pulperia{Nombre: nombre, RutaID: rutaID}
	require.NoError(t, s.Pulperias.Create(p))
	return p
}

func crearCliente(t *testing.T, s *testutil.Store, nombre string, pulperiaID *int64) *entity.Cliente {
	t.Helper()
	c := &entity.Cliente{Nombre: nombre, PulperiaID: pulperiaID}
	require.NoError(t, s.Clientes.Create(c))
	return c
}

func refrescar(t *testing.T, s *testutil.Store, pulperiaID int64) {
	t.Helper()
	require.NoError(t, counters.RefreshPulperia(s.Clientes, s.Pulperias, s.Rutas, pulperiaID))
}

// ──────────────────────────────────────────────────────────────────────────────
// cantidad_clientes de la pulpería
// ──────────────────────────────────────────────────────────────────────────────

// Alta de clientes: el contador sigue la cuenta real tras cada escritura.
func TestRefreshPulperia_AltaDeClientes(t *testing.T) {
	s := testutil.NewStore()
	p := crearPulperia(t, s, "La Esquina", nil)

	for i := 0; i < 4; i++ {
		crearCliente(t, s, "Cliente", &p.ID)
		refrescar(t, s, p.ID)
	}

	actual, err := s.Pulperias.GetByID(p.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, actual.CantidadClientes)
}

// Borrado lógico: con 4 clientes y una eliminación el contador queda en 3.
func TestRefreshPulperia_BorradoDeCliente(t *testing.T) {
	s := testutil.NewStore()
	p := crearPulperia(t, s, "La Esquina", nil)

	var ultimo *entity.Cliente
	for i := 0; i < 4; i++ {
		ultimo = crearCliente(t, s, "Cliente", &p.ID)
		refrescar(t, s, p.ID)
	}

	require.NoError(t, s.Clientes.Delete(ultimo.ID))
	refrescar(t, s, p.ID)

	actual, err := s.Pulperias.GetByID(p.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, actual.CantidadClientes,
		"el cliente borrado no debe contar")
}

// Mover un cliente de pulpería: ambas pulperías deben quedar correctas.
func TestRefreshPulperia_ClienteCambiaDePulperia(t *testing.T) {
	s := testutil.NewStore()
	origen := crearPulperia(t, s, "Origen", nil)
	destino := crearPulperia(t, s, "Destino", nil)
	c := crearCliente(t, s, "Viajero", &origen.ID)
	refrescar(t, s, origen.ID)

	c.PulperiaID = &destino.ID
	require.NoError(t, s.Clientes.Update(c))
	refrescar(t, s, origen.ID)
	refrescar(t, s, destino.ID)

	o, err := s.Pulperias.GetByID(origen.ID)
	require.NoError(t, err)
	d, err := s.Pulperias.GetByID(destino.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, o.CantidadClientes, "la pulpería origen queda sin clientes")
	assert.Equal(t, 1, d.CantidadClientes, "la pulpería destino gana el cliente")
}

// El recálculo es idempotente: refrescar dos veces no cambia el resultado.
func TestRefreshPulperia_Idempotente(t *testing.T) {
	s := testutil.NewStore()
	p := crearPulperia(t, s, "La Esquina", nil)
	crearCliente(t, s, "Uno", &p.ID)
	crearCliente(t, s, "Dos", &p.ID)

	refrescar(t, s, p.ID)
	refrescar(t, s, p.ID)

	actual, err := s.Pulperias.GetByID(p.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, actual.CantidadClientes)
}

// Refrescar una pulpería inexistente no es error: no hay nada que mantener.
func TestRefreshPulperia_PulperiaInexistente(t *testing.T) {
	s := testutil.NewStore()
	assert.NoError(t, counters.RefreshPulperia(s.Clientes, s.Pulperias, s.Rutas, 999))
}

// ──────────────────────────────────────────────────────────────────────────────
// Contadores de la ruta
// ──────────────────────────────────────────────────────────────────────────────

// Los contadores de la ruta agregan sobre sus pulperías vivas.
func TestRefreshRuta_AgregaSobrePulperias(t *testing.T) {
	s := testutil.NewStore()
	r := crearRuta(t, s, "Ruta Norte")
	p1 := crearPulperia(t, s, "P1", &r.ID)
	p2 := crearPulperia(t, s, "P2", &r.ID)

	crearCliente(t, s, "A", &p1.ID)
	crearCliente(t, s, "B", &p1.ID)
	crearCliente(t, s, "C", &p2.ID)
	refrescar(t, s, p1.ID)
	refrescar(t, s, p2.ID)

	actual, err := s.Rutas.GetByID(r.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, actual.CantidadPulperias)
	assert.Equal(t, 3, actual.CantidadClientes)
}

// Al borrar una pulpería la ruta pierde su cuenta y sus clientes.
func TestRefreshRuta_PulperiaBorrada(t *testing.T) {
	s := testutil.NewStore()
	r := crearRuta(t, s, "Ruta Norte")
	p1 := crearPulperia(t, s, "P1", &r.ID)
	p2 := crearPulperia(t, s, "P2", &r.ID)
	crearCliente(t, s, "A", &p1.ID)
	crearCliente(t, s, "B", &p2.ID)
	refrescar(t, s, p1.ID)
	refrescar(t, s, p2.ID)

	require.NoError(t, s.Pulperias.Delete(p2.ID))
	require.NoError(t, counters.RefreshRuta(s.Pulperias, s.Rutas, r.ID))

	actual, err := s.Rutas.GetByID(r.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, actual.CantidadPulperias)
	assert.Equal(t, 1, actual.CantidadClientes)
}

// El cambio en un cliente propaga hasta la ruta vía su pulpería.
func TestRefreshPulperia_PropagaARuta(t *testing.T) {
	s := testutil.NewStore()
	r := crearRuta(t, s, "Ruta Sur")
	p := crearPulperia(t, s, "P", &r.ID)

	crearCliente(t, s, "A", &p.ID)
	refrescar(t, s, p.ID)

	actual, err := s.Rutas.GetByID(r.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, actual.CantidadClientes,
		"el alta de un cliente debe reflejarse en la ruta")
}

// ──────────────────────────────────────────────────────────────────────────────
// Total del pedido
// ──────────────────────────────────────────────────────────────────────────────

// La suma usa el precio capturado en el detalle, no el precio actual del producto.
func TestRefreshPedidoTotal_SumaDetalles(t *testing.T) {
	s := testutil.NewStore()
	pedido := &entity.Pedido{ClienteID: 1}
	require.NoError(t, s.Pedidos.Create(pedido))

	require.NoError(t, s.Pedidos.CreateDetalle(&entity.DetallePedido{
		PedidoID: pedido.ID, ProductoID: 5, Cantidad: 2, Precio: decimal.RequireFromString("10.00"),
	}))
	require.NoError(t, s.Pedidos.CreateDetalle(&entity.DetallePedido{
		PedidoID: pedido.ID, ProductoID: 7, Cantidad: 1, Precio: decimal.RequireFromString("5.50"),
	}))

	total, err := counters.RefreshPedidoTotal(s.Pedidos, pedido.ID)
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.RequireFromString("25.50")),
		"total esperado 25.50, obtenido %s", total)

	actual, err := s.Pedidos.GetByID(pedido.ID)
	require.NoError(t, err)
	assert.True(t, actual.Total.Equal(decimal.RequireFromString("25.50")))
}

// Refrescar el total dos veces produce el mismo resultado.
func TestRefreshPedidoTotal_Idempotente(t *testing.T) {
	s := testutil.NewStore()
	pedido := &entity.Pedido{ClienteID: 1}
	require.NoError(t, s.Pedidos.Create(pedido))
	require.NoError(t, s.Pedidos.CreateDetalle(&entity.DetallePedido{
		PedidoID: pedido.ID, ProductoID: 1, Cantidad: 3, Precio: decimal.RequireFromString("2.25"),
	}))

	primero, err := counters.RefreshPedidoTotal(s.Pedidos, pedido.ID)
	require.NoError(t, err)
	segundo, err := counters.RefreshPedidoTotal(s.Pedidos, pedido.ID)
	require.NoError(t, err)
	assert.True(t, primero.Equal(segundo))
}

// Un pedido sin detalles vivos tiene total cero.
func TestRefreshPedidoTotal_SinDetalles(t *testing.T) {
	s := testutil.NewStore()
	pedido := &entity.Pedido{ClienteID: 1}
	require.NoError(t, s.Pedidos.Create(pedido))
	require.NoError(t, s.Pedidos.CreateDetalle(&entity.DetallePedido{
		PedidoID: pedido.ID, ProductoID: 1, Cantidad: 1, Precio: decimal.RequireFromString("9.99"),
	}))
	require.NoError(t, s.Pedidos.DeleteDetallesByPedido(pedido.ID))

	total, err := counters.RefreshPedidoTotal(s.Pedidos, pedido.ID)
	require.NoError(t, err)
	assert.True(t, total.IsZero(), "sin detalles vivos el total es cero")
}
