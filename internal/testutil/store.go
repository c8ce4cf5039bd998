package testutil

import (
	"context"

	"github.com/joseeliezerr7/AppPandelpueblo/internal/application/ports"
	"github.com/joseeliezerr7/AppPandelpueblo/internal/domain/entity"
)

// Store agrupa los repositorios en memoria y ofrece un TxRunner cuyo Run
// restaura el estado previo si el closure falla, imitando el rollback de una
// transacción real.
type Store struct {
	Rutas       *MemRutas
	Pulperias   *MemPulperias
	Clientes    *MemClientes
	Categorias  *MemCategorias
	Productos   *MemProductos
	Pedidos     *MemPedidos
	Cronogramas *MemCronogramas
	Visitas     *MemVisitas
	Usuarios    *MemUsuarios
	Tokens      *MemTokens
}

var _ ports.TxRunner = (*Store)(nil)

// NewStore construye un juego completo de repositorios en memoria.
func NewStore() *Store {
	pulperias := NewMemPulperias()
	return &Store{
		Rutas:       NewMemRutas(),
		Pulperias:   pulperias,
		Clientes:    NewMemClientes(pulperias),
		Categorias:  NewMemCategorias(),
		Productos:   NewMemProductos(),
		Pedidos:     NewMemPedidos(),
		Cronogramas: NewMemCronogramas(),
		Visitas:     NewMemVisitas(),
		Usuarios:    NewMemUsuarios(),
		Tokens:      NewMemTokens(),
	}
}

// Run ejecuta fn sobre los repositorios del store. Si fn devuelve error, el
// estado de rutas, pulperías, clientes, productos y pedidos vuelve al punto
// previo a la llamada.
func (s *Store) Run(_ context.Context, fn func(r ports.TxRepos) error) error {
	rutas := snapshotMap(s.Rutas.rows)
	pulperias := snapshotMap(s.Pulperias.rows)
	clientes := snapshotMap(s.Clientes.rows)
	productos := snapshotMap(s.Productos.rows)
	pedidos := snapshotMap(s.Pedidos.rows)
	detalles := snapshotMap(s.Pedidos.detalles)

	err := fn(ports.TxRepos{
		Rutas:     s.Rutas,
		Pulperias: s.Pulperias,
		Clientes:  s.Clientes,
		Productos: s.Productos,
		Pedidos:   s.Pedidos,
	})
	if err != nil {
		s.Rutas.rows = rutas
		s.Pulperias.rows = pulperias
		s.Clientes.rows = clientes
		s.Productos.rows = productos
		s.Pedidos.rows = pedidos
		s.Pedidos.detalles = detalles
		return err
	}
	return nil
}

func snapshotMap[K comparable, V entity.Ruta | entity.Pulperia | entity.Cliente | entity.Producto | entity.Pedido | entity.DetallePedido](rows map[K]*V) map[K]*V {
	out := make(map[K]*V, len(rows))
	for k, v := range rows {
		cp := *v
		out[k] = &cp
	}
	return out
}
