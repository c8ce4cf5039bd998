// Package counters recalcula los agregados derivados del dominio:
// cantidad_clientes de una pulpería, cantidad_pulperias/cantidad_clientes de
// una ruta y el total de un pedido. El recálculo siempre es completo (cuenta o
// suma desde las filas vivas), nunca aritmética incremental, así el contador
// converge al valor correcto aunque el valor previo estuviera mal. Las
// escrituras usan los caminos UpdateCounts/UpdateCantidadClientes/UpdateTotal,
// que no vuelven a disparar propagación.
//
// Los llamadores invocan estas funciones dentro de la misma transacción que la
// escritura que origina el cambio, pasando los repositorios ligados a esa tx.
package counters

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/joseeliezerr7/AppPandelpueblo/internal/domain/repository"
)

// RefreshPulperia recalcula cantidad_clientes de la pulpería y propaga el
// cambio a su ruta si tiene una asignada. Si la pulpería ya no existe (o está
// borrada) no hay nada que refrescar.
func RefreshPulperia(clientes repository.ClienteRepository, pulperias repository.PulperiaRepository, rutas repository.RutaRepository, pulperiaID int64) error {
	pulperia, err := pulperias.GetByID(pulperiaID)
	if err != nil {
		return fmt.Errorf("refresh pulperia %d: %w", pulperiaID, err)
	}
	if pulperia == nil {
		return nil
	}

	cantidad, err := clientes.CountByPulperia(pulperiaID)
	if err != nil {
		return fmt.Errorf("refresh pulperia %d: %w", pulperiaID, err)
	}
	if err := pulperias.UpdateCantidadClientes(pulperiaID, cantidad); err != nil {
		return fmt.Errorf("refresh pulperia %d: %w", pulperiaID, err)
	}

	if pulperia.RutaID != nil {
		return RefreshRuta(pulperias, rutas, *pulperia.RutaID)
	}
	return nil
}

// RefreshRuta recalcula los dos contadores de la ruta desde sus pulperías no
// borradas: cantidad_pulperias es la cuenta, cantidad_clientes la suma de los
// cantidad_clientes de cada pulpería.
func RefreshRuta(pulperias repository.PulperiaRepository, rutas repository.RutaRepository, rutaID int64) error {
	ruta, err := rutas.GetByID(rutaID)
	if err != nil {
		return fmt.Errorf("refresh ruta %d: %w", rutaID, err)
	}
	if ruta == nil {
		return nil
	}

	cantidadPulperias, err := pulperias.CountByRuta(rutaID)
	if err != nil {
		return fmt.Errorf("refresh ruta %d: %w", rutaID, err)
	}
	cantidadClientes, err := pulperias.SumClientesByRuta(rutaID)
	if err != nil {
		return fmt.Errorf("refresh ruta %d: %w", rutaID, err)
	}
	if err := rutas.UpdateCounts(rutaID, cantidadPulperias, cantidadClientes); err != nil {
		return fmt.Errorf("refresh ruta %d: %w", rutaID, err)
	}
	return nil
}

// RefreshPedidoTotal recalcula el total del pedido como Σ(cantidad × precio)
// de sus detalles no borrados y lo persiste. Devuelve el total calculado.
func RefreshPedidoTotal(pedidos repository.PedidoRepository, pedidoID int64) (decimal.Decimal, error) {
	total, err := pedidos.SumDetalles(pedidoID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("refresh total pedido %d: %w", pedidoID, err)
	}
	if err := pedidos.UpdateTotal(pedidoID, total); err != nil {
		return decimal.Zero, fmt.Errorf("refresh total pedido %d: %w", pedidoID, err)
	}
	return total, nil
}
