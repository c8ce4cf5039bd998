package ports

import (
	"context"

	"github.com/joseeliezerr7/AppPandelpueblo/internal/domain/repository"
)

// TxRepos agrupa los repositorios atados a una misma transacción. Los casos de
// uso que escriben varias filas (pedidos con detalles, escrituras que
// recalculan contadores) reciben este conjunto dentro del callback de Run.
type TxRepos struct {
	Rutas     repository.RutaRepository
	Pulperias repository.PulperiaRepository
	Clientes  repository.ClienteRepository
	Productos repository.ProductoRepository
	Pedidos   repository.PedidoRepository
}

// TxRunner ejecuta fn dentro de una transacción: si fn retorna error se hace
// rollback completo, si no, commit.
type TxRunner interface {
	Run(ctx context.Context, fn func(r TxRepos) error) error
}
