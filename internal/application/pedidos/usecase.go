// Package pedidos implementa la escritura transaccional de pedidos con sus
// detalles y las lecturas hidratadas para la app móvil. clienteId, pulperiaId
// y productoId son referencias blandas: un pedido sobrevive al borrado de las
// filas que referencia, y en las respuestas los nombres colgantes salen null.
package pedidos

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/joseeliezerr7/AppPandelpueblo/internal/application/counters"
	"github.com/joseeliezerr7/AppPandelpueblo/internal/application/dto"
	"github.com/joseeliezerr7/AppPandelpueblo/internal/application/ports"
	"github.com/joseeliezerr7/AppPandelpueblo/internal/domain"
	"github.com/joseeliezerr7/AppPandelpueblo/internal/domain/entity"
	"github.com/joseeliezerr7/AppPandelpueblo/internal/domain/repository"
)

// UseCase casos de uso de pedidos. Las escrituras corren dentro de una
// transacción; las lecturas de hidratación usan los repositorios del pool.
type UseCase struct {
	tx        ports.TxRunner
	pedidos   repository.PedidoRepository
	clientes  repository.ClienteRepository
	pulperias repository.PulperiaRepository
	productos repository.ProductoRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(tx ports.TxRunner, pedidos repository.PedidoRepository, clientes repository.ClienteRepository, pulperias repository.PulperiaRepository, productos repository.ProductoRepository) *UseCase {
	return &UseCase{tx: tx, pedidos: pedidos, clientes: clientes, pulperias: pulperias, productos: productos}
}

// Create inserta el pedido con total cero, inserta sus detalles y recalcula
// el total, todo en una transacción. Cualquier fallo antes del commit deja la
// base sin pedido ni detalles.
func (uc *UseCase) Create(ctx context.Context, req dto.PedidoRequest) (*dto.PedidoDTO, error) {
	fecha, err := dto.ParseFecha(req.Fecha)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	var pedidoID int64
	err = uc.tx.Run(ctx, func(r ports.TxRepos) error {
		now := time.Now()
		pedido := &entity.Pedido{
			ClienteID:  req.ClienteID,
			PulperiaID: req.PulperiaID,
			Fecha:      fecha,
			Total:      decimal.Zero,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		if err := r.Pedidos.Create(pedido); err != nil {
			return err
		}
		for _, d := range req.Detalles {
			detalle := &entity.DetallePedido{
				PedidoID:   pedido.ID,
				ProductoID: d.ProductoID,
				Cantidad:   d.Cantidad,
				Precio:     d.Precio,
				CreatedAt:  now,
				UpdatedAt:  now,
			}
			if err := r.Pedidos.CreateDetalle(detalle); err != nil {
				return err
			}
		}
		if _, err := counters.RefreshPedidoTotal(r.Pedidos, pedido.ID); err != nil {
			return err
		}
		pedidoID = pedido.ID
		return nil
	})
	if err != nil {
		return nil, err
	}
	return uc.GetByID(pedidoID)
}

// Update actualiza los campos escalares y concilia los detalles: los que
// traen id se actualizan si pertenecen al pedido, los que no traen id se
// crean, y los que ya no aparecen en la petición se eliminan. Luego recalcula
// el total. Todo dentro de la misma transacción.
func (uc *UseCase) Update(ctx context.Context, id int64, req dto.PedidoRequest) (*dto.PedidoDTO, error) {
	fecha, err := dto.ParseFecha(req.Fecha)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	err = uc.tx.Run(ctx, func(r ports.TxRepos) error {
		pedido, err := r.Pedidos.GetByID(id)
		if err != nil {
			return err
		}
		if pedido == nil {
			return domain.ErrNotFound
		}

		pedido.ClienteID = req.ClienteID
		pedido.PulperiaID = req.PulperiaID
		pedido.Fecha = fecha
		pedido.UpdatedAt = time.Now()
		if err := r.Pedidos.Update(pedido); err != nil {
			return err
		}

		var keep []int64
		for _, d := range req.Detalles {
			if d.ID != nil {
				keep = append(keep, *d.ID)
			}
		}
		if err := r.Pedidos.DeleteDetallesExcept(id, keep); err != nil {
			return err
		}

		now := time.Now()
		for _, d := range req.Detalles {
			if d.ID != nil {
				existente, err := r.Pedidos.GetDetalleByID(*d.ID)
				if err != nil {
					return err
				}
				// Solo se actualizan detalles que pertenecen a este pedido;
				// un id ajeno se ignora en silencio.
				if existente == nil || existente.PedidoID != id {
					continue
				}
				existente.ProductoID = d.ProductoID
				existente.Cantidad = d.Cantidad
				existente.Precio = d.Precio
				existente.UpdatedAt = now
				if err := r.Pedidos.UpdateDetalle(existente); err != nil {
					return err
				}
				continue
			}
			detalle := &entity.DetallePedido{
				PedidoID:   id,
				ProductoID: d.ProductoID,
				Cantidad:   d.Cantidad,
				Precio:     d.Precio,
				CreatedAt:  now,
				UpdatedAt:  now,
			}
			if err := r.Pedidos.CreateDetalle(detalle); err != nil {
				return err
			}
		}

		_, err = counters.RefreshPedidoTotal(r.Pedidos, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return uc.GetByID(id)
}

// Delete elimina el pedido y sus detalles dentro de una transacción.
func (uc *UseCase) Delete(ctx context.Context, id int64) error {
	return uc.tx.Run(ctx, func(r ports.TxRepos) error {
		pedido, err := r.Pedidos.GetByID(id)
		if err != nil {
			return err
		}
		if pedido == nil {
			return domain.ErrNotFound
		}
		if err := r.Pedidos.DeleteDetallesByPedido(id); err != nil {
			return err
		}
		return r.Pedidos.Delete(id)
	})
}

// GetByID devuelve el pedido hidratado, o nil si no existe.
func (uc *UseCase) GetByID(id int64) (*dto.PedidoDTO, error) {
	pedido, err := uc.pedidos.GetByID(id)
	if err != nil {
		return nil, err
	}
	if pedido == nil {
		return nil, nil
	}
	out, err := uc.hidratar(pedido)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// List devuelve pedidos hidratados ordenados por fecha descendente,
// filtrables por cliente y/o pulpería.
func (uc *UseCase) List(clienteID, pulperiaID *int64) ([]dto.PedidoDTO, error) {
	list, err := uc.pedidos.List(clienteID, pulperiaID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PedidoDTO, 0, len(list))
	for _, p := range list {
		d, err := uc.hidratar(p)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

func (uc *UseCase) hidratar(pedido *entity.Pedido) (dto.PedidoDTO, error) {
	detalles, err := uc.pedidos.GetDetallesByPedidoID(pedido.ID)
	if err != nil {
		return dto.PedidoDTO{}, err
	}
	detallesDTO := make([]dto.DetallePedidoDTO, 0, len(detalles))
	for _, d := range detalles {
		detallesDTO = append(detallesDTO, dto.ToDetallePedidoDTO(d, uc.nombreProducto(d.ProductoID)))
	}
	var nombrePulperia *string
	if pedido.PulperiaID != nil {
		nombrePulperia = uc.nombrePulperia(*pedido.PulperiaID)
	}
	return dto.ToPedidoDTO(pedido, uc.nombreCliente(pedido.ClienteID), nombrePulperia, detallesDTO), nil
}

// Las tres lecturas siguientes siguen referencias blandas: si la fila no
// existe (o está borrada) devuelven nil y la respuesta muestra null.

func (uc *UseCase) nombreCliente(id int64) *string {
	c, err := uc.clientes.GetByID(id)
	if err != nil || c == nil {
		return nil
	}
	return &c.Nombre
}

func (uc *UseCase) nombrePulperia(id int64) *string {
	p, err := uc.pulperias.GetByID(id)
	if err != nil || p == nil {
		return nil
	}
	return &p.Nombre
}

func (uc *UseCase) nombreProducto(id int64) *string {
	p, err := uc.productos.GetByID(id)
	if err != nil || p == nil {
		return nil
	}
	return &p.Nombre
}
