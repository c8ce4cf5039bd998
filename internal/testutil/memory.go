// Package testutil provee repositorios en memoria y un TxRunner de pruebas
// con la misma semántica observable que los adaptadores de PostgreSQL:
// borrado lógico, GetByID que devuelve nil para filas borradas, lecturas de
// agregación sobre filas vivas y unicidad de (clienteId, dia_semana).
package testutil

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/joseeliezerr7/AppPandelpueblo/internal/domain"
	"github.com/joseeliezerr7/AppPandelpueblo/internal/domain/entity"
	"github.com/joseeliezerr7/AppPandelpueblo/internal/domain/repository"
)

// ── Rutas ─────────────────────────────────────────────────────────────────────

type MemRutas struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]*entity.Ruta
}

var _ repository.RutaRepository = (*MemRutas)(nil)

func NewMemRutas() *MemRutas {
	return &MemRutas{nextID: 1, rows: map[int64]*entity.Ruta{}}
}

func (m *MemRutas) Create(r *entity.Ruta) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	r.ID = m.nextID
	m.nextID++
	cp := *r
	m.rows[r.ID] = &cp
	return nil
}

func (m *MemRutas) GetByID(id int64) (*entity.Ruta, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.rows[id]
	if !ok || r.DeletedAt != nil {
		return nil, nil
	}
	cp := *r
	return &cp, nil
}

func (m *MemRutas) List() ([]*entity.Ruta, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*entity.Ruta
	for _, r := range m.rows {
		if r.DeletedAt == nil {
			cp := *r
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Nombre < out[j].Nombre })
	return out, nil
}

func (m *MemRutas) Update(r *entity.Ruta) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cur, ok := m.rows[r.ID]
	if !ok || cur.DeletedAt != nil {
		return domain.ErrNotFound
	}
	cp := *r
	m.rows[r.ID] = &cp
	return nil
}

func (m *MemRutas) Delete(id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if r, ok := m.rows[id]; ok && r.DeletedAt == nil {
		now := time.Now()
		r.DeletedAt = &now
	}
	return nil
}

func (m *MemRutas) UpdateCounts(id int64, cantidadPulperias, cantidadClientes int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if r, ok := m.rows[id]; ok {
		r.CantidadPulperias = cantidadPulperias
		r.CantidadClientes = cantidadClientes
	}
	return nil
}

// ── Pulperías ─────────────────────────────────────────────────────────────────

type MemPulperias struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]*entity.Pulperia
}

var _ repository.PulperiaRepository = (*MemPulperias)(nil)

func NewMemPulperias() *MemPulperias {
	return &MemPulperias{nextID: 1, rows: map[int64]*entity.Pulperia{}}
}

func (m *MemPulperias) Create(p *entity.Pulperia) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p.ID = m.nextID
	m.nextID++
	cp := *p
	m.rows[p.ID] = &cp
	return nil
}

func (m *MemPulperias) GetByID(id int64) (*entity.Pulperia, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.rows[id]
	if !ok || p.DeletedAt != nil {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (m *MemPulperias) List() ([]*entity.Pulperia, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*entity.Pulperia
	for _, p := range m.rows {
		if p.DeletedAt == nil {
			cp := *p
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Nombre < out[j].Nombre })
	return out, nil
}

func (m *MemPulperias) ListByRuta(rutaID int64) ([]*entity.Pulperia, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*entity.Pulperia
	for _, p := range m.rows {
		if p.DeletedAt == nil && p.RutaID != nil && *p.RutaID == rutaID {
			cp := *p
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Orden < out[j].Orden })
	return out, nil
}

func (m *MemPulperias) Update(p *entity.Pulperia) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cur, ok := m.rows[p.ID]
	if !ok || cur.DeletedAt != nil {
		return domain.ErrNotFound
	}
	cp := *p
	m.rows[p.ID] = &cp
	return nil
}

func (m *MemPulperias) Delete(id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p, ok := m.rows[id]; ok && p.DeletedAt == nil {
		now := time.Now()
		p.DeletedAt = &now
	}
	return nil
}

func (m *MemPulperias) CountByRuta(rutaID int64) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, p := range m.rows {
		if p.DeletedAt == nil && p.RutaID != nil && *p.RutaID == rutaID {
			n++
		}
	}
	return n, nil
}

func (m *MemPulperias) SumClientesByRuta(rutaID int64) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, p := range m.rows {
		if p.DeletedAt == nil && p.RutaID != nil && *p.RutaID == rutaID {
			n += p.CantidadClientes
		}
	}
	return n, nil
}

func (m *MemPulperias) UpdateCantidadClientes(id int64, cantidad int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p, ok := m.rows[id]; ok {
		p.CantidadClientes = cantidad
	}
	return nil
}

// ── Clientes ──────────────────────────────────────────────────────────────────

type MemClientes struct {
	mu        sync.Mutex
	nextID    int64
	rows      map[int64]*entity.Cliente
	pulperias *MemPulperias // para ListByRuta
}

var _ repository.ClienteRepository = (*MemClientes)(nil)

func NewMemClientes(pulperias *MemPulperias) *MemClientes {
	return &MemClientes{nextID: 1, rows: map[int64]*entity.Cliente{}, pulperias: pulperias}
}

func (m *MemClientes) Create(c *entity.Cliente) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c.ID = m.nextID
	m.nextID++
	cp := *c
	m.rows[c.ID] = &cp
	return nil
}

func (m *MemClientes) GetByID(id int64) (*entity.Cliente, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.rows[id]
	if !ok || c.DeletedAt != nil {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (m *MemClientes) List(pulperiaID *int64) ([]*entity.Cliente, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*entity.Cliente
	for _, c := range m.rows {
		if c.DeletedAt != nil {
			continue
		}
		if pulperiaID != nil && (c.PulperiaID == nil || *c.PulperiaID != *pulperiaID) {
			continue
		}
		cp := *c
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Nombre < out[j].Nombre })
	return out, nil
}

func (m *MemClientes) ListByRuta(rutaID int64) ([]*entity.Cliente, error) {
	pulperias, err := m.pulperias.ListByRuta(rutaID)
	if err != nil {
		return nil, err
	}
	ids := map[int64]bool{}
	for _, p := range pulperias {
		ids[p.ID] = true
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*entity.Cliente
	for _, c := range m.rows {
		if c.DeletedAt == nil && c.PulperiaID != nil && ids[*c.PulperiaID] {
			cp := *c
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Nombre < out[j].Nombre })
	return out, nil
}

func (m *MemClientes) Update(c *entity.Cliente) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cur, ok := m.rows[c.ID]
	if !ok || cur.DeletedAt != nil {
		return domain.ErrNotFound
	}
	cp := *c
	m.rows[c.ID] = &cp
	return nil
}

func (m *MemClientes) Delete(id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if c, ok := m.rows[id]; ok && c.DeletedAt == nil {
		now := time.Now()
		c.DeletedAt = &now
	}
	return nil
}

func (m *MemClientes) CountByPulperia(pulperiaID int64) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, c := range m.rows {
		if c.DeletedAt == nil && c.PulperiaID != nil && *c.PulperiaID == pulperiaID {
			n++
		}
	}
	return n, nil
}

// ── Categorías ────────────────────────────────────────────────────────────────

type MemCategorias struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]*entity.Categoria
}

var _ repository.CategoriaRepository = (*MemCategorias)(nil)

func NewMemCategorias() *MemCategorias {
	return &MemCategorias{nextID: 1, rows: map[int64]*entity.Categoria{}}
}

func (m *MemCategorias) Create(c *entity.Categoria) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c.ID = m.nextID
	m.nextID++
	cp := *c
	m.rows[c.ID] = &cp
	return nil
}

func (m *MemCategorias) GetByID(id int64) (*entity.Categoria, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.rows[id]
	if !ok || c.DeletedAt != nil {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (m *MemCategorias) List() ([]*entity.Categoria, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*entity.Categoria
	for _, c := range m.rows {
		if c.DeletedAt == nil {
			cp := *c
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Nombre < out[j].Nombre })
	return out, nil
}

func (m *MemCategorias) Update(c *entity.Categoria) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cur, ok := m.rows[c.ID]
	if !ok || cur.DeletedAt != nil {
		return domain.ErrNotFound
	}
	cp := *c
	m.rows[c.ID] = &cp
	return nil
}

func (m *MemCategorias) Delete(id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if c, ok := m.rows[id]; ok && c.DeletedAt == nil {
		now := time.Now()
		c.DeletedAt = &now
	}
	return nil
}

// ── Productos ─────────────────────────────────────────────────────────────────

type MemProductos struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]*entity.Producto
}

var _ repository.ProductoRepository = (*MemProductos)(nil)

func NewMemProductos() *MemProductos {
	return &MemProductos{nextID: 1, rows: map[int64]*entity.Producto{}}
}

func (m *MemProductos) Create(p *entity.Producto) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p.ID = m.nextID
	m.nextID++
	cp := *p
	m.rows[p.ID] = &cp
	return nil
}

func (m *MemProductos) GetByID(id int64) (*entity.Producto, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.rows[id]
	if !ok || p.DeletedAt != nil {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (m *MemProductos) List() ([]*entity.Producto, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*entity.Producto
	for _, p := range m.rows {
		if p.DeletedAt == nil {
			cp := *p
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Nombre < out[j].Nombre })
	return out, nil
}

func (m *MemProductos) ListByCategoria(categoriaID int64) ([]*entity.Producto, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*entity.Producto
	for _, p := range m.rows {
		if p.DeletedAt == nil && p.CategoriaID == categoriaID {
			cp := *p
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Nombre < out[j].Nombre })
	return out, nil
}

func (m *MemProductos) Update(p *entity.Producto) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cur, ok := m.rows[p.ID]
	if !ok || cur.DeletedAt != nil {
		return domain.ErrNotFound
	}
	cp := *p
	m.rows[p.ID] = &cp
	return nil
}

func (m *MemProductos) Delete(id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p, ok := m.rows[id]; ok && p.DeletedAt == nil {
		now := time.Now()
		p.DeletedAt = &now
	}
	return nil
}

func (m *MemProductos) UpdateStock(id int64, cantidad int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.rows[id]
	if !ok || p.DeletedAt != nil {
		return domain.ErrNotFound
	}
	p.Cantidad = cantidad
	return nil
}

// ── Pedidos ───────────────────────────────────────────────────────────────────

type MemPedidos struct {
	mu         sync.Mutex
	nextID     int64
	nextDetID  int64
	rows       map[int64]*entity.Pedido
	detalles   map[int64]*entity.DetallePedido
	failCreate error // si no es nil, CreateDetalle falla (para probar rollback)
}

var _ repository.PedidoRepository = (*MemPedidos)(nil)

func NewMemPedidos() *MemPedidos {
	return &MemPedidos{
		nextID:    1,
		nextDetID: 1,
		rows:      map[int64]*entity.Pedido{},
		detalles:  map[int64]*entity.DetallePedido{},
	}
}

// FailCreateDetalle hace que el próximo CreateDetalle devuelva err.
func (m *MemPedidos) FailCreateDetalle(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failCreate = err
}

func (m *MemPedidos) Create(p *entity.Pedido) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p.ID = m.nextID
	m.nextID++
	cp := *p
	m.rows[p.ID] = &cp
	return nil
}

func (m *MemPedidos) GetByID(id int64) (*entity.Pedido, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.rows[id]
	if !ok || p.DeletedAt != nil {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (m *MemPedidos) List(clienteID, pulperiaID *int64) ([]*entity.Pedido, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*entity.Pedido
	for _, p := range m.rows {
		if p.DeletedAt != nil {
			continue
		}
		if clienteID != nil && p.ClienteID != *clienteID {
			continue
		}
		if pulperiaID != nil && (p.PulperiaID == nil || *p.PulperiaID != *pulperiaID) {
			continue
		}
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Fecha.After(out[j].Fecha) })
	return out, nil
}

func (m *MemPedidos) Update(p *entity.Pedido) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cur, ok := m.rows[p.ID]
	if !ok || cur.DeletedAt != nil {
		return domain.ErrNotFound
	}
	cp := *p
	m.rows[p.ID] = &cp
	return nil
}

func (m *MemPedidos) Delete(id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p, ok := m.rows[id]; ok && p.DeletedAt == nil {
		now := time.Now()
		p.DeletedAt = &now
	}
	return nil
}

func (m *MemPedidos) CreateDetalle(d *entity.DetallePedido) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failCreate != nil {
		return m.failCreate
	}
	d.ID = m.nextDetID
	m.nextDetID++
	cp := *d
	m.detalles[d.ID] = &cp
	return nil
}

func (m *MemPedidos) UpdateDetalle(d *entity.DetallePedido) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cur, ok := m.detalles[d.ID]
	if !ok || cur.DeletedAt != nil {
		return domain.ErrNotFound
	}
	cp := *d
	m.detalles[d.ID] = &cp
	return nil
}

func (m *MemPedidos) GetDetalleByID(id int64) (*entity.DetallePedido, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.detalles[id]
	if !ok || d.DeletedAt != nil {
		return nil, nil
	}
	cp := *d
	return &cp, nil
}

func (m *MemPedidos) GetDetallesByPedidoID(pedidoID int64) ([]*entity.DetallePedido, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*entity.DetallePedido
	for _, d := range m.detalles {
		if d.DeletedAt == nil && d.PedidoID == pedidoID {
			cp := *d
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *MemPedidos) DeleteDetallesExcept(pedidoID int64, keep []int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	keepSet := map[int64]bool{}
	for _, id := range keep {
		keepSet[id] = true
	}
	now := time.Now()
	for _, d := range m.detalles {
		if d.DeletedAt == nil && d.PedidoID == pedidoID && !keepSet[d.ID] {
			t := now
			d.DeletedAt = &t
		}
	}
	return nil
}

func (m *MemPedidos) DeleteDetallesByPedido(pedidoID int64) error {
	return m.DeleteDetallesExcept(pedidoID, nil)
}

func (m *MemPedidos) SumDetalles(pedidoID int64) (decimal.Decimal, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	total := decimal.Zero
	for _, d := range m.detalles {
		if d.DeletedAt == nil && d.PedidoID == pedidoID {
			total = total.Add(d.Precio.Mul(decimal.NewFromInt(int64(d.Cantidad))))
		}
	}
	return total, nil
}

func (m *MemPedidos) UpdateTotal(id int64, total decimal.Decimal) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p, ok := m.rows[id]; ok {
		p.Total = total
	}
	return nil
}

// ── Cronogramas ───────────────────────────────────────────────────────────────

type MemCronogramas struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]*entity.CronogramaVisita
}

var _ repository.CronogramaRepository = (*MemCronogramas)(nil)

func NewMemCronogramas() *MemCronogramas {
	return &MemCronogramas{nextID: 1, rows: map[int64]*entity.CronogramaVisita{}}
}

func (m *MemCronogramas) duplicado(clienteID int64, dia string, exceptID int64) bool {
	for _, c := range m.rows {
		if c.DeletedAt == nil && c.ID != exceptID && c.ClienteID == clienteID &&
			strings.EqualFold(c.DiaSemana, dia) {
			return true
		}
	}
	return false
}

func (m *MemCronogramas) Create(c *entity.CronogramaVisita) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.duplicado(c.ClienteID, c.DiaSemana, 0) {
		return domain.ErrDuplicate
	}
	c.ID = m.nextID
	m.nextID++
	cp := *c
	m.rows[c.ID] = &cp
	return nil
}

func (m *MemCronogramas) GetByID(id int64) (*entity.CronogramaVisita, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.rows[id]
	if !ok || c.DeletedAt != nil {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (m *MemCronogramas) List(clienteID *int64) ([]*entity.CronogramaVisita, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*entity.CronogramaVisita
	for _, c := range m.rows {
		if c.DeletedAt != nil {
			continue
		}
		if clienteID != nil && c.ClienteID != *clienteID {
			continue
		}
		cp := *c
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DiaSemana < out[j].DiaSemana })
	return out, nil
}

func (m *MemCronogramas) ListByCliente(clienteID int64) ([]*entity.CronogramaVisita, error) {
	return m.List(&clienteID)
}

func (m *MemCronogramas) Update(c *entity.CronogramaVisita) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cur, ok := m.rows[c.ID]
	if !ok || cur.DeletedAt != nil {
		return domain.ErrNotFound
	}
	if m.duplicado(c.ClienteID, c.DiaSemana, c.ID) {
		return domain.ErrDuplicate
	}
	cp := *c
	m.rows[c.ID] = &cp
	return nil
}

func (m *MemCronogramas) Delete(id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if c, ok := m.rows[id]; ok && c.DeletedAt == nil {
		now := time.Now()
		c.DeletedAt = &now
	}
	return nil
}

// ── Visitas ───────────────────────────────────────────────────────────────────

type MemVisitas struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]*entity.VisitaCliente
}

var _ repository.VisitaRepository = (*MemVisitas)(nil)

func NewMemVisitas() *MemVisitas {
	return &MemVisitas{nextID: 1, rows: map[int64]*entity.VisitaCliente{}}
}

func (m *MemVisitas) Create(v *entity.VisitaCliente) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	v.ID = m.nextID
	m.nextID++
	cp := *v
	m.rows[v.ID] = &cp
	return nil
}

func (m *MemVisitas) GetByID(id int64) (*entity.VisitaCliente, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.rows[id]
	if !ok || v.DeletedAt != nil {
		return nil, nil
	}
	cp := *v
	return &cp, nil
}

func (m *MemVisitas) List(clienteID *int64, desde, hasta *time.Time) ([]*entity.VisitaCliente, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*entity.VisitaCliente
	for _, v := range m.rows {
		if v.DeletedAt != nil {
			continue
		}
		if clienteID != nil && v.ClienteID != *clienteID {
			continue
		}
		if desde != nil && v.Fecha.Before(*desde) {
			continue
		}
		if hasta != nil && v.Fecha.After(*hasta) {
			continue
		}
		cp := *v
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Fecha.After(out[j].Fecha) })
	return out, nil
}

func (m *MemVisitas) ListByCliente(clienteID int64) ([]*entity.VisitaCliente, error) {
	return m.List(&clienteID, nil, nil)
}

func (m *MemVisitas) Update(v *entity.VisitaCliente) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cur, ok := m.rows[v.ID]
	if !ok || cur.DeletedAt != nil {
		return domain.ErrNotFound
	}
	cp := *v
	m.rows[v.ID] = &cp
	return nil
}

func (m *MemVisitas) Delete(id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if v, ok := m.rows[id]; ok && v.DeletedAt == nil {
		now := time.Now()
		v.DeletedAt = &now
	}
	return nil
}

// ── Usuarios y tokens ─────────────────────────────────────────────────────────

type MemUsuarios struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]*entity.Usuario
}

var _ repository.UsuarioRepository = (*MemUsuarios)(nil)

func NewMemUsuarios() *MemUsuarios {
	return &MemUsuarios{nextID: 1, rows: map[int64]*entity.Usuario{}}
}

func (m *MemUsuarios) Create(u *entity.Usuario) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, cur := range m.rows {
		if strings.EqualFold(cur.CorreoElectronico, u.CorreoElectronico) {
			return domain.ErrEmailAlreadyExists
		}
	}
	u.ID = m.nextID
	m.nextID++
	cp := *u
	m.rows[u.ID] = &cp
	return nil
}

func (m *MemUsuarios) GetByID(id int64) (*entity.Usuario, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.rows[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (m *MemUsuarios) GetByEmail(correo string) (*entity.Usuario, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.rows {
		if strings.EqualFold(u.CorreoElectronico, correo) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *MemUsuarios) List() ([]*entity.Usuario, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*entity.Usuario
	for _, u := range m.rows {
		cp := *u
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Nombre < out[j].Nombre })
	return out, nil
}

func (m *MemUsuarios) Update(u *entity.Usuario) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[u.ID]; !ok {
		return domain.ErrUserNotFound
	}
	for _, cur := range m.rows {
		if cur.ID != u.ID && strings.EqualFold(cur.CorreoElectronico, u.CorreoElectronico) {
			return domain.ErrEmailAlreadyExists
		}
	}
	cp := *u
	m.rows[u.ID] = &cp
	return nil
}

func (m *MemUsuarios) Delete(id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.rows, id)
	return nil
}

type MemTokens struct {
	mu   sync.Mutex
	rows map[string]*entity.AccessToken
}

var _ repository.TokenRepository = (*MemTokens)(nil)

func NewMemTokens() *MemTokens {
	return &MemTokens{rows: map[string]*entity.AccessToken{}}
}

func (m *MemTokens) Create(t *entity.AccessToken) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *t
	m.rows[t.ID] = &cp
	return nil
}

func (m *MemTokens) Exists(id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.rows[id]
	return ok, nil
}

func (m *MemTokens) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.rows, id)
	return nil
}

func (m *MemTokens) DeleteByUsuario(usuarioID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, t := range m.rows {
		if t.UsuarioID == usuarioID {
			delete(m.rows, id)
		}
	}
	return nil
}
