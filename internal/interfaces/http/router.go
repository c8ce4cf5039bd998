package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/joseeliezerr7/AppPandelpueblo/internal/application/auth"
	"github.com/joseeliezerr7/AppPandelpueblo/internal/application/pedidos"
	"github.com/joseeliezerr7/AppPandelpueblo/internal/application/usecase"
	"github.com/joseeliezerr7/AppPandelpueblo/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.UseCase
	RutaUC       *usecase.RutaUseCase
	PulperiaUC   *usecase.PulperiaUseCase
	ClienteUC    *usecase.ClienteUseCase
	CategoriaUC  *usecase.CategoriaUseCase
	ProductoUC   *usecase.ProductoUseCase
	PedidoUC     *pedidos.UseCase
	CronogramaUC *usecase.CronogramaUseCase
	VisitaUC     *usecase.VisitaUseCase
	UsuarioUC    *usecase.UsuarioUseCase
	PDF          PDFGenerator
	Tokens       repository.TokenRepository
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/login", authHandler.Login)
	api.Post("/register", authHandler.Register)
	// Alias que los clientes móviles antiguos siguen usando.
	api.Post("/usuarios/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret, deps.Tokens))

	protected.Post("/logout", authHandler.Logout)
	protected.Get("/me", authHandler.Me)

	// Rutas de reparto (protegido)
	rutas := protected.Group("/rutas")
	rutaHandler := NewRutaHandler(deps.RutaUC)
	rutas.Get("/", rutaHandler.List)
	rutas.Post("/", rutaHandler.Create)
	rutas.Get("/:id", rutaHandler.Show)
	rutas.Put("/:id", rutaHandler.Update)
	rutas.Delete("/:id", rutaHandler.Delete)
	rutas.Get("/:id/pulperias", rutaHandler.Pulperias)
	rutas.Get("/:id/clientes", rutaHandler.Clientes)

	// Pulperías (protegido)
	pulperias := protected.Group("/pulperias")
	pulperiaHandler := NewPulperiaHandler(deps.PulperiaUC)
	pulperias.Get("/", pulperiaHandler.List)
	pulperias.Post("/", pulperiaHandler.Create)
	pulperias.Get("/:id", pulperiaHandler.Show)
	pulperias.Put("/:id", pulperiaHandler.Update)
	pulperias.Delete("/:id", pulperiaHandler.Delete)

	// Clientes (protegido)
	clientes := protected.Group("/clientes")
	clienteHandler := NewClienteHandler(deps.ClienteUC, deps.CronogramaUC, deps.VisitaUC, deps.PedidoUC)
	clientes.Get("/", clienteHandler.List)
	clientes.Post("/", clienteHandler.Create)
	clientes.Get("/:id", clienteHandler.Show)
	clientes.Put("/:id", clienteHandler.Update)
	clientes.Delete("/:id", clienteHandler.Delete)
	clientes.Get("/:id/cronogramas", clienteHandler.Cronogramas)
	clientes.Get("/:id/visitas", clienteHandler.Visitas)
	clientes.Get("/:id/pedidos", clienteHandler.Pedidos)

	// Categorías (protegido)
	categorias := protected.Group("/categorias")
	categoriaHandler := NewCategoriaHandler(deps.CategoriaUC, deps.ProductoUC)
	categorias.Get("/", categoriaHandler.List)
	categorias.Post("/", categoriaHandler.Create)
	categorias.Get("/:id", categoriaHandler.Show)
	categorias.Put("/:id", categoriaHandler.Update)
	categorias.Delete("/:id", categoriaHandler.Delete)
	categorias.Get("/:id/productos", categoriaHandler.Productos)

	// Productos (protegido)
	productos := protected.Group("/productos")
	productoHandler := NewProductoHandler(deps.ProductoUC)
	productos.Get("/", productoHandler.List)
	productos.Post("/", productoHandler.Create)
	productos.Get("/:id", productoHandler.Show)
	productos.Put("/:id", productoHandler.Update)
	productos.Delete("/:id", productoHandler.Delete)
	productos.Put("/:id/stock", productoHandler.UpdateStock)
	productos.Patch("/:id/stock", productoHandler.UpdateStock)

	// Pedidos (protegido)
	pedidosGroup := protected.Group("/pedidos")
	pedidoHandler := NewPedidoHandler(deps.PedidoUC, deps.PDF)
	pedidosGroup.Get("/", pedidoHandler.List)
	pedidosGroup.Post("/", pedidoHandler.Create)
	pedidosGroup.Get("/:id", pedidoHandler.Show)
	pedidosGroup.Put("/:id", pedidoHandler.Update)
	pedidosGroup.Delete("/:id", pedidoHandler.Delete)
	pedidosGroup.Get("/:id/pdf", pedidoHandler.PDF)

	// Cronogramas de visita (protegido)
	cronogramas := protected.Group("/cronograma-visitas")
	cronogramaHandler := NewCronogramaHandler(deps.CronogramaUC)
	cronogramas.Get("/", cronogramaHandler.List)
	cronogramas.Post("/", cronogramaHandler.Create)
	cronogramas.Put("/:id", cronogramaHandler.Update)
	cronogramas.Delete("/:id", cronogramaHandler.Delete)

	// Visitas (protegido)
	visitas := protected.Group("/visitas-clientes")
	visitaHandler := NewVisitaHandler(deps.VisitaUC)
	visitas.Get("/", visitaHandler.List)
	visitas.Post("/", visitaHandler.Create)
	visitas.Get("/:id", visitaHandler.Show)
	visitas.Put("/:id", visitaHandler.Update)
	visitas.Delete("/:id", visitaHandler.Delete)

	// Usuarios (protegido)
	usuarios := protected.Group("/usuarios")
	usuarioHandler := NewUsuarioHandler(deps.UsuarioUC)
	usuarios.Get("/", usuarioHandler.List)
	usuarios.Post("/", usuarioHandler.Create)
	usuarios.Get("/:id", usuarioHandler.Show)
	usuarios.Put("/:id", usuarioHandler.Update)
	usuarios.Delete("/:id", usuarioHandler.Delete)
}
