package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/joseeliezerr7/AppPandelpueblo/internal/application/auth"
	"github.com/joseeliezerr7/AppPandelpueblo/internal/application/pedidos"
	"github.com/joseeliezerr7/AppPandelpueblo/internal/application/usecase"
	infrapdf "github.com/joseeliezerr7/AppPandelpueblo/internal/infrastructure/pdf"
	"github.com/joseeliezerr7/AppPandelpueblo/internal/infrastructure/postgres"
	httpRouter "github.com/joseeliezerr7/AppPandelpueblo/internal/interfaces/http"
	"github.com/joseeliezerr7/AppPandelpueblo/pkg/config"
	"github.com/joseeliezerr7/AppPandelpueblo/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	rutaRepo := postgres.NewRutaRepository(pool)
	pulperiaRepo := postgres.NewPulperiaRepository(pool)
	clienteRepo := postgres.NewClienteRepository(pool)
	categoriaRepo := postgres.NewCategoriaRepository(pool)
	productoRepo := postgres.NewProductoRepository(pool)
	pedidoRepo := postgres.NewPedidoRepository(pool)
	cronogramaRepo := postgres.NewCronogramaRepository(pool)
	visitaRepo := postgres.NewVisitaRepository(pool)
	usuarioRepo := postgres.NewUsuarioRepository(pool)
	tokenRepo := postgres.NewTokenRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	rutaUC := usecase.NewRutaUseCase(rutaRepo, pulperiaRepo, clienteRepo)
	pulperiaUC := usecase.NewPulperiaUseCase(txRunner, pulperiaRepo, rutaRepo)
	clienteUC := usecase.NewClienteUseCase(txRunner, clienteRepo, pulperiaRepo)
	categoriaUC := usecase.NewCategoriaUseCase(categoriaRepo)
	productoUC := usecase.NewProductoUseCase(productoRepo, categoriaRepo)
	pedidoUC := pedidos.NewUseCase(txRunner, pedidoRepo, clienteRepo, pulperiaRepo, productoRepo)
	cronogramaUC := usecase.NewCronogramaUseCase(cronogramaRepo, clienteRepo)
	visitaUC := usecase.NewVisitaUseCase(visitaRepo, clienteRepo)
	usuarioUC := usecase.NewUsuarioUseCase(usuarioRepo, tokenRepo)
	authUC := auth.NewUseCase(usuarioRepo, tokenRepo, auth.Config{
		Secret:            cfg.JWT.Secret,
		Issuer:            cfg.JWT.Issuer,
		ExpirationMinutes: cfg.JWT.Expiration,
	})

	pdfGenerator := infrapdf.NewMarotoPDFGenerator()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Pan del Pueblo API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		RutaUC:       rutaUC,
		PulperiaUC:   pulperiaUC,
		ClienteUC:    clienteUC,
		CategoriaUC:  categoriaUC,
		ProductoUC:   productoUC,
		PedidoUC:     pedidoUC,
		CronogramaUC: cronogramaUC,
		VisitaUC:     visitaUC,
		UsuarioUC:    usuarioUC,
		PDF:          pdfGenerator,
		Tokens:       tokenRepo,
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
