package main

import (
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/IbarrioNix/Hotel-Amigues-Empleado/internal/application"
	"github.com/IbarrioNix/Hotel-Amigues-Empleado/internal/config"
	"github.com/IbarrioNix/Hotel-Amigues-Empleado/internal/email"
	"github.com/IbarrioNix/Hotel-Amigues-Empleado/internal/infrastructure/repository"
	handlers "github.com/IbarrioNix/Hotel-Amigues-Empleado/internal/interfaces/http"
	"github.com/IbarrioNix/Hotel-Amigues-Empleado/internal/session"
	"github.com/IbarrioNix/Hotel-Amigues-Empleado/pkg/logger"
)

func main() {
	// .env es opcional; en producción la configuración llega por el entorno.
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	log := logger.New(logger.Options{Level: cfg.LogLevel, Pretty: cfg.LogPretty})

	db, err := sql.Open("postgres", cfg.GetDBConnString())
	if err != nil {
		log.Fatal().Err(err).Msg("error al abrir conexión a la base de datos")
	}
	defer db.Close()

	// Un fallo de conexión en el arranque es fatal para la sesión: no hay
	// reintentos ni estado parcial.
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("base de datos inaccesible")
	}
	log.Info().Str("host", cfg.DBHost).Str("db", cfg.DBName).Msg("conexión a PostgreSQL establecida")

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "http://localhost:3000",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))

	// Email (opcional)
	var emailClient *email.Client
	if cfg.EmailHabilitado() {
		emailClient, err = email.NewClient(
			cfg.SMTPHost,
			cfg.SMTPPort,
			cfg.SMTPUser,
			cfg.SMTPPassword,
			cfg.SMTPFromName,
			cfg.SMTPFromEmail,
		)
		if err != nil {
			log.Warn().Err(err).Msg("cliente de email no disponible, se continúa sin notificaciones")
			emailClient = nil
		}
	}

	// Sesión de la terminal
	sesion := session.New()

	// Habitaciones
	habitacionRepo := repository.NewHabitacionRepository(db)
	habitacionService := application.NewHabitacionService(habitacionRepo)
	habitacionHandler := handlers.NewHabitacionHandler(habitacionService)

	// Empleados y autenticación
	empleadoRepo := repository.NewEmpleadoRepository(db)
	empleadoService := application.NewEmpleadoService(empleadoRepo)
	empleadoHandler := handlers.NewEmpleadoHandler(empleadoService)

	authService := application.NewAuthService(empleadoRepo, cfg.JWTSecret, 8*time.Hour)
	authHandler := handlers.NewAuthHandler(authService, sesion)

	// Huéspedes
	huespedRepo := repository.NewHuespedRepository(db)
	huespedService := application.NewHuespedService(huespedRepo)
	huespedHandler := handlers.NewHuespedHandler(huespedService)

	// Reservaciones (ledger)
	reservacionRepo := repository.NewReservacionRepository(db)
	reservaService := application.NewReservaService(reservacionRepo, huespedRepo, emailClient, log)
	reservaHandler := handlers.NewReservaHandler(reservaService)

	// Reportes
	reporteRepo := repository.NewReporteRepository(db)
	reporteService := application.NewReporteService(reporteRepo, log)
	reporteHandler := handlers.NewReporteHandler(reporteService)

	api := app.Group("/api")

	// Autenticación
	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)
	auth.Post("/logout", authHandler.Logout)

	protegido := api.Group("", handlers.RequireAuth(cfg.JWTSecret))
	admin := protegido.Group("", handlers.RequireAdministrador())

	// Rutas de habitaciones
	habitaciones := protegido.Group("/habitaciones")
	habitaciones.Get("/", habitacionHandler.GetAll)
	habitaciones.Get("/disponibles", habitacionHandler.GetDisponibles)
	habitaciones.Get("/:id", habitacionHandler.GetByID)
	admin.Post("/habitaciones", habitacionHandler.Create)
	admin.Put("/habitaciones/:id", habitacionHandler.Update)
	admin.Patch("/habitaciones/:id/estado", habitacionHandler.CambiarEstado)
	admin.Delete("/habitaciones/:id", habitacionHandler.Delete)

	// Rutas de empleados (sólo administradores)
	admin.Get("/empleados", empleadoHandler.GetAll)
	admin.Post("/empleados", empleadoHandler.Create)
	admin.Put("/empleados/:id", empleadoHandler.Update)
	admin.Delete("/empleados/:id", empleadoHandler.Delete)

	// Rutas de huéspedes
	huespedes := protegido.Group("/huespedes")
	huespedes.Get("/", huespedHandler.GetAll)
	huespedes.Get("/buscar", huespedHandler.BuscarPorTelefono)
	huespedes.Get("/:id", huespedHandler.GetByID)
	huespedes.Post("/", huespedHandler.Create)
	huespedes.Put("/:id", huespedHandler.Update)

	// Rutas de reservaciones
	reservas := protegido.Group("/reservas")
	reservas.Get("/", reservaHandler.GetAll)
	reservas.Get("/:id", reservaHandler.GetByID)
	reservas.Post("/", reservaHandler.Create)
	reservas.Post("/:id/finalizar", reservaHandler.Finalizar)
	reservas.Post("/:id/cancelar", reservaHandler.Cancelar)

	// Rutas de reportes (sólo administradores)
	admin.Get("/reportes/reservas", reporteHandler.Reservas)
	admin.Get("/reportes/habitaciones", reporteHandler.Habitaciones)
	admin.Get("/reportes/estadisticas", reporteHandler.Estadisticas)

	log.Info().Str("puerto", cfg.ServerPort).Msg("servidor iniciado")
	if err := app.Listen(":" + cfg.ServerPort); err != nil {
		log.Fatal().Err(err).Msg("error al iniciar el servidor")
	}
}
