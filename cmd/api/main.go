package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/siges-soporte/siges-api/internal/application/auth"
	"github.com/siges-soporte/siges-api/internal/application/usecase"
	"github.com/siges-soporte/siges-api/internal/infrastructure/drive"
	"github.com/siges-soporte/siges-api/internal/infrastructure/freshdesk"
	"github.com/siges-soporte/siges-api/internal/infrastructure/mail"
	"github.com/siges-soporte/siges-api/internal/infrastructure/metrics"
	"github.com/siges-soporte/siges-api/internal/infrastructure/postgres"
	httpRouter "github.com/siges-soporte/siges-api/internal/interfaces/http"
	"github.com/siges-soporte/siges-api/pkg/config"
	"github.com/siges-soporte/siges-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	botuserRepo := postgres.NewBotuserRepository(pool)
	pcRepo := postgres.NewPcRepository(pool)
	computerRepo := postgres.NewComputerRepository(pool)
	ticketRepo := postgres.NewTicketRepository(pool)
	botticketRepo := postgres.NewBotticketRepository(pool)
	opticketRepo := postgres.NewOpticketRepository(pool)
	webuserRepo := postgres.NewWebuserRepository(pool)
	operatorRepo := postgres.NewOperatorRepository(pool)
	staffRepo := postgres.NewStaffRepository(pool)
	recommendationRepo := postgres.NewRecommendationRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	appMetrics := metrics.New(registry)

	mailer := mail.Instrument(mail.NewGmailMailer(cfg.Mail), appMetrics.MailFailure)

	driveStore, err := drive.NewStore(ctx, cfg.Drive)
	if err != nil {
		log.Fatal().Err(err).Msg("cliente de Google Drive")
	}
	helpdesk := freshdesk.NewClient(cfg.Freshdesk)

	authUC := auth.NewAuthUseCase(userRepo, clientRepo, mailer, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, cfg.Auth.AdminEmails, cfg.Auth.FrontendBase)

	userUC := usecase.NewUserUseCase(userRepo, clientRepo, txRunner, mailer)
	clientUC := usecase.NewClientUseCase(clientRepo)
	botuserUC := usecase.NewBotuserUseCase(botuserRepo, clientRepo)
	pcUC := usecase.NewPcUseCase(pcRepo, clientRepo)
	computerUC := usecase.NewComputerUseCase(computerRepo)
	ticketUC := usecase.NewTicketUseCase(ticketRepo, userRepo)
	botticketUC := usecase.NewBotticketUseCase(botticketRepo, clientRepo)
	opticketUC := usecase.NewOpticketUseCase(opticketRepo)
	webuserUC := usecase.NewWebuserUseCase(webuserRepo, mailer)
	operatorUC := usecase.NewOperatorUseCase(operatorRepo)
	staffUC := usecase.NewStaffUseCase(staffRepo)
	recommendationUC := usecase.NewRecommendationUseCase(recommendationRepo)
	testingUC := usecase.NewTestingUseCase(clientRepo, botuserRepo, botticketRepo, pcRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(appMetrics.Middleware())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "SIGES API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:           authUC,
		UserUC:           userUC,
		ClientUC:         clientUC,
		BotuserUC:        botuserUC,
		PcUC:             pcUC,
		ComputerUC:       computerUC,
		TicketUC:         ticketUC,
		BotticketUC:      botticketUC,
		OpticketUC:       opticketUC,
		WebuserUC:        webuserUC,
		OperatorUC:       operatorUC,
		StaffUC:          staffUC,
		RecommendationUC: recommendationUC,
		TestingUC:        testingUC,
		Helpdesk:         helpdesk,
		Drive:            driveStore,
		ClientRepo:       clientRepo,
		StaticAPIKey:     cfg.Auth.StaticAPIKey,
		JWTSecret:        cfg.JWT.Secret,
		MetricsHandler: adaptor.HTTPHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{
			Registry: registry,
		})),
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
