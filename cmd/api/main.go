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
	"github.com/tu-usuario/care-pro/internal/application/auth"
	appbeneficiary "github.com/tu-usuario/care-pro/internal/application/beneficiary"
	appnotification "github.com/tu-usuario/care-pro/internal/application/notification"
	"github.com/tu-usuario/care-pro/internal/application/tenant"
	"github.com/tu-usuario/care-pro/internal/application/usecase"
	"github.com/tu-usuario/care-pro/internal/domain/access"
	"github.com/tu-usuario/care-pro/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/care-pro/internal/interfaces/http"
	"github.com/tu-usuario/care-pro/pkg/config"
	"github.com/tu-usuario/care-pro/pkg/logger"
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

	orgRepo := postgres.NewOrganizationRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	beneficiaryRepo := postgres.NewBeneficiaryRepository(pool)
	notificationRepo := postgres.NewNotificationRepository(pool)
	roleRepo := postgres.NewRoleRepository(pool)
	keyLoader := postgres.NewTenantKeyLoader(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Motor de permisos: catálogo canónico + roles personalizados en BD.
	catalog := access.NewCatalog()
	engine := access.NewEngine(catalog, roleRepo)

	guard := tenant.NewGuard(orgRepo, userRepo, beneficiaryRepo, keyLoader)
	dispatcher := appnotification.NewDispatcher(notificationRepo, log)

	authUC := auth.NewUseCase(userRepo, orgRepo, guard, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	userUC := usecase.NewUserUseCase(engine, guard, userRepo, roleRepo)
	orgUC := usecase.NewOrganizationUseCase(orgRepo, userRepo, beneficiaryRepo)
	roleUC := usecase.NewRoleUseCase(guard, roleRepo, txRunner)
	beneficiaryUC := appbeneficiary.NewUseCase(engine, guard, beneficiaryRepo, userRepo, dispatcher, log)
	notificationUC := appnotification.NewUseCase(notificationRepo)

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
		Title:    "CarePro API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		UserUC:         userUC,
		OrganizationUC: orgUC,
		RoleUC:         roleUC,
		BeneficiaryUC:  beneficiaryUC,
		NotificationUC: notificationUC,
		Engine:         engine,
		Users:          userRepo,
		JWTSecret:      cfg.JWT.Secret,
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
