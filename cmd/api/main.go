package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	appanalytics "github.com/jhoicas/Trunks-api/internal/application/analytics"
	"github.com/jhoicas/Trunks-api/internal/application/auth"
	"github.com/jhoicas/Trunks-api/internal/application/trunks"
	"github.com/jhoicas/Trunks-api/internal/domain/repository"
	"github.com/jhoicas/Trunks-api/internal/infrastructure/cache"
	"github.com/jhoicas/Trunks-api/internal/infrastructure/memory"
	"github.com/jhoicas/Trunks-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Trunks-api/internal/interfaces/http"
	"github.com/jhoicas/Trunks-api/pkg/config"
	"github.com/jhoicas/Trunks-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.App.Storage).
		Msg("iniciando aplicación")

	ctx := context.Background()

	var (
		txRunner repository.TxRunner
		userRepo repository.UserRepository
	)
	switch cfg.App.Storage {
	case config.StorageMemory:
		// Sin persistencia: útil para desarrollo y demos
		store := memory.NewStore()
		txRunner = store
		userRepo = store.Users()
		log.Warn().Msg("almacenamiento en memoria: los datos se pierden al reiniciar")
	default:
		pool, err := postgres.NewPool(ctx, cfg.DB, postgres.PoolOptions{})
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()

		applied, err := postgres.Migrate(ctx, pool)
		if err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
		log.Info().Strs("applied", applied).Msg("migraciones al día")

		txRunner = postgres.NewTxRunner(pool)
		userRepo = postgres.NewUserRepository(pool)
	}

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	created, err := authUC.SeedAdmin(ctx, cfg.Admin.Password)
	if err != nil {
		log.Fatal().Err(err).Msg("sembrar usuario admin")
	}
	if created {
		log.Info().Msg("usuario admin creado")
	}

	// Caché del dashboard: opcional, solo con REDIS_ADDR
	var (
		statsCache appanalytics.StatsCache
		notifier   trunks.ChangeNotifier
	)
	if cfg.Redis.Enabled() {
		rdb, err := cache.NewClient(ctx, cfg.Redis)
		if err != nil {
			log.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("Redis no disponible, dashboard sin caché")
		} else {
			defer rdb.Close()
			c := cache.NewStatsCache(rdb, cfg.App.Name, cache.DefaultTTL, log)
			statsCache, notifier = c, c
			log.Info().Str("addr", cfg.Redis.Addr).Msg("caché de dashboard en Redis")
		}
	}

	metrics := httpRouter.NewMetrics("trunks")

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestID())
	app.Use(httpRouter.RequestLogger(log.Component("http")))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.HTTP.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(metrics.Middleware())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Trunks API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", metrics.Handler())

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		DashboardUC: appanalytics.NewDashboardUseCase(txRunner, statsCache),
		NSOTrunkUC:  trunks.NewNSOTrunkUseCase(txRunner, notifier),
		VNOTrunkUC:  trunks.NewVNOTrunkUseCase(txRunner, notifier),
		CustomerUC:  trunks.NewCustomerUseCase(txRunner, notifier),
		MappingUC:   trunks.NewTrunkMappingUseCase(txRunner, notifier),
		DIDUC:       trunks.NewDIDUseCase(txRunner, notifier),
		Metrics:     metrics,
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
