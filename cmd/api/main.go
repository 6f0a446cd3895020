package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"heroapp/internal/adapter/database/postgres"
	pgrepo "heroapp/internal/adapter/database/postgres/repository"
	"heroapp/internal/adapter/database/sqlite"
	sqliterepo "heroapp/internal/adapter/database/sqlite/repository"
	"heroapp/internal/adapter/http/handler"
	"heroapp/internal/adapter/revocation"
	"heroapp/internal/core/port"
	"heroapp/internal/core/service"
	"heroapp/internal/shared"
	"heroapp/pkg/api"
	"heroapp/pkg/auth"
	"heroapp/pkg/config"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()

	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}

	logger, err := shared.NewAppLogger("heroapp")

	if err != nil {
		log.Fatal("Failed to initialize logger: ", err)
	}

	defer logger.Sync()

	telemetry, err := shared.InitTelemetry(shared.TelemetryConfig{
		ServiceName:    "heroapp",
		ServiceVersion: "1.0.0",
		MetricsPort:    cfg.MetricsPort,
		OTLPEndpoint:   cfg.OTLPEndpoint,
		Environment:    cfg.Environment,
	})

	if err != nil {
		log.Fatal("Failed to initialize telemetry: ", err)
	}

	defer telemetry.Shutdown(ctx)

	metrics := shared.NewAppMetrics(telemetry.PrometheusRegistry)
	metrics.StartSystemMetrics(ctx)

	users, heroes, err := buildRepositories(ctx, cfg)

	if err != nil {
		log.Fatal("Failed to initialize database: ", err)
	}

	hasher := auth.NewBcryptHasher(cfg.BcryptCost)

	issuer := auth.NewIssuer(
		[]byte(cfg.AccessTokenSecret),
		[]byte(cfg.RefreshTokenSecret),
		cfg.AccessTokenTTL,
		cfg.RefreshTokenTTL,
	)

	var revoker port.TokenRevoker

	if cfg.RedisAddr != "" {
		revoker = revocation.NewRedisRevoker(cfg.RedisAddr)
	} else {
		revoker = revocation.NewMemoryRevoker()
	}

	authService := service.NewAuthService(users, hasher, issuer, revoker, cfg.RefreshTokenTTL)
	heroService := service.NewHeroService(heroes)

	handlers := api.HandlersConfig{
		AuthHandler: handler.NewAuthHandler(authService, issuer),
		HeroHandler: handler.NewHeroHandler(heroService),
		TokenIssuer: issuer,
		Users:       users,
	}

	router := api.SetupRouter(handlers, metrics, logger)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := router.Run(":" + cfg.ServerPort); err != nil {
			log.Fatal("Server stopped: ", err)
		}
	}()

	<-c
	logger.Logger.Info("Shutting down gracefully...")
}

// buildRepositories picks postgres when DATABASE_URL is set, otherwise the
// embedded sqlite database.
func buildRepositories(ctx context.Context, cfg *config.Config) (port.UserRepository, port.HeroRepository, error) {
	if cfg.DatabaseURL != "" {
		db, err := postgres.NewDB(ctx, cfg.DatabaseURL, "infra/migrations")

		if err != nil {
			return nil, nil, err
		}

		return pgrepo.NewUserRepository(db), pgrepo.NewHeroRepository(db), nil
	}

	db, err := sqlite.New(cfg.DatabasePath, cfg.MigrationsPath)

	if err != nil {
		return nil, nil, err
	}

	return sqliterepo.NewUserRepository(db), sqliterepo.NewHeroRepository(db), nil
}
