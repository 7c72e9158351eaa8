package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math/rand/v2"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"truck-loading-service/internal/adapters/cache"
	"truck-loading-service/internal/adapters/distance"
	"truck-loading-service/internal/adapters/repositories"
	"truck-loading-service/internal/api"
	"truck-loading-service/internal/config"
	"truck-loading-service/internal/domain"
	"truck-loading-service/internal/platform/db"
	"truck-loading-service/internal/platform/obs"
	"truck-loading-service/internal/ports"
	"truck-loading-service/internal/services"

	"github.com/rs/zerolog/log"
)

// main is the application composition root.
// It wires concrete adapters (SQL, Redis, city table) behind ports and starts the HTTP server.
func main() {
	cfg := config.Load()
	obs.SetupLogging(cfg.LogLevel, cfg.Environment)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	table, capacity := loadCityTable(cfg)

	dialect := db.DialectFor(cfg.DatabaseURL)
	conn, err := db.Open(dialect, cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot open database")
	}
	defer conn.Close()

	// Initialize schema and seed demo data into an empty database for local runs.
	if err := initAndSeed(ctx, conn, dialect, cfg.SeedPath); err != nil {
		log.Fatal().Err(err).Msg("cannot initialize database")
	}

	coords, err := coordinateSource(ctx, cfg, conn, dialect, table)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot set up coordinate source")
	}

	book := &services.PackageBook{
		Repo:        repositories.NewSQLPackageRepository(conn, dialect),
		Distances:   distance.NewTableDistanceProvider(table),
		Codes:       services.NewRandomCodeGenerator(rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))),
		Coordinates: coords,
		Allocator:   services.NewAllocator(capacity),
		Depot:       table.Depot,
	}

	router := api.NewRouter(book, api.RouterOptions{RateLimit: cfg.RateLimit, RateBurst: cfg.RateBurst})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Str("dialect", string(dialect)).Int("capacity", capacity).
			Str("depot", table.Depot).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

// loadCityTable prefers the YAML file and falls back to the built-in network.
// Capacity precedence: CAPACITY env, then the file, then the default.
func loadCityTable(cfg config.Config) (*domain.CityTable, int) {
	table, capacity, err := config.LoadCityTable(cfg.CitiesPath)
	if err != nil {
		log.Warn().Err(err).Str("path", cfg.CitiesPath).Msg("using built-in city table")
		table, capacity = config.DefaultCityTable(), 0
	}

	switch {
	case cfg.Capacity > 0:
		capacity = cfg.Capacity
	case capacity <= 0:
		capacity = services.DefaultCapacity
	}
	return table, capacity
}

func initAndSeed(ctx context.Context, conn *sql.DB, dialect db.Dialect, seedPath string) error {
	if err := repositories.InitSchema(ctx, conn, dialect); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	n, err := repositories.SeedFromJSONIfEmpty(ctx, repositories.NewSQLPackageRepository(conn, dialect), seedPath)
	if err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}
	log.Info().Int("inserted", n).Str("path", seedPath).Msg("seed complete")

	return nil
}

// coordinateSource stores the city table's coordinates in SQL and, when
// REDIS_URL is set, fronts the store with a Redis read-through cache.
func coordinateSource(
	ctx context.Context,
	cfg config.Config,
	conn *sql.DB,
	dialect db.Dialect,
	table *domain.CityTable,
) (ports.CoordinateSource, error) {
	store := cache.NewSQLCoordinateStore(conn, dialect)
	if err := store.PutMany(ctx, table.Coordinates()); err != nil {
		return nil, err
	}

	if cfg.RedisURL == "" {
		return store, nil
	}

	client, err := cache.NewRedisClient(cfg.RedisURL)
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx).Err(); err != nil {
		log.Warn().Err(err).Msg("redis unavailable at startup, cache reads will fall through")
	}
	return cache.NewRedisCoordinateCache(client, store, time.Hour), nil
}
