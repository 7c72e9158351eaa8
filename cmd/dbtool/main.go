package main

import (
	"context"
	"flag"
	"math/rand/v2"
	"truck-loading-service/internal/adapters/cache"
	"truck-loading-service/internal/adapters/repositories"
	"truck-loading-service/internal/config"
	"truck-loading-service/internal/platform/db"
	"truck-loading-service/internal/platform/obs"
	"truck-loading-service/internal/services"

	"github.com/rs/zerolog/log"
)

// dbtool initializes the schema, loads seed packages and city coordinates,
// and optionally generates a random demo batch.
func main() {
	generate := flag.Int("generate", 0, "number of random demo packages to add")
	seed := flag.Uint64("seed", 0, "random seed for -generate (0 picks one)")
	flag.Parse()

	cfg := config.Load()
	obs.SetupLogging(cfg.LogLevel, cfg.Environment)
	ctx := context.Background()

	dialect := db.DialectFor(cfg.DatabaseURL)
	conn, err := db.Open(dialect, cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot open database")
	}
	defer conn.Close()

	log.Info().Msg("initializing database schema")
	if err := repositories.InitSchema(ctx, conn, dialect); err != nil {
		log.Fatal().Err(err).Msg("schema initialization failed")
	}

	repo := repositories.NewSQLPackageRepository(conn, dialect)

	log.Info().Str("path", cfg.SeedPath).Msg("seeding packages")
	n, err := repositories.SeedFromJSON(ctx, repo, cfg.SeedPath)
	if err != nil {
		log.Fatal().Err(err).Msg("seeding failed")
	}
	log.Info().Int("inserted", n).Msg("seeding complete")

	table, _, err := config.LoadCityTable(cfg.CitiesPath)
	if err != nil {
		log.Warn().Err(err).Msg("using built-in city table")
		table = config.DefaultCityTable()
	}
	if err := cache.NewSQLCoordinateStore(conn, dialect).PutMany(ctx, table.Coordinates()); err != nil {
		log.Fatal().Err(err).Msg("storing city coordinates failed")
	}

	if *generate <= 0 {
		return
	}

	s := *seed
	if s == 0 {
		s = rand.Uint64()
	}
	r := rand.New(rand.NewPCG(s, s))
	pkgs, err := services.SampleBatch(r, table, services.NewRandomCodeGenerator(r), *generate)
	if err != nil {
		log.Fatal().Err(err).Msg("generating packages failed")
	}
	added, err := repositories.SeedPackages(ctx, repo, pkgs)
	if err != nil {
		log.Fatal().Err(err).Msg("storing generated packages failed")
	}
	log.Info().Int("generated", added).Uint64("seed", s).Msg("demo batch stored")
}
