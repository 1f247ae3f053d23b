package main

import (
	"context"
	"flag"

	"bookshop/internal/config"
	"bookshop/internal/database"
	"bookshop/internal/logger"
	"bookshop/internal/seed"

	"github.com/rs/zerolog/log"
)

func main() {
	defaults := seed.DefaultOptions()
	var (
		seedValue = flag.Int64("seed", defaults.Seed, "Random seed; the same seed produces the same dataset")
		books     = flag.Int("books", defaults.Books, "Number of books to generate")
		authors   = flag.Int("authors", defaults.Authors, "Number of authors to generate")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	logger.Init(cfg.Env, cfg.LogLevel)

	ds, err := seed.Generate(seed.Options{Seed: *seedValue, Authors: *authors, Books: *books})
	if err != nil {
		log.Fatal().Err(err).Msg("generate dataset")
	}

	ctx := context.Background()
	pool, err := database.Open(ctx, cfg.DatabaseDSN)
	if err != nil {
		log.Fatal().Err(err).Str("dsn", database.RedactDSN(cfg.DatabaseDSN)).Msg("open database")
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool, "up"); err != nil {
		pool.Close()
		log.Fatal().Err(err).Msg("migrate")
	}
	if err := seed.NewLoader(pool).Load(ctx, ds); err != nil {
		pool.Close()
		log.Fatal().Err(err).Msg("load dataset")
	}
}
