package main

import (
	"context"
	"flag"
	"fmt"

	"bookshop/internal/config"
	"bookshop/internal/database"
	"bookshop/internal/logger"

	"github.com/pressly/goose/v3"
	"github.com/rs/zerolog/log"
)

func main() {
	var (
		command = flag.String("command", "up", "Migration command: up, down, status, reset, create")
		name    = flag.String("name", "", "Name for 'create' command")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	logger.Init(cfg.Env, cfg.LogLevel)

	if *command == "create" {
		if *name == "" {
			log.Fatal().Msg("name is required for 'create' command")
		}
		goose.SetBaseFS(nil)
		if err := goose.Create(nil, cfg.MigrationsDir, *name, "sql"); err != nil {
			log.Fatal().Err(err).Msg("create migration")
		}
		fmt.Printf("Migration created: %s\n", *name)
		return
	}

	ctx := context.Background()
	pool, err := database.Open(ctx, cfg.DatabaseDSN)
	if err != nil {
		log.Fatal().Err(err).Str("dsn", database.RedactDSN(cfg.DatabaseDSN)).Msg("open database")
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool, *command); err != nil {
		log.Fatal().Err(err).Msg("migrate")
	}
	log.Info().Str("command", *command).Msg("migrations done")
}
