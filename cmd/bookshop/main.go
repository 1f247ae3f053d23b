package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"bookshop/internal/config"
	"bookshop/internal/database"
	"bookshop/internal/logger"
	"bookshop/internal/report"

	"github.com/rs/zerolog/log"
)

const defaultExercise = "books-released-before"

func main() {
	list := flag.Bool("list", false, "Print the exercise names and exit")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: bookshop [-list] [exercise]\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *list {
		for _, name := range report.Names() {
			fmt.Println(name)
		}
		return
	}

	name := defaultExercise
	if flag.NArg() > 0 {
		name = flag.Arg(0)
	}
	exercise, ok := report.Lookup(name)
	if !ok {
		log.Fatal().Str("exercise", name).Msg("unknown exercise, see bookshop -list")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	logger.Init(cfg.Env, cfg.LogLevel)

	var input string
	if exercise.NeedsInput {
		input, err = readLine(os.Stdin)
		if err != nil {
			log.Fatal().Err(err).Msg("read input")
		}
	}

	ctx := context.Background()
	pool, err := database.Open(ctx, cfg.DatabaseDSN)
	if err != nil {
		log.Fatal().Err(err).Str("dsn", database.RedactDSN(cfg.DatabaseDSN)).Msg("open database")
	}
	defer pool.Close()

	svc := report.NewService(report.NewPostgresRepo(pool, cfg.QueryTimeout))
	out, err := exercise.Run(ctx, svc, input)
	if err != nil {
		pool.Close()
		log.Fatal().Err(err).Str("exercise", name).Msg("exercise failed")
	}
	if out != "" {
		fmt.Println(out)
	}
}

// readLine returns the first line of r without its line ending. A final
// line without a newline is accepted.
func readLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
