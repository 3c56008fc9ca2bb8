package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/guessnumber/apps/go-server/internal/config"
	"github.com/robalobadob/guessnumber/apps/go-server/internal/console"
	"github.com/robalobadob/guessnumber/apps/go-server/internal/game"
	"github.com/robalobadob/guessnumber/apps/go-server/internal/httpserver"
	"github.com/robalobadob/guessnumber/apps/go-server/internal/store"
)

func main() {
	_ = godotenv.Load()

	conf, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	initLogger(conf)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	scores, closeScores, err := openScores(ctx, conf.Scores)
	if err != nil {
		log.Fatal().Err(err).Str("backend", conf.Scores.Backend).Msg("failed to open score store")
	}
	defer closeScores()

	if best, ok, err := scores.Read(ctx); err == nil && ok {
		log.Info().Int("attempts", best).Msg("best score")
	}

	switch conf.UI {
	case config.UIWeb:
		srv := httpserver.New(store.NewMemorySessions(conf.Session.TTL), scores, httpserver.Options{
			Secret: conf.Session.Secret,
			TTL:    conf.Session.TTL,
		})
		err = srv.Start(ctx, conf.HTTP.Addr())
	default:
		err = console.Run(ctx, os.Stdin, os.Stdout, scores)
	}
	if err != nil {
		log.Error().Err(err).Str("ui", conf.UI).Msg("front end exited")
		closeScores()
		os.Exit(1)
	}
}

// initLogger sets the global level and, for LOG_FORMAT=console, a
// human-readable writer. Logs go to stderr; stdout belongs to the console UI.
func initLogger(conf *config.Config) {
	if lvl, err := zerolog.ParseLevel(conf.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	var w io.Writer = os.Stderr
	if conf.LogFormat == "console" {
		w = zerolog.ConsoleWriter{Out: os.Stderr}
	}
	log.Logger = zerolog.New(w).With().Timestamp().Logger()
}

// openScores builds the configured ScoreStore and its cleanup func.
func openScores(ctx context.Context, c config.Scores) (game.ScoreStore, func(), error) {
	switch c.Backend {
	case config.BackendMemory:
		return store.NewMemoryScores(), func() {}, nil
	case config.BackendRedis:
		client, err := store.NewRedisClient(ctx, c.RedisAddr)
		if err != nil {
			return nil, nil, err
		}
		sc := store.NewRedisScores(client, c.RedisKey)
		return sc, closer(sc), nil
	default:
		sc, err := store.OpenSQLite(c.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return sc, closer(sc), nil
	}
}

func closer(c io.Closer) func() {
	done := false
	return func() {
		if done {
			return
		}
		done = true
		if err := c.Close(); err != nil {
			log.Warn().Err(err).Msg("close score store")
		}
	}
}
