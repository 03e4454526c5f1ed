//go:build ebiten

package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"lunar-rover/internal/app"
	"lunar-rover/internal/logging"
	"lunar-rover/internal/scores"
	"lunar-rover/internal/session"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
)

func main() {
	flags := app.NewConfig()
	flags.Bind(flag.CommandLine)
	flag.Parse()

	cfg, err := flags.Resolve()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	log, err := logging.New(cfg.Log, os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	var store scores.Store
	if cfg.Scores.Path != "" {
		db, err := scores.Open(cfg.Scores.Path)
		if err != nil {
			log.Fatal().Err(err).Str("path", cfg.Scores.Path).Msg("could not open score database")
		}
		defer db.Close()
		store = db
	}

	sess := session.New(cfg, nil, store, log)
	game := app.New(sess, cfg.Window.TPS, cfg.Window.Scale, cfg.Seed)

	ebiten.SetWindowTitle("Endless Lunar Rover (" + sess.Rule().Name() + ")")
	ebiten.SetTPS(cfg.Window.TPS)
	ebiten.SetWindowSize(game.WindowSize())

	log.Info().
		Str("variant", sess.Rule().Name()).
		Int64("seed", cfg.Seed).
		Int("tps", cfg.Window.TPS).
		Dict("window", zerolog.Dict().Int("w", cfg.Window.Width).Int("h", cfg.Window.Height)).
		Msg("starting")

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Error().Err(err).Msg("game loop failed")
		os.Exit(1)
	}
}
