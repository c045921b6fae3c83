package main

import (
	"errors"
	"fmt"
	"os"

	"demos3d/internal/config"
	"demos3d/internal/game"
	"demos3d/internal/logging"

	"github.com/spf13/pflag"
)

func main() {
	if err := run(os.Args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		logging.Logger.Fatal().Err(err).Msg("demos")
	}
}

func run(args []string) error {
	fs := config.NewFlagSet(args[0])
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}

	path, _ := fs.GetString("config")
	if err := config.Load(path); err != nil {
		return err
	}
	if err := config.BindFlags(fs); err != nil {
		return err
	}
	cfg, err := config.Get()
	if err != nil {
		return err
	}

	logging.Setup(cfg.LogLevel, os.Stderr, false)

	g, err := game.New(cfg)
	if err != nil {
		return fmt.Errorf("scene %q: %w", cfg.Scene, err)
	}
	return g.Run()
}
