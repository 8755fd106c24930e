package main

import (
	"fmt"
	"os"

	"farmdrive/internal/config"
	"farmdrive/internal/game"
	"farmdrive/internal/logging"
	"farmdrive/internal/physics"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "farmdrive",
		Usage: "drive around a small farm and knock things over",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Value:   ".",
				Usage:   "look for " + config.FileName + " in `DIR`",
			},
			&cli.StringFlag{
				Name:  "scene",
				Usage: "load the scene from `FILE` instead of the built-in farm",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "override the configured log level",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	dir := c.String("config")
	loadErr := config.Load(dir)
	var notFound viper.ConfigFileNotFoundError
	if loadErr != nil && !errors.As(loadErr, &notFound) {
		return loadErr
	}

	cfg := config.Game()
	if c.IsSet("scene") {
		cfg.SceneFile = c.String("scene")
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}

	logger := logging.Setup(cfg.LogLevel, os.Stderr)
	if loadErr != nil {
		logger.Warn().Str("dir", dir).Msg("no config file, using defaults")
	}

	g, err := game.New(cfg, config.Physics(), config.Vehicle(), logger)
	if err != nil {
		return errors.Wrap(err, "start game")
	}

	if cfg.MetricsEnabled {
		m, err := physics.NewMetrics()
		if err != nil {
			return errors.Wrap(err, "metrics")
		}
		g.SetMetrics(m)
		logger.Info().Msg("physics metrics enabled")
	}

	g.Run()
	return nil
}
