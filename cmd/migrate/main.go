package main

import (
	"os"
	"todos/config"
	"todos/helper"
	"todos/shared/logger"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Get()

	logger.InitLogger(cfg)
	logger.SetLogLevel(cfg)

	if err := newRootCommand(func(action helper.Action) error {
		return helper.Runner(cfg, action)
	}).Execute(); err != nil {
		log.Error().Err(err).Msg("migration failed")
		os.Exit(1)
	}
}
