// Package handler is the serverless entry point: each invocation is served
// by the same router the long-running server uses.
package handler

import (
	"net/http"
	"sync"
	"todos/config"
	"todos/di"
	"todos/shared/logger"
	"todos/shared/timezone"
	"todos/transport/http/response"

	"github.com/rs/zerolog/log"
)

var (
	once    sync.Once
	service http.Handler
	initErr error
)

func setup() {
	cfg := config.Get()

	logger.InitLogger(cfg)

	logger.SetLogLevel(cfg)

	timezone.Init(cfg.App.Timezone)

	// connections live as long as the warm instance
	server, _, err := di.InitializeService()
	if err != nil {
		initErr = err

		return
	}

	service = server.Handler()
}

func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(setup)

	if initErr != nil {
		log.Error().Err(initErr).Msg("Failed to initialize service")
		response.WithUnhealthy(w)

		return
	}

	service.ServeHTTP(w, r)
}
