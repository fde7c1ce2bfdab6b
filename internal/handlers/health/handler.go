package health

import (
	"context"
	"net/http"
	"time"
	"todos/infras/postgres"
	"todos/transport/http/response"
	"todos/transport/http/state"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const pingTimeout = 2 * time.Second

type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	db        Pinger
	lifecycle *state.Lifecycle
}

func New(db *postgres.Connection, lifecycle *state.Lifecycle) Handler {
	return NewWithPinger(db, lifecycle)
}

func NewWithPinger(db Pinger, lifecycle *state.Lifecycle) Handler {
	return Handler{
		db:        db,
		lifecycle: lifecycle,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/health", handler.Check)
}

// Check reports whether the service can take traffic.
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} response.Message
// @Failure 503 {object} response.Message
// @Router /health [get]
func (handler *Handler) Check(w http.ResponseWriter, r *http.Request) {
	if handler.lifecycle.ShuttingDown() {
		response.WithPreparingShutdown(w)

		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	if err := handler.db.Ping(ctx); err != nil {
		log.Error().Err(err).Msg("health check failed")

		response.WithUnhealthy(w)

		return
	}

	response.WithMessage(w, http.StatusOK, "OK")
}
