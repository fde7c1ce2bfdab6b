package user

import (
	"net/http"
	"todos/infras/otel"
	"todos/internal/domains/user/service"
	"todos/shared/constant"
	"todos/shared/failure"
	"todos/shared/identity"
	"todos/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.User
	otel    otel.Otel
}

func New(service service.User, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/users", func(routerGroup chi.Router) {
		routerGroup.Get("/me", handler.GetCurrentUser)
	})
}

// GetCurrentUser returns the account behind the bearer token.
// @Summary Get the current user
// @Tags User
// @Produce json
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /users/me [get]
// @Security BearerAuth
func (handler *Handler) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCurrentUser")
	defer scope.End()

	caller, ok := identity.FromContext(ctx)
	if !ok {
		response.WithError(w, failure.Unauthorized(constant.ResponseErrorCredentials))

		return
	}

	user, err := handler.service.Get(ctx, caller.ID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("id", caller.ID).Msg("failed to get current user")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, user)
}
