package todo

import (
	"context"
	"net/http"
	"todos/config"
	"todos/infras/otel"
	"todos/internal/domains/todo/model/dto"
	"todos/internal/domains/todo/service"
	"todos/shared"
	"todos/shared/constant"
	"todos/shared/failure"
	"todos/shared/identity"
	"todos/shared/validator"
	"todos/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Todo
	cfg     *config.Config
	otel    otel.Otel
}

func New(service service.Todo, cfg *config.Config, otel otel.Otel) Handler {
	return Handler{
		service: service,
		cfg:     cfg,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/todos", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetTodos)
		routerGroup.Post("/", handler.CreateTodo)
		routerGroup.Get("/user", handler.GetUserTodos)
		routerGroup.Get("/{id}", handler.GetTodoByID)
		routerGroup.Put("/{id}", handler.UpdateTodo)
		routerGroup.Delete("/{id}", handler.DeleteTodo)
	})
}

// owner returns the owner scope of the request. With authentication
// disabled every request is unscoped.
func (handler *Handler) owner(ctx context.Context) (*int64, error) {
	if !handler.cfg.App.Auth.Enable {
		return nil, nil
	}

	owner := identity.OwnerID(ctx)
	if owner == nil {
		return nil, failure.Unauthorized(constant.ResponseErrorCredentials) //nolint:wrapcheck
	}

	return owner, nil
}

// GetTodos lists every todo item.
// @Summary List all todo items
// @Description Returns every todo item regardless of owner.
// @Tags Todo
// @Produce json
// @Success 200 {array} dto.TodoResponse
// @Failure 500 {object} response.Error
// @Router /todos [get]
func (handler *Handler) GetTodos(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTodos")
	defer scope.End()

	todos, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get todos")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Todos retrieved successfully")

	response.WithJSON(w, http.StatusOK, todos)
}

// GetUserTodos lists the caller's todo items.
// @Summary List the caller's todo items
// @Tags Todo
// @Produce json
// @Success 200 {array} dto.TodoResponse
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /todos/user [get]
// @Security BearerAuth
func (handler *Handler) GetUserTodos(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetUserTodos")
	defer scope.End()

	owner, err := handler.owner(ctx)
	if err != nil {
		response.WithError(w, err)

		return
	}

	todos, err := handler.service.GetByOwner(ctx, owner)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get user todos")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, todos)
}

// GetTodoByID retrieves one of the caller's todo items.
// @Summary Get a todo item by ID
// @Tags Todo
// @Produce json
// @Param id path int true "Todo ID"
// @Success 200 {object} dto.TodoResponse
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /todos/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetTodoByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTodoByID")
	defer scope.End()

	owner, err := handler.owner(ctx)
	if err != nil {
		response.WithError(w, err)

		return
	}

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		response.WithError(w, err)

		return
	}

	todo, err := handler.service.Get(ctx, id, owner)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("id", id).Msg("failed to get todo by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, todo)
}

// CreateTodo creates a todo item owned by the caller.
// @Summary Create a todo item
// @Tags Todo
// @Accept json
// @Produce json
// @Param request body dto.TodoRequest true "Todo"
// @Success 200 {object} response.Transaction
// @Failure 401 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /todos [post]
// @Security BearerAuth
func (handler *Handler) CreateTodo(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateTodo")
	defer scope.End()

	owner, err := handler.owner(ctx)
	if err != nil {
		response.WithError(w, err)

		return
	}

	req := dto.TodoRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		log.Debug().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	id, err := handler.service.Create(ctx, req, owner)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create todo")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Todo created successfully by user " + identity.Username(ctx, constant.ContextGuest))
	log.Info().Int64("id", id).Msg("todo created")

	response.WithTransaction(w, http.StatusOK)
}

// UpdateTodo overwrites one of the caller's todo items.
// @Summary Replace a todo item
// @Description Every field is overwritten; description is cleared when omitted.
// @Tags Todo
// @Accept json
// @Produce json
// @Param id path int true "Todo ID"
// @Param request body dto.TodoRequest true "Todo"
// @Success 200 {object} response.Transaction
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /todos/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateTodo(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateTodo")
	defer scope.End()

	owner, err := handler.owner(ctx)
	if err != nil {
		response.WithError(w, err)

		return
	}

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		response.WithError(w, err)

		return
	}

	req := dto.TodoRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		log.Debug().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, id, req, owner); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("id", id).Msg("failed to update todo")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Todo updated successfully by user " + identity.Username(ctx, constant.ContextGuest))

	response.WithTransaction(w, http.StatusOK)
}

// DeleteTodo deletes one of the caller's todo items.
// @Summary Delete a todo item
// @Tags Todo
// @Produce json
// @Param id path int true "Todo ID"
// @Success 200 {object} response.Transaction
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /todos/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteTodo(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteTodo")
	defer scope.End()

	owner, err := handler.owner(ctx)
	if err != nil {
		response.WithError(w, err)

		return
	}

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		response.WithError(w, err)

		return
	}

	if err := handler.service.Delete(ctx, id, owner); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("id", id).Msg("failed to delete todo")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Todo deleted successfully by user " + identity.Username(ctx, constant.ContextGuest))

	response.WithTransaction(w, http.StatusOK)
}
