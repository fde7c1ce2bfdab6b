package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Todo=MockTodoService

import (
	"context"
	"fmt"
	"todos/infras/kafka"
	"todos/infras/otel"
	"todos/internal/domains/todo/model"
	"todos/internal/domains/todo/model/dto"
	"todos/internal/domains/todo/repository"
	"todos/shared"
	"todos/shared/constant"
	gDto "todos/shared/dto"
	"todos/shared/failure"

	"github.com/rs/zerolog/log"
)

// Todo is the todo use-case layer. A nil owner means the request is not
// scoped to any owner; a non-nil owner restricts every lookup and write to
// rows carrying that owner id.
type Todo interface {
	GetAll(ctx context.Context) ([]dto.TodoResponse, error)
	GetByOwner(ctx context.Context, owner *int64) ([]dto.TodoResponse, error)
	Get(ctx context.Context, id int64, owner *int64) (dto.TodoResponse, error)
	Create(ctx context.Context, req dto.TodoRequest, owner *int64) (int64, error)
	Update(ctx context.Context, id int64, req dto.TodoRequest, owner *int64) error
	Delete(ctx context.Context, id int64, owner *int64) error
}

type serviceImpl struct {
	repo   repository.Todo
	events kafka.Client
	otel   otel.Otel
}

func New(repo repository.Todo, events kafka.Client, otel otel.Otel) Todo {
	return &serviceImpl{
		repo:   repo,
		events: events,
		otel:   otel,
	}
}

var orderByID = gDto.QueryParams{SortBy: model.TableName + "." + model.FieldID, SortDir: gDto.SortDirAsc}

func spanName(op string) string {
	return constant.OtelServiceScopeName + "." + model.EntityName + "." + op
}

// ownerFilter matches rows of owner, or every row when owner is nil.
func ownerFilter(owner *int64) gDto.FilterGroup {
	if owner == nil {
		return gDto.FilterGroup{}
	}

	return shared.FilterByField(model.FieldOwnerID, *owner, model.TableName)
}

func rowFilter(id int64, owner *int64) gDto.FilterGroup {
	filter := shared.FilterByID(id, model.FieldID, model.TableName)
	if owner == nil {
		return filter
	}

	return filter.And(ownerFilter(owner))
}

func itemNotFound() error {
	return failure.NotFound(constant.ResponseErrorItemNotFound) //nolint:wrapcheck
}

// publish announces a committed write. The write already succeeded, so a
// publishing failure is only logged.
func (s *serviceImpl) publish(ctx context.Context, event dto.TodoEvent) {
	if err := s.events.SendMessages(ctx, event.Message()); err != nil {
		log.Warn().Err(err).Str("type", event.Type).Int64("id", event.ID).Msg("failed to publish todo event")
	}
}

func (s *serviceImpl) GetAll(ctx context.Context) (res []dto.TodoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, spanName("GetAll"))
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	todos, err := s.repo.GetAll(ctx, orderByID, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get todos")

		return nil, fmt.Errorf("failed to get todos: %w", err)
	}

	return dto.FromModels(todos), nil
}

func (s *serviceImpl) GetByOwner(ctx context.Context, owner *int64) (res []dto.TodoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, spanName("GetByOwner"))
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	todos, err := s.repo.GetAll(ctx, orderByID, ownerFilter(owner))
	if err != nil {
		log.Error().Err(err).Msg("failed to get owner todos")

		return nil, fmt.Errorf("failed to get owner todos: %w", err)
	}

	return dto.FromModels(todos), nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64, owner *int64) (res dto.TodoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, spanName("Get"))
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute("todo.id", id)

	todo, err := s.repo.Get(ctx, rowFilter(id, owner))
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to get todo")

		return res, fmt.Errorf("failed to get todo: %w", err)
	}

	if todo == nil {
		return res, itemNotFound()
	}

	res.FromModel(*todo)

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.TodoRequest, owner *int64) (id int64, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, spanName("Create"))
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	id, err = s.repo.Insert(ctx, req.ToModel(owner))
	if err != nil {
		log.Error().Err(err).Msg("failed to create todo")

		return 0, fmt.Errorf("failed to create todo: %w", err)
	}

	scope.SetAttribute("todo.id", id)

	s.publish(ctx, dto.NewWriteEvent(dto.EventCreated, id, owner, req))

	return id, nil
}

func (s *serviceImpl) Update(ctx context.Context, id int64, req dto.TodoRequest, owner *int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, spanName("Update"))
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute("todo.id", id)

	updated, err := s.repo.Update(ctx, shared.TransformFields(req.ToUpdate()), rowFilter(id, owner))
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to update todo")

		return fmt.Errorf("failed to update todo: %w", err)
	}

	if !updated {
		return itemNotFound()
	}

	s.publish(ctx, dto.NewWriteEvent(dto.EventUpdated, id, owner, req))

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id int64, owner *int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, spanName("Delete"))
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute("todo.id", id)

	deleted, err := s.repo.Delete(ctx, rowFilter(id, owner))
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to delete todo")

		return fmt.Errorf("failed to delete todo: %w", err)
	}

	if !deleted {
		return itemNotFound()
	}

	s.publish(ctx, dto.NewDeleteEvent(id, owner))

	return nil
}
