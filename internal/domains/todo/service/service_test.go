package service_test

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"testing"
	"todos/infras/kafka"
	kafkaMocks "todos/infras/kafka/mocks"
	"todos/infras/otel/mocks"
	todoMocks "todos/internal/domains/todo/mocks"
	"todos/internal/domains/todo/model"
	"todos/internal/domains/todo/model/dto"
	"todos/internal/domains/todo/service"
	gDto "todos/shared/dto"
	"todos/shared/failure"
	"todos/shared/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var errDatabase = errors.New("database error")

func newService(t *testing.T) (service.Todo, *todoMocks.MockTodo) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := todoMocks.NewMockTodo(ctrl)

	return service.New(repo, kafka.NewNoop(), mocks.NewOtel()), repo
}

func newServiceWithEvents(t *testing.T) (service.Todo, *todoMocks.MockTodo, *kafkaMocks.MockClient) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := todoMocks.NewMockTodo(ctrl)
	events := kafkaMocks.NewMockClient(ctrl)

	return service.New(repo, events, mocks.NewOtel()), repo, events
}

// eventOf decodes the single event payload sent to the publisher.
func eventOf(t *testing.T, messages []kafka.Message) dto.TodoEvent {
	t.Helper()

	require.Len(t, messages, 1)

	event, ok := messages[0].Value.(dto.TodoEvent)
	require.True(t, ok)
	assert.Equal(t, strconv.FormatInt(event.ID, 10), messages[0].Key)

	return event
}

func validRequest() dto.TodoRequest {
	return dto.TodoRequest{Title: "buy milk", Priority: 3, Complete: testutil.Ptr(false)}
}

func TestTodoService_GetAll(t *testing.T) {
	svc, repo := newService(t)

	repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Todo, error) {
			clause, _ := filter.GetWhereClause()
			assert.Empty(t, clause, "listing everything is unfiltered")
			assert.Equal(t, "todos.id", params.SortBy)

			return []model.Todo{{ID: 1, Title: "a"}, {ID: 2, Title: "b"}}, nil
		})

	res, err := svc.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, int64(2), res[1].ID)
}

func TestTodoService_GetAllEmpty(t *testing.T) {
	svc, repo := newService(t)

	repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.Todo{}, nil)

	res, err := svc.GetAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, res)
	assert.Empty(t, res)
}

func TestTodoService_GetByOwner(t *testing.T) {
	tests := []struct {
		name       string
		owner      *int64
		wantClause string
		repoErr    error
		wantErr    bool
	}{
		{name: "scoped to owner", owner: testutil.Ptr(int64(7)), wantClause: "(todos.owner_id = :owner_id)"},
		{name: "unscoped without owner", owner: nil, wantClause: ""},
		{name: "repository error", owner: testutil.Ptr(int64(7)), wantClause: "(todos.owner_id = :owner_id)", repoErr: errDatabase, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newService(t)

			repo.EXPECT().
				GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Todo, error) {
					clause, args := filter.GetWhereClause()
					assert.Equal(t, tt.wantClause, clause)

					if tt.owner != nil {
						assert.Equal(t, *tt.owner, args[model.FieldOwnerID])
					}

					return []model.Todo{}, tt.repoErr
				})

			_, err := svc.GetByOwner(context.Background(), tt.owner)
			if tt.wantErr {
				require.ErrorIs(t, err, errDatabase)

				return
			}

			require.NoError(t, err)
		})
	}
}

func TestTodoService_Get(t *testing.T) {
	owner := testutil.Ptr(int64(7))

	tests := []struct {
		name     string
		found    *model.Todo
		repoErr  error
		wantCode int
	}{
		{name: "found", found: &model.Todo{ID: 4, Title: "buy milk", Priority: 3, OwnerID: owner}},
		{name: "absent or owned by someone else", found: nil, wantCode: http.StatusNotFound},
		{name: "repository error", repoErr: errDatabase, wantCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newService(t)

			repo.EXPECT().
				Get(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, filter gDto.FilterGroup, _ ...string) (*model.Todo, error) {
					clause, args := filter.GetWhereClause()
					assert.Equal(t, "(todos.id = :id AND (todos.owner_id = :owner_id))", clause)
					assert.Equal(t, int64(4), args[model.FieldID])
					assert.Equal(t, int64(7), args[model.FieldOwnerID])

					return tt.found, tt.repoErr
				})

			res, err := svc.Get(context.Background(), 4, owner)
			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, int64(4), res.ID)
			assert.Equal(t, "buy milk", res.Title)
		})
	}
}

func TestTodoService_GetUnscoped(t *testing.T) {
	svc, repo := newService(t)

	repo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter gDto.FilterGroup, _ ...string) (*model.Todo, error) {
			clause, _ := filter.GetWhereClause()
			assert.Equal(t, "(todos.id = :id)", clause)

			return &model.Todo{ID: 4}, nil
		})

	_, err := svc.Get(context.Background(), 4, nil)
	require.NoError(t, err)
}

func TestTodoService_Create(t *testing.T) {
	owner := testutil.Ptr(int64(7))

	t.Run("returns assigned id", func(t *testing.T) {
		svc, repo := newService(t)

		repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, todo model.Todo) (int64, error) {
				assert.Zero(t, todo.ID)
				assert.Equal(t, "buy milk", todo.Title)
				assert.Equal(t, owner, todo.OwnerID)
				assert.False(t, todo.CreatedAt.IsZero())

				return 11, nil
			})

		id, err := svc.Create(context.Background(), validRequest(), owner)
		require.NoError(t, err)
		assert.Equal(t, int64(11), id)
	})

	t.Run("repository error", func(t *testing.T) {
		svc, repo := newService(t)

		repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(int64(0), errDatabase)

		_, err := svc.Create(context.Background(), validRequest(), owner)
		require.ErrorIs(t, err, errDatabase)
	})
}

func TestTodoService_Update(t *testing.T) {
	owner := testutil.Ptr(int64(7))

	tests := []struct {
		name     string
		matched  bool
		repoErr  error
		wantCode int
	}{
		{name: "updated", matched: true},
		{name: "no matching row", matched: false, wantCode: http.StatusNotFound},
		{name: "repository error", repoErr: errDatabase, wantCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newService(t)

			repo.EXPECT().
				Update(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, fields map[string]any, filter gDto.FilterGroup) (bool, error) {
					assert.NotContains(t, fields, model.FieldOwnerID)
					assert.Equal(t, "buy milk", fields[model.FieldTitle])

					clause, _ := filter.GetWhereClause()
					assert.Equal(t, "(todos.id = :id AND (todos.owner_id = :owner_id))", clause)

					return tt.matched, tt.repoErr
				})

			err := svc.Update(context.Background(), 4, validRequest(), owner)
			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
		})
	}
}

func TestTodoService_Delete(t *testing.T) {
	tests := []struct {
		name     string
		matched  bool
		repoErr  error
		wantCode int
	}{
		{name: "deleted", matched: true},
		{name: "no matching row", matched: false, wantCode: http.StatusNotFound},
		{name: "repository error", repoErr: errDatabase, wantCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newService(t)

			repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(tt.matched, tt.repoErr)

			err := svc.Delete(context.Background(), 4, testutil.Ptr(int64(7)))
			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
		})
	}
}

func TestTodoService_PublishesCommittedWrites(t *testing.T) {
	owner := testutil.Ptr(int64(7))

	t.Run("created", func(t *testing.T) {
		svc, repo, events := newServiceWithEvents(t)

		repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(int64(11), nil)
		events.EXPECT().
			SendMessages(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, messages ...kafka.Message) error {
				event := eventOf(t, messages)
				assert.Equal(t, dto.EventCreated, event.Type)
				assert.Equal(t, int64(11), event.ID)
				assert.Equal(t, owner, event.OwnerID)
				assert.Equal(t, "buy milk", event.Title)
				require.NotNil(t, event.Complete)
				assert.False(t, *event.Complete)

				return nil
			})

		_, err := svc.Create(context.Background(), validRequest(), owner)
		require.NoError(t, err)
	})

	t.Run("updated", func(t *testing.T) {
		svc, repo, events := newServiceWithEvents(t)

		repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
		events.EXPECT().
			SendMessages(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, messages ...kafka.Message) error {
				assert.Equal(t, dto.EventUpdated, eventOf(t, messages).Type)

				return nil
			})

		require.NoError(t, svc.Update(context.Background(), 4, validRequest(), owner))
	})

	t.Run("deleted", func(t *testing.T) {
		svc, repo, events := newServiceWithEvents(t)

		repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(true, nil)
		events.EXPECT().
			SendMessages(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, messages ...kafka.Message) error {
				event := eventOf(t, messages)
				assert.Equal(t, dto.EventDeleted, event.Type)
				assert.Empty(t, event.Title)

				return nil
			})

		require.NoError(t, svc.Delete(context.Background(), 4, owner))
	})
}

func TestTodoService_NoEventWithoutCommit(t *testing.T) {
	svc, repo, _ := newServiceWithEvents(t)

	repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
	repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(false, errDatabase)
	repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(int64(0), errDatabase)

	assert.Error(t, svc.Update(context.Background(), 4, validRequest(), nil))
	assert.Error(t, svc.Delete(context.Background(), 4, nil))

	_, err := svc.Create(context.Background(), validRequest(), nil)
	assert.Error(t, err)
}

func TestTodoService_PublishFailureKeepsWrite(t *testing.T) {
	svc, repo, events := newServiceWithEvents(t)

	repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(int64(3), nil)
	events.EXPECT().SendMessages(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

	id, err := svc.Create(context.Background(), validRequest(), nil)
	require.NoError(t, err)
	assert.Equal(t, int64(3), id)
}

func TestTodoService_TracesNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := todoMocks.NewMockTodo(ctrl)
	recorder := mocks.NewRecorder()
	svc := service.New(repo, kafka.NewNoop(), recorder)

	repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, nil)

	_, err := svc.Get(context.Background(), 4, testutil.Ptr(int64(7)))
	require.Error(t, err)

	spans := recorder.Spans()
	require.Len(t, spans, 1)
	assert.True(t, spans[0].Ended)
	require.Len(t, spans[0].Errors, 1)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(spans[0].Errors[0]))
}
