package dto

import (
	"todos/internal/domains/todo/model"
	gDto "todos/shared/dto"
	gModel "todos/shared/model"
	"todos/shared/timezone"
)

// TodoRequest is the body of both create and update. Every field is
// required except description, which may be omitted or null.
type TodoRequest struct {
	Title       string  `json:"title" validate:"required,notblank" example:"buy milk"`
	Description *string `json:"description" example:"two litres"`
	Priority    int     `json:"priority" validate:"required,gte=1,lte=5" example:"3"`
	Complete    *bool   `json:"complete" validate:"required" example:"false"`
}

func (r *TodoRequest) ToModel(owner *int64) model.Todo {
	return model.Todo{
		Title:       r.Title,
		Description: r.Description,
		Priority:    r.Priority,
		Complete:    r.isComplete(),
		OwnerID:     owner,
		Metadata:    gModel.Stamped(timezone.Now()),
	}
}

// ToUpdate returns the full mutable field set. The owner is not part of it.
func (r *TodoRequest) ToUpdate() UpdateFields {
	return UpdateFields{
		Title:       r.Title,
		Description: r.Description,
		Priority:    r.Priority,
		Complete:    r.isComplete(),
	}
}

func (r *TodoRequest) isComplete() bool {
	return r.Complete != nil && *r.Complete
}

type UpdateFields struct {
	Title       string  `db:"title"`
	Description *string `db:"description"`
	Priority    int     `db:"priority"`
	Complete    bool    `db:"complete"`
}

type TodoResponse struct {
	ID          int64   `json:"id" example:"1"`
	Title       string  `json:"title" example:"buy milk"`
	Description *string `json:"description" example:"two litres"`
	Priority    int     `json:"priority" example:"3"`
	Complete    bool    `json:"complete" example:"false"`
	OwnerID     *int64  `json:"owner_id" example:"1"`
	gDto.Metadata
}

func (r *TodoResponse) FromModel(todo model.Todo) {
	r.ID = todo.ID
	r.Title = todo.Title
	r.Description = todo.Description
	r.Priority = todo.Priority
	r.Complete = todo.Complete
	r.OwnerID = todo.OwnerID
	r.Metadata = gDto.NewMetadata(todo.Metadata)
}

func FromModels(todos []model.Todo) []TodoResponse {
	res := make([]TodoResponse, len(todos))
	for i, todo := range todos {
		res[i].FromModel(todo)
	}

	return res
}
