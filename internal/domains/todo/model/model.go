package model

import "todos/shared/model"

const (
	TableName  = "todos"
	EntityName = "todo"

	FieldID          = "id"
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldPriority    = "priority"
	FieldComplete    = "complete"
	FieldOwnerID     = "owner_id"
)

// Priority bounds, matching the request tag and the todos CHECK constraint.
const (
	MinPriority = 1
	MaxPriority = 5
)

// Todo is a row of the todos table. OwnerID is nil only for rows written
// while authentication is disabled, and it never changes after insert.
type Todo struct {
	ID          int64   `db:"id"`
	Title       string  `db:"title"`
	Description *string `db:"description"`
	Priority    int     `db:"priority"`
	Complete    bool    `db:"complete"`
	OwnerID     *int64  `db:"owner_id"`
	model.Metadata
}
