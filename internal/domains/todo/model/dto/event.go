package dto

import (
	"strconv"
	"todos/infras/kafka"
	"todos/shared/constant"
	"todos/shared/timezone"
)

const (
	EventCreated = "todo.created"
	EventUpdated = "todo.updated"
	EventDeleted = "todo.deleted"
)

// TodoEvent announces a committed write. Deletions carry no field values.
type TodoEvent struct {
	Type        string  `json:"type"`
	ID          int64   `json:"id"`
	OwnerID     *int64  `json:"owner_id"`
	Title       string  `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Priority    int     `json:"priority,omitempty"`
	Complete    *bool   `json:"complete,omitempty"`
	OccurredAt  string  `json:"occurred_at"`
}

func NewWriteEvent(eventType string, id int64, owner *int64, req TodoRequest) TodoEvent {
	complete := req.isComplete()

	event := NewDeleteEvent(id, owner)
	event.Type = eventType
	event.Title = req.Title
	event.Description = req.Description
	event.Priority = req.Priority
	event.Complete = &complete

	return event
}

func NewDeleteEvent(id int64, owner *int64) TodoEvent {
	return TodoEvent{
		Type:       EventDeleted,
		ID:         id,
		OwnerID:    owner,
		OccurredAt: timezone.Format(timezone.Now(), constant.DateFormat),
	}
}

// Message keys by todo id so every event of one todo lands on one partition.
func (e TodoEvent) Message() kafka.Message {
	return kafka.Message{
		Key:   strconv.FormatInt(e.ID, 10),
		Value: e,
	}
}
