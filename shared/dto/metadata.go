package dto

import (
	"todos/shared/constant"
	"todos/shared/model"
	"todos/shared/timezone"
)

// Metadata is the rendered form of model.Metadata, formatted in the
// configured timezone.
type Metadata struct {
	CreatedAt  string `json:"created_at" example:"2026-01-02T03:04:05Z"`
	ModifiedAt string `json:"modified_at" example:"2026-01-02T03:04:05Z"`
}

func NewMetadata(meta model.Metadata) Metadata {
	return Metadata{
		CreatedAt:  timezone.Format(meta.CreatedAt, constant.DateFormat),
		ModifiedAt: timezone.Format(meta.ModifiedAt, constant.DateFormat),
	}
}
