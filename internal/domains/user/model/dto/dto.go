package dto

import (
	"todos/internal/domains/user/model"
	gDto "todos/shared/dto"
)

type UserResponse struct {
	ID       int64  `json:"id" example:"1"`
	Username string `json:"username" example:"alice"`
	Active   bool   `json:"active" example:"true"`
	gDto.Metadata
}

func (r *UserResponse) FromModel(user model.User) {
	r.ID = user.ID
	r.Username = user.Username
	r.Active = user.Active
	r.Metadata = gDto.NewMetadata(user.Metadata)
}
