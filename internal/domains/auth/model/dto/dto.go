package dto

import (
	"todos/infras/jwt"
	userModel "todos/internal/domains/user/model"
	gModel "todos/shared/model"
	"todos/shared/timezone"
)

type RegisterRequest struct {
	Username string `json:"username" validate:"required,alphanum,min=3,max=50" example:"alice"`
	Password string `json:"password" validate:"required,min=8,max=72" example:"correct-horse"`
}

func (r *RegisterRequest) ToUserModel(hashedPassword string) userModel.User {
	return userModel.User{
		Username:       r.Username,
		HashedPassword: hashedPassword,
		Active:         true,
		Metadata:       gModel.Stamped(timezone.Now()),
	}
}

type TokenRequest struct {
	Username string `json:"username" validate:"required" example:"alice"`
	Password string `json:"password" validate:"required" example:"correct-horse"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type" example:"Bearer"`
	ExpiresIn    int64  `json:"expires_in" example:"1200"`
}

func (r *TokenResponse) FromTokenPair(tokenPair *jwt.TokenPair) {
	r.AccessToken = tokenPair.AccessToken
	r.RefreshToken = tokenPair.RefreshToken
	r.TokenType = tokenPair.TokenType
	r.ExpiresIn = tokenPair.ExpiresIn
}
