package api

import "github.com/hearth-app/hearth/internal/domain"

type GetUserDocumentRequest struct {
	Uid string `json:"uid" validate:"required"`
}

type CreateUserDocumentRequest struct {
	Uid       string  `json:"uid" validate:"required"`
	CreatedAt string  `json:"createdAt" validate:"required"`
	ProfileId *string `json:"profileId"`
	Email     string  `json:"email"`
}

type UserDocumentResponse struct {
	Exists  bool                 `json:"exists"`
	Message string               `json:"message,omitempty"`
	Data    *domain.UserDocument `json:"data,omitempty"`
}
