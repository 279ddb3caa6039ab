package api

import "atlas/internal/model"

// swagger:model api.UserResponse
type UserResponse struct {
	ID       int    `json:"id" example:"1"`
	Email    string `json:"email" example:"alice@example.com"`
	IsActive bool   `json:"is_active" example:"true"`
}

func NewUserResponse(u *model.User) UserResponse {
	return UserResponse{ID: u.ID, Email: u.Email, IsActive: u.IsActive}
}
