package api

// swagger:model api.RegisterRequest
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,max=255,nonul,email" example:"alice@example.com"`
	Password string `json:"password" validate:"required,min=8,max=72" example:"Secret123!"`
}
