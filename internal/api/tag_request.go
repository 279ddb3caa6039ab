package api

// swagger:model api.TagRequest
type TagRequest struct {
	Name string `json:"name" validate:"required,max=50,nonul" example:"urgent"`
}
