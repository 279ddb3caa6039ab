package api

// swagger:model api.ItemCreateRequest
type ItemCreateRequest struct {
	Name        string  `json:"name" validate:"required,max=200,nonul" example:"Desk lamp"`
	Description *string `json:"description" validate:"omitempty,max=1000,nonul" example:"Brass, 40W"`
	CategoryID  *int    `json:"category_id" validate:"omitempty,int32" example:"1"`
	TagIDs      []int   `json:"tag_ids" validate:"dive,int32" example:"1,2"`
}
