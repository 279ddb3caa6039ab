package api

// ItemUpdateRequest is a partial update. Omitted or null fields are left
// unchanged; "tag_ids": [] clears the tag set.
// swagger:model api.ItemUpdateRequest
type ItemUpdateRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=200,nonul" example:"Desk lamp"`
	Description *string `json:"description" validate:"omitempty,max=1000,nonul" example:"Brass, 60W"`
	CategoryID  *int    `json:"category_id" validate:"omitempty,int32" example:"2"`
	TagIDs      *[]int  `json:"tag_ids" validate:"omitempty,dive,int32" example:"3"`
}
