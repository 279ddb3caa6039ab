package api

// swagger:model api.ListItemsQuery
type ListItemsQuery struct {
	Skip       int    `query:"skip" validate:"gte=0"`
	Limit      int    `query:"limit" validate:"gte=1,lte=100"`
	Q          string `query:"q" validate:"omitempty,max=200,nonul"`
	CategoryID *int   `query:"category_id"`
}
