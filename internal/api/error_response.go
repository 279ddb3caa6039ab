package api

// ErrorResponse is the body of every error reply.
// swagger:model api.ErrorResponse
type ErrorResponse struct {
	Detail string `json:"detail" example:"Item not found"`
}
