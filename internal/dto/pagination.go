package dto

// Every list endpoint answers with the same envelope: a status marker,
// the data slice and the offset/limit window it was produced from.
type PaginatedResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data"`
	Offset  int    `json:"offset"`
	Limit   int    `json:"limit"`
	Total   int64  `json:"total"`
}

func NewPaginatedResponse(data any, offset, limit int, total int64) *PaginatedResponse {
	return &PaginatedResponse{
		Message: "success",
		Data:    data,
		Offset:  offset,
		Limit:   limit,
		Total:   total,
	}
}
