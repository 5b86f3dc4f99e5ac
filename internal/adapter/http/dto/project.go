package dto

type ProjectItem struct {
	ID          uint64  `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	CreatedBy   uint64  `json:"created_by"`
	UpdatedBy   uint64  `json:"updated_by"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

type ProjectRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

type CountResponse struct {
	Count int64 `json:"count"`
}
