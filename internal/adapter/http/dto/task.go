package dto

type TaskItem struct {
	ID               uint64  `json:"id"`
	ProjectID        uint64  `json:"project_id"`
	Title            string  `json:"title"`
	Description      *string `json:"description"`
	Status           string  `json:"status"`
	AssignedTo       *uint64 `json:"assigned_to"`
	LinkedTo         *uint64 `json:"linked_to"`
	CreatedBy        uint64  `json:"created_by"`
	UpdatedBy        uint64  `json:"updated_by"`
	IsCreatedByAdmin bool    `json:"is_created_by_admin"`
	CreatedAt        string  `json:"created_at"`
	UpdatedAt        string  `json:"updated_at"`
}

type CreateTaskRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
}

type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	AssignedTo  *uint64 `json:"assigned_to"`
	LinkedTo    *uint64 `json:"linked_to"`
}
