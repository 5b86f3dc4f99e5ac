package domain

import "time"

type Project struct {
	ID          uint64
	Title       string
	Description *string
	CreatedBy   uint64
	UpdatedBy   uint64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type CreateProjectInput struct {
	Title       string
	Description *string
}

type UpdateProjectInput struct {
	Title          *string
	Description    *string
	DescriptionSet bool
}

type ReplaceProjectInput struct {
	Title       string
	Description *string
}

// ProjectUpdate is an UpdateProjectInput stamped with the audit fields.
type ProjectUpdate struct {
	UpdateProjectInput
	UpdatedBy uint64
	UpdatedAt time.Time
}

type ProjectFilter struct {
	Title string
}
