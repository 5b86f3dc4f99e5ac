package domain

import "time"

type TaskStatus string

const (
	TaskStatusNotAssignedYet TaskStatus = "not assigned yet"
	TaskStatusOnProgress     TaskStatus = "on progress"
	TaskStatusDone           TaskStatus = "done"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusNotAssignedYet, TaskStatusOnProgress, TaskStatusDone:
		return true
	}
	return false
}

type Task struct {
	ID               uint64
	ProjectID        uint64
	Title            string
	Description      *string
	Status           TaskStatus
	AssignedTo       *uint64
	LinkedTo         *uint64
	CreatedBy        uint64
	UpdatedBy        uint64
	IsCreatedByAdmin bool
	Version          uint64
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type CreateTaskInput struct {
	Title       string
	Description *string
}

// UpdateTaskInput carries a partial update. The *Set flags distinguish an
// explicit null from an absent field for nullable columns.
type UpdateTaskInput struct {
	Title          *string
	Description    *string
	DescriptionSet bool
	Status         *TaskStatus
	AssignedTo     *uint64
	AssignedToSet  bool
	LinkedTo       *uint64
	LinkedToSet    bool
}

// TaskUpdate is the server-amended change set that is written to storage.
type TaskUpdate struct {
	UpdateTaskInput
	UpdatedBy uint64
	UpdatedAt time.Time
}

type TaskFilter struct {
	Status     *TaskStatus
	AssignedTo *uint64
}
