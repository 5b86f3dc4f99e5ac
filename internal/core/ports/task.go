package ports

import (
	"context"

	"taskboard/internal/core/domain"
)

type TaskReader interface {
	GetTaskByID(ctx context.Context, taskID uint64) (domain.Task, error)
}

type TaskRepository interface {
	TaskReader
	ListProjectTasks(ctx context.Context, projectID uint64, filter domain.TaskFilter) ([]domain.Task, error)
	CreateTask(ctx context.Context, task domain.Task) (domain.Task, error)
	// UpdateTask applies the change set only if the stored version still
	// equals version, otherwise it returns domain.ErrTaskConflict.
	UpdateTask(ctx context.Context, taskID, version uint64, update domain.TaskUpdate) error
	DeleteTask(ctx context.Context, taskID uint64) error
}

type TaskService interface {
	ListProjectTasks(ctx context.Context, callerID, projectID uint64, filter domain.TaskFilter) ([]domain.Task, error)
	CreateTask(ctx context.Context, callerID, projectID uint64, input domain.CreateTaskInput) (domain.Task, error)
	UpdateTask(ctx context.Context, callerID, projectID, taskID uint64, input domain.UpdateTaskInput) (domain.TaskUpdate, error)
	DeleteTask(ctx context.Context, callerID, projectID, taskID uint64) error
	GetTaskAssignee(ctx context.Context, taskID uint64) (domain.User, error)
	GetTaskCreator(ctx context.Context, taskID uint64) (domain.User, error)
	GetTaskUpdater(ctx context.Context, taskID uint64) (domain.User, error)
}
