package policy

import (
	"context"
	"time"

	"taskboard/internal/core/domain"
	"taskboard/internal/core/ports"
)

// NewTask builds the task a member of projectID creates. Server-owned fields
// are derived here and never taken from the request.
func NewTask(role domain.Role, callerID, projectID uint64, input domain.CreateTaskInput, now time.Time) domain.Task {
	return domain.Task{
		ProjectID:        projectID,
		Title:            input.Title,
		Description:      input.Description,
		Status:           domain.TaskStatusNotAssignedYet,
		CreatedBy:        callerID,
		UpdatedBy:        callerID,
		IsCreatedByAdmin: role == domain.RoleAdmin,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

// AuthorizeTaskUpdate decides whether callerID may apply input to current
// and returns the change set amended with the derived fields.
func AuthorizeTaskUpdate(role domain.Role, callerID uint64, current domain.Task, input domain.UpdateTaskInput, now time.Time) (domain.TaskUpdate, error) {
	isAdmin := role == domain.RoleAdmin
	isChangeAssignedTo := input.AssignedToSet && !sameID(input.AssignedTo, current.AssignedTo)
	isChangeLinkedTo := input.LinkedToSet && !sameID(input.LinkedTo, current.LinkedTo)

	if !isAdmin && !sameID(&callerID, current.AssignedTo) {
		return domain.TaskUpdate{}, domain.ErrNotAssignee
	}
	if !isAdmin && (isChangeAssignedTo || isChangeLinkedTo) {
		return domain.TaskUpdate{}, domain.ErrAdminRequired
	}

	update := domain.TaskUpdate{
		UpdateTaskInput: input,
		UpdatedBy:       callerID,
		UpdatedAt:       now,
	}
	if isChangeAssignedTo && current.Status == domain.TaskStatusNotAssignedYet {
		status := domain.TaskStatusOnProgress
		update.Status = &status
	}
	return update, nil
}

// ReviewTaskUpdate runs AuthorizeTaskUpdate and, when the link moves to
// another task, ValidateLink.
func ReviewTaskUpdate(
	ctx context.Context,
	tasks ports.TaskReader,
	role domain.Role,
	callerID uint64,
	current domain.Task,
	input domain.UpdateTaskInput,
	now time.Time,
) (domain.TaskUpdate, error) {
	update, err := AuthorizeTaskUpdate(role, callerID, current, input, now)
	if err != nil {
		return domain.TaskUpdate{}, err
	}

	if input.LinkedToSet && input.LinkedTo != nil && !sameID(input.LinkedTo, current.LinkedTo) {
		if err := ValidateLink(ctx, tasks, current.ID, *input.LinkedTo, current.ProjectID); err != nil {
			return domain.TaskUpdate{}, err
		}
	}
	return update, nil
}

// AuthorizeTaskDelete allows only project admins to delete tasks.
func AuthorizeTaskDelete(role domain.Role) error {
	if role != domain.RoleAdmin {
		return domain.ErrAdminRequired
	}
	return nil
}

// VisibleTasks narrows filter to what role may list: admins see every task
// of the project, other members only the tasks assigned to them.
func VisibleTasks(role domain.Role, callerID uint64, filter domain.TaskFilter) domain.TaskFilter {
	if role == domain.RoleAdmin {
		return filter
	}
	assignee := callerID
	filter.AssignedTo = &assignee
	return filter
}

func sameID(a, b *uint64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
