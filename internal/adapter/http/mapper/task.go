package mapper

import (
	"time"

	"taskboard/internal/adapter/http/dto"
	"taskboard/internal/core/domain"
)

func ToTaskItems(tasks []domain.Task) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task))
	}
	return items
}

func ToTaskItem(task domain.Task) dto.TaskItem {
	return dto.TaskItem{
		ID:               task.ID,
		ProjectID:        task.ProjectID,
		Title:            task.Title,
		Description:      task.Description,
		Status:           string(task.Status),
		AssignedTo:       task.AssignedTo,
		LinkedTo:         task.LinkedTo,
		CreatedBy:        task.CreatedBy,
		UpdatedBy:        task.UpdatedBy,
		IsCreatedByAdmin: task.IsCreatedByAdmin,
		CreatedAt:        task.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        task.UpdatedAt.Format(time.RFC3339),
	}
}

// ToTaskPatch renders only the fields an update wrote, with cleared fields as null.
func ToTaskPatch(update domain.TaskUpdate) map[string]any {
	patch := map[string]any{
		"updated_by": update.UpdatedBy,
		"updated_at": update.UpdatedAt.Format(time.RFC3339),
	}
	if update.Title != nil {
		patch["title"] = *update.Title
	}
	if update.DescriptionSet {
		patch["description"] = update.Description
	}
	if update.Status != nil {
		patch["status"] = string(*update.Status)
	}
	if update.AssignedToSet {
		patch["assigned_to"] = update.AssignedTo
	}
	if update.LinkedToSet {
		patch["linked_to"] = update.LinkedTo
	}
	return patch
}
