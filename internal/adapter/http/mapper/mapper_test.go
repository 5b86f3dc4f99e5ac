package mapper

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard/internal/core/domain"
)

func TestToTaskItem_KeepsNulls(t *testing.T) {
	createdAt := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	item := ToTaskItem(domain.Task{
		ID:        1,
		ProjectID: 2,
		Title:     "Write docs",
		Status:    domain.TaskStatusNotAssignedYet,
		CreatedBy: 3,
		UpdatedBy: 3,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	})

	body, err := json.Marshal(item)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"id": 1, "project_id": 2, "title": "Write docs", "description": null,
		"status": "not assigned yet", "assigned_to": null, "linked_to": null,
		"created_by": 3, "updated_by": 3, "is_created_by_admin": false,
		"created_at": "2026-03-01T09:00:00Z", "updated_at": "2026-03-01T09:00:00Z"
	}`, string(body))
}

func TestToTaskPatch_OnlyWrittenFields(t *testing.T) {
	status := domain.TaskStatusOnProgress
	assignee := uint64(5)
	patch := ToTaskPatch(domain.TaskUpdate{
		UpdateTaskInput: domain.UpdateTaskInput{
			Status:        &status,
			AssignedTo:    &assignee,
			AssignedToSet: true,
			LinkedToSet:   true,
		},
		UpdatedBy: 1,
		UpdatedAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	})

	body, err := json.Marshal(patch)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"status": "on progress", "assigned_to": 5, "linked_to": null,
		"updated_by": 1, "updated_at": "2026-03-01T10:00:00Z"
	}`, string(body))
}
