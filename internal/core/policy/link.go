package policy

import (
	"context"
	"errors"
	"fmt"

	"taskboard/internal/core/domain"
	"taskboard/internal/core/ports"
)

// ValidateLink checks that taskID may point at linkedID. The rules are
// applied in order: the linked task exists, it lives in projectID, and it is
// not the task itself.
func ValidateLink(ctx context.Context, tasks ports.TaskReader, taskID, linkedID, projectID uint64) error {
	linked, err := tasks.GetTaskByID(ctx, linkedID)
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			return domain.ErrLinkedTaskNotFound
		}
		return fmt.Errorf("get linked task: %w", err)
	}

	if linked.ProjectID != projectID {
		return domain.ErrCrossProjectLink
	}
	if linked.ID == taskID {
		return domain.ErrSelfLink
	}
	return nil
}
