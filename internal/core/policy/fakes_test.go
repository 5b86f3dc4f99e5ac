package policy_test

import (
	"context"

	"taskboard/internal/core/domain"
)

type fakeMemberships struct {
	items []domain.Membership
	err   error
}

func (f *fakeMemberships) FindMembership(_ context.Context, projectID, userID uint64) (domain.Membership, error) {
	if f.err != nil {
		return domain.Membership{}, f.err
	}
	for _, m := range f.items {
		if m.ProjectID == projectID && m.UserID == userID {
			return m, nil
		}
	}
	return domain.Membership{}, domain.ErrMembershipNotFound
}

func (f *fakeMemberships) CountProjectMemberships(_ context.Context, projectID uint64) (int64, error) {
	var count int64
	for _, m := range f.items {
		if m.ProjectID == projectID {
			count++
		}
	}
	return count, nil
}

type fakeTasks map[uint64]domain.Task

func (f fakeTasks) GetTaskByID(_ context.Context, taskID uint64) (domain.Task, error) {
	task, ok := f[taskID]
	if !ok {
		return domain.Task{}, domain.ErrTaskNotFound
	}
	return task, nil
}

func idPtr(id uint64) *uint64 {
	return &id
}
