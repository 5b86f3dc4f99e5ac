package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"taskboard/internal/core/domain"
	"taskboard/internal/core/policy"
	"taskboard/internal/core/ports"
)

type TaskService struct {
	taskRepository       ports.TaskRepository
	membershipRepository ports.MembershipReader
	userRepository       ports.UserRepository
	now                  func() time.Time
}

func NewTaskService(
	taskRepository ports.TaskRepository,
	membershipRepository ports.MembershipReader,
	userRepository ports.UserRepository,
) *TaskService {
	return &TaskService{
		taskRepository:       taskRepository,
		membershipRepository: membershipRepository,
		userRepository:       userRepository,
		now:                  utcNow,
	}
}

func (s *TaskService) ListProjectTasks(ctx context.Context, callerID, projectID uint64, filter domain.TaskFilter) ([]domain.Task, error) {
	role, err := policy.ResolveRole(ctx, s.membershipRepository, projectID, callerID)
	if err != nil {
		return nil, err
	}
	return s.taskRepository.ListProjectTasks(ctx, projectID, policy.VisibleTasks(role, callerID, filter))
}

func (s *TaskService) CreateTask(ctx context.Context, callerID, projectID uint64, input domain.CreateTaskInput) (domain.Task, error) {
	role, err := policy.ResolveRole(ctx, s.membershipRepository, projectID, callerID)
	if err != nil {
		return domain.Task{}, err
	}
	return s.taskRepository.CreateTask(ctx, policy.NewTask(role, callerID, projectID, input, s.now()))
}

func (s *TaskService) UpdateTask(ctx context.Context, callerID, projectID, taskID uint64, input domain.UpdateTaskInput) (domain.TaskUpdate, error) {
	role, err := policy.ResolveRole(ctx, s.membershipRepository, projectID, callerID)
	if err != nil {
		return domain.TaskUpdate{}, err
	}

	current, err := s.projectTask(ctx, projectID, taskID)
	if err != nil {
		return domain.TaskUpdate{}, err
	}

	update, err := policy.ReviewTaskUpdate(ctx, s.taskRepository, role, callerID, current, input, s.now())
	if err != nil {
		return domain.TaskUpdate{}, err
	}

	if err := s.taskRepository.UpdateTask(ctx, taskID, current.Version, update); err != nil {
		return domain.TaskUpdate{}, err
	}
	return update, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, callerID, projectID, taskID uint64) error {
	role, err := policy.ResolveRole(ctx, s.membershipRepository, projectID, callerID)
	if err != nil {
		return err
	}
	if err := policy.AuthorizeTaskDelete(role); err != nil {
		return err
	}
	if _, err := s.projectTask(ctx, projectID, taskID); err != nil {
		return err
	}
	return s.taskRepository.DeleteTask(ctx, taskID)
}

func (s *TaskService) GetTaskAssignee(ctx context.Context, taskID uint64) (domain.User, error) {
	return s.taskUser(ctx, taskID, func(task domain.Task) *uint64 { return task.AssignedTo })
}

func (s *TaskService) GetTaskCreator(ctx context.Context, taskID uint64) (domain.User, error) {
	return s.taskUser(ctx, taskID, func(task domain.Task) *uint64 { return &task.CreatedBy })
}

func (s *TaskService) GetTaskUpdater(ctx context.Context, taskID uint64) (domain.User, error) {
	return s.taskUser(ctx, taskID, func(task domain.Task) *uint64 { return &task.UpdatedBy })
}

// projectTask loads taskID and hides it when it belongs to another project.
func (s *TaskService) projectTask(ctx context.Context, projectID, taskID uint64) (domain.Task, error) {
	task, err := s.taskRepository.GetTaskByID(ctx, taskID)
	if err != nil {
		return domain.Task{}, err
	}
	if task.ProjectID != projectID {
		return domain.Task{}, domain.ErrTaskNotFound
	}
	return task, nil
}

func (s *TaskService) taskUser(ctx context.Context, taskID uint64, pick func(domain.Task) *uint64) (domain.User, error) {
	task, err := s.taskRepository.GetTaskByID(ctx, taskID)
	if err != nil {
		return domain.User{}, err
	}
	userID := pick(task)
	if userID == nil {
		return domain.User{}, domain.ErrUserNotFound
	}

	user, err := s.userRepository.GetUserByID(ctx, *userID)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return domain.User{}, fmt.Errorf("get user %d: %w", *userID, err)
	}
	return user, err
}

func utcNow() time.Time {
	return time.Now().UTC()
}

var _ ports.TaskService = (*TaskService)(nil)
