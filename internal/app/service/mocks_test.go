package service_test

import (
	"context"
	"time"

	"taskboard/internal/core/domain"

	"github.com/stretchr/testify/mock"
)

type taskRepositoryMock struct {
	mock.Mock
}

func (m *taskRepositoryMock) GetTaskByID(ctx context.Context, taskID uint64) (domain.Task, error) {
	args := m.Called(ctx, taskID)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskRepositoryMock) ListProjectTasks(ctx context.Context, projectID uint64, filter domain.TaskFilter) ([]domain.Task, error) {
	args := m.Called(ctx, projectID, filter)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskRepositoryMock) CreateTask(ctx context.Context, task domain.Task) (domain.Task, error) {
	args := m.Called(ctx, task)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskRepositoryMock) UpdateTask(ctx context.Context, taskID, version uint64, update domain.TaskUpdate) error {
	args := m.Called(ctx, taskID, version, update)
	return args.Error(0)
}

func (m *taskRepositoryMock) DeleteTask(ctx context.Context, taskID uint64) error {
	args := m.Called(ctx, taskID)
	return args.Error(0)
}

type membershipRepositoryMock struct {
	mock.Mock
}

func (m *membershipRepositoryMock) FindMembership(ctx context.Context, projectID, userID uint64) (domain.Membership, error) {
	args := m.Called(ctx, projectID, userID)
	return args.Get(0).(domain.Membership), args.Error(1)
}

func (m *membershipRepositoryMock) CountProjectMemberships(ctx context.Context, projectID uint64) (int64, error) {
	args := m.Called(ctx, projectID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *membershipRepositoryMock) GetMembershipByID(ctx context.Context, membershipID uint64) (domain.Membership, error) {
	args := m.Called(ctx, membershipID)
	return args.Get(0).(domain.Membership), args.Error(1)
}

func (m *membershipRepositoryMock) CreateMembership(ctx context.Context, membership domain.Membership) (domain.Membership, error) {
	args := m.Called(ctx, membership)
	return args.Get(0).(domain.Membership), args.Error(1)
}

func (m *membershipRepositoryMock) ListMemberships(ctx context.Context, projectID uint64, filter domain.MembershipFilter) ([]domain.Membership, error) {
	args := m.Called(ctx, projectID, filter)

	var memberships []domain.Membership
	if value := args.Get(0); value != nil {
		memberships = value.([]domain.Membership)
	}
	return memberships, args.Error(1)
}

func (m *membershipRepositoryMock) UpdateMembershipsRole(ctx context.Context, projectID uint64, filter domain.MembershipFilter, role domain.Role) (int64, error) {
	args := m.Called(ctx, projectID, filter, role)
	return args.Get(0).(int64), args.Error(1)
}

func (m *membershipRepositoryMock) DeleteMemberships(ctx context.Context, projectID uint64, filter domain.MembershipFilter) (int64, error) {
	args := m.Called(ctx, projectID, filter)
	return args.Get(0).(int64), args.Error(1)
}

type userRepositoryMock struct {
	mock.Mock
}

func (m *userRepositoryMock) CreateUser(ctx context.Context, user domain.User) (domain.User, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userRepositoryMock) GetUserByID(ctx context.Context, userID uint64) (domain.User, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userRepositoryMock) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(domain.User), args.Error(1)
}

type projectRepositoryMock struct {
	mock.Mock
}

func (m *projectRepositoryMock) CreateProjectWithAdmin(ctx context.Context, project domain.Project) (domain.Project, domain.Membership, error) {
	args := m.Called(ctx, project)
	return args.Get(0).(domain.Project), args.Get(1).(domain.Membership), args.Error(2)
}

func (m *projectRepositoryMock) GetProjectByID(ctx context.Context, projectID uint64) (domain.Project, error) {
	args := m.Called(ctx, projectID)
	return args.Get(0).(domain.Project), args.Error(1)
}

func (m *projectRepositoryMock) ListProjects(ctx context.Context, filter domain.ProjectFilter) ([]domain.Project, error) {
	args := m.Called(ctx, filter)

	var projects []domain.Project
	if value := args.Get(0); value != nil {
		projects = value.([]domain.Project)
	}
	return projects, args.Error(1)
}

func (m *projectRepositoryMock) CountProjects(ctx context.Context, filter domain.ProjectFilter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *projectRepositoryMock) UpdateProject(ctx context.Context, projectID uint64, update domain.ProjectUpdate) error {
	args := m.Called(ctx, projectID, update)
	return args.Error(0)
}

func (m *projectRepositoryMock) UpdateProjects(ctx context.Context, filter domain.ProjectFilter, update domain.ProjectUpdate) (int64, error) {
	args := m.Called(ctx, filter, update)
	return args.Get(0).(int64), args.Error(1)
}

func (m *projectRepositoryMock) DeleteProject(ctx context.Context, projectID uint64) error {
	args := m.Called(ctx, projectID)
	return args.Error(0)
}

type tokenIssuerMock struct {
	mock.Mock
}

func (m *tokenIssuerMock) Issue(userID uint64) (string, time.Time, error) {
	args := m.Called(userID)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func member(projectID, userID uint64, role domain.Role) domain.Membership {
	return domain.Membership{ProjectID: projectID, UserID: userID, Role: role}
}

func idPtr(id uint64) *uint64 {
	return &id
}
