package tests

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	httpadapter "taskboard/internal/adapter/http"
	"taskboard/internal/adapter/http/handlers"
	"taskboard/internal/adapter/http/middleware"
	"taskboard/internal/core/domain"
	"taskboard/pkg/apierrors"
	"taskboard/pkg/token"
	"taskboard/pkg/translator"
)

type taskServiceMock struct {
	mock.Mock
}

func (m *taskServiceMock) ListProjectTasks(ctx context.Context, callerID, projectID uint64, filter domain.TaskFilter) ([]domain.Task, error) {
	args := m.Called(ctx, callerID, projectID, filter)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskServiceMock) CreateTask(ctx context.Context, callerID, projectID uint64, input domain.CreateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, callerID, projectID, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) UpdateTask(ctx context.Context, callerID, projectID, taskID uint64, input domain.UpdateTaskInput) (domain.TaskUpdate, error) {
	args := m.Called(ctx, callerID, projectID, taskID, input)
	return args.Get(0).(domain.TaskUpdate), args.Error(1)
}

func (m *taskServiceMock) DeleteTask(ctx context.Context, callerID, projectID, taskID uint64) error {
	return m.Called(ctx, callerID, projectID, taskID).Error(0)
}

func (m *taskServiceMock) GetTaskAssignee(ctx context.Context, taskID uint64) (domain.User, error) {
	args := m.Called(ctx, taskID)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *taskServiceMock) GetTaskCreator(ctx context.Context, taskID uint64) (domain.User, error) {
	args := m.Called(ctx, taskID)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *taskServiceMock) GetTaskUpdater(ctx context.Context, taskID uint64) (domain.User, error) {
	args := m.Called(ctx, taskID)
	return args.Get(0).(domain.User), args.Error(1)
}

type projectServiceMock struct {
	mock.Mock
}

func (m *projectServiceMock) CreateProject(ctx context.Context, callerID uint64, input domain.CreateProjectInput) (domain.Project, error) {
	args := m.Called(ctx, callerID, input)
	return args.Get(0).(domain.Project), args.Error(1)
}

func (m *projectServiceMock) GetProject(ctx context.Context, projectID uint64) (domain.Project, error) {
	args := m.Called(ctx, projectID)
	return args.Get(0).(domain.Project), args.Error(1)
}

func (m *projectServiceMock) ListProjects(ctx context.Context, filter domain.ProjectFilter) ([]domain.Project, error) {
	args := m.Called(ctx, filter)

	var projects []domain.Project
	if value := args.Get(0); value != nil {
		projects = value.([]domain.Project)
	}
	return projects, args.Error(1)
}

func (m *projectServiceMock) CountProjects(ctx context.Context, filter domain.ProjectFilter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *projectServiceMock) UpdateProject(ctx context.Context, callerID, projectID uint64, input domain.UpdateProjectInput) (domain.Project, error) {
	args := m.Called(ctx, callerID, projectID, input)
	return args.Get(0).(domain.Project), args.Error(1)
}

func (m *projectServiceMock) UpdateProjects(ctx context.Context, callerID uint64, filter domain.ProjectFilter, input domain.UpdateProjectInput) (int64, error) {
	args := m.Called(ctx, callerID, filter, input)
	return args.Get(0).(int64), args.Error(1)
}

func (m *projectServiceMock) ReplaceProject(ctx context.Context, callerID, projectID uint64, input domain.ReplaceProjectInput) (domain.Project, error) {
	args := m.Called(ctx, callerID, projectID, input)
	return args.Get(0).(domain.Project), args.Error(1)
}

func (m *projectServiceMock) DeleteProject(ctx context.Context, projectID uint64) error {
	return m.Called(ctx, projectID).Error(0)
}

type membershipServiceMock struct {
	mock.Mock
}

func (m *membershipServiceMock) AssignUser(ctx context.Context, callerID, projectID uint64, input domain.AssignUserInput) (domain.Membership, error) {
	args := m.Called(ctx, callerID, projectID, input)
	return args.Get(0).(domain.Membership), args.Error(1)
}

func (m *membershipServiceMock) ListMemberships(ctx context.Context, projectID uint64, filter domain.MembershipFilter) ([]domain.Membership, error) {
	args := m.Called(ctx, projectID, filter)

	var memberships []domain.Membership
	if value := args.Get(0); value != nil {
		memberships = value.([]domain.Membership)
	}
	return memberships, args.Error(1)
}

func (m *membershipServiceMock) UpdateMembershipsRole(ctx context.Context, projectID uint64, filter domain.MembershipFilter, role domain.Role) (int64, error) {
	args := m.Called(ctx, projectID, filter, role)
	return args.Get(0).(int64), args.Error(1)
}

func (m *membershipServiceMock) DeleteMemberships(ctx context.Context, projectID uint64, filter domain.MembershipFilter) (int64, error) {
	args := m.Called(ctx, projectID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *membershipServiceMock) GetMembershipUser(ctx context.Context, membershipID uint64) (domain.User, error) {
	args := m.Called(ctx, membershipID)
	return args.Get(0).(domain.User), args.Error(1)
}

type userServiceMock struct {
	mock.Mock
}

func (m *userServiceMock) SignUp(ctx context.Context, input domain.SignUpInput) (domain.User, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userServiceMock) Login(ctx context.Context, credentials domain.Credentials) (domain.AuthToken, error) {
	args := m.Called(ctx, credentials)
	return args.Get(0).(domain.AuthToken), args.Error(1)
}

func (m *userServiceMock) GetUser(ctx context.Context, userID uint64) (domain.User, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.User), args.Error(1)
}

// tokenParserStub accepts tokens of the form "user-<id>" registered in users.
type tokenParserStub struct {
	users map[string]uint64
}

func (s tokenParserStub) Parse(tokenString string) (*token.Claims, error) {
	userID, ok := s.users[tokenString]
	if !ok {
		return nil, token.ErrInvalidToken
	}
	return &token.Claims{UserID: userID}, nil
}

// userLookupStub resolves every id to a user.
type userLookupStub struct{}

func (userLookupStub) GetUser(_ context.Context, userID uint64) (domain.User, error) {
	return domain.User{ID: userID}, nil
}

const (
	adminToken = "user-1"
	userToken  = "user-2"
)

type fixture struct {
	router      *gin.Engine
	tasks       *taskServiceMock
	projects    *projectServiceMock
	memberships *membershipServiceMock
	users       *userServiceMock
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		router:      gin.New(),
		tasks:       new(taskServiceMock),
		projects:    new(projectServiceMock),
		memberships: new(membershipServiceMock),
		users:       new(userServiceMock),
	}
	f.router.Use(middleware.RequestIDMiddleware())

	auth := middleware.AuthMiddleware(
		tokenParserStub{users: map[string]uint64{adminToken: 1, userToken: 2}},
		userLookupStub{},
	)
	httpadapter.RegisterRoutes(f.router, httpadapter.Handlers{
		Health:      handlers.NewHealthHandler(nil),
		Users:       handlers.NewUserHandler(f.users),
		Projects:    handlers.NewProjectHandler(f.projects),
		Memberships: handlers.NewMembershipHandler(f.memberships),
		Tasks:       handlers.NewTaskHandler(f.tasks),
	}, auth)

	t.Cleanup(func() {
		f.tasks.AssertExpectations(t)
		f.projects.AssertExpectations(t)
		f.memberships.AssertExpectations(t)
		f.users.AssertExpectations(t)
	})
	return f
}

func (f *fixture) do(method, target, bearer, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func requireAPIError(t *testing.T, rec *httptest.ResponseRecorder, status int, msgKey string) apierrors.JsonErr {
	t.Helper()

	require.Equal(t, status, rec.Code, rec.Body.String())

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, status, got.ErrDetails.Code)
	require.Equal(t, apierrors.GetTransErrorMsg(msgKey, translator.LanguageEn), got.ErrDetails.Message)
	return got
}
