package ports

import (
	"context"

	"taskboard/internal/core/domain"
)

type ProjectRepository interface {
	// CreateProjectWithAdmin stores the project and the admin membership of
	// its creator in a single transaction.
	CreateProjectWithAdmin(ctx context.Context, project domain.Project) (domain.Project, domain.Membership, error)
	GetProjectByID(ctx context.Context, projectID uint64) (domain.Project, error)
	ListProjects(ctx context.Context, filter domain.ProjectFilter) ([]domain.Project, error)
	CountProjects(ctx context.Context, filter domain.ProjectFilter) (int64, error)
	UpdateProject(ctx context.Context, projectID uint64, update domain.ProjectUpdate) error
	UpdateProjects(ctx context.Context, filter domain.ProjectFilter, update domain.ProjectUpdate) (int64, error)
	DeleteProject(ctx context.Context, projectID uint64) error
}

type ProjectService interface {
	CreateProject(ctx context.Context, callerID uint64, input domain.CreateProjectInput) (domain.Project, error)
	GetProject(ctx context.Context, projectID uint64) (domain.Project, error)
	ListProjects(ctx context.Context, filter domain.ProjectFilter) ([]domain.Project, error)
	CountProjects(ctx context.Context, filter domain.ProjectFilter) (int64, error)
	UpdateProject(ctx context.Context, callerID, projectID uint64, input domain.UpdateProjectInput) (domain.Project, error)
	UpdateProjects(ctx context.Context, callerID uint64, filter domain.ProjectFilter, input domain.UpdateProjectInput) (int64, error)
	ReplaceProject(ctx context.Context, callerID, projectID uint64, input domain.ReplaceProjectInput) (domain.Project, error)
	DeleteProject(ctx context.Context, projectID uint64) error
}
