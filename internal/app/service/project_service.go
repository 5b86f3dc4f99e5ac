package service

import (
	"context"
	"time"

	"taskboard/internal/core/domain"
	"taskboard/internal/core/ports"
)

type ProjectService struct {
	projectRepository ports.ProjectRepository
	now               func() time.Time
}

func NewProjectService(projectRepository ports.ProjectRepository) *ProjectService {
	return &ProjectService{projectRepository: projectRepository, now: utcNow}
}

// CreateProject stores the project and makes callerID its admin.
func (s *ProjectService) CreateProject(ctx context.Context, callerID uint64, input domain.CreateProjectInput) (domain.Project, error) {
	now := s.now()
	project, _, err := s.projectRepository.CreateProjectWithAdmin(ctx, domain.Project{
		Title:       input.Title,
		Description: input.Description,
		CreatedBy:   callerID,
		UpdatedBy:   callerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	return project, err
}

func (s *ProjectService) GetProject(ctx context.Context, projectID uint64) (domain.Project, error) {
	return s.projectRepository.GetProjectByID(ctx, projectID)
}

func (s *ProjectService) ListProjects(ctx context.Context, filter domain.ProjectFilter) ([]domain.Project, error) {
	return s.projectRepository.ListProjects(ctx, filter)
}

func (s *ProjectService) CountProjects(ctx context.Context, filter domain.ProjectFilter) (int64, error) {
	return s.projectRepository.CountProjects(ctx, filter)
}

func (s *ProjectService) UpdateProject(ctx context.Context, callerID, projectID uint64, input domain.UpdateProjectInput) (domain.Project, error) {
	if err := s.projectRepository.UpdateProject(ctx, projectID, s.stamp(callerID, input)); err != nil {
		return domain.Project{}, err
	}
	return s.projectRepository.GetProjectByID(ctx, projectID)
}

func (s *ProjectService) UpdateProjects(ctx context.Context, callerID uint64, filter domain.ProjectFilter, input domain.UpdateProjectInput) (int64, error) {
	return s.projectRepository.UpdateProjects(ctx, filter, s.stamp(callerID, input))
}

func (s *ProjectService) ReplaceProject(ctx context.Context, callerID, projectID uint64, input domain.ReplaceProjectInput) (domain.Project, error) {
	title := input.Title
	return s.UpdateProject(ctx, callerID, projectID, domain.UpdateProjectInput{
		Title:          &title,
		Description:    input.Description,
		DescriptionSet: true,
	})
}

func (s *ProjectService) DeleteProject(ctx context.Context, projectID uint64) error {
	return s.projectRepository.DeleteProject(ctx, projectID)
}

func (s *ProjectService) stamp(callerID uint64, input domain.UpdateProjectInput) domain.ProjectUpdate {
	return domain.ProjectUpdate{
		UpdateProjectInput: input,
		UpdatedBy:          callerID,
		UpdatedAt:          s.now(),
	}
}

var _ ports.ProjectService = (*ProjectService)(nil)
