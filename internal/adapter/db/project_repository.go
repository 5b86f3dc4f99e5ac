package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"taskboard/internal/core/domain"
	"taskboard/internal/core/ports"
)

const projectColumns = `id, title, description, created_by, updated_by, created_at, updated_at`

const insertProjectQuery = `
INSERT INTO projects (title, description, created_by, updated_by, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?)`

type ProjectRepository struct {
	db *sqlx.DB
}

type projectRow struct {
	ID          uint64         `db:"id"`
	Title       string         `db:"title"`
	Description sql.NullString `db:"description"`
	CreatedBy   uint64         `db:"created_by"`
	UpdatedBy   uint64         `db:"updated_by"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

var _ ports.ProjectRepository = (*ProjectRepository)(nil)

func NewProjectRepository(db *sqlx.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) CreateProjectWithAdmin(ctx context.Context, project domain.Project) (domain.Project, domain.Membership, error) {
	membership := domain.Membership{UserID: project.CreatedBy, Role: domain.RoleAdmin}

	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		result, err := tx.ExecContext(ctx, insertProjectQuery,
			project.Title,
			nullable(project.Description),
			project.CreatedBy,
			project.UpdatedBy,
			project.CreatedAt,
			project.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("insert project: %w", err)
		}
		projectID, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("read project id: %w", err)
		}
		project.ID = uint64(projectID)
		membership.ProjectID = project.ID

		result, err = tx.ExecContext(ctx, insertMembershipQuery, membership.ProjectID, membership.UserID, string(membership.Role))
		if err != nil {
			return fmt.Errorf("insert admin membership: %w", err)
		}
		membershipID, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("read membership id: %w", err)
		}
		membership.ID = uint64(membershipID)
		return nil
	})
	if err != nil {
		if mysqlErrorNumber(err) == mysqlErrNoReferencedRow {
			return domain.Project{}, domain.Membership{}, domain.ErrUserNotFound
		}
		return domain.Project{}, domain.Membership{}, err
	}
	return project, membership, nil
}

func (r *ProjectRepository) GetProjectByID(ctx context.Context, projectID uint64) (domain.Project, error) {
	var row projectRow
	err := r.db.GetContext(ctx, &row, `SELECT `+projectColumns+` FROM projects WHERE id = ?`, projectID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Project{}, domain.ErrProjectNotFound
		}
		return domain.Project{}, fmt.Errorf("get project %d: %w", projectID, err)
	}
	return mapProjectRowToDomainProject(row), nil
}

func (r *ProjectRepository) ListProjects(ctx context.Context, filter domain.ProjectFilter) ([]domain.Project, error) {
	where, args := projectWhere(filter)

	var rows []projectRow
	if err := r.db.SelectContext(ctx, &rows, `SELECT `+projectColumns+` FROM projects`+where+` ORDER BY id`, args...); err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}

	projects := make([]domain.Project, 0, len(rows))
	for _, row := range rows {
		projects = append(projects, mapProjectRowToDomainProject(row))
	}
	return projects, nil
}

func (r *ProjectRepository) CountProjects(ctx context.Context, filter domain.ProjectFilter) (int64, error) {
	where, args := projectWhere(filter)

	var count int64
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM projects`+where, args...); err != nil {
		return 0, fmt.Errorf("count projects: %w", err)
	}
	return count, nil
}

func (r *ProjectRepository) UpdateProject(ctx context.Context, projectID uint64, update domain.ProjectUpdate) error {
	sets, args := projectSet(update)
	query := `UPDATE projects SET ` + sets + ` WHERE id = ?`
	args = append(args, projectID)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update project %d: %w", projectID, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("read affected rows: %w", err)
	}
	if affected > 0 {
		return nil
	}

	// MySQL reports 0 affected rows when the values did not change.
	_, err = r.GetProjectByID(ctx, projectID)
	return err
}

func (r *ProjectRepository) UpdateProjects(ctx context.Context, filter domain.ProjectFilter, update domain.ProjectUpdate) (int64, error) {
	sets, args := projectSet(update)
	where, whereArgs := projectWhere(filter)

	result, err := r.db.ExecContext(ctx, `UPDATE projects SET `+sets+where, append(args, whereArgs...)...)
	if err != nil {
		return 0, fmt.Errorf("update projects: %w", err)
	}
	return result.RowsAffected()
}

func (r *ProjectRepository) DeleteProject(ctx context.Context, projectID uint64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, projectID)
	if err != nil {
		return fmt.Errorf("delete project %d: %w", projectID, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("read affected rows: %w", err)
	}
	if affected == 0 {
		return domain.ErrProjectNotFound
	}
	return nil
}

func projectWhere(filter domain.ProjectFilter) (string, []any) {
	title := strings.TrimSpace(filter.Title)
	if title == "" {
		return "", nil
	}
	return ` WHERE title LIKE ?`, []any{"%" + escapeLike(title) + "%"}
}

func projectSet(update domain.ProjectUpdate) (string, []any) {
	sets := []string{"updated_by = ?", "updated_at = ?"}
	args := []any{update.UpdatedBy, update.UpdatedAt}
	if update.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *update.Title)
	}
	if update.DescriptionSet {
		sets = append(sets, "description = ?")
		args = append(args, nullable(update.Description))
	}
	return strings.Join(sets, ", "), args
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(value string) string {
	return likeEscaper.Replace(value)
}

func mapProjectRowToDomainProject(row projectRow) domain.Project {
	return domain.Project{
		ID:          row.ID,
		Title:       row.Title,
		Description: ptrFromNullString(row.Description.Valid, row.Description.String),
		CreatedBy:   row.CreatedBy,
		UpdatedBy:   row.UpdatedBy,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}
