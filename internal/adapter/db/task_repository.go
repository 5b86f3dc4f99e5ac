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

const taskColumns = `id, project_id, title, description, status, assigned_to, linked_to,
  created_by, updated_by, is_created_by_admin, version, created_at, updated_at`

const getTaskQuery = `SELECT ` + taskColumns + ` FROM tasks WHERE id = ?`

const insertTaskQuery = `
INSERT INTO tasks (project_id, title, description, status, assigned_to, linked_to,
  created_by, updated_by, is_created_by_admin, version, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, 1, ?, ?)`

type TaskRepository struct {
	db *sqlx.DB
}

type taskRow struct {
	ID               uint64         `db:"id"`
	ProjectID        uint64         `db:"project_id"`
	Title            string         `db:"title"`
	Description      sql.NullString `db:"description"`
	Status           string         `db:"status"`
	AssignedTo       sql.NullInt64  `db:"assigned_to"`
	LinkedTo         sql.NullInt64  `db:"linked_to"`
	CreatedBy        uint64         `db:"created_by"`
	UpdatedBy        uint64         `db:"updated_by"`
	IsCreatedByAdmin bool           `db:"is_created_by_admin"`
	Version          uint64         `db:"version"`
	CreatedAt        time.Time      `db:"created_at"`
	UpdatedAt        time.Time      `db:"updated_at"`
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) GetTaskByID(ctx context.Context, taskID uint64) (domain.Task, error) {
	var row taskRow
	if err := r.db.GetContext(ctx, &row, getTaskQuery, taskID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Task{}, domain.ErrTaskNotFound
		}
		return domain.Task{}, fmt.Errorf("get task %d: %w", taskID, err)
	}
	return mapTaskRowToDomainTask(row), nil
}

func (r *TaskRepository) ListProjectTasks(ctx context.Context, projectID uint64, filter domain.TaskFilter) ([]domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE project_id = ?`
	args := []any{projectID}
	if filter.Status != nil {
		query += ` AND status = ?`
		args = append(args, string(*filter.Status))
	}
	if filter.AssignedTo != nil {
		query += ` AND assigned_to = ?`
		args = append(args, *filter.AssignedTo)
	}
	query += ` ORDER BY id`

	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list tasks of project %d: %w", projectID, err)
	}

	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, mapTaskRowToDomainTask(row))
	}
	return tasks, nil
}

func (r *TaskRepository) CreateTask(ctx context.Context, task domain.Task) (domain.Task, error) {
	result, err := r.db.ExecContext(ctx, insertTaskQuery,
		task.ProjectID,
		task.Title,
		nullable(task.Description),
		string(task.Status),
		nullable(task.AssignedTo),
		nullable(task.LinkedTo),
		task.CreatedBy,
		task.UpdatedBy,
		task.IsCreatedByAdmin,
		task.CreatedAt,
		task.UpdatedAt,
	)
	if err != nil {
		if mysqlErrorNumber(err) == mysqlErrNoReferencedRow {
			return domain.Task{}, taskReferenceError(err, domain.ErrProjectNotFound)
		}
		return domain.Task{}, fmt.Errorf("insert task: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return domain.Task{}, fmt.Errorf("read task id: %w", err)
	}
	task.ID = uint64(id)
	task.Version = 1
	return task, nil
}

func (r *TaskRepository) UpdateTask(ctx context.Context, taskID, version uint64, update domain.TaskUpdate) error {
	sets := []string{"updated_by = ?", "updated_at = ?", "version = version + 1"}
	args := []any{update.UpdatedBy, update.UpdatedAt}

	if update.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *update.Title)
	}
	if update.DescriptionSet {
		sets = append(sets, "description = ?")
		args = append(args, nullable(update.Description))
	}
	if update.Status != nil {
		sets = append(sets, "status = ?")
		args = append(args, string(*update.Status))
	}
	if update.AssignedToSet {
		sets = append(sets, "assigned_to = ?")
		args = append(args, nullable(update.AssignedTo))
	}
	if update.LinkedToSet {
		sets = append(sets, "linked_to = ?")
		args = append(args, nullable(update.LinkedTo))
	}

	query := `UPDATE tasks SET ` + strings.Join(sets, ", ") + ` WHERE id = ? AND version = ?`
	args = append(args, taskID, version)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if mysqlErrorNumber(err) == mysqlErrNoReferencedRow {
			return taskReferenceError(err, domain.ErrUserNotFound)
		}
		return fmt.Errorf("update task %d: %w", taskID, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("read affected rows: %w", err)
	}
	if affected == 0 {
		return domain.ErrTaskConflict
	}
	return nil
}

func (r *TaskRepository) DeleteTask(ctx context.Context, taskID uint64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, taskID)
	if err != nil {
		return fmt.Errorf("delete task %d: %w", taskID, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("read affected rows: %w", err)
	}
	if affected == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

// taskReferenceError maps a failed tasks foreign key to the missing entity.
func taskReferenceError(err error, fallback error) error {
	switch foreignKeyName(err) {
	case "fk_tasks_project":
		return domain.ErrProjectNotFound
	case "fk_tasks_linked_to":
		return domain.ErrLinkedTaskNotFound
	case "fk_tasks_assigned_to", "fk_tasks_created_by", "fk_tasks_updated_by":
		return domain.ErrUserNotFound
	}
	return fallback
}

func mapTaskRowToDomainTask(row taskRow) domain.Task {
	return domain.Task{
		ID:               row.ID,
		ProjectID:        row.ProjectID,
		Title:            row.Title,
		Description:      ptrFromNullString(row.Description.Valid, row.Description.String),
		Status:           domain.TaskStatus(row.Status),
		AssignedTo:       ptrFromNullInt(row.AssignedTo.Valid, row.AssignedTo.Int64),
		LinkedTo:         ptrFromNullInt(row.LinkedTo.Valid, row.LinkedTo.Int64),
		CreatedBy:        row.CreatedBy,
		UpdatedBy:        row.UpdatedBy,
		IsCreatedByAdmin: row.IsCreatedByAdmin,
		Version:          row.Version,
		CreatedAt:        row.CreatedAt,
		UpdatedAt:        row.UpdatedAt,
	}
}
