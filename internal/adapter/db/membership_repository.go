package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"taskboard/internal/core/domain"
	"taskboard/internal/core/ports"
)

const membershipColumns = `id, project_id, user_id, role`

const insertMembershipQuery = `INSERT INTO project_users (project_id, user_id, role) VALUES (?, ?, ?)`

type MembershipRepository struct {
	db *sqlx.DB
}

type membershipRow struct {
	ID        uint64 `db:"id"`
	ProjectID uint64 `db:"project_id"`
	UserID    uint64 `db:"user_id"`
	Role      string `db:"role"`
}

var _ ports.MembershipRepository = (*MembershipRepository)(nil)

func NewMembershipRepository(db *sqlx.DB) *MembershipRepository {
	return &MembershipRepository{db: db}
}

func (r *MembershipRepository) FindMembership(ctx context.Context, projectID, userID uint64) (domain.Membership, error) {
	var row membershipRow
	err := r.db.GetContext(ctx, &row,
		`SELECT `+membershipColumns+` FROM project_users WHERE project_id = ? AND user_id = ?`,
		projectID, userID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Membership{}, domain.ErrMembershipNotFound
		}
		return domain.Membership{}, fmt.Errorf("find membership of user %d in project %d: %w", userID, projectID, err)
	}
	return mapMembershipRow(row), nil
}

func (r *MembershipRepository) CountProjectMemberships(ctx context.Context, projectID uint64) (int64, error) {
	var count int64
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM project_users WHERE project_id = ?`, projectID); err != nil {
		return 0, fmt.Errorf("count memberships of project %d: %w", projectID, err)
	}
	return count, nil
}

func (r *MembershipRepository) GetMembershipByID(ctx context.Context, membershipID uint64) (domain.Membership, error) {
	var row membershipRow
	err := r.db.GetContext(ctx, &row, `SELECT `+membershipColumns+` FROM project_users WHERE id = ?`, membershipID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Membership{}, domain.ErrMembershipNotFound
		}
		return domain.Membership{}, fmt.Errorf("get membership %d: %w", membershipID, err)
	}
	return mapMembershipRow(row), nil
}

func (r *MembershipRepository) CreateMembership(ctx context.Context, membership domain.Membership) (domain.Membership, error) {
	result, err := r.db.ExecContext(ctx, insertMembershipQuery, membership.ProjectID, membership.UserID, string(membership.Role))
	if err != nil {
		switch mysqlErrorNumber(err) {
		case mysqlErrDuplicateEntry:
			return domain.Membership{}, domain.ErrMembershipExists
		case mysqlErrNoReferencedRow:
			return domain.Membership{}, domain.ErrUserNotFound
		}
		return domain.Membership{}, fmt.Errorf("insert membership: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return domain.Membership{}, fmt.Errorf("read membership id: %w", err)
	}
	membership.ID = uint64(id)
	return membership, nil
}

func (r *MembershipRepository) ListMemberships(ctx context.Context, projectID uint64, filter domain.MembershipFilter) ([]domain.Membership, error) {
	where, args := membershipWhere(projectID, filter)

	var rows []membershipRow
	if err := r.db.SelectContext(ctx, &rows, `SELECT `+membershipColumns+` FROM project_users`+where+` ORDER BY id`, args...); err != nil {
		return nil, fmt.Errorf("list memberships of project %d: %w", projectID, err)
	}

	memberships := make([]domain.Membership, 0, len(rows))
	for _, row := range rows {
		memberships = append(memberships, mapMembershipRow(row))
	}
	return memberships, nil
}

func (r *MembershipRepository) UpdateMembershipsRole(ctx context.Context, projectID uint64, filter domain.MembershipFilter, role domain.Role) (int64, error) {
	where, args := membershipWhere(projectID, filter)

	result, err := r.db.ExecContext(ctx, `UPDATE project_users SET role = ?`+where, append([]any{string(role)}, args...)...)
	if err != nil {
		return 0, fmt.Errorf("update memberships of project %d: %w", projectID, err)
	}
	return result.RowsAffected()
}

func (r *MembershipRepository) DeleteMemberships(ctx context.Context, projectID uint64, filter domain.MembershipFilter) (int64, error) {
	where, args := membershipWhere(projectID, filter)

	result, err := r.db.ExecContext(ctx, `DELETE FROM project_users`+where, args...)
	if err != nil {
		return 0, fmt.Errorf("delete memberships of project %d: %w", projectID, err)
	}
	return result.RowsAffected()
}

func membershipWhere(projectID uint64, filter domain.MembershipFilter) (string, []any) {
	where := ` WHERE project_id = ?`
	args := []any{projectID}
	if filter.UserID != nil {
		where += ` AND user_id = ?`
		args = append(args, *filter.UserID)
	}
	if filter.Role != nil {
		where += ` AND role = ?`
		args = append(args, string(*filter.Role))
	}
	return where, args
}

func mapMembershipRow(row membershipRow) domain.Membership {
	return domain.Membership{
		ID:        row.ID,
		ProjectID: row.ProjectID,
		UserID:    row.UserID,
		Role:      domain.Role(row.Role),
	}
}
