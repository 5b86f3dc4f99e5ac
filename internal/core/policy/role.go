package policy

import (
	"context"
	"errors"
	"fmt"

	"taskboard/internal/core/domain"
	"taskboard/internal/core/ports"
)

// ResolveRole returns the role userID holds in projectID.
//
// The membership is looked up by (projectID, userID). When it is missing,
// domain.ErrProjectNotFound is returned if the project has no members at all
// and domain.ErrUserNotInProject otherwise.
func ResolveRole(ctx context.Context, memberships ports.MembershipReader, projectID, userID uint64) (domain.Role, error) {
	membership, err := memberships.FindMembership(ctx, projectID, userID)
	if err == nil {
		return membership.Role, nil
	}
	if !errors.Is(err, domain.ErrMembershipNotFound) {
		return "", fmt.Errorf("find membership: %w", err)
	}

	count, err := memberships.CountProjectMemberships(ctx, projectID)
	if err != nil {
		return "", fmt.Errorf("count project memberships: %w", err)
	}
	if count == 0 {
		return "", domain.ErrProjectNotFound
	}
	return "", domain.ErrUserNotInProject
}

// AuthorizeAssignment allows only project admins to add members.
func AuthorizeAssignment(role domain.Role) error {
	if role != domain.RoleAdmin {
		return domain.ErrAdminRequired
	}
	return nil
}
