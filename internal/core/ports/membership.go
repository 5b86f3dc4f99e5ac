package ports

import (
	"context"

	"taskboard/internal/core/domain"
)

type MembershipReader interface {
	FindMembership(ctx context.Context, projectID, userID uint64) (domain.Membership, error)
	CountProjectMemberships(ctx context.Context, projectID uint64) (int64, error)
}

type MembershipRepository interface {
	MembershipReader
	GetMembershipByID(ctx context.Context, membershipID uint64) (domain.Membership, error)
	CreateMembership(ctx context.Context, membership domain.Membership) (domain.Membership, error)
	ListMemberships(ctx context.Context, projectID uint64, filter domain.MembershipFilter) ([]domain.Membership, error)
	UpdateMembershipsRole(ctx context.Context, projectID uint64, filter domain.MembershipFilter, role domain.Role) (int64, error)
	DeleteMemberships(ctx context.Context, projectID uint64, filter domain.MembershipFilter) (int64, error)
}

type MembershipService interface {
	AssignUser(ctx context.Context, callerID, projectID uint64, input domain.AssignUserInput) (domain.Membership, error)
	ListMemberships(ctx context.Context, projectID uint64, filter domain.MembershipFilter) ([]domain.Membership, error)
	UpdateMembershipsRole(ctx context.Context, projectID uint64, filter domain.MembershipFilter, role domain.Role) (int64, error)
	DeleteMemberships(ctx context.Context, projectID uint64, filter domain.MembershipFilter) (int64, error)
	GetMembershipUser(ctx context.Context, membershipID uint64) (domain.User, error)
}
