package service

import (
	"context"

	"taskboard/internal/core/domain"
	"taskboard/internal/core/policy"
	"taskboard/internal/core/ports"
)

type MembershipService struct {
	membershipRepository ports.MembershipRepository
	userRepository       ports.UserRepository
}

func NewMembershipService(membershipRepository ports.MembershipRepository, userRepository ports.UserRepository) *MembershipService {
	return &MembershipService{
		membershipRepository: membershipRepository,
		userRepository:       userRepository,
	}
}

// AssignUser adds a member to projectID. Only admins of the project may do
// so, and the project id always comes from the caller, never the payload.
func (s *MembershipService) AssignUser(ctx context.Context, callerID, projectID uint64, input domain.AssignUserInput) (domain.Membership, error) {
	role, err := policy.ResolveRole(ctx, s.membershipRepository, projectID, callerID)
	if err != nil {
		return domain.Membership{}, err
	}
	if err := policy.AuthorizeAssignment(role); err != nil {
		return domain.Membership{}, err
	}

	newRole := input.Role
	if newRole == "" {
		newRole = domain.RoleUser
	}

	return s.membershipRepository.CreateMembership(ctx, domain.Membership{
		ProjectID: projectID,
		UserID:    input.UserID,
		Role:      newRole,
	})
}

func (s *MembershipService) ListMemberships(ctx context.Context, projectID uint64, filter domain.MembershipFilter) ([]domain.Membership, error) {
	return s.membershipRepository.ListMemberships(ctx, projectID, filter)
}

func (s *MembershipService) UpdateMembershipsRole(ctx context.Context, projectID uint64, filter domain.MembershipFilter, role domain.Role) (int64, error) {
	return s.membershipRepository.UpdateMembershipsRole(ctx, projectID, filter, role)
}

func (s *MembershipService) DeleteMemberships(ctx context.Context, projectID uint64, filter domain.MembershipFilter) (int64, error) {
	return s.membershipRepository.DeleteMemberships(ctx, projectID, filter)
}

func (s *MembershipService) GetMembershipUser(ctx context.Context, membershipID uint64) (domain.User, error) {
	membership, err := s.membershipRepository.GetMembershipByID(ctx, membershipID)
	if err != nil {
		return domain.User{}, err
	}
	return s.userRepository.GetUserByID(ctx, membership.UserID)
}

var _ ports.MembershipService = (*MembershipService)(nil)
