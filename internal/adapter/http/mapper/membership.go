package mapper

import (
	"taskboard/internal/adapter/http/dto"
	"taskboard/internal/core/domain"
)

func ToMembershipItems(memberships []domain.Membership) []dto.MembershipItem {
	items := make([]dto.MembershipItem, 0, len(memberships))
	for _, membership := range memberships {
		items = append(items, ToMembershipItem(membership))
	}
	return items
}

func ToMembershipItem(membership domain.Membership) dto.MembershipItem {
	return dto.MembershipItem{
		ID:        membership.ID,
		ProjectID: membership.ProjectID,
		UserID:    membership.UserID,
		Role:      string(membership.Role),
	}
}
