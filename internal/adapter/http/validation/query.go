package validation

import (
	"errors"
	"strconv"
	"strings"

	"taskboard/internal/core/domain"
)

var (
	ErrInvalidID    = errors.New("invalid id")
	ErrInvalidQuery = errors.New("invalid query parameter")
)

func ParseID(value string) (uint64, error) {
	id, err := strconv.ParseUint(value, 10, 64)
	if err != nil || id == 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}

func ParseProjectFilter(title string) domain.ProjectFilter {
	return domain.ProjectFilter{Title: strings.TrimSpace(title)}
}

func ParseTaskFilter(status, assignedTo string) (domain.TaskFilter, error) {
	var filter domain.TaskFilter
	if status != "" {
		value := domain.TaskStatus(status)
		if !value.Valid() {
			return domain.TaskFilter{}, ErrInvalidQuery
		}
		filter.Status = &value
	}
	if assignedTo != "" {
		id, err := ParseID(assignedTo)
		if err != nil {
			return domain.TaskFilter{}, ErrInvalidQuery
		}
		filter.AssignedTo = &id
	}
	return filter, nil
}

func ParseMembershipFilter(role, userID string) (domain.MembershipFilter, error) {
	var filter domain.MembershipFilter
	if role != "" {
		value := domain.Role(role)
		if !value.Valid() {
			return domain.MembershipFilter{}, ErrInvalidQuery
		}
		filter.Role = &value
	}
	if userID != "" {
		id, err := ParseID(userID)
		if err != nil {
			return domain.MembershipFilter{}, ErrInvalidQuery
		}
		filter.UserID = &id
	}
	return filter, nil
}
