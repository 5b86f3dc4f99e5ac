package validation

import (
	"taskboard/internal/adapter/http/dto"
	"taskboard/internal/core/domain"
)

// BuildAssignUserInput decodes a membership assignment. A missing or null
// role is left empty for the service to default.
func BuildAssignUserInput(body []byte) (domain.AssignUserInput, error) {
	var req dto.AssignUserRequest
	if _, err := Decode(SchemaMembershipAssign, body, &req); err != nil {
		return domain.AssignUserInput{}, err
	}

	input := domain.AssignUserInput{UserID: req.UserID}
	if req.Role != nil {
		input.Role = domain.Role(*req.Role)
	}
	return input, nil
}

func BuildMembershipRole(body []byte) (domain.Role, error) {
	var req dto.MembershipRoleRequest
	if _, err := Decode(SchemaMembershipRole, body, &req); err != nil {
		return "", err
	}
	return domain.Role(req.Role), nil
}
