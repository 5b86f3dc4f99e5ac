package dto

type MembershipItem struct {
	ID        uint64 `json:"id"`
	ProjectID uint64 `json:"project_id"`
	UserID    uint64 `json:"user_id"`
	Role      string `json:"role"`
}

type AssignUserRequest struct {
	UserID uint64  `json:"user_id"`
	Role   *string `json:"role"`
}

type MembershipRoleRequest struct {
	Role string `json:"role"`
}
