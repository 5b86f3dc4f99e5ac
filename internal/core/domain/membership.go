package domain

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

type Membership struct {
	ID        uint64
	ProjectID uint64
	UserID    uint64
	Role      Role
}

type AssignUserInput struct {
	UserID uint64
	Role   Role
}

type MembershipFilter struct {
	UserID *uint64
	Role   *Role
}
