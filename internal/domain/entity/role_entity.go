package entity

// Role represents an authorization role.
// Every account has exactly one; new registrations get RoleUser.
type Role string

const (
	RoleUser  Role = "user"
	RoleAgent Role = "agent"
)

func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAgent
}
