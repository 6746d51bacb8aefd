package domain

import (
	"strings"

	"github.com/google/uuid"
)

type Role string

const (
	RoleEmployee Role = "EMPLOYEE"
	RoleManager  Role = "MANAGER"
)

// ParseRole normalizes a stored role. Unknown values map to EMPLOYEE, the
// least privileged role.
func ParseRole(v string) Role {
	switch Role(strings.ToUpper(strings.TrimSpace(v))) {
	case RoleManager:
		return RoleManager
	default:
		return RoleEmployee
	}
}

// Principal is the caller of one request. Role is read from the user store on
// every request and never taken from the token.
type Principal struct {
	ID    uuid.UUID
	Email string
	Role  Role
}

func (p Principal) IsManager() bool {
	return p.Role == RoleManager
}
