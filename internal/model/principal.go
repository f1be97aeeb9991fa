package model

import "github.com/google/uuid"

type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleManager Role = "MANAGER"
	RoleClerk   Role = "CLERK"
)

type Principal struct {
	UserID uuid.UUID
	Role   Role
}

func (p Principal) IsAdmin() bool   { return p.Role == RoleAdmin }
func (p Principal) IsManager() bool { return p.Role == RoleManager }
func (p Principal) IsClerk() bool   { return p.Role == RoleClerk }

// CanSettle reports whether the principal may create, validate or cancel
// bulletins. Clerks only record weighings.
func (p Principal) CanSettle() bool {
	return p.Role == RoleAdmin || p.Role == RoleManager
}
