package model

import (
	"time"

	"github.com/google/uuid"
)

// Roles, lowest rank first. Access checks compare ranks through RoleRank —
// declared once here, never re-declared per handler.
const (
	RoleStaff   = "staff"
	RoleManager = "manager"
	RoleAdmin   = "admin"
)

var roleRanks = map[string]int{
	RoleStaff:   1,
	RoleManager: 2,
	RoleAdmin:   3,
}

// RoleRank returns the ordinal rank of a role; 0 for an unknown role.
func RoleRank(role string) int { return roleRanks[role] }

// User stores system users with role-based access.
type User struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	Name         string    `json:"name"`
	Email        string    `json:"email,omitempty"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"` // "staff" | "manager" | "admin"
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
