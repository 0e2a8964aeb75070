package domain

import (
	"fmt"
	"slices"
	"strings"
)

// Role represents a user role within a tenant
type Role string

const (
	// RoleAdmin can see every note of the tenant, manage users and change the plan
	RoleAdmin Role = "admin"

	// RoleMember can only work with the notes they created
	RoleMember Role = "member"
)

// ValidRoles contains all valid roles in the system
var ValidRoles = []Role{RoleAdmin, RoleMember}

// IsValidRole checks if a given role is valid
func IsValidRole(role string) bool {
	return slices.Contains(ValidRoles, Role(role))
}

// ParseRole converts a raw string into a Role. An empty string yields RoleMember.
func ParseRole(raw string) (Role, error) {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "" {
		return RoleMember, nil
	}
	if !IsValidRole(raw) {
		return "", fmt.Errorf("invalid role %q", raw)
	}
	return Role(raw), nil
}

func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

func (r Role) String() string {
	return string(r)
}
