package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

type Role struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	DisplayName string    `json:"display_name"`
	Description string    `json:"description"`
	MemberCount int       `json:"member_count"`
	CreatedAt   time.Time `json:"created_at"`
}

const (
	RoleOwner          = "owner"
	RoleCEO            = "ceo"
	RoleChiefEngineer  = "chief_engineer"
	RoleDepartmentHead = "department_head"
	RoleProjectManager = "project_manager"
	RoleEngineer       = "engineer"
	RoleObserver       = "observer"
)

// RoleOrder is the fixed seniority order, highest first. The hierarchy
// is encoded by position in this list, not by a numeric level column.
var RoleOrder = []string{
	RoleOwner,
	RoleCEO,
	RoleChiefEngineer,
	RoleDepartmentHead,
	RoleProjectManager,
	RoleEngineer,
	RoleObserver,
}

// RoleRank returns the position of a role in the seniority order,
// lower is more senior. Unknown roles rank below everything.
func RoleRank(roleName string) int {
	for i, name := range RoleOrder {
		if name == roleName {
			return i
		}
	}

	return len(RoleOrder)
}

type Permission struct {
	ID          uuid.UUID `json:"id"`
	Resource    string    `json:"resource"`
	Action      string    `json:"action"`
	Description string    `json:"description"`
}

// String renders the wire format of a grant, always "<resource>:<action>".
func (p Permission) String() string {
	return p.Resource + ":" + p.Action
}

type RolePermission struct {
	RoleID       uuid.UUID `json:"role_id"`
	PermissionID uuid.UUID `json:"permission_id"`
	GrantedAt    time.Time `json:"granted_at"`
}
