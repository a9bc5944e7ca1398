// Package access evaluates resource:action permission grants for the
// current user within the organization.
package access

import "strings"

// ActionManage is reserved: a "<resource>:manage" grant implies every
// action on that resource.
const ActionManage = "manage"

const (
	ResourceProjects   = "constructionProjects"
	ResourceTasks      = "tasks"
	ResourceDocuments  = "documents"
	ResourceMembers    = "members"
	ResourceRoles      = "roles"
	ResourceDeparts    = "departments"
	ResourceAttachment = "attachments"
)

// resourceAliases maps legacy resource names kept during the schema
// migration onto their canonical form and back. Grants written under
// either name satisfy checks against the other.
var resourceAliases = map[string]string{
	"projects":       ResourceProjects,
	ResourceProjects: "projects",
}

// PermissionSet holds the granted resource:action strings plus the
// organization-owner flag for one user.
type PermissionSet struct {
	isOwner bool
	granted map[string]struct{}
}

func NewPermissionSet(isOwner bool, grants []string) PermissionSet {
	granted := make(map[string]struct{}, len(grants))
	for _, g := range grants {
		granted[g] = struct{}{}
	}

	return PermissionSet{
		isOwner: isOwner,
		granted: granted,
	}
}

func (s PermissionSet) IsOwner() bool {
	return s.isOwner
}

// Has decides grant/deny for a "<resource>:<action>" string. The
// owner is always granted. Otherwise the exact string, the resource's
// manage grant, and the alias resource's grants are checked in turn.
// Malformed strings simply fail to match.
func (s PermissionSet) Has(permission string) bool {
	if s.isOwner {
		return true
	}

	if s.hasExact(permission) {
		return true
	}

	resource, action, found := strings.Cut(permission, ":")
	if !found {
		return false
	}

	if s.hasExact(resource + ":" + ActionManage) {
		return true
	}

	alias, ok := resourceAliases[resource]
	if !ok {
		return false
	}

	return s.hasExact(alias+":"+action) || s.hasExact(alias+":"+ActionManage)
}

func (s PermissionSet) hasExact(permission string) bool {
	_, ok := s.granted[permission]
	return ok
}

// Can is sugar for Has(resource + ":" + action).
func (s PermissionSet) Can(resource, action string) bool {
	return s.Has(resource + ":" + action)
}

func (s PermissionSet) HasAny(permissions ...string) bool {
	for _, p := range permissions {
		if s.Has(p) {
			return true
		}
	}

	return false
}

func (s PermissionSet) HasAll(permissions ...string) bool {
	for _, p := range permissions {
		if !s.Has(p) {
			return false
		}
	}

	return true
}
