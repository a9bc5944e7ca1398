package service

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"
	"github.com/samandr77/stroika/internal/access"
	"github.com/samandr77/stroika/internal/entity"
)

// CurrentPermissions aggregates the caller's role grants into a ready
// permission snapshot. Failures come back as a failed snapshot so the
// caller keeps the deny-by-default behavior.
func (s *Service) CurrentPermissions(ctx context.Context) (access.Snapshot, error) {
	user, err := entity.UserFromContext(ctx)
	if err != nil {
		return access.NewFailedSnapshot(err), err
	}

	permissions, err := s.repo.PermissionsByRole(ctx, user.RoleID)
	if err != nil {
		err = fmt.Errorf("permissions by role: %w", err)
		return access.NewFailedSnapshot(err), err
	}

	grants := make([]string, 0, len(permissions))
	for _, p := range permissions {
		grants = append(grants, p.String())
	}

	return access.NewSnapshot(access.NewPermissionSet(user.IsOwner, grants)), nil
}

// ProjectAccess resolves the three per-project operations for the
// caller. Each is computed independently; a partial failure leaves the
// unresolved checks nil rather than guessing.
func (s *Service) ProjectAccess(ctx context.Context, projectID uuid.UUID) (access.ProjectAccess, error) {
	user, err := entity.UserFromContext(ctx)
	if err != nil {
		return access.ProjectAccess{}, err
	}

	project, err := s.repo.ProjectByID(ctx, projectID)
	if err != nil {
		return access.ProjectAccess{}, fmt.Errorf("project by id: %w", err)
	}

	var result access.ProjectAccess

	if user.IsOwner {
		result.View = access.Bool(true)
		result.Edit = access.Bool(true)
		result.Admin = access.Bool(true)

		return result, nil
	}

	snapshot, err := s.CurrentPermissions(ctx)
	if err != nil {
		return access.ProjectAccess{}, err
	}

	member := project.HasMember(user.ID)

	result.View = access.Bool(member || snapshot.Has(access.ResourceProjects+":view"))
	result.Edit = access.Bool(member || snapshot.Has(access.ResourceProjects+":edit"))
	result.Admin = access.Bool(project.LeadID == user.ID ||
		snapshot.Has(access.ResourceProjects+":"+access.ActionManage))

	return result, nil
}

func (s *Service) RolePermissions(ctx context.Context, roleID uuid.UUID) ([]entity.Permission, error) {
	return s.repo.PermissionsByRole(ctx, roleID)
}

// GrantPermission attaches a grant to a role. Only role managers and
// the owner may change grants.
func (s *Service) GrantPermission(ctx context.Context, roleID, permissionID uuid.UUID) error {
	err := s.requirePermission(ctx, access.ResourceRoles+":"+access.ActionManage)
	if err != nil {
		return err
	}

	return s.repo.GrantPermission(ctx, roleID, permissionID)
}

func (s *Service) RevokePermission(ctx context.Context, roleID, permissionID uuid.UUID) error {
	err := s.requirePermission(ctx, access.ResourceRoles+":"+access.ActionManage)
	if err != nil {
		return err
	}

	return s.repo.RevokePermission(ctx, roleID, permissionID)
}

func (s *Service) requirePermission(ctx context.Context, permission string) error {
	snapshot, err := s.CurrentPermissions(ctx)
	if err != nil {
		return err
	}

	if !snapshot.Has(permission) {
		return fmt.Errorf("%w: %s", entity.ErrForbidden, permission)
	}

	return nil
}
