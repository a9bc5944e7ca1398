package repository

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	"github.com/samandr77/stroika/internal/entity"
)

// Roles returns all roles with derived member counts.
func (r *Repository) Roles(ctx context.Context) ([]entity.Role, error) {
	sqlQuery := `
		SELECT r.id, r.name, r.display_name, r.description, r.created_at,
			count(u.id) AS member_count
		FROM roles r
		LEFT JOIN users u ON u.role_id = r.id AND u.is_active
		GROUP BY r.id
		ORDER BY r.name`

	rows, err := r.db.Query(ctx, sqlQuery)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var roles []entity.Role

	for rows.Next() {
		var role entity.Role

		err = rows.Scan(
			&role.ID,
			&role.Name,
			&role.DisplayName,
			&role.Description,
			&role.CreatedAt,
			&role.MemberCount,
		)
		if err != nil {
			return nil, err
		}

		roles = append(roles, role)
	}

	return roles, rows.Err()
}

func (r *Repository) RoleByID(ctx context.Context, id uuid.UUID) (entity.Role, error) {
	sqlQuery := `
		SELECT id, name, display_name, description, created_at
		FROM roles
		WHERE id = $1`

	var role entity.Role

	err := r.db.QueryRow(ctx, sqlQuery, id).Scan(
		&role.ID,
		&role.Name,
		&role.DisplayName,
		&role.Description,
		&role.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Role{}, entity.ErrNotFound
		}

		return entity.Role{}, err
	}

	return role, nil
}

// PermissionsByRole joins through role_permissions to collect the full
// set of grants for a role.
func (r *Repository) PermissionsByRole(ctx context.Context, roleID uuid.UUID) ([]entity.Permission, error) {
	sqlQuery := `
		SELECT p.id, p.resource, p.action, p.description
		FROM permissions p
		JOIN role_permissions rp ON rp.permission_id = p.id
		WHERE rp.role_id = $1
		ORDER BY p.resource, p.action`

	rows, err := r.db.Query(ctx, sqlQuery, roleID)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var permissions []entity.Permission

	for rows.Next() {
		var p entity.Permission

		err = rows.Scan(&p.ID, &p.Resource, &p.Action, &p.Description)
		if err != nil {
			return nil, err
		}

		permissions = append(permissions, p)
	}

	return permissions, rows.Err()
}

func (r *Repository) GrantPermission(ctx context.Context, roleID, permissionID uuid.UUID) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO role_permissions (role_id, permission_id, granted_at)
		VALUES ($1, $2, now())
		ON CONFLICT DO NOTHING`, roleID, permissionID)

	return err
}

func (r *Repository) RevokePermission(ctx context.Context, roleID, permissionID uuid.UUID) error {
	_, err := r.db.Exec(ctx,
		`DELETE FROM role_permissions WHERE role_id = $1 AND permission_id = $2`,
		roleID, permissionID)

	return err
}
