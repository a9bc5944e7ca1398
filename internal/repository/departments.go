package repository

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/samandr77/stroika/internal/entity"
)

func (r *Repository) Departments(ctx context.Context) ([]entity.Department, error) {
	sqlQuery := `
		SELECT id, name, display_name, parent_id, level, created_at
		FROM departments
		ORDER BY level, name`

	rows, err := r.db.Query(ctx, sqlQuery)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var departments []entity.Department

	for rows.Next() {
		var d entity.Department

		err = rows.Scan(&d.ID, &d.Name, &d.DisplayName, &d.ParentID, &d.Level, &d.CreatedAt)
		if err != nil {
			return nil, err
		}

		departments = append(departments, d)
	}

	return departments, rows.Err()
}

func (r *Repository) CreateDepartment(ctx context.Context, d entity.Department) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO departments (id, name, display_name, parent_id, level, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		d.ID, d.Name, d.DisplayName, d.ParentID, d.Level, d.CreatedAt,
	)

	return err
}

// UserDepartments returns the user's assignments, active ones only
// when activeOnly is set.
func (r *Repository) UserDepartments(ctx context.Context, userID uuid.UUID, activeOnly bool) ([]entity.UserDepartment, error) {
	sqlQuery := `
		SELECT id, user_id, department_id, position_id, is_primary, start_date, end_date
		FROM user_departments
		WHERE user_id = $1`

	if activeOnly {
		sqlQuery += ` AND end_date IS NULL`
	}

	sqlQuery += ` ORDER BY start_date`

	rows, err := r.db.Query(ctx, sqlQuery, userID)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var assignments []entity.UserDepartment

	for rows.Next() {
		var a entity.UserDepartment

		err = rows.Scan(&a.ID, &a.UserID, &a.DepartmentID, &a.PositionID,
			&a.IsPrimary, &a.StartDate, &a.EndDate)
		if err != nil {
			return nil, err
		}

		assignments = append(assignments, a)
	}

	return assignments, rows.Err()
}

// HasActivePrimaryAssignment guards the single-active-primary
// invariant before inserting a new primary assignment.
func (r *Repository) HasActivePrimaryAssignment(ctx context.Context, userID uuid.UUID) (bool, error) {
	var exists bool

	err := r.db.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM user_departments
			WHERE user_id = $1 AND is_primary AND end_date IS NULL
		)`, userID).Scan(&exists)
	if err != nil {
		return false, err
	}

	return exists, nil
}

func (r *Repository) CreateUserDepartment(ctx context.Context, a entity.UserDepartment) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO user_departments
			(id, user_id, department_id, position_id, is_primary, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		a.ID, a.UserID, a.DepartmentID, a.PositionID, a.IsPrimary, a.StartDate, a.EndDate,
	)

	return err
}

func (r *Repository) EndUserDepartments(ctx context.Context, userID uuid.UUID) error {
	_, err := r.db.Exec(ctx, `
		UPDATE user_departments
		SET end_date = now()
		WHERE user_id = $1 AND end_date IS NULL`, userID)

	return err
}

// ClearEndedPrimaryFlags drops the primary flag on assignments whose
// end date has passed. Run periodically as data hygiene.
func (r *Repository) ClearEndedPrimaryFlags(ctx context.Context) (int64, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE user_departments
		SET is_primary = FALSE
		WHERE is_primary AND end_date IS NOT NULL AND end_date < now()`)
	if err != nil {
		return 0, err
	}

	return tag.RowsAffected(), nil
}
