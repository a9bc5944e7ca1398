package repository

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	"github.com/samandr77/stroika/internal/entity"
)

const selectProject = `SELECT
		id, name, client, status_id, priority_id, lead_id, contract_value,
		start_date, end_date, health_id, health_name, health_color,
		health_description, team_member_ids, progress, is_archived,
		created_by, created_at, updated_at
	FROM projects`

func scanProject(row pgx.Row) (entity.ConstructionProject, error) {
	var p entity.ConstructionProject

	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Client,
		&p.StatusID,
		&p.PriorityID,
		&p.LeadID,
		&p.ContractValue,
		&p.StartDate,
		&p.EndDate,
		&p.Health.ID,
		&p.Health.Name,
		&p.Health.Color,
		&p.Health.Description,
		&p.TeamMemberIDs,
		&p.Progress,
		&p.IsArchived,
		&p.CreatedBy,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.ConstructionProject{}, entity.ErrNotFound
		}

		return entity.ConstructionProject{}, err
	}

	return p, nil
}

func (r *Repository) CreateProject(ctx context.Context, p entity.ConstructionProject) error {
	sqlQuery := `
		INSERT INTO projects
			(id, name, client, status_id, priority_id, lead_id, contract_value,
			start_date, end_date, health_id, health_name, health_color,
			health_description, team_member_ids, progress, is_archived,
			created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`

	_, err := r.db.Exec(ctx, sqlQuery,
		p.ID, p.Name, p.Client, p.StatusID, p.PriorityID, p.LeadID, p.ContractValue,
		p.StartDate, p.EndDate, p.Health.ID, p.Health.Name, p.Health.Color,
		p.Health.Description, p.TeamMemberIDs, p.Progress, p.IsArchived,
		p.CreatedBy, p.CreatedAt, p.UpdatedAt,
	)

	return err
}

func (r *Repository) ProjectByID(ctx context.Context, id uuid.UUID) (entity.ConstructionProject, error) {
	return scanProject(r.db.QueryRow(ctx, selectProject+` WHERE id = $1`, id))
}

func (r *Repository) Projects(ctx context.Context, includeArchived bool) ([]entity.ConstructionProject, error) {
	sqlQuery := selectProject

	if !includeArchived {
		sqlQuery += ` WHERE NOT is_archived`
	}

	sqlQuery += ` ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, sqlQuery)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var projects []entity.ConstructionProject

	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}

		projects = append(projects, p)
	}

	return projects, rows.Err()
}

func (r *Repository) UpdateProject(ctx context.Context, p entity.ConstructionProject) error {
	sqlQuery := `
		UPDATE projects
		SET name = $1, client = $2, status_id = $3, priority_id = $4,
			lead_id = $5, contract_value = $6, start_date = $7, end_date = $8,
			health_id = $9, health_name = $10, health_color = $11,
			health_description = $12, team_member_ids = $13, progress = $14,
			updated_at = now()
		WHERE id = $15`

	tag, err := r.db.Exec(ctx, sqlQuery,
		p.Name, p.Client, p.StatusID, p.PriorityID, p.LeadID, p.ContractValue,
		p.StartDate, p.EndDate, p.Health.ID, p.Health.Name, p.Health.Color,
		p.Health.Description, p.TeamMemberIDs, p.Progress, p.ID,
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

// ArchiveProject is the normal end of a project's lifecycle; rows are
// not hard-deleted.
func (r *Repository) ArchiveProject(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE projects SET is_archived = TRUE, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}
