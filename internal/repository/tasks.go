package repository

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	"github.com/samandr77/stroika/internal/entity"
)

var taskColumns = []string{
	"id",
	"identifier",
	"title",
	"description",
	"status_id",
	"priority_id",
	"assignee_id",
	"label_ids",
	"project_id",
	"parent_id",
	"due_date",
	"is_construction",
	"created_by",
	"created_at",
	"updated_at",
}

func scanTask(row pgx.Row) (entity.Task, error) {
	var t entity.Task

	err := row.Scan(
		&t.ID,
		&t.Identifier,
		&t.Title,
		&t.Description,
		&t.StatusID,
		&t.PriorityID,
		&t.AssigneeID,
		&t.LabelIDs,
		&t.ProjectID,
		&t.ParentID,
		&t.DueDate,
		&t.IsConstruction,
		&t.CreatedBy,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Task{}, entity.ErrNotFound
		}

		return entity.Task{}, err
	}

	return t, nil
}

func (r *Repository) CreateTask(ctx context.Context, t entity.Task) error {
	sqlQuery, args, err := sq.Insert("tasks").
		Columns(taskColumns...).
		Values(t.ID, t.Identifier, t.Title, t.Description, t.StatusID, t.PriorityID,
			t.AssigneeID, t.LabelIDs, t.ProjectID, t.ParentID, t.DueDate,
			t.IsConstruction, t.CreatedBy, t.CreatedAt, t.UpdatedAt).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sqlQuery, args...)

	return err
}

func (r *Repository) TaskByID(ctx context.Context, id uuid.UUID) (entity.Task, error) {
	sqlQuery, args, err := sq.Select(taskColumns...).
		From("tasks").
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return entity.Task{}, err
	}

	return scanTask(r.db.QueryRow(ctx, sqlQuery, args...))
}

// Tasks lists one task universe, optionally scoped to a project.
func (r *Repository) Tasks(ctx context.Context, isConstruction bool, projectID *uuid.UUID) ([]entity.Task, error) {
	stmt := sq.Select(taskColumns...).
		From("tasks").
		Where(sq.Eq{"is_construction": isConstruction}).
		OrderBy("created_at").
		PlaceholderFormat(sq.Dollar)

	if projectID != nil {
		stmt = stmt.Where(sq.Eq{"project_id": *projectID})
	}

	sqlQuery, args, err := stmt.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var tasks []entity.Task

	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}

		tasks = append(tasks, t)
	}

	return tasks, rows.Err()
}

// Identifiers returns every identifier already taken in a task
// universe. Used for collision checks at creation.
func (r *Repository) Identifiers(ctx context.Context, isConstruction bool) ([]string, error) {
	rows, err := r.db.Query(ctx,
		`SELECT identifier FROM tasks WHERE is_construction = $1`, isConstruction)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var identifiers []string

	for rows.Next() {
		var id string

		err = rows.Scan(&id)
		if err != nil {
			return nil, err
		}

		identifiers = append(identifiers, id)
	}

	return identifiers, rows.Err()
}

func (r *Repository) UpdateTask(ctx context.Context, t entity.Task) error {
	sqlQuery, args, err := sq.Update("tasks").
		Set("title", t.Title).
		Set("description", t.Description).
		Set("status_id", t.StatusID).
		Set("priority_id", t.PriorityID).
		Set("assignee_id", t.AssigneeID).
		Set("label_ids", t.LabelIDs).
		Set("project_id", t.ProjectID).
		Set("due_date", t.DueDate).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": t.ID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, sqlQuery, args...)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *Repository) SetTaskStatus(ctx context.Context, id, statusID uuid.UUID) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE tasks SET status_id = $1, updated_at = now() WHERE id = $2`, statusID, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *Repository) SetTaskAssignee(ctx context.Context, id uuid.UUID, assigneeID *uuid.UUID) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE tasks SET assignee_id = $1, updated_at = now() WHERE id = $2`, assigneeID, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

// ReleaseAssignee clears the user from every task they are assigned
// to. Used when a user is deactivated.
func (r *Repository) ReleaseAssignee(ctx context.Context, userID uuid.UUID) (int64, error) {
	tag, err := r.db.Exec(ctx,
		`UPDATE tasks SET assignee_id = NULL, updated_at = now() WHERE assignee_id = $1`, userID)
	if err != nil {
		return 0, err
	}

	return tag.RowsAffected(), nil
}

func (r *Repository) DeleteTask(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}
