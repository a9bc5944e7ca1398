package repository

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/samandr77/stroika/internal/entity"
)

const selectUser = `SELECT
		id, name, email, avatar_url, presence, role_id, position,
		is_owner, is_active, password_hash, created_at, updated_at
	FROM users`

func scanUser(row pgx.Row) (entity.User, error) {
	var u entity.User

	err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.AvatarURL,
		&u.Presence,
		&u.RoleID,
		&u.Position,
		&u.IsOwner,
		&u.IsActive,
		&u.PasswordHash,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.User{}, entity.ErrNotFound
		}

		return entity.User{}, err
	}

	return u, nil
}

func (r *Repository) CreateUser(ctx context.Context, u entity.User) error {
	sqlQuery := `
		INSERT INTO users
			(id, name, email, avatar_url, presence, role_id, position,
			is_owner, is_active, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := r.db.Exec(ctx, sqlQuery,
		u.ID, u.Name, u.Email, u.AvatarURL, u.Presence, u.RoleID, u.Position,
		u.IsOwner, u.IsActive, u.PasswordHash, u.CreatedAt, u.UpdatedAt,
	)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return entity.ErrDuplicateEmail
	}

	return err
}

func (r *Repository) UserByID(ctx context.Context, id uuid.UUID) (entity.User, error) {
	return scanUser(r.db.QueryRow(ctx, selectUser+` WHERE id = $1`, id))
}

func (r *Repository) UserByEmail(ctx context.Context, email string) (entity.User, error) {
	return scanUser(r.db.QueryRow(ctx, selectUser+` WHERE email = $1`, email))
}

func (r *Repository) Users(ctx context.Context) ([]entity.User, error) {
	rows, err := r.db.Query(ctx, selectUser+` ORDER BY name`)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var users []entity.User

	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}

		users = append(users, u)
	}

	return users, rows.Err()
}

func (r *Repository) SetUserActive(ctx context.Context, id uuid.UUID, isActive bool) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE users SET is_active = $1, updated_at = now() WHERE id = $2`, isActive, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *Repository) SetUserPresence(ctx context.Context, id uuid.UUID, presence entity.UserPresence) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE users SET presence = $1, updated_at = now() WHERE id = $2`, presence, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

// UserDependencyCount counts records that still reference the user:
// assigned or authored tasks, led projects and uploaded attachments.
// Hard delete is refused while it is non-zero.
func (r *Repository) UserDependencyCount(ctx context.Context, id uuid.UUID) (int, error) {
	sqlQuery := `
		SELECT
			(SELECT count(*) FROM tasks WHERE assignee_id = $1 OR created_by = $1) +
			(SELECT count(*) FROM projects WHERE lead_id = $1) +
			(SELECT count(*) FROM attachments WHERE uploaded_by = $1)`

	var count int

	err := r.db.QueryRow(ctx, sqlQuery, id).Scan(&count)
	if err != nil {
		return 0, err
	}

	return count, nil
}

func (r *Repository) DeleteUser(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}
