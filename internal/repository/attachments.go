package repository

import (
	"context"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	"github.com/samandr77/stroika/internal/entity"
)

func (r *Repository) CreateAttachment(ctx context.Context, a entity.Attachment) error {
	sqlQuery := `
		INSERT INTO attachments
			(id, issue_id, file_name, file_size, mime_type, storage_ref, uploaded_by, uploaded_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.Exec(ctx, sqlQuery,
		a.ID, a.IssueID, a.FileName, a.FileSize, a.MimeType, a.StorageRef,
		a.UploadedBy, a.UploadedAt,
	)

	return err
}

func (r *Repository) AttachmentByID(ctx context.Context, id uuid.UUID) (entity.Attachment, error) {
	sqlQuery := `
		SELECT id, issue_id, file_name, file_size, mime_type, storage_ref, uploaded_by, uploaded_at
		FROM attachments
		WHERE id = $1`

	var a entity.Attachment

	err := r.db.QueryRow(ctx, sqlQuery, id).Scan(
		&a.ID, &a.IssueID, &a.FileName, &a.FileSize, &a.MimeType,
		&a.StorageRef, &a.UploadedBy, &a.UploadedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Attachment{}, entity.ErrNotFound
		}

		return entity.Attachment{}, err
	}

	return a, nil
}

// Attachments pages the catalog by keyset: strictly older than the
// cursor, newest first. Issue, uploader and owning project are
// embedded best-effort via left joins; a dangling reference leaves the
// embed nil.
func (r *Repository) Attachments(ctx context.Context, filter entity.AttachmentFilter) ([]entity.AttachmentWithRelations, error) {
	stmt := sq.Select(
		"a.id", "a.issue_id", "a.file_name", "a.file_size", "a.mime_type",
		"a.storage_ref", "a.uploaded_by", "a.uploaded_at",
		"t.id", "t.identifier", "t.title", "t.is_construction",
		"u.id", "u.name", "u.email", "u.avatar_url",
		"p.id", "p.name", "p.client",
	).
		From("attachments a").
		LeftJoin("tasks t ON t.id = a.issue_id").
		LeftJoin("users u ON u.id = a.uploaded_by").
		LeftJoin("projects p ON p.id = t.project_id").
		OrderBy("a.uploaded_at DESC").
		Limit(filter.Limit).
		PlaceholderFormat(sq.Dollar)

	stmt = applyAttachmentFilter(stmt, filter)

	sqlQuery, args, err := stmt.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	items := make([]entity.AttachmentWithRelations, 0, filter.Limit)

	for rows.Next() {
		var (
			item entity.AttachmentWithRelations

			issueID        *uuid.UUID
			issueIdent     *string
			issueTitle     *string
			issueIsConstr  *bool
			uploaderID     *uuid.UUID
			uploaderName   *string
			uploaderEmail  *string
			uploaderAvatar *string
			projectID      *uuid.UUID
			projectName    *string
			projectClient  *string
		)

		err = rows.Scan(
			&item.ID, &item.IssueID, &item.FileName, &item.FileSize, &item.MimeType,
			&item.StorageRef, &item.UploadedBy, &item.UploadedAt,
			&issueID, &issueIdent, &issueTitle, &issueIsConstr,
			&uploaderID, &uploaderName, &uploaderEmail, &uploaderAvatar,
			&projectID, &projectName, &projectClient,
		)
		if err != nil {
			return nil, err
		}

		if issueID != nil {
			item.Issue = &entity.Task{
				ID:             *issueID,
				Identifier:     *issueIdent,
				Title:          *issueTitle,
				IsConstruction: *issueIsConstr,
			}
		}

		if uploaderID != nil {
			item.Uploader = &entity.User{
				ID:        *uploaderID,
				Name:      *uploaderName,
				Email:     *uploaderEmail,
				AvatarURL: uploaderAvatar,
			}
		}

		if projectID != nil {
			item.Project = &entity.ConstructionProject{
				ID:     *projectID,
				Name:   *projectName,
				Client: *projectClient,
			}
		}

		items = append(items, item)
	}

	return items, rows.Err()
}

func applyAttachmentFilter(stmt sq.SelectBuilder, filter entity.AttachmentFilter) sq.SelectBuilder {
	if filter.Cursor != nil {
		stmt = stmt.Where(sq.Lt{"a.uploaded_at": *filter.Cursor})
	}

	if filter.Search != "" {
		stmt = stmt.Where(sq.ILike{"a.file_name": "%" + filter.Search + "%"})
	}

	if filter.UploaderID != nil {
		stmt = stmt.Where(sq.Eq{"a.uploaded_by": *filter.UploaderID})
	}

	if filter.IssueID != nil {
		stmt = stmt.Where(sq.Eq{"a.issue_id": *filter.IssueID})
	}

	if filter.ProjectID != nil {
		stmt = stmt.Where(sq.Eq{"t.project_id": *filter.ProjectID})
	}

	if filter.StartDate != nil {
		stmt = stmt.Where(sq.GtOrEq{"a.uploaded_at": *filter.StartDate})
	}

	if filter.EndDate != nil {
		stmt = stmt.Where(sq.LtOrEq{"a.uploaded_at": *filter.EndDate})
	}

	return stmt
}

// MimeCounts groups attachment counts by raw mime type; bucketing into
// the coarse catalog types happens in entity.BucketForMime so the
// mapping lives in one place.
func (r *Repository) MimeCounts(ctx context.Context) (map[string]int, error) {
	rows, err := r.db.Query(ctx,
		`SELECT mime_type, count(*) FROM attachments GROUP BY mime_type`)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	counts := make(map[string]int)

	for rows.Next() {
		var (
			mimeType string
			count    int
		)

		err = rows.Scan(&mimeType, &count)
		if err != nil {
			return nil, err
		}

		counts[mimeType] = count
	}

	return counts, rows.Err()
}

func (r *Repository) AttachmentTotals(ctx context.Context, since time.Time) (total int, totalSize int64, recent int, err error) {
	sqlQuery := `
		SELECT count(*),
			coalesce(sum(file_size), 0),
			count(*) FILTER (WHERE uploaded_at >= $1)
		FROM attachments`

	err = r.db.QueryRow(ctx, sqlQuery, since).Scan(&total, &totalSize, &recent)
	if err != nil {
		return 0, 0, 0, err
	}

	return total, totalSize, recent, nil
}

func (r *Repository) DeleteAttachment(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM attachments WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}
