package repository

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	"github.com/samandr77/stroika/internal/entity"
)

func (r *Repository) CreateDocument(ctx context.Context, d entity.Document) error {
	sqlQuery := `
		INSERT INTO documents (id, title, content, project_id, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.Exec(ctx, sqlQuery,
		d.ID, d.Title, d.Content, d.ProjectID, d.CreatedBy, d.CreatedAt, d.UpdatedAt)

	return err
}

func (r *Repository) DocumentByID(ctx context.Context, id uuid.UUID) (entity.Document, error) {
	sqlQuery := `
		SELECT id, title, content, project_id, created_by, created_at, updated_at
		FROM documents
		WHERE id = $1`

	var d entity.Document

	err := r.db.QueryRow(ctx, sqlQuery, id).Scan(
		&d.ID, &d.Title, &d.Content, &d.ProjectID, &d.CreatedBy, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Document{}, entity.ErrNotFound
		}

		return entity.Document{}, err
	}

	return d, nil
}

func (r *Repository) CreateComment(ctx context.Context, c entity.DocumentComment) error {
	sqlQuery := `
		INSERT INTO document_comments (id, document_id, parent_comment_id, author_id, body, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.Exec(ctx, sqlQuery,
		c.ID, c.DocumentID, c.ParentCommentID, c.AuthorID, c.Body, c.CreatedAt)

	return err
}

func (r *Repository) CommentsByDocument(ctx context.Context, documentID uuid.UUID) ([]entity.DocumentComment, error) {
	sqlQuery := `
		SELECT id, document_id, parent_comment_id, author_id, body, created_at
		FROM document_comments
		WHERE document_id = $1
		ORDER BY created_at`

	rows, err := r.db.Query(ctx, sqlQuery, documentID)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var comments []entity.DocumentComment

	for rows.Next() {
		var c entity.DocumentComment

		err = rows.Scan(&c.ID, &c.DocumentID, &c.ParentCommentID, &c.AuthorID, &c.Body, &c.CreatedAt)
		if err != nil {
			return nil, err
		}

		comments = append(comments, c)
	}

	return comments, rows.Err()
}

// DeleteCommentCascade removes the comment, its whole reply subtree
// and every mention record hanging off any of them in one statement.
func (r *Repository) DeleteCommentCascade(ctx context.Context, commentID uuid.UUID) error {
	sqlQuery := `
		WITH RECURSIVE thread AS (
			SELECT id FROM document_comments WHERE id = $1
			UNION ALL
			SELECT c.id
			FROM document_comments c
			JOIN thread ON c.parent_comment_id = thread.id
		),
		deleted_mentions AS (
			DELETE FROM document_mentions WHERE comment_id IN (SELECT id FROM thread)
		)
		DELETE FROM document_comments WHERE id IN (SELECT id FROM thread)`

	tag, err := r.db.Exec(ctx, sqlQuery, commentID)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *Repository) CreateMention(ctx context.Context, m entity.DocumentMention) error {
	sqlQuery := `
		INSERT INTO document_mentions (id, comment_id, mentioned_user_id, is_read, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.Exec(ctx, sqlQuery,
		m.ID, m.CommentID, m.MentionedUserID, m.IsRead, m.CreatedAt)

	return err
}

func (r *Repository) UnreadMentions(ctx context.Context, userID uuid.UUID) ([]entity.DocumentMention, error) {
	sqlQuery := `
		SELECT id, comment_id, mentioned_user_id, is_read, created_at
		FROM document_mentions
		WHERE mentioned_user_id = $1 AND NOT is_read
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, sqlQuery, userID)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var mentions []entity.DocumentMention

	for rows.Next() {
		var m entity.DocumentMention

		err = rows.Scan(&m.ID, &m.CommentID, &m.MentionedUserID, &m.IsRead, &m.CreatedAt)
		if err != nil {
			return nil, err
		}

		mentions = append(mentions, m)
	}

	return mentions, rows.Err()
}

func (r *Repository) MentionsByComment(ctx context.Context, commentID uuid.UUID) ([]entity.DocumentMention, error) {
	sqlQuery := `
		SELECT id, comment_id, mentioned_user_id, is_read, created_at
		FROM document_mentions
		WHERE comment_id = $1`

	rows, err := r.db.Query(ctx, sqlQuery, commentID)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var mentions []entity.DocumentMention

	for rows.Next() {
		var m entity.DocumentMention

		err = rows.Scan(&m.ID, &m.CommentID, &m.MentionedUserID, &m.IsRead, &m.CreatedAt)
		if err != nil {
			return nil, err
		}

		mentions = append(mentions, m)
	}

	return mentions, rows.Err()
}

func (r *Repository) MarkMentionRead(ctx context.Context, mentionID uuid.UUID) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE document_mentions SET is_read = TRUE WHERE id = $1`, mentionID)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *Repository) LinkTask(ctx context.Context, link entity.DocumentTask) error {
	sqlQuery := `
		INSERT INTO document_tasks (document_id, task_id, relation, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (document_id, task_id) DO UPDATE SET relation = EXCLUDED.relation`

	_, err := r.db.Exec(ctx, sqlQuery, link.DocumentID, link.TaskID, link.Relation, link.CreatedAt)

	return err
}

func (r *Repository) DocumentTasks(ctx context.Context, documentID uuid.UUID) ([]entity.DocumentTask, error) {
	sqlQuery := `
		SELECT document_id, task_id, relation, created_at
		FROM document_tasks
		WHERE document_id = $1
		ORDER BY created_at`

	rows, err := r.db.Query(ctx, sqlQuery, documentID)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var links []entity.DocumentTask

	for rows.Next() {
		var l entity.DocumentTask

		err = rows.Scan(&l.DocumentID, &l.TaskID, &l.Relation, &l.CreatedAt)
		if err != nil {
			return nil, err
		}

		links = append(links, l)
	}

	return links, rows.Err()
}
