package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/samandr77/stroika/internal/access"
	"github.com/samandr77/stroika/internal/entity"
)

func (s *Service) CreateDocument(ctx context.Context, title, content string, projectID *uuid.UUID) (entity.Document, error) {
	user, err := entity.UserFromContext(ctx)
	if err != nil {
		return entity.Document{}, err
	}

	err = s.requirePermission(ctx, access.ResourceDocuments+":create")
	if err != nil {
		return entity.Document{}, err
	}

	err = ValidateTitle(title)
	if err != nil {
		return entity.Document{}, err
	}

	now := time.Now()

	d := entity.Document{
		ID:        uuid.Must(uuid.NewV4()),
		Title:     title,
		Content:   content,
		ProjectID: projectID,
		CreatedBy: user.ID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = s.repo.CreateDocument(ctx, d)
	if err != nil {
		return entity.Document{}, fmt.Errorf("create document: %w", err)
	}

	return d, nil
}

func (s *Service) DocumentByID(ctx context.Context, id uuid.UUID) (entity.Document, error) {
	return s.repo.DocumentByID(ctx, id)
}

// AddComment creates the comment and one mention record per mentioned
// user. Mention events go to the broker for the notification pipeline.
func (s *Service) AddComment(
	ctx context.Context, documentID uuid.UUID, parentCommentID *uuid.UUID,
	body string, mentionedUserIDs []uuid.UUID,
) (entity.DocumentComment, error) {
	user, err := entity.UserFromContext(ctx)
	if err != nil {
		return entity.DocumentComment{}, err
	}

	if body == "" {
		return entity.DocumentComment{}, fmt.Errorf("%w: empty comment body", entity.ErrValidationFailed)
	}

	_, err = s.repo.DocumentByID(ctx, documentID)
	if err != nil {
		return entity.DocumentComment{}, fmt.Errorf("document lookup: %w", err)
	}

	// A reply must attach to a comment of the same document.
	if parentCommentID != nil {
		comments, err := s.repo.CommentsByDocument(ctx, documentID)
		if err != nil {
			return entity.DocumentComment{}, fmt.Errorf("list comments: %w", err)
		}

		parentFound := false

		for _, c := range comments {
			if c.ID == *parentCommentID {
				parentFound = true
				break
			}
		}

		if !parentFound {
			return entity.DocumentComment{}, fmt.Errorf("%w: parent comment %s", entity.ErrNotFound, *parentCommentID)
		}
	}

	comment := entity.DocumentComment{
		ID:              uuid.Must(uuid.NewV4()),
		DocumentID:      documentID,
		ParentCommentID: parentCommentID,
		AuthorID:        user.ID,
		Body:            body,
		CreatedAt:       time.Now(),
	}

	err = s.repo.CreateComment(ctx, comment)
	if err != nil {
		return entity.DocumentComment{}, fmt.Errorf("create comment: %w", err)
	}

	for _, mentionedID := range mentionedUserIDs {
		mention := entity.DocumentMention{
			ID:              uuid.Must(uuid.NewV4()),
			CommentID:       comment.ID,
			MentionedUserID: mentionedID,
			CreatedAt:       time.Now(),
		}

		err = s.repo.CreateMention(ctx, mention)
		if err != nil {
			// Best-effort: the comment stays, the missing mention is logged.
			slog.ErrorContext(ctx, "create mention", "error", err, "comment_id", comment.ID)
			continue
		}

		s.events.MentionCreated(ctx, mention)
	}

	return comment, nil
}

func (s *Service) CommentTree(ctx context.Context, documentID uuid.UUID) ([]*entity.CommentNode, error) {
	comments, err := s.repo.CommentsByDocument(ctx, documentID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}

	return entity.BuildCommentTree(comments), nil
}

// DeleteComment removes the comment with its whole reply subtree and
// all mention records of the thread.
func (s *Service) DeleteComment(ctx context.Context, commentID uuid.UUID) error {
	err := s.requirePermission(ctx, access.ResourceDocuments+":edit")
	if err != nil {
		return err
	}

	return s.repo.DeleteCommentCascade(ctx, commentID)
}

func (s *Service) UnreadMentions(ctx context.Context) ([]entity.DocumentMention, error) {
	user, err := entity.UserFromContext(ctx)
	if err != nil {
		return nil, err
	}

	return s.repo.UnreadMentions(ctx, user.ID)
}

func (s *Service) MarkMentionRead(ctx context.Context, mentionID uuid.UUID) error {
	return s.repo.MarkMentionRead(ctx, mentionID)
}

func (s *Service) LinkTaskToDocument(ctx context.Context, documentID, taskID uuid.UUID, relation entity.DocumentTaskRelation) error {
	if !relation.IsValid() {
		return fmt.Errorf("%w: relation %q", entity.ErrIncorrectRequestBody, relation)
	}

	_, err := s.repo.TaskByID(ctx, taskID)
	if err != nil {
		return fmt.Errorf("task lookup: %w", err)
	}

	return s.repo.LinkTask(ctx, entity.DocumentTask{
		DocumentID: documentID,
		TaskID:     taskID,
		Relation:   relation,
		CreatedAt:  time.Now(),
	})
}

func (s *Service) DocumentTasks(ctx context.Context, documentID uuid.UUID) ([]entity.DocumentTask, error) {
	return s.repo.DocumentTasks(ctx, documentID)
}
