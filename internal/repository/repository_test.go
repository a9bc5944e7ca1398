package repository_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/samandr77/stroika/internal/entity"
	"github.com/samandr77/stroika/internal/repository"
	"github.com/samandr77/stroika/pkg/postgres"
)

func dbPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	pool, err := postgres.Connect(context.Background(), os.Getenv("TEST_POSTGRES_DSN"), 10)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	return pool
}

func TestRepository_TaskRoundTrip(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	repo := repository.New(dbPool(t))
	ctx := context.Background()

	now := time.Now().Truncate(time.Millisecond)
	assigneeID := uuid.Must(uuid.NewV4())
	dueDate := now.Add(72 * time.Hour)

	want := entity.Task{
		ID:             uuid.Must(uuid.NewV4()),
		Identifier:     "СТРФ-" + uuid.Must(uuid.NewV4()).String()[:8],
		Title:          "Заливка фундамента",
		Description:    "Захватка 1, ось А-Б",
		StatusID:       uuid.Must(uuid.NewV4()),
		PriorityID:     uuid.Must(uuid.NewV4()),
		AssigneeID:     &assigneeID,
		LabelIDs:       []uuid.UUID{uuid.Must(uuid.NewV4())},
		DueDate:        &dueDate,
		IsConstruction: true,
		CreatedBy:      uuid.Must(uuid.NewV4()),
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	err := repo.CreateTask(ctx, want)
	r.NoError(err)

	got, err := repo.TaskByID(ctx, want.ID)
	r.NoError(err)
	r.Equal(want, got)

	_, err = repo.TaskByID(ctx, uuid.Must(uuid.NewV4()))
	r.ErrorIs(err, entity.ErrNotFound)
}

func TestRepository_ReleaseAssignee(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	repo := repository.New(dbPool(t))
	ctx := context.Background()

	userID := uuid.Must(uuid.NewV4())

	for i := 0; i < 2; i++ {
		err := repo.CreateTask(ctx, entity.Task{
			ID:         uuid.Must(uuid.NewV4()),
			Identifier: fmt.Sprintf("СТРФ-90%d", i),
			Title:      "Задача",
			StatusID:   uuid.Must(uuid.NewV4()),
			PriorityID: uuid.Must(uuid.NewV4()),
			AssigneeID: &userID,
			CreatedBy:  userID,
			CreatedAt:  time.Now(),
			UpdatedAt:  time.Now(),
		})
		r.NoError(err)
	}

	released, err := repo.ReleaseAssignee(ctx, userID)
	r.NoError(err)
	r.EqualValues(2, released)

	released, err = repo.ReleaseAssignee(ctx, userID)
	r.NoError(err)
	r.Zero(released)
}

func TestRepository_AttachmentsKeysetPagination(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	repo := repository.New(dbPool(t))
	ctx := context.Background()

	// Scope the catalog to one uploader so concurrent tests stay out of
	// the page.
	uploaderID := uuid.Must(uuid.NewV4())
	base := time.Now().Truncate(time.Millisecond)

	for i := 0; i < 5; i++ {
		err := repo.CreateAttachment(ctx, entity.Attachment{
			ID:         uuid.Must(uuid.NewV4()),
			IssueID:    uuid.Must(uuid.NewV4()),
			FileName:   fmt.Sprintf("чертеж-%d.pdf", i),
			FileSize:   100,
			MimeType:   "application/pdf",
			StorageRef: uuid.Must(uuid.NewV4()).String(),
			UploadedBy: uploaderID,
			UploadedAt: base.Add(-time.Duration(i) * time.Minute),
		})
		r.NoError(err)
	}

	filter := entity.AttachmentFilter{
		Limit:      2,
		UploaderID: &uploaderID,
	}

	var seen []time.Time

	for {
		items, err := repo.Attachments(ctx, filter)
		r.NoError(err)

		if len(items) == 0 {
			break
		}

		for _, item := range items {
			seen = append(seen, item.UploadedAt)
		}

		last := items[len(items)-1].UploadedAt
		filter.Cursor = &last

		if uint64(len(items)) < filter.Limit {
			break
		}
	}

	r.Len(seen, 5)

	// Newest first, strictly decreasing across page boundaries.
	for i := 1; i < len(seen); i++ {
		r.True(seen[i].Before(seen[i-1]))
	}
}

func TestRepository_AttachmentsFilters(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	repo := repository.New(dbPool(t))
	ctx := context.Background()

	uploaderID := uuid.Must(uuid.NewV4())
	issueID := uuid.Must(uuid.NewV4())
	now := time.Now().Truncate(time.Millisecond)

	err := repo.CreateAttachment(ctx, entity.Attachment{
		ID:         uuid.Must(uuid.NewV4()),
		IssueID:    issueID,
		FileName:   "смета-итоговая.xlsx",
		FileSize:   2048,
		MimeType:   "application/vnd.ms-excel",
		StorageRef: uuid.Must(uuid.NewV4()).String(),
		UploadedBy: uploaderID,
		UploadedAt: now,
	})
	r.NoError(err)

	items, err := repo.Attachments(ctx, entity.AttachmentFilter{
		Limit:      10,
		UploaderID: &uploaderID,
		Search:     "ИТОГОВАЯ",
	})
	r.NoError(err)
	r.Len(items, 1)

	// No task row behind the issue id: the embeds stay nil.
	r.Nil(items[0].Issue)
	r.Nil(items[0].Uploader)
	r.Nil(items[0].Project)

	items, err = repo.Attachments(ctx, entity.AttachmentFilter{
		Limit:      10,
		UploaderID: &uploaderID,
		Search:     "другое",
	})
	r.NoError(err)
	r.Empty(items)

	items, err = repo.Attachments(ctx, entity.AttachmentFilter{
		Limit:   10,
		IssueID: &issueID,
	})
	r.NoError(err)
	r.Len(items, 1)
}

func TestRepository_DeleteCommentCascade(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	repo := repository.New(dbPool(t))
	ctx := context.Background()

	authorID := uuid.Must(uuid.NewV4())
	now := time.Now().Truncate(time.Millisecond)

	document := entity.Document{
		ID:        uuid.Must(uuid.NewV4()),
		Title:     "Протокол совещания",
		CreatedBy: authorID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.NoError(repo.CreateDocument(ctx, document))

	root := entity.DocumentComment{
		ID:         uuid.Must(uuid.NewV4()),
		DocumentID: document.ID,
		AuthorID:   authorID,
		Body:       "корневой",
		CreatedAt:  now,
	}
	reply := entity.DocumentComment{
		ID:              uuid.Must(uuid.NewV4()),
		DocumentID:      document.ID,
		ParentCommentID: &root.ID,
		AuthorID:        authorID,
		Body:            "ответ",
		CreatedAt:       now.Add(time.Second),
	}
	nested := entity.DocumentComment{
		ID:              uuid.Must(uuid.NewV4()),
		DocumentID:      document.ID,
		ParentCommentID: &reply.ID,
		AuthorID:        authorID,
		Body:            "вложенный ответ",
		CreatedAt:       now.Add(2 * time.Second),
	}
	sibling := entity.DocumentComment{
		ID:         uuid.Must(uuid.NewV4()),
		DocumentID: document.ID,
		AuthorID:   authorID,
		Body:       "соседняя ветка",
		CreatedAt:  now.Add(3 * time.Second),
	}

	for _, c := range []entity.DocumentComment{root, reply, nested, sibling} {
		r.NoError(repo.CreateComment(ctx, c))
	}

	mentionedID := uuid.Must(uuid.NewV4())

	r.NoError(repo.CreateMention(ctx, entity.DocumentMention{
		ID:              uuid.Must(uuid.NewV4()),
		CommentID:       nested.ID,
		MentionedUserID: mentionedID,
		CreatedAt:       now,
	}))

	r.NoError(repo.DeleteCommentCascade(ctx, root.ID))

	comments, err := repo.CommentsByDocument(ctx, document.ID)
	r.NoError(err)
	r.Len(comments, 1)
	r.Equal(sibling.ID, comments[0].ID)

	// Mentions hanging off the deleted subtree go with it.
	mentions, err := repo.MentionsByComment(ctx, nested.ID)
	r.NoError(err)
	r.Empty(mentions)

	r.ErrorIs(repo.DeleteCommentCascade(ctx, root.ID), entity.ErrNotFound)
}

func TestRepository_MentionReadFlow(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	repo := repository.New(dbPool(t))
	ctx := context.Background()

	mentionedID := uuid.Must(uuid.NewV4())

	mention := entity.DocumentMention{
		ID:              uuid.Must(uuid.NewV4()),
		CommentID:       uuid.Must(uuid.NewV4()),
		MentionedUserID: mentionedID,
		CreatedAt:       time.Now().Truncate(time.Millisecond),
	}
	r.NoError(repo.CreateMention(ctx, mention))

	unread, err := repo.UnreadMentions(ctx, mentionedID)
	r.NoError(err)
	r.Len(unread, 1)
	r.Equal(mention.ID, unread[0].ID)

	r.NoError(repo.MarkMentionRead(ctx, mention.ID))

	unread, err = repo.UnreadMentions(ctx, mentionedID)
	r.NoError(err)
	r.Empty(unread)

	r.ErrorIs(repo.MarkMentionRead(ctx, uuid.Must(uuid.NewV4())), entity.ErrNotFound)
}
