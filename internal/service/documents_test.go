package service_test

import (
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/samandr77/stroika/internal/entity"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestService_AddComment_Reply(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t)

	user := testOwner()
	ctx := ctxWithUser(user)

	documentID := uuid.Must(uuid.NewV4())
	parentID := uuid.Must(uuid.NewV4())
	mentionedID := uuid.Must(uuid.NewV4())

	ts.repo.EXPECT().DocumentByID(gomock.Any(), documentID).
		Return(entity.Document{ID: documentID}, nil)
	ts.repo.EXPECT().CommentsByDocument(gomock.Any(), documentID).
		Return([]entity.DocumentComment{{ID: parentID, DocumentID: documentID}}, nil)
	ts.repo.EXPECT().CreateComment(gomock.Any(), gomock.Any()).Return(nil)
	ts.repo.EXPECT().CreateMention(gomock.Any(), gomock.Any()).Return(nil)
	ts.events.EXPECT().MentionCreated(gomock.Any(), gomock.Any())

	comment, err := ts.s.AddComment(ctx, documentID, &parentID, "согласовано", []uuid.UUID{mentionedID})
	r.NoError(err)
	r.Equal(&parentID, comment.ParentCommentID)
	r.Equal(user.ID, comment.AuthorID)
}

func TestService_AddComment_ParentFromAnotherDocument(t *testing.T) {
	t.Parallel()
	ts := NewTestService(t)

	ctx := ctxWithUser(testOwner())

	documentID := uuid.Must(uuid.NewV4())
	foreignParentID := uuid.Must(uuid.NewV4())

	ts.repo.EXPECT().DocumentByID(gomock.Any(), documentID).
		Return(entity.Document{ID: documentID}, nil)

	// The claimed parent is not among this document's comments, so the
	// reply is rejected before anything is written.
	ts.repo.EXPECT().CommentsByDocument(gomock.Any(), documentID).
		Return([]entity.DocumentComment{{ID: uuid.Must(uuid.NewV4()), DocumentID: documentID}}, nil)

	_, err := ts.s.AddComment(ctx, documentID, &foreignParentID, "ответ", nil)
	require.ErrorIs(t, err, entity.ErrNotFound)
}

func TestService_AddComment_MissingParent(t *testing.T) {
	t.Parallel()
	ts := NewTestService(t)

	ctx := ctxWithUser(testOwner())

	documentID := uuid.Must(uuid.NewV4())
	parentID := uuid.Must(uuid.NewV4())

	ts.repo.EXPECT().DocumentByID(gomock.Any(), documentID).
		Return(entity.Document{ID: documentID}, nil)
	ts.repo.EXPECT().CommentsByDocument(gomock.Any(), documentID).
		Return(nil, nil)

	_, err := ts.s.AddComment(ctx, documentID, &parentID, "ответ", nil)
	require.ErrorIs(t, err, entity.ErrNotFound)
}
