package entity_test

import (
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"
	"github.com/samandr77/stroika/internal/entity"
)

func TestBuildCommentTree(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	rootID := uuid.Must(uuid.NewV4())
	replyID := uuid.Must(uuid.NewV4())
	nestedID := uuid.Must(uuid.NewV4())
	secondRootID := uuid.Must(uuid.NewV4())

	comments := []entity.DocumentComment{
		{ID: rootID, Body: "root"},
		{ID: replyID, ParentCommentID: &rootID, Body: "reply"},
		{ID: nestedID, ParentCommentID: &replyID, Body: "nested"},
		{ID: secondRootID, Body: "second root"},
	}

	roots := entity.BuildCommentTree(comments)
	r.Len(roots, 2)

	r.Equal(rootID, roots[0].ID)
	r.Len(roots[0].Replies, 1)
	r.Equal(replyID, roots[0].Replies[0].ID)
	r.Len(roots[0].Replies[0].Replies, 1)
	r.Equal(nestedID, roots[0].Replies[0].Replies[0].ID)

	r.Equal(secondRootID, roots[1].ID)
	r.Empty(roots[1].Replies)
}

func TestBuildCommentTree_MissingParentBecomesRoot(t *testing.T) {
	t.Parallel()

	missing := uuid.Must(uuid.NewV4())
	orphanID := uuid.Must(uuid.NewV4())

	roots := entity.BuildCommentTree([]entity.DocumentComment{
		{ID: orphanID, ParentCommentID: &missing, Body: "orphan"},
	})

	require.Len(t, roots, 1)
	require.Equal(t, orphanID, roots[0].ID)
}

func TestDocumentTaskRelation_IsValid(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	r.True(entity.RelationAttachment.IsValid())
	r.True(entity.RelationReference.IsValid())
	r.True(entity.RelationDeliverable.IsValid())
	r.True(entity.RelationRequirement.IsValid())
	r.False(entity.DocumentTaskRelation("linked").IsValid())
}
