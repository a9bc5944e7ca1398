package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

type Document struct {
	ID        uuid.UUID  `json:"id"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	ProjectID *uuid.UUID `json:"project_id,omitempty"`
	CreatedBy uuid.UUID  `json:"created_by"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// DocumentComment threads via ParentCommentID. Deleting a comment
// removes its whole reply subtree together with the mention records.
type DocumentComment struct {
	ID              uuid.UUID  `json:"id"`
	DocumentID      uuid.UUID  `json:"document_id"`
	ParentCommentID *uuid.UUID `json:"parent_comment_id,omitempty"`
	AuthorID        uuid.UUID  `json:"author_id"`
	Body            string     `json:"body"`
	CreatedAt       time.Time  `json:"created_at"`
}

type DocumentMention struct {
	ID              uuid.UUID `json:"id"`
	CommentID       uuid.UUID `json:"comment_id"`
	MentionedUserID uuid.UUID `json:"mentioned_user_id"`
	IsRead          bool      `json:"is_read"`
	CreatedAt       time.Time `json:"created_at"`
}

type DocumentTaskRelation string

const (
	RelationAttachment  DocumentTaskRelation = "attachment"
	RelationReference   DocumentTaskRelation = "reference"
	RelationDeliverable DocumentTaskRelation = "deliverable"
	RelationRequirement DocumentTaskRelation = "requirement"
)

func (r DocumentTaskRelation) IsValid() bool {
	switch r {
	case RelationAttachment, RelationReference, RelationDeliverable, RelationRequirement:
		return true
	}

	return false
}

type DocumentTask struct {
	DocumentID uuid.UUID            `json:"document_id"`
	TaskID     uuid.UUID            `json:"task_id"`
	Relation   DocumentTaskRelation `json:"relation"`
	CreatedAt  time.Time            `json:"created_at"`
}

// CommentNode is a comment with its replies attached, built from the
// flat parent-pointer rows the same way the department tree is.
type CommentNode struct {
	DocumentComment
	Replies []*CommentNode `json:"replies"`
}

// BuildCommentTree threads flat comments into root nodes with nested
// replies, preserving input order. A missing parent roots the node.
func BuildCommentTree(comments []DocumentComment) []*CommentNode {
	nodes := make(map[uuid.UUID]*CommentNode, len(comments))
	for _, c := range comments {
		nodes[c.ID] = &CommentNode{DocumentComment: c}
	}

	var roots []*CommentNode

	for _, c := range comments {
		node := nodes[c.ID]

		if c.ParentCommentID == nil {
			roots = append(roots, node)
			continue
		}

		parent, ok := nodes[*c.ParentCommentID]
		if !ok {
			roots = append(roots, node)
			continue
		}

		parent.Replies = append(parent.Replies, node)
	}

	return roots
}
