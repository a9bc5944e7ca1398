package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

// Task is a single record shared by the two task universes: generic
// issues and construction tasks, told apart by IsConstruction.
// Identifier is unique within its universe.
type Task struct {
	ID             uuid.UUID   `json:"id"`
	Identifier     string      `json:"identifier"`
	Title          string      `json:"title"`
	Description    string      `json:"description"`
	StatusID       uuid.UUID   `json:"status_id"`
	PriorityID     uuid.UUID   `json:"priority_id"`
	AssigneeID     *uuid.UUID  `json:"assignee_id,omitempty"`
	LabelIDs       []uuid.UUID `json:"label_ids"`
	ProjectID      *uuid.UUID  `json:"project_id,omitempty"`
	ParentID       *uuid.UUID  `json:"parent_id,omitempty"`
	DueDate        *time.Time  `json:"due_date,omitempty"`
	IsConstruction bool        `json:"is_construction"`
	CreatedBy      uuid.UUID   `json:"created_by"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}

func (t Task) HasLabel(labelID uuid.UUID) bool {
	for _, id := range t.LabelIDs {
		if id == labelID {
			return true
		}
	}

	return false
}
