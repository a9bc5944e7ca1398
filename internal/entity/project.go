package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

type ProjectHealth struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Color       string `json:"color"`
	Description string `json:"description"`
}

type ConstructionProject struct {
	ID            uuid.UUID       `json:"id"`
	Name          string          `json:"name"`
	Client        string          `json:"client"`
	StatusID      uuid.UUID       `json:"status_id"`
	PriorityID    uuid.UUID       `json:"priority_id"`
	LeadID        uuid.UUID       `json:"lead_id"`
	ContractValue decimal.Decimal `json:"contract_value"`
	StartDate     *time.Time      `json:"start_date,omitempty"`
	EndDate       *time.Time      `json:"end_date,omitempty"`
	Health        ProjectHealth   `json:"health"`
	TeamMemberIDs []uuid.UUID     `json:"team_member_ids"`
	Progress      int             `json:"progress"`
	IsArchived    bool            `json:"is_archived"`
	CreatedBy     uuid.UUID       `json:"created_by"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// HasMember reports whether the user leads the project or is on its
// team roster.
func (p ConstructionProject) HasMember(userID uuid.UUID) bool {
	if p.LeadID == userID {
		return true
	}

	for _, id := range p.TeamMemberIDs {
		if id == userID {
			return true
		}
	}

	return false
}
