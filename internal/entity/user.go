package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

type UserPresence string

const (
	PresenceOnline  UserPresence = "online"
	PresenceAway    UserPresence = "away"
	PresenceOffline UserPresence = "offline"
)

func (p UserPresence) IsValid() bool {
	switch p {
	case PresenceOnline, PresenceAway, PresenceOffline:
		return true
	}

	return false
}

type User struct {
	ID           uuid.UUID    `json:"id"`
	Name         string       `json:"name"`
	Email        string       `json:"email"`
	AvatarURL    *string      `json:"avatar_url,omitempty"`
	Presence     UserPresence `json:"presence"`
	RoleID       uuid.UUID    `json:"role_id"`
	Position     *string      `json:"position,omitempty"`
	IsOwner      bool         `json:"is_owner"`
	IsActive     bool         `json:"is_active"`
	PasswordHash string       `json:"-"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// UserDepartment is a user's assignment to a department. EndDate nil
// means the assignment is active. A user holds at most one active
// primary assignment at a time.
type UserDepartment struct {
	ID           uuid.UUID  `json:"id"`
	UserID       uuid.UUID  `json:"user_id"`
	DepartmentID uuid.UUID  `json:"department_id"`
	PositionID   *uuid.UUID `json:"position_id,omitempty"`
	IsPrimary    bool       `json:"is_primary"`
	StartDate    time.Time  `json:"start_date"`
	EndDate      *time.Time `json:"end_date,omitempty"`
}
