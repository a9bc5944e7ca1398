package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gofrs/uuid/v5"
	"github.com/segmentio/kafka-go"
)

type Service interface {
	ReleaseUserAssignments(ctx context.Context, userID uuid.UUID) error
}

type EventHandler struct {
	s Service
}

func NewEventHandler(s Service) *EventHandler {
	return &EventHandler{s: s}
}

type OnUserDeactivatedEvent struct {
	UserID uuid.UUID `json:"user_id"`
}

func (h *EventHandler) OnUserDeactivated(ctx context.Context, msg kafka.Message) error {
	var event OnUserDeactivatedEvent

	err := json.Unmarshal(msg.Value, &event)
	if err != nil {
		return fmt.Errorf("unmarshal event: %w", err)
	}

	if event.UserID.IsNil() {
		return nil
	}

	err = h.s.ReleaseUserAssignments(ctx, event.UserID)
	if err != nil {
		return fmt.Errorf("release user assignments: %w", err)
	}

	return nil
}
