// Package events publishes domain events to the broker for the
// notification pipeline.
package events

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/samandr77/stroika/internal/entity"
	"github.com/samandr77/stroika/pkg/broker"
)

type Publisher struct {
	producer *broker.Producer

	taskAssignedTopic   string
	mentionCreatedTopic string
}

func NewPublisher(producer *broker.Producer, taskAssignedTopic, mentionCreatedTopic string) *Publisher {
	return &Publisher{
		producer:            producer,
		taskAssignedTopic:   taskAssignedTopic,
		mentionCreatedTopic: mentionCreatedTopic,
	}
}

type TaskAssignedEvent struct {
	TaskID     uuid.UUID `json:"task_id"`
	Identifier string    `json:"identifier"`
	Title      string    `json:"title"`
	AssigneeID uuid.UUID `json:"assignee_id"`
}

func (p *Publisher) TaskAssigned(ctx context.Context, task entity.Task, assigneeID uuid.UUID) {
	p.producer.Send(ctx, p.taskAssignedTopic, task.ID.String(), TaskAssignedEvent{
		TaskID:     task.ID,
		Identifier: task.Identifier,
		Title:      task.Title,
		AssigneeID: assigneeID,
	})
}

type MentionCreatedEvent struct {
	MentionID       uuid.UUID `json:"mention_id"`
	CommentID       uuid.UUID `json:"comment_id"`
	MentionedUserID uuid.UUID `json:"mentioned_user_id"`
}

func (p *Publisher) MentionCreated(ctx context.Context, mention entity.DocumentMention) {
	p.producer.Send(ctx, p.mentionCreatedTopic, mention.ID.String(), MentionCreatedEvent{
		MentionID:       mention.ID,
		CommentID:       mention.CommentID,
		MentionedUserID: mention.MentionedUserID,
	})
}
