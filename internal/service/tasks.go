package service

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/samandr77/stroika/internal/access"
	"github.com/samandr77/stroika/internal/entity"
)

const identifierSuffixSpace = 1000 // 3-digit zero-padded suffixes

// GenerateIdentifier picks a random 3-digit suffix and regenerates
// while the candidate collides with an existing identifier. The check
// runs against a snapshot, not a constraint: two concurrent creations
// can race past each other and collide. The domain tolerates that.
func GenerateIdentifier(prefix string, existing map[string]struct{}) (string, error) {
	taken := 0

	for id := range existing {
		if len(id) == len(prefix)+4 && id[:len(prefix)] == prefix {
			taken++
		}
	}

	if taken >= identifierSuffixSpace {
		return "", entity.ErrIdentifierExhausted
	}

	for {
		candidate := fmt.Sprintf("%s-%03d", prefix, rand.Intn(identifierSuffixSpace))
		if _, collision := existing[candidate]; !collision {
			return candidate, nil
		}
	}
}

type CreateTaskParams struct {
	Title          string
	Description    string
	StatusID       uuid.UUID
	PriorityID     uuid.UUID
	AssigneeID     *uuid.UUID
	LabelIDs       []uuid.UUID
	ProjectID      *uuid.UUID
	DueDate        *time.Time
	IsConstruction bool

	// Follow-up steps executed after the task row exists.
	Attachments []AttachmentMeta
	Subtasks    []SubtaskParams
}

type AttachmentMeta struct {
	FileName   string
	FileSize   int64
	MimeType   string
	StorageRef string
}

type SubtaskParams struct {
	Title      string
	StatusID   uuid.UUID
	PriorityID uuid.UUID
}

// CreateTask creates the task, then records attachments and subtasks
// sequentially. The flow is best-effort: a failing later step is
// returned as an error but earlier writes stay in place, so the caller
// may end up with a partially populated task. The created ID is
// always returned once the first insert succeeds.
func (s *Service) CreateTask(ctx context.Context, params CreateTaskParams) (entity.Task, error) {
	user, err := entity.UserFromContext(ctx)
	if err != nil {
		return entity.Task{}, err
	}

	err = s.requirePermission(ctx, access.ResourceTasks+":create")
	if err != nil {
		return entity.Task{}, err
	}

	err = ValidateCreateTaskParams(params)
	if err != nil {
		return entity.Task{}, err
	}

	identifiers, err := s.repo.Identifiers(ctx, params.IsConstruction)
	if err != nil {
		return entity.Task{}, fmt.Errorf("list identifiers: %w", err)
	}

	existing := make(map[string]struct{}, len(identifiers))
	for _, id := range identifiers {
		existing[id] = struct{}{}
	}

	identifier, err := GenerateIdentifier(s.taskPrefix, existing)
	if err != nil {
		return entity.Task{}, err
	}

	now := time.Now()

	task := entity.Task{
		ID:             uuid.Must(uuid.NewV4()),
		Identifier:     identifier,
		Title:          params.Title,
		Description:    params.Description,
		StatusID:       params.StatusID,
		PriorityID:     params.PriorityID,
		AssigneeID:     params.AssigneeID,
		LabelIDs:       params.LabelIDs,
		ProjectID:      params.ProjectID,
		DueDate:        params.DueDate,
		IsConstruction: params.IsConstruction,
		CreatedBy:      user.ID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	err = s.repo.CreateTask(ctx, task)
	if err != nil {
		return entity.Task{}, fmt.Errorf("create task: %w", err)
	}

	if task.AssigneeID != nil {
		s.events.TaskAssigned(ctx, task, *task.AssigneeID)
	}

	for i, meta := range params.Attachments {
		attachment := entity.Attachment{
			ID:         uuid.Must(uuid.NewV4()),
			IssueID:    task.ID,
			FileName:   meta.FileName,
			FileSize:   meta.FileSize,
			MimeType:   meta.MimeType,
			StorageRef: meta.StorageRef,
			UploadedBy: user.ID,
			UploadedAt: time.Now(),
		}

		err = s.repo.CreateAttachment(ctx, attachment)
		if err != nil {
			return task, fmt.Errorf("attach file %d of %d: %w", i+1, len(params.Attachments), err)
		}
	}

	for i, sub := range params.Subtasks {
		subIdentifier, err := GenerateIdentifier(s.taskPrefix, existing)
		if err != nil {
			return task, err
		}

		existing[subIdentifier] = struct{}{}

		subtask := entity.Task{
			ID:             uuid.Must(uuid.NewV4()),
			Identifier:     subIdentifier,
			Title:          sub.Title,
			StatusID:       sub.StatusID,
			PriorityID:     sub.PriorityID,
			ParentID:       &task.ID,
			ProjectID:      params.ProjectID,
			IsConstruction: params.IsConstruction,
			CreatedBy:      user.ID,
			CreatedAt:      time.Now(),
			UpdatedAt:      time.Now(),
		}

		err = s.repo.CreateTask(ctx, subtask)
		if err != nil {
			return task, fmt.Errorf("create subtask %d of %d: %w", i+1, len(params.Subtasks), err)
		}
	}

	slog.InfoContext(ctx, fmt.Sprintf("Создана задача %s", task.Identifier))

	return task, nil
}

// Tasks lists one universe with the facet filter applied in memory
// over the fetched snapshot.
func (s *Service) Tasks(ctx context.Context, isConstruction bool, projectID *uuid.UUID, filter entity.TaskFilter) ([]entity.Task, error) {
	tasks, err := s.repo.Tasks(ctx, isConstruction, projectID)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	return entity.FilterTasks(tasks, filter), nil
}

// TasksBoard groups a universe's tasks into status buckets for the
// kanban view.
func (s *Service) TasksBoard(ctx context.Context, isConstruction bool, projectID *uuid.UUID) (map[uuid.UUID][]entity.Task, error) {
	tasks, err := s.repo.Tasks(ctx, isConstruction, projectID)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	return entity.TasksByStatus(tasks), nil
}

func (s *Service) TaskByID(ctx context.Context, id uuid.UUID) (entity.Task, error) {
	return s.repo.TaskByID(ctx, id)
}

func (s *Service) MoveTask(ctx context.Context, id, statusID uuid.UUID) error {
	err := s.requirePermission(ctx, access.ResourceTasks+":edit")
	if err != nil {
		return err
	}

	return s.repo.SetTaskStatus(ctx, id, statusID)
}

func (s *Service) AssignTask(ctx context.Context, id uuid.UUID, assigneeID *uuid.UUID) error {
	err := s.requirePermission(ctx, access.ResourceTasks+":assign")
	if err != nil {
		return err
	}

	err = s.repo.SetTaskAssignee(ctx, id, assigneeID)
	if err != nil {
		return err
	}

	if assigneeID != nil {
		task, err := s.repo.TaskByID(ctx, id)
		if err == nil {
			s.events.TaskAssigned(ctx, task, *assigneeID)
		}
	}

	return nil
}

func (s *Service) UpdateTask(ctx context.Context, task entity.Task) error {
	err := s.requirePermission(ctx, access.ResourceTasks+":edit")
	if err != nil {
		return err
	}

	err = ValidateTitle(task.Title)
	if err != nil {
		return err
	}

	return s.repo.UpdateTask(ctx, task)
}

func (s *Service) DeleteTask(ctx context.Context, id uuid.UUID) error {
	err := s.requirePermission(ctx, access.ResourceTasks+":delete")
	if err != nil {
		return err
	}

	return s.repo.DeleteTask(ctx, id)
}

// ReleaseUserAssignments reacts to a user deactivation event:
// unassigns their tasks and ends their department assignments.
func (s *Service) ReleaseUserAssignments(ctx context.Context, userID uuid.UUID) error {
	n, err := s.repo.ReleaseAssignee(ctx, userID)
	if err != nil {
		return fmt.Errorf("release assignee: %w", err)
	}

	err = s.repo.EndUserDepartments(ctx, userID)
	if err != nil {
		return fmt.Errorf("end department assignments: %w", err)
	}

	slog.InfoContext(ctx, "released user assignments", "user_id", userID, "tasks", n)

	return nil
}
