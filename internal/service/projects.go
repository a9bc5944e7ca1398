package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/samandr77/stroika/internal/entity"
)

type CreateProjectParams struct {
	Name          string
	Client        string
	StatusID      uuid.UUID
	PriorityID    uuid.UUID
	LeadID        uuid.UUID
	ContractValue string
	StartDate     *time.Time
	EndDate       *time.Time
	Health        entity.ProjectHealth
	TeamMemberIDs []uuid.UUID
}

func (s *Service) CreateProject(ctx context.Context, params CreateProjectParams) (entity.ConstructionProject, error) {
	user, err := entity.UserFromContext(ctx)
	if err != nil {
		return entity.ConstructionProject{}, err
	}

	snapshot, err := s.CurrentPermissions(ctx)
	if err != nil {
		return entity.ConstructionProject{}, err
	}

	if !snapshot.CanCreateProjects() {
		return entity.ConstructionProject{}, fmt.Errorf("%w: create project", entity.ErrForbidden)
	}

	contractValue, err := ValidateCreateProjectParams(params)
	if err != nil {
		return entity.ConstructionProject{}, err
	}

	now := time.Now()

	p := entity.ConstructionProject{
		ID:            uuid.Must(uuid.NewV4()),
		Name:          params.Name,
		Client:        params.Client,
		StatusID:      params.StatusID,
		PriorityID:    params.PriorityID,
		LeadID:        params.LeadID,
		ContractValue: contractValue,
		StartDate:     params.StartDate,
		EndDate:       params.EndDate,
		Health:        params.Health,
		TeamMemberIDs: params.TeamMemberIDs,
		CreatedBy:     user.ID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	err = s.repo.CreateProject(ctx, p)
	if err != nil {
		return entity.ConstructionProject{}, fmt.Errorf("create project: %w", err)
	}

	slog.InfoContext(ctx, fmt.Sprintf("Создан объект строительства %s", p.Name))

	return p, nil
}

func (s *Service) ProjectByID(ctx context.Context, id uuid.UUID) (entity.ConstructionProject, error) {
	return s.repo.ProjectByID(ctx, id)
}

func (s *Service) Projects(ctx context.Context, includeArchived bool) ([]entity.ConstructionProject, error) {
	return s.repo.Projects(ctx, includeArchived)
}

// UpdateProject requires edit access on the project; progress and
// status changes come through here from the project members.
func (s *Service) UpdateProject(ctx context.Context, p entity.ConstructionProject) error {
	current, err := s.repo.ProjectByID(ctx, p.ID)
	if err != nil {
		return err
	}

	if current.IsArchived {
		return entity.ErrProjectArchived
	}

	projectAccess, err := s.ProjectAccess(ctx, p.ID)
	if err != nil {
		return err
	}

	if !projectAccess.CanEdit() {
		return fmt.Errorf("%w: edit project %s", entity.ErrForbidden, p.ID)
	}

	err = ValidateTitle(p.Name)
	if err != nil {
		return err
	}

	return s.repo.UpdateProject(ctx, p)
}

// ArchiveProject is the normal retirement path; admin access required.
func (s *Service) ArchiveProject(ctx context.Context, id uuid.UUID) error {
	projectAccess, err := s.ProjectAccess(ctx, id)
	if err != nil {
		return err
	}

	if !projectAccess.CanAdmin() {
		return fmt.Errorf("%w: archive project %s", entity.ErrForbidden, id)
	}

	return s.repo.ArchiveProject(ctx, id)
}

func (s *Service) Statuses(ctx context.Context) ([]entity.Status, error) {
	return s.repo.Statuses(ctx)
}

func (s *Service) Priorities(ctx context.Context) ([]entity.Priority, error) {
	return s.repo.Priorities(ctx)
}

func (s *Service) Labels(ctx context.Context) ([]entity.Label, error) {
	return s.repo.Labels(ctx)
}
