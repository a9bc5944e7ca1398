package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/samandr77/stroika/internal/access"
	"github.com/samandr77/stroika/internal/entity"
)

func (s *Service) DepartmentTree(ctx context.Context) ([]*entity.DepartmentNode, error) {
	departments, err := s.repo.Departments(ctx)
	if err != nil {
		return nil, fmt.Errorf("list departments: %w", err)
	}

	return entity.BuildDepartmentTree(departments)
}

// UserHierarchy returns one root-to-department ancestor chain per
// active assignment of the user. Users with several assignments get
// several chains.
func (s *Service) UserHierarchy(ctx context.Context, userID uuid.UUID) ([][]entity.Department, error) {
	assignments, err := s.repo.UserDepartments(ctx, userID, true)
	if err != nil {
		return nil, fmt.Errorf("user departments: %w", err)
	}

	if len(assignments) == 0 {
		return nil, nil
	}

	departments, err := s.repo.Departments(ctx)
	if err != nil {
		return nil, fmt.Errorf("list departments: %w", err)
	}

	byID := entity.DepartmentsByID(departments)

	chains := make([][]entity.Department, 0, len(assignments))

	for _, a := range assignments {
		chain, err := entity.AncestorChain(byID, a.DepartmentID)
		if err != nil {
			return nil, fmt.Errorf("ancestor chain for %s: %w", a.DepartmentID, err)
		}

		chains = append(chains, chain)
	}

	return chains, nil
}

func (s *Service) CreateDepartment(ctx context.Context, name, displayName string, parentID *uuid.UUID) (entity.Department, error) {
	err := s.requirePermission(ctx, access.ResourceDeparts+":create")
	if err != nil {
		return entity.Department{}, err
	}

	err = ValidateDepartmentParams(name, displayName)
	if err != nil {
		return entity.Department{}, err
	}

	level := 0

	if parentID != nil {
		departments, err := s.repo.Departments(ctx)
		if err != nil {
			return entity.Department{}, fmt.Errorf("list departments: %w", err)
		}

		chain, err := entity.AncestorChain(entity.DepartmentsByID(departments), *parentID)
		if err != nil {
			return entity.Department{}, fmt.Errorf("resolve parent: %w", err)
		}

		level = len(chain)
	}

	d := entity.Department{
		ID:          uuid.Must(uuid.NewV4()),
		Name:        name,
		DisplayName: displayName,
		ParentID:    parentID,
		Level:       level,
		CreatedAt:   time.Now(),
	}

	err = s.repo.CreateDepartment(ctx, d)
	if err != nil {
		return entity.Department{}, fmt.Errorf("create department: %w", err)
	}

	return d, nil
}

// AssignUserToDepartment enforces the single-active-primary invariant
// before writing.
func (s *Service) AssignUserToDepartment(
	ctx context.Context, userID, departmentID uuid.UUID, positionID *uuid.UUID, isPrimary bool,
) (entity.UserDepartment, error) {
	err := s.requirePermission(ctx, access.ResourceDeparts+":edit")
	if err != nil {
		return entity.UserDepartment{}, err
	}

	if isPrimary {
		exists, err := s.repo.HasActivePrimaryAssignment(ctx, userID)
		if err != nil {
			return entity.UserDepartment{}, fmt.Errorf("check primary assignment: %w", err)
		}

		if exists {
			return entity.UserDepartment{}, entity.ErrPrimaryAssignment
		}
	}

	a := entity.UserDepartment{
		ID:           uuid.Must(uuid.NewV4()),
		UserID:       userID,
		DepartmentID: departmentID,
		PositionID:   positionID,
		IsPrimary:    isPrimary,
		StartDate:    time.Now(),
	}

	err = s.repo.CreateUserDepartment(ctx, a)
	if err != nil {
		return entity.UserDepartment{}, fmt.Errorf("create assignment: %w", err)
	}

	return a, nil
}

// CloseEndedAssignments is a periodic hygiene job.
func (s *Service) CloseEndedAssignments(ctx context.Context) error {
	n, err := s.repo.ClearEndedPrimaryFlags(ctx)
	if err != nil {
		return fmt.Errorf("clear ended primary flags: %w", err)
	}

	if n > 0 {
		slog.InfoContext(ctx, "cleared ended primary assignments", "count", n)
	}

	return nil
}
