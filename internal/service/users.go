package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/samandr77/stroika/internal/access"
	"github.com/samandr77/stroika/internal/entity"
	"golang.org/x/crypto/bcrypt"
)

type ProvisionUserParams struct {
	Name     string
	Email    string
	Password string
	RoleID   uuid.UUID
	Position *string
}

// ProvisionUser is the admin path for creating an account with an
// initial password.
func (s *Service) ProvisionUser(ctx context.Context, params ProvisionUserParams) (entity.User, error) {
	err := s.requirePermission(ctx, access.ResourceMembers+":create")
	if err != nil {
		return entity.User{}, err
	}

	err = ValidateProvisionUserParams(params)
	if err != nil {
		return entity.User{}, err
	}

	_, err = s.repo.UserByEmail(ctx, params.Email)
	if err == nil {
		return entity.User{}, entity.ErrDuplicateEmail
	}

	if !errors.Is(err, entity.ErrNotFound) {
		return entity.User{}, fmt.Errorf("email lookup: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(params.Password), bcrypt.DefaultCost)
	if err != nil {
		return entity.User{}, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now()

	user := entity.User{
		ID:           uuid.Must(uuid.NewV4()),
		Name:         params.Name,
		Email:        params.Email,
		Presence:     entity.PresenceOffline,
		RoleID:       params.RoleID,
		Position:     params.Position,
		IsActive:     true,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = s.repo.CreateUser(ctx, user)
	if err != nil {
		return entity.User{}, fmt.Errorf("create user: %w", err)
	}

	slog.InfoContext(ctx, fmt.Sprintf("Создан пользователь %s", user.Email))

	return user, nil
}

func (s *Service) Users(ctx context.Context) ([]entity.User, error) {
	return s.repo.Users(ctx)
}

func (s *Service) UserByID(ctx context.Context, id uuid.UUID) (entity.User, error) {
	return s.repo.UserByID(ctx, id)
}

// Roles lists the roles in seniority order, owner first. Roles outside
// the fixed hierarchy sort last by name.
func (s *Service) Roles(ctx context.Context) ([]entity.Role, error) {
	roles, err := s.repo.Roles(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(roles, func(i, j int) bool {
		ri, rj := entity.RoleRank(roles[i].Name), entity.RoleRank(roles[j].Name)
		if ri != rj {
			return ri < rj
		}

		return roles[i].Name < roles[j].Name
	})

	return roles, nil
}

func (s *Service) SetPresence(ctx context.Context, presence entity.UserPresence) error {
	user, err := entity.UserFromContext(ctx)
	if err != nil {
		return err
	}

	if !presence.IsValid() {
		return fmt.Errorf("%w: presence %q", entity.ErrIncorrectRequestBody, presence)
	}

	return s.repo.SetUserPresence(ctx, user.ID, presence)
}

// DeactivateUser soft-deactivates the account and releases its
// assignments. Hard delete exists separately and is guarded by a
// dependency check.
func (s *Service) DeactivateUser(ctx context.Context, id uuid.UUID) error {
	err := s.requirePermission(ctx, access.ResourceMembers+":"+access.ActionManage)
	if err != nil {
		return err
	}

	err = s.repo.SetUserActive(ctx, id, false)
	if err != nil {
		return err
	}

	return s.ReleaseUserAssignments(ctx, id)
}

func (s *Service) DeleteUser(ctx context.Context, id uuid.UUID) error {
	err := s.requirePermission(ctx, access.ResourceMembers+":delete")
	if err != nil {
		return err
	}

	count, err := s.repo.UserDependencyCount(ctx, id)
	if err != nil {
		return fmt.Errorf("dependency count: %w", err)
	}

	if count > 0 {
		return fmt.Errorf("%w: %d dependent records", entity.ErrUserHasDependencies, count)
	}

	return s.repo.DeleteUser(ctx, id)
}
