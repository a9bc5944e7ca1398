package service_test

import (
	"context"
	"testing"

	"github.com/samandr77/stroika/internal/entity"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestService_Roles_SeniorityOrder(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t)

	// The repository returns alphabetical order; the service reorders
	// by seniority with unknown roles last.
	ts.repo.EXPECT().Roles(gomock.Any()).Return([]entity.Role{
		{Name: entity.RoleEngineer},
		{Name: "intern"},
		{Name: entity.RoleOwner},
		{Name: entity.RoleCEO},
		{Name: entity.RoleObserver},
	}, nil)

	roles, err := ts.s.Roles(context.Background())
	r.NoError(err)

	names := make([]string, 0, len(roles))
	for _, role := range roles {
		names = append(names, role.Name)
	}

	r.Equal([]string{
		entity.RoleOwner,
		entity.RoleCEO,
		entity.RoleEngineer,
		entity.RoleObserver,
		"intern",
	}, names)
}
