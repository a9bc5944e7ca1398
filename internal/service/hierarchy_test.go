package service_test

import (
	"context"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/samandr77/stroika/internal/entity"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestService_CreateDepartment(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t)

	user := testOwner()
	ctx := ctxWithUser(user)

	ts.repo.EXPECT().PermissionsByRole(gomock.Any(), user.RoleID).Return(nil, nil)
	ts.repo.EXPECT().CreateDepartment(gomock.Any(), gomock.Any()).Return(nil)

	department, err := ts.s.CreateDepartment(ctx, "pto", "ПТО", nil)
	r.NoError(err)
	r.Equal("pto", department.Name)
	r.Zero(department.Level)
}

func TestService_CreateDepartment_Unauthorized(t *testing.T) {
	t.Parallel()
	ts := NewTestService(t)

	// No user in context: the request never reaches the repository.
	_, err := ts.s.CreateDepartment(context.Background(), "pto", "ПТО", nil)
	require.ErrorIs(t, err, entity.ErrUnauthorized)
}

func TestService_CreateDepartment_Forbidden(t *testing.T) {
	t.Parallel()
	ts := NewTestService(t)

	user := entity.User{
		ID:     uuid.Must(uuid.NewV4()),
		RoleID: uuid.Must(uuid.NewV4()),
	}
	ctx := ctxWithUser(user)

	ts.repo.EXPECT().PermissionsByRole(gomock.Any(), user.RoleID).
		Return([]entity.Permission{{Resource: "departments", Action: "view"}}, nil)

	_, err := ts.s.CreateDepartment(ctx, "pto", "ПТО", nil)
	require.ErrorIs(t, err, entity.ErrForbidden)
}

func TestService_AssignUserToDepartment(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t)

	user := testOwner()
	ctx := ctxWithUser(user)

	userID := uuid.Must(uuid.NewV4())
	departmentID := uuid.Must(uuid.NewV4())

	ts.repo.EXPECT().PermissionsByRole(gomock.Any(), user.RoleID).Return(nil, nil)
	ts.repo.EXPECT().HasActivePrimaryAssignment(gomock.Any(), userID).Return(false, nil)
	ts.repo.EXPECT().CreateUserDepartment(gomock.Any(), gomock.Any()).Return(nil)

	assignment, err := ts.s.AssignUserToDepartment(ctx, userID, departmentID, nil, true)
	r.NoError(err)
	r.Equal(userID, assignment.UserID)
	r.True(assignment.IsPrimary)
}

func TestService_AssignUserToDepartment_Forbidden(t *testing.T) {
	t.Parallel()
	ts := NewTestService(t)

	user := entity.User{
		ID:     uuid.Must(uuid.NewV4()),
		RoleID: uuid.Must(uuid.NewV4()),
	}
	ctx := ctxWithUser(user)

	ts.repo.EXPECT().PermissionsByRole(gomock.Any(), user.RoleID).
		Return([]entity.Permission{{Resource: "departments", Action: "view"}}, nil)

	_, err := ts.s.AssignUserToDepartment(ctx, uuid.Must(uuid.NewV4()), uuid.Must(uuid.NewV4()), nil, false)
	require.ErrorIs(t, err, entity.ErrForbidden)
}

func TestService_AssignUserToDepartment_PrimaryConflict(t *testing.T) {
	t.Parallel()
	ts := NewTestService(t)

	user := testOwner()
	ctx := ctxWithUser(user)

	userID := uuid.Must(uuid.NewV4())

	ts.repo.EXPECT().PermissionsByRole(gomock.Any(), user.RoleID).Return(nil, nil)
	ts.repo.EXPECT().HasActivePrimaryAssignment(gomock.Any(), userID).Return(true, nil)

	_, err := ts.s.AssignUserToDepartment(ctx, userID, uuid.Must(uuid.NewV4()), nil, true)
	require.ErrorIs(t, err, entity.ErrPrimaryAssignment)
}
