package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"
	"github.com/samandr77/stroika/internal/entity"
	"go.uber.org/mock/gomock"
)

func TestService_CurrentPermissions(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t)

	user := entity.User{
		ID:     uuid.Must(uuid.NewV4()),
		RoleID: uuid.Must(uuid.NewV4()),
	}
	ctx := ctxWithUser(user)

	ts.repo.EXPECT().PermissionsByRole(gomock.Any(), user.RoleID).
		Return([]entity.Permission{
			{Resource: "tasks", Action: "manage"},
			{Resource: "projects", Action: "view"},
		}, nil)

	snapshot, err := ts.s.CurrentPermissions(ctx)
	r.NoError(err)
	r.False(snapshot.IsLoading())

	r.True(snapshot.Has("tasks:delete"))
	r.True(snapshot.Has("constructionProjects:view"))
	r.False(snapshot.Has("documents:view"))
}

func TestService_CurrentPermissions_RepoFailure(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t)

	user := entity.User{
		ID:     uuid.Must(uuid.NewV4()),
		RoleID: uuid.Must(uuid.NewV4()),
	}
	ctx := ctxWithUser(user)

	ts.repo.EXPECT().PermissionsByRole(gomock.Any(), user.RoleID).
		Return(nil, errors.New("connection refused"))

	snapshot, err := ts.s.CurrentPermissions(ctx)
	r.Error(err)

	// The failed snapshot keeps denying.
	r.False(snapshot.Has("tasks:view"))
}

func TestService_CurrentPermissions_NoUser(t *testing.T) {
	t.Parallel()
	ts := NewTestService(t)

	_, err := ts.s.CurrentPermissions(context.Background())
	require.ErrorIs(t, err, entity.ErrUnauthorized)
}

func TestService_ProjectAccess(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t)

	user := entity.User{
		ID:     uuid.Must(uuid.NewV4()),
		RoleID: uuid.Must(uuid.NewV4()),
	}
	ctx := ctxWithUser(user)

	project := entity.ConstructionProject{
		ID:            uuid.Must(uuid.NewV4()),
		Name:          "ЖК Северный",
		LeadID:        uuid.Must(uuid.NewV4()),
		TeamMemberIDs: []uuid.UUID{user.ID},
	}

	ts.repo.EXPECT().ProjectByID(gomock.Any(), project.ID).Return(project, nil)
	ts.repo.EXPECT().PermissionsByRole(gomock.Any(), user.RoleID).Return(nil, nil)

	got, err := ts.s.ProjectAccess(ctx, project.ID)
	r.NoError(err)
	r.False(got.IsLoading())

	// Team membership grants view and edit but not admin.
	r.True(got.CanView())
	r.True(got.CanEdit())
	r.False(got.CanAdmin())
}

func TestService_ProjectAccess_Lead(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t)

	user := entity.User{
		ID:     uuid.Must(uuid.NewV4()),
		RoleID: uuid.Must(uuid.NewV4()),
	}
	ctx := ctxWithUser(user)

	project := entity.ConstructionProject{
		ID:     uuid.Must(uuid.NewV4()),
		LeadID: user.ID,
	}

	ts.repo.EXPECT().ProjectByID(gomock.Any(), project.ID).Return(project, nil)
	ts.repo.EXPECT().PermissionsByRole(gomock.Any(), user.RoleID).Return(nil, nil)

	got, err := ts.s.ProjectAccess(ctx, project.ID)
	r.NoError(err)
	r.True(got.CanAdmin())
}

func TestService_ProjectAccess_Owner(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t)

	user := testOwner()
	ctx := ctxWithUser(user)

	project := entity.ConstructionProject{ID: uuid.Must(uuid.NewV4())}

	ts.repo.EXPECT().ProjectByID(gomock.Any(), project.ID).Return(project, nil)

	got, err := ts.s.ProjectAccess(ctx, project.ID)
	r.NoError(err)
	r.True(got.CanView())
	r.True(got.CanEdit())
	r.True(got.CanAdmin())
}

func TestService_ProjectAccess_UnknownProject(t *testing.T) {
	t.Parallel()
	ts := NewTestService(t)

	ctx := ctxWithUser(testOwner())
	projectID := uuid.Must(uuid.NewV4())

	ts.repo.EXPECT().ProjectByID(gomock.Any(), projectID).
		Return(entity.ConstructionProject{}, entity.ErrNotFound)

	_, err := ts.s.ProjectAccess(ctx, projectID)
	require.ErrorIs(t, err, entity.ErrNotFound)
}

func TestService_GrantPermission_RequiresRoleManage(t *testing.T) {
	t.Parallel()
	ts := NewTestService(t)

	user := entity.User{
		ID:     uuid.Must(uuid.NewV4()),
		RoleID: uuid.Must(uuid.NewV4()),
	}
	ctx := ctxWithUser(user)

	ts.repo.EXPECT().PermissionsByRole(gomock.Any(), user.RoleID).
		Return([]entity.Permission{{Resource: "roles", Action: "view"}}, nil)

	err := ts.s.GrantPermission(ctx, uuid.Must(uuid.NewV4()), uuid.Must(uuid.NewV4()))
	require.ErrorIs(t, err, entity.ErrForbidden)
}
