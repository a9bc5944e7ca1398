package access_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/samandr77/stroika/internal/access"
)

func TestPermissionSet_Has(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		isOwner    bool
		grants     []string
		permission string
		want       bool
	}{
		{
			name:       "exact grant",
			grants:     []string{"tasks:view"},
			permission: "tasks:view",
			want:       true,
		},
		{
			name:       "missing grant",
			grants:     []string{"tasks:view"},
			permission: "tasks:delete",
			want:       false,
		},
		{
			name:       "owner bypasses everything",
			isOwner:    true,
			grants:     nil,
			permission: "roles:manage",
			want:       true,
		},
		{
			name:       "manage implies any action",
			grants:     []string{"tasks:manage"},
			permission: "tasks:delete",
			want:       true,
		},
		{
			name:       "manage on another resource does not leak",
			grants:     []string{"tasks:manage"},
			permission: "documents:delete",
			want:       false,
		},
		{
			name:       "legacy alias satisfies canonical check",
			grants:     []string{"projects:view"},
			permission: "constructionProjects:view",
			want:       true,
		},
		{
			name:       "canonical grant satisfies legacy check",
			grants:     []string{"constructionProjects:edit"},
			permission: "projects:edit",
			want:       true,
		},
		{
			name:       "alias manage implies canonical action",
			grants:     []string{"projects:manage"},
			permission: "constructionProjects:delete",
			want:       true,
		},
		{
			name:       "malformed permission never matches",
			grants:     []string{"tasks:view"},
			permission: "tasksview",
			want:       false,
		},
		{
			name:       "empty set denies",
			grants:     nil,
			permission: "tasks:view",
			want:       false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			set := access.NewPermissionSet(tt.isOwner, tt.grants)
			require.Equal(t, tt.want, set.Has(tt.permission))
		})
	}
}

func TestPermissionSet_HasAnyHasAll(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	set := access.NewPermissionSet(false, []string{"tasks:view", "tasks:edit"})

	r.True(set.HasAny("documents:view", "tasks:view"))
	r.False(set.HasAny("documents:view", "documents:edit"))

	r.True(set.HasAll("tasks:view", "tasks:edit"))
	r.False(set.HasAll("tasks:view", "tasks:delete"))

	r.True(set.Can("tasks", "view"))
	r.False(set.Can("tasks", "delete"))
}

func TestSnapshot_DeniesUnlessReady(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	set := access.NewPermissionSet(true, nil)

	loading := access.NewLoadingSnapshot()
	r.True(loading.IsLoading())
	r.False(loading.Has("tasks:view"))
	r.False(loading.HasAny("tasks:view", "tasks:edit"))
	r.False(loading.HasAll("tasks:view"))

	failedErr := errors.New("permissions fetch failed")
	failed := access.NewFailedSnapshot(failedErr)
	r.False(failed.Has("tasks:view"))
	r.ErrorIs(failed.Err(), failedErr)

	ready := access.NewSnapshot(set)
	r.False(ready.IsLoading())
	r.True(ready.Has("tasks:view"))
}

func TestSnapshot_Capabilities(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	snapshot := access.NewSnapshot(access.NewPermissionSet(false, []string{
		"members:edit",
		"projects:create",
		"attachments:create",
		"tasks:assign",
	}))

	r.True(snapshot.CanManageMembers())
	r.True(snapshot.CanCreateProjects())
	r.True(snapshot.CanUploadDocuments())
	r.True(snapshot.CanAssignTasks())

	empty := access.NewSnapshot(access.NewPermissionSet(false, nil))

	r.False(empty.CanManageMembers())
	r.False(empty.CanCreateProjects())
	r.False(empty.CanUploadDocuments())
	r.False(empty.CanAssignTasks())
}

func TestProjectAccess_TriState(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	var a access.ProjectAccess

	r.True(a.IsLoading())
	r.False(a.CanView())
	r.False(a.CanEdit())
	r.False(a.CanAdmin())

	a.View = access.Bool(true)
	a.Edit = access.Bool(false)

	// Admin still unresolved.
	r.True(a.IsLoading())
	r.True(a.CanView())
	r.False(a.CanEdit())

	a.Admin = access.Bool(true)

	r.False(a.IsLoading())
	r.True(a.CanAdmin())
}
