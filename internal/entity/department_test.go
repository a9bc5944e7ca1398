package entity_test

import (
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"
	"github.com/samandr77/stroika/internal/entity"
)

func TestBuildDepartmentTree(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	rootID := uuid.Must(uuid.NewV4())
	childID := uuid.Must(uuid.NewV4())
	grandchildID := uuid.Must(uuid.NewV4())
	secondRootID := uuid.Must(uuid.NewV4())

	departments := []entity.Department{
		{ID: rootID, Name: "construction"},
		{ID: childID, Name: "site_a", ParentID: &rootID},
		{ID: grandchildID, Name: "foundation_crew", ParentID: &childID},
		{ID: secondRootID, Name: "accounting"},
	}

	roots, err := entity.BuildDepartmentTree(departments)
	r.NoError(err)
	r.Len(roots, 2)

	r.Equal(rootID, roots[0].ID)
	r.Len(roots[0].Children, 1)
	r.Equal(childID, roots[0].Children[0].ID)
	r.Len(roots[0].Children[0].Children, 1)
	r.Equal(grandchildID, roots[0].Children[0].Children[0].ID)

	r.Equal(secondRootID, roots[1].ID)
	r.Empty(roots[1].Children)
}

func TestBuildDepartmentTree_MissingParentBecomesRoot(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	missingParent := uuid.Must(uuid.NewV4())
	orphanID := uuid.Must(uuid.NewV4())

	roots, err := entity.BuildDepartmentTree([]entity.Department{
		{ID: orphanID, Name: "orphan", ParentID: &missingParent},
	})
	r.NoError(err)
	r.Len(roots, 1)
	r.Equal(orphanID, roots[0].ID)
}

func TestBuildDepartmentTree_Cycle(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	aID := uuid.Must(uuid.NewV4())
	bID := uuid.Must(uuid.NewV4())

	_, err := entity.BuildDepartmentTree([]entity.Department{
		{ID: aID, Name: "a", ParentID: &bID},
		{ID: bID, Name: "b", ParentID: &aID},
	})
	r.ErrorIs(err, entity.ErrDepartmentCycle)
}

func TestBuildDepartmentTree_Empty(t *testing.T) {
	t.Parallel()

	roots, err := entity.BuildDepartmentTree(nil)
	require.NoError(t, err)
	require.Empty(t, roots)
}

func TestAncestorChain(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	rootID := uuid.Must(uuid.NewV4())
	middleID := uuid.Must(uuid.NewV4())
	leafID := uuid.Must(uuid.NewV4())

	byID := entity.DepartmentsByID([]entity.Department{
		{ID: rootID, Name: "company"},
		{ID: middleID, Name: "division", ParentID: &rootID},
		{ID: leafID, Name: "crew", ParentID: &middleID},
	})

	chain, err := entity.AncestorChain(byID, leafID)
	r.NoError(err)
	r.Len(chain, 3)
	r.Equal(rootID, chain[0].ID)
	r.Equal(middleID, chain[1].ID)
	r.Equal(leafID, chain[2].ID)
}

func TestAncestorChain_UnknownStart(t *testing.T) {
	t.Parallel()

	_, err := entity.AncestorChain(map[uuid.UUID]entity.Department{}, uuid.Must(uuid.NewV4()))
	require.ErrorIs(t, err, entity.ErrNotFound)
}

func TestAncestorChain_Cycle(t *testing.T) {
	t.Parallel()

	aID := uuid.Must(uuid.NewV4())
	bID := uuid.Must(uuid.NewV4())

	byID := entity.DepartmentsByID([]entity.Department{
		{ID: aID, ParentID: &bID},
		{ID: bID, ParentID: &aID},
	})

	_, err := entity.AncestorChain(byID, aID)
	require.ErrorIs(t, err, entity.ErrDepartmentCycle)
}
