package entity_test

import (
	"fmt"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"
	"github.com/samandr77/stroika/internal/entity"
)

func TestGlobalSearch_Categories(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	tasks := []entity.Task{{ID: uuid.Must(uuid.NewV4()), Title: "Заливка фундамента"}}
	projects := []entity.ConstructionProject{{ID: uuid.Must(uuid.NewV4()), Name: "ЖК Фундаментальный"}}
	members := []entity.User{{ID: uuid.Must(uuid.NewV4()), Name: "Иван Фундаментов"}}
	teams := []entity.Department{{ID: uuid.Must(uuid.NewV4()), DisplayName: "Отдел фундаментов"}}

	all := entity.GlobalSearch(entity.SearchCategoryAll, "фундамент", tasks, projects, members, teams)
	r.Len(all.Tasks, 1)
	r.Len(all.Projects, 1)
	r.Len(all.Members, 1)
	r.Len(all.Teams, 1)

	onlyTasks := entity.GlobalSearch(entity.SearchCategoryTasks, "фундамент", tasks, projects, members, teams)
	r.Len(onlyTasks.Tasks, 1)
	r.Empty(onlyTasks.Projects)
	r.Empty(onlyTasks.Members)
	r.Empty(onlyTasks.Teams)

	noMatch := entity.GlobalSearch(entity.SearchCategoryAll, "котлован", tasks, projects, members, teams)
	r.Empty(noMatch.Tasks)
	r.Empty(noMatch.Projects)
	r.Empty(noMatch.Members)
	r.Empty(noMatch.Teams)
}

func TestGlobalSearch_LimitPerCategory(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	var (
		tasks    []entity.Task
		projects []entity.ConstructionProject
	)

	for i := 0; i < entity.SearchLimit+5; i++ {
		tasks = append(tasks, entity.Task{
			ID:    uuid.Must(uuid.NewV4()),
			Title: fmt.Sprintf("смета %d", i),
		})
		projects = append(projects, entity.ConstructionProject{
			ID:   uuid.Must(uuid.NewV4()),
			Name: fmt.Sprintf("смета %d", i),
		})
	}

	res := entity.GlobalSearch(entity.SearchCategoryAll, "смета", tasks, projects, nil, nil)
	r.Len(res.Tasks, entity.SearchLimit)
	r.Len(res.Projects, entity.SearchLimit)
}

func TestGlobalSearch_EmptyQueryMatchesAll(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	members := []entity.User{
		{ID: uuid.Must(uuid.NewV4()), Name: "a"},
		{ID: uuid.Must(uuid.NewV4()), Name: "b"},
	}

	res := entity.GlobalSearch(entity.SearchCategoryMembers, "   ", nil, nil, members, nil)
	r.Len(res.Members, 2)
}

func TestSearchCategory_IsValid(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	r.True(entity.SearchCategoryAll.IsValid())
	r.True(entity.SearchCategoryTeams.IsValid())
	r.False(entity.SearchCategory("documents").IsValid())
	r.False(entity.SearchCategory("").IsValid())
}
