package entity_test

import (
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"
	"github.com/samandr77/stroika/internal/entity"
)

func TestFilterTasks(t *testing.T) { //nolint:funlen
	t.Parallel()

	statusNew := uuid.Must(uuid.NewV4())
	statusDone := uuid.Must(uuid.NewV4())
	priorityHigh := uuid.Must(uuid.NewV4())
	priorityLow := uuid.Must(uuid.NewV4())
	labelID := uuid.Must(uuid.NewV4())
	projectID := uuid.Must(uuid.NewV4())
	assigneeID := uuid.Must(uuid.NewV4())

	assigned := entity.Task{
		ID:         uuid.Must(uuid.NewV4()),
		StatusID:   statusNew,
		PriorityID: priorityHigh,
		AssigneeID: &assigneeID,
		LabelIDs:   []uuid.UUID{labelID},
		ProjectID:  &projectID,
	}

	unassigned := entity.Task{
		ID:         uuid.Must(uuid.NewV4()),
		StatusID:   statusDone,
		PriorityID: priorityLow,
	}

	tasks := []entity.Task{assigned, unassigned}

	tests := []struct {
		name   string
		filter entity.TaskFilter
		want   []entity.Task
	}{
		{
			name:   "empty filter matches everything",
			filter: entity.TaskFilter{},
			want:   tasks,
		},
		{
			name:   "status facet",
			filter: entity.TaskFilter{Statuses: []uuid.UUID{statusNew}},
			want:   []entity.Task{assigned},
		},
		{
			name: "values within a facet are OR-combined",
			filter: entity.TaskFilter{
				Statuses: []uuid.UUID{statusNew, statusDone},
			},
			want: tasks,
		},
		{
			name: "facets are AND-combined",
			filter: entity.TaskFilter{
				Statuses:   []uuid.UUID{statusNew},
				Priorities: []uuid.UUID{priorityLow},
			},
			want: []entity.Task{},
		},
		{
			name:   "assignee facet by id",
			filter: entity.TaskFilter{Assignees: []string{assigneeID.String()}},
			want:   []entity.Task{assigned},
		},
		{
			name:   "unassigned sentinel",
			filter: entity.TaskFilter{Assignees: []string{entity.AssigneeUnassigned}},
			want:   []entity.Task{unassigned},
		},
		{
			name: "sentinel mixes with ids",
			filter: entity.TaskFilter{
				Assignees: []string{entity.AssigneeUnassigned, assigneeID.String()},
			},
			want: tasks,
		},
		{
			name:   "label intersection",
			filter: entity.TaskFilter{Labels: []uuid.UUID{labelID}},
			want:   []entity.Task{assigned},
		},
		{
			name:   "project facet excludes projectless tasks",
			filter: entity.TaskFilter{Projects: []uuid.UUID{projectID}},
			want:   []entity.Task{assigned},
		},
		{
			name:   "unknown value matches nothing",
			filter: entity.TaskFilter{Labels: []uuid.UUID{uuid.Must(uuid.NewV4())}},
			want:   []entity.Task{},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tt.want, entity.FilterTasks(tasks, tt.filter))
		})
	}
}

func TestTasksByStatus(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	statusA := uuid.Must(uuid.NewV4())
	statusB := uuid.Must(uuid.NewV4())

	first := entity.Task{ID: uuid.Must(uuid.NewV4()), StatusID: statusA, Title: "first"}
	second := entity.Task{ID: uuid.Must(uuid.NewV4()), StatusID: statusB, Title: "second"}
	third := entity.Task{ID: uuid.Must(uuid.NewV4()), StatusID: statusA, Title: "third"}

	buckets := entity.TasksByStatus([]entity.Task{first, second, third})

	r.Len(buckets, 2)
	// Input order is preserved within a bucket.
	r.Equal([]entity.Task{first, third}, buckets[statusA])
	r.Equal([]entity.Task{second}, buckets[statusB])
}

func TestNormalizeQuery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{in: "", want: ""},
		{in: "   ", want: ""},
		{in: "Фундамент", want: "фундамент"},
		{in: "  Заливка   Фундамента  ", want: "заливка фундамента"},
		{in: "FOO\t bar\nBAZ", want: "foo bar baz"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tt.want, entity.NormalizeQuery(tt.in))
		})
	}
}

func TestSearchTasks(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	foundation := entity.Task{
		ID:    uuid.Must(uuid.NewV4()),
		Title: "Заливка фундамента",
	}
	roof := entity.Task{
		ID:          uuid.Must(uuid.NewV4()),
		Title:       "Кровля",
		Description: "монтаж стропил и фундаментных анкеров",
	}
	byIdent := entity.Task{
		ID:         uuid.Must(uuid.NewV4()),
		Identifier: "СТРФ-042",
		Title:      "Прочее",
	}

	tasks := []entity.Task{foundation, roof, byIdent}

	r.Equal([]entity.Task{foundation, roof}, entity.SearchTasks(tasks, "  ФУНДАМЕНТ"))
	r.Equal([]entity.Task{byIdent}, entity.SearchTasks(tasks, "стрф-042"))
	r.Equal(tasks, entity.SearchTasks(tasks, "   "))
	r.Empty(entity.SearchTasks(tasks, "котлован"))
}
