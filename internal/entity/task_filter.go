package entity

import (
	"strings"

	"github.com/gofrs/uuid/v5"
)

// AssigneeUnassigned is the sentinel value in an assignee facet that
// matches tasks with no assignee.
const AssigneeUnassigned = "unassigned"

// TaskFilter is a set of independent facets AND-combined together.
// Within a facet the values are OR-combined. An empty facet slice
// means "no constraint", never "match nothing".
type TaskFilter struct {
	Statuses   []uuid.UUID
	Assignees  []string
	Priorities []uuid.UUID
	Labels     []uuid.UUID
	Projects   []uuid.UUID
}

func FilterTasks(tasks []Task, f TaskFilter) []Task {
	out := make([]Task, 0, len(tasks))

	for _, t := range tasks {
		if matchesFilter(t, f) {
			out = append(out, t)
		}
	}

	return out
}

func matchesFilter(t Task, f TaskFilter) bool {
	if len(f.Statuses) > 0 && !containsUUID(f.Statuses, t.StatusID) {
		return false
	}

	if len(f.Assignees) > 0 && !matchesAssignee(t, f.Assignees) {
		return false
	}

	if len(f.Priorities) > 0 && !containsUUID(f.Priorities, t.PriorityID) {
		return false
	}

	if len(f.Labels) > 0 && !intersectsLabels(t, f.Labels) {
		return false
	}

	if len(f.Projects) > 0 {
		if t.ProjectID == nil || !containsUUID(f.Projects, *t.ProjectID) {
			return false
		}
	}

	return true
}

func matchesAssignee(t Task, assignees []string) bool {
	for _, a := range assignees {
		if a == AssigneeUnassigned {
			if t.AssigneeID == nil {
				return true
			}

			continue
		}

		if t.AssigneeID != nil && t.AssigneeID.String() == a {
			return true
		}
	}

	return false
}

func intersectsLabels(t Task, labels []uuid.UUID) bool {
	for _, id := range labels {
		if t.HasLabel(id) {
			return true
		}
	}

	return false
}

func containsUUID(ids []uuid.UUID, id uuid.UUID) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}

	return false
}

// TasksByStatus partitions tasks into one bucket per status id. The
// relative order of tasks within a bucket follows the input order
// (stable partition, no sorting).
func TasksByStatus(tasks []Task) map[uuid.UUID][]Task {
	buckets := make(map[uuid.UUID][]Task)

	for _, t := range tasks {
		buckets[t.StatusID] = append(buckets[t.StatusID], t)
	}

	return buckets
}

// NormalizeQuery trims, lower-cases and collapses internal whitespace
// runs to a single space.
func NormalizeQuery(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// SearchTasks returns tasks whose title, description or identifier
// contain the normalized query as a substring.
func SearchTasks(tasks []Task, query string) []Task {
	q := NormalizeQuery(query)
	if q == "" {
		return tasks
	}

	out := make([]Task, 0, len(tasks))

	for _, t := range tasks {
		if strings.Contains(NormalizeQuery(t.Title), q) ||
			strings.Contains(NormalizeQuery(t.Description), q) ||
			strings.Contains(NormalizeQuery(t.Identifier), q) {
			out = append(out, t)
		}
	}

	return out
}
