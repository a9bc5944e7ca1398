package entity

import "strings"

type SearchCategory string

const (
	SearchCategoryAll      SearchCategory = "all"
	SearchCategoryTasks    SearchCategory = "tasks"
	SearchCategoryProjects SearchCategory = "projects"
	SearchCategoryMembers  SearchCategory = "members"
	SearchCategoryTeams    SearchCategory = "teams"
)

func (c SearchCategory) IsValid() bool {
	switch c {
	case SearchCategoryAll, SearchCategoryTasks, SearchCategoryProjects,
		SearchCategoryMembers, SearchCategoryTeams:
		return true
	}

	return false
}

// SearchLimit caps the number of results returned per category.
const SearchLimit = 10

type SearchResults struct {
	Tasks    []Task                `json:"tasks,omitempty"`
	Projects []ConstructionProject `json:"projects,omitempty"`
	Members  []User                `json:"members,omitempty"`
	Teams    []Department          `json:"teams,omitempty"`
}

// GlobalSearch runs a normalized substring search independently per
// requested category. "all" runs every category.
func GlobalSearch(
	category SearchCategory,
	query string,
	tasks []Task,
	projects []ConstructionProject,
	members []User,
	teams []Department,
) SearchResults {
	q := NormalizeQuery(query)

	var res SearchResults

	if category == SearchCategoryAll || category == SearchCategoryTasks {
		res.Tasks = capTasks(SearchTasks(tasks, q))
	}

	if category == SearchCategoryAll || category == SearchCategoryProjects {
		for _, p := range projects {
			if matchesAny(q, p.Name, p.Client) {
				res.Projects = append(res.Projects, p)
				if len(res.Projects) == SearchLimit {
					break
				}
			}
		}
	}

	if category == SearchCategoryAll || category == SearchCategoryMembers {
		for _, u := range members {
			if matchesAny(q, u.Name, u.Email) {
				res.Members = append(res.Members, u)
				if len(res.Members) == SearchLimit {
					break
				}
			}
		}
	}

	if category == SearchCategoryAll || category == SearchCategoryTeams {
		for _, d := range teams {
			if matchesAny(q, d.Name, d.DisplayName) {
				res.Teams = append(res.Teams, d)
				if len(res.Teams) == SearchLimit {
					break
				}
			}
		}
	}

	return res
}

func matchesAny(normalizedQuery string, fields ...string) bool {
	if normalizedQuery == "" {
		return true
	}

	for _, f := range fields {
		if strings.Contains(NormalizeQuery(f), normalizedQuery) {
			return true
		}
	}

	return false
}

func capTasks(tasks []Task) []Task {
	if len(tasks) > SearchLimit {
		return tasks[:SearchLimit]
	}

	return tasks
}
