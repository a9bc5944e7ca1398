package service

import (
	"context"
	"fmt"

	"github.com/samandr77/stroika/internal/entity"
)

// GlobalSearch searches the requested category (or all of them) over
// in-memory snapshots, up to entity.SearchLimit results per category.
func (s *Service) GlobalSearch(ctx context.Context, category entity.SearchCategory, query string) (entity.SearchResults, error) {
	if !category.IsValid() {
		return entity.SearchResults{}, fmt.Errorf("%w: category %q", entity.ErrIncorrectRequestBody, category)
	}

	var (
		tasks    []entity.Task
		projects []entity.ConstructionProject
		members  []entity.User
		teams    []entity.Department

		err error
	)

	if category == entity.SearchCategoryAll || category == entity.SearchCategoryTasks {
		construction, err := s.repo.Tasks(ctx, true, nil)
		if err != nil {
			return entity.SearchResults{}, fmt.Errorf("list tasks: %w", err)
		}

		generic, err := s.repo.Tasks(ctx, false, nil)
		if err != nil {
			return entity.SearchResults{}, fmt.Errorf("list issues: %w", err)
		}

		tasks = append(construction, generic...)
	}

	if category == entity.SearchCategoryAll || category == entity.SearchCategoryProjects {
		projects, err = s.repo.Projects(ctx, false)
		if err != nil {
			return entity.SearchResults{}, fmt.Errorf("list projects: %w", err)
		}
	}

	if category == entity.SearchCategoryAll || category == entity.SearchCategoryMembers {
		members, err = s.repo.Users(ctx)
		if err != nil {
			return entity.SearchResults{}, fmt.Errorf("list users: %w", err)
		}
	}

	if category == entity.SearchCategoryAll || category == entity.SearchCategoryTeams {
		teams, err = s.repo.Departments(ctx)
		if err != nil {
			return entity.SearchResults{}, fmt.Errorf("list departments: %w", err)
		}
	}

	return entity.GlobalSearch(category, query, tasks, projects, members, teams), nil
}
