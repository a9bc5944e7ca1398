package repository

import (
	"context"

	"github.com/samandr77/stroika/internal/entity"
)

func (r *Repository) Statuses(ctx context.Context) ([]entity.Status, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, color, sort_order FROM statuses ORDER BY sort_order`)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var statuses []entity.Status

	for rows.Next() {
		var s entity.Status

		err = rows.Scan(&s.ID, &s.Name, &s.Color, &s.SortOrder)
		if err != nil {
			return nil, err
		}

		statuses = append(statuses, s)
	}

	return statuses, rows.Err()
}

func (r *Repository) Priorities(ctx context.Context) ([]entity.Priority, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, rank FROM priorities ORDER BY rank`)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var priorities []entity.Priority

	for rows.Next() {
		var p entity.Priority

		err = rows.Scan(&p.ID, &p.Name, &p.Rank)
		if err != nil {
			return nil, err
		}

		priorities = append(priorities, p)
	}

	return priorities, rows.Err()
}

func (r *Repository) Labels(ctx context.Context) ([]entity.Label, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, color FROM labels ORDER BY name`)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var labels []entity.Label

	for rows.Next() {
		var l entity.Label

		err = rows.Scan(&l.ID, &l.Name, &l.Color)
		if err != nil {
			return nil, err
		}

		labels = append(labels, l)
	}

	return labels, rows.Err()
}
