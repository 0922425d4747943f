package repos

import (
	"breezehire/internal/domain"

	"github.com/jmoiron/sqlx"
)

type LocationRepo struct{ db *sqlx.DB }

func NewLocationRepo(db *sqlx.DB) *LocationRepo { return &LocationRepo{db: db} }

// ListActive returns the cities offered in the booking form.
func (r *LocationRepo) ListActive() ([]domain.Location, error) {
	var out []domain.Location
	err := r.db.Select(&out, `
	  SELECT id, name, is_active
	  FROM locations
	  WHERE is_active = 1
	  ORDER BY name
	`)
	return out, err
}
