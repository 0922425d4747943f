package repos

import (
	"breezehire/internal/domain"

	"github.com/jmoiron/sqlx"
)

type FAQRepo struct{ db *sqlx.DB }

func NewFAQRepo(db *sqlx.DB) *FAQRepo { return &FAQRepo{db: db} }

func (r *FAQRepo) List() ([]domain.FAQ, error) {
	var out []domain.FAQ
	err := r.db.Select(&out, `
	  SELECT id, question, answer, category
	  FROM faqs
	  ORDER BY CAST(id AS INTEGER)
	`)
	return out, err
}
