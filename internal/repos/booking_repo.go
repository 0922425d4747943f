package repos

import (
	"breezehire/internal/domain"

	"github.com/jmoiron/sqlx"
)

type BookingRepo struct{ db *sqlx.DB }

func NewBookingRepo(db *sqlx.DB) *BookingRepo { return &BookingRepo{db: db} }

func (r *BookingRepo) Insert(b domain.BookingRequest) error {
	_, err := r.db.Exec(`
	  INSERT INTO bookings(id,name,email,phone,location,product_id,duration,start_date,message,created_at)
	  VALUES(?,?,?,?,?,?,?,?,?,CURRENT_TIMESTAMP)
	`, b.ID, b.Name, b.Email, b.Phone, b.Location, b.ProductID, b.Duration, b.StartDate, b.Message)
	return err
}

// Lead row shown on the admin bookings page (joined with product name).
type LeadRow struct {
	domain.BookingRequest
	ProductName string `db:"product_name"`
}

func (r *BookingRepo) ListLatest(limit int) ([]LeadRow, error) {
	if limit <= 0 {
		limit = 100
	}
	var out []LeadRow
	err := r.db.Select(&out, `
	  SELECT b.id, b.name, b.email, b.phone, b.location, b.product_id,
	         b.duration, b.start_date, b.message, b.created_at,
	         COALESCE(p.name,'(removed)') AS product_name
	  FROM bookings b
	  LEFT JOIN products p ON p.id = b.product_id
	  ORDER BY datetime(b.created_at) DESC
	  LIMIT ?
	`, limit)
	return out, err
}
