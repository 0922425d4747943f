package services

import (
	"breezehire/internal/domain"
	"breezehire/internal/repos"

	"github.com/google/uuid"
)

// BookingService persists submitted leads. It is the submission
// handler the booking flow hands its request to; its error return is
// what drives the flow's failed transition.
type BookingService struct {
	Bookings *repos.BookingRepo
	Prods    *repos.ProductRepo
}

func NewBookingService(bookings *repos.BookingRepo, prods *repos.ProductRepo) *BookingService {
	return &BookingService{Bookings: bookings, Prods: prods}
}

// Accept stores the lead. The referenced product must still exist;
// anything else about the request was validated upstream.
func (s *BookingService) Accept(req domain.BookingRequest) error {
	if _, err := s.Prods.Get(req.ProductID); err != nil {
		return err
	}
	req.ID = uuid.NewString()
	return s.Bookings.Insert(req)
}

func (s *BookingService) Latest(limit int) ([]repos.LeadRow, error) {
	return s.Bookings.ListLatest(limit)
}
