package handlers

import (
	"breezehire/internal/config"
	"breezehire/internal/repos"
	"breezehire/internal/services"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	PageHandler    *PageHandler
	CatalogHandler *CatalogHandler
	ProductHandler *ProductHandler
	BookingHandler *BookingHandler
	APIHandler     *APIHandler
	AdminHandler   *AdminHandler
	Sessions       *repos.SessionRepo
}

func NewDeps(db *sqlx.DB, cfg config.Config) *Deps {
	prodRepo := repos.NewProductRepo(db)
	bookRepo := repos.NewBookingRepo(db)
	locRepo := repos.NewLocationRepo(db)
	faqRepo := repos.NewFAQRepo(db)
	sessRepo := repos.NewSessionRepo(db)

	catalogSvc := services.NewCatalogService(prodRepo)
	bookingSvc := services.NewBookingService(bookRepo, prodRepo)
	adminSvc := services.NewProductAdminService(prodRepo)

	return &Deps{
		PageHandler:    &PageHandler{Catalog: catalogSvc, FAQs: faqRepo},
		CatalogHandler: &CatalogHandler{Catalog: catalogSvc},
		ProductHandler: &ProductHandler{Catalog: catalogSvc},
		BookingHandler: &BookingHandler{Catalog: catalogSvc, Booking: bookingSvc, Locs: locRepo},
		APIHandler:     &APIHandler{Admin: adminSvc},
		AdminHandler:   &AdminHandler{Admin: adminSvc, Booking: bookingSvc},
		Sessions:       sessRepo,
	}
}
