package handlers

import (
	"breezehire/internal/catalog"
	applog "breezehire/internal/log"
	"breezehire/internal/repos"
	"breezehire/internal/services"

	"github.com/gofiber/fiber/v2"
)

// PageHandler serves the mostly-static marketing pages.
type PageHandler struct {
	Catalog *services.CatalogService
	FAQs    *repos.FAQRepo
}

func (h *PageHandler) Home(c *fiber.Ctx) error {
	// The home hero shows a slice of the catalog sorted by name.
	products, _, err := h.Catalog.Browse(catalog.Query{})
	if err != nil {
		applog.Error(c, "home.load", err, nil)
		products = nil // fail soft: render the page without the strip
	}
	if len(products) > 6 {
		products = products[:6]
	}
	return render(c, "home", fiber.Map{"Products": products})
}

func (h *PageHandler) About(c *fiber.Ctx) error {
	return render(c, "about", fiber.Map{})
}

func (h *PageHandler) Contact(c *fiber.Ctx) error {
	return render(c, "contact", fiber.Map{})
}

func (h *PageHandler) FAQ(c *fiber.Ctx) error {
	faqs, err := h.FAQs.List()
	if err != nil {
		applog.Error(c, "faq.load", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load FAQs. Please retry."})
	}
	return render(c, "faq", fiber.Map{"FAQs": faqs})
}
