package handlers

import (
	"sort"

	"breezehire/internal/catalog"
	"breezehire/internal/domain"
	applog "breezehire/internal/log"
	"breezehire/internal/services"
	"breezehire/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type ProductHandler struct {
	Catalog *services.CatalogService
}

// Detail serves /product/:id. A missing product is a rendered
// not-found state, never a redirect or a 500.
func (h *ProductHandler) Detail(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "product"})
		return c.Status(404).Render("notfound", fiber.Map{"Message": "This item is no longer available"})
	}
	p, err := h.Catalog.GetProduct(id)
	if err != nil || p.ID == "" {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "This item is no longer available"})
	}

	images := p.Images()
	sort.Strings(images)

	prices := map[string]float64{}
	if rp := p.RentPrices(); rp != nil {
		for _, tier := range []string{domain.Daily, domain.Weekly, domain.Monthly} {
			price, _ := catalog.PriceFor(p, tier)
			prices[tier] = price
		}
	}

	slug, _ := catalog.Slug(p.Category)
	return render(c, "product", fiber.Map{
		"P": p, "Images": images, "RentPrices": prices,
		"CategorySlug": slug, "CategoryLabel": catalog.Label(slug),
	})
}
