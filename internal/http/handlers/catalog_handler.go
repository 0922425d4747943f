package handlers

import (
	"strconv"
	"strings"

	"breezehire/internal/catalog"
	applog "breezehire/internal/log"
	"breezehire/internal/services"
	"breezehire/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type CatalogHandler struct {
	Catalog *services.CatalogService
}

// Browse serves /catalog. The ?search= parameter pre-populates the
// text filter (the navbar search box links here); category, location,
// availability, price bucket and sort arrive as query params too.
func (h *CatalogHandler) Browse(c *fiber.Ctx) error {
	q := catalog.Query{Sort: sortKey(c.Query("sort"))}

	if raw := c.Query("search"); strings.TrimSpace(raw) != "" {
		s, ok := validate.Q(raw)
		if !ok {
			applog.Security(c, "validation.fail", map[string]any{"field": "search", "value": raw})
			return badFilter(c, "Enter a valid keyword (letters/numbers only)")
		}
		q.Search = s
	}
	if cat := strings.TrimSpace(c.Query("category")); cat != "" {
		if _, ok := validate.ID(cat); !ok {
			applog.Security(c, "validation.fail", map[string]any{"field": "category"})
			return badFilter(c, "Invalid category")
		}
		q.Category = cat
	}
	if loc := strings.TrimSpace(c.Query("location")); loc != "" {
		q.Location = loc
	}
	if avail := strings.TrimSpace(c.Query("availability")); avail != "" {
		a, ok := validate.Availability(avail)
		if !ok {
			applog.Security(c, "validation.fail", map[string]any{"field": "availability"})
			return badFilter(c, "Invalid filter")
		}
		q.Availability = a
	}
	q.Price = priceBucket(c.Query("price"))

	products, cats, err := h.Catalog.Browse(q)
	if err != nil {
		applog.Error(c, "catalog.browse", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load the catalog. Please retry."})
	}

	return render(c, "catalog", fiber.Map{
		"Products": products, "Categories": cats, "Count": len(products),
		"Search": q.Search, "Category": q.Category, "Location": q.Location,
		"Availability": q.Availability, "Sort": q.Sort, "Price": c.Query("price"),
	})
}

// BuyRent serves /buy-rent: the same engine with a mode toggle. Rent
// mode lists rentable items, buy mode sellable ones.
func (h *CatalogHandler) BuyRent(c *fiber.Ctx) error {
	mode := c.Query("mode", "rent")
	if mode != "buy" {
		mode = "rent"
	}

	q := catalog.Query{Sort: sortKey(c.Query("sort"))}
	if raw := c.Query("search"); strings.TrimSpace(raw) != "" {
		if s, ok := validate.Q(raw); ok {
			q.Search = s
		}
	}

	products, _, err := h.Catalog.Browse(q)
	if err != nil {
		applog.Error(c, "buyrent.browse", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load the catalog. Please retry."})
	}

	filtered := products[:0:0]
	for _, p := range products {
		if (mode == "rent" && p.Rentable()) || (mode == "buy" && p.Sellable()) {
			filtered = append(filtered, p)
		}
	}

	return render(c, "buyrent", fiber.Map{
		"Mode": mode, "Products": filtered, "Count": len(filtered),
		"Search": q.Search, "Sort": q.Sort,
	})
}

// badFilter re-renders the catalog page with an inline error and an
// empty result set. The full key set goes along so the template never
// sees a missing field.
func badFilter(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).Render("catalog", fiber.Map{
		"Err": msg, "Products": nil, "Categories": nil, "Count": 0,
		"Search": "", "Category": "", "Location": "",
		"Availability": "", "Sort": catalog.SortName, "Price": "",
	})
}

func sortKey(s string) string {
	switch s {
	case catalog.SortPriceLow, catalog.SortPriceHigh:
		return s
	}
	return catalog.SortName
}

// priceBucket parses "min-max" ("5000-" = unbounded max). Garbage
// degrades to no price filter rather than an error.
func priceBucket(s string) *catalog.PriceRange {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	parts := strings.SplitN(s, "-", 2)
	min, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return nil
	}
	pr := &catalog.PriceRange{Min: min}
	if len(parts) == 2 && parts[1] != "" {
		max, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return nil
		}
		pr.Max = &max
	}
	return pr
}
