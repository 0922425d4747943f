package handlers

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"breezehire/internal/domain"
	applog "breezehire/internal/log"
	"breezehire/internal/services"
	"breezehire/internal/validate"

	"github.com/gofiber/fiber/v2"
)

// AdminHandler serves the server-rendered admin pages. They call the
// same ProductAdminService as the JSON API, so either surface sees the
// other's writes on the next load.
type AdminHandler struct {
	Admin   *services.ProductAdminService
	Booking *services.BookingService
}

// GET /admin
func (h *AdminHandler) Dashboard(c *fiber.Ctx) error {
	products, err := h.Admin.List()
	if err != nil {
		applog.Error(c, "admin.products.list.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load products"})
	}
	return render(c, "admin_products", fiber.Map{"Products": products})
}

// GET /admin/products/new and /admin/products/:id/edit
func (h *AdminHandler) ProductForm(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return render(c, "admin_product_form", fiber.Map{"P": domain.Product{}, "IsNew": true})
	}
	p, err := h.Admin.Get(id)
	if err != nil {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Product not found"})
	}
	return render(c, "admin_product_form", fiber.Map{"P": p, "IsNew": false})
}

// POST /admin/products and POST /admin/products/:id
func (h *AdminHandler) SaveProduct(c *fiber.Ctx) error {
	p, msg := productFromForm(c)
	if msg != "" {
		applog.Security(c, "validation.fail", map[string]any{"form": "admin_product", "reason": msg})
		return c.Status(400).SendString(msg)
	}

	id := c.Params("id")
	var err error
	if id == "" {
		var created domain.Product
		created, err = h.Admin.Create(p)
		id = created.ID
	} else {
		_, err = h.Admin.Update(id, p)
	}
	if errors.Is(err, services.ErrProductNotFound) {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Product not found"})
	}
	if err != nil {
		applog.Error(c, "admin.products.save.fail", err, map[string]any{"id": id})
		return c.Status(400).SendString("could not save product")
	}
	applog.Audit(c, "admin.products.save", map[string]any{"id": id})
	return c.Redirect("/admin")
}

// POST /admin/products/:id/delete
func (h *AdminHandler) DeleteProduct(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(400).SendString("missing id")
	}
	if err := h.Admin.Delete(id); err != nil {
		applog.Error(c, "admin.products.delete.fail", err, map[string]any{"id": id})
		return c.Status(400).SendString("could not delete product")
	}
	applog.Audit(c, "admin.products.delete", map[string]any{"id": id})
	return c.Redirect("/admin")
}

// GET /admin/bookings
func (h *AdminHandler) Bookings(c *fiber.Ctx) error {
	leads, err := h.Booking.Latest(100)
	if err != nil {
		applog.Error(c, "admin.bookings.list.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load bookings"})
	}
	return render(c, "admin_bookings", fiber.Map{"Leads": leads})
}

// productFromForm maps the admin form to a product. Images, features
// and locations arrive newline-separated; specs as "Label: value"
// lines; rent prices as three optional numeric fields.
func productFromForm(c *fiber.Ctx) (domain.Product, string) {
	p := domain.Product{
		Name:        strings.TrimSpace(c.FormValue("name")),
		Description: strings.TrimSpace(c.FormValue("description")),
		Category:    strings.TrimSpace(c.FormValue("category")),
	}
	if p.Name == "" {
		return p, "name is required"
	}
	if p.Category == "" {
		return p, "category is required"
	}

	avail, ok := validate.Availability(c.FormValue("availability", domain.Available))
	if !ok {
		return p, "invalid availability"
	}
	p.Availability = avail

	images := splitLines(c.FormValue("images"))
	if b, err := json.Marshal(images); err == nil {
		p.ImagesJSON = string(b)
	}

	if raw := strings.TrimSpace(c.FormValue("buy_price")); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v < 0 {
			return p, "invalid buy price"
		}
		p.BuyPrice = &v
	}

	prices := map[string]float64{}
	for _, tier := range []string{domain.Daily, domain.Weekly, domain.Monthly} {
		raw := strings.TrimSpace(c.FormValue("rent_" + tier))
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v < 0 {
			return p, "invalid " + tier + " rent price"
		}
		prices[tier] = v
	}
	if len(prices) > 0 {
		if b, err := json.Marshal(prices); err == nil {
			v := string(b)
			p.RentPricesJSON = &v
		}
	}

	if features := splitLines(c.FormValue("features")); len(features) > 0 {
		if b, err := json.Marshal(features); err == nil {
			v := string(b)
			p.FeaturesJSON = &v
		}
	}
	if locs := splitLines(c.FormValue("locations")); len(locs) > 0 {
		if b, err := json.Marshal(locs); err == nil {
			v := string(b)
			p.LocationsJSON = &v
		}
	}
	if specs := parseSpecs(c.FormValue("specifications")); len(specs) > 0 {
		if b, err := json.Marshal(specs); err == nil {
			v := string(b)
			p.SpecsJSON = &v
		}
	}
	return p, ""
}

func splitLines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}

func parseSpecs(s string) map[string]string {
	out := map[string]string{}
	for _, line := range splitLines(s) {
		k, v, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		if k, v = strings.TrimSpace(k), strings.TrimSpace(v); k != "" && v != "" {
			out[k] = v
		}
	}
	return out
}
