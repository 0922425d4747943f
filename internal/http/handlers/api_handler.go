package handlers

import (
	"encoding/json"
	"errors"

	"breezehire/internal/domain"
	applog "breezehire/internal/log"
	"breezehire/internal/services"
	"breezehire/internal/validate"

	"github.com/gofiber/fiber/v2"
)

// APIHandler is the REST surface the admin dashboard consumes:
// GET/POST /api/v1/products, GET/PUT/DELETE /api/v1/products/:id.
// Every response uses the { success, data, count?, message? } envelope.
type APIHandler struct {
	Admin *services.ProductAdminService
}

// productJSON is the wire shape of a product, matching the shape the
// dashboard (and pkg/client) expect.
type productJSON struct {
	ID             string             `json:"_id,omitempty"`
	Name           string             `json:"name"`
	Description    string             `json:"description"`
	Category       string             `json:"category"`
	Images         []string           `json:"images"`
	BuyPrice       *float64           `json:"buyPrice,omitempty"`
	RentPrices     map[string]float64 `json:"rentPrices,omitempty"`
	Availability   string             `json:"availability"`
	Specifications map[string]string  `json:"specifications,omitempty"`
	Features       []string           `json:"features,omitempty"`
	Locations      []string           `json:"locations,omitempty"`
}

func toJSON(p domain.Product) productJSON {
	images := p.Images()
	if images == nil {
		images = []string{}
	}
	return productJSON{
		ID:             p.ID,
		Name:           p.Name,
		Description:    p.Description,
		Category:       p.Category,
		Images:         images,
		BuyPrice:       p.BuyPrice,
		RentPrices:     p.RentPrices(),
		Availability:   p.Availability,
		Specifications: p.Specifications(),
		Features:       p.Features(),
		Locations:      p.Locations(),
	}
}

func (in productJSON) toDomain() domain.Product {
	p := domain.Product{
		Name:         in.Name,
		Description:  in.Description,
		Category:     in.Category,
		BuyPrice:     in.BuyPrice,
		Availability: in.Availability,
	}
	if b, err := json.Marshal(in.Images); err == nil && in.Images != nil {
		p.ImagesJSON = string(b)
	} else {
		p.ImagesJSON = "[]"
	}
	if in.RentPrices != nil {
		if b, err := json.Marshal(in.RentPrices); err == nil {
			v := string(b)
			p.RentPricesJSON = &v
		}
	}
	if in.Specifications != nil {
		if b, err := json.Marshal(in.Specifications); err == nil {
			v := string(b)
			p.SpecsJSON = &v
		}
	}
	if in.Features != nil {
		if b, err := json.Marshal(in.Features); err == nil {
			v := string(b)
			p.FeaturesJSON = &v
		}
	}
	if in.Locations != nil {
		if b, err := json.Marshal(in.Locations); err == nil {
			v := string(b)
			p.LocationsJSON = &v
		}
	}
	return p
}

func fail(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"success": false, "data": nil, "message": msg})
}

// List handles GET /api/v1/products.
func (h *APIHandler) List(c *fiber.Ctx) error {
	products, err := h.Admin.List()
	if err != nil {
		applog.Error(c, "api.products.list", err, nil)
		return fail(c, fiber.StatusInternalServerError, "could not load products")
	}
	out := make([]productJSON, 0, len(products))
	for _, p := range products {
		out = append(out, toJSON(p))
	}
	return c.JSON(fiber.Map{"success": true, "data": out, "count": len(out)})
}

// Get handles GET /api/v1/products/:id.
func (h *APIHandler) Get(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return fail(c, fiber.StatusBadRequest, "invalid product id")
	}
	p, err := h.Admin.Get(id)
	if errors.Is(err, services.ErrProductNotFound) {
		return fail(c, fiber.StatusNotFound, "product not found")
	}
	if err != nil {
		applog.Error(c, "api.products.get", err, map[string]any{"id": id})
		return fail(c, fiber.StatusInternalServerError, "could not load product")
	}
	return c.JSON(fiber.Map{"success": true, "data": toJSON(p)})
}

// Create handles POST /api/v1/products (body: product minus id).
func (h *APIHandler) Create(c *fiber.Ctx) error {
	var in productJSON
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid JSON body")
	}
	if msg := checkPayload(in); msg != "" {
		return fail(c, fiber.StatusBadRequest, msg)
	}
	p, err := h.Admin.Create(in.toDomain())
	if err != nil {
		applog.Error(c, "api.products.create", err, nil)
		return fail(c, fiber.StatusInternalServerError, "could not create product")
	}
	applog.Audit(c, "api.products.create", map[string]any{"id": p.ID})
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": toJSON(p)})
}

// Update handles PUT /api/v1/products/:id (full replace of mutable fields).
func (h *APIHandler) Update(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return fail(c, fiber.StatusBadRequest, "invalid product id")
	}
	var in productJSON
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid JSON body")
	}
	if msg := checkPayload(in); msg != "" {
		return fail(c, fiber.StatusBadRequest, msg)
	}
	p, err := h.Admin.Update(id, in.toDomain())
	if errors.Is(err, services.ErrProductNotFound) {
		return fail(c, fiber.StatusNotFound, "product not found")
	}
	if err != nil {
		applog.Error(c, "api.products.update", err, map[string]any{"id": id})
		return fail(c, fiber.StatusInternalServerError, "could not update product")
	}
	applog.Audit(c, "api.products.update", map[string]any{"id": id})
	return c.JSON(fiber.Map{"success": true, "data": toJSON(p), "message": "product updated"})
}

// Delete handles DELETE /api/v1/products/:id.
func (h *APIHandler) Delete(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return fail(c, fiber.StatusBadRequest, "invalid product id")
	}
	err := h.Admin.Delete(id)
	if errors.Is(err, services.ErrProductNotFound) {
		return fail(c, fiber.StatusNotFound, "product not found")
	}
	if err != nil {
		applog.Error(c, "api.products.delete", err, map[string]any{"id": id})
		return fail(c, fiber.StatusInternalServerError, "could not delete product")
	}
	applog.Audit(c, "api.products.delete", map[string]any{"id": id})
	return c.JSON(fiber.Map{"success": true, "data": nil})
}

func checkPayload(in productJSON) string {
	if in.Name == "" {
		return "name is required"
	}
	if in.Category == "" {
		return "category is required"
	}
	if in.Availability != "" {
		if _, ok := validate.Availability(in.Availability); !ok {
			return "availability must be available, booked or out_of_stock"
		}
	}
	return ""
}
