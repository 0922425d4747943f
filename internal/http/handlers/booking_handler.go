package handlers

import (
	"time"

	"breezehire/internal/booking"
	applog "breezehire/internal/log"
	"breezehire/internal/repos"
	"breezehire/internal/services"
	"breezehire/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type BookingHandler struct {
	Catalog *services.CatalogService
	Booking *services.BookingService
	Locs    *repos.LocationRepo
}

// Form serves /booking. The ?product= parameter pre-selects equipment;
// the same value is carried through the form so a post-submit reset
// restores it.
func (h *BookingHandler) Form(c *fiber.Ctx) error {
	pre := ""
	if raw := c.Query("product"); raw != "" {
		if id, ok := validate.ID(raw); ok {
			pre = id
		}
	}
	flow := booking.NewFlow(pre)
	return h.renderForm(c, flow, "")
}

// Submit handles the POST. Validation failures re-render the form in
// its editing state with the error inline; a storage failure lands the
// flow in failed, which the template offers to retry from.
func (h *BookingHandler) Submit(c *fiber.Ctx) error {
	pre := c.FormValue("preselected")
	flow := booking.NewFlow(pre)

	data := booking.FormData{
		Name:      c.FormValue("name"),
		Email:     c.FormValue("email"),
		Phone:     c.FormValue("phone"),
		Location:  c.FormValue("location"),
		ProductID: c.FormValue("product_id"),
		Duration:  c.FormValue("duration"),
		StartDate: c.FormValue("start_date"),
		Message:   c.FormValue("message"),
	}
	if err := flow.Update(data); err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("form not editable")
	}

	if msg := h.checkFormats(data); msg != "" {
		applog.Security(c, "validation.fail", map[string]any{"form": "booking"})
		return h.renderForm(c, flow, msg)
	}

	err := flow.Submit(h.Booking.Accept)
	switch flow.State() {
	case booking.Submitted:
		applog.Audit(c, "booking.accept", map[string]any{
			"product": data.ProductID, "duration": data.Duration, "start": data.StartDate,
		})
		return render(c, "booking_done", fiber.Map{"Preselected": pre})
	case booking.Failed:
		applog.Error(c, "booking.store.fail", err, map[string]any{"product": data.ProductID})
		flow.Reset()
		return h.renderForm(c, flow, "We could not record your booking. Please try again.")
	default:
		// presence check failed; still editing
		return h.renderForm(c, flow, "Please fill in all required fields.")
	}
}

func (h *BookingHandler) checkFormats(d booking.FormData) string {
	if d.Email != "" {
		if _, ok := validate.Email(d.Email); !ok {
			return "Enter a valid email address."
		}
	}
	if d.Phone != "" {
		if _, ok := validate.Phone(d.Phone); !ok {
			return "Enter a valid phone number."
		}
	}
	if d.Duration != "" {
		if _, ok := validate.Duration(d.Duration); !ok {
			return "Invalid rental duration."
		}
	}
	if d.StartDate != "" {
		if _, ok := validate.StartDate(d.StartDate, time.Now()); !ok {
			return "Start date must be today or later."
		}
	}
	return ""
}

func (h *BookingHandler) renderForm(c *fiber.Ctx, flow *booking.Flow, errMsg string) error {
	products, err := h.Catalog.RentableProducts()
	if err != nil {
		applog.Error(c, "booking.products.load", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load the booking form. Please retry."})
	}
	locs, err := h.Locs.ListActive()
	if err != nil {
		applog.Error(c, "booking.locations.load", err, nil)
		locs = nil // location select degrades to a free-text field
	}

	price, havePrice := flow.CurrentPrice(products)
	status := fiber.StatusOK
	if errMsg != "" {
		status = fiber.StatusBadRequest
	}
	c.Status(status)
	return render(c, "booking", fiber.Map{
		"Form": flow.Data(), "Preselected": c.FormValue("preselected", c.Query("product")),
		"Products": products, "Locations": locs,
		"Price": price, "HavePrice": havePrice,
		"Today": time.Now().Format("2006-01-02"),
		"Err":   errMsg,
	})
}
