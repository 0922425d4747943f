package booking_test

import (
	"errors"
	"strings"
	"testing"

	"breezehire/internal/booking"
	"breezehire/internal/domain"
)

func s(v string) *string { return &v }

func filled(productID string) booking.FormData {
	return booking.FormData{
		Name:      "Asha Kulkarni",
		Email:     "asha@example.com",
		Phone:     "+91 9999999999",
		Location:  "Pune",
		ProductID: productID,
		Duration:  domain.Daily,
		StartDate: "2031-05-01",
		Message:   "deliver before noon",
	}
}

func TestSubmitHappyPath(t *testing.T) {
	flow := booking.NewFlow("")
	if err := flow.Update(filled("7")); err != nil {
		t.Fatal(err)
	}

	var got domain.BookingRequest
	err := flow.Submit(func(req domain.BookingRequest) error {
		got = req
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if flow.State() != booking.Submitted {
		t.Fatalf("state = %v, want submitted", flow.State())
	}
	if got.ProductID != "7" || got.Name != "Asha Kulkarni" || got.Duration != domain.Daily {
		t.Fatalf("handler got %+v", got)
	}
}

func TestSubmitBlocksOnMissingRequiredField(t *testing.T) {
	flow := booking.NewFlow("")
	d := filled("7")
	d.Phone = "  "
	if err := flow.Update(d); err != nil {
		t.Fatal(err)
	}

	called := false
	err := flow.Submit(func(domain.BookingRequest) error { called = true; return nil })
	if err == nil || !strings.Contains(err.Error(), "phone") {
		t.Fatalf("want missing-phone error, got %v", err)
	}
	if called {
		t.Fatal("handler called despite failed presence check")
	}
	if flow.State() != booking.Editing {
		t.Fatalf("state = %v, want editing (still mutable)", flow.State())
	}
	// message is optional: clearing it must not block
	d = filled("7")
	d.Message = ""
	if err := flow.Update(d); err != nil {
		t.Fatal(err)
	}
	if err := flow.Submit(func(domain.BookingRequest) error { return nil }); err != nil {
		t.Fatalf("optional message blocked submit: %v", err)
	}
}

func TestFailedTransitionOnHandlerError(t *testing.T) {
	flow := booking.NewFlow("")
	if err := flow.Update(filled("3")); err != nil {
		t.Fatal(err)
	}

	boom := errors.New("store unavailable")
	if err := flow.Submit(func(domain.BookingRequest) error { return boom }); !errors.Is(err, boom) {
		t.Fatalf("want handler error surfaced, got %v", err)
	}
	if flow.State() != booking.Failed {
		t.Fatalf("state = %v, want failed", flow.State())
	}
	if flow.FailReason() != "store unavailable" {
		t.Fatalf("fail reason = %q", flow.FailReason())
	}

	// the form is locked while not editing
	if err := flow.Update(filled("3")); !errors.Is(err, booking.ErrNotEditing) {
		t.Fatalf("update in failed state: %v", err)
	}

	// reset recovers back to editing
	flow.Reset()
	if flow.State() != booking.Editing || flow.FailReason() != "" {
		t.Fatalf("reset from failed: state=%v reason=%q", flow.State(), flow.FailReason())
	}
}

func TestResetRestoresPreSelectedProduct(t *testing.T) {
	flow := booking.NewFlow("7")
	if flow.Data().ProductID != "7" {
		t.Fatalf("initial product = %q, want pre-selection", flow.Data().ProductID)
	}

	d := filled("7")
	d.Duration = domain.Weekly
	if err := flow.Update(d); err != nil {
		t.Fatal(err)
	}
	if err := flow.Submit(func(domain.BookingRequest) error { return nil }); err != nil {
		t.Fatal(err)
	}

	flow.Reset()
	got := flow.Data()
	if got.ProductID != "7" {
		t.Fatalf("reset product = %q, want pre-selected \"7\"", got.ProductID)
	}
	if got.Duration != domain.Daily {
		t.Fatalf("reset duration = %q, want default daily", got.Duration)
	}
	if got.Name != "" || got.Email != "" || got.Phone != "" || got.Location != "" ||
		got.StartDate != "" || got.Message != "" {
		t.Fatalf("reset left residue: %+v", got)
	}
}

func TestCurrentPriceFollowsSelection(t *testing.T) {
	products := []domain.Product{
		{ID: "4", Name: "Silver Mist Fan", RentPricesJSON: s(`{"daily":800,"weekly":4500}`)},
		{ID: "5", Name: "Electric Heater", RentPricesJSON: s(`{"daily":250}`)},
	}

	flow := booking.NewFlow("4")
	if price, ok := flow.CurrentPrice(products); !ok || price != 800 {
		t.Fatalf("initial price = (%v,%v), want daily 800", price, ok)
	}

	// changing duration recomputes
	d := flow.Data()
	d.Duration = domain.Weekly
	if err := flow.Update(d); err != nil {
		t.Fatal(err)
	}
	if price, _ := flow.CurrentPrice(products); price != 4500 {
		t.Fatalf("weekly price = %v", price)
	}

	// changing product recomputes against the new mapping; weekly is
	// absent there, so the pinned zero shows up
	d.ProductID = "5"
	if err := flow.Update(d); err != nil {
		t.Fatal(err)
	}
	if price, ok := flow.CurrentPrice(products); !ok || price != 0 {
		t.Fatalf("weekly on daily-only product = (%v,%v), want (0,true)", price, ok)
	}

	// no selection: no price
	flow2 := booking.NewFlow("")
	if _, ok := flow2.CurrentPrice(products); ok {
		t.Fatal("price derived with no product selected")
	}
}
