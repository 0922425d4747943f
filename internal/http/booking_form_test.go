package handlers_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"
)

func formReq(values url.Values) *http.Request {
	req := httptest.NewRequest("POST", "/booking", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func validBooking() url.Values {
	return url.Values{
		"name":       {"Asha Kulkarni"},
		"email":      {"asha@example.com"},
		"phone":      {"+91 9999999999"},
		"location":   {"Pune"},
		"product_id": {"7"},
		"duration":   {"weekly"},
		"start_date": {time.Now().AddDate(0, 0, 2).Format("2006-01-02")},
		"message":    {"deliver before noon"},
	}
}

func TestBookingFormPreselectsProduct(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/booking?product=7", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("status %d", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "White Mist Fan") {
		t.Fatal("form does not list the rentable catalog")
	}
}

func TestBookingSubmitConfirms(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(formReq(validBooking()))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("status %d", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "Booking request received") {
		t.Fatalf("no confirmation in response: %s", body)
	}
}

func TestBookingSubmitMissingFieldReRendersForm(t *testing.T) {
	app := newTestApp(t)

	v := validBooking()
	v.Set("phone", "   ")
	resp, err := app.Test(formReq(v))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != 400 {
		t.Fatalf("status %d", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "Please fill in all required fields.") {
		t.Fatalf("missing inline error: %s", body)
	}
}

func TestBookingSubmitFormatErrors(t *testing.T) {
	app := newTestApp(t)

	cases := []struct {
		field, value, wantMsg string
	}{
		{"email", "not-an-email", "Enter a valid email address."},
		{"phone", "call me", "Enter a valid phone number."},
		{"duration", "hourly", "Invalid rental duration."},
		{"start_date", "2001-01-01", "Start date must be today or later."},
	}
	for _, tc := range cases {
		v := validBooking()
		v.Set(tc.field, tc.value)
		resp, err := app.Test(formReq(v))
		if err != nil {
			t.Fatal(err)
		}
		body, _ := io.ReadAll(resp.Body)
		if resp.StatusCode != 400 || !strings.Contains(string(body), tc.wantMsg) {
			t.Errorf("%s=%q: status=%d body missing %q", tc.field, tc.value, resp.StatusCode, tc.wantMsg)
		}
	}
}

func TestBookingSubmitStorageFailure(t *testing.T) {
	app := newTestApp(t)

	// valid shape but the product does not exist, so the store step fails
	v := validBooking()
	v.Set("product_id", "no-such-product")
	resp, err := app.Test(formReq(v))
	if err != nil {
		t.Fatal(err)
	}
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "We could not record your booking.") {
		t.Fatalf("failed submit did not surface retry message: %s", body)
	}
}
