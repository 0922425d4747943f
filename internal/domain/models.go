package domain

import "encoding/json"

// Availability states a product can be in.
const (
	Available  = "available"
	Booked     = "booked"
	OutOfStock = "out_of_stock"
)

// Rental duration tiers. These are the keys of a product's rental
// price mapping.
const (
	Daily   = "daily"
	Weekly  = "weekly"
	Monthly = "monthly"
)

type Product struct {
	ID             string   `db:"id"`
	Name           string   `db:"name"`
	Description    string   `db:"description"`
	Category       string   `db:"category"` // human label; see catalog.Slug
	ImagesJSON     string   `db:"images_json"`
	BuyPrice       *float64 `db:"buy_price"`        // NULL when not sellable
	RentPricesJSON *string  `db:"rent_prices_json"` // NULL when not rentable
	Availability   string   `db:"availability"`
	SpecsJSON      *string  `db:"specs_json"`
	FeaturesJSON   *string  `db:"features_json"`
	LocationsJSON  *string  `db:"locations_json"`
	CreatedAt      string   `db:"created_at"`
	UpdatedAt      string   `db:"updated_at"`
}

// Images decodes the stored image list. Malformed data degrades to nil,
// never an error; image sections in the UI are optional.
func (p Product) Images() []string {
	if p.ImagesJSON == "" {
		return nil
	}
	var out []string
	if err := json.Unmarshal([]byte(p.ImagesJSON), &out); err != nil {
		return nil
	}
	return out
}

// RentPrices returns the duration-tier price mapping, or nil when the
// product is not rentable (or the column is malformed).
func (p Product) RentPrices() map[string]float64 {
	if p.RentPricesJSON == nil || *p.RentPricesJSON == "" {
		return nil
	}
	var out map[string]float64
	if err := json.Unmarshal([]byte(*p.RentPricesJSON), &out); err != nil {
		return nil
	}
	return out
}

func (p Product) Specifications() map[string]string {
	if p.SpecsJSON == nil || *p.SpecsJSON == "" {
		return nil
	}
	var out map[string]string
	if err := json.Unmarshal([]byte(*p.SpecsJSON), &out); err != nil {
		return nil
	}
	return out
}

func (p Product) Features() []string {
	if p.FeaturesJSON == nil || *p.FeaturesJSON == "" {
		return nil
	}
	var out []string
	if err := json.Unmarshal([]byte(*p.FeaturesJSON), &out); err != nil {
		return nil
	}
	return out
}

func (p Product) Locations() []string {
	if p.LocationsJSON == nil || *p.LocationsJSON == "" {
		return nil
	}
	var out []string
	if err := json.Unmarshal([]byte(*p.LocationsJSON), &out); err != nil {
		return nil
	}
	return out
}

// Rentable reports whether the product carries a rental price mapping.
func (p Product) Rentable() bool { return p.RentPrices() != nil }

// Sellable reports whether the product carries a purchase price.
func (p Product) Sellable() bool { return p.BuyPrice != nil }

// BookingRequest is the lead record produced by the booking form.
type BookingRequest struct {
	ID        string `db:"id"`
	Name      string `db:"name"`
	Email     string `db:"email"`
	Phone     string `db:"phone"`
	Location  string `db:"location"`
	ProductID string `db:"product_id"`
	Duration  string `db:"duration"` // daily | weekly | monthly
	StartDate string `db:"start_date"`
	Message   string `db:"message"`
	CreatedAt string `db:"created_at"`
}

type Location struct {
	ID       string `db:"id"`
	Name     string `db:"name"`
	IsActive bool   `db:"is_active"`
}

type FAQ struct {
	ID       string `db:"id"`
	Question string `db:"question"`
	Answer   string `db:"answer"`
	Category string `db:"category"`
}
