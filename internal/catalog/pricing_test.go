package catalog_test

import (
	"testing"

	"breezehire/internal/catalog"
	"breezehire/internal/domain"
)

// A tier missing from the mapping resolves to 0. This is the pinned
// behaviour for daily-only products; the UI renders 0 as "price on
// request".
func TestPriceForMissingTierResolvesToZero(t *testing.T) {
	p := domain.Product{ID: "5", Name: "Electric Heater", RentPricesJSON: s(`{"daily":500}`)}

	if price, ok := catalog.PriceFor(p, domain.Daily); !ok || price != 500 {
		t.Fatalf("daily: got (%v,%v)", price, ok)
	}
	if price, ok := catalog.PriceFor(p, domain.Weekly); !ok || price != 0 {
		t.Fatalf("weekly on daily-only product: got (%v,%v), want (0,true)", price, ok)
	}
	if price, ok := catalog.PriceFor(p, domain.Monthly); !ok || price != 0 {
		t.Fatalf("monthly on daily-only product: got (%v,%v), want (0,true)", price, ok)
	}
}

// No rental mapping at all: the resolver reports ok=false and leaves
// any buy-price fallback to the caller.
func TestPriceForWithoutMappingIsCallerFallback(t *testing.T) {
	p := domain.Product{ID: "1", Name: "Industrial Air Cooler", BuyPrice: f(450000)}
	if price, ok := catalog.PriceFor(p, domain.Daily); ok || price != 0 {
		t.Fatalf("unrentable product: got (%v,%v), want (0,false)", price, ok)
	}
}

func TestEffectivePrice(t *testing.T) {
	rentable := domain.Product{RentPricesJSON: s(`{"daily":800}`), BuyPrice: f(12000)}
	if price, ok := catalog.EffectivePrice(rentable); !ok || price != 800 {
		t.Fatalf("rentable: got (%v,%v), want daily rate", price, ok)
	}

	buyOnly := domain.Product{BuyPrice: f(15000)}
	if price, ok := catalog.EffectivePrice(buyOnly); !ok || price != 15000 {
		t.Fatalf("buy-only: got (%v,%v)", price, ok)
	}

	none := domain.Product{}
	if price, ok := catalog.EffectivePrice(none); ok || price != 0 {
		t.Fatalf("priceless: got (%v,%v), want (0,false)", price, ok)
	}

	// malformed JSON degrades to "no mapping", not an error
	bad := domain.Product{RentPricesJSON: s(`{not json`), BuyPrice: f(9000)}
	if price, ok := catalog.EffectivePrice(bad); !ok || price != 9000 {
		t.Fatalf("malformed mapping should fall back to buy price: got (%v,%v)", price, ok)
	}
}
