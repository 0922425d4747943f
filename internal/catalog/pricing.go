package catalog

import "breezehire/internal/domain"

// PriceFor resolves the rental price of p for a duration tier.
//
// A tier absent from the mapping resolves to 0. That mirrors the
// long-standing site behaviour for products quoted daily-only, and the
// booking form renders it as "price on request"; callers must not
// treat 0 as a real quote. ok is false when the product has no rental
// price mapping at all — falling back to the purchase price is the
// caller's decision, not this resolver's.
func PriceFor(p domain.Product, tier string) (price float64, ok bool) {
	rp := p.RentPrices()
	if rp == nil {
		return 0, false
	}
	return rp[tier], true
}

// EffectivePrice is the value range filters and price sorts operate on:
// the daily rental price when a rental mapping exists, else the buy
// price, else absent (ok=false).
func EffectivePrice(p domain.Product) (price float64, ok bool) {
	if rp := p.RentPrices(); rp != nil {
		return rp[domain.Daily], true
	}
	if p.BuyPrice != nil {
		return *p.BuyPrice, true
	}
	return 0, false
}
