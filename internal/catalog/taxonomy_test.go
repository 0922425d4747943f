package catalog_test

import (
	"reflect"
	"testing"

	"breezehire/internal/catalog"
	"breezehire/internal/domain"
)

// Structural invariant: every slug the forward table can produce must
// have a display label and an icon. Checkable with no product data.
func TestNoDanglingSlug(t *testing.T) {
	for _, slug := range catalog.Slugs() {
		if catalog.Label(slug) == "" {
			t.Errorf("slug %q has no display label", slug)
		}
		if catalog.Icon(slug) == "" {
			t.Errorf("slug %q has no icon", slug)
		}
	}
}

func TestSlugLookup(t *testing.T) {
	if slug, ok := catalog.Slug("Mist Fan"); !ok || slug != "mistfan" {
		t.Fatalf("Mist Fan -> (%q,%v)", slug, ok)
	}
	if slug, ok := catalog.Slug("Pedestal Fan"); !ok || slug != "pedestalfan" {
		t.Fatalf("Pedestal Fan -> (%q,%v)", slug, ok)
	}
	if _, ok := catalog.Slug("Industrial"); ok {
		t.Fatal("label outside the taxonomy produced a slug")
	}
}

func TestCategoriesOfDeduplicatesAndKeepsStableOrder(t *testing.T) {
	ps := []domain.Product{
		{ID: "1", Category: "Mist Fan"},
		{ID: "2", Category: "Industrial"}, // unmapped: no button
		{ID: "3", Category: "Air Cooler"},
		{ID: "4", Category: "Mist Fan"}, // duplicate slug
		{ID: "5", Category: "Portable AC"},
	}

	first := catalog.CategoriesOf(ps)
	slugs := make([]string, 0, len(first))
	for _, c := range first {
		slugs = append(slugs, c.Slug)
	}
	if !reflect.DeepEqual(slugs, []string{"mistfan", "aircooler", "portableac"}) {
		t.Fatalf("button set: got %v", slugs)
	}

	// fixed input set -> identical button order on every call
	for i := 0; i < 3; i++ {
		if !reflect.DeepEqual(catalog.CategoriesOf(ps), first) {
			t.Fatal("button order not stable across calls")
		}
	}

	for _, c := range first {
		if c.Label == "" || c.Icon == "" {
			t.Fatalf("button %q missing presentation fields", c.Slug)
		}
	}
}
