package catalog

import "breezehire/internal/domain"

// Product data carries HUMAN category labels; filter buttons and icon
// lookups need STABLE SLUGS. This table is the bridge between the two.
// Labels missing here produce no slug and stay out of the filter set.
var categorySlugs = map[string]string{
	"Air Cooler":      "aircooler",
	"Electric Heater": "electricheater",
	"Jumbo Fan":       "jumbo-fan",
	"Mist Fan":        "mistfan",
	"Mist Fan Parts":  "mistfanparts",
	"Pedestal Fan":    "pedestalfan",
	"Portable AC":     "portableac",
	"Tower AC":        "towerac",
}

// Presentation tables, slug -> short label / icon asset. Every slug the
// forward table can produce must have an entry in both (tested).
var categoryLabels = map[string]string{
	"aircooler":      "Cooler",
	"electricheater": "Heater",
	"jumbo-fan":      "Jumbo",
	"mistfan":        "Mist Fan",
	"mistfanparts":   "Mist Parts",
	"pedestalfan":    "Pedestal",
	"portableac":     "Portable AC",
	"towerac":        "Tower AC",
}

var categoryIcons = map[string]string{
	"aircooler":      "icons/aircooler.png",
	"electricheater": "icons/electricheater.png",
	"jumbo-fan":      "icons/jumbo-fan.jpg",
	"mistfan":        "icons/mistfan.png",
	"mistfanparts":   "icons/mistfanparts.png",
	"pedestalfan":    "icons/pedestalfan.png",
	"portableac":     "icons/portableac.png",
	"towerac":        "icons/towerac.png",
}

// Slug maps a raw category label to its stable slug. ok is false for
// labels outside the taxonomy; such products never match a category
// filter and get no filter button.
func Slug(label string) (string, bool) {
	s, ok := categorySlugs[label]
	return s, ok
}

// Label returns the short display label for a slug.
func Label(slug string) string { return categoryLabels[slug] }

// Icon returns the icon asset path for a slug.
func Icon(slug string) string { return categoryIcons[slug] }

// Slugs returns every slug the forward table can produce. Used by the
// taxonomy invariant test.
func Slugs() []string {
	out := make([]string, 0, len(categorySlugs))
	for _, s := range categorySlugs {
		out = append(out, s)
	}
	return out
}

// Category is one filter button: a slug plus its presentation fields.
type Category struct {
	Slug  string
	Label string
	Icon  string
}

// CategoriesOf derives the filter-button set from the products actually
// present: de-duplicated mapped slugs, in first-appearance order. The
// order is a function of the input sequence only, so a fixed product
// list always yields the same buttons.
func CategoriesOf(products []domain.Product) []Category {
	seen := make(map[string]bool, len(categorySlugs))
	var out []Category
	for _, p := range products {
		slug, ok := Slug(p.Category)
		if !ok || seen[slug] {
			continue
		}
		seen[slug] = true
		out = append(out, Category{Slug: slug, Label: Label(slug), Icon: Icon(slug)})
	}
	return out
}
