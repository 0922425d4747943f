package repos

import (
	"log"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}
	// A :memory: database exists per connection; keep the pool at one
	// so every query sees the same database.
	db.SetMaxOpenConns(1)

	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	// Seed the catalog, locations and FAQs if the DB is empty
	if err := seedIfEmpty(db); err != nil {
		return nil, err
	}

	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

-- Products. Optional commercial/descriptive fields are NULLable JSON;
-- consumers decode them tolerantly (see domain.Product).
CREATE TABLE IF NOT EXISTS products(
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  description TEXT NOT NULL DEFAULT '',
  category TEXT NOT NULL,
  images_json TEXT NOT NULL DEFAULT '[]',
  buy_price NUMERIC,
  rent_prices_json TEXT,
  availability TEXT NOT NULL DEFAULT 'available'
    CHECK (availability IN ('available','booked','out_of_stock')),
  specs_json TEXT,
  features_json TEXT,
  locations_json TEXT,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);
CREATE INDEX IF NOT EXISTS idx_products_category ON products(category);
CREATE INDEX IF NOT EXISTS idx_products_name     ON products(LOWER(name));

-- Booking requests (leads) captured by the booking form
CREATE TABLE IF NOT EXISTS bookings(
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  email TEXT NOT NULL,
  phone TEXT NOT NULL,
  location TEXT NOT NULL,
  product_id TEXT NOT NULL REFERENCES products(id) ON DELETE RESTRICT,
  duration TEXT NOT NULL CHECK (duration IN ('daily','weekly','monthly')),
  start_date TEXT NOT NULL,
  message TEXT NOT NULL DEFAULT '',
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_bookings_created_at ON bookings(created_at);
CREATE INDEX IF NOT EXISTS idx_bookings_product    ON bookings(product_id);

-- Serving cities offered in the booking form
CREATE TABLE IF NOT EXISTS locations(
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  is_active INTEGER NOT NULL DEFAULT 1
);

CREATE TABLE IF NOT EXISTS faqs(
  id TEXT PRIMARY KEY,
  question TEXT NOT NULL,
  answer TEXT NOT NULL,
  category TEXT NOT NULL DEFAULT ''
);

-- Anonymous sessions; splash_shown backs the once-per-session loader
CREATE TABLE IF NOT EXISTS sessions(
  id TEXT PRIMARY KEY,               -- same value as the 'sid' cookie
  splash_shown INTEGER NOT NULL DEFAULT 0,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  last_seen  TEXT
);
`
	_, err := db.Exec(schema)
	return err
}

func seedIfEmpty(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM products`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting catalog/locations/faqs")

	tx := db.MustBegin()
	defer func() { _ = tx.Rollback() }()

	for _, p := range seedProducts {
		tx.MustExec(`
		  INSERT INTO products(id,name,description,category,images_json,buy_price,
		    rent_prices_json,availability,specs_json,features_json,locations_json)
		  VALUES(?,?,?,?,?,?,?,?,?,?,?)`,
			p.id, p.name, p.description, p.category, p.images, p.buyPrice,
			p.rentPrices, p.availability, p.specs, p.features, p.locations)
	}

	tx.MustExec(`INSERT INTO locations(id,name,is_active) VALUES
	  ('mumbai','Mumbai',1),
	  ('delhi','Delhi',1),
	  ('bangalore','Bangalore',1),
	  ('chennai','Chennai',1),
	  ('hyderabad','Hyderabad',1),
	  ('pune','Pune',1),
	  ('kolkata','Kolkata',1),
	  ('ahmedabad','Ahmedabad',1)`)

	tx.MustExec(`INSERT INTO faqs(id,question,answer,category) VALUES
	  ('1','How far in advance should I book equipment?','We recommend booking at least 48 hours in advance to ensure availability. For peak seasons (April-June), booking 1 week ahead is advisable.','Booking'),
	  ('2','What is included in the rental?','All rentals include free delivery, installation, and pickup within city limits. Basic maintenance during rental period is also included.','Services'),
	  ('3','Do you provide technical support?','Yes, we provide 24/7 technical support during your rental period. Our technicians are available for any issues or maintenance needs.','Support'),
	  ('4','What is your cancellation policy?','Free cancellation up to 24 hours before delivery. Cancellations within 24 hours incur a 25% charge of the daily rate.','Policies'),
	  ('5','Is a security deposit required?','Yes, a refundable security deposit equivalent to 2 days rental is required. This is fully refunded upon return of equipment in good condition.','Payment'),
	  ('6','Do you deliver to all areas?','We deliver within 50km of city center. Delivery charges may apply for locations beyond 25km. Contact us for specific area availability.','Delivery')`)

	return tx.Commit()
}

// seedProduct mirrors one row; nullable columns are *string/*float64.
type seedProduct struct {
	id, name, description, category string
	images                          string
	buyPrice                        *float64
	rentPrices                      *string
	availability                    string
	specs, features, locations      *string
}

func f(v float64) *float64 { return &v }
func s(v string) *string   { return &v }

// The launch catalog. Product 1 carries the label "Industrial", which
// is outside the category taxonomy on purpose: it keeps the
// uncategorized path exercised (reachable by search, no filter button).
var seedProducts = []seedProduct{
	{
		id: "1", name: "Industrial Air Cooler",
		description: "Heavy-duty industrial air cooler perfect for large spaces",
		category:    "Industrial",
		images:      `["https://www.rentooze.in/proimg/industrialcooler.jpg"]`,
		buyPrice:    f(450000),
		availability: "available",
		features:     s(`["Heavy-duty","Portable design"]`),
		locations:    s(`["Pune"]`),
		specs:        s(`{"Cooling Capacity":"5000 CMH","Power":"220V / 50Hz","Tank Capacity":"100L"}`),
	},
	{
		id: "2", name: "Industrial Mist Fan",
		description:  "Heavy-duty industrial mist fan perfect for large outdoor events",
		category:     "Mist Fan",
		images:       `["https://www.rentooze.in/proimg/IMG-0171.png"]`,
		buyPrice:     f(35000),
		rentPrices:   s(`{"daily":1500,"weekly":8000,"monthly":25000}`),
		availability: "available",
		features:     s(`["High power","Outdoor use"]`),
		locations:    s(`["Pune"]`),
		specs:        s(`{"Power":"750W","Coverage":"200 sq ft","Tank Capacity":"50L","Height":"180cm","Weight":"45kg"}`),
	},
	{
		id: "3", name: "Pedestal Fan 26 Inch",
		description:  "26-inch pedestal fan with 90 degree oscillation, ideal for homes and small events.",
		category:     "Pedestal Fan",
		images:       `["https://www.rentooze.in/proimg/PEDESTIAL FAN - 2.png"]`,
		buyPrice:     f(15000),
		rentPrices:   s(`{"daily":300,"weekly":1500,"monthly":4500}`),
		availability: "available",
		features:     s(`["Oscillating","Portable"]`),
		locations:    s(`["Pune"]`),
		specs:        s(`{"Size":"26 Inch","Type":"Pedestal Fan"}`),
	},
	{
		id: "4", name: "Silver Mist Fan",
		description:  "Silver mist fan with 41L water capacity for efficient cooling at small to medium events.",
		category:     "Mist Fan",
		images:       `["https://www.rentooze.in/proimg/MIST FAN SILVER - 6.png"]`,
		buyPrice:     f(12000),
		rentPrices:   s(`{"daily":800,"weekly":4500,"monthly":14000}`),
		availability: "available",
		features:     s(`["41L water capacity","Fine mist spray","Portable design"]`),
		locations:    s(`["Pune"]`),
		specs:        s(`{"Capacity":"41L","Color":"Silver"}`),
	},
	{
		id: "5", name: "Electric Heater",
		description:  "Plug n Play electric heater, ideal for personal and small space heating.",
		category:     "Electric Heater",
		images:       `["https://www.rentooze.in/proimg/Heater - 2.png"]`,
		buyPrice:     f(8000),
		rentPrices:   s(`{"daily":250}`),
		availability: "available",
		features:     s(`["Easy plug-and-play operation","Compact design","Fast heating"]`),
		locations:    s(`["Pune"]`),
		specs:        s(`{"Type":"Electric","Power":"1500W"}`),
	},
	{
		id: "6", name: "Black Mist Fan",
		description:  "Black mist fan with 41L water tank for effective outdoor cooling.",
		category:     "Mist Fan",
		images:       `["https://www.rentooze.in/proimg/MIST FAN BLACK - 1.png"]`,
		buyPrice:     f(12000),
		rentPrices:   s(`{"daily":800,"weekly":4500,"monthly":14000}`),
		availability: "available",
		features:     s(`["41L tank","Adjustable mist","Portable design"]`),
		locations:    s(`["Pune"]`),
		specs:        s(`{"Capacity":"41L","Color":"Black"}`),
	},
	{
		id: "7", name: "White Mist Fan",
		description:  "White mist fan with 41L water capacity, perfect for small gatherings and patios.",
		category:     "Mist Fan",
		images:       `["https://www.rentooze.in/proimg/whitemistfan.jpeg"]`,
		buyPrice:     f(12000),
		rentPrices:   s(`{"daily":800,"weekly":4500,"monthly":14000}`),
		availability: "available",
		features:     s(`["41L tank","Portable design","Fine mist spray"]`),
		locations:    s(`["Pune"]`),
		specs:        s(`{"Capacity":"41L","Color":"White"}`),
	},
	{
		id: "8", name: "Air Cooler 75 Ltrs",
		description:  "75L air cooler with silent operation for medium indoor and outdoor areas.",
		category:     "Air Cooler",
		images:       `["https://www.rentooze.in/proimg/COOLER 90 LTR - 1.png"]`,
		buyPrice:     f(18000),
		rentPrices:   s(`{"daily":700,"weekly":3800,"monthly":12000}`),
		availability: "available",
		features:     s(`["75L water tank","Silent operation","Portable design"]`),
		locations:    s(`["Pune"]`),
		specs:        s(`{"Capacity":"75L"}`),
	},
	{
		id: "9", name: "Silent Air Cooler 75 Ltrs",
		description:  "Silent 75L air cooler suitable for quiet environments like offices or small events.",
		category:     "Air Cooler",
		images:       `["https://www.rentooze.in/proimg/aircooler752.png"]`,
		buyPrice:     f(20000),
		rentPrices:   s(`{"daily":800,"weekly":4200,"monthly":13000}`),
		availability: "available",
		features:     s(`["Silent operation","75L tank","Easy mobility"]`),
		locations:    s(`["Pune"]`),
		specs:        s(`{"Capacity":"75L"}`),
	},
	{
		id: "10", name: "Air Cooler 110 Ltrs",
		description:  "110L air cooler for large rooms and event spaces.",
		category:     "Air Cooler",
		images:       `["https://www.rentooze.in/proimg/AIR COOLER - 100 LTR FRONT.png"]`,
		buyPrice:     f(25000),
		rentPrices:   s(`{"daily":1000,"weekly":5500,"monthly":17000}`),
		availability: "available",
		features:     s(`["110L water tank","Efficient cooling","Portable"]`),
		locations:    s(`["Pune"]`),
		specs:        s(`{"Capacity":"110L"}`),
	},
	{
		id: "11", name: "Portable AC 1 Ton",
		description:  "1 Ton portable air conditioner suitable for small to medium spaces.",
		category:     "Portable AC",
		images:       `["https://www.rentooze.in/proimg/portableAcblack2.png"]`,
		buyPrice:     f(40000),
		rentPrices:   s(`{"daily":2000,"weekly":11000,"monthly":35000}`),
		availability: "available",
		features:     s(`["1 Ton cooling capacity","Portable design","Energy efficient"]`),
		locations:    s(`["Pune"]`),
		specs:        s(`{"Cooling Capacity":"1 Ton"}`),
	},
	{
		id: "12", name: "Portable AC 1.5 Ton",
		description:  "1.5 Ton portable air conditioner, ideal for medium rooms and offices.",
		category:     "Portable AC",
		images:       `["https://www.rentooze.in/proimg/PORTABLE AC - 1.png"]`,
		buyPrice:     f(45000),
		rentPrices:   s(`{"daily":2500,"weekly":13500,"monthly":42000}`),
		availability: "available",
		features:     s(`["1.5 Ton cooling capacity","Portable design","Energy efficient"]`),
		locations:    s(`["Pune"]`),
		specs:        s(`{"Cooling Capacity":"1.5 Ton"}`),
	},
}
