package repos

import (
	"breezehire/internal/domain"

	"github.com/jmoiron/sqlx"
)

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

const productCols = `
  id, name, description, category, images_json, buy_price, rent_prices_json,
  availability, specs_json, features_json, locations_json,
  created_at, COALESCE(updated_at,'') AS updated_at`

// All returns the full catalog in insertion order. The filter engine
// runs in memory over this list, so ordering here is the tie-break
// order for every stable sort downstream.
func (r *ProductRepo) All() ([]domain.Product, error) {
	var out []domain.Product
	err := r.db.Select(&out, `
	  SELECT `+productCols+`
	  FROM products
	  ORDER BY created_at, id
	`)
	return out, err
}

func (r *ProductRepo) Get(id string) (domain.Product, error) {
	var p domain.Product
	err := r.db.Get(&p, `
	  SELECT `+productCols+`
	  FROM products
	  WHERE id = ?
	`, id)
	return p, err
}

func (r *ProductRepo) Insert(p domain.Product) error {
	_, err := r.db.Exec(`
	  INSERT INTO products(id,name,description,category,images_json,buy_price,
	    rent_prices_json,availability,specs_json,features_json,locations_json,created_at)
	  VALUES(?,?,?,?,?,?,?,?,?,?,?,CURRENT_TIMESTAMP)
	`, p.ID, p.Name, p.Description, p.Category, p.ImagesJSON, p.BuyPrice,
		p.RentPricesJSON, p.Availability, p.SpecsJSON, p.FeaturesJSON, p.LocationsJSON)
	return err
}

// Update fully replaces the mutable fields; identity is preserved.
// Returns sql-level errors only; a missing row surfaces as affected=0.
func (r *ProductRepo) Update(id string, p domain.Product) (bool, error) {
	res, err := r.db.Exec(`
	  UPDATE products
	  SET name=?, description=?, category=?, images_json=?, buy_price=?,
	      rent_prices_json=?, availability=?, specs_json=?, features_json=?,
	      locations_json=?, updated_at=CURRENT_TIMESTAMP
	  WHERE id=?
	`, p.Name, p.Description, p.Category, p.ImagesJSON, p.BuyPrice,
		p.RentPricesJSON, p.Availability, p.SpecsJSON, p.FeaturesJSON,
		p.LocationsJSON, id)
	if err != nil {
		return false, err
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

func (r *ProductRepo) Delete(id string) (bool, error) {
	res, err := r.db.Exec(`DELETE FROM products WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}
