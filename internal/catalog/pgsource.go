package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/lib/pq"
)

// LoadFromDB reads the product corpus from Postgres. Categories stay
// embedded; only products are database-backed. Row order (by id) is
// the catalog order.
func LoadFromDB(ctx context.Context, db *sql.DB) ([]Product, error) {
	query := `
		SELECT id, name, price,
		       COALESCE(old_price, 0) as old_price,
		       description,
		       COALESCE(images, '{}'::text[]) as images,
		       category, COALESCE(subcategory, '') as subcategory,
		       brand, in_stock, rating, review_count,
		       attributes, is_new, is_popular, COALESCE(discount, 0) as discount
		FROM catalog.products
		ORDER BY id
	`

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("LoadFromDB query: %w", err)
	}
	defer rows.Close()

	products := []Product{}
	for rows.Next() {
		var p Product
		var images pq.StringArray
		var attrs []byte

		err := rows.Scan(
			&p.ID, &p.Name, &p.Price, &p.OldPrice, &p.Description,
			&images, &p.Category, &p.Subcategory, &p.Brand, &p.InStock,
			&p.Rating, &p.ReviewCount, &attrs, &p.IsNew, &p.IsPopular,
			&p.Discount,
		)
		if err != nil {
			return nil, fmt.Errorf("LoadFromDB scan: %w", err)
		}

		p.Images = []string(images)
		if len(attrs) > 0 {
			if err := json.Unmarshal(attrs, &p.Attributes); err != nil {
				return nil, fmt.Errorf("LoadFromDB attributes: %w", err)
			}
		}

		products = append(products, p)
	}

	return products, rows.Err()
}

// NewStoreFromDB builds a store from the database corpus, falling back
// to the embedded fixtures when the table is empty or unreadable.
func NewStoreFromDB(ctx context.Context, db *sql.DB) (*Store, error) {
	ps, err := LoadFromDB(ctx, db)
	if err != nil {
		return NewStore(), err
	}
	if len(ps) == 0 {
		return NewStore(), nil
	}
	return NewStoreFromProducts(ps, categories), nil
}
