package store

import (
	"context"

	"report-service/internal/models"

	"github.com/jmoiron/sqlx"
)

// ListProductsByPrice retrieves all products ordered by price descending,
// ties broken by id for stable output.
func (s *Store) ListProductsByPrice(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	err := s.db.SelectContext(ctx, &products,
		"SELECT id, name, price FROM products ORDER BY price DESC, id")
	return products, err
}

// ListProductSales retrieves every product with total units sold across all
// order items, zero for unsold products, ordered by total descending.
func (s *Store) ListProductSales(ctx context.Context) ([]models.ProductSales, error) {
	query := `
		SELECT p.id AS product_id,
		       p.name,
		       COALESCE(SUM(oi.quantity), 0) AS total_sold
		FROM products p
		LEFT JOIN order_items oi ON oi.product_id = p.id
		GROUP BY p.id, p.name
		ORDER BY total_sold DESC, p.id`

	var rows []models.ProductSales
	err := s.db.SelectContext(ctx, &rows, query)
	return rows, err
}

// ListProductsByCategory retrieves products linked to a category through the
// product_categories join table.
func (s *Store) ListProductsByCategory(ctx context.Context, categoryID int64) ([]models.Product, error) {
	query := `
		SELECT p.id, p.name, p.price
		FROM products p
		JOIN product_categories pc ON pc.product_id = p.id
		WHERE pc.category_id = $1
		ORDER BY p.id`

	var products []models.Product
	err := s.db.SelectContext(ctx, &products, query, categoryID)
	return products, err
}

// ListOrderLinesForProducts retrieves order lines restricted to the given
// product ids, ordered by order id then item id.
func (s *Store) ListOrderLinesForProducts(ctx context.Context, productIDs []int64) ([]models.OrderLine, error) {
	if len(productIDs) == 0 {
		return []models.OrderLine{}, nil
	}

	query, args, err := sqlx.In(`
		SELECT o.id AS order_id,
		       c.first_name || ' ' || c.last_name AS customer_name,
		       p.id AS product_id,
		       p.name AS product_name,
		       oi.quantity,
		       oi.unit_price,
		       oi.discount
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id
		JOIN customers c ON c.id = o.customer_id
		JOIN products p ON p.id = oi.product_id
		WHERE oi.product_id IN (?)
		ORDER BY o.id, oi.id`, productIDs)
	if err != nil {
		return nil, err
	}
	query = s.db.Rebind(query)

	var rows []models.OrderLine
	err = s.db.SelectContext(ctx, &rows, query, args...)
	return rows, err
}

// ListStockLevels retrieves stock rows for a product joined with store names.
func (s *Store) ListStockLevels(ctx context.Context, productID int64) ([]models.StockLevel, error) {
	query := `
		SELECT st.name AS store_name, s.quantity
		FROM stocks s
		JOIN stores st ON st.id = s.store_id
		WHERE s.product_id = $1
		ORDER BY s.id`

	var rows []models.StockLevel
	err := s.db.SelectContext(ctx, &rows, query, productID)
	return rows, err
}
