package store

import (
	"context"
	"time"

	"report-service/internal/models"
)

// ListOrderItemCounts retrieves every order with its customer name and the
// sum of item quantities, zero for orders without items.
func (s *Store) ListOrderItemCounts(ctx context.Context) ([]models.OrderItemCount, error) {
	query := `
		SELECT o.id AS order_id,
		       c.first_name || ' ' || c.last_name AS customer_name,
		       o.status,
		       COALESCE(SUM(oi.quantity), 0) AS item_count
		FROM orders o
		JOIN customers c ON c.id = o.customer_id
		LEFT JOIN order_items oi ON oi.order_id = o.id
		GROUP BY o.id, c.first_name, c.last_name, o.status
		ORDER BY o.id`

	var rows []models.OrderItemCount
	err := s.db.SelectContext(ctx, &rows, query)
	return rows, err
}

// ListOrdersByStatus retrieves orders whose status matches exactly,
// with customer name and total line value per order.
func (s *Store) ListOrdersByStatus(ctx context.Context, status string) ([]models.OrderSummary, error) {
	query := `
		SELECT o.id AS order_id,
		       c.first_name || ' ' || c.last_name AS customer_name,
		       o.status,
		       o.order_date,
		       COALESCE(SUM(oi.unit_price * oi.quantity - oi.discount), 0) AS total
		FROM orders o
		JOIN customers c ON c.id = o.customer_id
		LEFT JOIN order_items oi ON oi.order_id = o.id
		WHERE o.status = $1
		GROUP BY o.id, c.first_name, c.last_name, o.status, o.order_date
		ORDER BY o.id`

	var rows []models.OrderSummary
	err := s.db.SelectContext(ctx, &rows, query, status)
	return rows, err
}

// ListCustomerOrderCounts retrieves every customer with their order count,
// zero for customers without orders.
func (s *Store) ListCustomerOrderCounts(ctx context.Context) ([]models.CustomerOrderCount, error) {
	query := `
		SELECT c.id AS customer_id,
		       c.first_name || ' ' || c.last_name AS customer_name,
		       COUNT(o.id) AS order_count
		FROM customers c
		LEFT JOIN orders o ON o.customer_id = c.id
		GROUP BY c.id, c.first_name, c.last_name
		ORDER BY c.id`

	var rows []models.CustomerOrderCount
	err := s.db.SelectContext(ctx, &rows, query)
	return rows, err
}

// ListTopCustomersByValue retrieves up to limit customers ordered by the
// total value of all their order items, descending.
func (s *Store) ListTopCustomersByValue(ctx context.Context, limit int) ([]models.CustomerValue, error) {
	query := `
		SELECT c.id AS customer_id,
		       c.first_name || ' ' || c.last_name AS customer_name,
		       COALESCE(SUM(oi.unit_price * oi.quantity - oi.discount), 0) AS total
		FROM customers c
		LEFT JOIN orders o ON o.customer_id = c.id
		LEFT JOIN order_items oi ON oi.order_id = o.id
		GROUP BY c.id, c.first_name, c.last_name
		ORDER BY total DESC, c.id
		LIMIT $1`

	var rows []models.CustomerValue
	err := s.db.SelectContext(ctx, &rows, query, limit)
	return rows, err
}

// ListOrdersSince retrieves orders placed on or after the given time,
// boundary inclusive.
func (s *Store) ListOrdersSince(ctx context.Context, since time.Time) ([]models.OrderSummary, error) {
	query := `
		SELECT o.id AS order_id,
		       c.first_name || ' ' || c.last_name AS customer_name,
		       o.status,
		       o.order_date,
		       0::numeric AS total
		FROM orders o
		JOIN customers c ON c.id = o.customer_id
		WHERE o.order_date >= $1
		ORDER BY o.id`

	var rows []models.OrderSummary
	err := s.db.SelectContext(ctx, &rows, query, since)
	return rows, err
}

// ListOrderLines retrieves every order item joined with its order, customer
// and product, ordered by order id then item id.
func (s *Store) ListOrderLines(ctx context.Context) ([]models.OrderLine, error) {
	query := `
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
		ORDER BY o.id, oi.id`

	var rows []models.OrderLine
	err := s.db.SelectContext(ctx, &rows, query)
	return rows, err
}
