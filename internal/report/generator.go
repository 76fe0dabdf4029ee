package report

import (
	"context"
	"fmt"
	"io"
	"time"

	"report-service/internal/models"
)

const (
	// Status filter for the pending orders report. The match is exact and
	// case-sensitive: "pending" does not qualify.
	pendingStatus = "Pending"

	// Window for the recent orders report, boundary inclusive.
	recentWindow = 30 * 24 * time.Hour

	topCustomerLimit = 3

	dateLayout = "2006-01-02"
)

// Querier is the read-only view of the store the generator needs.
type Querier interface {
	ListCustomers(ctx context.Context) ([]models.Customer, error)
	ListOrderItemCounts(ctx context.Context) ([]models.OrderItemCount, error)
	ListProductsByPrice(ctx context.Context) ([]models.Product, error)
	ListOrdersByStatus(ctx context.Context, status string) ([]models.OrderSummary, error)
	ListCustomerOrderCounts(ctx context.Context) ([]models.CustomerOrderCount, error)
	ListTopCustomersByValue(ctx context.Context, limit int) ([]models.CustomerValue, error)
	ListOrdersSince(ctx context.Context, since time.Time) ([]models.OrderSummary, error)
	ListProductSales(ctx context.Context) ([]models.ProductSales, error)
	ListOrderLines(ctx context.Context) ([]models.OrderLine, error)
	GetCategoryByName(ctx context.Context, name string) (*models.Category, error)
	ListProductsByCategory(ctx context.Context, categoryID int64) ([]models.Product, error)
	ListOrderLinesForProducts(ctx context.Context, productIDs []int64) ([]models.OrderLine, error)
	ListStockLevels(ctx context.Context, productID int64) ([]models.StockLevel, error)
}

// Generator renders reports from a relational store into a text sink
type Generator struct {
	store Querier
	now   func() time.Time
}

// NewGenerator creates a report generator over the given store
func NewGenerator(store Querier) *Generator {
	return &Generator{
		store: store,
		now:   time.Now,
	}
}

// Customers lists every customer as "First Last - email"
func (g *Generator) Customers(ctx context.Context, w io.Writer) error {
	customers, err := g.store.ListCustomers(ctx)
	if err != nil {
		return fmt.Errorf("failed to list customers: %w", err)
	}

	fmt.Fprintln(w, "=== All Customers ===")
	for _, c := range customers {
		fmt.Fprintf(w, "%s %s - %s\n", c.FirstName, c.LastName, c.Email)
	}
	return nil
}

// OrderItemCounts lists every order with its customer and total item quantity
func (g *Generator) OrderItemCounts(ctx context.Context, w io.Writer) error {
	rows, err := g.store.ListOrderItemCounts(ctx)
	if err != nil {
		return fmt.Errorf("failed to list order item counts: %w", err)
	}

	fmt.Fprintln(w, "=== Orders With Item Counts ===")
	for _, r := range rows {
		fmt.Fprintf(w, "Order #%d | Customer: %s | Status: %s | Items: %d\n",
			r.OrderID, r.CustomerName, r.Status, r.ItemCount)
	}
	return nil
}

// ProductsByPrice lists all products sorted by price descending
func (g *Generator) ProductsByPrice(ctx context.Context, w io.Writer) error {
	products, err := g.store.ListProductsByPrice(ctx)
	if err != nil {
		return fmt.Errorf("failed to list products: %w", err)
	}

	fmt.Fprintln(w, "=== Products By Price ===")
	for _, p := range products {
		fmt.Fprintf(w, "%s - $%.2f\n", p.Name, p.Price)
	}
	return nil
}

// PendingOrders lists orders whose status is exactly "Pending" with totals
func (g *Generator) PendingOrders(ctx context.Context, w io.Writer) error {
	orders, err := g.store.ListOrdersByStatus(ctx, pendingStatus)
	if err != nil {
		return fmt.Errorf("failed to list pending orders: %w", err)
	}

	fmt.Fprintln(w, "=== Pending Orders ===")
	for _, o := range orders {
		fmt.Fprintf(w, "%s | Order #%d | %s | Total: $%.2f\n",
			o.CustomerName, o.OrderID, o.OrderDate.Format(dateLayout), o.Total)
	}
	return nil
}

// CustomerOrderCounts lists every customer with their order count
func (g *Generator) CustomerOrderCounts(ctx context.Context, w io.Writer) error {
	rows, err := g.store.ListCustomerOrderCounts(ctx)
	if err != nil {
		return fmt.Errorf("failed to list customer order counts: %w", err)
	}

	fmt.Fprintln(w, "=== Orders Per Customer ===")
	for _, r := range rows {
		fmt.Fprintf(w, "%s: %d orders\n", r.CustomerName, r.OrderCount)
	}
	return nil
}

// TopCustomers lists at most three customers by descending total order value
func (g *Generator) TopCustomers(ctx context.Context, w io.Writer) error {
	rows, err := g.store.ListTopCustomersByValue(ctx, topCustomerLimit)
	if err != nil {
		return fmt.Errorf("failed to list top customers: %w", err)
	}

	fmt.Fprintln(w, "=== Top Customers By Order Value ===")
	for _, r := range rows {
		fmt.Fprintf(w, "%s - $%.2f\n", r.CustomerName, r.Total)
	}
	return nil
}

// RecentOrders lists orders placed within the last 30 days.
// The window is evaluated against the generator clock at call time.
func (g *Generator) RecentOrders(ctx context.Context, w io.Writer) error {
	since := g.now().Add(-recentWindow)

	orders, err := g.store.ListOrdersSince(ctx, since)
	if err != nil {
		return fmt.Errorf("failed to list recent orders: %w", err)
	}

	fmt.Fprintln(w, "=== Recent Orders (30 Days) ===")
	for _, o := range orders {
		fmt.Fprintf(w, "Order #%d | %s | %s\n",
			o.OrderID, o.OrderDate.Format(dateLayout), o.CustomerName)
	}
	return nil
}

// ProductSales lists every product with total units sold, descending
func (g *Generator) ProductSales(ctx context.Context, w io.Writer) error {
	rows, err := g.store.ListProductSales(ctx)
	if err != nil {
		return fmt.Errorf("failed to list product sales: %w", err)
	}

	fmt.Fprintln(w, "=== Total Sold Per Product ===")
	for _, r := range rows {
		fmt.Fprintf(w, "%s: %d sold\n", r.Name, r.TotalSold)
	}
	return nil
}

// DiscountedOrders lists orders that contain at least one discounted item,
// showing only the discounted items of each.
func (g *Generator) DiscountedOrders(ctx context.Context, w io.Writer) error {
	lines, err := g.store.ListOrderLines(ctx)
	if err != nil {
		return fmt.Errorf("failed to list order lines: %w", err)
	}

	fmt.Fprintln(w, "=== Discounted Orders ===")

	var lastOrderID int64 = -1
	for _, line := range lines {
		if line.Discount <= 0 {
			continue
		}
		if line.OrderID != lastOrderID {
			fmt.Fprintf(w, "Order #%d - %s\n", line.OrderID, line.CustomerName)
			lastOrderID = line.OrderID
		}
		fmt.Fprintf(w, "  %s - discount $%.2f\n", line.ProductName, line.Discount)
	}
	return nil
}

// CategoryStock cross-reports orders and stock for one category: for every
// order touching the category's products it lists the matching items, each
// with the best-stocked store for that product. An absent category is a
// normal empty outcome, not an error.
func (g *Generator) CategoryStock(ctx context.Context, w io.Writer, categoryName string) error {
	category, err := g.store.GetCategoryByName(ctx, categoryName)
	if err != nil {
		return fmt.Errorf("failed to look up category %q: %w", categoryName, err)
	}

	fmt.Fprintf(w, "=== %s Orders And Stock ===\n", categoryName)

	if category == nil {
		fmt.Fprintf(w, "no such category: %s\n", categoryName)
		return nil
	}

	products, err := g.store.ListProductsByCategory(ctx, category.ID)
	if err != nil {
		return fmt.Errorf("failed to list category products: %w", err)
	}

	productIDs := make([]int64, 0, len(products))
	for _, p := range products {
		productIDs = append(productIDs, p.ID)
	}

	lines, err := g.store.ListOrderLinesForProducts(ctx, productIDs)
	if err != nil {
		return fmt.Errorf("failed to list category order lines: %w", err)
	}

	// One stock lookup per distinct product, resolved lazily as lines appear.
	bestStock := make(map[int64]*models.StockLevel)

	var lastOrderID int64 = -1
	for _, line := range lines {
		if line.OrderID != lastOrderID {
			fmt.Fprintf(w, "Order #%d - %s\n", line.OrderID, line.CustomerName)
			lastOrderID = line.OrderID
		}

		best, seen := bestStock[line.ProductID]
		if !seen {
			best, err = g.bestStockedStore(ctx, line.ProductID)
			if err != nil {
				return err
			}
			bestStock[line.ProductID] = best
		}

		if best == nil {
			fmt.Fprintf(w, "  %s x%d - no stock information available\n",
				line.ProductName, line.Quantity)
		} else {
			fmt.Fprintf(w, "  %s x%d - best stocked at %s with %d units\n",
				line.ProductName, line.Quantity, best.StoreName, best.Quantity)
		}
	}
	return nil
}

// bestStockedStore picks the stock row with the highest quantity for a
// product, nil when the product has no stock rows.
func (g *Generator) bestStockedStore(ctx context.Context, productID int64) (*models.StockLevel, error) {
	levels, err := g.store.ListStockLevels(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to list stock levels for product %d: %w", productID, err)
	}
	if len(levels) == 0 {
		return nil, nil
	}

	best := levels[0]
	for _, lvl := range levels[1:] {
		if lvl.Quantity > best.Quantity {
			best = lvl
		}
	}
	return &best, nil
}
