package report

import (
	"context"
	"io"
)

// DefaultCategory is the category the category stock report is bound to.
const DefaultCategory = "Electronics"

// Report is a named, independently runnable report
type Report struct {
	Name  string
	Title string
	Run   func(ctx context.Context, w io.Writer) error
}

// Reports returns every report in catalog order
func (g *Generator) Reports() []Report {
	return []Report{
		{"customers", "All customers", g.Customers},
		{"order-item-counts", "Orders with item counts", g.OrderItemCounts},
		{"products-by-price", "Products by price descending", g.ProductsByPrice},
		{"pending-orders", "Pending orders with totals", g.PendingOrders},
		{"customer-order-counts", "Order count per customer", g.CustomerOrderCounts},
		{"top-customers", "Top 3 customers by order value", g.TopCustomers},
		{"recent-orders", "Orders from the last 30 days", g.RecentOrders},
		{"product-sales", "Total sold per product", g.ProductSales},
		{"discounted-orders", "Orders with discounted items", g.DiscountedOrders},
		{"category-stock", "Electronics orders and stock", func(ctx context.Context, w io.Writer) error {
			return g.CategoryStock(ctx, w, DefaultCategory)
		}},
	}
}

// Lookup finds a report by name
func (g *Generator) Lookup(name string) (Report, bool) {
	for _, r := range g.Reports() {
		if r.Name == name {
			return r, true
		}
	}
	return Report{}, false
}
