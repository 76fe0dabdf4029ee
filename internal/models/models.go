package models

import "time"

// Customer represents a registered customer
type Customer struct {
	ID        int64     `db:"id" json:"id"`
	FirstName string    `db:"first_name" json:"first_name"`
	LastName  string    `db:"last_name" json:"last_name"`
	Email     string    `db:"email" json:"email"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Order represents a customer order
type Order struct {
	ID         int64     `db:"id" json:"id"`
	CustomerID int64     `db:"customer_id" json:"customer_id"`
	Status     string    `db:"status" json:"status"`
	OrderDate  time.Time `db:"order_date" json:"order_date"`
}

// OrderItem represents one line of an order
type OrderItem struct {
	ID        int64   `db:"id" json:"id"`
	OrderID   int64   `db:"order_id" json:"order_id"`
	ProductID int64   `db:"product_id" json:"product_id"`
	Quantity  int     `db:"quantity" json:"quantity"`
	UnitPrice float64 `db:"unit_price" json:"unit_price"`
	Discount  float64 `db:"discount" json:"discount"`
}

// Product represents a product in the catalog
type Product struct {
	ID    int64   `db:"id" json:"id"`
	Name  string  `db:"name" json:"name"`
	Price float64 `db:"price" json:"price"`
}

// Category groups products (many-to-many via product_categories)
type Category struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

// Stock ties a product to a store with a quantity on hand
type Stock struct {
	ID        int64 `db:"id" json:"id"`
	ProductID int64 `db:"product_id" json:"product_id"`
	StoreID   int64 `db:"store_id" json:"store_id"`
	Quantity  int   `db:"quantity" json:"quantity"`
}

// Store represents a physical store location holding stock
type Store struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

// OrderItemCount is an order joined with its customer and summed item quantities
type OrderItemCount struct {
	OrderID      int64  `db:"order_id" json:"order_id"`
	CustomerName string `db:"customer_name" json:"customer_name"`
	Status       string `db:"status" json:"status"`
	ItemCount    int    `db:"item_count" json:"item_count"`
}

// OrderSummary is an order joined with its customer and computed total value
type OrderSummary struct {
	OrderID      int64     `db:"order_id" json:"order_id"`
	CustomerName string    `db:"customer_name" json:"customer_name"`
	Status       string    `db:"status" json:"status"`
	OrderDate    time.Time `db:"order_date" json:"order_date"`
	Total        float64   `db:"total" json:"total"`
}

// CustomerOrderCount is a customer with the number of orders they own
type CustomerOrderCount struct {
	CustomerID   int64  `db:"customer_id" json:"customer_id"`
	CustomerName string `db:"customer_name" json:"customer_name"`
	OrderCount   int    `db:"order_count" json:"order_count"`
}

// CustomerValue is a customer with the total value of all their orders
type CustomerValue struct {
	CustomerID   int64   `db:"customer_id" json:"customer_id"`
	CustomerName string  `db:"customer_name" json:"customer_name"`
	Total        float64 `db:"total" json:"total"`
}

// ProductSales is a product with total units sold across all orders
type ProductSales struct {
	ProductID int64  `db:"product_id" json:"product_id"`
	Name      string `db:"name" json:"name"`
	TotalSold int    `db:"total_sold" json:"total_sold"`
}

// OrderLine is a fully joined order item row used by line-level reports
type OrderLine struct {
	OrderID      int64   `db:"order_id" json:"order_id"`
	CustomerName string  `db:"customer_name" json:"customer_name"`
	ProductID    int64   `db:"product_id" json:"product_id"`
	ProductName  string  `db:"product_name" json:"product_name"`
	Quantity     int     `db:"quantity" json:"quantity"`
	UnitPrice    float64 `db:"unit_price" json:"unit_price"`
	Discount     float64 `db:"discount" json:"discount"`
}

// StockLevel is a stock row joined with its store name
type StockLevel struct {
	StoreName string `db:"store_name" json:"store_name"`
	Quantity  int    `db:"quantity" json:"quantity"`
}
