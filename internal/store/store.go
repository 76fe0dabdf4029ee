package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"report-service/internal/models"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

type Store struct {
	db *sqlx.DB
}

// NewStore creates a new database store
func NewStore(databaseURL string) (*Store, error) {
	db, err := sqlx.Connect("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Store{db: db}, nil
}

// NewStoreWithDB wraps an existing connection, used by integration tests
func NewStoreWithDB(db *sqlx.DB) *Store {
	return &Store{db: db}
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// GetDB returns the underlying database connection
func (s *Store) GetDB() *sqlx.DB {
	return s.db
}

// ListCustomers retrieves all customers in retrieval order
func (s *Store) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	var customers []models.Customer
	err := s.db.SelectContext(ctx, &customers,
		"SELECT id, first_name, last_name, email, created_at FROM customers")
	return customers, err
}

// GetCategoryByName retrieves a category by exact name.
// Returns (nil, nil) when no such category exists.
func (s *Store) GetCategoryByName(ctx context.Context, name string) (*models.Category, error) {
	var category models.Category
	err := s.db.GetContext(ctx, &category,
		"SELECT id, name FROM categories WHERE name = $1", name)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}
