package worker

import (
	"context"
	"sync"
	"testing"
	"time"

	"report-service/internal/models"
	"report-service/internal/report"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// emptyStore is a Querier over an empty database
type emptyStore struct{}

func (emptyStore) ListCustomers(ctx context.Context) ([]models.Customer, error) { return nil, nil }
func (emptyStore) ListOrderItemCounts(ctx context.Context) ([]models.OrderItemCount, error) {
	return nil, nil
}
func (emptyStore) ListProductsByPrice(ctx context.Context) ([]models.Product, error) {
	return nil, nil
}
func (emptyStore) ListOrdersByStatus(ctx context.Context, status string) ([]models.OrderSummary, error) {
	return nil, nil
}
func (emptyStore) ListCustomerOrderCounts(ctx context.Context) ([]models.CustomerOrderCount, error) {
	return nil, nil
}
func (emptyStore) ListTopCustomersByValue(ctx context.Context, limit int) ([]models.CustomerValue, error) {
	return nil, nil
}
func (emptyStore) ListOrdersSince(ctx context.Context, since time.Time) ([]models.OrderSummary, error) {
	return nil, nil
}
func (emptyStore) ListProductSales(ctx context.Context) ([]models.ProductSales, error) {
	return nil, nil
}
func (emptyStore) ListOrderLines(ctx context.Context) ([]models.OrderLine, error) { return nil, nil }
func (emptyStore) GetCategoryByName(ctx context.Context, name string) (*models.Category, error) {
	return nil, nil
}
func (emptyStore) ListProductsByCategory(ctx context.Context, categoryID int64) ([]models.Product, error) {
	return nil, nil
}
func (emptyStore) ListOrderLinesForProducts(ctx context.Context, productIDs []int64) ([]models.OrderLine, error) {
	return nil, nil
}
func (emptyStore) ListStockLevels(ctx context.Context, productID int64) ([]models.StockLevel, error) {
	return nil, nil
}

type recordingCache struct {
	mu      sync.Mutex
	entries map[string]string
}

func newRecordingCache() *recordingCache {
	return &recordingCache{entries: make(map[string]string)}
}

func (c *recordingCache) SetReport(ctx context.Context, name, body string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[name] = body
	return nil
}

func (c *recordingCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func TestRefreshAllPopulatesCache(t *testing.T) {
	gen := report.NewGenerator(emptyStore{})
	runner := report.NewRunner(gen)
	cache := newRecordingCache()

	w := NewRefreshWorker(runner, gen, cache, time.Minute)
	w.refreshAll(context.Background())

	assert.Equal(t, len(gen.Reports()), cache.len())
}

func TestStartStopsOnCancel(t *testing.T) {
	gen := report.NewGenerator(emptyStore{})
	runner := report.NewRunner(gen)
	cache := newRecordingCache()

	w := NewRefreshWorker(runner, gen, cache, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- w.Start(ctx) }()

	time.Sleep(30 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("worker did not stop after cancel")
	}

	require.NotZero(t, cache.len())
}

func TestStop(t *testing.T) {
	gen := report.NewGenerator(emptyStore{})
	runner := report.NewRunner(gen)

	w := NewRefreshWorker(runner, gen, newRecordingCache(), 10*time.Millisecond)

	done := make(chan error, 1)
	go func() { done <- w.Start(context.Background()) }()

	time.Sleep(20 * time.Millisecond)
	w.Stop()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("worker did not stop")
	}
}
