package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"report-service/internal/models"
	"report-service/internal/report"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubStore is a minimal Querier backing the HTTP tests
type stubStore struct{}

func (stubStore) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	return []models.Customer{
		{ID: 1, FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com"},
	}, nil
}

func (stubStore) ListOrderItemCounts(ctx context.Context) ([]models.OrderItemCount, error) {
	return nil, nil
}

func (stubStore) ListProductsByPrice(ctx context.Context) ([]models.Product, error) {
	return nil, nil
}

func (stubStore) ListOrdersByStatus(ctx context.Context, status string) ([]models.OrderSummary, error) {
	return nil, nil
}

func (stubStore) ListCustomerOrderCounts(ctx context.Context) ([]models.CustomerOrderCount, error) {
	return nil, nil
}

func (stubStore) ListTopCustomersByValue(ctx context.Context, limit int) ([]models.CustomerValue, error) {
	return nil, nil
}

func (stubStore) ListOrdersSince(ctx context.Context, since time.Time) ([]models.OrderSummary, error) {
	return nil, nil
}

func (stubStore) ListProductSales(ctx context.Context) ([]models.ProductSales, error) {
	return nil, nil
}

func (stubStore) ListOrderLines(ctx context.Context) ([]models.OrderLine, error) {
	return nil, nil
}

func (stubStore) GetCategoryByName(ctx context.Context, name string) (*models.Category, error) {
	return nil, nil
}

func (stubStore) ListProductsByCategory(ctx context.Context, categoryID int64) ([]models.Product, error) {
	return nil, nil
}

func (stubStore) ListOrderLinesForProducts(ctx context.Context, productIDs []int64) ([]models.OrderLine, error) {
	return nil, nil
}

func (stubStore) ListStockLevels(ctx context.Context, productID int64) ([]models.StockLevel, error) {
	return nil, nil
}

// memoryCache is an in-process ReportCache for tests
type memoryCache struct {
	entries map[string]string
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: make(map[string]string)}
}

func (m *memoryCache) GetReport(ctx context.Context, name string) (string, bool, error) {
	body, ok := m.entries[name]
	return body, ok, nil
}

func (m *memoryCache) SetReport(ctx context.Context, name, body string) error {
	m.entries[name] = body
	return nil
}

func newTestRouter(cache ReportCache) *gin.Engine {
	gin.SetMode(gin.TestMode)

	gen := report.NewGenerator(stubStore{})
	runner := report.NewRunner(gen)
	handler := NewHandler(gen, runner, cache, nil)

	router := gin.New()
	handler.SetupRoutes(router)
	return router
}

func TestListReports(t *testing.T) {
	router := newTestRouter(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"customers"`)
	assert.Contains(t, w.Body.String(), `"category-stock"`)
}

func TestGetReport(t *testing.T) {
	router := newTestRouter(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/customers", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Ada Lovelace - ada@example.com")
}

func TestGetReport_Unknown(t *testing.T) {
	router := newTestRouter(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/bogus", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetReport_CacheHit(t *testing.T) {
	cache := newMemoryCache()
	cache.entries["customers"] = "cached rendering\n"

	router := newTestRouter(cache)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/customers", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "cached rendering\n", w.Body.String())
}

func TestGetReport_PopulatesCache(t *testing.T) {
	cache := newMemoryCache()
	router := newTestRouter(cache)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/customers", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, cache.entries["customers"], "Ada Lovelace")
}

func TestHealth(t *testing.T) {
	router := newTestRouter(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
