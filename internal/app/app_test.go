package app

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"toko/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApplication(t *testing.T, cfg *config.Config) *Application {
	t.Helper()
	application, err := New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = application.Close() })
	return application
}

func TestHealth(t *testing.T) {
	application := newTestApplication(t, &config.Config{DatabaseDriver: config.DriverMemory})

	resp, err := application.Fiber.Test(httptest.NewRequest(http.MethodGet, "/health", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "disabled", body["rabbitMQ"])
	assert.NotEmpty(t, body["time"])
}

func TestSeedProducts(t *testing.T) {
	application := newTestApplication(t, &config.Config{DatabaseDriver: config.DriverMemory})

	application.SeedProducts()

	products, err := application.Products.GetAllProducts()
	require.NoError(t, err)
	require.Len(t, products, 3)

	byName := make(map[string]float64)
	discounts := make(map[string]int)
	for _, p := range products {
		byName[p.Name] = p.Price
		discounts[p.Name] = p.DiscountPercentage
		assert.NotEmpty(t, p.SKU)
		assert.True(t, p.IsActive)
	}
	assert.Equal(t, 1200.0, byName["Laptop"])
	assert.Equal(t, 0, discounts["Laptop"])
	assert.Equal(t, 67.5, byName["Mechanical Keyboard"])
	assert.Equal(t, 10, discounts["Mechanical Keyboard"])
	assert.Equal(t, 10.0, byName["Paperback Novel"])
	assert.Equal(t, 20, discounts["Paperback Novel"])
}

func TestNew_SQLite(t *testing.T) {
	application := newTestApplication(t, &config.Config{
		DatabaseDriver: config.DriverSQLite,
		DatabaseDSN:    filepath.Join(t.TempDir(), "toko.db"),
	})
	require.NotNil(t, application.db)

	application.SeedProducts()
	products, err := application.Products.GetAllProducts()
	require.NoError(t, err)
	assert.Len(t, products, 3)
}

func TestNew_UnsupportedDriver(t *testing.T) {
	_, err := New(&config.Config{DatabaseDriver: "mongo", DatabaseDSN: "x"})
	assert.Error(t, err)
}
