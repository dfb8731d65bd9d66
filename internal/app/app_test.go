package app_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"inventory/internal/app"
	"inventory/internal/config"
	"inventory/internal/models"
	"inventory/internal/repositories"
	"inventory/internal/testutil"
	"inventory/pkg/database"
	"inventory/pkg/logger"
	"inventory/pkg/metrics"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	mu     sync.Mutex
	keys   []string
	events []models.StockEvent
}

func (p *recordingPublisher) Publish(_ context.Context, routingKey string, payload interface{}) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.keys = append(p.keys, routingKey)
	if event, ok := payload.(models.StockEvent); ok {
		p.events = append(p.events, event)
	}
	return nil
}

func get(t *testing.T, a *fiber.App, path string) (int, string) {
	t.Helper()
	resp, err := a.Test(httptest.NewRequest(http.MethodGet, path, nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestHealthAndMetrics(t *testing.T) {
	logger.SetLevel("disabled")
	db := testutil.NewDB(t)
	a := app.New(app.Deps{
		Config:  config.Config{AppEnv: "test", PurchaseUpdatePolicy: config.PolicyLocation},
		DB:      db,
		Metrics: metrics.New(),
	})

	status, body := get(t, a, "/health")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `"status":"healthy"`)

	status, body = get(t, a, "/metrics")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `inventory_http_requests_total{method="GET",route="/health",status="200"} 1`)
	assert.Contains(t, body, "go_goroutines")

	require.NoError(t, database.Close(db))
	status, body = get(t, a, "/health")
	assert.Equal(t, http.StatusServiceUnavailable, status)
	assert.Contains(t, body, `"status":"unhealthy"`)
}

func TestStockEventsArePublished(t *testing.T) {
	logger.SetLevel("disabled")
	db := testutil.NewDB(t)
	publisher := &recordingPublisher{}
	m := metrics.New()
	a := app.New(app.Deps{
		Config:    config.Config{AppEnv: "test", PurchaseUpdatePolicy: config.PolicyLocation},
		DB:        db,
		Publisher: publisher,
		Metrics:   m,
	})
	seed := testutil.SeedProduct(t, repositories.NewStore(db), "Teapot", 5, 5)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/sales",
		strings.NewReader(`{"productId":"`+seed.Product.ID+`","quantity":2}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := a.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	publisher.mu.Lock()
	defer publisher.mu.Unlock()
	require.Equal(t, []string{"stock.sale.created"}, publisher.keys)
	event := publisher.events[0]
	assert.Equal(t, seed.Product.ID, event.ProductID)
	assert.Equal(t, 2, event.Quantity)
	assert.Equal(t, 3, event.Counter)
	assert.Equal(t, 5, event.Store)

	_, body := get(t, a, "/metrics")
	assert.Contains(t, body, `inventory_stock_mutations_total{operation="sale.create",outcome="success"} 1`)
}
