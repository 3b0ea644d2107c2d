package tools

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Additional-Code/storefront/internal/config"
	"github.com/Additional-Code/storefront/internal/entity"
	"github.com/Additional-Code/storefront/internal/messaging"
	repo "github.com/Additional-Code/storefront/internal/repository/store"
	service "github.com/Additional-Code/storefront/internal/service/store"
	"github.com/Additional-Code/storefront/internal/tools"
)

type fixtureReader struct {
	orders []*entity.Order
}

func (f *fixtureReader) ListCustomers(context.Context) ([]*entity.Customer, error) {
	return nil, nil
}

func (f *fixtureReader) GetCustomer(context.Context, int64) (*entity.Customer, error) {
	return nil, repo.ErrCustomerNotFound
}

func (f *fixtureReader) ListProducts(context.Context) ([]*entity.Product, error) {
	return nil, nil
}

func (f *fixtureReader) ListInventory(context.Context) ([]*entity.InventoryItem, error) {
	return nil, nil
}

func (f *fixtureReader) ListOrders(context.Context) ([]*entity.Order, error) {
	return f.orders, nil
}

func (f *fixtureReader) GetOrder(_ context.Context, id int64) (*entity.Order, error) {
	for _, o := range f.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return nil, repo.ErrOrderNotFound
}

// recordingClient captures published audit events.
type recordingClient struct {
	keys   []string
	values [][]byte
}

func (r *recordingClient) Publish(_ context.Context, key, value []byte) error {
	r.keys = append(r.keys, string(key))
	r.values = append(r.values, append([]byte(nil), value...))
	return nil
}

func (r *recordingClient) Consume(ctx context.Context, _ messaging.Handler) error {
	<-ctx.Done()
	return ctx.Err()
}

func (r *recordingClient) Topic() string { return "tools.audit" }

func testConfig() config.Config {
	cfg := config.Config{}
	cfg.Tools.PathPrefix = "/tools"
	cfg.Messaging.Enabled = true
	return cfg
}

func newTestServer(t *testing.T, publisher messaging.Client) *echo.Echo {
	t.Helper()

	order := &entity.Order{
		ID:          1,
		CustomerID:  1,
		Status:      "shipped",
		TotalAmount: decimal.RequireFromString("19.98"),
		PlacedAt:    time.Now().UTC(),
		Customer:    &entity.Customer{ID: 1, Email: "ada@example.com"},
		Items: []*entity.OrderItem{
			{ID: 1, OrderID: 1, ProductID: 1, Quantity: 2, UnitPrice: decimal.RequireFromString("9.99"),
				Product: &entity.Product{ID: 1, SKU: "ABC", Price: decimal.RequireFromString("9.99")}},
		},
	}

	svc := service.New(&fixtureReader{orders: []*entity.Order{order}}, nil, time.Minute, zap.NewNop())
	reg, err := tools.NewStoreRegistry(svc)
	require.NoError(t, err)

	cfg := testConfig()
	h := NewHandler(Params{
		Registry:  reg,
		Config:    cfg,
		Logger:    zap.NewNop(),
		Publisher: publisher,
	})

	e := echo.New()
	Register(e, cfg, h)
	return e
}

func invoke(e *echo.Echo, name, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/tools/"+name, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestListToolsEndpoint(t *testing.T) {
	e := newTestServer(t, &recordingClient{})

	req := httptest.NewRequest(http.MethodGet, "/tools", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	listed := decoded["tools"].([]any)
	assert.Len(t, listed, 6)
	first := listed[0].(map[string]any)
	assert.Equal(t, "list_customers", first["name"])
	assert.NotEmpty(t, first["description"])
}

func TestInvokeListOrders(t *testing.T) {
	e := newTestServer(t, &recordingClient{})

	rec := invoke(e, "list_orders", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	assert.Equal(t, float64(1), decoded["count"])
}

func TestInvokeGetOrderMissingIsSentinelNotStatus(t *testing.T) {
	e := newTestServer(t, &recordingClient{})

	rec := invoke(e, "get_order", `{"order_id": 9999}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"error": "Order 9999 not found"}`, rec.Body.String())
}

func TestInvokeGetOrderBadArgument(t *testing.T) {
	e := newTestServer(t, &recordingClient{})

	rec := invoke(e, "get_order", `{"order_id": "abc"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestInvokeMalformedBody(t *testing.T) {
	e := newTestServer(t, &recordingClient{})

	rec := invoke(e, "list_orders", `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestInvokeUnknownTool(t *testing.T) {
	e := newTestServer(t, &recordingClient{})

	rec := invoke(e, "does_not_exist", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInvokePublishesAuditEvent(t *testing.T) {
	client := &recordingClient{}
	e := newTestServer(t, client)

	rec := invoke(e, "get_store_summary", "")
	require.Equal(t, http.StatusOK, rec.Code)

	require.Len(t, client.values, 1)
	assert.Equal(t, "get_store_summary", client.keys[0])

	var event tools.InvokedEvent
	require.NoError(t, json.Unmarshal(client.values[0], &event))
	assert.Equal(t, "get_store_summary", event.Tool)
	assert.True(t, event.Succeeded)
}
