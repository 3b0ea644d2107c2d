package tools

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Additional-Code/storefront/internal/entity"
	repo "github.com/Additional-Code/storefront/internal/repository/store"
	service "github.com/Additional-Code/storefront/internal/service/store"
)

type fixtureReader struct {
	customers []*entity.Customer
	products  []*entity.Product
	inventory []*entity.InventoryItem
	orders    []*entity.Order
}

func (f *fixtureReader) ListCustomers(context.Context) ([]*entity.Customer, error) {
	return f.customers, nil
}

func (f *fixtureReader) GetCustomer(_ context.Context, id int64) (*entity.Customer, error) {
	for _, c := range f.customers {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, repo.ErrCustomerNotFound
}

func (f *fixtureReader) ListProducts(context.Context) ([]*entity.Product, error) {
	return f.products, nil
}

func (f *fixtureReader) ListInventory(context.Context) ([]*entity.InventoryItem, error) {
	return f.inventory, nil
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

// seededReader mirrors the canonical seed scenario: one customer, one
// product, one inventory row, one order with one item.
func seededReader() *fixtureReader {
	now := time.Now().UTC()
	customer := &entity.Customer{ID: 1, Email: "ada@example.com", FullName: "Ada Lovelace", Address: "London", CreatedAt: now}
	product := &entity.Product{ID: 1, SKU: "ABC", Name: "Compass", Description: "Pocket compass.", Price: decimal.RequireFromString("9.99")}
	order := &entity.Order{
		ID:          1,
		CustomerID:  1,
		Status:      "shipped",
		TotalAmount: decimal.RequireFromString("19.98"),
		PlacedAt:    now,
		Customer:    customer,
		Items: []*entity.OrderItem{
			{ID: 1, OrderID: 1, ProductID: 1, Quantity: 2, UnitPrice: decimal.RequireFromString("9.99"), Product: product},
		},
	}
	return &fixtureReader{
		customers: []*entity.Customer{customer},
		products:  []*entity.Product{product},
		inventory: []*entity.InventoryItem{{ID: 1, ProductID: 1, Quantity: 5, Location: "warehouse-east"}},
		orders:    []*entity.Order{order},
	}
}

func seededRegistry(t *testing.T) *Registry {
	t.Helper()
	svc := service.New(seededReader(), nil, time.Minute, zap.NewNop())
	reg, err := NewStoreRegistry(svc)
	require.NoError(t, err)
	return reg
}

// roundTrip serializes a tool result the way the transport does and decodes
// it back into a generic map for assertions.
func roundTrip(t *testing.T, result any) map[string]any {
	t.Helper()
	raw, err := json.Marshal(result)
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	return decoded
}

func TestListCustomersToolShape(t *testing.T) {
	reg := seededRegistry(t)

	result, err := reg.Invoke(context.Background(), "list_customers", Args{})
	require.NoError(t, err)

	decoded := roundTrip(t, result)
	assert.Equal(t, float64(1), decoded["count"])
	customers := decoded["customers"].([]any)
	require.Len(t, customers, 1)
	assert.Equal(t, "ada@example.com", customers[0].(map[string]any)["email"])
}

func TestListOrdersToolNestedShape(t *testing.T) {
	reg := seededRegistry(t)

	result, err := reg.Invoke(context.Background(), "list_orders", Args{})
	require.NoError(t, err)

	decoded := roundTrip(t, result)
	orders := decoded["orders"].([]any)
	require.Len(t, orders, 1)
	order := orders[0].(map[string]any)
	assert.Equal(t, float64(1), order["customer"].(map[string]any)["id"])
	items := order["items"].([]any)
	require.Len(t, items, 1)
	assert.Equal(t, "ABC", items[0].(map[string]any)["product"].(map[string]any)["sku"])
}

func TestGetOrderToolFound(t *testing.T) {
	reg := seededRegistry(t)

	result, err := reg.Invoke(context.Background(), "get_order", Args{"order_id": float64(1)})
	require.NoError(t, err)

	decoded := roundTrip(t, result)
	assert.Equal(t, float64(1), decoded["id"])
	assert.NotContains(t, decoded, "error")
}

func TestGetOrderToolMissingReturnsErrorField(t *testing.T) {
	reg := seededRegistry(t)

	result, err := reg.Invoke(context.Background(), "get_order", Args{"order_id": float64(9999)})
	require.NoError(t, err)

	decoded := roundTrip(t, result)
	assert.Equal(t, "Order 9999 not found", decoded["error"])
}

func TestStoreSummaryToolMetrics(t *testing.T) {
	reg := seededRegistry(t)

	result, err := reg.Invoke(context.Background(), "get_store_summary", Args{})
	require.NoError(t, err)

	decoded := roundTrip(t, result)
	metrics := decoded["metrics"].(map[string]any)
	assert.Equal(t, float64(1), metrics["customer_count"])
	assert.Equal(t, float64(1), metrics["order_count"])
	assert.Equal(t, float64(1), metrics["product_count"])
	assert.Equal(t, float64(5), metrics["inventory_units"])
	assert.Equal(t, 19.98, metrics["gross_revenue"])
}

func TestStoreRegistryListsAllTools(t *testing.T) {
	reg := seededRegistry(t)

	names := make([]string, 0)
	for _, d := range reg.Descriptors() {
		names = append(names, d.Name)
	}
	assert.Equal(t, []string{
		"list_customers",
		"list_products",
		"list_inventory",
		"list_orders",
		"get_order",
		"get_store_summary",
	}, names)
}
