package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Additional-Code/storefront/internal/entity"
)

func sampleOrder(t *testing.T) *entity.Order {
	t.Helper()
	placed := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	return &entity.Order{
		ID:          1,
		CustomerID:  1,
		Status:      "shipped",
		TotalAmount: decimal.RequireFromString("19.98"),
		PlacedAt:    placed,
		Customer: &entity.Customer{
			ID:        1,
			Email:     "ada@example.com",
			FullName:  "Ada Lovelace",
			Address:   "12 Analytical Way, London",
			CreatedAt: placed,
		},
		Items: []*entity.OrderItem{
			{
				ID:        1,
				OrderID:   1,
				ProductID: 1,
				Quantity:  2,
				UnitPrice: decimal.RequireFromString("9.99"),
				Product: &entity.Product{
					ID:          1,
					SKU:         "ABC",
					Name:        "Antique Brass Compass",
					Description: "Pocket compass with leather case.",
					Price:       decimal.RequireFromString("9.99"),
				},
			},
		},
	}
}

func TestFromOrderExpandsRelations(t *testing.T) {
	resp := FromOrder(sampleOrder(t))

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "shipped", resp.Status)
	assert.Equal(t, int64(1), resp.Customer.ID)
	assert.Equal(t, "ada@example.com", resp.Customer.Email)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "ABC", resp.Items[0].Product.SKU)
	assert.Equal(t, 2, resp.Items[0].Quantity)
	assert.True(t, resp.Items[0].UnitPrice.Equal(decimal.RequireFromString("9.99")))
	assert.True(t, resp.TotalAmount.Equal(decimal.RequireFromString("19.98")))
}

func TestOrderResponseJSONShape(t *testing.T) {
	raw, err := json.Marshal(FromOrder(sampleOrder(t)))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))

	// Monetary values serialize as JSON numbers, not strings.
	assert.Equal(t, 19.98, decoded["total_amount"])

	customer, ok := decoded["customer"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Ada Lovelace", customer["full_name"])

	items, ok := decoded["items"].([]any)
	require.True(t, ok)
	require.Len(t, items, 1)
	item := items[0].(map[string]any)
	product := item["product"].(map[string]any)
	assert.Equal(t, "ABC", product["sku"])
	assert.Equal(t, 9.99, product["price"])
}

func TestFromOrdersEmptyYieldsEmptySlice(t *testing.T) {
	out := FromOrders(nil)
	require.NotNil(t, out)
	assert.Empty(t, out)

	raw, err := json.Marshal(out)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(raw))
}

func TestFromInventoryCarriesProductIDOnly(t *testing.T) {
	items := FromInventory([]*entity.InventoryItem{
		{ID: 3, ProductID: 7, Quantity: 5, Location: "warehouse-east"},
	})
	require.Len(t, items, 1)
	assert.Equal(t, int64(7), items[0].ProductID)

	raw, err := json.Marshal(items[0])
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.NotContains(t, decoded, "product")
}
