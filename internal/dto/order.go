package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Additional-Code/storefront/internal/entity"
)

// OrderItemResponse is an order line with its product expanded inline.
type OrderItemResponse struct {
	ID        int64           `json:"id"`
	Product   ProductResponse `json:"product"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// OrderResponse is an order with its customer and items expanded inline.
type OrderResponse struct {
	ID          int64               `json:"id"`
	Customer    CustomerResponse    `json:"customer"`
	Status      string              `json:"status"`
	TotalAmount decimal.Decimal     `json:"total_amount"`
	PlacedAt    time.Time           `json:"placed_at"`
	Items       []OrderItemResponse `json:"items"`
}

// FromOrder maps an order entity onto its wire shape. The order must have
// been loaded with its customer and items (and each item's product); the
// repository's eager-loading contract guarantees that.
func FromOrder(o *entity.Order) OrderResponse {
	resp := OrderResponse{
		ID:          o.ID,
		Status:      o.Status,
		TotalAmount: o.TotalAmount,
		PlacedAt:    o.PlacedAt,
		Items:       make([]OrderItemResponse, 0, len(o.Items)),
	}
	if o.Customer != nil {
		resp.Customer = FromCustomer(o.Customer)
	}
	for _, item := range o.Items {
		line := OrderItemResponse{
			ID:        item.ID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		}
		if item.Product != nil {
			line.Product = FromProduct(item.Product)
		}
		resp.Items = append(resp.Items, line)
	}
	return resp
}

// FromOrders maps a slice of orders, always yielding a non-nil slice.
func FromOrders(orders []*entity.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return out
}
