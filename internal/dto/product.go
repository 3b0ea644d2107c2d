package dto

import (
	"github.com/shopspring/decimal"

	"github.com/Additional-Code/storefront/internal/entity"
)

// ProductResponse represents a catalog product on the wire.
type ProductResponse struct {
	ID          int64           `json:"id"`
	SKU         string          `json:"sku"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
}

// InventoryItemResponse carries only the product foreign key, not the
// expanded product.
type InventoryItemResponse struct {
	ID        int64  `json:"id"`
	ProductID int64  `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Location  string `json:"location"`
}

// FromProduct maps a product entity onto its wire shape.
func FromProduct(p *entity.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		SKU:         p.SKU,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
	}
}

// FromProducts maps a slice of products, always yielding a non-nil slice.
func FromProducts(products []*entity.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, FromProduct(p))
	}
	return out
}

// FromInventoryItem maps an inventory row onto its wire shape.
func FromInventoryItem(item *entity.InventoryItem) InventoryItemResponse {
	return InventoryItemResponse{
		ID:        item.ID,
		ProductID: item.ProductID,
		Quantity:  item.Quantity,
		Location:  item.Location,
	}
}

// FromInventory maps a slice of inventory rows, always yielding a non-nil slice.
func FromInventory(items []*entity.InventoryItem) []InventoryItemResponse {
	out := make([]InventoryItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, FromInventoryItem(item))
	}
	return out
}
