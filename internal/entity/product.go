package entity

import (
	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"
)

// Product is a catalog entry. Price is a fixed-point decimal; never a float.
type Product struct {
	bun.BaseModel `bun:"table:products"`

	ID          int64           `bun:",pk,autoincrement"`
	SKU         string          `bun:"sku,notnull,unique"`
	Name        string          `bun:"name,notnull"`
	Description string          `bun:"description,notnull"`
	Price       decimal.Decimal `bun:"price,notnull,type:numeric(10,2)"`

	InventoryItems []*InventoryItem `bun:"rel:has-many,join:id=product_id"`
	OrderItems     []*OrderItem     `bun:"rel:has-many,join:id=product_id"`
}

// InventoryItem is the on-hand quantity of a product at one location.
type InventoryItem struct {
	bun.BaseModel `bun:"table:inventory"`

	ID        int64  `bun:",pk,autoincrement"`
	ProductID int64  `bun:"product_id,notnull"`
	Quantity  int    `bun:"quantity,notnull"`
	Location  string `bun:"location,notnull"`

	Product *Product `bun:"rel:belongs-to,join:product_id=id"`
}
