package entity

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"
)

// Order represents a purchase order stored in the relational database.
type Order struct {
	bun.BaseModel `bun:"table:orders"`

	ID          int64           `bun:",pk,autoincrement"`
	CustomerID  int64           `bun:"customer_id,notnull"`
	Status      string          `bun:"status,notnull"`
	TotalAmount decimal.Decimal `bun:"total_amount,notnull,type:numeric(10,2)"`
	PlacedAt    time.Time       `bun:"placed_at,nullzero,notnull,default:CURRENT_TIMESTAMP"`

	Customer *Customer    `bun:"rel:belongs-to,join:customer_id=id"`
	Items    []*OrderItem `bun:"rel:has-many,join:id=order_id"`
}

// OrderItem is a single line of an order, priced at purchase time.
type OrderItem struct {
	bun.BaseModel `bun:"table:order_items"`

	ID        int64           `bun:",pk,autoincrement"`
	OrderID   int64           `bun:"order_id,notnull"`
	ProductID int64           `bun:"product_id,notnull"`
	Quantity  int             `bun:"quantity,notnull"`
	UnitPrice decimal.Decimal `bun:"unit_price,notnull,type:numeric(10,2)"`

	Order   *Order   `bun:"rel:belongs-to,join:order_id=id"`
	Product *Product `bun:"rel:belongs-to,join:product_id=id"`
}
