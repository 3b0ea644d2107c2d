package entity

import (
	"time"

	"github.com/uptrace/bun"
)

// Customer represents a registered buyer stored in the relational database.
type Customer struct {
	bun.BaseModel `bun:"table:customers"`

	ID        int64     `bun:",pk,autoincrement"`
	Email     string    `bun:"email,notnull,unique"`
	FullName  string    `bun:"full_name,notnull"`
	Address   string    `bun:"address,notnull"`
	CreatedAt time.Time `bun:"created_at,nullzero,notnull,default:CURRENT_TIMESTAMP"`

	Orders []*Order `bun:"rel:has-many,join:id=customer_id"`
}
