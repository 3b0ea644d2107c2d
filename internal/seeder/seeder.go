package seeder

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/Additional-Code/storefront/internal/database"
	"github.com/Additional-Code/storefront/internal/entity"
)

// Module provides the seeder to Fx.
var Module = fx.Provide(New)

// Seeder populates the store with example data for local/dev setups. The
// serving layers never write; seeding is the only writer besides migrations.
type Seeder struct {
	db     *bun.DB
	logger *zap.Logger
}

// New constructs a Seeder backed by the primary database connection.
func New(conns *database.Connections, logger *zap.Logger) *Seeder {
	return &Seeder{db: conns.Writer, logger: logger}
}

// Store seeds a small consistent data set: customers, products, inventory,
// and one order with an item, skipping rows that already exist.
func (s *Seeder) Store(ctx context.Context) error {
	now := time.Now().UTC()

	customers := []entity.Customer{
		{ID: 1, Email: "ada@example.com", FullName: "Ada Lovelace", Address: "12 Analytical Way, London", CreatedAt: now},
		{ID: 2, Email: "grace@example.com", FullName: "Grace Hopper", Address: "7 Compiler Court, Arlington", CreatedAt: now},
	}
	for i := range customers {
		if _, err := s.db.NewInsert().Model(&customers[i]).
			On("CONFLICT (email) DO NOTHING").
			Exec(ctx); err != nil {
			return err
		}
	}

	products := []entity.Product{
		{ID: 1, SKU: "ABC", Name: "Antique Brass Compass", Description: "Pocket compass with leather case.", Price: decimal.RequireFromString("9.99")},
		{ID: 2, SKU: "KEY-01", Name: "Mechanical Keyboard", Description: "Tenkeyless, tactile switches.", Price: decimal.RequireFromString("89.50")},
	}
	for i := range products {
		if _, err := s.db.NewInsert().Model(&products[i]).
			On("CONFLICT (sku) DO NOTHING").
			Exec(ctx); err != nil {
			return err
		}
	}

	inventory := []entity.InventoryItem{
		{ID: 1, ProductID: 1, Quantity: 5, Location: "warehouse-east"},
		{ID: 2, ProductID: 2, Quantity: 12, Location: "warehouse-west"},
	}
	for i := range inventory {
		if _, err := s.db.NewInsert().Model(&inventory[i]).
			On("CONFLICT (id) DO NOTHING").
			Exec(ctx); err != nil {
			return err
		}
	}

	orders := []entity.Order{
		{ID: 1, CustomerID: 1, Status: "shipped", TotalAmount: decimal.RequireFromString("19.98"), PlacedAt: now},
	}
	for i := range orders {
		if _, err := s.db.NewInsert().Model(&orders[i]).
			On("CONFLICT (id) DO NOTHING").
			Exec(ctx); err != nil {
			return err
		}
	}

	items := []entity.OrderItem{
		{ID: 1, OrderID: 1, ProductID: 1, Quantity: 2, UnitPrice: decimal.RequireFromString("9.99")},
	}
	for i := range items {
		if _, err := s.db.NewInsert().Model(&items[i]).
			On("CONFLICT (id) DO NOTHING").
			Exec(ctx); err != nil {
			return err
		}
	}

	if s.logger != nil {
		s.logger.Info("seeded store data",
			zap.Int("customers", len(customers)),
			zap.Int("products", len(products)),
			zap.Int("inventory", len(inventory)),
			zap.Int("orders", len(orders)),
		)
	}
	return nil
}
