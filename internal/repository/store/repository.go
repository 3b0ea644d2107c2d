package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/Additional-Code/storefront/internal/database"
	"github.com/Additional-Code/storefront/internal/entity"
)

var repoTracer = otel.Tracer("github.com/Additional-Code/storefront/repository/store")

// Sentinel errors for primary-key lookups that matched no row. Absent is a
// normal outcome for callers, not a fault.
var (
	ErrCustomerNotFound = errors.New("customer not found")
	ErrOrderNotFound    = errors.New("order not found")
)

// Repository exposes the read operations of the store. All queries run
// against the reader connection; this system never writes.
type Repository struct {
	reader *bun.DB
}

// NewRepository wires a repository backed by the configured database connections.
func NewRepository(conns *database.Connections) *Repository {
	return &Repository{reader: conns.Reader}
}

// ListCustomers returns all customers in storage-native order.
func (r *Repository) ListCustomers(ctx context.Context) ([]*entity.Customer, error) {
	ctx, span := repoTracer.Start(ctx, "StoreRepository.ListCustomers")
	defer span.End()

	var customers []*entity.Customer
	if err := r.reader.NewSelect().Model(&customers).Scan(ctx); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "select failed")
		return nil, err
	}
	return customers, nil
}

// GetCustomer fetches a customer by primary key.
func (r *Repository) GetCustomer(ctx context.Context, id int64) (*entity.Customer, error) {
	ctx, span := repoTracer.Start(ctx, "StoreRepository.GetCustomer", trace.WithAttributes(attribute.Int64("customer.id", id)))
	defer span.End()

	customer := new(entity.Customer)
	err := r.reader.NewSelect().Model(customer).Where("id = ?", id).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		span.SetStatus(codes.Error, "not found")
		return nil, ErrCustomerNotFound
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "select failed")
		return nil, err
	}
	return customer, nil
}

// ListProducts returns the full catalog.
func (r *Repository) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	ctx, span := repoTracer.Start(ctx, "StoreRepository.ListProducts")
	defer span.End()

	var products []*entity.Product
	if err := r.reader.NewSelect().Model(&products).Scan(ctx); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "select failed")
		return nil, err
	}
	return products, nil
}

// ListInventory returns every inventory row. The product relation is not
// loaded; the wire schema carries only product_id.
func (r *Repository) ListInventory(ctx context.Context) ([]*entity.InventoryItem, error) {
	ctx, span := repoTracer.Start(ctx, "StoreRepository.ListInventory")
	defer span.End()

	var items []*entity.InventoryItem
	if err := r.reader.NewSelect().Model(&items).Scan(ctx); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "select failed")
		return nil, err
	}
	return items, nil
}

// ListOrders returns all orders with Customer and Items.Product eagerly
// loaded, one batched query per relation level. The whole load runs in a
// read-only transaction so the customer and item rows observed are consistent
// with the order rows observed.
func (r *Repository) ListOrders(ctx context.Context) ([]*entity.Order, error) {
	ctx, span := repoTracer.Start(ctx, "StoreRepository.ListOrders")
	defer span.End()

	var orders []*entity.Order
	err := r.reader.RunInTx(ctx, &sql.TxOptions{ReadOnly: true}, func(ctx context.Context, tx bun.Tx) error {
		return tx.NewSelect().
			Model(&orders).
			Relation("Customer").
			Relation("Items", func(q *bun.SelectQuery) *bun.SelectQuery {
				return q.Order("id ASC")
			}).
			Relation("Items.Product").
			Scan(ctx)
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "select failed")
		return nil, err
	}
	return orders, nil
}

// GetOrder fetches one order by primary key under the same eager-loading
// contract as ListOrders.
func (r *Repository) GetOrder(ctx context.Context, id int64) (*entity.Order, error) {
	ctx, span := repoTracer.Start(ctx, "StoreRepository.GetOrder", trace.WithAttributes(attribute.Int64("order.id", id)))
	defer span.End()

	order := new(entity.Order)
	err := r.reader.RunInTx(ctx, &sql.TxOptions{ReadOnly: true}, func(ctx context.Context, tx bun.Tx) error {
		return tx.NewSelect().
			Model(order).
			Relation("Customer").
			Relation("Items", func(q *bun.SelectQuery) *bun.SelectQuery {
				return q.Order("id ASC")
			}).
			Relation("Items.Product").
			Where("?TableAlias.id = ?", id).
			Scan(ctx)
	})
	if errors.Is(err, sql.ErrNoRows) {
		span.SetStatus(codes.Error, "not found")
		return nil, ErrOrderNotFound
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "select failed")
		return nil, err
	}
	return order, nil
}
