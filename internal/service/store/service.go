package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/Additional-Code/storefront/internal/cache"
	"github.com/Additional-Code/storefront/internal/config"
	"github.com/Additional-Code/storefront/internal/entity"
	repo "github.com/Additional-Code/storefront/internal/repository/store"
	"github.com/Additional-Code/storefront/pkg/errorbank"
)

var serviceTracer = otel.Tracer("github.com/Additional-Code/storefront/service/store")

// Reader is the read surface of the store repository.
type Reader interface {
	ListCustomers(ctx context.Context) ([]*entity.Customer, error)
	GetCustomer(ctx context.Context, id int64) (*entity.Customer, error)
	ListProducts(ctx context.Context) ([]*entity.Product, error)
	ListInventory(ctx context.Context) ([]*entity.InventoryItem, error)
	ListOrders(ctx context.Context) ([]*entity.Order, error)
	GetOrder(ctx context.Context, id int64) (*entity.Order, error)
}

var _ Reader = (*repo.Repository)(nil)

// SummaryMetrics are the derived store-level metrics exposed by the tool
// surface. GrossRevenue is an exact decimal sum rounded to 2 places.
type SummaryMetrics struct {
	CustomerCount  int             `json:"customer_count"`
	OrderCount     int             `json:"order_count"`
	ProductCount   int             `json:"product_count"`
	InventoryUnits int             `json:"inventory_units"`
	GrossRevenue   decimal.Decimal `json:"gross_revenue"`
}

// Service orchestrates store reads, caching, and error translation.
type Service struct {
	repo     Reader
	cache    cache.Store
	cacheTTL time.Duration
	logger   *zap.Logger
}

// Params defines dependencies for constructing Service.
type Params struct {
	fx.In

	Repository *repo.Repository
	Cache      cache.Store
	Config     config.Config
	Logger     *zap.Logger
}

// NewService wires a new Service instance.
func NewService(p Params) *Service {
	return New(p.Repository, p.Cache, p.Config.Cache.DefaultTTL, p.Logger)
}

// New builds a Service from explicit dependencies.
func New(reader Reader, store cache.Store, ttl time.Duration, logger *zap.Logger) *Service {
	return &Service{
		repo:     reader,
		cache:    store,
		cacheTTL: ttl,
		logger:   logger,
	}
}

// ListCustomers returns all customers.
func (s *Service) ListCustomers(ctx context.Context) ([]*entity.Customer, error) {
	ctx, span := serviceTracer.Start(ctx, "StoreService.ListCustomers")
	defer span.End()

	customers, err := s.repo.ListCustomers(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		return nil, errorbank.Internal("failed to list customers", errorbank.WithCause(err))
	}
	return customers, nil
}

// GetCustomer returns one customer by id. A missing row surfaces as a
// not_found error, not an internal fault.
func (s *Service) GetCustomer(ctx context.Context, id int64) (*entity.Customer, error) {
	ctx, span := serviceTracer.Start(ctx, "StoreService.GetCustomer", trace.WithAttributes(attribute.Int64("customer.id", id)))
	defer span.End()

	customer, err := s.repo.GetCustomer(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrCustomerNotFound) {
			return nil, errorbank.NotFound("Customer not found")
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		return nil, errorbank.Internal("failed to load customer", errorbank.WithCause(err))
	}
	return customer, nil
}

// ListProducts returns the full catalog.
func (s *Service) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	ctx, span := serviceTracer.Start(ctx, "StoreService.ListProducts")
	defer span.End()

	products, err := s.repo.ListProducts(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		return nil, errorbank.Internal("failed to list products", errorbank.WithCause(err))
	}
	return products, nil
}

// ListInventory returns all inventory rows.
func (s *Service) ListInventory(ctx context.Context) ([]*entity.InventoryItem, error) {
	ctx, span := serviceTracer.Start(ctx, "StoreService.ListInventory")
	defer span.End()

	items, err := s.repo.ListInventory(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		return nil, errorbank.Internal("failed to list inventory", errorbank.WithCause(err))
	}
	return items, nil
}

// ListOrders returns all orders with their customers and items fully loaded.
func (s *Service) ListOrders(ctx context.Context) ([]*entity.Order, error) {
	ctx, span := serviceTracer.Start(ctx, "StoreService.ListOrders")
	defer span.End()

	orders, err := s.repo.ListOrders(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		return nil, errorbank.Internal("failed to list orders", errorbank.WithCause(err))
	}
	return orders, nil
}

// GetOrder returns one fully-loaded order by id, consulting cache first.
func (s *Service) GetOrder(ctx context.Context, id int64) (*entity.Order, error) {
	ctx, span := serviceTracer.Start(ctx, "StoreService.GetOrder", trace.WithAttributes(attribute.Int64("order.id", id)))
	defer span.End()

	if order, err := s.orderFromCache(ctx, id); err == nil {
		return order, nil
	} else if !errors.Is(err, cache.ErrCacheMiss) {
		if s.logger != nil {
			s.logger.Warn("orders cache read failed", zap.Int64("id", id), zap.Error(err))
		}
	}

	order, err := s.repo.GetOrder(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrOrderNotFound) {
			return nil, errorbank.NotFound("Order not found")
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		return nil, errorbank.Internal("failed to load order", errorbank.WithCause(err))
	}

	if err := s.storeOrderInCache(ctx, order); err != nil {
		if s.logger != nil {
			s.logger.Warn("orders cache write failed", zap.Int64("id", id), zap.Error(err))
		}
	}

	return order, nil
}

// Summary computes the derived store metrics. Revenue accumulates as exact
// decimals and is rounded to 2 places once, at the end.
func (s *Service) Summary(ctx context.Context) (SummaryMetrics, error) {
	ctx, span := serviceTracer.Start(ctx, "StoreService.Summary")
	defer span.End()

	customers, err := s.repo.ListCustomers(ctx)
	if err != nil {
		return SummaryMetrics{}, errorbank.Internal("failed to list customers", errorbank.WithCause(err))
	}
	orders, err := s.repo.ListOrders(ctx)
	if err != nil {
		return SummaryMetrics{}, errorbank.Internal("failed to list orders", errorbank.WithCause(err))
	}
	inventory, err := s.repo.ListInventory(ctx)
	if err != nil {
		return SummaryMetrics{}, errorbank.Internal("failed to list inventory", errorbank.WithCause(err))
	}
	products, err := s.repo.ListProducts(ctx)
	if err != nil {
		return SummaryMetrics{}, errorbank.Internal("failed to list products", errorbank.WithCause(err))
	}

	units := 0
	for _, item := range inventory {
		units += item.Quantity
	}

	revenue := decimal.Zero
	for _, order := range orders {
		revenue = revenue.Add(order.TotalAmount)
	}

	return SummaryMetrics{
		CustomerCount:  len(customers),
		OrderCount:     len(orders),
		ProductCount:   len(products),
		InventoryUnits: units,
		GrossRevenue:   revenue.Round(2),
	}, nil
}

func (s *Service) orderCacheKey(id int64) string {
	return fmt.Sprintf("orders:%d", id)
}

func (s *Service) orderFromCache(ctx context.Context, id int64) (*entity.Order, error) {
	if s.cache == nil {
		return nil, cache.ErrCacheMiss
	}
	bytes, err := s.cache.Get(ctx, s.orderCacheKey(id))
	if err != nil {
		return nil, err
	}
	var order entity.Order
	if err := json.Unmarshal(bytes, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *Service) storeOrderInCache(ctx context.Context, order *entity.Order) error {
	if s.cache == nil || order == nil {
		return nil
	}
	bytes, err := json.Marshal(order)
	if err != nil {
		return err
	}
	return s.cache.Set(ctx, s.orderCacheKey(order.ID), bytes, s.cacheTTL)
}
