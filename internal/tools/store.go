package tools

import (
	"context"
	"errors"
	"fmt"

	"github.com/Additional-Code/storefront/internal/dto"
	service "github.com/Additional-Code/storefront/internal/service/store"
	"github.com/Additional-Code/storefront/pkg/errorbank"
)

// NewStoreRegistry builds the registry of store tools backed by the given
// service. On the tool surface a missing order is reported through an
// "error" field in an otherwise normal result, never through an error
// channel; agentic clients depend on that shape.
func NewStoreRegistry(svc *service.Service) (*Registry, error) {
	reg := NewRegistry()

	defs := []Tool{
		{
			Name:        "list_customers",
			Description: "Return all customers with their metadata.",
			Handler: func(ctx context.Context, _ Args) (any, error) {
				customers, err := svc.ListCustomers(ctx)
				if err != nil {
					return nil, err
				}
				return map[string]any{
					"customers": dto.FromCustomers(customers),
					"count":     len(customers),
				}, nil
			},
		},
		{
			Name:        "list_products",
			Description: "Return the available products in the store.",
			Handler: func(ctx context.Context, _ Args) (any, error) {
				products, err := svc.ListProducts(ctx)
				if err != nil {
					return nil, err
				}
				return map[string]any{
					"products": dto.FromProducts(products),
					"count":    len(products),
				}, nil
			},
		},
		{
			Name:        "list_inventory",
			Description: "Return all inventory records.",
			Handler: func(ctx context.Context, _ Args) (any, error) {
				items, err := svc.ListInventory(ctx)
				if err != nil {
					return nil, err
				}
				return map[string]any{
					"inventory": dto.FromInventory(items),
					"count":     len(items),
				}, nil
			},
		},
		{
			Name:        "list_orders",
			Description: "Return every order with associated items and customers.",
			Handler: func(ctx context.Context, _ Args) (any, error) {
				orders, err := svc.ListOrders(ctx)
				if err != nil {
					return nil, err
				}
				return map[string]any{
					"orders": dto.FromOrders(orders),
					"count":  len(orders),
				}, nil
			},
		},
		{
			Name:        "get_order",
			Description: "Return a single order by ID with full detail.",
			Handler: func(ctx context.Context, args Args) (any, error) {
				id, err := args.Int64("order_id")
				if err != nil {
					return nil, err
				}
				order, err := svc.GetOrder(ctx, id)
				if err != nil {
					var appErr *errorbank.AppError
					if errors.As(err, &appErr) && appErr.Kind() == errorbank.KindNotFound {
						return map[string]any{
							"error": fmt.Sprintf("Order %d not found", id),
						}, nil
					}
					return nil, err
				}
				return dto.FromOrder(order), nil
			},
		},
		{
			Name:        "get_store_summary",
			Description: "Provide a quick overview of store metrics.",
			Handler: func(ctx context.Context, _ Args) (any, error) {
				metrics, err := svc.Summary(ctx)
				if err != nil {
					return nil, err
				}
				return map[string]any{"metrics": metrics}, nil
			},
		},
	}

	for _, def := range defs {
		if err := reg.Register(def); err != nil {
			return nil, err
		}
	}
	return reg, nil
}
