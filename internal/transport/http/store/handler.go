package store

import (
	"strconv"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/Additional-Code/storefront/internal/dto"
	"github.com/Additional-Code/storefront/internal/presentation/http/response"
	service "github.com/Additional-Code/storefront/internal/service/store"
	"github.com/Additional-Code/storefront/pkg/errorbank"
)

var httpTracer = otel.Tracer("github.com/Additional-Code/storefront/transport/http/store")

// Handler exposes the read-only store endpoints over HTTP.
type Handler struct {
	svc *service.Service
}

// NewHandler constructs a store Handler.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// Register routes on the provided Echo instance.
func Register(e *echo.Echo, h *Handler) {
	e.GET("/customers", h.listCustomers)
	e.GET("/customers/:id", h.getCustomer)
	e.GET("/products", h.listProducts)
	e.GET("/inventory", h.listInventory)
	e.GET("/orders", h.listOrders)
	e.GET("/orders/:id", h.getOrder)
}

func (h *Handler) listCustomers(c echo.Context) error {
	b := response.New(c)

	ctx, span := httpTracer.Start(c.Request().Context(), "customers.list")
	defer span.End()

	customers, err := h.svc.ListCustomers(ctx)
	if err != nil {
		return b.WithError(err).Build()
	}
	return b.WithData(dto.FromCustomers(customers)).Build()
}

func (h *Handler) getCustomer(c echo.Context) error {
	b := response.New(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return b.WithError(errorbank.BadRequest("invalid customer id", errorbank.WithCause(err))).Build()
	}

	ctx, span := httpTracer.Start(c.Request().Context(), "customers.get", trace.WithAttributes(attribute.Int64("customer.id", id)))
	defer span.End()

	customer, err := h.svc.GetCustomer(ctx, id)
	if err != nil {
		return b.WithError(err).Build()
	}
	return b.WithData(dto.FromCustomer(customer)).Build()
}

func (h *Handler) listProducts(c echo.Context) error {
	b := response.New(c)

	ctx, span := httpTracer.Start(c.Request().Context(), "products.list")
	defer span.End()

	products, err := h.svc.ListProducts(ctx)
	if err != nil {
		return b.WithError(err).Build()
	}
	return b.WithData(dto.FromProducts(products)).Build()
}

func (h *Handler) listInventory(c echo.Context) error {
	b := response.New(c)

	ctx, span := httpTracer.Start(c.Request().Context(), "inventory.list")
	defer span.End()

	items, err := h.svc.ListInventory(ctx)
	if err != nil {
		return b.WithError(err).Build()
	}
	return b.WithData(dto.FromInventory(items)).Build()
}

func (h *Handler) listOrders(c echo.Context) error {
	b := response.New(c)

	ctx, span := httpTracer.Start(c.Request().Context(), "orders.list")
	defer span.End()

	orders, err := h.svc.ListOrders(ctx)
	if err != nil {
		return b.WithError(err).Build()
	}
	return b.WithData(dto.FromOrders(orders)).Build()
}

func (h *Handler) getOrder(c echo.Context) error {
	b := response.New(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return b.WithError(errorbank.BadRequest("invalid order id", errorbank.WithCause(err))).Build()
	}

	ctx, span := httpTracer.Start(c.Request().Context(), "orders.get", trace.WithAttributes(attribute.Int64("order.id", id)))
	defer span.End()

	order, err := h.svc.GetOrder(ctx, id)
	if err != nil {
		return b.WithError(err).Build()
	}
	return b.WithData(dto.FromOrder(order)).Build()
}
