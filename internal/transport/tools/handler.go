package tools

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/Additional-Code/storefront/internal/config"
	"github.com/Additional-Code/storefront/internal/messaging"
	"github.com/Additional-Code/storefront/internal/presentation/http/response"
	"github.com/Additional-Code/storefront/internal/tools"
	"github.com/Additional-Code/storefront/pkg/errorbank"
)

var toolsTracer = otel.Tracer("github.com/Additional-Code/storefront/transport/tools")

// Handler serves the tool-invocation surface over HTTP: GET {prefix} lists
// the registered tools, POST {prefix}/{name} invokes one with JSON
// arguments.
type Handler struct {
	registry  *tools.Registry
	logger    *zap.Logger
	publisher messaging.Client
	audit     bool
}

// Params defines dependencies for constructing Handler.
type Params struct {
	fx.In

	Registry  *tools.Registry
	Config    config.Config
	Logger    *zap.Logger
	Publisher messaging.Client
}

// NewHandler constructs a tools Handler.
func NewHandler(p Params) *Handler {
	return &Handler{
		registry:  p.Registry,
		logger:    p.Logger,
		publisher: p.Publisher,
		audit:     p.Config.Messaging.Enabled,
	}
}

// Register mounts the tool routes under the configured path prefix.
func Register(e *echo.Echo, cfg config.Config, h *Handler) {
	g := e.Group(cfg.Tools.PathPrefix)
	g.GET("", h.list)
	g.POST("/:name", h.invoke)
}

func (h *Handler) list(c echo.Context) error {
	return response.New(c).WithData(map[string]any{
		"tools": h.registry.Descriptors(),
	}).Build()
}

func (h *Handler) invoke(c echo.Context) error {
	b := response.New(c)
	name := c.Param("name")

	args, err := decodeArgs(c.Request().Body)
	if err != nil {
		return b.WithError(errorbank.BadRequest("invalid tool arguments", errorbank.WithCause(err))).Build()
	}

	ctx, span := toolsTracer.Start(c.Request().Context(), "tools.invoke", trace.WithAttributes(attribute.String("tool.name", name)))
	defer span.End()

	start := time.Now()
	result, err := h.registry.Invoke(ctx, name, args)
	h.publishInvoked(ctx, name, time.Since(start), err == nil)
	if err != nil {
		return b.WithError(err).Build()
	}

	return c.JSON(http.StatusOK, result)
}

// decodeArgs reads an optional JSON object body. An empty body means no
// arguments.
func decodeArgs(body io.Reader) (tools.Args, error) {
	raw, err := io.ReadAll(body)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return tools.Args{}, nil
	}
	args := tools.Args{}
	if err := json.Unmarshal(raw, &args); err != nil {
		return nil, err
	}
	return args, nil
}

func (h *Handler) publishInvoked(ctx context.Context, name string, elapsed time.Duration, succeeded bool) {
	if !h.audit || h.publisher == nil {
		return
	}
	event := tools.InvokedEvent{
		Tool:       name,
		Succeeded:  succeeded,
		DurationMS: elapsed.Milliseconds(),
		InvokedAt:  time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		if h.logger != nil {
			h.logger.Error("marshal tool invoked", zap.Error(err))
		}
		return
	}
	if err := h.publisher.Publish(ctx, []byte(name), payload); err != nil {
		if h.logger != nil {
			h.logger.Error("publish tool invoked", zap.Error(err))
		}
	}
}
