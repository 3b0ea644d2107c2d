package tools

import (
	"go.uber.org/fx"

	"github.com/labstack/echo/v4"

	"github.com/Additional-Code/storefront/internal/config"
)

// Module wires the tool-invocation transport.
var Module = fx.Options(
	fx.Provide(NewHandler),
	fx.Invoke(func(e *echo.Echo, cfg config.Config, h *Handler) {
		Register(e, cfg, h)
	}),
)
