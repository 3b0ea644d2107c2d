package http

import (
	"go.uber.org/fx"

	storetransport "github.com/Additional-Code/storefront/internal/transport/http/store"
)

// Module aggregates all HTTP transport handlers.
var Module = fx.Options(
	storetransport.Module,
)
