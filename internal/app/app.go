package app

import (
	"go.uber.org/fx"

	"github.com/Additional-Code/storefront/internal/cache"
	"github.com/Additional-Code/storefront/internal/config"
	"github.com/Additional-Code/storefront/internal/database"
	"github.com/Additional-Code/storefront/internal/logger"
	"github.com/Additional-Code/storefront/internal/messaging"
	"github.com/Additional-Code/storefront/internal/observability"
	repositorystore "github.com/Additional-Code/storefront/internal/repository/store"
	httpserver "github.com/Additional-Code/storefront/internal/server/http"
	servicestore "github.com/Additional-Code/storefront/internal/service/store"
	"github.com/Additional-Code/storefront/internal/tools"
	transporthttp "github.com/Additional-Code/storefront/internal/transport/http"
	transporttools "github.com/Additional-Code/storefront/internal/transport/tools"
	"github.com/Additional-Code/storefront/internal/worker"
	"github.com/Additional-Code/storefront/internal/worker/toolaudit"
)

// Core provides the foundational modules shared across executables.
var Core = fx.Options(
	config.Module,
	cache.Module,
	database.Module,
	logger.Module,
	messaging.Module,
	observability.Module,
	repositorystore.Module,
	servicestore.Module,
	tools.Module,
)

// HTTP wires both surfaces, resource API and tools, on the main server.
var HTTP = fx.Options(
	Core,
	httpserver.Module,
	transporthttp.Module,
	transporttools.Module,
)

// Tools serves only the tool-invocation surface, for non-HTTP hosts that
// still want to reach the store through tool calls.
var Tools = fx.Options(
	Core,
	httpserver.ToolsModule,
	transporttools.Module,
)

// Worker exposes background audit processing.
var Worker = fx.Options(
	Core,
	worker.Module,
	toolaudit.Module,
)

// Module is the default application wiring (both surfaces).
var Module = HTTP
