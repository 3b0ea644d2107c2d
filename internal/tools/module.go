package tools

import "go.uber.org/fx"

// Module provides the store tool registry to Fx.
var Module = fx.Provide(NewStoreRegistry)
