// Package tools implements the tool-invocation surface for agentic clients:
// named callable operations that accept JSON arguments and return
// JSON-serializable results, independent of the HTTP resource API.
package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/Additional-Code/storefront/pkg/errorbank"
)

// Args carries the decoded JSON arguments of a tool call.
type Args map[string]any

// Int64 coerces the named argument to an integer. Coercion failures are a
// bad_request, raised before any store access happens.
func (a Args) Int64(key string) (int64, error) {
	raw, ok := a[key]
	if !ok {
		return 0, errorbank.BadRequest(fmt.Sprintf("missing argument: %s", key))
	}
	switch v := raw.(type) {
	case float64:
		if v != math.Trunc(v) {
			return 0, errorbank.BadRequest(fmt.Sprintf("argument %s must be an integer", key))
		}
		return int64(v), nil
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, errorbank.BadRequest(fmt.Sprintf("argument %s must be an integer", key), errorbank.WithCause(err))
		}
		return n, nil
	case string:
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, errorbank.BadRequest(fmt.Sprintf("argument %s must be an integer", key), errorbank.WithCause(err))
		}
		return n, nil
	case int:
		return int64(v), nil
	case int64:
		return v, nil
	default:
		return 0, errorbank.BadRequest(fmt.Sprintf("argument %s must be an integer", key))
	}
}

// HandlerFunc executes a tool call. The returned value must serialize to a
// JSON object.
type HandlerFunc func(ctx context.Context, args Args) (any, error)

// Tool is a named callable operation.
type Tool struct {
	Name        string
	Description string
	Handler     HandlerFunc
}

// Descriptor is the client-visible description of a registered tool.
type Descriptor struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Registry holds the registered tools in registration order.
type Registry struct {
	order []string
	tools map[string]Tool
}

// NewRegistry constructs an empty Registry.
func NewRegistry() *Registry {
	return &Registry{tools: make(map[string]Tool)}
}

// Register adds a tool. Duplicate or anonymous registrations are rejected.
func (r *Registry) Register(t Tool) error {
	if t.Name == "" {
		return fmt.Errorf("tool name is required")
	}
	if t.Handler == nil {
		return fmt.Errorf("tool %s has no handler", t.Name)
	}
	if _, exists := r.tools[t.Name]; exists {
		return fmt.Errorf("tool %s already registered", t.Name)
	}
	r.tools[t.Name] = t
	r.order = append(r.order, t.Name)
	return nil
}

// Get looks up a tool by name.
func (r *Registry) Get(name string) (Tool, bool) {
	t, ok := r.tools[name]
	return t, ok
}

// Descriptors lists the registered tools in registration order.
func (r *Registry) Descriptors() []Descriptor {
	out := make([]Descriptor, 0, len(r.order))
	for _, name := range r.order {
		t := r.tools[name]
		out = append(out, Descriptor{Name: t.Name, Description: t.Description})
	}
	return out
}

// Invoke runs the named tool. Unknown names are a not_found error.
func (r *Registry) Invoke(ctx context.Context, name string, args Args) (any, error) {
	t, ok := r.Get(name)
	if !ok {
		return nil, errorbank.NotFound(fmt.Sprintf("unknown tool: %s", name))
	}
	return t.Handler(ctx, args)
}
