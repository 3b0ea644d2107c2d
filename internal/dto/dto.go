// Package dto declares the wire representations of store entities. Every
// response shape is an explicit struct built by a mapping function; entities
// are never serialized directly.
package dto

import "github.com/shopspring/decimal"

func init() {
	// Monetary fields render as JSON numbers (9.99, not "9.99").
	decimal.MarshalJSONWithoutQuotes = true
}
