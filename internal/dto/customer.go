package dto

import (
	"time"

	"github.com/Additional-Code/storefront/internal/entity"
)

// CustomerResponse represents a customer as exposed via transport layers.
type CustomerResponse struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
}

// FromCustomer maps a customer entity onto its wire shape.
func FromCustomer(c *entity.Customer) CustomerResponse {
	return CustomerResponse{
		ID:        c.ID,
		Email:     c.Email,
		FullName:  c.FullName,
		Address:   c.Address,
		CreatedAt: c.CreatedAt,
	}
}

// FromCustomers maps a slice of customers, always yielding a non-nil slice.
func FromCustomers(customers []*entity.Customer) []CustomerResponse {
	out := make([]CustomerResponse, 0, len(customers))
	for _, c := range customers {
		out = append(out, FromCustomer(c))
	}
	return out
}
