// Package entity defines the domain models for the shoppinglist feature.
package entity

// ShoppingItem represents one entry on a user's shopping list.
// Items are ephemeral per-user state: they live primarily in Redis and fall
// back to relational storage when Redis is unavailable.
type ShoppingItem struct {
	ID       string `json:"id"` // UUID assigned at creation
	Name     string `json:"name"`
	Category string `json:"category"`
	Quantity string `json:"quantity"`
	Unit     string `json:"unit"`
	Checked  bool   `json:"checked"`
}
