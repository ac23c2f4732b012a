package entity

import "time"

// Category groups products in the storefront.
type Category struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Image string `json:"image"`
}

// Product is a catalog item. Price is per Unit ("kg", "pc", ...).
type Product struct {
	ID          string    `json:"id"`
	CategoryID  string    `json:"categoryId"`
	Title       string    `json:"title"`
	Price       float64   `json:"price"`
	Unit        string    `json:"unit"`
	Image       string    `json:"image"`
	Description string    `json:"description,omitempty"`
	Tags        []string  `json:"tags,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
