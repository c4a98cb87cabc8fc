package models

import "time"

// Order is stored in the relational database. ProductIDs is a snapshot of the
// product references given at creation time and Total is frozen at creation:
// later price changes or product deletions never rewrite an existing order.
type Order struct {
	ID         uint      `gorm:"primarykey"                    json:"id"`
	UserID     uint      `gorm:"not null;index"                json:"userId"`
	ProductIDs []string  `gorm:"serializer:json;type:text"     json:"productIds"`
	Total      float64   `gorm:"not null"                      json:"total"`
	Payment    bool      `gorm:"not null;default:false"        json:"payment"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// OrderWithRefs is the read shape with user and product references resolved.
// Dangling product references are dropped from Products; a dangling user
// reference leaves User nil.
type OrderWithRefs struct {
	Order
	User     *PublicUser `json:"user,omitempty"`
	Products []Product   `json:"products"`
}

// CreateOrderInput is the body of POST /orders.
type CreateOrderInput struct {
	UserID     uint     `json:"userId"     validate:"required"`
	ProductIDs []string `json:"productIds" validate:"required"`
}

// UpdateOrderInput is the body of PATCH /orders/{id}. Only the payment flag
// is mutable after creation.
type UpdateOrderInput struct {
	Payment *bool `json:"payment" validate:"required"`
}
