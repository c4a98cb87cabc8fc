package models

import "time"

// Review is stored in the relational database and is immutable once created.
// ProductID is the hex id of a product in the document store; the cross-store
// reference is validated at creation time only.
type Review struct {
	ID        uint      `gorm:"primarykey"        json:"id"`
	UserID    uint      `gorm:"not null;index"    json:"userId"`
	ProductID string    `gorm:"size:24;not null;index" json:"productId"`
	Score     int       `gorm:"not null"          json:"score"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreateReviewInput is the body of POST /reviews.
type CreateReviewInput struct {
	UserID    uint   `json:"userId"    validate:"required"`
	ProductID string `json:"productId" validate:"required"`
	Score     int    `json:"score"     validate:"required,gte=1,lte=5"`
	Content   string `json:"content"   validate:"required,max=2000"`
}
