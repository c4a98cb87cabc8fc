package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Product is a catalog entity held in the document store. AverageScore is a
// derived field: it is never written by catalog endpoints, only recomputed
// from reviews, and stays null until the first review lands.
type Product struct {
	ID           primitive.ObjectID   `bson:"_id,omitempty"           json:"_id"`
	Name         string               `bson:"name"                    json:"name"`
	About        string               `bson:"about"                   json:"about"`
	Price        float64              `bson:"price"                   json:"price"`
	CategoryIDs  []primitive.ObjectID `bson:"categoryIds"             json:"categoryIds"`
	AverageScore *float64             `bson:"average_score,omitempty" json:"average_score,omitempty"`
}

// Category is a catalog entity referenced by products (many-to-many via
// Product.CategoryIDs, no back-pointer).
type Category struct {
	ID   primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name string             `bson:"name"          json:"name"`
}

// ProductWithCategories is the read shape with category references resolved.
// Dangling category ids are simply omitted from Categories.
type ProductWithCategories struct {
	Product    `bson:",inline"`
	Categories []Category `json:"categories"`
}

// ProductFilter narrows a catalog listing. Name and About match as partial,
// case-insensitive substrings; MaxPrice is an inclusive upper bound.
type ProductFilter struct {
	Name     string
	About    string
	MaxPrice *float64
}

// CreateProductInput is the body of POST /products and PUT /products/{id}.
type CreateProductInput struct {
	Name        string   `json:"name"        validate:"required,max=255"`
	About       string   `json:"about"       validate:"required"`
	Price       float64  `json:"price"       validate:"required,gt=0"`
	CategoryIDs []string `json:"categoryIds" validate:"nullable"` // zero or more
}

// CreateCategoryInput is the body of POST /categories.
type CreateCategoryInput struct {
	Name string `json:"name" validate:"required,max=255"`
}
