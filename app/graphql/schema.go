// Package graphql exposes a read-only view of the catalog. Mutations stay on
// the REST surface so every write keeps flowing through the broadcaster.
package graphql

import (
	"errors"

	"github.com/graphql-go/graphql"

	"github.com/firelovers/storefront/app/models"
	"github.com/firelovers/storefront/app/services"
)

var categoryType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Category",
	Fields: graphql.Fields{
		"_id": &graphql.Field{
			Type: graphql.NewNonNull(graphql.String),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(models.Category).ID.Hex(), nil
			},
		},
		"name": &graphql.Field{
			Type: graphql.NewNonNull(graphql.String),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(models.Category).Name, nil
			},
		},
	},
})

var productType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Product",
	Fields: graphql.Fields{
		"_id": &graphql.Field{
			Type: graphql.NewNonNull(graphql.String),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(models.ProductWithCategories).ID.Hex(), nil
			},
		},
		"name": &graphql.Field{
			Type: graphql.NewNonNull(graphql.String),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(models.ProductWithCategories).Name, nil
			},
		},
		"about": &graphql.Field{
			Type: graphql.NewNonNull(graphql.String),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(models.ProductWithCategories).About, nil
			},
		},
		"price": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Float),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(models.ProductWithCategories).Price, nil
			},
		},
		"average_score": &graphql.Field{
			Type: graphql.Float,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				score := p.Source.(models.ProductWithCategories).AverageScore
				if score == nil {
					return nil, nil
				}
				return *score, nil
			},
		},
		"categories": &graphql.Field{
			Type: graphql.NewList(graphql.NewNonNull(categoryType)),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(models.ProductWithCategories).Categories, nil
			},
		},
	},
})

// NewSchema builds the root query over the catalog service.
func NewSchema(catalog *services.CatalogService) (graphql.Schema, error) {
	rootQuery := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"products": &graphql.Field{
				Type: graphql.NewList(graphql.NewNonNull(productType)),
				Args: graphql.FieldConfigArgument{
					"name": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					name, _ := p.Args["name"].(string)
					return catalog.Products(p.Context, models.ProductFilter{Name: name})
				},
			},
			"product": &graphql.Field{
				Type: productType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, ok := p.Args["id"].(string)
					if !ok {
						return nil, errors.New("id argument is required")
					}
					return catalog.Product(p.Context, id)
				},
			},
			"categories": &graphql.Field{
				Type: graphql.NewList(graphql.NewNonNull(categoryType)),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return catalog.Categories(p.Context)
				},
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{Query: rootQuery})
}
