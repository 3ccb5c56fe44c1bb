// Package graph exposes a read-only GraphQL view of the catalog with the
// same semantics as the REST query service.
package graph

import (
	"errors"

	"github.com/graphql-go/graphql"

	"github.com/shashiranjanraj/homegrown/app/models"
	"github.com/shashiranjanraj/homegrown/app/services"
	"github.com/shashiranjanraj/homegrown/pkg/gql"
)

func productType() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Product",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(models.Product).ID.Hex(), nil
				},
			},
			"title":       &graphql.Field{Type: graphql.String},
			"description": &graphql.Field{Type: graphql.String},
			"price":       &graphql.Field{Type: graphql.Float},
			"category":    &graphql.Field{Type: graphql.String},
			"subcategory": &graphql.Field{Type: graphql.String},
			"gender":      &graphql.Field{Type: graphql.String},
			"rating":      &graphql.Field{Type: graphql.Float},
			"imageUrl": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(models.Product).ImageURL(), nil
				},
			},
			"totalStock": &graphql.Field{
				Type: graphql.Int,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(models.Product).TotalStock(), nil
				},
			},
		},
	})
}

func stringArg(p graphql.ResolveParams, name string) string {
	if v, ok := p.Args[name].(string); ok {
		return v
	}
	return ""
}

// NewSchema builds the catalog query schema backed by the given service.
func NewSchema(catalog *services.CatalogService) (graphql.Schema, error) {
	product := productType()

	rootQuery := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"products": &graphql.Field{
				Type: graphql.NewList(product),
				Args: graphql.FieldConfigArgument{
					"search":      &graphql.ArgumentConfig{Type: graphql.String},
					"category":    &graphql.ArgumentConfig{Type: graphql.String},
					"subcategory": &graphql.ArgumentConfig{Type: graphql.String},
					"sort":        &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return catalog.List(p.Context, services.ListParams{
						Search:      stringArg(p, "search"),
						Category:    stringArg(p, "category"),
						Subcategory: stringArg(p, "subcategory"),
						Sort:        stringArg(p, "sort"),
					})
				},
			},
			"product": &graphql.Field{
				Type: product,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					prod, err := catalog.Get(p.Context, stringArg(p, "id"))
					if errors.Is(err, services.ErrNotFound) {
						return nil, nil
					}
					if err != nil {
						return nil, err
					}
					return prod, nil
				},
			},
			"categories": &graphql.Field{
				Type: graphql.NewList(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return catalog.Categories(), nil
				},
			},
		},
	})

	return gql.NewSchema(rootQuery)
}
