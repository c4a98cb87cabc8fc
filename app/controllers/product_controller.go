package controllers

import (
	"net/http"
	"strconv"

	"github.com/firelovers/storefront/app/models"
	"github.com/firelovers/storefront/app/services"
	"github.com/firelovers/storefront/pkg/ctx"
)

type ProductController struct {
	catalog *services.CatalogService
}

func NewProductController(catalog *services.CatalogService) *ProductController {
	return &ProductController{catalog: catalog}
}

// Index lists products with optional ?name=, ?about= and ?price= filters.
// Name and about match as substrings; price is an upper bound.
func (ctl *ProductController) Index(c *ctx.Context) {
	filter := models.ProductFilter{
		Name:  c.Query("name"),
		About: c.Query("about"),
	}
	if raw := c.Query("price"); raw != "" {
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.ValidationError(map[string]string{"price": "The price field must be a number."})
			return
		}
		filter.MaxPrice = &f
	}

	products, err := ctl.catalog.Products(c.Context(), filter)
	if err != nil {
		fail(c, err)
		return
	}
	c.Success(products)
}

// Store creates a product.
func (ctl *ProductController) Store(c *ctx.Context) {
	var in models.CreateProductInput
	if !c.BindJSON(&in) {
		return
	}
	product, err := ctl.catalog.CreateProduct(c.Context(), in)
	if err != nil {
		fail(c, err)
		return
	}
	c.Created(product)
}

// Show returns one product by id.
func (ctl *ProductController) Show(c *ctx.Context) {
	product, err := ctl.catalog.Product(c.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.Success(product)
}

// Update replaces the caller-editable fields of a product.
func (ctl *ProductController) Update(c *ctx.Context) {
	var in models.CreateProductInput
	if !c.BindJSON(&in) {
		return
	}
	product, err := ctl.catalog.UpdateProduct(c.Context(), c.Param("id"), in)
	if err != nil {
		fail(c, err)
		return
	}
	c.Success(product)
}

// Destroy deletes a product.
func (ctl *ProductController) Destroy(c *ctx.Context) {
	if err := ctl.catalog.DeleteProduct(c.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
