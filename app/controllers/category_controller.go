package controllers

import (
	"github.com/firelovers/storefront/app/models"
	"github.com/firelovers/storefront/app/services"
	"github.com/firelovers/storefront/pkg/ctx"
)

type CategoryController struct {
	catalog *services.CatalogService
}

func NewCategoryController(catalog *services.CatalogService) *CategoryController {
	return &CategoryController{catalog: catalog}
}

// Index lists all categories.
func (ctl *CategoryController) Index(c *ctx.Context) {
	categories, err := ctl.catalog.Categories(c.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.Success(categories)
}

// Store creates a category.
func (ctl *CategoryController) Store(c *ctx.Context) {
	var in models.CreateCategoryInput
	if !c.BindJSON(&in) {
		return
	}
	category, err := ctl.catalog.CreateCategory(c.Context(), in)
	if err != nil {
		fail(c, err)
		return
	}
	c.Created(category)
}

// Show returns one category by id.
func (ctl *CategoryController) Show(c *ctx.Context) {
	category, err := ctl.catalog.Category(c.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.Success(category)
}
