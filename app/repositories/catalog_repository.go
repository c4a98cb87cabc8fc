package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/firelovers/storefront/app/models"
	"github.com/firelovers/storefront/internal/store"
)

// CatalogRepository handles document-store operations for products and
// categories.
type CatalogRepository struct {
	products   *store.Collection
	categories *store.Collection
}

func NewCatalogRepository(s *store.Store) *CatalogRepository {
	return &CatalogRepository{
		products:   s.Collection("products"),
		categories: s.Collection("categories"),
	}
}

// CreateProduct persists a new product and fills in its generated id.
func (r *CatalogRepository) CreateProduct(ctx context.Context, p *models.Product) error {
	p.ID = primitive.NewObjectID()
	_, err := r.products.Insert(ctx, p)
	return err
}

// AllProducts returns every product matching the filter: name and about as
// partial, case-insensitive matches, price as an inclusive upper bound.
func (r *CatalogRepository) AllProducts(ctx context.Context, f models.ProductFilter) ([]models.Product, error) {
	filter := bson.M{}
	if f.Name != "" {
		filter["name"] = bson.M{"$regex": primitive.Regex{Pattern: f.Name, Options: "i"}}
	}
	if f.About != "" {
		filter["about"] = bson.M{"$regex": primitive.Regex{Pattern: f.About, Options: "i"}}
	}
	if f.MaxPrice != nil {
		filter["price"] = bson.M{"$lte": *f.MaxPrice}
	}
	var products []models.Product
	if err := r.products.Find(ctx, filter, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// FindProduct looks up a single product by hex id.
func (r *CatalogRepository) FindProduct(ctx context.Context, id string) (models.Product, error) {
	var p models.Product
	err := r.products.FindByID(ctx, id, &p)
	return p, err
}

// ProductsByIDs returns the products matching the given hex ids. Missing and
// malformed ids are silently dropped from the result.
func (r *CatalogRepository) ProductsByIDs(ctx context.Context, ids []string) ([]models.Product, error) {
	var products []models.Product
	if err := r.products.FindByIDs(ctx, ids, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// UpdateProduct replaces the caller-editable fields of a product.
// Returns the number of matched documents: 0 means not found.
func (r *CatalogRepository) UpdateProduct(ctx context.Context, id string, p models.Product) (int64, error) {
	return r.products.UpdateByID(ctx, id, bson.M{
		"name":        p.Name,
		"about":       p.About,
		"price":       p.Price,
		"categoryIds": p.CategoryIDs,
	})
}

// SetAverageScore writes the recomputed review average onto a product.
func (r *CatalogRepository) SetAverageScore(ctx context.Context, id string, avg float64) (int64, error) {
	return r.products.UpdateByID(ctx, id, bson.M{"average_score": avg})
}

// DeleteProduct removes a product. Returns the number of deleted documents.
func (r *CatalogRepository) DeleteProduct(ctx context.Context, id string) (int64, error) {
	return r.products.DeleteByID(ctx, id)
}

// CreateCategory persists a new category and fills in its generated id.
func (r *CatalogRepository) CreateCategory(ctx context.Context, c *models.Category) error {
	c.ID = primitive.NewObjectID()
	_, err := r.categories.Insert(ctx, c)
	return err
}

// AllCategories returns every category.
func (r *CatalogRepository) AllCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := r.categories.Find(ctx, bson.M{}, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// FindCategory looks up a single category by hex id.
func (r *CatalogRepository) FindCategory(ctx context.Context, id string) (models.Category, error) {
	var c models.Category
	err := r.categories.FindByID(ctx, id, &c)
	return c, err
}

// CategoriesByIDs returns the categories matching the given object ids,
// dropping any that no longer exist.
func (r *CatalogRepository) CategoriesByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Category, error) {
	if len(ids) == 0 {
		return []models.Category{}, nil
	}
	hex := make([]string, len(ids))
	for i, id := range ids {
		hex[i] = id.Hex()
	}
	var categories []models.Category
	if err := r.categories.FindByIDs(ctx, hex, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}
