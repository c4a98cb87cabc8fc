package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/firelovers/storefront/app/models"
	"github.com/firelovers/storefront/internal/broadcast"
	"github.com/firelovers/storefront/internal/store"
)

// CatalogStore is the slice of the catalog repository the service depends on.
type CatalogStore interface {
	CreateProduct(ctx context.Context, p *models.Product) error
	AllProducts(ctx context.Context, f models.ProductFilter) ([]models.Product, error)
	FindProduct(ctx context.Context, id string) (models.Product, error)
	UpdateProduct(ctx context.Context, id string, p models.Product) (int64, error)
	DeleteProduct(ctx context.Context, id string) (int64, error)
	CreateCategory(ctx context.Context, c *models.Category) error
	AllCategories(ctx context.Context) ([]models.Category, error)
	FindCategory(ctx context.Context, id string) (models.Category, error)
	CategoriesByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Category, error)
}

// CatalogService owns product and category lifecycles. Every successful
// mutation is published to live subscribers strictly after the write is
// durable; publishing never fails a request.
type CatalogService struct {
	store     CatalogStore
	publisher broadcast.Publisher
}

func NewCatalogService(s CatalogStore, p broadcast.Publisher) *CatalogService {
	return &CatalogService{store: s, publisher: p}
}

// CreateProduct validates category id syntax, persists the product, then
// publishes a create event. Category references are not checked for
// existence: dangling references are allowed and dropped at read time.
func (s *CatalogService) CreateProduct(ctx context.Context, in models.CreateProductInput) (models.ProductWithCategories, error) {
	categoryIDs, err := store.ParseIDs(in.CategoryIDs)
	if err != nil {
		return models.ProductWithCategories{}, err
	}

	product := models.Product{
		Name:        in.Name,
		About:       in.About,
		Price:       in.Price,
		CategoryIDs: categoryIDs,
	}
	if err := s.store.CreateProduct(ctx, &product); err != nil {
		return models.ProductWithCategories{}, err
	}

	resolved, err := s.resolve(ctx, product)
	if err != nil {
		resolved = models.ProductWithCategories{Product: product, Categories: []models.Category{}}
	}
	s.publisher.Publish(broadcast.Event{
		Channel: "products",
		Type:    broadcast.TypeCreate,
		Payload: resolved,
	})
	return resolved, nil
}

// Products lists the catalog with optional name/about/price filters, category
// references resolved in one batch.
func (s *CatalogService) Products(ctx context.Context, f models.ProductFilter) ([]models.ProductWithCategories, error) {
	products, err := s.store.AllProducts(ctx, f)
	if err != nil {
		return nil, err
	}

	seen := map[primitive.ObjectID]struct{}{}
	var ids []primitive.ObjectID
	for _, p := range products {
		for _, id := range p.CategoryIDs {
			if _, ok := seen[id]; !ok {
				seen[id] = struct{}{}
				ids = append(ids, id)
			}
		}
	}
	categories, err := s.store.CategoriesByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[primitive.ObjectID]models.Category, len(categories))
	for _, c := range categories {
		byID[c.ID] = c
	}

	resolved := make([]models.ProductWithCategories, 0, len(products))
	for _, p := range products {
		matched := []models.Category{}
		for _, id := range p.CategoryIDs {
			if c, ok := byID[id]; ok {
				matched = append(matched, c)
			}
		}
		resolved = append(resolved, models.ProductWithCategories{Product: p, Categories: matched})
	}
	return resolved, nil
}

// Product returns a single product with categories resolved.
func (s *CatalogService) Product(ctx context.Context, id string) (models.ProductWithCategories, error) {
	product, err := s.store.FindProduct(ctx, id)
	if err != nil {
		return models.ProductWithCategories{}, err
	}
	return s.resolve(ctx, product)
}

// UpdateProduct replaces the caller-editable fields and publishes an update
// event. The derived average score is left untouched.
func (s *CatalogService) UpdateProduct(ctx context.Context, id string, in models.CreateProductInput) (models.ProductWithCategories, error) {
	categoryIDs, err := store.ParseIDs(in.CategoryIDs)
	if err != nil {
		return models.ProductWithCategories{}, err
	}

	matched, err := s.store.UpdateProduct(ctx, id, models.Product{
		Name:        in.Name,
		About:       in.About,
		Price:       in.Price,
		CategoryIDs: categoryIDs,
	})
	if err != nil {
		return models.ProductWithCategories{}, err
	}
	if matched == 0 {
		return models.ProductWithCategories{}, store.ErrNotFound
	}

	product, err := s.store.FindProduct(ctx, id)
	if err != nil {
		return models.ProductWithCategories{}, err
	}
	resolved, err := s.resolve(ctx, product)
	if err != nil {
		return models.ProductWithCategories{}, err
	}
	s.publisher.Publish(broadcast.Event{
		Channel: "products",
		Type:    broadcast.TypeUpdate,
		Payload: resolved,
	})
	return resolved, nil
}

// DeleteProduct removes a product and publishes a delete event carrying only
// the id. Orders and reviews referencing the product are left alone.
func (s *CatalogService) DeleteProduct(ctx context.Context, id string) error {
	deleted, err := s.store.DeleteProduct(ctx, id)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return store.ErrNotFound
	}
	s.publisher.Publish(broadcast.Event{
		Channel: "products",
		Type:    broadcast.TypeDelete,
		Payload: broadcast.DeletePayload{ID: id},
	})
	return nil
}

// CreateCategory persists a category and publishes a create event.
func (s *CatalogService) CreateCategory(ctx context.Context, in models.CreateCategoryInput) (models.Category, error) {
	category := models.Category{Name: in.Name}
	if err := s.store.CreateCategory(ctx, &category); err != nil {
		return models.Category{}, err
	}
	s.publisher.Publish(broadcast.Event{
		Channel: "categories",
		Type:    broadcast.TypeCreate,
		Payload: category,
	})
	return category, nil
}

// Categories lists every category.
func (s *CatalogService) Categories(ctx context.Context) ([]models.Category, error) {
	return s.store.AllCategories(ctx)
}

// Category returns a single category.
func (s *CatalogService) Category(ctx context.Context, id string) (models.Category, error) {
	return s.store.FindCategory(ctx, id)
}

func (s *CatalogService) resolve(ctx context.Context, p models.Product) (models.ProductWithCategories, error) {
	categories, err := s.store.CategoriesByIDs(ctx, p.CategoryIDs)
	if err != nil {
		return models.ProductWithCategories{}, err
	}
	if categories == nil {
		categories = []models.Category{}
	}
	return models.ProductWithCategories{Product: p, Categories: categories}, nil
}
