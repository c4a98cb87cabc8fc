package services

import (
	"context"
	"errors"
	"math"

	"gorm.io/gorm"

	"github.com/firelovers/storefront/app/models"
	"github.com/firelovers/storefront/internal/store"
)

// TaxRate is applied to every order subtotal at creation time.
const TaxRate = 0.20

// OrderRepo is the slice of the order repository the service depends on.
type OrderRepo interface {
	Create(order *models.Order) error
	FindByID(id uint) (models.Order, error)
	All() ([]models.Order, error)
	Save(order *models.Order) error
	Delete(id uint) (int64, error)
}

// ProductFinder resolves product references from the document store.
type ProductFinder interface {
	ProductsByIDs(ctx context.Context, ids []string) ([]models.Product, error)
}

// UserFinder resolves user references from the relational database.
type UserFinder interface {
	FindByID(id uint) (models.User, error)
}

// OrderService owns the order lifecycle. Totals are computed once at
// creation from the live product prices and frozen thereafter.
type OrderService struct {
	orders   OrderRepo
	products ProductFinder
	users    UserFinder
}

func NewOrderService(orders OrderRepo, products ProductFinder, users UserFinder) *OrderService {
	return &OrderService{orders: orders, products: products, users: users}
}

// Create resolves every reference before persisting anything: the user and
// all products must exist or the order is rejected whole. The total is the
// price of every requested product entry plus tax, rounded to two decimals.
func (s *OrderService) Create(ctx context.Context, in models.CreateOrderInput) (models.OrderWithRefs, error) {
	user, err := s.users.FindByID(in.UserID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.OrderWithRefs{}, ErrInvalidReference
	}
	if err != nil {
		return models.OrderWithRefs{}, err
	}

	products, err := s.products.ProductsByIDs(ctx, in.ProductIDs)
	if err != nil {
		return models.OrderWithRefs{}, err
	}
	byID := make(map[string]models.Product, len(products))
	for _, p := range products {
		byID[p.ID.Hex()] = p
	}

	// Each occurrence in the request contributes its price, so ordering the
	// same product twice doubles its share of the subtotal.
	var subtotal float64
	for _, id := range in.ProductIDs {
		p, ok := byID[id]
		if !ok {
			return models.OrderWithRefs{}, ErrInvalidReference
		}
		subtotal += p.Price
	}

	order := models.Order{
		UserID:     in.UserID,
		ProductIDs: in.ProductIDs,
		Total:      Total(subtotal),
	}
	if err := s.orders.Create(&order); err != nil {
		return models.OrderWithRefs{}, err
	}

	publicUser := user.Public()
	return models.OrderWithRefs{Order: order, User: &publicUser, Products: products}, nil
}

// All lists every order with references resolved; dangling references are
// tolerated on reads.
func (s *OrderService) All(ctx context.Context) ([]models.OrderWithRefs, error) {
	orders, err := s.orders.All()
	if err != nil {
		return nil, err
	}
	resolved := make([]models.OrderWithRefs, 0, len(orders))
	for _, o := range orders {
		r, err := s.resolve(ctx, o)
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, r)
	}
	return resolved, nil
}

// Find returns a single order with references resolved.
func (s *OrderService) Find(ctx context.Context, id uint) (models.OrderWithRefs, error) {
	order, err := s.orders.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.OrderWithRefs{}, store.ErrNotFound
	}
	if err != nil {
		return models.OrderWithRefs{}, err
	}
	return s.resolve(ctx, order)
}

// SetPayment flips the payment flag. The stored total and product snapshot
// are never recomputed.
func (s *OrderService) SetPayment(ctx context.Context, id uint, paid bool) (models.OrderWithRefs, error) {
	order, err := s.orders.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.OrderWithRefs{}, store.ErrNotFound
	}
	if err != nil {
		return models.OrderWithRefs{}, err
	}
	order.Payment = paid
	if err := s.orders.Save(&order); err != nil {
		return models.OrderWithRefs{}, err
	}
	return s.resolve(ctx, order)
}

// Delete removes an order permanently and returns the deleted record with
// its references resolved.
func (s *OrderService) Delete(ctx context.Context, id uint) (models.OrderWithRefs, error) {
	order, err := s.orders.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.OrderWithRefs{}, store.ErrNotFound
	}
	if err != nil {
		return models.OrderWithRefs{}, err
	}
	resolved, err := s.resolve(ctx, order)
	if err != nil {
		return models.OrderWithRefs{}, err
	}
	deleted, err := s.orders.Delete(id)
	if err != nil {
		return models.OrderWithRefs{}, err
	}
	if deleted == 0 {
		return models.OrderWithRefs{}, store.ErrNotFound
	}
	return resolved, nil
}

func (s *OrderService) resolve(ctx context.Context, o models.Order) (models.OrderWithRefs, error) {
	out := models.OrderWithRefs{Order: o, Products: []models.Product{}}

	user, err := s.users.FindByID(o.UserID)
	if err == nil {
		publicUser := user.Public()
		out.User = &publicUser
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.OrderWithRefs{}, err
	}

	products, err := s.products.ProductsByIDs(ctx, o.ProductIDs)
	if err != nil {
		return models.OrderWithRefs{}, err
	}
	if products != nil {
		out.Products = products
	}
	return out, nil
}

// Total applies tax to a subtotal and rounds half away from zero to two
// decimal places.
func Total(subtotal float64) float64 {
	return math.Round(subtotal*(1+TaxRate)*100) / 100
}
