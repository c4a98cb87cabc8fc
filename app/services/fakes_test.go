package services_test

import (
	"context"
	"errors"
	"sort"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"gorm.io/gorm"

	"github.com/firelovers/storefront/app/models"
	"github.com/firelovers/storefront/internal/broadcast"
	"github.com/firelovers/storefront/internal/store"
)

// memCatalog is an in-memory stand-in for the catalog repository. It keeps
// the real id semantics: malformed hex ids fail with ErrInvalidID, missing
// documents with ErrNotFound.
type memCatalog struct {
	products   map[string]models.Product
	categories map[string]models.Category

	failScore  bool
	scoreCalls int
}

func newMemCatalog() *memCatalog {
	return &memCatalog{
		products:   make(map[string]models.Product),
		categories: make(map[string]models.Category),
	}
}

func (m *memCatalog) CreateProduct(_ context.Context, p *models.Product) error {
	p.ID = primitive.NewObjectID()
	m.products[p.ID.Hex()] = *p
	return nil
}

func (m *memCatalog) AllProducts(_ context.Context, f models.ProductFilter) ([]models.Product, error) {
	var out []models.Product
	for _, p := range m.products {
		if f.Name != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(f.Name)) {
			continue
		}
		if f.About != "" && !strings.Contains(strings.ToLower(p.About), strings.ToLower(f.About)) {
			continue
		}
		if f.MaxPrice != nil && p.Price > *f.MaxPrice {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID.Hex() < out[j].ID.Hex() })
	return out, nil
}

func (m *memCatalog) FindProduct(_ context.Context, id string) (models.Product, error) {
	if _, err := store.ParseID(id); err != nil {
		return models.Product{}, err
	}
	p, ok := m.products[id]
	if !ok {
		return models.Product{}, store.ErrNotFound
	}
	return p, nil
}

func (m *memCatalog) ProductsByIDs(_ context.Context, ids []string) ([]models.Product, error) {
	var out []models.Product
	seen := make(map[string]struct{})
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if p, ok := m.products[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memCatalog) UpdateProduct(_ context.Context, id string, p models.Product) (int64, error) {
	if _, err := store.ParseID(id); err != nil {
		return 0, err
	}
	existing, ok := m.products[id]
	if !ok {
		return 0, nil
	}
	existing.Name = p.Name
	existing.About = p.About
	existing.Price = p.Price
	existing.CategoryIDs = p.CategoryIDs
	m.products[id] = existing
	return 1, nil
}

func (m *memCatalog) SetAverageScore(_ context.Context, id string, avg float64) (int64, error) {
	m.scoreCalls++
	if m.failScore {
		return 0, errors.New("document store unreachable")
	}
	p, ok := m.products[id]
	if !ok {
		return 0, nil
	}
	p.AverageScore = &avg
	m.products[id] = p
	return 1, nil
}

func (m *memCatalog) DeleteProduct(_ context.Context, id string) (int64, error) {
	if _, err := store.ParseID(id); err != nil {
		return 0, err
	}
	if _, ok := m.products[id]; !ok {
		return 0, nil
	}
	delete(m.products, id)
	return 1, nil
}

func (m *memCatalog) CreateCategory(_ context.Context, c *models.Category) error {
	c.ID = primitive.NewObjectID()
	m.categories[c.ID.Hex()] = *c
	return nil
}

func (m *memCatalog) AllCategories(_ context.Context) ([]models.Category, error) {
	var out []models.Category
	for _, c := range m.categories {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID.Hex() < out[j].ID.Hex() })
	return out, nil
}

func (m *memCatalog) FindCategory(_ context.Context, id string) (models.Category, error) {
	if _, err := store.ParseID(id); err != nil {
		return models.Category{}, err
	}
	c, ok := m.categories[id]
	if !ok {
		return models.Category{}, store.ErrNotFound
	}
	return c, nil
}

func (m *memCatalog) CategoriesByIDs(_ context.Context, ids []primitive.ObjectID) ([]models.Category, error) {
	out := []models.Category{}
	for _, id := range ids {
		if c, ok := m.categories[id.Hex()]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

// memUsers is an in-memory stand-in for the user repository.
type memUsers struct {
	users  map[uint]models.User
	nextID uint
}

func newMemUsers() *memUsers {
	return &memUsers{users: make(map[uint]models.User)}
}

func (m *memUsers) Create(u *models.User) error {
	for _, existing := range m.users {
		if existing.Email == u.Email {
			return errors.New("UNIQUE constraint failed: users.email")
		}
	}
	m.nextID++
	u.ID = m.nextID
	m.users[u.ID] = *u
	return nil
}

func (m *memUsers) FindByID(id uint) (models.User, error) {
	u, ok := m.users[id]
	if !ok {
		return models.User{}, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (m *memUsers) FindByEmail(email string) (models.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, gorm.ErrRecordNotFound
}

func (m *memUsers) All() ([]models.User, error) {
	var out []models.User
	for _, u := range m.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memUsers) Save(u *models.User) error {
	m.users[u.ID] = *u
	return nil
}

func (m *memUsers) Delete(id uint) (int64, error) {
	if _, ok := m.users[id]; !ok {
		return 0, nil
	}
	delete(m.users, id)
	return 1, nil
}

// memOrders is an in-memory stand-in for the order repository.
type memOrders struct {
	orders map[uint]models.Order
	nextID uint
}

func newMemOrders() *memOrders {
	return &memOrders{orders: make(map[uint]models.Order)}
}

func (m *memOrders) Create(o *models.Order) error {
	m.nextID++
	o.ID = m.nextID
	m.orders[o.ID] = *o
	return nil
}

func (m *memOrders) FindByID(id uint) (models.Order, error) {
	o, ok := m.orders[id]
	if !ok {
		return models.Order{}, gorm.ErrRecordNotFound
	}
	return o, nil
}

func (m *memOrders) All() ([]models.Order, error) {
	var out []models.Order
	for _, o := range m.orders {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (m *memOrders) Save(o *models.Order) error {
	m.orders[o.ID] = *o
	return nil
}

func (m *memOrders) Delete(id uint) (int64, error) {
	if _, ok := m.orders[id]; !ok {
		return 0, nil
	}
	delete(m.orders, id)
	return 1, nil
}

// memReviews is an in-memory stand-in for the review repository.
type memReviews struct {
	reviews []models.Review
	nextID  uint

	failCreate bool
}

func (m *memReviews) Create(r *models.Review) error {
	if m.failCreate {
		return errors.New("database unavailable")
	}
	m.nextID++
	r.ID = m.nextID
	m.reviews = append(m.reviews, *r)
	return nil
}

func (m *memReviews) ByProduct(productID string) ([]models.Review, error) {
	var out []models.Review
	for i := len(m.reviews) - 1; i >= 0; i-- {
		if m.reviews[i].ProductID == productID {
			out = append(out, m.reviews[i])
		}
	}
	return out, nil
}

func (m *memReviews) AverageScore(productID string) (float64, int64, error) {
	var sum float64
	var count int64
	for _, r := range m.reviews {
		if r.ProductID == productID {
			sum += float64(r.Score)
			count++
		}
	}
	if count == 0 {
		return 0, 0, nil
	}
	return sum / float64(count), count, nil
}

// memAnalytics is an in-memory stand-in for the analytics repository.
type memAnalytics struct {
	views   []models.View
	actions []models.Action
	goals   []models.Goal
}

func (m *memAnalytics) CreateView(_ context.Context, v *models.View) error {
	v.ID = primitive.NewObjectID()
	m.views = append(m.views, *v)
	return nil
}

func (m *memAnalytics) CreateAction(_ context.Context, a *models.Action) error {
	a.ID = primitive.NewObjectID()
	m.actions = append(m.actions, *a)
	return nil
}

func (m *memAnalytics) CreateGoal(_ context.Context, g *models.Goal) error {
	g.ID = primitive.NewObjectID()
	m.goals = append(m.goals, *g)
	return nil
}

func (m *memAnalytics) AllGoals(_ context.Context) ([]models.Goal, error) {
	return append([]models.Goal{}, m.goals...), nil
}

func (m *memAnalytics) FindGoal(_ context.Context, id string) (models.Goal, error) {
	if _, err := store.ParseID(id); err != nil {
		return models.Goal{}, err
	}
	for _, g := range m.goals {
		if g.ID.Hex() == id {
			return g, nil
		}
	}
	return models.Goal{}, store.ErrNotFound
}

func (m *memAnalytics) ViewsByVisitor(_ context.Context, visitor string) ([]models.View, error) {
	var out []models.View
	for _, v := range m.views {
		if v.Visitor == visitor {
			out = append(out, v)
		}
	}
	return out, nil
}

func (m *memAnalytics) ActionsByVisitor(_ context.Context, visitor string) ([]models.Action, error) {
	var out []models.Action
	for _, a := range m.actions {
		if a.Visitor == visitor {
			out = append(out, a)
		}
	}
	return out, nil
}

// recordPublisher captures published events in order.
type recordPublisher struct {
	events []broadcast.Event
}

func (p *recordPublisher) Publish(e broadcast.Event) {
	p.events = append(p.events, e)
}
