package repositories

import (
	"gorm.io/gorm"

	"github.com/firelovers/storefront/app/models"
)

// OrderRepository handles relational-database operations for Order.
type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// Create persists a new order record.
func (r *OrderRepository) Create(order *models.Order) error {
	return r.db.Create(order).Error
}

// FindByID looks up an order by primary key.
func (r *OrderRepository) FindByID(id uint) (models.Order, error) {
	var order models.Order
	err := r.db.First(&order, id).Error
	return order, err
}

// All returns every order, newest first.
func (r *OrderRepository) All() ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Order("id desc").Find(&orders).Error
	return orders, err
}

// Save persists changes to an existing order.
func (r *OrderRepository) Save(order *models.Order) error {
	return r.db.Save(order).Error
}

// Delete removes an order by primary key. Returns the number of deleted rows.
func (r *OrderRepository) Delete(id uint) (int64, error) {
	res := r.db.Delete(&models.Order{}, id)
	return res.RowsAffected, res.Error
}
