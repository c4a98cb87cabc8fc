package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/firelovers/storefront/app/models"
	"github.com/firelovers/storefront/app/services"
	"github.com/firelovers/storefront/internal/store"
)

func seedUser(t *testing.T, users *memUsers) models.User {
	t.Helper()
	user := models.User{Username: "alice", Email: "alice@example.com", Password: "x"}
	require.NoError(t, users.Create(&user))
	return user
}

func seedProduct(t *testing.T, catalog *memCatalog, name string, price float64) models.Product {
	t.Helper()
	p := models.Product{Name: name, About: name, Price: price}
	require.NoError(t, catalog.CreateProduct(context.Background(), &p))
	return p
}

func TestOrderService(t *testing.T) {
	ctx := context.Background()

	t.Run("total is subtotal plus tax, two decimals", func(t *testing.T) {
		catalog := newMemCatalog()
		users := newMemUsers()
		orders := newMemOrders()
		svc := services.NewOrderService(orders, catalog, users)

		user := seedUser(t, users)
		p1 := seedProduct(t, catalog, "Keyboard", 10)
		p2 := seedProduct(t, catalog, "Mouse", 15)

		order, err := svc.Create(ctx, models.CreateOrderInput{
			UserID:     user.ID,
			ProductIDs: []string{p1.ID.Hex(), p2.ID.Hex()},
		})
		require.NoError(t, err)
		require.Equal(t, 30.00, order.Total)
		require.False(t, order.Payment)
		require.Len(t, order.Products, 2)
		require.NotNil(t, order.User)
		require.Equal(t, user.ID, order.User.ID)
	})

	t.Run("repeated product id is priced per occurrence", func(t *testing.T) {
		catalog := newMemCatalog()
		users := newMemUsers()
		orders := newMemOrders()
		svc := services.NewOrderService(orders, catalog, users)

		user := seedUser(t, users)
		p := seedProduct(t, catalog, "Keyboard", 10)

		order, err := svc.Create(ctx, models.CreateOrderInput{
			UserID:     user.ID,
			ProductIDs: []string{p.ID.Hex(), p.ID.Hex()},
		})
		require.NoError(t, err)
		require.Equal(t, 24.00, order.Total) // 2 * 10 * 1.2
	})

	t.Run("rounding of repeating tax products", func(t *testing.T) {
		catalog := newMemCatalog()
		users := newMemUsers()
		orders := newMemOrders()
		svc := services.NewOrderService(orders, catalog, users)

		user := seedUser(t, users)
		p := seedProduct(t, catalog, "Cable", 9.99) // 9.99 * 1.2 = 11.988

		order, err := svc.Create(ctx, models.CreateOrderInput{
			UserID:     user.ID,
			ProductIDs: []string{p.ID.Hex()},
		})
		require.NoError(t, err)
		require.Equal(t, 11.99, order.Total)
	})

	t.Run("one unresolved product rejects the whole order", func(t *testing.T) {
		catalog := newMemCatalog()
		users := newMemUsers()
		orders := newMemOrders()
		svc := services.NewOrderService(orders, catalog, users)

		user := seedUser(t, users)
		p := seedProduct(t, catalog, "Keyboard", 10)

		_, err := svc.Create(ctx, models.CreateOrderInput{
			UserID:     user.ID,
			ProductIDs: []string{p.ID.Hex(), "65b2f0a1d4c3b2a190807061"},
		})
		require.ErrorIs(t, err, services.ErrInvalidReference)
		require.Empty(t, orders.orders)
	})

	t.Run("unknown user rejects the order", func(t *testing.T) {
		catalog := newMemCatalog()
		users := newMemUsers()
		orders := newMemOrders()
		svc := services.NewOrderService(orders, catalog, users)

		p := seedProduct(t, catalog, "Keyboard", 10)

		_, err := svc.Create(ctx, models.CreateOrderInput{
			UserID:     42,
			ProductIDs: []string{p.ID.Hex()},
		})
		require.ErrorIs(t, err, services.ErrInvalidReference)
		require.Empty(t, orders.orders)
	})

	t.Run("total stays frozen after a price change", func(t *testing.T) {
		catalog := newMemCatalog()
		users := newMemUsers()
		orders := newMemOrders()
		svc := services.NewOrderService(orders, catalog, users)

		user := seedUser(t, users)
		p := seedProduct(t, catalog, "Keyboard", 10)

		order, err := svc.Create(ctx, models.CreateOrderInput{
			UserID:     user.ID,
			ProductIDs: []string{p.ID.Hex()},
		})
		require.NoError(t, err)
		require.Equal(t, 12.00, order.Total)

		stored := catalog.products[p.ID.Hex()]
		stored.Price = 999
		catalog.products[p.ID.Hex()] = stored

		got, err := svc.Find(ctx, order.ID)
		require.NoError(t, err)
		require.Equal(t, 12.00, got.Total)
	})

	t.Run("payment flag flips without touching the snapshot", func(t *testing.T) {
		catalog := newMemCatalog()
		users := newMemUsers()
		orders := newMemOrders()
		svc := services.NewOrderService(orders, catalog, users)

		user := seedUser(t, users)
		p := seedProduct(t, catalog, "Keyboard", 10)

		order, err := svc.Create(ctx, models.CreateOrderInput{
			UserID:     user.ID,
			ProductIDs: []string{p.ID.Hex()},
		})
		require.NoError(t, err)

		paid, err := svc.SetPayment(ctx, order.ID, true)
		require.NoError(t, err)
		require.True(t, paid.Payment)
		require.Equal(t, order.Total, paid.Total)
		require.Equal(t, order.ProductIDs, paid.ProductIDs)
	})

	t.Run("reads tolerate a deleted product", func(t *testing.T) {
		catalog := newMemCatalog()
		users := newMemUsers()
		orders := newMemOrders()
		svc := services.NewOrderService(orders, catalog, users)

		user := seedUser(t, users)
		p1 := seedProduct(t, catalog, "Keyboard", 10)
		p2 := seedProduct(t, catalog, "Mouse", 15)

		order, err := svc.Create(ctx, models.CreateOrderInput{
			UserID:     user.ID,
			ProductIDs: []string{p1.ID.Hex(), p2.ID.Hex()},
		})
		require.NoError(t, err)

		delete(catalog.products, p2.ID.Hex())

		got, err := svc.Find(ctx, order.ID)
		require.NoError(t, err)
		require.Len(t, got.Products, 1)
		require.Equal(t, p1.ID, got.Products[0].ID)
		require.Len(t, got.ProductIDs, 2) // the snapshot keeps both references
	})

	t.Run("missing order", func(t *testing.T) {
		catalog := newMemCatalog()
		users := newMemUsers()
		orders := newMemOrders()
		svc := services.NewOrderService(orders, catalog, users)

		_, err := svc.Find(ctx, 99)
		require.ErrorIs(t, err, store.ErrNotFound)

		_, err = svc.Delete(ctx, 99)
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("delete returns the removed order", func(t *testing.T) {
		catalog := newMemCatalog()
		users := newMemUsers()
		orders := newMemOrders()
		svc := services.NewOrderService(orders, catalog, users)

		user := seedUser(t, users)
		p := seedProduct(t, catalog, "Keyboard", 10)

		order, err := svc.Create(ctx, models.CreateOrderInput{
			UserID:     user.ID,
			ProductIDs: []string{p.ID.Hex()},
		})
		require.NoError(t, err)

		deleted, err := svc.Delete(ctx, order.ID)
		require.NoError(t, err)
		require.Equal(t, order.ID, deleted.ID)
		require.Equal(t, order.Total, deleted.Total)
		require.NotNil(t, deleted.User)
		require.Empty(t, orders.orders)

		_, err = svc.Find(ctx, order.ID)
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}
