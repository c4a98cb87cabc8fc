package controllers

import (
	"net/http"
	"strconv"

	"github.com/firelovers/storefront/app/models"
	"github.com/firelovers/storefront/app/services"
	"github.com/firelovers/storefront/pkg/ctx"
)

type OrderController struct {
	orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{orders: orders}
}

// Index lists all orders with references resolved.
func (ctl *OrderController) Index(c *ctx.Context) {
	orders, err := ctl.orders.All(c.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.Success(orders)
}

// Store creates an order; every referenced product and the user must exist.
func (ctl *OrderController) Store(c *ctx.Context) {
	var in models.CreateOrderInput
	if !c.BindJSON(&in) {
		return
	}
	order, err := ctl.orders.Create(c.Context(), in)
	if err != nil {
		fail(c, err)
		return
	}
	c.Created(order)
}

// Show returns one order by id.
func (ctl *OrderController) Show(c *ctx.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	order, err := ctl.orders.Find(c.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.Success(order)
}

// UpdatePayment flips the payment flag of an order.
func (ctl *OrderController) UpdatePayment(c *ctx.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	var in models.UpdateOrderInput
	if !c.BindJSON(&in) {
		return
	}
	order, err := ctl.orders.SetPayment(c.Context(), id, *in.Payment)
	if err != nil {
		fail(c, err)
		return
	}
	c.Success(order)
}

// Destroy deletes an order and returns the deleted record.
func (ctl *OrderController) Destroy(c *ctx.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	order, err := ctl.orders.Delete(c.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.Success(order)
}

// uintParam parses a numeric path parameter, writing a 400 on failure.
func uintParam(c *ctx.Context, key string) (uint, bool) {
	n, err := strconv.ParseUint(c.Param(key), 10, 64)
	if err != nil {
		c.Error(http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return uint(n), true
}
