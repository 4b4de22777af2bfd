package api

import (
	"errors"

	"logisa-be/internal/order"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	orders order.Service
}

// List returns the caller's orders, optionally grouped by status for the
// orders page.
func (h *OrderHandler) List(c *gin.Context) {
	u, _ := currentUser(c)
	orders := h.orders.ListForUser(c.Request.Context(), u.ID)

	if c.Query("grouped") == "true" {
		Success(c, gin.H{"grouped": order.GroupByStatus(orders)})
		return
	}
	Success(c, gin.H{"items": orders})
}

func (h *OrderHandler) Get(c *gin.Context) {
	u, _ := currentUser(c)
	o, err := h.orders.Get(c.Request.Context(), c.Param("id"), u)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrOrderNotFound):
			NotFound(c, "order not found")
		case errors.Is(err, order.ErrUnauthorized):
			Forbidden(c, "not your order")
		default:
			InternalError(c, "failed to load order")
		}
		return
	}

	Success(c, o)
}
