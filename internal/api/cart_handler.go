package api

import (
	"errors"
	"fmt"

	"logisa-be/internal/cart"
	"logisa-be/internal/catalog"
	"logisa-be/internal/delivery"
	"logisa-be/internal/pricing"

	"github.com/gin-gonic/gin"
)

type CartHandler struct {
	cart cart.Service
}

type cartItemRequest struct {
	MaterialID string `json:"material_id" binding:"required"`
	Quantity   int    `json:"quantity" binding:"required"`
}

type deliveryRequest struct {
	Method string `json:"method" binding:"required"`
}

func cartPayload(state cart.State) gin.H {
	return gin.H{
		"items":            state.Items,
		"selected_address": state.SelectedAddress,
		"delivery_method":  state.DeliveryMethod,
		"subtotal":         pricing.Subtotal(state.Items),
	}
}

func (h *CartHandler) respond(c *gin.Context, state cart.State, err error) {
	if err == nil {
		Success(c, cartPayload(state))
		return
	}

	var stockErr *cart.StockExceededError
	switch {
	case errors.As(err, &stockErr):
		BadRequest(c, fmt.Sprintf("only %d in stock for %s", stockErr.Available, stockErr.MaterialID))
	case errors.Is(err, catalog.ErrMaterialNotFound):
		NotFound(c, "material not found")
	case errors.Is(err, delivery.ErrMethodNotFound):
		BadRequest(c, "unknown delivery method")
	default:
		InternalError(c, "cart update failed")
	}
}

func (h *CartHandler) Get(c *gin.Context) {
	u, _ := currentUser(c)
	Success(c, cartPayload(h.cart.Get(c.Request.Context(), u.ID)))
}

func (h *CartHandler) AddItem(c *gin.Context) {
	var req cartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "material_id and quantity are required")
		return
	}

	u, _ := currentUser(c)
	state, err := h.cart.AddItem(c.Request.Context(), u.ID, req.MaterialID, req.Quantity)
	h.respond(c, state, err)
}

func (h *CartHandler) SetQuantity(c *gin.Context) {
	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "quantity is required")
		return
	}

	u, _ := currentUser(c)
	state, err := h.cart.SetQuantity(c.Request.Context(), u.ID, c.Param("materialId"), req.Quantity)
	h.respond(c, state, err)
}

func (h *CartHandler) RemoveItem(c *gin.Context) {
	u, _ := currentUser(c)
	state, err := h.cart.RemoveItem(c.Request.Context(), u.ID, c.Param("materialId"))
	h.respond(c, state, err)
}

func (h *CartHandler) Clear(c *gin.Context) {
	u, _ := currentUser(c)
	state, err := h.cart.Clear(c.Request.Context(), u.ID)
	h.respond(c, state, err)
}

func (h *CartHandler) SetDeliveryMethod(c *gin.Context) {
	var req deliveryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "method is required")
		return
	}

	u, _ := currentUser(c)
	state, err := h.cart.SetDeliveryMethod(c.Request.Context(), u.ID, delivery.Method(req.Method))
	h.respond(c, state, err)
}
