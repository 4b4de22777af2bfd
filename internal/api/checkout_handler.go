package api

import (
	"context"
	"errors"

	"logisa-be/internal/address"
	"logisa-be/internal/checkout"

	"github.com/gin-gonic/gin"
)

type CheckoutHandler struct {
	checkout checkout.Service
}

// handleErr translates step guard violations into 409 + redirect responses.
func (h *CheckoutHandler) handleErr(c *gin.Context, err error) {
	var redirect *checkout.RedirectError
	switch {
	case errors.As(err, &redirect):
		Redirect(c, redirect.Target)
	case errors.Is(err, checkout.ErrDeliveryMethodRequired):
		BadRequest(c, "select a delivery method before placing the order")
	case errors.Is(err, checkout.ErrPaymentDeclined):
		Error(c, 40200, "payment declined, please try again")
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		Error(c, 49900, "payment abandoned")
	default:
		InternalError(c, "checkout failed")
	}
}

func (h *CheckoutHandler) Session(c *gin.Context) {
	u, _ := currentUser(c)
	Success(c, h.checkout.Session(c.Request.Context(), u.ID))
}

func (h *CheckoutHandler) StartAddress(c *gin.Context) {
	u, _ := currentUser(c)
	sess, err := h.checkout.StartAddress(c.Request.Context(), u)
	if err != nil {
		h.handleErr(c, err)
		return
	}
	Success(c, sess)
}

func (h *CheckoutHandler) SubmitAddress(c *gin.Context) {
	var addr address.Address
	if err := c.ShouldBindJSON(&addr); err != nil {
		BadRequest(c, "invalid address payload")
		return
	}

	u, _ := currentUser(c)
	sess, err := h.checkout.SubmitAddress(c.Request.Context(), u, addr)
	if err != nil {
		h.handleErr(c, err)
		return
	}
	Success(c, sess)
}

func (h *CheckoutHandler) Review(c *gin.Context) {
	u, _ := currentUser(c)
	summary, err := h.checkout.Review(c.Request.Context(), u)
	if err != nil {
		h.handleErr(c, err)
		return
	}
	Success(c, summary)
}

func (h *CheckoutHandler) Pay(c *gin.Context) {
	u, _ := currentUser(c)
	outcome, err := h.checkout.Pay(c.Request.Context(), u)
	if err != nil {
		h.handleErr(c, err)
		return
	}
	Created(c, outcome)
}

func (h *CheckoutHandler) Confirm(c *gin.Context) {
	u, _ := currentUser(c)
	o, err := h.checkout.Confirm(c.Request.Context(), u, c.Query("order"))
	if err != nil {
		h.handleErr(c, err)
		return
	}
	Success(c, o)
}
