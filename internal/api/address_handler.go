package api

import (
	"errors"

	"logisa-be/internal/address"

	"github.com/gin-gonic/gin"
)

type AddressHandler struct {
	addresses address.Service
}

type createAddressRequest struct {
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	AddressLine1 string `json:"address_line1"`
	AddressLine2 string `json:"address_line2"`
	City         string `json:"city"`
	District     string `json:"district"`
	PostalCode   string `json:"postal_code"`
	Country      string `json:"country"`
	SetAsDefault bool   `json:"set_as_default"`
}

func (h *AddressHandler) List(c *gin.Context) {
	addresses, err := h.addresses.List(c.Request.Context())
	if err != nil {
		InternalError(c, "failed to load addresses")
		return
	}

	Success(c, gin.H{"items": addresses})
}

func (h *AddressHandler) Create(c *gin.Context) {
	var req createAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid address payload")
		return
	}

	addr, err := h.addresses.Create(c.Request.Context(), address.CreateAddressInput{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		AddressLine1: req.AddressLine1,
		AddressLine2: req.AddressLine2,
		City:         req.City,
		District:     req.District,
		PostalCode:   req.PostalCode,
		Country:      req.Country,
		SetAsDefault: req.SetAsDefault,
	})
	if err != nil {
		if errors.Is(err, address.ErrMissingField) {
			BadRequest(c, err.Error())
			return
		}
		InternalError(c, "failed to create address")
		return
	}

	Created(c, addr)
}
