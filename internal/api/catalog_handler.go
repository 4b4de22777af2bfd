package api

import (
	"errors"

	"logisa-be/internal/catalog"
	"logisa-be/internal/delivery"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalog catalog.Service
}

func (h *CatalogHandler) List(c *gin.Context) {
	opts := catalog.ListOptions{
		GroupID: c.Query("group"),
		Search:  c.Query("search"),
	}

	materials, err := h.catalog.List(c.Request.Context(), opts)
	if err != nil {
		InternalError(c, "failed to load catalog")
		return
	}

	Success(c, gin.H{"items": materials})
}

func (h *CatalogHandler) Get(c *gin.Context) {
	m, err := h.catalog.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, catalog.ErrMaterialNotFound) {
			NotFound(c, "material not found")
			return
		}
		InternalError(c, "failed to load material")
		return
	}

	Success(c, m)
}

func (h *CatalogHandler) Groups(c *gin.Context) {
	groups, err := h.catalog.Groups(c.Request.Context())
	if err != nil {
		InternalError(c, "failed to load material groups")
		return
	}

	Success(c, gin.H{"items": groups})
}

func (h *CatalogHandler) DeliveryOptions(c *gin.Context) {
	Success(c, gin.H{"items": delivery.Options()})
}
