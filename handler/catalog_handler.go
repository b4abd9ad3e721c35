package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	catalogpkg "github.com/natenaltsega2225/AbeGarage-Backend/catalog"
)

// CatalogHandler bundles dependencies for common-service catalog handlers.
type CatalogHandler struct {
	service catalogpkg.Service
}

func NewCatalogHandler(svc catalogpkg.Service) *CatalogHandler {
	return &CatalogHandler{service: svc}
}

type servicePayload struct {
	Name        string `json:"service_name"`
	Description string `json:"service_description"`
}

// AddService creates a catalog entry.
func (h *CatalogHandler) AddService() gin.HandlerFunc {
	return func(c *gin.Context) {
		var p servicePayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		cs, err := h.service.AddService(ctx, p.Name, p.Description)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"service": cs})
	}
}

// UpdateService renames or re-describes a catalog entry.
func (h *CatalogHandler) UpdateService() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid service id"})
			return
		}
		var p servicePayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		cs, err := h.service.UpdateService(ctx, id, p.Name, p.Description)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "service updated successfully", "service": cs})
	}
}

// ListServices returns the whole catalog.
func (h *CatalogHandler) ListServices() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		services, err := h.service.ListServices(ctx)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"services": services})
	}
}
