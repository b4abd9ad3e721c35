package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	customerpkg "github.com/natenaltsega2225/AbeGarage-Backend/customer"
)

// CustomerHandler bundles dependencies for customer-related HTTP handlers.
type CustomerHandler struct {
	service customerpkg.Service
}

// NewCustomerHandler constructs a CustomerHandler.
func NewCustomerHandler(svc customerpkg.Service) *CustomerHandler {
	return &CustomerHandler{service: svc}
}

type registerCustomerPayload struct {
	Email     string `json:"customer_email"`
	Phone     string `json:"customer_phone_number"`
	FirstName string `json:"customer_first_name"`
	LastName  string `json:"customer_last_name"`
	Active    *bool  `json:"active_customer_status"`
}

// RegisterCustomer creates the customer aggregate (identifier and profile).
func (h *CustomerHandler) RegisterCustomer() gin.HandlerFunc {
	return func(c *gin.Context) {
		var p registerCustomerPayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
			return
		}

		req := customerpkg.RegisterCustomerRequest{
			Email:     p.Email,
			Phone:     p.Phone,
			FirstName: p.FirstName,
			LastName:  p.LastName,
			Active:    p.Active,
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		rec, err := h.service.RegisterCustomer(ctx, req)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message":  "customer created successfully",
			"customer": rec,
		})
	}
}

// GetCustomer looks a customer up by the hash path parameter.
func (h *CustomerHandler) GetCustomer() gin.HandlerFunc {
	return func(c *gin.Context) {
		hash := c.Param("hash")

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		rec, err := h.service.GetCustomerByHash(ctx, hash)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"customer": rec})
	}
}

// ListCustomers returns all customers, 404 when there are none.
func (h *CustomerHandler) ListCustomers() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		records, err := h.service.ListCustomers(ctx)
		if err != nil {
			respondError(c, err)
			return
		}
		if len(records) == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "no customers found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"limit": len(records), "customers": records})
	}
}

type updateCustomerPayload struct {
	Phone     string `json:"customer_phone_number"`
	FirstName string `json:"customer_first_name"`
	LastName  string `json:"customer_last_name"`
}

// UpdateCustomer applies a partial update addressed by hash. Zero-row
// statement outcomes are reported back in partial_failures so the caller
// can detect a half-applied update.
func (h *CustomerHandler) UpdateCustomer() gin.HandlerFunc {
	return func(c *gin.Context) {
		hash := c.Param("hash")
		var p updateCustomerPayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
			return
		}

		req := customerpkg.UpdateCustomerRequest{
			Phone:     p.Phone,
			FirstName: p.FirstName,
			LastName:  p.LastName,
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		rec, failures, err := h.service.UpdateCustomer(ctx, hash, req)
		if err != nil {
			respondError(c, err)
			return
		}

		resp := gin.H{"customer": rec}
		if len(failures) > 0 {
			resp["message"] = "some updates failed"
			resp["partial_failures"] = failures
		} else {
			resp["message"] = "customer updated successfully"
		}
		c.JSON(http.StatusOK, resp)
	}
}

// DeactivateCustomer flips the active flag; customer rows are never removed.
func (h *CustomerHandler) DeactivateCustomer() gin.HandlerFunc {
	return func(c *gin.Context) {
		hash := c.Param("hash")

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		if err := h.service.DeactivateCustomer(ctx, hash); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "customer deactivated"})
	}
}
