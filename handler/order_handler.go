package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	orderpkg "github.com/natenaltsega2225/AbeGarage-Backend/order"
)

// OrderHandler bundles dependencies for order-related HTTP handlers.
type OrderHandler struct {
	service orderpkg.Service
}

func NewOrderHandler(svc orderpkg.Service) *OrderHandler {
	return &OrderHandler{service: svc}
}

type createOrderPayload struct {
	CustomerHash            string     `json:"customer_hash" binding:"required"`
	EmployeeID              *string    `json:"employee_id"`
	VehicleID               *string    `json:"vehicle_id"`
	Description             string     `json:"order_description"`
	TotalPriceCents         int64      `json:"order_total_price_cents"`
	EstimatedCompletionDate *time.Time `json:"estimated_completion_date"`
	AdditionalRequest       string     `json:"additional_request"`
	NotesForInternalUse     string     `json:"notes_for_internal_use"`
	NotesForCustomer        string     `json:"notes_for_customer"`
	ServiceIDs              []string   `json:"service_ids" binding:"required"`
}

func parseOptionalUUID(s *string, field string, c *gin.Context) (*uuid.UUID, bool) {
	if s == nil || *s == "" {
		return nil, true
	}
	id, err := uuid.Parse(*s)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + field})
		return nil, false
	}
	return &id, true
}

// CreateOrder opens an order with its info, status entry and service items.
func (h *OrderHandler) CreateOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		var p createOrderPayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
			return
		}

		employeeID, ok := parseOptionalUUID(p.EmployeeID, "employee_id", c)
		if !ok {
			return
		}
		vehicleID, ok := parseOptionalUUID(p.VehicleID, "vehicle_id", c)
		if !ok {
			return
		}
		serviceIDs := make([]uuid.UUID, 0, len(p.ServiceIDs))
		for _, s := range p.ServiceIDs {
			id, err := uuid.Parse(s)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid service id " + s})
				return
			}
			serviceIDs = append(serviceIDs, id)
		}

		req := orderpkg.CreateOrderRequest{
			CustomerHash:            p.CustomerHash,
			EmployeeID:              employeeID,
			VehicleID:               vehicleID,
			Description:             p.Description,
			TotalPriceCents:         p.TotalPriceCents,
			EstimatedCompletionDate: p.EstimatedCompletionDate,
			AdditionalRequest:       p.AdditionalRequest,
			NotesForInternalUse:     p.NotesForInternalUse,
			NotesForCustomer:        p.NotesForCustomer,
			ServiceIDs:              serviceIDs,
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		view, err := h.service.CreateOrder(ctx, req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, view)
	}
}

// ListOrders returns every order as a nested view with its service lines.
func (h *OrderHandler) ListOrders() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		views, err := h.service.ListOrders(ctx)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, views)
	}
}

// MarkServiceCompleted flips the completion flag of one service line.
func (h *OrderHandler) MarkServiceCompleted() gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
			return
		}
		itemID, err := uuid.Parse(c.Param("itemID"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order service id"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		if err := h.service.MarkServiceCompleted(ctx, orderID, itemID); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "order service marked completed"})
	}
}

// CompleteOrder moves the order's status entry to completed and stamps the
// completion date.
func (h *OrderHandler) CompleteOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		if err := h.service.CompleteOrder(ctx, orderID); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "order completed"})
	}
}
