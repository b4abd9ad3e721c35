package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	vehiclepkg "github.com/natenaltsega2225/AbeGarage-Backend/vehicle"
)

// VehicleHandler bundles dependencies for vehicle-related HTTP handlers.
type VehicleHandler struct {
	service vehiclepkg.Service
}

func NewVehicleHandler(svc vehiclepkg.Service) *VehicleHandler {
	return &VehicleHandler{service: svc}
}

type addVehiclePayload struct {
	CustomerHash string `json:"customer_hash" binding:"required"`
	Year         int    `json:"vehicle_year" binding:"required"`
	Make         string `json:"vehicle_make" binding:"required"`
	Model        string `json:"vehicle_model" binding:"required"`
	Type         string `json:"vehicle_type"`
	Mileage      int    `json:"vehicle_mileage"`
	Tag          string `json:"vehicle_tag"`
	Serial       string `json:"vehicle_serial"`
	Color        string `json:"vehicle_color"`
}

// AddVehicle attaches a vehicle to the customer addressed by hash.
func (h *VehicleHandler) AddVehicle() gin.HandlerFunc {
	return func(c *gin.Context) {
		var p addVehiclePayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
			return
		}

		req := vehiclepkg.AddVehicleRequest{
			CustomerHash: p.CustomerHash,
			Year:         p.Year,
			Make:         p.Make,
			Model:        p.Model,
			Type:         p.Type,
			Mileage:      p.Mileage,
			Tag:          p.Tag,
			Serial:       p.Serial,
			Color:        p.Color,
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		v, err := h.service.AddVehicle(ctx, req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"vehicle": v})
	}
}

// ListCustomerVehicles returns all vehicles for the customer hash.
func (h *VehicleHandler) ListCustomerVehicles() gin.HandlerFunc {
	return func(c *gin.Context) {
		hash := c.Param("hash")

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		vehicles, err := h.service.ListForCustomer(ctx, hash)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"vehicles": vehicles})
	}
}

// GetVehicle returns one vehicle by id.
func (h *VehicleHandler) GetVehicle() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid vehicle id"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		v, err := h.service.GetVehicle(ctx, id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"vehicle": v})
	}
}

type updateVehiclePayload struct {
	Year    int    `json:"vehicle_year" binding:"required"`
	Make    string `json:"vehicle_make" binding:"required"`
	Model   string `json:"vehicle_model" binding:"required"`
	Type    string `json:"vehicle_type"`
	Mileage int    `json:"vehicle_mileage"`
	Tag     string `json:"vehicle_tag"`
	Serial  string `json:"vehicle_serial"`
	Color   string `json:"vehicle_color"`
}

// UpdateVehicle replaces the vehicle's attributes.
func (h *VehicleHandler) UpdateVehicle() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid vehicle id"})
			return
		}
		var p updateVehiclePayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
			return
		}

		req := vehiclepkg.UpdateVehicleRequest{
			Year:    p.Year,
			Make:    p.Make,
			Model:   p.Model,
			Type:    p.Type,
			Mileage: p.Mileage,
			Tag:     p.Tag,
			Serial:  p.Serial,
			Color:   p.Color,
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		v, err := h.service.UpdateVehicle(ctx, id, req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "vehicle updated successfully", "vehicle": v})
	}
}
