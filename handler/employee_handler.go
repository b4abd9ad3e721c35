package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	employeepkg "github.com/natenaltsega2225/AbeGarage-Backend/employee"
	"github.com/natenaltsega2225/AbeGarage-Backend/entity"
)

// EmployeeHandler bundles dependencies for employee-related HTTP handlers.
type EmployeeHandler struct {
	service employeepkg.Service
}

func NewEmployeeHandler(svc employeepkg.Service) *EmployeeHandler {
	return &EmployeeHandler{service: svc}
}

type registerEmployeePayload struct {
	Email     string `json:"employee_email" binding:"required"`
	FirstName string `json:"employee_first_name" binding:"required"`
	LastName  string `json:"employee_last_name" binding:"required"`
	Phone     string `json:"employee_phone"`
	Password  string `json:"employee_password" binding:"required"`
	Role      string `json:"company_role"`
}

// RegisterEmployee registers a staff member. Admin only.
func (h *EmployeeHandler) RegisterEmployee() gin.HandlerFunc {
	return func(c *gin.Context) {
		var p registerEmployeePayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
			return
		}

		req := employeepkg.RegisterEmployeeRequest{
			Email:     p.Email,
			FirstName: p.FirstName,
			LastName:  p.LastName,
			Phone:     p.Phone,
			Password:  p.Password,
			Role:      entity.EmployeeRole(p.Role),
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		emp, err := h.service.RegisterEmployee(ctx, req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"employee": emp})
	}
}

// ListEmployees returns all staff members. Admin only.
func (h *EmployeeHandler) ListEmployees() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		employees, err := h.service.ListEmployees(ctx)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"employees": employees})
	}
}

// GetEmployee returns one staff member by uuid. Admin only.
func (h *EmployeeHandler) GetEmployee() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid employee id"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		emp, err := h.service.GetByUUID(ctx, id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"employee": emp})
	}
}

type updateEmployeePayload struct {
	FirstName string `json:"employee_first_name"`
	LastName  string `json:"employee_last_name"`
	Phone     string `json:"employee_phone"`
	Role      string `json:"company_role"`
	Active    *bool  `json:"active_employee"`
}

// UpdateEmployee applies a partial update. Admin only.
func (h *EmployeeHandler) UpdateEmployee() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid employee id"})
			return
		}
		var p updateEmployeePayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
			return
		}

		req := employeepkg.UpdateEmployeeRequest{
			FirstName: p.FirstName,
			LastName:  p.LastName,
			Phone:     p.Phone,
			Role:      entity.EmployeeRole(p.Role),
			Active:    p.Active,
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		emp, err := h.service.UpdateEmployee(ctx, id, req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "employee updated successfully", "employee": emp})
	}
}

// DeleteEmployee soft-deletes a staff member. Admin only.
func (h *EmployeeHandler) DeleteEmployee() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid employee id"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		if err := h.service.DeleteEmployee(ctx, id); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "employee deleted successfully"})
	}
}
